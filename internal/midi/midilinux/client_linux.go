//go:build linux
// +build linux

package midilinux

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/leandrodaf/midiclock/internal/midi/inflight"
	"github.com/leandrodaf/midiclock/internal/midi/wire"
	"github.com/leandrodaf/midiclock/sdk/contracts"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// Error definitions for ALSA sequencer failures.
var (
	ErrNoMIDIDevices     = contracts.ErrNoDevices
	ErrInvalidMIDIDevice = errors.New("invalid MIDI device")
)

// ClientMid manages MIDI input on Linux through rtmidi's ALSA backend.
type ClientMid struct {
	logger          contracts.Logger
	drv             drivers.Driver
	eventChannel    atomic.Value // chan contracts.MIDI
	inPort          drivers.In
	stopFn          func()
	midiEventFilter *contracts.MIDIEventFilter
	callbacks       inflight.Gate // rtmidi callbacks in flight
	mu              sync.Mutex
	capturing       bool
}

// NewMIDIClient opens the rtmidi driver. The client name is used as the ALSA client name.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("rtmididrv: %w", err)
	}
	options.Logger.Info("MIDI client created for Linux",
		options.Logger.Field().String("driver", drv.String()))

	return &ClientMid{
		logger:          options.Logger,
		drv:             drv,
		midiEventFilter: options.MIDIEventFilter,
	}, nil
}

// ListDevices lists the ALSA sequencer input ports.
func (m *ClientMid) ListDevices() ([]contracts.DeviceInfo, error) {
	ins, err := m.drv.Ins()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI inputs: %w", err)
	}
	if len(ins) == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, len(ins))
	for i, in := range ins {
		devices[i] = contracts.DeviceInfo{
			Name:       in.String(),
			EntityName: m.drv.String(),
		}
	}
	return devices, nil
}

// SelectDevice opens the input at deviceID and starts listening; events are
// dropped until StartCapture supplies a channel.
func (m *ClientMid) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ins, err := m.drv.Ins()
	if err != nil {
		return fmt.Errorf("error retrieving MIDI inputs: %w", err)
	}
	if deviceID < 0 || deviceID >= len(ins) {
		m.logger.Error(ErrInvalidMIDIDevice.Error(), m.logger.Field().Int("deviceID", deviceID))
		return fmt.Errorf("%w: %d", ErrInvalidMIDIDevice, deviceID)
	}

	m.closePort()

	in := ins[deviceID]
	if err := in.Open(); err != nil {
		return fmt.Errorf("open %q: %w", in.String(), err)
	}

	// Timing clock is classed with time code by rtmidi and ignored unless asked for.
	stop, err := midi.ListenTo(in, m.handleMIDIMessage,
		midi.UseTimeCode(),
		midi.HandleError(func(listenErr error) {
			m.logger.Warn("MIDI listener error",
				m.logger.Field().String("deviceName", in.String()),
				m.logger.Field().Error("error", listenErr))
		}))
	if err != nil {
		_ = in.Close()
		return fmt.Errorf("listen %q: %w", in.String(), err)
	}

	m.inPort = in
	m.stopFn = stop
	m.logger.Info("MIDI device selected",
		m.logger.Field().Int("deviceID", deviceID),
		m.logger.Field().String("deviceName", in.String()))
	return nil
}

func (m *ClientMid) handleMIDIMessage(msg midi.Message, _ int32) {
	if !m.callbacks.Enter() {
		return
	}
	defer m.callbacks.Exit()

	eventChannel, _ := m.eventChannel.Load().(chan contracts.MIDI)
	if eventChannel == nil {
		return
	}

	events, err := wire.Decode(msg, uint64(time.Now().UnixNano()))
	if err != nil {
		m.logger.Warn(err.Error(), m.logger.Field().String("message", msg.String()))
	}

	for _, event := range events {
		if !m.midiEventFilter.Allows(event.Command()) {
			continue
		}
		select {
		case eventChannel <- event:
		default:
			m.logger.Warn("Event buffer full; dropping MIDI event",
				m.logger.Field().String("message", wire.Describe(event)))
		}
	}
}

// StartCapture routes decoded events to eventChannel.
func (m *ClientMid) StartCapture(eventChannel chan contracts.MIDI) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if eventChannel == nil {
		m.logger.Error("StartCapture called with nil eventChannel")
		return
	}
	if m.inPort == nil {
		m.logger.Error("Cannot start capture: No MIDI device selected")
		return
	}
	if m.capturing {
		m.logger.Warn("Capture already started; replacing event channel")
	}

	m.eventChannel.Store(eventChannel)
	m.capturing = true
	m.logger.Info("Starting MIDI event capture")
}

// Stop closes the input port and the rtmidi driver.
func (m *ClientMid) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.eventChannel.Store((chan contracts.MIDI)(nil))
	m.capturing = false
	m.closePort()
	m.callbacks.Close()

	if m.drv != nil {
		if err := m.drv.Close(); err != nil {
			return fmt.Errorf("close rtmidi driver: %w", err)
		}
		m.drv = nil
		m.logger.Info("MIDI capture stopped and driver closed")
	}
	return nil
}

func (m *ClientMid) closePort() {
	if m.stopFn != nil {
		m.stopFn()
		m.stopFn = nil
	}
	if m.inPort != nil {
		_ = m.inPort.Close()
		m.inPort = nil
	}
}
