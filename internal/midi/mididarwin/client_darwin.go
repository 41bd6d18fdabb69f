//go:build darwin
// +build darwin

package mididarwin

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/leandrodaf/midiclock/internal/midi/inflight"
	"github.com/leandrodaf/midiclock/internal/midi/wire"
	"github.com/leandrodaf/midiclock/sdk/contracts"
	"github.com/youpy/go-coremidi"
)

// Error definitions for MIDI connection and handling issues.
var (
	ErrNoMIDIDevices       = contracts.ErrNoDevices
	ErrInvalidMIDIDevice   = errors.New("invalid MIDI device")
	ErrMIDIConnectionError = errors.New("error connecting to MIDI device")
	ErrCreateInputPort     = errors.New("error creating input port")
)

// internalPortConnection is an interface for handling disconnection from a MIDI port.
type internalPortConnection interface {
	Disconnect()
}

// ClientMid manages MIDI input on Darwin (macOS) systems.
// CoreMIDI invokes the read callback on its own thread; events are decoded
// there and handed to the capture channel without blocking.
type ClientMid struct {
	logger          contracts.Logger
	eventChannel    atomic.Value               // chan contracts.MIDI, swapped atomically because the callback reads it.
	client          coremidi.Client            // CoreMIDI client instance for MIDI operations.
	inputPort       coremidi.InputPort         // Input port for receiving MIDI events.
	portConn        internalPortConnection     // Connection to the MIDI port.
	midiEventFilter *contracts.MIDIEventFilter // Filter for specific MIDI events.
	mu              sync.Mutex                 // Guards portConn and capturing.
	capturing       bool                       // Indicates if event capturing is currently active.
	callbacks       inflight.Gate              // Tracks callbacks in flight; closed by Stop.
	stopOnce        sync.Once                  // Ensures Stop() is executed only once.
}

// NewMIDIClient initializes a new ClientMid for handling MIDI events on macOS.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	client, err := coremidi.NewClient(options.CoreMIDIConfig.ClientName)
	if err != nil {
		return nil, err
	}
	options.Logger.Info("MIDI client successfully created",
		options.Logger.Field().String("clientName", options.CoreMIDIConfig.ClientName))

	return &ClientMid{
		logger:          options.Logger,
		client:          client,
		midiEventFilter: options.MIDIEventFilter,
	}, nil
}

// ListDevices returns the available CoreMIDI sources.
func (m *ClientMid) ListDevices() ([]contracts.DeviceInfo, error) {
	sources, err := coremidi.AllSources()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI sources: %w", err)
	}
	if len(sources) == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, len(sources))
	for i, source := range sources {
		sourceEntity := source.Entity()
		devices[i] = contracts.DeviceInfo{
			Name:         source.Name(),
			EntityName:   sourceEntity.Name(),
			Manufacturer: sourceEntity.Manufacturer(),
		}
	}
	return devices, nil
}

// SelectDevice connects to the source at deviceID, dropping any previous connection.
func (m *ClientMid) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sources, err := coremidi.AllSources()
	if err != nil {
		return fmt.Errorf("error retrieving MIDI sources: %w", err)
	}
	if deviceID < 0 || deviceID >= len(sources) {
		m.logger.Error(ErrInvalidMIDIDevice.Error(), m.logger.Field().Int("deviceID", deviceID))
		return fmt.Errorf("%w: %d", ErrInvalidMIDIDevice, deviceID)
	}

	if m.portConn != nil {
		m.portConn.Disconnect()
		m.portConn = nil
	}

	source := sources[deviceID]
	m.logger.Info("MIDI device selected",
		m.logger.Field().Int("deviceID", deviceID),
		m.logger.Field().String("deviceName", source.Name()))

	m.inputPort, err = coremidi.NewInputPort(m.client, "Clock Input", m.handleMIDIMessage)
	if err != nil {
		m.logger.Error(ErrCreateInputPort.Error(), m.logger.Field().Error("error", err))
		return fmt.Errorf("%w: %v", ErrCreateInputPort, err)
	}

	m.portConn, err = m.inputPort.Connect(source)
	if err != nil {
		m.logger.Error(ErrMIDIConnectionError.Error(), m.logger.Field().Error("error", err))
		return fmt.Errorf("%w: %v", ErrMIDIConnectionError, err)
	}

	m.logger.Info("MIDI device successfully connected")
	return nil
}

// handleMIDIMessage decodes a CoreMIDI packet, which may hold several
// messages including single-byte clock ticks, and forwards the allowed ones.
func (m *ClientMid) handleMIDIMessage(source coremidi.Source, packet coremidi.Packet) {
	if !m.callbacks.Enter() {
		return
	}
	defer m.callbacks.Exit()

	eventChannel, _ := m.eventChannel.Load().(chan contracts.MIDI)
	if eventChannel == nil {
		return
	}

	events, err := wire.Decode(packet.Data, uint64(time.Now().UnixNano()))
	if err != nil {
		m.logger.Warn(err.Error(), m.logger.Field().Int("packetLen", len(packet.Data)))
	}

	for _, event := range events {
		if !m.midiEventFilter.Allows(event.Command()) {
			continue
		}
		select {
		case eventChannel <- event:
		default:
			m.logger.Warn("Event buffer full; dropping MIDI event",
				m.logger.Field().Uint8("status", event.Status))
		}
	}
}

// StartCapture stores the event channel; packets arriving before this are discarded.
func (m *ClientMid) StartCapture(eventChannel chan contracts.MIDI) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if eventChannel == nil {
		m.logger.Error("StartCapture called with nil eventChannel")
		return
	}

	if m.capturing {
		m.logger.Warn("Capture already started; replacing event channel")
	}

	m.logger.Info("Starting MIDI event capture")
	m.eventChannel.Store(eventChannel)
	m.capturing = true
}

// Stop disconnects from the device and waits for in-flight callbacks.
// Calling it more than once is a no-op.
func (m *ClientMid) Stop() error {
	m.stopOnce.Do(func() {
		m.logger.Info("Stopping MIDI capture")
		m.mu.Lock()
		defer m.mu.Unlock()

		if m.portConn != nil {
			m.portConn.Disconnect()
			m.portConn = nil
		}

		// Callbacks admitted before Close hold their channel reference; new ones are refused.
		m.callbacks.Close()
		m.eventChannel.Store((chan contracts.MIDI)(nil))

		if m.capturing {
			m.capturing = false
			m.logger.Info("MIDI capture stopped")
		}
	})
	return nil
}
