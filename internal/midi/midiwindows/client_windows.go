//go:build windows
// +build windows

package midiwindows

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/leandrodaf/midiclock/internal/midi/wire"
	"github.com/leandrodaf/midiclock/sdk/contracts"
	"golang.org/x/sys/windows"
)

// Type definitions for MIDI handles
type HMIDIIN windows.Handle

// Constants for callback flags
const (
	CALLBACK_FUNCTION = 0x00030000 // Indicates that the callback is a function
	MIDI_IO_STATUS    = 0x00000020 // MIDI input/output status
)

// Constants for MIDI message types
const (
	MIM_OPEN      = 0x3C1 // MIDI device opened
	MIM_CLOSE     = 0x3C2 // MIDI device closed
	MIM_DATA      = 0x3C3 // MIDI data received
	MIM_ERROR     = 0x3C5 // MIDI error
	MIM_LONGERROR = 0x3C6 // Long MIDI error
	MIM_MOREDATA  = 0x3CC // More MIDI data available
)

// Error definitions for WinMM failures.
var (
	ErrNoMIDIDevices     = contracts.ErrNoDevices
	ErrInvalidMIDIDevice = errors.New("invalid MIDI device")
	ErrInvalidHandle     = errors.New("invalid MIDI device handle")
)

// Struct representing MIDI device capabilities
type midiInCaps struct {
	wMid           uint16
	wPid           uint16
	vDriverVersion uint32
	szPname        [32]uint16
	dwSupport      uint32
}

// ClientMid manages MIDI input on Windows
type ClientMid struct {
	logger          contracts.Logger
	eventChannel    atomic.Value
	handle          HMIDIIN
	portConn        bool
	started         bool
	mu              sync.Mutex
	callback        uintptr
	midiEventFilter *contracts.MIDIEventFilter
}

// Load the winmm.dll library and required functions
var (
	winmm                = windows.NewLazySystemDLL("winmm.dll")
	procMidiInGetNumDevs = winmm.NewProc("midiInGetNumDevs")
	procMidiInGetDevCaps = winmm.NewProc("midiInGetDevCapsW")
	procMidiInOpen       = winmm.NewProc("midiInOpen")
	procMidiInStart      = winmm.NewProc("midiInStart")
	procMidiInStop       = winmm.NewProc("midiInStop")
	procMidiInClose      = winmm.NewProc("midiInClose")
)

// midiInCallback is shared by every client; windows.NewCallback slots are never freed.
var midiInCallbackPtr = windows.NewCallback(midiInCallback)

// NewMIDIClient creates a MIDI client for Windows
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	options.Logger.Info("MIDI client created for Windows")

	return &ClientMid{
		logger:          options.Logger,
		midiEventFilter: options.MIDIEventFilter,
		callback:        midiInCallbackPtr,
	}, nil
}

// ListDevices lists the available MIDI input devices
func (m *ClientMid) ListDevices() ([]contracts.DeviceInfo, error) {
	r0, _, _ := procMidiInGetNumDevs.Call()
	numDevices := uint32(r0)
	if numDevices == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, numDevices)
	for i := uint32(0); i < numDevices; i++ {
		var caps midiInCaps
		r1, _, _ := procMidiInGetDevCaps.Call(
			uintptr(i),
			uintptr(unsafe.Pointer(&caps)),
			unsafe.Sizeof(caps),
		)
		if r1 != 0 {
			m.logger.Warn("Failed to get MIDI device capabilities", m.logger.Field().Int("deviceID", int(i)))
			continue
		}
		deviceName := windows.UTF16ToString(caps.szPname[:])
		devices[i] = contracts.DeviceInfo{
			Name:         deviceName,
			EntityName:   deviceName,
			Manufacturer: fmt.Sprintf("MID: %d PID: %d", caps.wMid, caps.wPid),
		}
	}
	return devices, nil
}

// SelectDevice opens a MIDI input device
func (m *ClientMid) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if deviceID < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMIDIDevice, deviceID)
	}

	if m.portConn {
		if err := m.stopCapture(); err != nil {
			return fmt.Errorf("failed to stop previous MIDI capture: %w", err)
		}
	}

	fdwOpen := CALLBACK_FUNCTION | MIDI_IO_STATUS

	r1, _, err := procMidiInOpen.Call(
		uintptr(unsafe.Pointer(&m.handle)),
		uintptr(deviceID),
		m.callback,
		uintptr(unsafe.Pointer(m)),
		uintptr(fdwOpen),
	)
	if r1 != 0 {
		m.logger.Error("Failed to open MIDI device",
			m.logger.Field().Int("deviceID", deviceID),
			m.logger.Field().Error("error", err))
		return fmt.Errorf("%w %d: mmresult %d", ErrInvalidMIDIDevice, deviceID, r1)
	}

	m.portConn = true
	m.logger.Info("MIDI device connected", m.logger.Field().Int("deviceID", deviceID))
	return nil
}

// StartCapture starts the device and routes its messages to eventChannel
func (m *ClientMid) StartCapture(eventChannel chan contracts.MIDI) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.portConn {
		m.logger.Error("Cannot start capture: No MIDI device selected")
		return
	}

	if m.started {
		m.logger.Warn("Capture already started; replacing event channel")
		m.eventChannel.Store(eventChannel)
		return
	}

	m.eventChannel.Store(eventChannel)

	if m.handle == 0 {
		m.logger.Error(ErrInvalidHandle.Error())
		return
	}

	r1, _, err := procMidiInStart.Call(uintptr(m.handle))
	if r1 != 0 {
		m.logger.Error("Failed to start MIDI capture", m.logger.Field().Error("error", err))
		return
	}

	m.started = true
	m.logger.Info("MIDI capture started")
}

// midiInCallback processes incoming MIDI messages on the WinMM thread
func midiInCallback(hMidiIn uintptr, wMsg uint32, dwInstance uintptr, dwParam1 uintptr, dwParam2 uintptr) uintptr {
	m := (*ClientMid)(unsafe.Pointer(dwInstance))

	switch wMsg {
	case MIM_OPEN:
		m.logger.Debug("MIDI device opened")
	case MIM_CLOSE:
		m.logger.Debug("MIDI device closed")
	case MIM_DATA, MIM_MOREDATA:
		m.dispatch(uint32(dwParam1))
	case MIM_ERROR, MIM_LONGERROR:
		m.logger.Error("MIDI error", m.logger.Field().Uint64("msg", uint64(wMsg)))
	default:
		m.logger.Warn("Unknown MIDI message", m.logger.Field().Uint64("msg", uint64(wMsg)))
	}

	return 0
}

// dispatch unpacks a WinMM short message (status | data1<<8 | data2<<16).
func (m *ClientMid) dispatch(packed uint32) {
	ch, _ := m.eventChannel.Load().(chan contracts.MIDI)
	if ch == nil {
		return
	}

	raw := []byte{byte(packed), byte(packed >> 8), byte(packed >> 16)}
	raw = raw[:1+wire.DataLen(raw[0])]

	events, err := wire.Decode(raw, uint64(time.Now().UnixNano()))
	if err != nil {
		m.logger.Warn(err.Error())
	}
	for _, event := range events {
		if !m.midiEventFilter.Allows(event.Command()) {
			continue
		}
		select {
		case ch <- event:
		default:
			m.logger.Warn("MIDI event channel is full; event discarded")
		}
	}
}

// Stop terminates MIDI event capture and disconnects the device
func (m *ClientMid) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.portConn {
		return nil
	}

	if err := m.stopCapture(); err != nil {
		return fmt.Errorf("failed to stop MIDI capture: %w", err)
	}
	m.logger.Info("MIDI capture stopped and device closed")
	return nil
}

// stopCapture stops the capture and releases resources
func (m *ClientMid) stopCapture() error {
	if m.handle == 0 {
		return ErrInvalidHandle
	}

	m.eventChannel.Store((chan contracts.MIDI)(nil))

	r1, _, err := procMidiInStop.Call(uintptr(m.handle))
	if r1 != 0 {
		m.logger.Error("Failed to stop MIDI capture", m.logger.Field().Error("error", err))
		return err
	}

	r1, _, err = procMidiInClose.Call(uintptr(m.handle))
	if r1 != 0 {
		m.logger.Error("Failed to close MIDI device", m.logger.Field().Error("error", err))
		return err
	}

	m.portConn = false
	m.started = false
	m.handle = 0
	return nil
}
