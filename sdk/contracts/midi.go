package contracts

import (
	"errors"
	"time"
)

// ErrNoDevices is returned by ClientMIDI.ListDevices when the platform reports no inputs.
var ErrNoDevices = errors.New("no MIDI devices found")

// MIDI represents a single decoded MIDI message together with the time it arrived.
type MIDI struct {
	Timestamp uint64 // Timestamp is the arrival time in Unix nanoseconds.
	Status    byte   // Status is the raw status byte, channel nibble included.
	Data1     byte   // Data1 is the first data byte (note, controller, ...), zero when unused.
	Data2     byte   // Data2 is the second data byte (velocity, value, ...), zero when unused.
}

// Command returns the command part of the status byte. System messages
// (0xF0 and above) carry no channel and are returned unchanged.
func (m MIDI) Command() MIDICommand {
	if m.Status >= 0xF0 {
		return MIDICommand(m.Status)
	}
	return MIDICommand(m.Status & 0xF0)
}

// Channel returns the zero-based channel of a channel voice message.
func (m MIDI) Channel() byte {
	if m.Status >= 0xF0 {
		return 0
	}
	return m.Status & 0x0F
}

// IsRealtime reports whether the message is a single-byte system realtime message.
func (m MIDI) IsRealtime() bool {
	return m.Status >= 0xF8
}

// Time converts Timestamp to a time.Time.
func (m MIDI) Time() time.Time {
	return time.Unix(0, int64(m.Timestamp))
}

// ClientMIDI defines an interface for MIDI client operations.
type ClientMIDI interface {
	Stop() error                         // Stops the MIDI client and releases resources.
	ListDevices() ([]DeviceInfo, error)  // Lists all available MIDI input devices.
	SelectDevice(deviceID int) error     // Selects a MIDI input device by its index in ListDevices.
	StartCapture(eventChannel chan MIDI) // Starts capturing MIDI events and sends them to the specified channel.
}
