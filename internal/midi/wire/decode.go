// Package wire splits raw MIDI byte streams, as delivered by the platform
// drivers, into individual contracts.MIDI events.
package wire

import (
	"errors"

	"github.com/leandrodaf/midiclock/sdk/contracts"
	"gitlab.com/gomidi/midi/v2"
)

// ErrIncompleteMIDIPacket is returned when a packet ends in the middle of a message.
var ErrIncompleteMIDIPacket = errors.New("incomplete MIDI packet")

const (
	sysExStart = 0xF0
	sysExEnd   = 0xF7
)

// Decode splits data into events stamped with ts. Realtime bytes are decoded
// wherever they appear, including between the data bytes of another message
// and inside SysEx, and running status is honoured. A status byte arriving
// before a message is complete drops that message.
// SysEx payloads are skipped. On a truncated trailing message the events
// decoded so far are returned together with ErrIncompleteMIDIPacket.
func Decode(data []byte, ts uint64) ([]contracts.MIDI, error) {
	var (
		events  []contracts.MIDI
		running byte
		inSysEx bool
	)

	for i := 0; i < len(data); {
		b := data[i]

		if b >= 0xF8 {
			events = append(events, contracts.MIDI{Timestamp: ts, Status: b})
			i++
			continue
		}

		if inSysEx {
			if b == sysExEnd {
				inSysEx = false
			}
			i++
			continue
		}

		status := b
		if b < 0x80 {
			if running == 0 {
				// stray data byte
				i++
				continue
			}
			status = running
		} else {
			i++
		}

		switch {
		case status == sysExStart:
			inSysEx = true
			running = 0
			continue
		case status >= 0xF0:
			running = 0
		default:
			running = status
		}

		var (
			d   [2]byte
			got int
		)
		n := DataLen(status)
		for got < n && i < len(data) {
			c := data[i]
			if c >= 0xF8 {
				events = append(events, contracts.MIDI{Timestamp: ts, Status: c})
				i++
				continue
			}
			if c >= 0x80 {
				// A new status byte abandons the unfinished message.
				break
			}
			d[got] = c
			got++
			i++
		}
		if got < n {
			if i >= len(data) {
				return events, ErrIncompleteMIDIPacket
			}
			continue
		}

		events = append(events, contracts.MIDI{Timestamp: ts, Status: status, Data1: d[0], Data2: d[1]})
	}

	return events, nil
}

// DataLen returns the number of data bytes that follow status.
func DataLen(status byte) int {
	switch {
	case status >= 0xF0:
		switch status {
		case 0xF1, 0xF3:
			return 1
		case 0xF2:
			return 2
		default:
			return 0
		}
	case status&0xF0 == 0xC0, status&0xF0 == 0xD0:
		return 1
	default:
		return 2
	}
}

// Bytes re-encodes an event into its wire form.
func Bytes(ev contracts.MIDI) []byte {
	switch DataLen(ev.Status) {
	case 0:
		return []byte{ev.Status}
	case 1:
		return []byte{ev.Status, ev.Data1}
	default:
		return []byte{ev.Status, ev.Data1, ev.Data2}
	}
}

// Describe renders ev for debug logs, e.g. "TimingClock" or "NoteOn channel: 0 key: 60 velocity: 100".
func Describe(ev contracts.MIDI) string {
	return midi.Message(Bytes(ev)).String()
}
