//go:build !linux
// +build !linux

package midilinux

import (
	"errors"

	"github.com/leandrodaf/midiclock/sdk/contracts"
)

// ErrUnavailable is returned by every operation of the non-Linux stub.
var ErrUnavailable = errors.New("ALSA MIDI is not available on this platform")

type dummyMIDIClient struct {
	logger contracts.Logger
}

// NewMIDIClient initializes a dummy MIDI client for non-Linux systems.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	options.Logger.Debug("Using dummy ALSA client")
	return &dummyMIDIClient{logger: options.Logger}, nil
}

func (m *dummyMIDIClient) ListDevices() ([]contracts.DeviceInfo, error) {
	m.logger.Warn("ListDevices called on dummy ALSA client")
	return nil, ErrUnavailable
}

func (m *dummyMIDIClient) SelectDevice(deviceID int) error {
	m.logger.Warn("SelectDevice called on dummy ALSA client")
	return ErrUnavailable
}

func (m *dummyMIDIClient) StartCapture(eventChannel chan contracts.MIDI) {
	m.logger.Warn("StartCapture called on dummy ALSA client")
}

func (m *dummyMIDIClient) Stop() error {
	return nil
}
