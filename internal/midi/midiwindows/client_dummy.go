//go:build !windows
// +build !windows

package midiwindows

import (
	"errors"

	"github.com/leandrodaf/midiclock/sdk/contracts"
)

// ErrUnavailable is returned by every operation of the non-Windows stub.
var ErrUnavailable = errors.New("WinMM is not available on this platform")

type dummyMIDIClient struct {
	logger contracts.Logger
}

// NewMIDIClient initializes a dummy MIDI client for non-Windows systems.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	options.Logger.Debug("Using dummy WinMM client")
	return &dummyMIDIClient{
		logger: options.Logger,
	}, nil
}

// ListDevices always fails with ErrUnavailable.
func (m *dummyMIDIClient) ListDevices() ([]contracts.DeviceInfo, error) {
	m.logger.Warn("ListDevices called on dummy WinMM client")
	return nil, ErrUnavailable
}

// SelectDevice always fails with ErrUnavailable.
func (m *dummyMIDIClient) SelectDevice(deviceID int) error {
	m.logger.Warn("SelectDevice called on dummy WinMM client")
	return ErrUnavailable
}

// StartCapture only logs.
func (m *dummyMIDIClient) StartCapture(eventChannel chan contracts.MIDI) {
	m.logger.Warn("StartCapture called on dummy WinMM client")
}

// Stop is a no-op.
func (m *dummyMIDIClient) Stop() error {
	return nil
}
