package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/leandrodaf/midiclock/internal/display"
	"github.com/leandrodaf/midiclock/internal/logger"
	"github.com/leandrodaf/midiclock/sdk/contracts"
)

type stubClient struct {
	devices []contracts.DeviceInfo
	err     error
}

func (s *stubClient) Stop() error                                  { return nil }
func (s *stubClient) ListDevices() ([]contracts.DeviceInfo, error) { return s.devices, s.err }
func (s *stubClient) SelectDevice(int) error                       { return nil }
func (s *stubClient) StartCapture(chan contracts.MIDI)             {}

const noPortsHint = "No MIDI input ports found"

func TestListPorts(t *testing.T) {
	tests := []struct {
		name     string
		client   *stubClient
		wantOK   bool
		wantCode int
		wantOut  string
	}{
		{
			name:    "ports available",
			client:  &stubClient{devices: []contracts.DeviceInfo{{Name: "loopMIDI Port"}}},
			wantOK:  true,
			wantOut: "[0] loopMIDI Port",
		},
		{
			name:    "empty list",
			client:  &stubClient{},
			wantOut: noPortsHint,
		},
		{
			name:    "backend reports no devices",
			client:  &stubClient{err: fmt.Errorf("coremidi: %w", contracts.ErrNoDevices)},
			wantOut: noPortsHint,
		},
		{
			name:     "driver failure",
			client:   &stubClient{err: errors.New("rtmidi: cannot open sequencer")},
			wantCode: 1,
			wantOut:  "An error occurred: rtmidi: cannot open sequencer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			devices, code, ok := listPorts(tt.client, display.NewConsole(&out, true), logger.NewZapLogger())

			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			if ok && len(devices) != len(tt.client.devices) {
				t.Errorf("devices = %v, want %v", devices, tt.client.devices)
			}
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("output = %q, want it to contain %q", out.String(), tt.wantOut)
			}
			if tt.wantCode != 0 && strings.Contains(out.String(), noPortsHint) {
				t.Errorf("driver failure printed the no-ports hint: %q", out.String())
			}
		})
	}
}
