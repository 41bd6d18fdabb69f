package main

import (
	"errors"

	"github.com/leandrodaf/midiclock/internal/display"
	"github.com/leandrodaf/midiclock/sdk/contracts"
)

// listPorts prints the available inputs. When there is nothing to listen to
// it returns ok=false with the exit code: 0 when the platform has no inputs,
// 1 when listing failed.
func listPorts(client contracts.ClientMIDI, console *display.Console, log contracts.Logger) (devices []contracts.DeviceInfo, code int, ok bool) {
	devices, err := client.ListDevices()
	switch {
	case errors.Is(err, contracts.ErrNoDevices), err == nil && len(devices) == 0:
		console.NoPorts()
		return nil, 0, false
	case err != nil:
		log.Error("Failed to list MIDI devices", log.Field().Error("error", err))
		console.Error(err)
		return nil, 1, false
	}

	console.Ports(devices)
	return devices, 0, true
}
