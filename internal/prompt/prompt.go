// Package prompt chooses the MIDI input to listen to.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/leandrodaf/midiclock/sdk/contracts"
)

var (
	// ErrNoPorts is returned when there is nothing to choose from.
	ErrNoPorts = errors.New("no MIDI input ports")
	// ErrInvalidSelection is returned for a non-numeric or out of range answer,
	// or a preset name that matches no port.
	ErrInvalidSelection = errors.New("invalid port selection")
)

// Question is printed before reading the port number.
const Question = "\nSelect port number to listen to: "

// SelectPort returns the index of the chosen device. A non-empty preset
// selects the first port whose name contains it, ignoring case, without
// prompting. Otherwise one line is read from in and parsed as an index.
func SelectPort(in io.Reader, out io.Writer, devices []contracts.DeviceInfo, preset string) (int, error) {
	if len(devices) == 0 {
		return -1, ErrNoPorts
	}

	if preset != "" {
		if i := MatchPort(devices, preset); i >= 0 {
			return i, nil
		}
		return -1, fmt.Errorf("%w: no port matches %q", ErrInvalidSelection, preset)
	}

	fmt.Fprint(out, Question)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return -1, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return -1, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, strings.TrimSpace(line))
	}
	if choice < 0 || choice >= len(devices) {
		return -1, fmt.Errorf("%w: %d is out of range", ErrInvalidSelection, choice)
	}
	return choice, nil
}

// MatchPort returns the index of the first device whose name contains name,
// case-insensitively, or -1.
func MatchPort(devices []contracts.DeviceInfo, name string) int {
	needle := strings.ToLower(name)
	for i, d := range devices {
		if strings.Contains(strings.ToLower(d.Name), needle) {
			return i
		}
	}
	return -1
}
