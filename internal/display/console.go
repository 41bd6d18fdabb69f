// Package display writes the interactive console output: the port list and
// the status line that is redrawn in place with a carriage return.
package display

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/leandrodaf/midiclock/internal/tempo"
	"github.com/leandrodaf/midiclock/sdk/contracts"
)

// StatusLine formats a reading as a carriage-return prefixed line. The
// trailing spaces blank out leftovers from a longer previous line.
func StatusLine(r tempo.Reading) string {
	return fmt.Sprintf("\rBPM: %6.2f | Stability: %5.1f%% | Jitter: %4.2f%%    ", r.BPM, r.Stability, r.Jitter)
}

// Console writes user-facing output. It implements monitor.Sink.
type Console struct {
	mu    sync.Mutex
	out   io.Writer
	plain bool
	st    styles
}

// NewConsole creates a Console writing to out. With plain set no styling is
// applied even on a colour terminal.
func NewConsole(out io.Writer, plain bool) *Console {
	return &Console{
		out:   out,
		plain: plain,
		st:    newStyles(lipgloss.NewRenderer(out)),
	}
}

func (c *Console) render(s lipgloss.Style, text string) string {
	if c.plain {
		return text
	}
	return s.Render(text)
}

func (c *Console) write(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, format, args...)
}

// Banner prints the program title.
func (c *Console) Banner() {
	c.write("%s\n%s\n", c.render(c.st.title, "MIDI Clock Receiver"), c.render(c.st.rule, "-------------------"))
}

// NoPorts explains that nothing can be listened to.
func (c *Console) NoPorts() {
	c.write("%s\n", c.render(c.st.hint, "No MIDI input ports found. Please ensure loopMIDI is running and a port is created."))
}

// Ports lists the inputs with their selection index.
func (c *Console) Ports(devices []contracts.DeviceInfo) {
	c.write("Available MIDI inputs:\n")
	for i, d := range devices {
		c.write("%s %s\n", c.render(c.st.index, fmt.Sprintf("[%d]", i)), d.Name)
	}
}

// InvalidSelection reports a bad port choice.
func (c *Console) InvalidSelection() {
	c.write("%s\n", c.render(c.st.errorText, "Invalid selection. Exiting."))
}

// Listening announces the chosen port.
func (c *Console) Listening(name string) {
	c.write("\nListening on: %s\nPress Ctrl+C to stop.\n\n", c.render(c.st.value, name))
}

// Stopped prints the interrupt message.
func (c *Console) Stopped() {
	c.write("\n\nStopped by user.\n")
}

// Error prints an error raised while listening.
func (c *Console) Error(err error) {
	c.write("\n%s\n", c.render(c.st.errorText, fmt.Sprintf("An error occurred: %v", err)))
}

// Publish draws a tracker update.
func (c *Console) Publish(u tempo.Update) {
	switch u.Kind {
	case tempo.KindReading:
		c.write("%s", c.statusLine(u.Reading))
	case tempo.KindStart:
		c.write("\n%s\n", c.render(c.st.notice, "MIDI Start received."))
	case tempo.KindStop:
		c.write("\n%s\n", c.render(c.st.notice, "MIDI Stop received."))
	case tempo.KindContinue:
		c.write("\n%s\n", c.render(c.st.notice, "MIDI Continue received."))
	}
}

func (c *Console) statusLine(r tempo.Reading) string {
	if c.plain {
		return StatusLine(r)
	}
	grade := c.st.grade(r.Stability)
	return "\r" +
		c.st.label.Render("BPM:") + " " + c.st.value.Render(fmt.Sprintf("%6.2f", r.BPM)) +
		c.st.label.Render(" | Stability: ") + grade.Render(fmt.Sprintf("%5.1f%%", r.Stability)) +
		c.st.label.Render(" | Jitter: ") + grade.Render(fmt.Sprintf("%4.2f%%", r.Jitter)) +
		"    "
}
