package contracts

// MIDICommand represents the types of MIDI commands for event filtering.
type MIDICommand byte

const (
	// NoteOff is the MIDI command for a Note Off event (0x80).
	NoteOff MIDICommand = 0x80
	// NoteOn is the MIDI command for a Note On event (0x90).
	NoteOn MIDICommand = 0x90
	// TimingClock is sent 24 times per quarter note while a clock master runs (0xF8).
	TimingClock MIDICommand = 0xF8
	// Start tells receivers to start playback from the beginning (0xFA).
	Start MIDICommand = 0xFA
	// Continue resumes playback from the current position (0xFB).
	Continue MIDICommand = 0xFB
	// Stop halts playback (0xFC).
	Stop MIDICommand = 0xFC
	// ActiveSensing is the keep-alive sent by some devices every 300ms (0xFE).
	ActiveSensing MIDICommand = 0xFE
	// Reset asks receivers to return to their power-up state (0xFF).
	Reset MIDICommand = 0xFF
)

// MIDIEventFilter allows users to specify which MIDI commands to capture.
type MIDIEventFilter struct {
	Commands []MIDICommand // List of MIDI commands to filter.
}

// Allows reports whether command passes the filter. A nil or empty filter allows everything.
func (f *MIDIEventFilter) Allows(command MIDICommand) bool {
	if f == nil || len(f.Commands) == 0 {
		return true
	}
	for _, allowed := range f.Commands {
		if command == allowed {
			return true
		}
	}
	return false
}

// ClockFilter returns a filter that only lets transport and clock messages through.
func ClockFilter() MIDIEventFilter {
	return MIDIEventFilter{Commands: []MIDICommand{TimingClock, Start, Continue, Stop}}
}

// CoreMIDIConfig holds configuration for CoreMIDI.
type CoreMIDIConfig struct {
	ClientName string // Name of the MIDI client.
}

// ClientOptions defines the configuration options for the MIDI client.
type ClientOptions struct {
	Logger          Logger           // Logger for logging events and errors.
	LogLevel        LogLevel         // Level of logging to use.
	LogFilePath     string           // File path for logging if file logging is enabled.
	MIDIEventFilter *MIDIEventFilter // Optional filter for MIDI events to capture.
	CoreMIDIConfig  *CoreMIDIConfig  // Configuration specific to CoreMIDI, the client name is reused by the other backends.
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the MIDI client.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the MIDI client.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithLogFile directs client logs to the given file.
func WithLogFile(path string) Option {
	return func(opts *ClientOptions) {
		opts.LogFilePath = path
	}
}

// WithMIDIEventFilter sets the MIDI event filter for the MIDI client.
func WithMIDIEventFilter(filter MIDIEventFilter) Option {
	return func(opts *ClientOptions) {
		opts.MIDIEventFilter = &filter
	}
}

// WithCoreMIDIConfig sets the CoreMIDI configuration for the MIDI client.
func WithCoreMIDIConfig(config CoreMIDIConfig) Option {
	return func(opts *ClientOptions) {
		opts.CoreMIDIConfig = &config
	}
}
