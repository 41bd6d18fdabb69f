package tempo

import (
	"time"

	"github.com/google/uuid"
	"github.com/leandrodaf/midiclock/sdk/contracts"
)

// Defaults for Config.
const (
	DefaultWindowSize   = 48 // two beats of ticks
	DefaultMinIntervals = 24 // one beat
	DefaultReportEvery  = 12 // half a beat
)

// UpdateKind tells what an Update carries.
type UpdateKind int

const (
	// KindReading carries a fresh Reading.
	KindReading UpdateKind = iota
	// KindStart reports a MIDI Start; the window was cleared.
	KindStart
	// KindStop reports a MIDI Stop; the window was cleared.
	KindStop
	// KindContinue reports a MIDI Continue; the window was kept.
	KindContinue
)

func (k UpdateKind) String() string {
	switch k {
	case KindReading:
		return "reading"
	case KindStart:
		return "start"
	case KindStop:
		return "stop"
	case KindContinue:
		return "continue"
	}
	return "unknown"
}

// Update is emitted by Tracker.Observe.
type Update struct {
	Kind    UpdateKind
	Session string    // id of the transport session the update belongs to
	At      time.Time // arrival time of the message that caused it
	Reading Reading   // set for KindReading only
}

// Config controls the window size and the reporting cadence.
type Config struct {
	WindowSize   int // intervals kept
	MinIntervals int // intervals required before the first reading
	ReportEvery  int // buffered intervals between readings until the window is full
}

// DefaultConfig returns the 48/24/12 configuration.
func DefaultConfig() Config {
	return Config{
		WindowSize:   DefaultWindowSize,
		MinIntervals: DefaultMinIntervals,
		ReportEvery:  DefaultReportEvery,
	}
}

// Tracker folds clock and transport messages into Updates.
// Not safe for concurrent use.
type Tracker struct {
	cfg        Config
	window     *IntervalWindow
	lastTick   uint64 // ns, valid when hasLast
	hasLast    bool
	session    string
	newSession func() string
}

// NewTracker creates a Tracker. Zero fields in cfg take their defaults.
func NewTracker(cfg Config) *Tracker {
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = DefaultWindowSize
	}
	if cfg.MinIntervals <= 0 {
		cfg.MinIntervals = DefaultMinIntervals
	}
	if cfg.ReportEvery <= 0 {
		cfg.ReportEvery = DefaultReportEvery
	}
	return &Tracker{
		cfg:        cfg,
		window:     NewIntervalWindow(cfg.WindowSize),
		newSession: uuid.NewString,
	}
}

// Observe processes one message. The boolean is false when the message
// produced nothing to report.
func (t *Tracker) Observe(ev contracts.MIDI) (Update, bool) {
	switch ev.Command() {
	case contracts.TimingClock:
		return t.tick(ev)
	case contracts.Start:
		t.reset()
		t.session = t.newSession()
		return Update{Kind: KindStart, Session: t.session, At: ev.Time()}, true
	case contracts.Stop:
		t.reset()
		return Update{Kind: KindStop, Session: t.session, At: ev.Time()}, true
	case contracts.Continue:
		// The pause before Continue is not a tick interval.
		t.hasLast = false
		return Update{Kind: KindContinue, Session: t.session, At: ev.Time()}, true
	}
	return Update{}, false
}

func (t *Tracker) tick(ev contracts.MIDI) (Update, bool) {
	if t.session == "" {
		t.session = t.newSession()
	}

	last, hadLast := t.lastTick, t.hasLast
	t.lastTick, t.hasLast = ev.Timestamp, true

	// Ticks stamped at or before the previous one only re-anchor the clock:
	// a zero interval would stand for two ticks decoded from one packet.
	if !hadLast || ev.Timestamp <= last {
		return Update{}, false
	}

	t.window.Push(float64(ev.Timestamp-last) / float64(time.Second))

	// Readings come at every ReportEvery-th buffered interval while the
	// window fills, then on every tick once it is full.
	n := t.window.Len()
	if n < t.cfg.MinIntervals || (!t.window.Full() && n%t.cfg.ReportEvery != 0) {
		return Update{}, false
	}

	return Update{
		Kind:    KindReading,
		Session: t.session,
		At:      ev.Time(),
		Reading: NewReading(t.window.Values()),
	}, true
}

func (t *Tracker) reset() {
	t.window.Reset()
	t.hasLast = false
	t.lastTick = 0
}

// Session returns the current session id, empty before the first clock or Start.
func (t *Tracker) Session() string { return t.session }

// Buffered returns the number of intervals currently in the window.
func (t *Tracker) Buffered() int { return t.window.Len() }
