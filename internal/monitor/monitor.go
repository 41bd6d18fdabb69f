// Package monitor runs the polling loop that drains captured MIDI events
// into a tempo.Tracker and publishes what it reports.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/leandrodaf/midiclock/internal/tempo"
	"github.com/leandrodaf/midiclock/sdk/contracts"
)

// DefaultPollInterval is how long the loop sleeps when no event is waiting.
const DefaultPollInterval = time.Millisecond

// ErrInputClosed is returned by Run when the event channel is closed.
var ErrInputClosed = errors.New("MIDI input closed")

// Sink receives tracker updates.
type Sink interface {
	Publish(u tempo.Update)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(u tempo.Update)

// Publish calls f(u).
func (f SinkFunc) Publish(u tempo.Update) { f(u) }

// Config for a Monitor.
type Config struct {
	PollInterval time.Duration
	Tracker      tempo.Config
}

// Stats counts what a Monitor has processed.
type Stats struct {
	Events   int
	Readings int
	Resets   int
}

// Monitor polls an event channel and feeds a tracker.
type Monitor struct {
	tracker *tempo.Tracker
	sink    Sink
	logger  contracts.Logger
	poll    time.Duration
	stats   Stats
}

// New creates a Monitor publishing to sink.
func New(cfg Config, sink Sink, logger contracts.Logger) *Monitor {
	poll := cfg.PollInterval
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	return &Monitor{
		tracker: tempo.NewTracker(cfg.Tracker),
		sink:    sink,
		logger:  logger,
		poll:    poll,
	}
}

// Run polls events until ctx is done (returns nil) or the channel is closed
// (returns ErrInputClosed). A panic while handling an event is returned as an error.
func (m *Monitor) Run(ctx context.Context, events <-chan contracts.MIDI) error {
	m.logger.Debug("Monitor started", m.logger.Field().Int64("pollIntervalMicros", m.poll.Microseconds()))
	defer func() {
		m.logger.Info("Monitor stopped",
			m.logger.Field().Int("events", m.stats.Events),
			m.logger.Field().Int("readings", m.stats.Readings),
			m.logger.Field().Int("resets", m.stats.Resets))
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}

		select {
		case ev, ok := <-events:
			if !ok {
				return ErrInputClosed
			}
			if err := m.handle(ev); err != nil {
				return err
			}
		default:
			time.Sleep(m.poll)
		}
	}
}

func (m *Monitor) handle(ev contracts.MIDI) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handling MIDI message 0x%X: %v", ev.Status, r)
		}
	}()

	m.stats.Events++
	u, ok := m.tracker.Observe(ev)
	if !ok {
		return nil
	}

	switch u.Kind {
	case tempo.KindReading:
		m.stats.Readings++
		m.logger.Debug("Clock reading",
			m.logger.Field().String("session", u.Session),
			m.logger.Field().Float64("bpm", u.Reading.BPM),
			m.logger.Field().Float64("jitter", u.Reading.Jitter),
			m.logger.Field().Int("samples", u.Reading.Samples))
	case tempo.KindStart, tempo.KindStop:
		m.stats.Resets++
		m.logger.Info("Transport "+u.Kind.String(),
			m.logger.Field().String("session", u.Session),
			m.logger.Field().Time("at", u.At))
	default:
		m.logger.Info("Transport "+u.Kind.String(), m.logger.Field().String("session", u.Session))
	}

	m.sink.Publish(u)
	return nil
}

// Stats returns the counters accumulated so far. Only call it after Run returns.
func (m *Monitor) Stats() Stats { return m.stats }
