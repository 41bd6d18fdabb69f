package config

import (
	"errors"
	"fmt"

	"github.com/leandrodaf/midiclock/sdk/contracts"
)

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if c.ClientName == "" {
		return errors.New("client_name is required")
	}
	if _, err := contracts.ParseLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	m := c.Monitor
	if m.WindowSize < 2 {
		return fmt.Errorf("monitor.window_size must be >= 2, got %d", m.WindowSize)
	}
	if m.MinIntervals < 2 {
		return fmt.Errorf("monitor.min_intervals must be >= 2, got %d", m.MinIntervals)
	}
	if m.MinIntervals > m.WindowSize {
		return fmt.Errorf("monitor.min_intervals (%d) cannot exceed window_size (%d)", m.MinIntervals, m.WindowSize)
	}
	if m.ReportEvery < 1 {
		return errors.New("monitor.report_every must be >= 1")
	}
	if m.PollInterval <= 0 {
		return errors.New("monitor.poll_interval must be positive")
	}
	if m.BufferSize < 1 {
		return errors.New("monitor.buffer_size must be >= 1")
	}
	return nil
}
