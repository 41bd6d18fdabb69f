package config

import (
	"time"

	"github.com/leandrodaf/midiclock/internal/tempo"
)

// Default values for optional configuration fields.
const (
	DefaultClientName   = "MIDI Clock Receiver"
	DefaultLogLevel     = "info"
	DefaultWindowSize   = tempo.DefaultWindowSize
	DefaultMinIntervals = tempo.DefaultMinIntervals
	DefaultReportEvery  = tempo.DefaultReportEvery
	DefaultPollInterval = time.Millisecond
	DefaultBufferSize   = 1024
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.ClientName == "" {
		c.ClientName = DefaultClientName
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}

	// Monitor defaults
	if c.Monitor.WindowSize == 0 {
		c.Monitor.WindowSize = DefaultWindowSize
	}
	if c.Monitor.MinIntervals == 0 {
		c.Monitor.MinIntervals = DefaultMinIntervals
	}
	if c.Monitor.ReportEvery == 0 {
		c.Monitor.ReportEvery = DefaultReportEvery
	}
	if c.Monitor.PollInterval == 0 {
		c.Monitor.PollInterval = DefaultPollInterval
	}
	if c.Monitor.BufferSize == 0 {
		c.Monitor.BufferSize = DefaultBufferSize
	}
}
