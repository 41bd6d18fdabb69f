package config

import (
	"time"

	"github.com/leandrodaf/midiclock/internal/monitor"
	"github.com/leandrodaf/midiclock/internal/tempo"
	"github.com/leandrodaf/midiclock/sdk/contracts"
)

// Config is the top-level configuration.
type Config struct {
	ClientName string        `yaml:"client_name"`
	Port       string        `yaml:"port"` // preselects the first input whose name contains this
	Log        LogConfig     `yaml:"log"`
	Monitor    MonitorConfig `yaml:"monitor"`
	Display    DisplayConfig `yaml:"display"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty logs to stderr
}

// MonitorConfig holds the polling loop and tracker settings.
type MonitorConfig struct {
	WindowSize   int           `yaml:"window_size"`
	MinIntervals int           `yaml:"min_intervals"`
	ReportEvery  int           `yaml:"report_every"`
	PollInterval time.Duration `yaml:"poll_interval"`
	BufferSize   int           `yaml:"buffer_size"` // capacity of the capture channel
}

// DisplayConfig holds console output settings.
type DisplayConfig struct {
	Plain bool `yaml:"plain"`
}

// LogLevel returns the parsed log level. Validate has already rejected bad names.
func (c *Config) LogLevel() contracts.LogLevel {
	level, _ := contracts.ParseLogLevel(c.Log.Level)
	return level
}

// MonitorSettings converts the monitor section for monitor.New.
func (c *Config) MonitorSettings() monitor.Config {
	return monitor.Config{
		PollInterval: c.Monitor.PollInterval,
		Tracker: tempo.Config{
			WindowSize:   c.Monitor.WindowSize,
			MinIntervals: c.Monitor.MinIntervals,
			ReportEvery:  c.Monitor.ReportEvery,
		},
	}
}
