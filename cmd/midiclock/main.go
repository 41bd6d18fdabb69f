// Command midiclock listens to a MIDI input and prints the tempo, stability
// and jitter of the incoming MIDI clock.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/leandrodaf/midiclock/internal/config"
	"github.com/leandrodaf/midiclock/internal/display"
	"github.com/leandrodaf/midiclock/internal/logger"
	"github.com/leandrodaf/midiclock/internal/monitor"
	"github.com/leandrodaf/midiclock/internal/prompt"
	"github.com/leandrodaf/midiclock/sdk/contracts"
	"github.com/leandrodaf/midiclock/sdk/midi"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  = flag.String("config", "", "path to a YAML config file")
		portName    = flag.String("port", "", "listen to the first input whose name contains this, skipping the prompt")
		debug       = flag.Bool("debug", false, "enable debug logging")
		plain       = flag.Bool("plain", false, "disable colours")
		logFile     = flag.String("log-file", "", "write logs to this file instead of stderr")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("midiclock", version)
		return 0
	}

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "midiclock: %v\n", err)
		return 2
	}
	if *portName != "" {
		cfg.Port = *portName
	}
	if *debug {
		cfg.Log.Level = contracts.DebugLevel.String()
	}
	if *plain {
		cfg.Display.Plain = true
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}

	log := logger.NewZapLogger()
	if s, ok := log.(interface{ Sync() error }); ok {
		defer s.Sync()
	}

	console := display.NewConsole(os.Stdout, cfg.Display.Plain)
	console.Banner()

	client, err := midi.NewMIDIClient(
		contracts.WithLogger(log),
		contracts.WithLogLevel(cfg.LogLevel()),
		contracts.WithLogFile(cfg.Log.File),
		contracts.WithMIDIEventFilter(contracts.ClockFilter()),
		contracts.WithCoreMIDIConfig(contracts.CoreMIDIConfig{ClientName: cfg.ClientName}),
	)
	if err != nil {
		log.Error("Failed to initialize MIDI client", log.Field().Error("error", err))
		console.Error(err)
		return 1
	}
	defer func() {
		if err := client.Stop(); err != nil {
			log.Error("Failed to stop MIDI client", log.Field().Error("error", err))
		}
	}()

	devices, code, ok := listPorts(client, console, log)
	if !ok {
		return code
	}

	choice, err := prompt.SelectPort(os.Stdin, os.Stdout, devices, cfg.Port)
	if err != nil {
		log.Debug("Port selection failed", log.Field().Error("error", err))
		console.InvalidSelection()
		return 1
	}

	if err := client.SelectDevice(choice); err != nil {
		log.Error("Failed to select MIDI device", log.Field().Error("error", err))
		console.Error(err)
		return 1
	}
	console.Listening(devices[choice].Name)

	events := make(chan contracts.MIDI, cfg.Monitor.BufferSize)
	client.StartCapture(events)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mon := monitor.New(cfg.MonitorSettings(), console, log)
	if err := mon.Run(ctx, events); err != nil {
		console.Error(err)
		return 1
	}

	console.Stopped()
	return 0
}
