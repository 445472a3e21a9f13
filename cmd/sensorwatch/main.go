// sensorwatch - BME680 MQTT diagnostic console
//
// This is the entry point for sensorwatch, a bench tool that subscribes to
// the BME680 sensor node's MQTT topics and prints each incoming message as
// a human-readable report. It listens only; it never publishes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/tannerhall/sensorwatch/internal/infrastructure/config"
	"github.com/tannerhall/sensorwatch/internal/infrastructure/logging"
	"github.com/tannerhall/sensorwatch/internal/infrastructure/mqtt"
	"github.com/tannerhall/sensorwatch/internal/report"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//   - args: Command-line arguments (without the program name)
//   - out: Destination for sensor reports (stdout in production)
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("sensorwatch", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to YAML config file")
	host := flags.String("host", "", "MQTT broker host (default: localhost)")
	port := flags.Int("port", 0, "MQTT broker port (default: 1883)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	log := logging.Default()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	// Flags override config file values
	if *host != "" {
		cfg.MQTT.Broker.Host = *host
	}
	if *port != 0 {
		cfg.MQTT.Broker.Port = *port
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("starting sensorwatch",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Assemble the core: console sink, dispatcher, transport callbacks
	console := report.NewConsole(out)
	dispatcher := report.NewDispatcher(console)
	handler := report.NewHandler(dispatcher, console)

	broker := fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port)
	log.Info("connecting to MQTT broker", "broker", broker, "client_id", cfg.MQTT.Broker.ClientID)

	client, err := mqtt.Connect(cfg.MQTT, mqtt.Callbacks{
		OnConnect:    handler.HandleConnect,
		OnDisconnect: handler.HandleDisconnect,
	})
	if err != nil {
		return fmt.Errorf("connecting to MQTT: %w", err)
	}
	defer func() {
		log.Info("disconnecting from MQTT")
		if closeErr := client.Close(); closeErr != nil {
			log.Error("error closing MQTT", "error", closeErr)
		}
	}()
	client.SetLogger(log.With("component", "mqtt"))

	// Subscribe to every topic in the registry, in order. The message
	// handler is the same for all of them; routing happens in the
	// dispatcher, not here.
	for _, spec := range report.AllTopics() {
		if err := client.Subscribe(spec.Topic, spec.QoS, handler.HandleMessage); err != nil {
			return fmt.Errorf("subscribing to %s: %w", spec.Topic, err)
		}
		log.Debug("subscribed", "topic", spec.Topic, "qos", spec.QoS)
	}

	// Block until interrupted. All work happens in the paho receive loop.
	<-ctx.Done()
	log.Info("shutting down")

	return nil
}

// loadConfig resolves and loads the configuration.
//
// Resolution order for the path: the -config flag, the SENSORWATCH_CONFIG
// environment variable, then the default path. An explicitly requested file
// must exist; a missing file at the default path just means defaults.
func loadConfig(flagPath string) (*config.Config, error) {
	path := flagPath
	explicit := path != ""
	if !explicit {
		if env := os.Getenv("SENSORWATCH_CONFIG"); env != "" {
			path = env
			explicit = true
		} else {
			path = defaultConfigPath
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
