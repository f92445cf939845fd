package main

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/gantrykit/gantry"
	"github.com/gantrykit/gantry/internal/config"
	"github.com/gantrykit/gantry/internal/logging"
	"github.com/gantrykit/gantry/pkg/adapters/demo"
	"github.com/gantrykit/gantry/pkg/adapters/redis"
	"github.com/gantrykit/gantry/pkg/driver"
	"github.com/gantrykit/gantry/pkg/engine"
	"github.com/gantrykit/gantry/pkg/observability"
	"github.com/gantrykit/gantry/pkg/ports"
)

// app bundles everything a command needs after wiring.
type app struct {
	engine  *engine.Engine
	config  config.Config
	logger  *slog.Logger
	metrics *prometheus.Registry
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newDriver(cmd *cobra.Command) (driver.Driver, error) {
	if demoMode, _ := cmd.Flags().GetBool("demo"); demoMode {
		return demo.New(), nil
	}
	// The binary ships without a platform attachment; real applications are
	// driven by embedding the library with a driver.Driver implementation.
	return nil, fmt.Errorf("no platform driver available; run with --demo or embed the library")
}

func newJournal(cfg config.Config) ports.RunJournal {
	if cfg.Journal.Backend == "redis" {
		r := cfg.Journal.Redis
		return redis.New(r.Addr, r.Password, r.DB,
			redis.WithPrefix(r.Prefix),
			redis.WithTTL(r.TTL.Std()))
	}
	return nil // engine defaults to the in-memory journal
}

// newApp wires the engine from flags and config.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger := logging.New(parseLevel(cfg.LogLevel))

	drv, err := newDriver(cmd)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	opts := []engine.Option{
		engine.WithFriendlyName(cfg.FriendlyName),
		engine.WithMetrics(observability.New(registry)),
	}
	if j := newJournal(cfg); j != nil {
		opts = append(opts, engine.WithJournal(j))
	}

	return &app{
		engine:  gantry.NewWithLogger(drv, logger, opts...),
		config:  cfg,
		logger:  logger,
		metrics: registry,
	}, nil
}
