// Package config loads engine configuration from YAML or JSON files.
// Everything has a sensible default; a missing file is not an error at the
// CLI layer, which falls back to Default.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the engine's process configuration.
type Config struct {
	// FriendlyName is the display name reported in catalog responses.
	FriendlyName string `yaml:"friendly_name" json:"friendly_name"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	HTTP    HTTP    `yaml:"http" json:"http"`
	Journal Journal `yaml:"journal" json:"journal"`
}

// HTTP configures the HTTP transport.
type HTTP struct {
	// Addr is the listen address for the serve command.
	Addr string `yaml:"addr" json:"addr"`
}

// Journal selects and configures the run journal backend.
type Journal struct {
	// Backend is "memory" or "redis".
	Backend string `yaml:"backend" json:"backend"`
	Redis   Redis  `yaml:"redis" json:"redis"`
}

// Redis configures the redis journal backend.
type Redis struct {
	Addr     string   `yaml:"addr" json:"addr"`
	Password string   `yaml:"password" json:"password"`
	DB       int      `yaml:"db" json:"db"`
	Prefix   string   `yaml:"prefix" json:"prefix"`
	TTL      Duration `yaml:"ttl" json:"ttl"`
}

// Duration parses the usual Go duration strings ("30s", "5m") from both
// YAML and JSON.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return d.parse(raw)
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return d.parse(raw)
}

func (d *Duration) parse(raw string) error {
	if raw == "" {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		FriendlyName: "SAP GUI Bridge",
		LogLevel:     "info",
		HTTP: HTTP{
			Addr: ":8718",
		},
		Journal: Journal{
			Backend: "memory",
			Redis: Redis{
				Addr:   "localhost:6379",
				Prefix: "gantry:run:",
			},
		},
	}
}

// Load reads a configuration file, layering it over Default. The format
// follows the file extension; anything that is not .json parses as YAML.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	switch filepath.Ext(path) {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Journal.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown journal backend %q", c.Journal.Backend)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
