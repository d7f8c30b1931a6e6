package langtour

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Environment variables that override the config file.
const (
	EnvDemos    = "LANGTOUR_DEMOS"     // comma separated demo names
	EnvLogLevel = "LANGTOUR_LOG_LEVEL" // debug, info, warn, error
)

// Config controls which demos the CLI runs and how it logs.
type Config struct {
	// Demos run by `langtour` and `langtour run`, in order.
	Demos []string `yaml:"demos"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the stderr log handler.
type LoggingConfig struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	TimeFormat string `yaml:"time_format"` // Go reference-time layout
	NoColor    bool   `yaml:"no_color"`
}

// DefaultConfig runs only the entry-point demo.
func DefaultConfig() *Config {
	return &Config{
		Demos: []string{"main"},
		Logging: LoggingConfig{
			Level:      "info",
			TimeFormat: "15:04:05",
		},
	}
}

// LoadConfig reads a YAML config. A missing file yields the defaults.
// Environment overrides apply in both cases.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvDemos); v != "" {
		var demos []string
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				demos = append(demos, name)
			}
		}
		c.Demos = demos
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the log level and that every demo exists in registry.
func (c *Config) Validate(registry *Registry) error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if len(c.Demos) == 0 {
		return fmt.Errorf("%w: no demos configured", ErrInvalidConfig)
	}
	for _, name := range c.Demos {
		if _, err := registry.Lookup(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// SlogLevel parses Logging.Level. Empty means info.
func (c *Config) SlogLevel() (slog.Level, error) {
	if c.Logging.Level == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Logging.Level)
	}
	return level, nil
}
