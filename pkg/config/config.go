// Package config provides configuration structures and loading logic for the
// versicle service, including the cipher table file format and its hot
// reload watcher.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the global configuration for the service.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Table     TableConfig     `yaml:"table"`
	Wire      WireConfig      `yaml:"wire"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	Address           string `yaml:"address"`
	RequestsPerSecond int    `yaml:"requests_per_second"`
	BurstSize         int    `yaml:"burst_size"`
}

// TableConfig holds configuration for the cipher table source.
type TableConfig struct {
	File   string `yaml:"file"`
	Strict bool   `yaml:"strict"`
	Watch  bool   `yaml:"watch"`
}

// WireConfig holds the separator convention for encoded messages.
type WireConfig struct {
	LetterSep string `yaml:"letter_sep"`
	WordSep   string `yaml:"word_sep"`
}

// TelemetryConfig holds configuration for OpenTelemetry.
type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	Insecure     bool   `yaml:"insecure"`
}

// LoggingConfig holds configuration for logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from a file and applies environment variable
// overrides. An empty path loads defaults only.
func Load(path string) (*Config, error) {
	cfg := &Config{
		// Defaults
		Server: ServerConfig{
			Address:           ":8480",
			RequestsPerSecond: 100,
			BurstSize:         200,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}

	if path != "" {
		//nolint:gosec // Config file path is controlled by the operator
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("VERSICLE_ADDR"); val != "" {
		cfg.Server.Address = val
	}
	if val := os.Getenv("VERSICLE_TABLE_FILE"); val != "" {
		cfg.Table.File = val
	}
	if val := os.Getenv("VERSICLE_TABLE_STRICT"); val == "true" {
		cfg.Table.Strict = true
	}
	if val := os.Getenv("VERSICLE_OTLP_ENDPOINT"); val != "" {
		cfg.Telemetry.OTLPEndpoint = val
	}
	if val := os.Getenv("VERSICLE_OTLP_INSECURE"); val == "true" {
		cfg.Telemetry.Insecure = true
	}
	if val := os.Getenv("VERSICLE_LOG_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
}

// Validate verifies the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("server.address must not be empty")
	}
	if c.Server.RequestsPerSecond < 0 || c.Server.BurstSize < 0 {
		return fmt.Errorf("rate limit settings must not be negative")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
