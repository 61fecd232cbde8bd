package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Ledger    LedgerConfig    `yaml:"ledger"`
	NATS      NATSConfig      `yaml:"nats"`
	Archive   ArchiveConfig   `yaml:"archive"`
	Engine    EngineConfig    `yaml:"engine"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LedgerConfig holds ledger store settings.
type LedgerConfig struct {
	Driver string      `yaml:"driver"` // "redis" or "memory"
	Redis  RedisConfig `yaml:"redis"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// NATSConfig holds NATS connection settings for event publishing.
type NATSConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
}

// ArchiveConfig holds settings for the Postgres bid archive.
type ArchiveConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the Postgres connection string.
func (a ArchiveConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		a.Host, a.Port, a.User, a.Password, a.DBName, a.SSLMode,
	)
}

// EngineConfig holds auction engine tunables.
type EngineConfig struct {
	// MaxRetries bounds every optimistic-transaction retry loop.
	MaxRetries int `yaml:"max_retries"`
	// UserItemsLimit bounds the per-user items listing.
	UserItemsLimit int `yaml:"user_items_limit"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	ServiceName    string `yaml:"service_name"`
	ServiceVersion string `yaml:"service_version"`
	OTLPEndpoint   string `yaml:"otlp_endpoint"`
	Insecure       bool   `yaml:"insecure"`
}

// Load reads a YAML configuration file from the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration defaults applied before parsing.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 15 * time.Second,
		},
		Ledger: LedgerConfig{
			Driver: "redis",
			Redis: RedisConfig{
				Addr: "localhost:6379",
			},
		},
		NATS: NATSConfig{
			URL: "nats://localhost:4222",
		},
		Archive: ArchiveConfig{
			Host:    "localhost",
			Port:    5432,
			SSLMode: "disable",
		},
		Engine: EngineConfig{
			MaxRetries:     5,
			UserItemsLimit: 6,
		},
		Telemetry: TelemetryConfig{
			ServiceName:    "auctiond",
			ServiceVersion: "0.1.0",
		},
	}
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	switch c.Ledger.Driver {
	case "redis", "memory":
		// valid
	default:
		return fmt.Errorf("unsupported ledger driver %q: must be \"redis\" or \"memory\"", c.Ledger.Driver)
	}
	if c.Engine.MaxRetries < 1 {
		return fmt.Errorf("engine.max_retries must be at least 1, got %d", c.Engine.MaxRetries)
	}
	if c.Engine.UserItemsLimit < 1 {
		return fmt.Errorf("engine.user_items_limit must be at least 1, got %d", c.Engine.UserItemsLimit)
	}
	return nil
}
