package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/homeledger/inventory/internal/inventory/service"
	"github.com/homeledger/inventory/pkg/cryptox"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Env       string `yaml:"env"`        // dev, staging, prod (default: dev)
	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error (default: info)
	LogFormat string `yaml:"log_format"` // json, text (default: json)
	Port      int    `yaml:"port"`       // HTTP port (default: 8080)

	DatabaseFile string `yaml:"database_file"` // SQLite file (default: ./inventory.db)
	PepperFile   string `yaml:"pepper_file"`   // password pepper, created on first use (default: ./pepper)

	// SessionSecret signs session tokens. Required outside dev; in dev a
	// random one is generated per process.
	SessionSecret    string        `yaml:"session_secret"`
	Issuer           string        `yaml:"issuer"`
	SessionTTL       time.Duration `yaml:"session_ttl"`
	RefreshThreshold time.Duration `yaml:"refresh_threshold"`

	InviteTTL       time.Duration `yaml:"invite_ttl"`       // zero: invites never expire
	InviteRetention time.Duration `yaml:"invite_retention"` // how long dead invites are kept

	ShutdownGracePeriod  time.Duration `yaml:"shutdown_grace_period"`
	HousekeepingInterval time.Duration `yaml:"housekeeping_interval"`

	// generatedSecret is set when SessionSecret was filled in for dev.
	generatedSecret bool
}

func defaultConfig() Config {
	return Config{
		Env:                  "dev",
		LogLevel:             "info",
		LogFormat:            "json",
		Port:                 8080,
		DatabaseFile:         "inventory.db",
		PepperFile:           "pepper",
		Issuer:               "homeledger-inventory",
		SessionTTL:           service.DefaultSessionTTL,
		RefreshThreshold:     service.DefaultRefreshThreshold,
		InviteRetention:      service.DefaultInviteRetention,
		ShutdownGracePeriod:  10 * time.Second,
		HousekeepingInterval: time.Hour,
	}
}

// LoadConfig builds the configuration from defaults, then the YAML file named
// by INVENTORY_CONFIG_FILE if any, then environment variables.
func LoadConfig() (Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("INVENTORY_CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	cfg.Env = getEnvOrDefault("ENV", cfg.Env)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.Port = getEnvIntOrDefault("PORT", cfg.Port)

	cfg.DatabaseFile = getEnvOrDefault("INVENTORY_DATABASE_FILE", cfg.DatabaseFile)
	cfg.PepperFile = getEnvOrDefault("INVENTORY_PEPPER_FILE", cfg.PepperFile)

	cfg.SessionSecret = getEnvOrDefault("INVENTORY_SESSION_SECRET", cfg.SessionSecret)
	cfg.Issuer = getEnvOrDefault("INVENTORY_ISSUER", cfg.Issuer)
	cfg.SessionTTL = getEnvDurationOrDefault("INVENTORY_SESSION_TTL", cfg.SessionTTL)
	cfg.RefreshThreshold = getEnvDurationOrDefault("INVENTORY_REFRESH_THRESHOLD", cfg.RefreshThreshold)
	cfg.InviteTTL = getEnvDurationOrDefault("INVENTORY_INVITE_TTL", cfg.InviteTTL)
	cfg.InviteRetention = getEnvDurationOrDefault("INVENTORY_INVITE_RETENTION", cfg.InviteRetention)

	cfg.ShutdownGracePeriod = getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", cfg.ShutdownGracePeriod)
	cfg.HousekeepingInterval = getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", cfg.HousekeepingInterval)
}

// minSecretLen matches the HS256 key size.
const minSecretLen = 32

var (
	ErrMissingSecret = errors.New("INVENTORY_SESSION_SECRET is required outside dev")
	ErrShortSecret   = fmt.Errorf("session secret must be at least %d bytes", minSecretLen)
)

// Validate rejects unusable settings. In dev it fills in a random session
// secret when none is configured.
func (c *Config) Validate() error {
	switch c.Env {
	case "dev", "staging", "prod":
	default:
		return fmt.Errorf("unknown env %q", c.Env)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.DatabaseFile == "" {
		return errors.New("database file is required")
	}

	if c.SessionSecret == "" {
		if c.Env != "dev" {
			return ErrMissingSecret
		}
		secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return err
		}
		c.SessionSecret = secret
		c.generatedSecret = true
	}
	if len(c.SessionSecret) < minSecretLen {
		return ErrShortSecret
	}

	if c.SessionTTL <= 0 {
		return errors.New("session ttl must be positive")
	}
	if c.RefreshThreshold <= 0 || c.RefreshThreshold >= c.SessionTTL {
		return errors.New("refresh threshold must be positive and shorter than the session ttl")
	}
	if c.InviteTTL < 0 {
		return errors.New("invite ttl must not be negative")
	}
	if c.InviteRetention <= 0 || c.HousekeepingInterval <= 0 {
		return errors.New("invite retention and housekeeping interval must be positive")
	}
	return nil
}

// SecureCookies reports whether session cookies need the Secure flag.
func (c Config) SecureCookies() bool { return c.Env != "dev" }

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
