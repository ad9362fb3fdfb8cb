package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ENV", "PORT", "LOG_LEVEL", "LOG_FORMAT",
		"INVENTORY_CONFIG_FILE", "INVENTORY_DATABASE_FILE", "INVENTORY_SESSION_SECRET",
		"INVENTORY_SESSION_TTL", "INVENTORY_REFRESH_THRESHOLD", "INVENTORY_INVITE_TTL",
		"HOUSEKEEPING_INTERVAL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	require.Equal(t, 3*24*time.Hour, cfg.RefreshThreshold)
	require.Zero(t, cfg.InviteTTL)
	require.True(t, cfg.generatedSecret)
	require.GreaterOrEqual(t, len(cfg.SessionSecret), minSecretLen)
	require.False(t, cfg.SecureCookies())
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: prod
port: 9000
session_secret: 0123456789abcdef0123456789abcdef
session_ttl: 48h
refresh_threshold: 12h
invite_ttl: 72h
`), 0o600))
	t.Setenv("INVENTORY_CONFIG_FILE", path)
	t.Setenv("PORT", "9100")
	t.Setenv("INVENTORY_INVITE_TTL", "30") // minutes

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, 9100, cfg.Port)
	require.Equal(t, 48*time.Hour, cfg.SessionTTL)
	require.Equal(t, 12*time.Hour, cfg.RefreshThreshold)
	require.Equal(t, 30*time.Minute, cfg.InviteTTL)
	require.False(t, cfg.generatedSecret)
	require.True(t, cfg.SecureCookies())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing secret in prod", func(c *Config) { c.Env = "prod" }},
		{"short secret", func(c *Config) { c.SessionSecret = "short" }},
		{"unknown env", func(c *Config) { c.Env = "qa" }},
		{"threshold past ttl", func(c *Config) { c.RefreshThreshold = c.SessionTTL }},
		{"negative invite ttl", func(c *Config) { c.InviteTTL = -time.Hour }},
		{"bad port", func(c *Config) { c.Port = 70000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}

	cfg := defaultConfig()
	cfg.Env = "prod"
	require.ErrorIs(t, cfg.Validate(), ErrMissingSecret)
}
