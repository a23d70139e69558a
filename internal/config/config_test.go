package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Point at a missing file so a developer's real config can't leak in.
	t.Setenv("DAILYDESK_CONFIG", filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 800, cfg.Service.LatencyMS)
	require.Equal(t, int64(0), cfg.Service.Seed)
	require.Equal(t, "Hyderabad", cfg.Weather.DefaultCity)
	require.Equal(t, 500, cfg.Converter.DebounceMS)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, 800*time.Millisecond, cfg.Service.Latency())
	require.Equal(t, 500*time.Millisecond, cfg.Converter.Debounce())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DAILYDESK_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
	t.Setenv("DAILYDESK_SERVICE_LATENCY_MS", "5")
	t.Setenv("DAILYDESK_WEATHER_DEFAULT_CITY", "London")
	t.Setenv("DAILYDESK_SERVER_ADDR", ":9999")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Service.LatencyMS)
	require.Equal(t, "London", cfg.Weather.DefaultCity)
	require.Equal(t, ":9999", cfg.Server.Addr)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte("[service]\nlatency_ms = 50\nseed = 42\n\n[converter]\ndebounce_ms = 100\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv("DAILYDESK_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 50, cfg.Service.LatencyMS)
	require.Equal(t, int64(42), cfg.Service.Seed)
	require.Equal(t, 100, cfg.Converter.DebounceMS)
	// untouched keys keep their defaults
	require.Equal(t, "Hyderabad", cfg.Weather.DefaultCity)
}
