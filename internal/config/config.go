package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Service   ServiceConfig
	Weather   WeatherConfig
	Converter ConverterConfig
	Server    ServerConfig
}

// ServiceConfig tunes the canned backends.
type ServiceConfig struct {
	LatencyMS int   `mapstructure:"latency_ms"`
	Seed      int64 `mapstructure:"seed"` // 0 = seed from the clock
}

// WeatherConfig holds weather module settings.
type WeatherConfig struct {
	DefaultCity string `mapstructure:"default_city"`
}

// ConverterConfig holds converter module settings.
type ConverterConfig struct {
	DebounceMS int `mapstructure:"debounce_ms"`
}

// ServerConfig holds the HTTP facade settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// Latency is the simulated backend delay.
func (c ServiceConfig) Latency() time.Duration {
	return time.Duration(c.LatencyMS) * time.Millisecond
}

// Debounce is how long the converter waits after the last edit before firing.
func (c ConverterConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Load reads configuration from file and env. Env var overrides use prefix
// DAILYDESK_; DAILYDESK_CONFIG points at an explicit config file.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("service.latency_ms", 800)
	v.SetDefault("service.seed", 0)
	v.SetDefault("weather.default_city", "Hyderabad")
	v.SetDefault("converter.debounce_ms", 500)
	v.SetDefault("server.addr", ":8080")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("DAILYDESK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "dailydesk"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DAILYDESK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
