package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"looking-glass/internal/model"
)

// Config holds all client configuration.
type Config struct {
	Environment EnvironmentConfig
	Logger      LoggerConfig

	// LookingGlass specifics
	API     APIConfig
	Journal JournalConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	Output       string // file path or "stderr"
	TUIOutput    string // where logs go while the terminal UI owns the screen
}

// APIConfig describes how to reach the remote log API.
type APIConfig struct {
	BaseURL         string
	Timeout         time.Duration // 0 disables the client timeout
	RateLimitPerSec float64       // 0 disables request pacing
	Burst           int
	CacheSize       int
	CacheTTL        time.Duration
}

type JournalConfig struct {
	Timezone string
}

// Load loads configuration using Viper.
// When configFile is empty, config.yaml is searched in ./config, .,
// $HOME/.looking-glass and /etc/looking-glass/.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".looking-glass"))
		}
		v.AddConfigPath("/etc/looking-glass/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.Output = v.GetString("logger.output")
	cfg.Logger.TUIOutput = v.GetString("logger.tui_output")

	cfg.API.BaseURL = strings.TrimRight(v.GetString("api.base_url"), "/")
	cfg.API.RateLimitPerSec = v.GetFloat64("api.rate_limit_per_sec")
	cfg.API.Burst = v.GetInt("api.burst")
	cfg.API.CacheSize = v.GetInt("api.cache_size")

	var err error
	if cfg.API.Timeout, err = parseDuration(v, "api.timeout"); err != nil {
		return nil, err
	}
	if cfg.API.CacheTTL, err = parseDuration(v, "api.cache_ttl"); err != nil {
		return nil, err
	}

	cfg.Journal.Timezone = v.GetString("journal.timezone")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("logger.output", "stderr")
	v.SetDefault("logger.tui_output", "looking-glass.log")

	v.SetDefault("api.base_url", "http://127.0.0.1:8080")
	v.SetDefault("api.timeout", "0s")
	v.SetDefault("api.rate_limit_per_sec", 5)
	v.SetDefault("api.burst", 5)
	v.SetDefault("api.cache_size", 256)
	v.SetDefault("api.cache_ttl", "30s")

	v.SetDefault("journal.timezone", "UTC")
}

// parseDuration accepts Go duration strings ("10s") and bare integers as seconds.
func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return 0, nil
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d, nil
	}
	if secs := v.GetInt(key); secs > 0 || raw == "0" {
		return time.Duration(secs) * time.Second, nil
	}
	return 0, fmt.Errorf("invalid duration for %s: %q", key, raw)
}

func (cfg *Config) validate() error {
	switch model.Environment(cfg.Environment.Name) {
	case model.EnvironmentDevelopment, model.EnvironmentProduction:
	default:
		return fmt.Errorf("environment.name must be %q or %q, got %q",
			model.EnvironmentDevelopment, model.EnvironmentProduction, cfg.Environment.Name)
	}
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if !strings.HasPrefix(cfg.API.BaseURL, "http://") && !strings.HasPrefix(cfg.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must start with http:// or https://, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	if cfg.API.RateLimitPerSec < 0 {
		return fmt.Errorf("api.rate_limit_per_sec must not be negative")
	}
	if cfg.API.RateLimitPerSec > 0 && cfg.API.Burst <= 0 {
		return fmt.Errorf("api.burst must be positive when rate limiting is enabled")
	}
	if cfg.API.CacheSize < 0 {
		return fmt.Errorf("api.cache_size must not be negative")
	}
	if _, err := time.LoadLocation(cfg.Journal.Timezone); err != nil {
		return fmt.Errorf("invalid journal.timezone %q: %w", cfg.Journal.Timezone, err)
	}
	return nil
}
