// Package config loads application configuration from environment
// variables with an optional .env file, using TEMPMAIL_-prefixed keys
// (e.g. TEMPMAIL_PROVIDER_BASE_URL, TEMPMAIL_LOG_LEVEL).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ProviderConfig configures the mail provider client.
type ProviderConfig struct {
	BaseURL          string
	Timeout          time.Duration
	MaxRetries       int
	RetryDelay       time.Duration
	CreateMaxRetries int
	CreateRetryDelay time.Duration
	PacingDelay      time.Duration
}

// StoreConfig configures the local address store.
type StoreConfig struct {
	Path             string
	ExpirationWindow time.Duration
}

// LogConfig configures logging.
type LogConfig struct {
	Level       string
	Development bool
}

// Config is the root application configuration.
type Config struct {
	Provider ProviderConfig
	Store    StoreConfig
	Log      LogConfig
}

// Load reads configuration from the environment, with defaults for
// everything. Precedence: environment variables, then a .env file in
// the working directory, then defaults.
func Load() (*Config, error) {
	// .env is optional; ignore a missing file.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("tempmail")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("provider.base_url", "https://api.mail.tm")
	v.SetDefault("provider.timeout", "10s")
	v.SetDefault("provider.max_retries", 3)
	v.SetDefault("provider.retry_delay", "1s")
	v.SetDefault("provider.create_max_retries", 5)
	v.SetDefault("provider.create_retry_delay", "3s")
	v.SetDefault("provider.pacing_delay", "1s")
	v.SetDefault("store.path", "")
	v.SetDefault("store.expiration_window", "168h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	cfg := &Config{
		Provider: ProviderConfig{
			BaseURL:          v.GetString("provider.base_url"),
			Timeout:          v.GetDuration("provider.timeout"),
			MaxRetries:       v.GetInt("provider.max_retries"),
			RetryDelay:       v.GetDuration("provider.retry_delay"),
			CreateMaxRetries: v.GetInt("provider.create_max_retries"),
			CreateRetryDelay: v.GetDuration("provider.create_retry_delay"),
			PacingDelay:      v.GetDuration("provider.pacing_delay"),
		},
		Store: StoreConfig{
			Path:             v.GetString("store.path"),
			ExpirationWindow: v.GetDuration("store.expiration_window"),
		},
		Log: LogConfig{
			Level:       v.GetString("log.level"),
			Development: v.GetBool("log.development"),
		},
	}

	if cfg.Store.Path == "" {
		path, err := defaultStorePath()
		if err != nil {
			return nil, err
		}
		cfg.Store.Path = path
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Provider.BaseURL == "" {
		return fmt.Errorf("provider base URL must not be empty")
	}
	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("provider timeout must be positive, got %v", c.Provider.Timeout)
	}
	if c.Provider.MaxRetries < 1 {
		return fmt.Errorf("provider max retries must be at least 1, got %d", c.Provider.MaxRetries)
	}
	if c.Provider.CreateMaxRetries < 1 {
		return fmt.Errorf("provider create max retries must be at least 1, got %d", c.Provider.CreateMaxRetries)
	}
	if c.Store.ExpirationWindow <= 0 {
		return fmt.Errorf("store expiration window must be positive, got %v", c.Store.ExpirationWindow)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

// defaultStorePath places the store in the per-user configuration
// directory, e.g. ~/.config/temp-email-cli/addresses.json on Linux.
func defaultStorePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config directory: %w", err)
	}
	return filepath.Join(dir, "temp-email-cli", "addresses.json"), nil
}
