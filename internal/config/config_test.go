package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// os.UserConfigDir needs HOME in a bare test environment.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Provider.BaseURL != "https://api.mail.tm" {
		t.Errorf("BaseURL = %s", cfg.Provider.BaseURL)
	}
	if cfg.Provider.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v", cfg.Provider.Timeout)
	}
	if cfg.Provider.MaxRetries != 3 || cfg.Provider.RetryDelay != time.Second {
		t.Errorf("retry config = %d/%v", cfg.Provider.MaxRetries, cfg.Provider.RetryDelay)
	}
	if cfg.Provider.CreateMaxRetries != 5 || cfg.Provider.CreateRetryDelay != 3*time.Second {
		t.Errorf("create retry config = %d/%v", cfg.Provider.CreateMaxRetries, cfg.Provider.CreateRetryDelay)
	}
	if cfg.Provider.PacingDelay != time.Second {
		t.Errorf("PacingDelay = %v", cfg.Provider.PacingDelay)
	}
	if cfg.Store.ExpirationWindow != 168*time.Hour {
		t.Errorf("ExpirationWindow = %v", cfg.Store.ExpirationWindow)
	}
	if cfg.Log.Level != "info" || cfg.Log.Development {
		t.Errorf("log config = %s/%v", cfg.Log.Level, cfg.Log.Development)
	}
	if filepath.Base(cfg.Store.Path) != "addresses.json" {
		t.Errorf("store path = %s", cfg.Store.Path)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TEMPMAIL_PROVIDER_BASE_URL", "https://mail.example")
	t.Setenv("TEMPMAIL_PROVIDER_TIMEOUT", "30s")
	t.Setenv("TEMPMAIL_PROVIDER_MAX_RETRIES", "6")
	t.Setenv("TEMPMAIL_STORE_PATH", "/tmp/custom/addresses.json")
	t.Setenv("TEMPMAIL_STORE_EXPIRATION_WINDOW", "24h")
	t.Setenv("TEMPMAIL_LOG_LEVEL", "debug")
	t.Setenv("TEMPMAIL_LOG_DEVELOPMENT", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Provider.BaseURL != "https://mail.example" {
		t.Errorf("BaseURL = %s", cfg.Provider.BaseURL)
	}
	if cfg.Provider.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v", cfg.Provider.Timeout)
	}
	if cfg.Provider.MaxRetries != 6 {
		t.Errorf("MaxRetries = %d", cfg.Provider.MaxRetries)
	}
	if cfg.Store.Path != "/tmp/custom/addresses.json" {
		t.Errorf("store path = %s", cfg.Store.Path)
	}
	if cfg.Store.ExpirationWindow != 24*time.Hour {
		t.Errorf("ExpirationWindow = %v", cfg.Store.ExpirationWindow)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.Development {
		t.Errorf("log config = %s/%v", cfg.Log.Level, cfg.Log.Development)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantMsg string
	}{
		{"bad log level", "TEMPMAIL_LOG_LEVEL", "verbose", "log level"},
		{"zero retries", "TEMPMAIL_PROVIDER_MAX_RETRIES", "0", "max retries"},
		{"zero create retries", "TEMPMAIL_PROVIDER_CREATE_MAX_RETRIES", "0", "create max retries"},
		{"negative timeout", "TEMPMAIL_PROVIDER_TIMEOUT", "-1s", "timeout"},
		{"zero window", "TEMPMAIL_STORE_EXPIRATION_WINDOW", "0", "expiration window"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want mention of %q", err, tt.wantMsg)
			}
		})
	}
}
