package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/mtlprog/patrimoine/internal/domain"
	"github.com/mtlprog/patrimoine/internal/rates"
)

func TestLoadDefaults(t *testing.T) {
	// Clear any env vars that might affect defaults
	for _, key := range []string{"HTTP_PORT", "RATES_URL", "RATES_TIMEOUT", "DEFAULT_BASE", "LOCALE", "HOLDINGS_FILE", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q, want 8080", cfg.HTTPPort)
	}
	if cfg.RatesURL != rates.DefaultURL {
		t.Errorf("RatesURL = %q, want default", cfg.RatesURL)
	}
	if cfg.RatesTimeout != 10*time.Second {
		t.Errorf("RatesTimeout = %v, want 10s", cfg.RatesTimeout)
	}
	if cfg.DefaultBase != domain.EUR {
		t.Errorf("DefaultBase = %q, want EUR", cfg.DefaultBase)
	}
	if cfg.Locale != "fr-FR" {
		t.Errorf("Locale = %q, want fr-FR", cfg.Locale)
	}
	if cfg.HoldingsFile != "" {
		t.Errorf("HoldingsFile = %q, want empty", cfg.HoldingsFile)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want INFO", cfg.LogLevel)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("RATES_URL", "https://rates.example.com/latest/EUR")
	t.Setenv("RATES_TIMEOUT", "3s")
	t.Setenv("DEFAULT_BASE", "aed")
	t.Setenv("LOCALE", "en-US")
	t.Setenv("HOLDINGS_FILE", "/etc/patrimoine/holdings.yaml")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %q, want 9090", cfg.HTTPPort)
	}
	if cfg.RatesURL != "https://rates.example.com/latest/EUR" {
		t.Errorf("RatesURL = %q, want override", cfg.RatesURL)
	}
	if cfg.RatesTimeout != 3*time.Second {
		t.Errorf("RatesTimeout = %v, want 3s", cfg.RatesTimeout)
	}
	if cfg.DefaultBase != domain.AED {
		t.Errorf("DefaultBase = %q, want AED", cfg.DefaultBase)
	}
	if cfg.Locale != "en-US" {
		t.Errorf("Locale = %q, want en-US", cfg.Locale)
	}
	if cfg.HoldingsFile != "/etc/patrimoine/holdings.yaml" {
		t.Errorf("HoldingsFile = %q, want override", cfg.HoldingsFile)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want DEBUG", cfg.LogLevel)
	}
}

func TestLoadInvalidEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("RATES_TIMEOUT", "invalid-duration")
	t.Setenv("DEFAULT_BASE", "GEL")
	t.Setenv("LOG_LEVEL", "chatty")

	cfg := Load()

	if cfg.RatesTimeout != 10*time.Second {
		t.Errorf("RatesTimeout = %v, want default 10s on invalid input", cfg.RatesTimeout)
	}
	if cfg.DefaultBase != domain.EUR {
		t.Errorf("DefaultBase = %q, want default EUR on unsupported input", cfg.DefaultBase)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want default INFO on invalid input", cfg.LogLevel)
	}
}

func TestLoadNonPositiveTimeoutFallsBackToDefault(t *testing.T) {
	for _, v := range []string{"0s", "-5s"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("RATES_TIMEOUT", v)

			if got := Load().RatesTimeout; got != 10*time.Second {
				t.Errorf("RatesTimeout = %v, want default 10s for %q", got, v)
			}
		})
	}
}
