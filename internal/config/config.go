package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mtlprog/patrimoine/internal/domain"
	"github.com/mtlprog/patrimoine/internal/format"
	"github.com/mtlprog/patrimoine/internal/rates"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	HTTPPort     string
	RatesURL     string
	RatesTimeout time.Duration
	DefaultBase  domain.Currency
	Locale       string
	HoldingsFile string
	LogLevel     slog.Level
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		HTTPPort:     envOrDefault("HTTP_PORT", "8080"),
		RatesURL:     envOrDefault("RATES_URL", rates.DefaultURL),
		RatesTimeout: envOrDefaultDuration("RATES_TIMEOUT", 10*time.Second),
		DefaultBase:  envOrDefaultBase("DEFAULT_BASE", domain.ReferenceCurrency),
		Locale:       envOrDefault("LOCALE", format.DefaultLocale),
		HoldingsFile: envOrDefault("HOLDINGS_FILE", ""),
		LogLevel:     envOrDefaultLevel("LOG_LEVEL", slog.LevelInfo),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			slog.Warn("Config: expected a positive duration such as 10s, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}

func envOrDefaultBase(key string, defaultVal domain.Currency) domain.Currency {
	if v := os.Getenv(key); v != "" {
		c := domain.NormalizeCurrency(v)
		if !domain.IsDisplayCurrency(c) {
			slog.Warn("Config: base currency must be one of the display currencies, using default", "key", key, "value", v, "allowed", domain.DisplayCurrencies, "default", defaultVal)
			return defaultVal
		}
		return c
	}
	return defaultVal
}

func envOrDefaultLevel(key string, defaultVal slog.Level) slog.Level {
	if v := os.Getenv(key); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			slog.Warn("Config: unknown log level, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return level
	}
	return defaultVal
}
