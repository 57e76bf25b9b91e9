// Package config loads the three external inputs the SIMM engine needs
// (spec.md §6: weights_and_corr_version, calculation_currency, exchange_rate)
// plus logger settings, from environment variables / a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the external configuration for a single SIMM run.
type Config struct {
	WeightsAndCorrVersion string  // "2_5", "2_6", "2_7"
	CalculationCurrency   string  // exactly three uppercase letters
	ExchangeRate          float64 // multiplier applied to all per-risk-class charges
	LogLevel              string  // debug, info, warn, error
	Pretty                bool    // pretty console logging
}

// Load reads configuration from environment variables, loading a .env file
// first if one is present. Unset values fall back to sane defaults; callers
// that need the config.db-backed override layer the teacher's trading bot
// used (settings take precedence over env) have no SIMM analogue, so this
// is a single-pass load with no later "UpdateFromSettings" step.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		WeightsAndCorrVersion: getEnv("SIMM_VERSION", "2_6"),
		CalculationCurrency:   strings.ToUpper(getEnv("SIMM_CALC_CCY", "USD")),
		LogLevel:              getEnv("SIMM_LOG_LEVEL", "info"),
		Pretty:                getEnvBool("SIMM_LOG_PRETTY", false),
	}

	rate, err := strconv.ParseFloat(getEnv("SIMM_EXCHANGE_RATE", "1"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parsing SIMM_EXCHANGE_RATE: %w", err)
	}
	cfg.ExchangeRate = rate

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the invariants spec.md §6 places on the configuration.
func (c Config) Validate() error {
	switch c.WeightsAndCorrVersion {
	case "2_5", "2_6", "2_7":
	default:
		return fmt.Errorf("unknown weights_and_corr_version %q", c.WeightsAndCorrVersion)
	}
	if len(c.CalculationCurrency) != 3 {
		return fmt.Errorf("calculation_currency must be exactly three letters, got %q", c.CalculationCurrency)
	}
	for _, r := range c.CalculationCurrency {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("calculation_currency must be uppercase letters, got %q", c.CalculationCurrency)
		}
	}
	if c.ExchangeRate <= 0 {
		return fmt.Errorf("exchange_rate must be > 0, got %v", c.ExchangeRate)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
