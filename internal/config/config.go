package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/currency"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	LogFormat string
	LogLevel  string
	Currency  currency.Unit
	// RandomSeed is nil when the generator should be seeded from the runtime.
	RandomSeed *uint64
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	return parse(k)
}

func parse(k *koanf.Koanf) (*Config, error) {
	var errs []error

	cfg := &Config{
		LogFormat: valueOrDefault(k.String("LOG_FORMAT"), "json"),
		LogLevel:  valueOrDefault(k.String("LOG_LEVEL"), "info"),
	}

	code := strings.ToUpper(valueOrDefault(k.String("CURRENCY"), "USD"))
	unit, err := currency.ParseISO(code)
	if err != nil {
		errs = append(errs, fmt.Errorf("CURRENCY[%s] is not valid: %w", code, err))
	}
	cfg.Currency = unit

	if raw := strings.TrimSpace(k.String("RANDOM_SEED")); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("RANDOM_SEED[%s] is not valid: %w", raw, err))
		} else {
			cfg.RandomSeed = &seed
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
