package config

import (
	"testing"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CURRENCY", "")
	t.Setenv("RANDOM_SEED", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, currency.USD, cfg.Currency)
	assert.Nil(t, cfg.RandomSeed)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CURRENCY", "eur")
	t.Setenv("RANDOM_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, currency.EUR, cfg.Currency)
	require.NotNil(t, cfg.RandomSeed)
	assert.Equal(t, uint64(42), *cfg.RandomSeed)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		values    map[string]any
		wantError []string
	}{
		{
			name:      "unknown currency: error",
			values:    map[string]any{"CURRENCY": "ZZZ"},
			wantError: []string{"CURRENCY[ZZZ] is not valid"},
		},
		{
			name:      "negative seed: error",
			values:    map[string]any{"RANDOM_SEED": "-1"},
			wantError: []string{"RANDOM_SEED[-1] is not valid"},
		},
		{
			name:   "both invalid: error",
			values: map[string]any{"CURRENCY": "dollars", "RANDOM_SEED": "abc"},
			wantError: []string{
				"CURRENCY[DOLLARS] is not valid",
				"RANDOM_SEED[abc] is not valid",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := koanf.New(".")
			require.NoError(t, k.Load(confmap.Provider(tt.values, "."), nil))

			_, err := parse(k)
			require.Error(t, err)
			for _, msg := range tt.wantError {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}
