package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guard/pkg/config"
)

type fileSettings struct {
	Language   string   `env:"TEST_GUARD_LANGUAGE"`
	LocalesDir string   `env:"TEST_GUARD_LOCALES_DIR"`
	Fallback   bool     `env:"TEST_GUARD_FALLBACK"`
	Parameters []string `env:"TEST_GUARD_PARAMETERS" envSeparator:","`
	Prefix     string   `env:"TEST_GUARD_PREFIX"`
	Empty      string   `env:"TEST_GUARD_EMPTY"`
	Priority   string   `env:"TEST_PRIORITY"`
}

type overrideSettings struct {
	Unique   string `env:"TEST_OVERRIDE_UNIQUE"`
	Language string `env:"TEST_GUARD_LANGUAGE"`
}

var fileVars = []string{
	"TEST_GUARD_LANGUAGE",
	"TEST_GUARD_LOCALES_DIR",
	"TEST_GUARD_FALLBACK",
	"TEST_GUARD_PARAMETERS",
	"TEST_GUARD_PREFIX",
	"TEST_GUARD_EMPTY",
	"TEST_PRIORITY",
	"TEST_OVERRIDE_UNIQUE",
}

func clearFileVars(t *testing.T) {
	t.Helper()
	for _, key := range fileVars {
		os.Unsetenv(key)
	}
	config.ResetCache()
	t.Cleanup(func() {
		for _, key := range fileVars {
			os.Unsetenv(key)
		}
		config.ResetCache()
	})
}

func TestLoadEnv_CustomPath(t *testing.T) {
	clearFileVars(t)

	require.NoError(t, config.LoadEnv("testdata/.env.custom"))

	var cfg fileSettings
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, "./locales", cfg.LocalesDir)
	assert.True(t, cfg.Fallback)
	assert.Equal(t, []string{"amount", "currency", "email"}, cfg.Parameters)
	assert.Equal(t, "guard: ", cfg.Prefix)
	assert.Empty(t, cfg.Empty)
	assert.Equal(t, "custom_file_value", cfg.Priority)
}

func TestLoadEnv_MultiplePaths(t *testing.T) {
	clearFileVars(t)

	require.NoError(t, config.LoadEnv("testdata/.env.custom", "testdata/.env.override"))

	var cfg fileSettings
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "ru", cfg.Language, "later files override earlier ones")
	assert.Equal(t, "override_value", cfg.Priority)
	assert.Equal(t, "./locales", cfg.LocalesDir)

	var override overrideSettings
	require.NoError(t, config.Load(&override))
	assert.Equal(t, "unique_to_override", override.Unique)
	assert.Equal(t, "ru", override.Language)
}

func TestLoadEnv_NonExistentPath(t *testing.T) {
	err := config.LoadEnv("testdata/non_existent_file.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestMustLoadEnv(t *testing.T) {
	clearFileVars(t)

	assert.NotPanics(t, func() {
		config.MustLoadEnv("testdata/.env.custom")
	})
	assert.Panics(t, func() {
		config.MustLoadEnv("testdata/non_existent_file.env")
	})
}
