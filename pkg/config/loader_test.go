package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guard/pkg/config"
)

type catalogDefaults struct {
	Language      string `env:"DEFAULT_GUARD_LANGUAGE" envDefault:"en"`
	FallbackToKey bool   `env:"DEFAULT_GUARD_FALLBACK" envDefault:"true"`
	CacheSize     int    `env:"DEFAULT_GUARD_CACHE_SIZE" envDefault:"64"`
}

type catalogSettings struct {
	Language  string `env:"SUCCESS_GUARD_LANGUAGE" envDefault:"en"`
	LogMiss   bool   `env:"SUCCESS_GUARD_LOG_MISSING" envDefault:"false"`
	CacheSize int    `env:"SUCCESS_GUARD_CACHE_SIZE" envDefault:"64"`
}

type cachedSettings struct {
	Language string `env:"CACHED_GUARD_LANGUAGE" envDefault:"en"`
}

type loggerSettings struct {
	Level string `env:"SEPARATE_GUARD_LOG_LEVEL" envDefault:"info"`
}

type formatSettings struct {
	Format string `env:"SEPARATE_GUARD_LOG_FORMAT" envDefault:"text"`
}

type requiredSettings struct {
	Dir string `env:"REQUIRED_GUARD_LOCALES_DIR,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("SUCCESS_GUARD_LANGUAGE", "de")
	t.Setenv("SUCCESS_GUARD_LOG_MISSING", "true")
	t.Setenv("SUCCESS_GUARD_CACHE_SIZE", "128")

	var cfg catalogSettings
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Language)
	assert.True(t, cfg.LogMiss)
	assert.Equal(t, 128, cfg.CacheSize)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("DEFAULT_GUARD_LANGUAGE")
	os.Unsetenv("DEFAULT_GUARD_FALLBACK")
	os.Unsetenv("DEFAULT_GUARD_CACHE_SIZE")

	var cfg catalogDefaults
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Language)
	assert.True(t, cfg.FallbackToKey)
	assert.Equal(t, 64, cfg.CacheSize)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_GUARD_LOCALES_DIR")
	t.Cleanup(config.ResetCache)

	var cfg requiredSettings
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("CACHED_GUARD_LANGUAGE", "de")

	var first cachedSettings
	require.NoError(t, config.Load(&first))

	t.Setenv("CACHED_GUARD_LANGUAGE", "ru")

	var second cachedSettings
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "de", second.Language, "second load must be served from cache")

	var reloaded cachedSettings
	require.NoError(t, config.ForceReloadConfig(&reloaded))
	assert.Equal(t, "ru", reloaded.Language)
}

func TestLoad_DifferentTypes(t *testing.T) {
	t.Setenv("SEPARATE_GUARD_LOG_LEVEL", "debug")
	t.Setenv("SEPARATE_GUARD_LOG_FORMAT", "json")

	var levels loggerSettings
	require.NoError(t, config.Load(&levels))

	var formats formatSettings
	require.NoError(t, config.Load(&formats))

	assert.Equal(t, "debug", levels.Level)
	assert.Equal(t, "json", formats.Format)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *catalogSettings
	err := config.Load(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNilPointer)
	assert.ErrorIs(t, config.ForceReloadConfig(cfg), config.ErrNilPointer)
}

func TestLoad_RetriesAfterFailure(t *testing.T) {
	os.Unsetenv("REQUIRED_GUARD_LOCALES_DIR")
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	var cfg requiredSettings
	require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)

	t.Setenv("REQUIRED_GUARD_LOCALES_DIR", "/srv/locales")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "/srv/locales", cfg.Dir)
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("REQUIRED_GUARD_LOCALES_DIR")
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	assert.Panics(t, func() {
		var cfg requiredSettings
		config.MustLoad(&cfg)
	})

	t.Setenv("REQUIRED_GUARD_LOCALES_DIR", "./locales")
	config.ResetCache()
	assert.NotPanics(t, func() {
		var cfg requiredSettings
		config.MustLoad(&cfg)
		assert.Equal(t, "./locales", cfg.Dir)
	})
}
