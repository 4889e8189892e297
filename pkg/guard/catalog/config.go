package catalog

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrymomot/guard/pkg/config"
	"github.com/dmitrymomot/guard/pkg/guard"
	"github.com/dmitrymomot/guard/pkg/logger"
)

// Config is the environment configuration of the catalog.
type Config struct {
	Language        string `env:"GUARD_LANGUAGE" envDefault:"en"`
	LocalesDir      string `env:"GUARD_LOCALES_DIR"`
	EnglishFallback bool   `env:"GUARD_ENGLISH_FALLBACK" envDefault:"true"`
	LogMissing      bool   `env:"GUARD_LOG_MISSING" envDefault:"false"`
	LogLevel        string `env:"GUARD_LOG_LEVEL" envDefault:"info"`
	LogFormat       string `env:"GUARD_LOG_FORMAT" envDefault:"text"`
}

// FromConfig builds a catalog from cfg. Logs go to stderr in the configured
// level and format.
func FromConfig(ctx context.Context, cfg Config) (*Catalog, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(os.Stderr),
	)

	return New(ctx,
		WithLanguage(cfg.Language),
		WithDirectory(cfg.LocalesDir),
		WithLogger(log),
		WithMissingLogging(cfg.LogMissing),
		WithEnglishFallback(cfg.EnglishFallback),
	)
}

// FromEnv loads Config from the environment (and a .env file, if present)
// and builds a catalog from it.
func FromEnv(ctx context.Context) (*Catalog, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return FromConfig(ctx, cfg)
}

// Install builds a catalog from the environment and makes it the default
// catalog of package guard.
func Install(ctx context.Context) (*Catalog, error) {
	c, err := FromEnv(ctx)
	if err != nil {
		return nil, err
	}
	guard.SetDefaultCatalog(c)
	return c, nil
}
