// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv for .env files with
// github.com/caarlos0/env/v11 for parsing tagged structs:
//
//	type CatalogConfig struct {
//		Language   string `env:"GUARD_LANGUAGE" envDefault:"en"`
//		LocalesDir string `env:"GUARD_LOCALES_DIR"`
//		LogMissing bool   `env:"GUARD_LOG_MISSING" envDefault:"false"`
//	}
//
//	var cfg CatalogConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// The first Load reads the default .env file from the working directory, if
// it exists. LoadEnv reads other files explicitly; later files win.
//
// # Caching
//
// Every configuration type is parsed once per process and cached by its
// reflect.Type, so two packages may declare identically named config structs
// without clashing. Parse failures are returned but not cached. ResetCache
// and ForceReloadConfig exist for tests that change the environment.
//
// # Errors
//
// ErrParsingConfig wraps env parsing failures, ErrLoadingEnvFile wraps .env
// read failures and ErrNilPointer rejects nil targets. Use errors.Is.
package config
