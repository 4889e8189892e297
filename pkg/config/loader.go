package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// registry caches parsed configuration values by their Go type. Each type
// gets its own entry lock so that concurrent loads of one type parse the
// environment once while other types proceed independently.
type registry struct {
	mu      sync.Mutex
	entries map[reflect.Type]*entry
}

type entry struct {
	mu     sync.Mutex
	value  any
	loaded bool
}

var (
	cache = &registry{entries: make(map[reflect.Type]*entry)}

	dotenvOnce sync.Once
)

func (r *registry) lookup(t reflect.Type) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[t]
	if !ok {
		e = &entry{}
		r.entries[t] = e
	}
	return e
}

func (r *registry) drop(t reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, t)
}

func (r *registry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[reflect.Type]*entry)
}

// Load parses environment variables into v according to its `env` struct
// tags. The first call also loads the default .env file, if present.
//
// Each configuration type is parsed once; later calls for the same type
// copy the cached value. A failed parse is not cached, so a later call
// retries once the environment is fixed.
//
//	type CatalogConfig struct {
//		Language string `env:"GUARD_LANGUAGE" envDefault:"en"`
//		Dir      string `env:"GUARD_LOCALES_DIR"`
//	}
//
//	var cfg CatalogConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	dotenvOnce.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	e := cache.lookup(reflect.TypeFor[T]())
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.loaded {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			return errors.Join(ErrParsingConfig, err)
		}
		e.value = parsed
		e.loaded = true
	}

	cached, ok := e.value.(T)
	if !ok {
		return fmt.Errorf("%w: %T", ErrInvalidConfigType, e.value)
	}
	*v = cached
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig discards the cached value for T and parses it again.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	cache.drop(reflect.TypeFor[T]())
	return Load(v)
}

// ResetCache drops every cached configuration. Intended for tests.
func ResetCache() {
	cache.reset()
}

// LoadEnv loads environment variables from the given .env files. Later files
// override earlier ones and variables already set in the process. With no
// paths, the default .env file in the working directory is loaded without
// overriding the process environment.
func LoadEnv(paths ...string) error {
	var err error
	if len(paths) == 0 {
		err = godotenv.Load()
	} else {
		err = godotenv.Overload(paths...)
	}
	if err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load environment files: %v", err))
	}
}
