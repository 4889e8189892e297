package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfigType is returned when a cached value does not match the requested type
	ErrInvalidConfigType = errors.New("invalid config type")

	// ErrLoadingEnvFile is returned when a .env file cannot be read or parsed
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
