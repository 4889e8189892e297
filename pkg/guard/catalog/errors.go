package catalog

import "errors"

var (
	ErrLoadLocales   = errors.New("failed to load guard locales")
	ErrInvalidConfig = errors.New("invalid guard catalog configuration")
)
