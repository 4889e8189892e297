package catalog

import "log/slog"

type options struct {
	language        string
	dirs            []string
	logger          *slog.Logger
	logMissing      bool
	englishFallback bool
}

// Option configures New.
type Option func(*options)

// WithLanguage selects the catalog language. The code is matched against
// the loaded languages, so "de-AT" selects "de".
func WithLanguage(lang string) Option {
	return func(o *options) {
		o.language = lang
	}
}

// WithDirectory adds a directory of YAML or JSON translation files. Its keys
// override the embedded locales; repeated calls are applied in order.
func WithDirectory(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.dirs = append(o.dirs, dir)
		}
	}
}

// WithLogger sets the logger for load and missing-key events.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMissingLogging logs every message key that has no translation in the
// selected language.
func WithMissingLogging(enabled bool) Option {
	return func(o *options) {
		o.logMissing = enabled
	}
}

// WithEnglishFallback controls what a key missing from every loaded source
// renders as: the built-in English message when enabled (the default), or
// the bare key otherwise.
func WithEnglishFallback(enabled bool) Option {
	return func(o *options) {
		o.englishFallback = enabled
	}
}
