package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs one JSON object per record.
	FormatJSON Format = "json"
	// FormatText outputs key=value records.
	FormatText Format = "text"
)

// Environment names recognized by WithEnvironment.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

var (
	// ErrInvalidLevel is returned by ParseLevel for unknown level names.
	ErrInvalidLevel = errors.New("invalid log level")
	// ErrInvalidFormat is returned by ParseFormat for unknown format names.
	ErrInvalidFormat = errors.New("invalid log format")
)

// ParseLevel maps a case-insensitive level name ("debug", "info", "warn",
// "warning", "error") to a slog.Level. An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
}

// ParseFormat maps "json" or "text" (case-insensitive) to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatText:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFormat, name)
}

type config struct {
	level          slog.Level
	format         Format
	output         io.Writer
	attrs          []slog.Attr
	handlerOptions *slog.HandlerOptions
	extractors     []ContextExtractor
}

// Option configures logger creation.
type Option func(*config)

// WithLevel sets the minimum level.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets the output format. It panics for unknown formats so that
// misconfiguration stops the process at startup.
func WithFormat(f Format) Option {
	return func(c *config) {
		if _, err := ParseFormat(string(f)); err != nil {
			panic(err)
		}
		c.format = f
	}
}

func WithTextFormatter() Option { return WithFormat(FormatText) }

func WithJSONFormatter() Option { return WithFormat(FormatJSON) }

// WithOutput sets the destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithHandlerOptions replaces the slog handler options; the level set with
// WithLevel is then ignored. Nil options are ignored.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *config) {
		if opts != nil {
			c.handlerOptions = opts
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithContextExtractors registers extractors that add attributes from the
// context of each logging call.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		c.extractors = append(c.extractors, extractors...)
	}
}

// WithContextValue logs ctx.Value(key) under name whenever it is set.
func WithContextValue(name string, key any) Option {
	return func(c *config) {
		if name == "" || key == nil {
			return
		}
		c.extractors = append(c.extractors, ValueExtractor(name, key))
	}
}

type preset struct {
	env    string
	level  slog.Level
	format Format
}

var (
	development = preset{env: EnvDevelopment, level: slog.LevelDebug, format: FormatText}
	staging     = preset{env: EnvStaging, level: slog.LevelInfo, format: FormatJSON}
	production  = preset{env: EnvProduction, level: slog.LevelInfo, format: FormatJSON}
)

func (p preset) option(service string) Option {
	return func(c *config) {
		if service == "" {
			return
		}
		c.level = p.level
		c.format = p.format
		c.attrs = append(c.attrs,
			slog.String("service", service),
			slog.String("env", p.env),
		)
	}
}

// WithDevelopment selects debug level text output and tags records with the
// service name. An empty service name makes it a no-op.
func WithDevelopment(service string) Option { return development.option(service) }

// WithStaging selects info level JSON output for staging.
func WithStaging(service string) Option { return staging.option(service) }

// WithProduction selects info level JSON output for production.
func WithProduction(service string) Option { return production.option(service) }

// WithEnvironment picks a preset by environment name. "prod" and "stage"
// are accepted as aliases; anything unknown means development.
func WithEnvironment(env string, service string) Option {
	switch strings.ToLower(env) {
	case EnvProduction, "prod":
		return WithProduction(service)
	case EnvStaging, "stage":
		return WithStaging(service)
	}
	return WithDevelopment(service)
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// New creates a *slog.Logger. Without options it writes info level JSON to
// stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := cfg.handlerOptions
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: cfg.level}
	}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}
	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(NewContextHandler(handler, cfg.extractors...))
}
