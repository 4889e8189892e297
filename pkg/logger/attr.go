package logger

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Parameter records the guarded parameter name under the key "parameter".
func Parameter(name string) slog.Attr {
	return slog.String("parameter", name)
}

// Kind records a failure kind under the key "kind".
// If kind is nil, it returns an empty Attr.
func Kind(kind fmt.Stringer) slog.Attr {
	if kind == nil {
		return slog.Attr{}
	}
	return slog.String("kind", kind.String())
}

// Language records a language code under the key "lang".
func Language(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Key records a message key under the key "key".
func Key(key string) slog.Attr {
	return slog.String("key", key)
}
