package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls one attribute out of a context. ok is false when
// the context carries nothing for it.
type ContextExtractor func(ctx context.Context) (attr slog.Attr, ok bool)

// ValueExtractor returns an extractor that logs ctx.Value(key) under name.
func ValueExtractor(name string, key any) ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ctx == nil {
			return slog.Attr{}, false
		}
		v := ctx.Value(key)
		if v == nil {
			return slog.Attr{}, false
		}
		return slog.Any(name, v), true
	}
}

// contextHandler adds the attributes found by its extractors to every
// record before passing it on. Extraction runs per record so values always
// come from the context of the logging call.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps next with the given extractors. Nil extractors
// are dropped; with none left, next is returned as is.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	var kept []ContextExtractor
	for _, ex := range extractors {
		if ex != nil {
			kept = append(kept, ex)
		}
	}
	if len(kept) == 0 {
		return next
	}
	return &contextHandler{next: next, extractors: kept}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
