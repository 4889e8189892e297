package guard

import (
	"fmt"
	"log/slog"
)

// Error describes a single guard violation. A chain holds at most one.
type Error struct {
	Kind      Kind
	Parameter string
	Actual    Repr
	Expected  Repr

	// Message is filled from the message catalog when the error leaves the
	// chain (Resolve, or an immediate panic).
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return DefaultCatalog().Message(e.Kind, e.Parameter, e.Actual, e.Expected)
}

// Is matches the class sentinel of the error kind, so that
// errors.Is(err, guard.ErrRange) holds for every ordering violation.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	return e.Kind.Class() == target
}

// GoString keeps %#v output readable in test failures.
func (e *Error) GoString() string {
	return fmt.Sprintf("guard.Error{Kind: %s, Parameter: %q, Actual: %q, Expected: %q}",
		e.Kind, e.Parameter, e.Actual.String(), e.Expected.String())
}

// LogValue implements slog.LogValuer. Absent values are omitted.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", e.Kind.String()),
		slog.String("parameter", e.Parameter),
	}
	if e.Actual.IsSet() {
		attrs = append(attrs, slog.String("actual", e.Actual.String()))
	}
	if e.Expected.IsSet() {
		attrs = append(attrs, slog.String("expected", e.Expected.String()))
	}
	attrs = append(attrs, slog.String("message", e.Error()))
	return slog.GroupValue(attrs...)
}

// materialize returns a copy of e with its message rendered by c.
func (e *Error) materialize(c Catalog) *Error {
	if c == nil {
		c = DefaultCatalog()
	}
	out := *e
	out.Message = c.Message(e.Kind, e.Parameter, e.Actual, e.Expected)
	return &out
}
