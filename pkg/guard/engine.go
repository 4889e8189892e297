package guard

import "reflect"

// Mode controls how the next predicates merge into the chain state.
type Mode uint8

const (
	// Or is the default: a passing predicate clears any earlier failure.
	Or Mode = iota
	// And keeps the first failure for the rest of the chain.
	And
)

func (m Mode) String() string {
	if m == And {
		return "and"
	}
	return "or"
}

// engine is the state shared by every chain: the bound parameter, the
// combination mode and at most one pending error. S is the concrete chain
// type handed back to the caller after each predicate.
type engine[T any, S any] struct {
	name    string
	value   T
	domain  Domain
	mode    Mode
	pending *Error
	self    S
	display func(any) string
}

func newEngine[T any, S any](name string, value T, domain Domain, self S) *engine[T, S] {
	return &engine[T, S]{
		name:   name,
		value:  value,
		domain: domain,
		self:   self,
	}
}

// And makes the following predicates AND-linked. It does not evaluate anything.
func (e *engine[T, S]) And() S {
	e.mode = And
	return e.self
}

// Or makes the following predicates OR-linked. It does not evaluate anything.
func (e *engine[T, S]) Or() S {
	e.mode = Or
	return e.self
}

// Mode returns the current combination mode.
func (e *engine[T, S]) Mode() Mode { return e.mode }

// Name returns the bound parameter name.
func (e *engine[T, S]) Name() string { return e.name }

// Value returns the bound value.
func (e *engine[T, S]) Value() T { return e.value }

// Domain returns the value domain the chain was built for.
func (e *engine[T, S]) Domain() Domain { return e.domain }

// Valid reports whether the chain is currently satisfied.
func (e *engine[T, S]) Valid() bool { return e.pending == nil }

// Pending returns a copy of the recorded violation, or nil. The copy has no
// Message; use Resolve to render one.
func (e *engine[T, S]) Pending() *Error {
	if e.pending == nil {
		return nil
	}
	out := *e.pending
	return &out
}

// Resolve returns the pending violation rendered with the default catalog,
// or nil when the chain is satisfied. It never changes the chain state.
func (e *engine[T, S]) Resolve() error {
	return e.ResolveWith(DefaultCatalog())
}

// ResolveWith is Resolve with an explicit message catalog.
func (e *engine[T, S]) ResolveWith(c Catalog) error {
	if e.pending == nil {
		return nil
	}
	return e.pending.materialize(c)
}

// MustResolve panics with the pending violation, if any.
func (e *engine[T, S]) MustResolve() {
	if err := e.Resolve(); err != nil {
		panic(err)
	}
}

// check merges the outcome of one predicate into the chain state.
//
// AND: the first failure sticks and later predicates cannot replace it.
// OR: a pass clears any failure; a failure is recorded only if none is set.
func (e *engine[T, S]) check(ok bool, kind Kind, expected ...any) S {
	switch e.mode {
	case And:
		if e.pending == nil && !ok {
			e.pending = e.violation(kind, expected...)
		}
	default:
		if ok {
			e.pending = nil
		} else if e.pending == nil {
			e.pending = e.violation(kind, expected...)
		}
	}
	return e.self
}

func (e *engine[T, S]) violation(kind Kind, expected ...any) *Error {
	err := &Error{
		Kind:      kind,
		Parameter: e.name,
		Actual:    e.show(e.value),
	}
	if len(expected) > 0 {
		err.Expected = e.show(expected[0])
	}
	return err
}

func (e *engine[T, S]) show(v any) Repr {
	if e.display != nil {
		return Repr{text: e.display(v), set: true}
	}
	return Show(v)
}

// raise panics with a rendered error, bypassing the combination mode.
func (e *engine[T, S]) raise(err *Error) {
	panic(err.materialize(DefaultCatalog()))
}

func (e *engine[T, S]) unsupported(predicate string) {
	e.raise(&Error{
		Kind:      KindUnsupported,
		Parameter: e.name,
		Actual:    Show(e.domain),
		Expected:  Show(predicate),
	})
}

func (e *engine[T, S]) mismatch(expected, actual reflect.Type) {
	err := &Error{
		Kind:      KindType,
		Parameter: e.name,
		Expected:  Show(expected),
	}
	if actual != nil {
		err.Actual = Show(actual.String())
	} else {
		err.Actual = Show(nil)
	}
	e.raise(err)
}

func (e *engine[T, S]) null(expected any) {
	e.raise(&Error{
		Kind:      KindNull,
		Parameter: e.name,
		Actual:    Show(nil),
		Expected:  Show(expected),
	})
}

// Capture runs fn and returns the *Error it panicked with, if any. Panics
// that are not guard errors are propagated unchanged.
//
//	err := guard.Capture(func() {
//		guard.Unsigned("count", n).IsNegative()
//	})
func Capture(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			gerr, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			err = gerr
		}
	}()
	fn()
	return nil
}
