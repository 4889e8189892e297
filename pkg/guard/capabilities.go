package guard

import "reflect"

// The capability mixins below are embedded by the chain types. Each holds
// the shared engine plus the domain functions it needs; a nil function
// means the capability is absent and the predicate raises KindUnsupported.

type equality[T any, S any] struct {
	e  *engine[T, S]
	eq func(a, b T) bool
}

// IsEqualTo checks that the value equals other.
func (m equality[T, S]) IsEqualTo(other T) S {
	if m.eq == nil {
		m.e.unsupported("IsEqualTo")
	}
	return m.e.check(m.eq(m.e.value, other), KindEqual, other)
}

// IsNotEqualTo checks that the value differs from other.
func (m equality[T, S]) IsNotEqualTo(other T) S {
	if m.eq == nil {
		m.e.unsupported("IsNotEqualTo")
	}
	return m.e.check(!m.eq(m.e.value, other), KindNotEqual, other)
}

type ordering[T any, S any] struct {
	e   *engine[T, S]
	cmp func(a, b T) int
}

func (m ordering[T, S]) compare(predicate string, bound T) int {
	if m.cmp == nil {
		m.e.unsupported(predicate)
	}
	return m.cmp(m.e.value, bound)
}

// IsLessThan checks value < bound.
func (m ordering[T, S]) IsLessThan(bound T) S {
	return m.e.check(m.compare("IsLessThan", bound) < 0, KindLessThan, bound)
}

// IsLessThanOrEqualTo checks value <= bound.
func (m ordering[T, S]) IsLessThanOrEqualTo(bound T) S {
	return m.e.check(m.compare("IsLessThanOrEqualTo", bound) <= 0, KindLessOrEqual, bound)
}

// IsGreaterThan checks value > bound.
func (m ordering[T, S]) IsGreaterThan(bound T) S {
	return m.e.check(m.compare("IsGreaterThan", bound) > 0, KindGreaterThan, bound)
}

// IsGreaterThanOrEqualTo checks value >= bound.
func (m ordering[T, S]) IsGreaterThanOrEqualTo(bound T) S {
	return m.e.check(m.compare("IsGreaterThanOrEqualTo", bound) >= 0, KindGreaterOrEqual, bound)
}

// sign reports the sign of a value; ok is false for null values, which fail
// every sign predicate.
type sign[T any, S any] struct {
	e        *engine[T, S]
	signum   func(v T) (s int, ok bool)
	unsigned bool
}

func (m sign[T, S]) of(predicate string) (int, bool) {
	if m.signum == nil {
		m.e.unsupported(predicate)
	}
	return m.signum(m.e.value)
}

// IsPositive checks value > 0.
func (m sign[T, S]) IsPositive() S {
	s, ok := m.of("IsPositive")
	return m.e.check(ok && s > 0, KindPositive)
}

// IsNegative checks value < 0. Unsigned domains have no negative values and
// raise KindUnsupported immediately.
func (m sign[T, S]) IsNegative() S {
	if m.unsigned {
		m.e.unsupported("IsNegative")
	}
	s, ok := m.of("IsNegative")
	return m.e.check(ok && s < 0, KindNegative)
}

// IsNotPositive checks value <= 0, which for unsigned domains means value == 0.
func (m sign[T, S]) IsNotPositive() S {
	s, ok := m.of("IsNotPositive")
	return m.e.check(ok && s <= 0, KindNotPositive)
}

// IsNotNegative checks value >= 0.
func (m sign[T, S]) IsNotNegative() S {
	s, ok := m.of("IsNotNegative")
	return m.e.check(ok && s >= 0, KindNotNegative)
}

type nullness[T any, S any] struct {
	e      *engine[T, S]
	isNull func(v T) bool
}

func (m nullness[T, S]) null(predicate string) bool {
	if m.isNull == nil {
		m.e.unsupported(predicate)
	}
	return m.isNull(m.e.value)
}

// IsNull checks that the value is null.
func (m nullness[T, S]) IsNull() S {
	return m.e.check(m.null("IsNull"), KindNotNull)
}

// IsNotNull checks that the value is not null.
func (m nullness[T, S]) IsNotNull() S {
	return m.e.check(!m.null("IsNotNull"), KindNull)
}

type truth[T any, S any] struct {
	e     *engine[T, S]
	truth func(v T) (b bool, ok bool)
}

func (m truth[T, S]) of(predicate string) (bool, bool) {
	if m.truth == nil {
		m.e.unsupported(predicate)
	}
	return m.truth(m.e.value)
}

// IsTrue checks that the value is true. Null is neither true nor false.
func (m truth[T, S]) IsTrue() S {
	b, ok := m.of("IsTrue")
	return m.e.check(ok && b, KindTrue)
}

// IsFalse checks that the value is false.
func (m truth[T, S]) IsFalse() S {
	b, ok := m.of("IsFalse")
	return m.e.check(ok && !b, KindFalse)
}

// sequence covers text and sized sequences. P is the prefix/suffix type,
// which differs from T for nullable text.
type sequence[T any, P any, S any] struct {
	e         *engine[T, S]
	isNull    func(v T) bool
	length    func(v T) int
	hasPrefix func(v T, p P) bool
	hasSuffix func(v T, p P) bool
}

// IsNotNullOrEmpty fails with KindNull for a null value and with KindEmpty
// for a value of zero length.
func (m sequence[T, P, S]) IsNotNullOrEmpty() S {
	if m.length == nil {
		m.e.unsupported("IsNotNullOrEmpty")
	}
	if m.isNull != nil && m.isNull(m.e.value) {
		return m.e.check(false, KindNull)
	}
	return m.e.check(m.length(m.e.value) > 0, KindEmpty)
}

// StartsWith checks that the value begins with prefix.
func (m sequence[T, P, S]) StartsWith(prefix P) S {
	if m.hasPrefix == nil {
		m.e.unsupported("StartsWith")
	}
	return m.e.check(m.hasPrefix(m.e.value, prefix), KindPrefix, prefix)
}

// EndsWith checks that the value ends with suffix.
func (m sequence[T, P, S]) EndsWith(suffix P) S {
	if m.hasSuffix == nil {
		m.e.unsupported("EndsWith")
	}
	return m.e.check(m.hasSuffix(m.e.value, suffix), KindSuffix, suffix)
}

type typing[T any, S any] struct {
	e      *engine[T, S]
	isNull func(v T) bool
}

// IsOfType checks the dynamic type of the value. Unlike other predicates it
// fails immediately: with KindNull when the value is null, and with KindType
// when the type neither equals expected nor, for interface types,
// implements it.
func (m typing[T, S]) IsOfType(expected reflect.Type) S {
	if m.isNull == nil {
		m.e.unsupported("IsOfType")
	}
	if m.isNull(m.e.value) {
		m.e.null(expected)
	}
	actual := reflect.TypeOf(any(m.e.value))
	if !typeMatches(actual, expected) {
		m.e.mismatch(expected, actual)
	}
	return m.e.self
}

func typeMatches(actual, expected reflect.Type) bool {
	if actual == nil || expected == nil {
		return false
	}
	if actual == expected {
		return true
	}
	return expected.Kind() == reflect.Interface && actual.Implements(expected)
}

// TypeOf returns the reflect.Type of T, for use with IsOfType.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
