package guard

import "cmp"

// SignedNumber is the value domain of Signed chains. Floats are ordered with
// cmp.Compare, so NaN sorts below every other value and is negative.
type SignedNumber interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// UnsignedNumber is the value domain of Unsigned chains.
type UnsignedNumber interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is any value accepted by the numeric chains.
type Number interface {
	SignedNumber | UnsignedNumber
}

// SignedChain guards a signed integer or float.
type SignedChain[T SignedNumber] struct {
	*engine[T, *SignedChain[T]]
	equality[T, *SignedChain[T]]
	ordering[T, *SignedChain[T]]
	sign[T, *SignedChain[T]]
}

// Signed starts a chain over a signed numeric value.
//
//	err := guard.Signed("age", age).And().IsGreaterThanOrEqualTo(18).IsLessThan(130).Resolve()
func Signed[T SignedNumber](name string, value T) *SignedChain[T] {
	c := &SignedChain[T]{}
	e := newEngine(name, value, DomainSigned, c)
	c.engine = e
	c.equality = equality[T, *SignedChain[T]]{e: e, eq: same[T]}
	c.ordering = ordering[T, *SignedChain[T]]{e: e, cmp: cmp.Compare[T]}
	c.sign = sign[T, *SignedChain[T]]{e: e, signum: signOf[T]}
	return c
}

// UnsignedChain guards an unsigned integer.
type UnsignedChain[T UnsignedNumber] struct {
	*engine[T, *UnsignedChain[T]]
	equality[T, *UnsignedChain[T]]
	ordering[T, *UnsignedChain[T]]
	sign[T, *UnsignedChain[T]]
}

// Unsigned starts a chain over an unsigned numeric value. IsNegative is not
// available in this domain and raises KindUnsupported.
func Unsigned[T UnsignedNumber](name string, value T) *UnsignedChain[T] {
	c := &UnsignedChain[T]{}
	e := newEngine(name, value, DomainUnsigned, c)
	c.engine = e
	c.equality = equality[T, *UnsignedChain[T]]{e: e, eq: same[T]}
	c.ordering = ordering[T, *UnsignedChain[T]]{e: e, cmp: cmp.Compare[T]}
	c.sign = sign[T, *UnsignedChain[T]]{e: e, signum: signOf[T], unsigned: true}
	return c
}

// NullableSignedChain guards an optional signed number. Null is lower than
// every number and equal only to null.
type NullableSignedChain[T SignedNumber] struct {
	*engine[*T, *NullableSignedChain[T]]
	equality[*T, *NullableSignedChain[T]]
	ordering[*T, *NullableSignedChain[T]]
	sign[*T, *NullableSignedChain[T]]
	nullness[*T, *NullableSignedChain[T]]
}

// NullableSigned starts a chain over an optional signed number. Bounds are
// pointers too; see Ptr.
func NullableSigned[T SignedNumber](name string, value *T) *NullableSignedChain[T] {
	c := &NullableSignedChain[T]{}
	e := newEngine(name, value, DomainNullableSigned, c)
	c.engine = e
	c.equality = equality[*T, *NullableSignedChain[T]]{e: e, eq: sameNullable[T]}
	c.ordering = ordering[*T, *NullableSignedChain[T]]{e: e, cmp: compareNullable[T]}
	c.sign = sign[*T, *NullableSignedChain[T]]{e: e, signum: nullableSignOf[T]}
	c.nullness = nullness[*T, *NullableSignedChain[T]]{e: e, isNull: isNullPtr[T]}
	return c
}

// NullableUnsignedChain guards an optional unsigned number.
type NullableUnsignedChain[T UnsignedNumber] struct {
	*engine[*T, *NullableUnsignedChain[T]]
	equality[*T, *NullableUnsignedChain[T]]
	ordering[*T, *NullableUnsignedChain[T]]
	sign[*T, *NullableUnsignedChain[T]]
	nullness[*T, *NullableUnsignedChain[T]]
}

// NullableUnsigned starts a chain over an optional unsigned number.
func NullableUnsigned[T UnsignedNumber](name string, value *T) *NullableUnsignedChain[T] {
	c := &NullableUnsignedChain[T]{}
	e := newEngine(name, value, DomainNullableUnsigned, c)
	c.engine = e
	c.equality = equality[*T, *NullableUnsignedChain[T]]{e: e, eq: sameNullable[T]}
	c.ordering = ordering[*T, *NullableUnsignedChain[T]]{e: e, cmp: compareNullable[T]}
	c.sign = sign[*T, *NullableUnsignedChain[T]]{e: e, signum: nullableSignOf[T], unsigned: true}
	c.nullness = nullness[*T, *NullableUnsignedChain[T]]{e: e, isNull: isNullPtr[T]}
	return c
}

// Ptr returns a pointer to v. Handy for bounds of nullable chains.
func Ptr[T any](v T) *T { return &v }

func same[T comparable](a, b T) bool { return a == b }

func sameNullable[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func compareNullable[T cmp.Ordered](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return cmp.Compare(*a, *b)
}

// signOf agrees with ordering: NaN compares below zero and counts as negative.
func signOf[T Number](v T) (int, bool) {
	var zero T
	return cmp.Compare(v, zero), true
}

func nullableSignOf[T Number](v *T) (int, bool) {
	if v == nil {
		return 0, false
	}
	return signOf(*v)
}

func isNullPtr[T any](v *T) bool { return v == nil }
