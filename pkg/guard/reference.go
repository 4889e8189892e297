package guard

import "github.com/google/uuid"

// Comparer is implemented by types with their own total order, such as
// time.Time.
type Comparer[T any] interface {
	Compare(other T) int
}

// OrderedChain guards a value of a custom ordered type.
type OrderedChain[T Comparer[T]] struct {
	*engine[T, *OrderedChain[T]]
	equality[T, *OrderedChain[T]]
	ordering[T, *OrderedChain[T]]
}

// Ordered starts a chain over a value that orders itself through Compare.
// Equality means Compare returns zero.
//
//	guard.Ordered("deadline", deadline).IsGreaterThan(time.Now())
func Ordered[T Comparer[T]](name string, value T) *OrderedChain[T] {
	c := &OrderedChain[T]{}
	e := newEngine(name, value, DomainOrdered, c)
	c.engine = e
	c.equality = equality[T, *OrderedChain[T]]{e: e, eq: func(a, b T) bool { return a.Compare(b) == 0 }}
	c.ordering = ordering[T, *OrderedChain[T]]{e: e, cmp: func(a, b T) int { return a.Compare(b) }}
	return c
}

// RefChain guards an arbitrary reference value: pointers, interfaces,
// structs, maps and so on.
type RefChain[T any] struct {
	*engine[T, *RefChain[T]]
	equality[T, *RefChain[T]]
	nullness[T, *RefChain[T]]
	typing[T, *RefChain[T]]
}

// Ref starts a chain over any value. Equality uses == for comparable
// dynamic types and reflect.DeepEqual otherwise.
func Ref[T any](name string, value T) *RefChain[T] {
	c := &RefChain[T]{}
	e := newEngine(name, value, DomainReference, c)
	isNull := func(v T) bool { return isNil(any(v)) }
	c.engine = e
	c.equality = equality[T, *RefChain[T]]{e: e, eq: func(a, b T) bool { return equalValues(any(a), any(b)) }}
	c.nullness = nullness[T, *RefChain[T]]{e: e, isNull: isNull}
	c.typing = typing[T, *RefChain[T]]{e: e, isNull: isNull}
	return c
}

// IDChain guards a UUID. uuid.Nil counts as null.
type IDChain struct {
	*engine[uuid.UUID, *IDChain]
	equality[uuid.UUID, *IDChain]
	nullness[uuid.UUID, *IDChain]
}

// ID starts a chain over a UUID.
func ID(name string, value uuid.UUID) *IDChain {
	c := &IDChain{}
	e := newEngine(name, value, DomainReference, c)
	c.engine = e
	c.equality = equality[uuid.UUID, *IDChain]{e: e, eq: same[uuid.UUID]}
	c.nullness = nullness[uuid.UUID, *IDChain]{e: e, isNull: func(v uuid.UUID) bool { return v == uuid.Nil }}
	return c
}
