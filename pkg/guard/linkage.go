package guard

import "hash/maphash"

var linkSeed = maphash.MakeSeed()

// Linkage is an identity handle for a chain. Two linkages are equal only
// when they wrap the same chain instance; chains with equal names and values
// are still different chains. Linkage is comparable and can be used as a map
// key.
type Linkage[C any] struct {
	chain *C
}

// Link wraps c.
func Link[C any](c *C) Linkage[C] {
	return Linkage[C]{chain: c}
}

// Chain returns the wrapped chain.
func (l Linkage[C]) Chain() *C { return l.chain }

// Equal reports whether both linkages wrap the same chain instance.
func (l Linkage[C]) Equal(other Linkage[C]) bool {
	return l.chain == other.chain
}

// Equals is the untyped form of Equal. It is false for nil and for values
// that are not linkages of the same chain type.
func (l Linkage[C]) Equals(other any) bool {
	switch o := other.(type) {
	case Linkage[C]:
		return l.Equal(o)
	case *Linkage[C]:
		return o != nil && l.Equal(*o)
	}
	return false
}

// Hash derives a hash from the identity of the wrapped chain, so that equal
// linkages hash identically within a process.
func (l Linkage[C]) Hash() uint64 {
	return maphash.Comparable(linkSeed, l.chain)
}
