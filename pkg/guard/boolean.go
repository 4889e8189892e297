package guard

// BoolChain guards a boolean value. Ordering and sign predicates are not
// part of its menu.
type BoolChain struct {
	*engine[bool, *BoolChain]
	equality[bool, *BoolChain]
	truth[bool, *BoolChain]
}

// Bool starts a chain over a boolean value.
func Bool(name string, value bool) *BoolChain {
	c := &BoolChain{}
	e := newEngine(name, value, DomainBool, c)
	c.engine = e
	c.equality = equality[bool, *BoolChain]{e: e, eq: same[bool]}
	c.truth = truth[bool, *BoolChain]{e: e, truth: func(v bool) (bool, bool) { return v, true }}
	return c
}

// NullableBoolChain guards an optional boolean value.
type NullableBoolChain struct {
	*engine[*bool, *NullableBoolChain]
	equality[*bool, *NullableBoolChain]
	truth[*bool, *NullableBoolChain]
	nullness[*bool, *NullableBoolChain]
}

// NullableBool starts a chain over an optional boolean. Null fails both
// IsTrue and IsFalse.
func NullableBool(name string, value *bool) *NullableBoolChain {
	c := &NullableBoolChain{}
	e := newEngine(name, value, DomainNullableBool, c)
	c.engine = e
	c.equality = equality[*bool, *NullableBoolChain]{e: e, eq: sameNullable[bool]}
	c.truth = truth[*bool, *NullableBoolChain]{e: e, truth: func(v *bool) (bool, bool) {
		if v == nil {
			return false, false
		}
		return *v, true
	}}
	c.nullness = nullness[*bool, *NullableBoolChain]{e: e, isNull: isNullPtr[bool]}
	return c
}
