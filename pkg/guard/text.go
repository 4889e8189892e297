package guard

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// CharChain guards a single character. Code points are treated as unsigned
// numbers: every character except U+0000 is positive and IsNegative is
// unsupported.
type CharChain struct {
	*engine[rune, *CharChain]
	equality[rune, *CharChain]
	ordering[rune, *CharChain]
	sign[rune, *CharChain]
}

// Char starts a chain over a rune.
func Char(name string, value rune) *CharChain {
	c := &CharChain{}
	e := newEngine(name, value, DomainChar, c)
	e.display = quoteRune
	c.engine = e
	c.equality = equality[rune, *CharChain]{e: e, eq: same[rune]}
	c.ordering = ordering[rune, *CharChain]{e: e, cmp: func(a, b rune) int {
		return cmp.Compare(uint32(a), uint32(b))
	}}
	c.sign = sign[rune, *CharChain]{e: e, unsigned: true, signum: func(v rune) (int, bool) {
		if v == 0 {
			return 0, true
		}
		return 1, true
	}}
	return c
}

func quoteRune(v any) string {
	if r, ok := v.(rune); ok {
		return strconv.QuoteRune(r)
	}
	return format(v)
}

// TextChain guards a string-like value. Strings carry a natural total order,
// so ordering predicates are part of the menu.
type TextChain[S ~string] struct {
	*engine[S, *TextChain[S]]
	equality[S, *TextChain[S]]
	ordering[S, *TextChain[S]]
	sequence[S, S, *TextChain[S]]
}

// Text starts a chain over a string value. A non-nullable string is never
// null, so IsNotNullOrEmpty only fails with KindEmpty.
func Text[S ~string](name string, value S) *TextChain[S] {
	c := &TextChain[S]{}
	e := newEngine(name, value, DomainText, c)
	c.engine = e
	c.equality = equality[S, *TextChain[S]]{e: e, eq: same[S]}
	c.ordering = ordering[S, *TextChain[S]]{e: e, cmp: cmp.Compare[S]}
	c.sequence = sequence[S, S, *TextChain[S]]{
		e:      e,
		length: func(v S) int { return len(v) },
		hasPrefix: func(v, p S) bool {
			return strings.HasPrefix(string(v), string(p))
		},
		hasSuffix: func(v, p S) bool {
			return strings.HasSuffix(string(v), string(p))
		},
	}
	return c
}

// NullableTextChain guards an optional string.
type NullableTextChain struct {
	*engine[*string, *NullableTextChain]
	equality[*string, *NullableTextChain]
	ordering[*string, *NullableTextChain]
	sequence[*string, string, *NullableTextChain]
	nullness[*string, *NullableTextChain]
}

// NullableText starts a chain over an optional string. Null fails
// IsNotNullOrEmpty with KindNull, and fails StartsWith and EndsWith.
func NullableText(name string, value *string) *NullableTextChain {
	c := &NullableTextChain{}
	e := newEngine(name, value, DomainNullableText, c)
	c.engine = e
	c.equality = equality[*string, *NullableTextChain]{e: e, eq: sameNullable[string]}
	c.ordering = ordering[*string, *NullableTextChain]{e: e, cmp: compareNullable[string]}
	c.sequence = sequence[*string, string, *NullableTextChain]{
		e:      e,
		isNull: isNullPtr[string],
		length: func(v *string) int { return len(*v) },
		hasPrefix: func(v *string, p string) bool {
			return v != nil && strings.HasPrefix(*v, p)
		},
		hasSuffix: func(v *string, p string) bool {
			return v != nil && strings.HasSuffix(*v, p)
		},
	}
	c.nullness = nullness[*string, *NullableTextChain]{e: e, isNull: isNullPtr[string]}
	return c
}

// SequenceChain guards a slice. A nil slice is null; an empty non-nil slice
// is empty.
type SequenceChain[E comparable] struct {
	*engine[[]E, *SequenceChain[E]]
	equality[[]E, *SequenceChain[E]]
	sequence[[]E, []E, *SequenceChain[E]]
	nullness[[]E, *SequenceChain[E]]
}

// Sequence starts a chain over a slice. Equality compares element-wise with
// the same rules as Ref, so []any holding slices or maps is safe to compare.
func Sequence[E comparable](name string, value []E) *SequenceChain[E] {
	c := &SequenceChain[E]{}
	e := newEngine(name, value, DomainSequence, c)
	isNull := func(v []E) bool { return v == nil }
	c.engine = e
	c.equality = equality[[]E, *SequenceChain[E]]{e: e, eq: func(a, b []E) bool {
		if a == nil || b == nil {
			return a == nil && b == nil
		}
		return slices.EqualFunc(a, b, sameElem[E])
	}}
	c.sequence = sequence[[]E, []E, *SequenceChain[E]]{
		e:      e,
		isNull: isNull,
		length: func(v []E) int { return len(v) },
		hasPrefix: func(v, p []E) bool {
			return v != nil && len(p) <= len(v) && slices.EqualFunc(v[:len(p)], p, sameElem[E])
		},
		hasSuffix: func(v, p []E) bool {
			return v != nil && len(p) <= len(v) && slices.EqualFunc(v[len(v)-len(p):], p, sameElem[E])
		},
	}
	c.nullness = nullness[[]E, *SequenceChain[E]]{e: e, isNull: isNull}
	return c
}

func sameElem[E comparable](a, b E) bool { return equalValues(any(a), any(b)) }
