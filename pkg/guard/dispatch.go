package guard

import (
	"cmp"
	"reflect"
	"strings"
)

// Domain classifies a value for capability dispatch.
type Domain uint8

const (
	DomainReference Domain = iota
	DomainSigned
	DomainUnsigned
	DomainNullableSigned
	DomainNullableUnsigned
	DomainBool
	DomainNullableBool
	DomainChar
	DomainText
	DomainNullableText
	DomainSequence
	DomainOrdered
)

var domainNames = [...]string{
	DomainReference:        "reference",
	DomainSigned:           "signed",
	DomainUnsigned:         "unsigned",
	DomainNullableSigned:   "nullable signed",
	DomainNullableUnsigned: "nullable unsigned",
	DomainBool:             "bool",
	DomainNullableBool:     "nullable bool",
	DomainChar:             "char",
	DomainText:             "text",
	DomainNullableText:     "nullable text",
	DomainSequence:         "sequence",
	DomainOrdered:          "ordered",
}

func (d Domain) String() string {
	if int(d) < len(domainNames) {
		return domainNames[d]
	}
	return "unknown"
}

// Nullable reports whether values of the domain may be null.
func (d Domain) Nullable() bool {
	switch d {
	case DomainReference, DomainNullableSigned, DomainNullableUnsigned,
		DomainNullableBool, DomainNullableText, DomainSequence:
		return true
	}
	return false
}

// Classify returns the domain of v by its reflect kind. Pointers to scalar
// kinds map to the nullable domains. Non-scalar values with a
// Compare(T) int method, such as time.Time, are ordered. int32 is always
// signed: runes are only distinguishable through Char, so Classify never
// returns DomainChar.
func Classify(v any) Domain {
	if v == nil {
		return DomainReference
	}
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		switch scalarDomain(t.Elem().Kind()) {
		case DomainSigned:
			return DomainNullableSigned
		case DomainUnsigned:
			return DomainNullableUnsigned
		case DomainBool:
			return DomainNullableBool
		case DomainText:
			return DomainNullableText
		}
		return DomainReference
	}
	if d := scalarDomain(t.Kind()); d != DomainReference {
		return d
	}
	if _, ok := compareMethod(t); ok {
		return DomainOrdered
	}
	if t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		return DomainSequence
	}
	return DomainReference
}

var intType = reflect.TypeFor[int]()

// compareMethod finds a Compare method that takes the receiver's own type
// and returns int.
func compareMethod(t reflect.Type) (reflect.Method, bool) {
	m, ok := t.MethodByName("Compare")
	if !ok || m.Type.NumIn() != 2 || m.Type.NumOut() != 1 {
		return reflect.Method{}, false
	}
	return m, m.Type.In(1) == t && m.Type.Out(0) == intType
}

func scalarDomain(k reflect.Kind) Domain {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64:
		return DomainSigned
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return DomainUnsigned
	case reflect.Bool:
		return DomainBool
	case reflect.String:
		return DomainText
	}
	return DomainReference
}

// DynamicChain is the chain returned by Of. It exposes every predicate;
// those outside the menu of its domain raise KindUnsupported immediately.
type DynamicChain struct {
	*engine[any, *DynamicChain]
	equality[any, *DynamicChain]
	ordering[any, *DynamicChain]
	sign[any, *DynamicChain]
	nullness[any, *DynamicChain]
	truth[any, *DynamicChain]
	sequence[any, any, *DynamicChain]
	typing[any, *DynamicChain]
}

// Of classifies value and starts a chain with the capabilities of its
// domain. Prefer the typed constructors when the type is known statically.
//
//	guard.Of("count", n).IsGreaterThan(0).Resolve()
func Of(name string, value any) *DynamicChain {
	domain := Classify(value)
	c := &DynamicChain{}
	e := newEngine(name, value, domain, c)
	c.engine = e
	c.equality = equality[any, *DynamicChain]{e: e}
	c.ordering = ordering[any, *DynamicChain]{e: e}
	c.sign = sign[any, *DynamicChain]{e: e}
	c.nullness = nullness[any, *DynamicChain]{e: e}
	c.truth = truth[any, *DynamicChain]{e: e}
	c.sequence = sequence[any, any, *DynamicChain]{e: e}
	c.typing = typing[any, *DynamicChain]{e: e}

	c.equality.eq = dynamicEqual
	if domain.Nullable() {
		c.nullness.isNull = isNil
	}

	switch domain {
	case DomainSigned, DomainNullableSigned, DomainUnsigned, DomainNullableUnsigned:
		c.ordering.cmp = func(a, b any) int { return c.compareNumbers(a, b) }
		c.sign.signum = dynamicSign
		c.sign.unsigned = domain == DomainUnsigned || domain == DomainNullableUnsigned
	case DomainBool, DomainNullableBool:
		c.truth.truth = func(v any) (bool, bool) {
			rv, ok := deref(v)
			if !ok {
				return false, false
			}
			return rv.Bool(), true
		}
	case DomainText, DomainNullableText:
		c.ordering.cmp = func(a, b any) int { return c.compareText(a, b) }
		c.sequence = sequence[any, any, *DynamicChain]{
			e:         e,
			isNull:    isNil,
			length:    func(v any) int { return len(textOf(v)) },
			hasPrefix: func(v, p any) bool { return !isNil(v) && strings.HasPrefix(textOf(v), c.text(p)) },
			hasSuffix: func(v, p any) bool { return !isNil(v) && strings.HasSuffix(textOf(v), c.text(p)) },
		}
	case DomainSequence:
		c.sequence = sequence[any, any, *DynamicChain]{
			e:         e,
			isNull:    isNil,
			length:    func(v any) int { return reflect.ValueOf(v).Len() },
			hasPrefix: func(v, p any) bool { return c.affix(v, p, true) },
			hasSuffix: func(v, p any) bool { return c.affix(v, p, false) },
		}
	case DomainOrdered:
		c.ordering.cmp = func(a, b any) int { return c.compareOrdered(a, b) }
		c.equality.eq = func(a, b any) bool {
			if reflect.TypeOf(a) != reflect.TypeOf(b) {
				return dynamicEqual(a, b)
			}
			return c.compareOrdered(a, b) == 0
		}
	case DomainReference:
		c.typing.isNull = isNil
	}
	return c
}

// deref unwraps pointers; ok is false for null.
func deref(v any) (reflect.Value, bool) {
	if isNil(v) {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, true
}

func dynamicEqual(a, b any) bool {
	ra, aok := deref(a)
	rb, bok := deref(b)
	if !aok || !bok {
		return !aok && !bok
	}
	na, aNum := numberOf(ra)
	nb, bNum := numberOf(rb)
	if aNum && bNum {
		return na.compare(nb) == 0
	}
	return equalValues(ra.Interface(), rb.Interface())
}

func dynamicSign(v any) (int, bool) {
	rv, ok := deref(v)
	if !ok {
		return 0, false
	}
	n, ok := numberOf(rv)
	if !ok {
		return 0, false
	}
	return n.compare(number{kind: numInt}), true
}

// compareNumbers orders two numeric operands; null is the lowest value.
// A non-numeric bound is a programming error and raises KindType.
func (c *DynamicChain) compareNumbers(a, b any) int {
	ra, aok := deref(a)
	rb, bok := deref(b)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}
	nb, ok := numberOf(rb)
	if !ok {
		c.mismatch(reflect.TypeOf(a), rb.Type())
	}
	na, _ := numberOf(ra)
	return na.compare(nb)
}

func (c *DynamicChain) compareText(a, b any) int {
	switch {
	case isNil(a) && isNil(b):
		return 0
	case isNil(a):
		return -1
	case isNil(b):
		return 1
	}
	return strings.Compare(textOf(a), c.text(b))
}

// compareOrdered calls the value's Compare method. The bound must have the
// same type as the value, otherwise KindType is raised.
func (c *DynamicChain) compareOrdered(a, b any) int {
	ra := reflect.ValueOf(a)
	if b == nil || reflect.TypeOf(b) != ra.Type() {
		c.mismatch(ra.Type(), reflect.TypeOf(b))
	}
	m, _ := compareMethod(ra.Type())
	out := m.Func.Call([]reflect.Value{ra, reflect.ValueOf(b)})
	return int(out[0].Int())
}

// text converts a text argument, raising KindType for anything else.
func (c *DynamicChain) text(v any) string {
	rv, ok := deref(v)
	if !ok || rv.Kind() != reflect.String {
		c.mismatch(reflect.TypeFor[string](), reflect.TypeOf(v))
	}
	return rv.String()
}

func textOf(v any) string {
	rv, ok := deref(v)
	if !ok {
		return ""
	}
	return rv.String()
}

func (c *DynamicChain) affix(v, p any, prefix bool) bool {
	if isNil(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	rp := reflect.ValueOf(p)
	if p == nil || (rp.Kind() != reflect.Slice && rp.Kind() != reflect.Array) {
		c.mismatch(rv.Type(), reflect.TypeOf(p))
	}
	n, m := rv.Len(), rp.Len()
	if m > n {
		return false
	}
	offset := 0
	if !prefix {
		offset = n - m
	}
	for i := range m {
		if !equalValues(rv.Index(offset+i).Interface(), rp.Index(i).Interface()) {
			return false
		}
	}
	return true
}

type numKind uint8

const (
	numInt numKind = iota
	numUint
	numFloat
)

// number holds any Go numeric value without losing precision, so that
// int64 and uint64 operands compare exactly.
type number struct {
	kind numKind
	i    int64
	u    uint64
	f    float64
}

func numberOf(rv reflect.Value) (number, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: numInt, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{kind: numUint, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{kind: numFloat, f: rv.Float()}, true
	}
	return number{}, false
}

func (n number) float() float64 {
	switch n.kind {
	case numInt:
		return float64(n.i)
	case numUint:
		return float64(n.u)
	}
	return n.f
}

func (n number) compare(o number) int {
	switch {
	case n.kind == numFloat || o.kind == numFloat:
		return cmp.Compare(n.float(), o.float())
	case n.kind == numInt && o.kind == numInt:
		return cmp.Compare(n.i, o.i)
	case n.kind == numUint && o.kind == numUint:
		return cmp.Compare(n.u, o.u)
	case n.kind == numInt:
		if n.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(n.i), o.u)
	default:
		if o.i < 0 {
			return 1
		}
		return cmp.Compare(n.u, uint64(o.i))
	}
}
