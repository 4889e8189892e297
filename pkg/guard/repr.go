package guard

import (
	"fmt"
	"reflect"
)

// Repr is the display form of a value referenced by an Error.
// The zero Repr means "absent".
type Repr struct {
	text string
	set  bool
}

// Show renders v for use in error messages. Nil values and nil pointers
// render as "null"; pointers to scalars are dereferenced.
func Show(v any) Repr {
	return Repr{text: format(v), set: true}
}

// IsSet reports whether the representation carries a value.
func (r Repr) IsSet() bool { return r.set }

func (r Repr) String() string { return r.text }

func format(v any) string {
	if v == nil {
		return "null"
	}
	if _, ok := v.(fmt.Stringer); ok {
		if isNil(v) {
			return "null"
		}
		return fmt.Sprint(v)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return "null"
		}
		if isScalar(rv.Elem().Kind()) {
			return format(rv.Elem().Interface())
		}
	case reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
	}
	return fmt.Sprint(v)
}

func isScalar(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// isNil reports whether v is nil or a nil pointer, map, slice, channel,
// function or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// equalValues compares two arbitrary values. Null values are equal only to
// other null values. Values that are comparable all the way down use ==,
// everything else reflect.DeepEqual. Structs and interfaces holding slices
// or maps are not comparable even when their static type is.
func equalValues(a, b any) bool {
	an, bn := isNil(a), isNil(b)
	if an || bn {
		return an && bn
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if reflect.ValueOf(a).Comparable() && reflect.ValueOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
