package guard

import "errors"

// Class sentinels. Every *Error matches exactly one of them with errors.Is.
var (
	// ErrNull is returned when a value is null but must not be.
	ErrNull = errors.New("value is null")

	// ErrNotNull is returned when a value must be null but is not.
	ErrNotNull = errors.New("value is not null")

	// ErrEmpty is returned when a text or sequence value has no elements.
	ErrEmpty = errors.New("value is empty")

	// ErrRange is returned when an ordering check fails.
	ErrRange = errors.New("value out of range")

	// ErrEquality is returned when an equality check fails.
	ErrEquality = errors.New("equality check failed")

	// ErrBoolean is returned when a boolean check fails.
	ErrBoolean = errors.New("boolean check failed")

	// ErrSign is returned when a sign check fails.
	ErrSign = errors.New("sign check failed")

	// ErrPrefix is returned when a value does not start with the expected prefix.
	ErrPrefix = errors.New("prefix mismatch")

	// ErrSuffix is returned when a value does not end with the expected suffix.
	ErrSuffix = errors.New("suffix mismatch")

	// ErrType is returned when a value is not of the expected type.
	ErrType = errors.New("type mismatch")

	// ErrUnsupported is raised when a predicate is called on a chain whose
	// value domain does not implement it.
	ErrUnsupported = errors.New("unsupported operation")
)
