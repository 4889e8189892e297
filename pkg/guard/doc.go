// Package guard provides fluent guard clauses: a value is bound to a
// parameter name, a sequence of predicates is evaluated against it, and a
// single descriptive error is produced on violation.
//
// # Chains
//
// Every constructor returns a chain for one value domain. The chain carries
// the bound (name, value) pair, a combination Mode and at most one pending
// *Error. Predicates return the chain so calls can be strung together, and
// Resolve returns the pending error, if any, rendered by the message Catalog.
//
//	if err := guard.Signed("age", age).
//		And().
//		IsGreaterThanOrEqualTo(18).
//		IsLessThan(130).
//		Resolve(); err != nil {
//		return err
//	}
//
// # Combination
//
// Or is the default mode. Under Or a passing predicate clears an earlier
// failure, and when every predicate fails the first failure is reported.
// Under And the first failure is kept no matter what follows. And and Or
// only affect the predicates called after them.
//
//	// passes: 6 >= 5 retracts the failed "6 <= 2"
//	guard.Signed("x", 6).Or().IsLessThanOrEqualTo(2).IsGreaterThanOrEqualTo(5).Resolve()
//
// # Domains
//
// The constructor decides the predicate menu:
//
//   - Signed, Unsigned: equality, ordering and sign checks
//   - NullableSigned, NullableUnsigned: the above plus IsNull/IsNotNull;
//     null orders below every number and equals only null
//   - Bool, NullableBool: IsTrue/IsFalse and equality
//   - Char: ordering and sign checks over code points
//   - Text, NullableText, Sequence: IsNotNullOrEmpty, StartsWith, EndsWith,
//     equality (and ordering for text)
//   - Ordered: ordering through a Compare method, e.g. time.Time
//   - Ref, ID: IsNull/IsNotNull, equality, and IsOfType for Ref
//
// Of picks the domain at run time with Classify. Its chain exposes every
// predicate, and a predicate outside the domain menu panics with a
// KindUnsupported error. IsOfType and Unsigned IsNegative also panic: they
// signal misuse of the API rather than a failed check. Capture turns such
// panics back into errors.
//
// # Errors
//
// *Error carries the Kind, the parameter name and display forms of the
// actual and expected values. errors.Is matches the class sentinels
// (ErrRange, ErrNull, ...). Messages come from the default Catalog, which is
// EnglishCatalog unless replaced with SetDefaultCatalog; see
// pkg/guard/catalog for a localized one.
//
// # Concurrency
//
// A chain is owned by the code that created it and is not safe for
// concurrent use. Catalogs are shared and read-only.
//
// # Linkage
//
// Link wraps a chain pointer in a comparable identity handle.
package guard
