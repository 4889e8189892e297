package guard

import (
	"sync/atomic"

	"github.com/dmitrymomot/guard/pkg/i18n"
)

// Catalog turns a violation into human readable text. Implementations must
// be safe for concurrent use; the engine only calls Message when an error
// leaves a chain.
type Catalog interface {
	Message(kind Kind, parameter string, actual, expected Repr) string
}

// CatalogFunc adapts a plain function to the Catalog interface.
type CatalogFunc func(kind Kind, parameter string, actual, expected Repr) string

// Message implements Catalog.
func (f CatalogFunc) Message(kind Kind, parameter string, actual, expected Repr) string {
	return f(kind, parameter, actual, expected)
}

// EnglishTemplates holds the built-in message templates. Placeholders use the
// same %{name} syntax as pkg/i18n: parameter, actual and expected.
var EnglishTemplates = map[Kind]string{
	KindNull:           "%{parameter} must not be null",
	KindNotNull:        "%{parameter} must be null (actual: %{actual})",
	KindEmpty:          "%{parameter} must not be empty",
	KindLessThan:       "%{parameter} must be less than %{expected} (actual: %{actual})",
	KindLessOrEqual:    "%{parameter} must be less than or equal to %{expected} (actual: %{actual})",
	KindGreaterThan:    "%{parameter} must be greater than %{expected} (actual: %{actual})",
	KindGreaterOrEqual: "%{parameter} must be greater than or equal to %{expected} (actual: %{actual})",
	KindEqual:          "%{parameter} must be equal to %{expected} (actual: %{actual})",
	KindNotEqual:       "%{parameter} must not be equal to %{expected}",
	KindTrue:           "%{parameter} must be true",
	KindFalse:          "%{parameter} must be false",
	KindPositive:       "%{parameter} must be positive (actual: %{actual})",
	KindNegative:       "%{parameter} must be negative (actual: %{actual})",
	KindNotPositive:    "%{parameter} must not be positive (actual: %{actual})",
	KindNotNegative:    "%{parameter} must not be negative (actual: %{actual})",
	KindPrefix:         "%{parameter} must start with %{expected} (actual: %{actual})",
	KindSuffix:         "%{parameter} must end with %{expected} (actual: %{actual})",
	KindType:           "%{parameter} must be of type %{expected} (actual: %{actual})",
	KindUnsupported:    "%{expected} is not supported for %{parameter} (domain: %{actual})",
}

// Render substitutes the %{parameter}, %{actual} and %{expected}
// placeholders in tmpl with i18n.Sprintf. Absent values render as empty
// strings; other placeholders are kept.
func Render(tmpl, parameter string, actual, expected Repr) string {
	return i18n.Sprintf(tmpl,
		"parameter", parameter,
		"actual", actual.String(),
		"expected", expected.String(),
	)
}

// EnglishCatalog renders EnglishTemplates. It is the default catalog.
var EnglishCatalog Catalog = CatalogFunc(func(kind Kind, parameter string, actual, expected Repr) string {
	tmpl, ok := EnglishTemplates[kind]
	if !ok {
		return parameter + ": " + kind.String() + " violation"
	}
	return Render(tmpl, parameter, actual, expected)
})

type catalogBox struct{ Catalog }

var defaultCatalog atomic.Value

// SetDefaultCatalog replaces the catalog used by Resolve and by immediate
// failures. A nil catalog restores EnglishCatalog.
func SetDefaultCatalog(c Catalog) {
	if c == nil {
		c = EnglishCatalog
	}
	defaultCatalog.Store(catalogBox{c})
}

// DefaultCatalog returns the catalog installed with SetDefaultCatalog.
func DefaultCatalog() Catalog {
	if b, ok := defaultCatalog.Load().(catalogBox); ok {
		return b.Catalog
	}
	return EnglishCatalog
}
