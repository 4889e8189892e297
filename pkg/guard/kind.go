package guard

// Kind identifies what a failed check expected of the value.
type Kind uint8

const (
	KindNull Kind = iota
	KindNotNull
	KindEmpty
	KindLessThan
	KindLessOrEqual
	KindGreaterThan
	KindGreaterOrEqual
	KindEqual
	KindNotEqual
	KindTrue
	KindFalse
	KindPositive
	KindNegative
	KindNotPositive
	KindNotNegative
	KindPrefix
	KindSuffix
	KindType
	KindUnsupported
)

type kindInfo struct {
	name  string
	key   string
	class error
}

var kinds = [...]kindInfo{
	KindNull:           {"null", "guard.required", ErrNull},
	KindNotNull:        {"not_null", "guard.must_be_null", ErrNotNull},
	KindEmpty:          {"empty", "guard.empty", ErrEmpty},
	KindLessThan:       {"less_than", "guard.range.less_than", ErrRange},
	KindLessOrEqual:    {"less_or_equal", "guard.range.less_or_equal", ErrRange},
	KindGreaterThan:    {"greater_than", "guard.range.greater_than", ErrRange},
	KindGreaterOrEqual: {"greater_or_equal", "guard.range.greater_or_equal", ErrRange},
	KindEqual:          {"equal", "guard.equality.equal", ErrEquality},
	KindNotEqual:       {"not_equal", "guard.equality.not_equal", ErrEquality},
	KindTrue:           {"true", "guard.boolean.must_be_true", ErrBoolean},
	KindFalse:          {"false", "guard.boolean.must_be_false", ErrBoolean},
	KindPositive:       {"positive", "guard.sign.positive", ErrSign},
	KindNegative:       {"negative", "guard.sign.negative", ErrSign},
	KindNotPositive:    {"not_positive", "guard.sign.not_positive", ErrSign},
	KindNotNegative:    {"not_negative", "guard.sign.not_negative", ErrSign},
	KindPrefix:         {"prefix", "guard.sequence.prefix", ErrPrefix},
	KindSuffix:         {"suffix", "guard.sequence.suffix", ErrSuffix},
	KindType:           {"type", "guard.type.mismatch", ErrType},
	KindUnsupported:    {"unsupported", "guard.unsupported", ErrUnsupported},
}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	for i := range kinds {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) valid() bool { return int(k) < len(kinds) }

// String returns the short snake_case name of the kind.
func (k Kind) String() string {
	if !k.valid() {
		return "unknown"
	}
	return kinds[k].name
}

// Key returns the message catalog key for the kind, e.g. "guard.range.less_than".
func (k Kind) Key() string {
	if !k.valid() {
		return "guard.unknown"
	}
	return kinds[k].key
}

// Class returns the sentinel error the kind belongs to.
func (k Kind) Class() error {
	if !k.valid() {
		return nil
	}
	return kinds[k].class
}

// Immediate reports whether violations of this kind are raised at the call
// site instead of being recorded on the chain.
func (k Kind) Immediate() bool {
	return k == KindType || k == KindUnsupported
}
