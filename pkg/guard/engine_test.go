package guard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guard/pkg/guard"
)

func guardError(t *testing.T, err error) *guard.Error {
	t.Helper()
	var gerr *guard.Error
	require.ErrorAs(t, err, &gerr)
	return gerr
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("lone passing predicate", func(t *testing.T) {
		t.Parallel()
		err := guard.Signed("x", 5).IsGreaterThan(2).Resolve()
		assert.NoError(t, err)
	})

	t.Run("lone failing predicate", func(t *testing.T) {
		t.Parallel()
		err := guard.Signed("x", 1).IsGreaterThan(2).Resolve()
		gerr := guardError(t, err)
		assert.Equal(t, guard.KindGreaterThan, gerr.Kind)
		assert.Equal(t, "x", gerr.Parameter)
		assert.Equal(t, "1", gerr.Actual.String())
		assert.Equal(t, "2", gerr.Expected.String())
		assert.Equal(t, "x must be greater than 2 (actual: 1)", err.Error())
	})

	t.Run("no predicates", func(t *testing.T) {
		t.Parallel()
		c := guard.Signed("x", 1)
		assert.True(t, c.Valid())
		assert.Nil(t, c.Pending())
		assert.NoError(t, c.Resolve())
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		c := guard.Signed("x", 1).IsGreaterThan(2)
		first := c.Resolve()
		second := c.Resolve()
		require.Error(t, first)
		assert.Equal(t, first, second)
		assert.False(t, c.Valid())

		ok := guard.Signed("x", 3).IsGreaterThan(2)
		assert.NoError(t, ok.Resolve())
		assert.NoError(t, ok.Resolve())
	})

	t.Run("pending has no message", func(t *testing.T) {
		t.Parallel()
		c := guard.Signed("x", 1).IsGreaterThan(2)
		p := c.Pending()
		require.NotNil(t, p)
		assert.Empty(t, p.Message)
		assert.Equal(t, guard.KindGreaterThan, p.Kind)

		p.Parameter = "changed"
		assert.Equal(t, "x", c.Pending().Parameter)
	})

	t.Run("resolve with catalog", func(t *testing.T) {
		t.Parallel()
		catalog := guard.CatalogFunc(func(kind guard.Kind, parameter string, actual, expected guard.Repr) string {
			return kind.Key() + ":" + parameter + ":" + actual.String() + ":" + expected.String()
		})
		err := guard.Signed("x", 1).IsGreaterThan(2).ResolveWith(catalog)
		require.Error(t, err)
		assert.Equal(t, "guard.range.greater_than:x:1:2", err.Error())
	})

	t.Run("must resolve", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() { guard.Signed("x", 3).IsGreaterThan(2).MustResolve() })
		assert.Panics(t, func() { guard.Signed("x", 1).IsGreaterThan(2).MustResolve() })
	})

	t.Run("errors.Is matches class", func(t *testing.T) {
		t.Parallel()
		err := guard.Signed("x", 1).IsLessThan(0).Resolve()
		assert.ErrorIs(t, err, guard.ErrRange)
		assert.NotErrorIs(t, err, guard.ErrSign)
	})
}

func TestCombination(t *testing.T) {
	t.Parallel()

	t.Run("default mode is or", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, guard.Or, guard.Signed("x", 1).Mode())
	})

	t.Run("and keeps first failure", func(t *testing.T) {
		t.Parallel()
		err := guard.Signed("x", 1).And().IsGreaterThanOrEqualTo(2).IsLessThanOrEqualTo(5).Resolve()
		gerr := guardError(t, err)
		assert.Equal(t, guard.KindGreaterOrEqual, gerr.Kind)
		assert.Equal(t, "2", gerr.Expected.String())
	})

	t.Run("and ignores later failures", func(t *testing.T) {
		t.Parallel()
		err := guard.Signed("x", 10).And().IsLessThan(5).IsGreaterThan(20).Resolve()
		gerr := guardError(t, err)
		assert.Equal(t, guard.KindLessThan, gerr.Kind)
		assert.Equal(t, "5", gerr.Expected.String())
	})

	t.Run("and passing predicate does not clear", func(t *testing.T) {
		t.Parallel()
		err := guard.Signed("x", 10).And().IsLessThan(5).IsGreaterThan(1).Resolve()
		gerr := guardError(t, err)
		assert.Equal(t, guard.KindLessThan, gerr.Kind)
	})

	t.Run("and all pass", func(t *testing.T) {
		t.Parallel()
		err := guard.Signed("x", 3).And().IsGreaterThanOrEqualTo(2).IsLessThanOrEqualTo(5).Resolve()
		assert.NoError(t, err)
	})

	t.Run("or both fail reports first", func(t *testing.T) {
		t.Parallel()
		err := guard.Signed("x", 3).Or().IsLessThanOrEqualTo(2).IsGreaterThanOrEqualTo(6).Resolve()
		gerr := guardError(t, err)
		assert.Equal(t, guard.KindLessOrEqual, gerr.Kind)
		assert.Equal(t, "2", gerr.Expected.String())
		assert.Equal(t, "x must be less than or equal to 2 (actual: 3)", err.Error())
	})

	t.Run("or later pass retracts", func(t *testing.T) {
		t.Parallel()
		err := guard.Signed("x", 6).Or().IsLessThanOrEqualTo(2).IsGreaterThanOrEqualTo(5).Resolve()
		assert.NoError(t, err)
	})

	t.Run("or failure after pass is recorded", func(t *testing.T) {
		t.Parallel()
		err := guard.Signed("x", 6).IsGreaterThan(5).IsLessThan(0).Resolve()
		gerr := guardError(t, err)
		assert.Equal(t, guard.KindLessThan, gerr.Kind)
	})

	t.Run("mode change is not retroactive", func(t *testing.T) {
		t.Parallel()
		c := guard.Signed("x", 1).IsGreaterThan(5).And().IsLessThan(10)
		gerr := guardError(t, c.Resolve())
		assert.Equal(t, guard.KindGreaterThan, gerr.Kind)

		c.Or().IsLessThan(10)
		assert.NoError(t, c.Resolve())
	})

	t.Run("or pass clears an and failure", func(t *testing.T) {
		t.Parallel()
		err := guard.Signed("x", 1).And().IsGreaterThan(5).Or().IsLessThan(10).Resolve()
		assert.NoError(t, err)
	})

	t.Run("mode setters do not evaluate", func(t *testing.T) {
		t.Parallel()
		c := guard.Signed("x", 1).IsGreaterThan(5)
		c.And().Or().And()
		assert.Equal(t, guard.And, c.Mode())
		assert.False(t, c.Valid())
	})
}

func TestCombinationProperties(t *testing.T) {
	t.Parallel()

	type check struct {
		name string
		kind guard.Kind
		run  func(c *guard.SignedChain[int]) *guard.SignedChain[int]
	}
	checks := []check{
		{"lt 0", guard.KindLessThan, func(c *guard.SignedChain[int]) *guard.SignedChain[int] { return c.IsLessThan(0) }},
		{"le 0", guard.KindLessOrEqual, func(c *guard.SignedChain[int]) *guard.SignedChain[int] { return c.IsLessThanOrEqualTo(0) }},
		{"gt 3", guard.KindGreaterThan, func(c *guard.SignedChain[int]) *guard.SignedChain[int] { return c.IsGreaterThan(3) }},
		{"ge 3", guard.KindGreaterOrEqual, func(c *guard.SignedChain[int]) *guard.SignedChain[int] { return c.IsGreaterThanOrEqualTo(3) }},
		{"eq 2", guard.KindEqual, func(c *guard.SignedChain[int]) *guard.SignedChain[int] { return c.IsEqualTo(2) }},
		{"ne 2", guard.KindNotEqual, func(c *guard.SignedChain[int]) *guard.SignedChain[int] { return c.IsNotEqualTo(2) }},
		{"positive", guard.KindPositive, func(c *guard.SignedChain[int]) *guard.SignedChain[int] { return c.IsPositive() }},
		{"negative", guard.KindNegative, func(c *guard.SignedChain[int]) *guard.SignedChain[int] { return c.IsNegative() }},
	}

	for _, value := range []int{-2, 0, 2, 5} {
		for _, a := range checks {
			for _, b := range checks {
				aFails := !a.run(guard.Signed("x", value)).Valid()
				bFails := !b.run(guard.Signed("x", value)).Valid()

				andErr := b.run(a.run(guard.Signed("x", value).And())).Pending()
				orErr := b.run(a.run(guard.Signed("x", value).Or())).Pending()

				switch {
				case aFails:
					require.NotNil(t, andErr, "%d: %s and %s", value, a.name, b.name)
					assert.Equal(t, a.kind, andErr.Kind, "%d: %s and %s", value, a.name, b.name)
				case bFails:
					require.NotNil(t, andErr)
					assert.Equal(t, b.kind, andErr.Kind)
				default:
					assert.Nil(t, andErr)
				}

				switch {
				case !bFails:
					assert.Nil(t, orErr, "%d: %s or %s", value, a.name, b.name)
				case aFails:
					require.NotNil(t, orErr)
					assert.Equal(t, a.kind, orErr.Kind, "%d: %s or %s", value, a.name, b.name)
				default:
					require.NotNil(t, orErr)
					assert.Equal(t, b.kind, orErr.Kind)
				}
			}
		}
	}
}

func TestCapture(t *testing.T) {
	t.Parallel()

	t.Run("no panic", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, guard.Capture(func() {}))
	})

	t.Run("guard panic", func(t *testing.T) {
		t.Parallel()
		err := guard.Capture(func() {
			guard.Unsigned("n", uint(3)).IsNegative()
		})
		assert.ErrorIs(t, err, guard.ErrUnsupported)
		assert.Equal(t, "IsNegative is not supported for n (domain: unsigned)", err.Error())
	})

	t.Run("foreign panic propagates", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		assert.PanicsWithError(t, "boom", func() {
			_ = guard.Capture(func() { panic(boom) })
		})
	})
}

func TestUnsupportedFailsFast(t *testing.T) {
	t.Parallel()

	t.Run("without resolve", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { guard.Unsigned("n", uint8(1)).IsNegative() })
	})

	t.Run("ignores and mode with pending failure", func(t *testing.T) {
		t.Parallel()
		c := guard.Unsigned("n", uint(1)).And().IsGreaterThan(5)
		err := guard.Capture(func() { c.IsNegative() })
		assert.ErrorIs(t, err, guard.ErrUnsupported)
		assert.Equal(t, guard.KindGreaterThan, c.Pending().Kind)
	})

	t.Run("ignores or mode", func(t *testing.T) {
		t.Parallel()
		c := guard.Unsigned("n", uint(1)).Or().IsGreaterThan(0)
		err := guard.Capture(func() { c.IsNegative() })
		assert.ErrorIs(t, err, guard.ErrUnsupported)
		assert.True(t, c.Valid())
	})
}
