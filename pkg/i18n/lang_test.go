package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/guard/pkg/i18n"
)

func TestMatcher(t *testing.T) {
	t.Parallel()

	m := i18n.NewMatcher([]string{"en", "de", "ru", "not a tag!"}, "en")

	tests := []struct {
		in   string
		want string
	}{
		{"de", "de"},
		{"de-CH", "de"},
		{"ru-RU", "ru"},
		{"en-US", "en"},
		{"da, ru;q=0.8", "ru"},
		{"zh", "en"},
		{"", "en"},
		{"@@@", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, m.Match(tt.in))
		})
	}
}

func TestMatcherFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "en", i18n.NewMatcher(nil, "").Match("de"))
	assert.Equal(t, "ru", i18n.NewMatcher(nil, "ru").Match("de"))

	var m *i18n.Matcher
	assert.Equal(t, "en", m.Match("de"))
}

func TestCanonical(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "en-US", i18n.Canonical("EN-us"))
	assert.Equal(t, "de", i18n.Canonical("de"))
	assert.Equal(t, "!!", i18n.Canonical("!!"))
}
