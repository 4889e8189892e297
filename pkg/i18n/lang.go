package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is the default language code used when no language is detected
const DefaultLanguage = "en"

// Matcher picks the best supported language for a requested BCP 47 tag.
type Matcher struct {
	supported []string
	fallback  string
	matcher   language.Matcher
}

// NewMatcher builds a matcher over the supported language codes. Codes that
// are not valid BCP 47 tags are still matched by exact string comparison.
func NewMatcher(supported []string, fallback string) *Matcher {
	m := &Matcher{fallback: fallback}
	tags := make([]language.Tag, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		m.supported = append(m.supported, code)
		tags = append(tags, tag)
	}
	if len(tags) > 0 {
		m.matcher = language.NewMatcher(tags)
	}
	return m
}

// Match returns the supported code closest to lang, or the fallback when no
// supported language is a reasonable match. lang may also be an
// Accept-Language style list such as "de-AT,de;q=0.9,en;q=0.5".
func (m *Matcher) Match(lang string) string {
	if m == nil || m.matcher == nil || lang == "" {
		return m.fallbackOrDefault()
	}
	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return m.fallbackOrDefault()
	}
	_, idx, confidence := m.matcher.Match(tags...)
	if confidence == language.No {
		return m.fallbackOrDefault()
	}
	return m.supported[idx]
}

func (m *Matcher) fallbackOrDefault() string {
	if m == nil || m.fallback == "" {
		return DefaultLanguage
	}
	return m.fallback
}

// Canonical returns the canonical BCP 47 form of a language code, e.g.
// "EN-us" becomes "en-US". Invalid codes are returned unchanged.
func Canonical(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	return tag.String()
}
