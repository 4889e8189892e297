package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrymomot/guard/pkg/logger"
)

// Translator resolves dot-separated keys to message templates per language.
// Translations are loaded once from a TranslationAdapter and can be reloaded;
// all read methods are safe for concurrent use.
type Translator struct {
	translations   Translations
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
	matcher        *Matcher
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:    DefaultLanguage,
		fallbackToKey:  true,
		missingLogMode: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
		adapter:        adapter,
	}

	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload fetches translations from the adapter again and swaps them in
// atomically. On error the previous translations stay in place.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	if err := t.validateTranslations(translations); err != nil {
		return err
	}

	t.mu.Lock()
	t.translations = translations
	t.matcher = NewMatcher(t.supportedLanguages(), t.defaultLang)
	langs := t.supportedLanguages()
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "Translations loaded", "languages", langs)
	return nil
}

// validateTranslations checks that language codes are non-empty and every
// language has a translations map.
func (t *Translator) validateTranslations(trans Translations) error {
	if len(trans) == 0 {
		t.logger.Warn("No translations provided")
		return nil
	}

	for lang, translations := range trans {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		if translations == nil {
			return fmt.Errorf("%w: %s", ErrNilTranslations, lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the sorted language codes that have translations.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used when matching finds nothing better.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match returns the supported language closest to lang (BCP 47), e.g.
// "de-AT" matches "de". Unknown or malformed tags yield the default language.
func (t *Translator) Match(lang string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.matcher.Match(lang)
}

// getTranslation traverses a nested map using dot-separated keys.
// For example, key "guard.range.less_than" walks m["guard"]["range"]["less_than"].
func getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		currentMap, ok := asStringMap(next)
		if !ok {
			return nil, false
		}
		current = currentMap
	}

	return nil, false
}

// asStringMap accepts both map[string]any and the map[any]any produced by
// some YAML decoders.
func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			if ks, ok := k.(string); ok {
				out[ks] = v
			}
		}
		return out, true
	}
	return nil, false
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// lookup returns the template string for key. It logs misses when
// missing-translation logging is enabled.
func (t *Translator) lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		t.logMissing("Language not supported", lang, key)
		return "", false
	}

	val, ok := getTranslation(langMap, key)
	if !ok {
		t.logMissing("Translation not found", lang, key)
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		t.logMissing("Translation is not a string", lang, key, "type", fmt.Sprintf("%T", v))
		return "", false
	}
}

func (t *Translator) logMissing(msg, lang, key string, extra ...any) {
	if !t.missingLogMode {
		return
	}
	t.logger.Warn(msg, append([]any{logger.Language(lang), logger.Key(key)}, extra...)...)
}

// T translates a key for the given language. Arguments are key/value pairs
// substituted into "%{name}" placeholders:
//
//	// With translation "guard.empty": "%{parameter} must not be empty"
//	msg := translator.T("en", "guard.empty", "parameter", "name")
//	// Returns: "name must not be empty"
//
// If the translation is missing, T returns the key itself when fallback to
// key is enabled and an empty string otherwise.
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if t.fallbackToKey {
			return Sprintf(key, args...)
		}
		return ""
	}
	return Sprintf(tmpl, args...)
}

// Td translates a key with an explicit default used when the translation is
// missing, regardless of the fallback-to-key setting.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		return Sprintf(defaultValue, args...)
	}
	return Sprintf(tmpl, args...)
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Sprintf substitutes "%{name}" placeholders in tmpl using key/value pairs
// from args. An odd trailing argument is ignored and unknown placeholders
// are kept as is.
func Sprintf(tmpl string, args ...string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}
