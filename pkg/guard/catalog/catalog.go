package catalog

import (
	"context"
	"embed"
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/guard/pkg/guard"
	"github.com/dmitrymomot/guard/pkg/i18n"
	"github.com/dmitrymomot/guard/pkg/logger"
)

//go:embed locales/*.yaml
var locales embed.FS

// Catalog is a guard.Catalog backed by an i18n.Translator. A Catalog is bound
// to one language; For derives catalogs for other languages that share the
// same translations.
type Catalog struct {
	translator      *i18n.Translator
	lang            string
	logger          *slog.Logger
	englishFallback bool
	logMissing      bool
}

var _ guard.Catalog = (*Catalog)(nil)

// New loads the embedded locales plus any WithDirectory sources and returns
// a catalog for the requested language.
func New(ctx context.Context, opts ...Option) (*Catalog, error) {
	o := &options{
		language:        i18n.DefaultLanguage,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		englishFallback: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	log := o.logger.With(logger.Component("guard.catalog"))

	embedded, err := i18n.NewFSAdapter(locales, "locales", i18n.NewYAMLParser())
	if err != nil {
		return nil, errors.Join(ErrLoadLocales, err)
	}
	sources := i18n.MultiAdapter{embedded}
	for _, dir := range o.dirs {
		a, err := i18n.NewDirectoryAdapter(dir)
		if err != nil {
			return nil, errors.Join(ErrLoadLocales, err)
		}
		sources = append(sources, a)
	}

	translator, err := i18n.NewTranslator(ctx, sources,
		i18n.WithDefaultLanguage(i18n.DefaultLanguage),
		i18n.WithFallbackToKey(false),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(o.logMissing),
	)
	if err != nil {
		return nil, errors.Join(ErrLoadLocales, err)
	}

	c := &Catalog{
		translator:      translator,
		logger:          log,
		englishFallback: o.englishFallback,
		logMissing:      o.logMissing,
	}
	c.lang = c.match(o.language)
	return c, nil
}

func (c *Catalog) match(lang string) string {
	matched := c.translator.Match(lang)
	if lang != "" && matched != i18n.Canonical(lang) && matched != lang {
		c.logger.Debug("Language matched to closest available",
			logger.Language(lang),
			slog.String("matched", matched),
		)
	}
	return matched
}

// Language returns the language the catalog renders messages in.
func (c *Catalog) Language() string {
	return c.lang
}

// Languages returns every language with at least one loaded message.
func (c *Catalog) Languages() []string {
	return c.translator.SupportedLanguages()
}

// For returns a catalog for lang sharing the receiver's translations.
// lang may be a BCP 47 tag or an Accept-Language list.
func (c *Catalog) For(lang string) *Catalog {
	dup := *c
	dup.lang = c.match(lang)
	return &dup
}

// Reload re-reads every translation source. Catalogs derived with For see
// the new translations too.
func (c *Catalog) Reload(ctx context.Context) error {
	if err := c.translator.Reload(ctx); err != nil {
		return errors.Join(ErrLoadLocales, err)
	}
	return nil
}

// Missing lists the kinds without a translation in the catalog language.
func (c *Catalog) Missing() []guard.Kind {
	var missing []guard.Kind
	for _, k := range guard.Kinds() {
		if !c.translator.HasTranslation(c.lang, k.Key()) {
			missing = append(missing, k)
		}
	}
	return missing
}

// Message implements guard.Catalog. Lookup order is the catalog language,
// the default language, then the English fallback.
func (c *Catalog) Message(kind guard.Kind, parameter string, actual, expected guard.Repr) string {
	key := kind.Key()
	args := []string{
		"parameter", parameter,
		"actual", actual.String(),
		"expected", expected.String(),
	}
	for _, lang := range c.lookupOrder() {
		if c.translator.HasTranslation(lang, key) {
			return c.translator.T(lang, key, args...)
		}
	}
	if c.logMissing {
		c.logger.Warn("Guard message has no translation",
			logger.Kind(kind),
			logger.Parameter(parameter),
			logger.Language(c.lang),
			logger.Key(key),
			slog.Bool("english_fallback", c.englishFallback),
		)
	}
	if c.englishFallback {
		return guard.EnglishCatalog.Message(kind, parameter, actual, expected)
	}
	return key
}

func (c *Catalog) lookupOrder() []string {
	def := c.translator.DefaultLanguage()
	if c.lang == def {
		return []string{c.lang}
	}
	return []string{c.lang, def}
}
