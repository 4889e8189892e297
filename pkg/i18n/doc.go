// Package i18n provides a small translation store: message templates keyed
// by language and dot-separated key, with "%{name}" placeholder
// substitution. It is safe for concurrent use.
//
// The package allows you to:
//
//   - Load translations from memory, a single file, a directory on disk, an
//     embedded file-system, or any custom storage by implementing the
//     TranslationAdapter interface. MultiAdapter layers several sources.
//   - Parse JSON and YAML translation files.
//   - Match a requested language (a BCP 47 tag or an Accept-Language list)
//     against the supported ones with golang.org/x/text/language.
//
// # Usage
//
//	adapter, err := i18n.NewFSAdapter(localesFS, "locales")
//	if err != nil {
//		return err
//	}
//
//	translator, err := i18n.NewTranslator(ctx, adapter,
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithFallbackToKey(true),
//	)
//	if err != nil {
//		return err
//	}
//
//	lang := translator.Match("de-AT") // "de" when German is available
//	msg := translator.T(lang, "guard.empty", "parameter", "name")
//
// # Error Handling
//
// Loading errors wrap package sentinels with errors.Join, so callers can test
// them with errors.Is:
//
//	if errors.Is(err, i18n.ErrFailedToParseFile) {
//	    // broken locale file
//	}
package i18n
