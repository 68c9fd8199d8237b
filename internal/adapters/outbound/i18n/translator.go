// Package i18n implements domain.Translator on top of an x/text message
// catalog.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{language.English, language.German}

// Translator formats messages of the built-in bundles for one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
	known   map[string]map[string]bool
}

// New returns a Translator for the best supported match of locale (for
// example "de", "de-AT" or "en_US"). Unknown or empty locales use English.
func New(locale string) *Translator {
	tag := language.English
	if locale != "" {
		_, idx := language.MatchStrings(language.NewMatcher(supported), locale)
		tag = supported[idx]
	}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	known := make(map[string]map[string]bool, len(bundles))
	for bundle, keys := range bundles {
		known[bundle] = make(map[string]bool, len(keys))
		for key, byLang := range keys {
			for lang, tmpl := range byLang {
				// Templates are static; SetString only fails on malformed input.
				_ = b.SetString(lang, catalogKey(bundle, key), tmpl)
			}
			known[bundle][key] = true
		}
	}

	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b)),
		known:   known,
	}
}

// Language returns the language messages are rendered in.
func (t *Translator) Language() language.Tag { return t.tag }

// Translate renders key from bundle with args. A missing bundle or key
// returns key unchanged.
func (t *Translator) Translate(bundle, key string, args ...any) string {
	if !t.known[bundle][key] {
		return key
	}
	return t.printer.Sprintf(catalogKey(bundle, key), args...)
}

func catalogKey(bundle, key string) string {
	return bundle + "/" + key
}
