package i18n

import (
	"github.com/dmitrymomot/lingo/core/locale"
)

// Translator provides a simplified translation interface with a fixed locale.
// It wraps a Provider and eliminates the need to pass the locale on every call.
type Translator struct {
	provider *Provider
	locale   locale.Locale
}

// NewTranslator creates a Translator for loc. A zero locale means the
// provider's default locale.
func NewTranslator(p *Provider, loc locale.Locale) *Translator {
	if p == nil {
		panic("i18n: provider is not provided")
	}
	if loc.IsZero() {
		loc = p.DefaultLocale()
	}
	return &Translator{provider: p, locale: loc}
}

// T translates a key. Errors are logged by the provider and the key is returned.
func (t *Translator) T(key string, placeholders ...M) string {
	return t.provider.T(t.locale, key, placeholders...)
}

// Get translates a key and reports failures.
func (t *Translator) Get(key string, placeholders M) (string, error) {
	return t.provider.GetLocaleWithPlaceholders(key, t.locale, placeholders)
}

// Locale returns the translator's locale.
func (t *Translator) Locale() locale.Locale {
	return t.locale
}
