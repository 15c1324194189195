package i18n

import (
	"fmt"

	"github.com/dmitrymomot/lingo/core/catalog"
	"github.com/dmitrymomot/lingo/core/expression"
	"github.com/dmitrymomot/lingo/core/locale"
	"github.com/dmitrymomot/lingo/core/logger"
)

// resolve runs the request pipeline: resolve locale, look up the key,
// select an alternative, substitute placeholders.
func (p *Provider) resolve(requested locale.Locale, key string, placeholders M) (string, error) {
	if requested.IsZero() {
		requested = p.defaultLocale
	}

	entry, loc, err := p.lookup(requested, key, placeholders)
	if err != nil {
		return "", err
	}
	if entry == nil {
		return key, nil
	}

	chosen, err := selectAlternative(entry, bind(placeholders, loc))
	if err != nil {
		// Expression errors are catalog bugs and surface in every failure mode.
		return "", fmt.Errorf("i18n: key %q in locale %q: %w", key, loc, err)
	}
	return substitute(chosen, placeholders, loc), nil
}

// lookup finds the entry for key. Under UseFallback a nil entry with a nil
// error means the key should be returned as is.
func (p *Provider) lookup(requested locale.Locale, key string, placeholders M) (*catalog.LocalizedString, locale.Locale, error) {
	if p.mode == FailFast {
		// Truncation maps en-US to a supported en; the matched locale itself
		// gets no fallback.
		matched, ok := p.matcher.Lookup(requested)
		if !ok {
			p.notifyMissing(requested, key)
			return nil, requested, &MissingTranslationError{
				Key:          key,
				Locale:       requested,
				Placeholders: placeholders,
				Err:          &UnsupportedLocaleError{Locale: requested, Supported: p.matcher.Supported()},
			}
		}
		if s, ok := p.catalog.Lookup(matched, key); ok {
			return s, matched, nil
		}
		p.notifyMissing(matched, key)
		return nil, matched, &MissingTranslationError{Key: key, Locale: matched, Placeholders: placeholders}
	}

	for _, loc := range p.candidates(requested) {
		if s, ok := p.catalog.Lookup(loc, key); ok {
			return s, loc, nil
		}
	}

	p.notifyMissing(requested, key)
	p.log.Warn("translation missing",
		logger.Component("i18n"),
		logger.Locale(requested),
		logger.TranslationKey(key),
	)
	return nil, requested, nil
}

// candidates lists the locales tried under UseFallback: the best supported
// match, its parents, then the default locale.
func (p *Provider) candidates(requested locale.Locale) []locale.Locale {
	list := p.matcher.BestMatch(requested).Fallbacks()
	for _, l := range list {
		if l == p.defaultLocale {
			return list
		}
	}
	return append(list, p.defaultLocale)
}

func (p *Provider) notifyMissing(loc locale.Locale, key string) {
	if p.missingKeyHandler != nil {
		p.missingKeyHandler(loc, key)
	}
}

// selectAlternative returns the first alternative whose guard holds,
// descending into nested alternatives, or the entry itself.
func selectAlternative(entry *catalog.LocalizedString, b expression.Bindings) (*catalog.LocalizedString, error) {
	for i := range entry.NumAlternatives() {
		alt := entry.Alternative(i)
		ok, err := alt.Expression().Evaluate(b)
		if err != nil {
			return nil, err
		}
		if ok {
			return selectAlternative(alt.Entry(), b)
		}
	}
	return entry, nil
}
