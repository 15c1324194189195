package locale

import (
	"sort"
)

// Matcher resolves requested locales against a fixed set of supported locales
// using BCP 47 lookup. It is immutable and safe for concurrent use.
type Matcher struct {
	fallback  Locale
	supported []Locale
	set       map[Locale]struct{}
}

// NewMatcher creates a matcher over the supported locales.
// The fallback locale is returned whenever nothing matches.
func NewMatcher(fallback Locale, supported ...Locale) *Matcher {
	m := &Matcher{
		fallback: fallback,
		set:      make(map[Locale]struct{}, len(supported)),
	}
	for _, l := range supported {
		if l.IsZero() {
			continue
		}
		if _, ok := m.set[l]; ok {
			continue
		}
		m.set[l] = struct{}{}
		m.supported = append(m.supported, l)
	}
	sort.Slice(m.supported, func(i, j int) bool {
		return m.supported[i].String() < m.supported[j].String()
	})
	return m
}

// Default returns the fallback locale.
func (m *Matcher) Default() Locale { return m.fallback }

// Supported returns the supported locales sorted by tag.
func (m *Matcher) Supported() []Locale {
	out := make([]Locale, len(m.supported))
	copy(out, m.supported)
	return out
}

// IsSupported reports whether l is one of the supported locales.
func (m *Matcher) IsSupported(l Locale) bool {
	_, ok := m.set[l]
	return ok
}

// BestMatch returns the supported locale that best matches the requested one.
// The requested tag is tried as is, then with variant, region and script removed
// in turn. If none of those is supported, a supported locale sharing the language
// is chosen, preferring the fallback locale. Otherwise the fallback locale is returned.
func (m *Matcher) BestMatch(requested Locale) Locale {
	if l, ok := m.Lookup(requested); ok {
		return l
	}
	return m.fallback
}

// BestMatchRanges returns the best supported locale for a weighted preference list.
// Ranges are tried in descending quality order, ties keep list order.
// A wildcard range matches the fallback locale. Ranges with zero quality are ignored.
func (m *Matcher) BestMatchRanges(ranges []Range) Locale {
	for _, r := range sortRanges(ranges) {
		if r.Quality <= 0 {
			continue
		}
		if r.Wildcard {
			return m.fallback
		}
		if l, ok := m.Lookup(r.Locale); ok {
			return l
		}
	}
	return m.fallback
}

// BestMatchString parses an Accept-Language style header and matches it.
func (m *Matcher) BestMatchString(header string) Locale {
	return m.BestMatchRanges(ParseAcceptLanguage(header))
}

// Lookup is BestMatch without the fallback: it reports false when nothing matches.
func (m *Matcher) Lookup(requested Locale) (Locale, bool) {
	if requested.IsZero() {
		return Locale{}, false
	}

	for _, candidate := range requested.Fallbacks() {
		if m.IsSupported(candidate) {
			return candidate, true
		}
	}

	lang := requested.Language()
	if m.fallback.Language() == lang && m.IsSupported(m.fallback) {
		return m.fallback, true
	}
	for _, l := range m.supported {
		if l.Language() == lang {
			return l, true
		}
	}
	return Locale{}, false
}
