package catalog

import (
	"slices"

	"github.com/dmitrymomot/lingo/core/form"
	"github.com/dmitrymomot/lingo/core/locale"
	"github.com/dmitrymomot/lingo/core/plural"
)

// Issue is a placeholder sub-translation keyed by a plural category that
// the locale's rules never produce.
type Issue struct {
	Locale      locale.Locale
	Key         string
	Placeholder string
	Form        form.Form
}

// Check lists unreachable placeholder sub-translations. Gender keys are
// never reported.
func Check(c *Catalog) []Issue {
	var issues []Issue
	for _, loc := range c.Locales() {
		reachable := map[form.Kind][]form.Form{
			form.KindCardinal: plural.Forms(loc, form.KindCardinal),
			form.KindOrdinal:  plural.Forms(loc, form.KindOrdinal),
		}
		seen := make(map[Issue]bool)
		for _, key := range c.Keys(loc) {
			s, _ := c.Lookup(loc, key)
			walk(s, func(p Placeholder) {
				for _, f := range p.Forms() {
					allowed, ok := reachable[f.Kind()]
					if !ok || slices.Contains(allowed, f) {
						continue
					}
					issue := Issue{Locale: loc, Key: key, Placeholder: p.name, Form: f}
					if !seen[issue] {
						seen[issue] = true
						issues = append(issues, issue)
					}
				}
			})
		}
	}
	return issues
}

func walk(s *LocalizedString, fn func(Placeholder)) {
	for _, p := range s.Placeholders() {
		fn(p)
	}
	for _, alt := range s.alternatives {
		walk(alt.entry, fn)
	}
}
