package catalog

import (
	"maps"
	"slices"
	"sort"

	"github.com/dmitrymomot/lingo/core/expression"
	"github.com/dmitrymomot/lingo/core/form"
)

// Placeholder describes how a {{name}} token is rendered.
// When Translations are present the bound value's grammatical form selects
// the wording; otherwise the raw value is substituted.
type Placeholder struct {
	name         string
	value        string
	translations map[form.Form]string
}

// NewPlaceholder creates a placeholder. An empty value binds the request
// variable with the placeholder's own name.
func NewPlaceholder(name, value string, translations map[form.Form]string) Placeholder {
	if value == "" {
		value = name
	}
	return Placeholder{
		name:         name,
		value:        value,
		translations: maps.Clone(translations),
	}
}

// Name is the token name used in templates.
func (p Placeholder) Name() string { return p.name }

// Value is the request variable the placeholder reads.
func (p Placeholder) Value() string { return p.value }

// Translation returns the sub-translation for a form.
func (p Placeholder) Translation(f form.Form) (string, bool) {
	s, ok := p.translations[f]
	return s, ok
}

// HasTranslations reports whether the placeholder has form-indexed wording.
func (p Placeholder) HasTranslations() bool { return len(p.translations) > 0 }

// Forms lists the forms that have a sub-translation, ordered by name.
func (p Placeholder) Forms() []form.Form {
	forms := slices.Collect(maps.Keys(p.translations))
	sort.Slice(forms, func(i, j int) bool { return forms[i].Name() < forms[j].Name() })
	return forms
}

// Alternative is a guarded phrasing used instead of the base translation
// when its expression evaluates true.
type Alternative struct {
	expr  *expression.Expression
	entry *LocalizedString
}

// NewAlternative pairs a compiled guard with the phrasing it selects.
func NewAlternative(expr *expression.Expression, entry *LocalizedString) Alternative {
	return Alternative{expr: expr, entry: entry}
}

// Expression returns the compiled guard.
func (a Alternative) Expression() *expression.Expression { return a.expr }

// Entry returns the phrasing selected by the guard.
func (a Alternative) Entry() *LocalizedString { return a.entry }

// LocalizedString is a catalog entry. It is immutable once built and safe
// to share between goroutines.
type LocalizedString struct {
	key          string
	translation  string
	placeholders map[string]Placeholder
	alternatives []Alternative
}

// NewLocalizedString builds an entry. Later placeholders with the same name
// replace earlier ones.
func NewLocalizedString(key, translation string, placeholders []Placeholder, alternatives []Alternative) *LocalizedString {
	s := &LocalizedString{
		key:          key,
		translation:  translation,
		alternatives: slices.Clone(alternatives),
	}
	if len(placeholders) > 0 {
		s.placeholders = make(map[string]Placeholder, len(placeholders))
		for _, p := range placeholders {
			s.placeholders[p.name] = p
		}
	}
	return s
}

// Key returns the catalog key.
func (s *LocalizedString) Key() string { return s.key }

// Translation returns the base template.
func (s *LocalizedString) Translation() string { return s.translation }

// Placeholder returns the placeholder spec for a template token name.
func (s *LocalizedString) Placeholder(name string) (Placeholder, bool) {
	p, ok := s.placeholders[name]
	return p, ok
}

// Placeholders returns all placeholder specs ordered by name.
func (s *LocalizedString) Placeholders() []Placeholder {
	out := slices.Collect(maps.Values(s.placeholders))
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Alternatives returns the alternatives in declaration order.
func (s *LocalizedString) Alternatives() []Alternative {
	return slices.Clone(s.alternatives)
}

// NumAlternatives returns the number of alternatives without copying them.
func (s *LocalizedString) NumAlternatives() int { return len(s.alternatives) }

// Alternative returns the i-th alternative.
func (s *LocalizedString) Alternative(i int) Alternative { return s.alternatives[i] }
