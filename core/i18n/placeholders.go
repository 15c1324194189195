package i18n

import (
	"fmt"
	"maps"
	"strings"

	"github.com/dmitrymomot/lingo/core/catalog"
	"github.com/dmitrymomot/lingo/core/expression"
	"github.com/dmitrymomot/lingo/core/form"
	"github.com/dmitrymomot/lingo/core/locale"
	"github.com/dmitrymomot/lingo/core/plural"
)

const (
	tokenOpen  = "{{"
	tokenClose = "}}"
)

// bind builds expression bindings from placeholder values. Numeric values
// carry their cardinal and ordinal categories for loc; forms bind as is.
// Other values are not bound, so guards referencing them fail as unbound.
func bind(placeholders M, loc locale.Locale) expression.Bindings {
	if len(placeholders) == 0 {
		return nil
	}
	b := make(expression.Bindings, len(placeholders))
	for name, v := range placeholders {
		if f, ok := v.(form.Form); ok {
			b[name] = expression.FormValue(f)
			continue
		}
		n, err := plural.NumberOf(v)
		if err != nil {
			continue
		}
		b[name] = expression.NumberValue(n, plural.Cardinal(n, loc), plural.Ordinal(n, loc))
	}
	return b
}

// substitute renders the entry's template. Tokens with a form-indexed
// placeholder spec get the matching sub-translation, which is rendered with
// raw values only. Unknown tokens are left verbatim.
func substitute(entry *catalog.LocalizedString, placeholders M, loc locale.Locale) string {
	return render(entry.Translation(), func(name string) (string, bool) {
		spec, hasSpec := entry.Placeholder(name)
		if !hasSpec {
			return rawValue(placeholders, name)
		}

		value, ok := placeholders[spec.Value()]
		if !spec.HasTranslations() {
			if !ok {
				return "", false
			}
			return formatValue(value), true
		}

		text, found := pickTranslation(spec, value, ok, loc)
		if !found {
			if !ok {
				return "", false
			}
			return formatValue(value), true
		}
		return render(text, func(inner string) (string, bool) {
			return rawValue(placeholders, inner)
		}), true
	})
}

// pickTranslation chooses a sub-translation: the value's own form, then its
// cardinal and ordinal categories, then the OTHER categories.
func pickTranslation(spec catalog.Placeholder, value any, present bool, loc locale.Locale) (string, bool) {
	var candidates []form.Form
	if present {
		if f, ok := value.(form.Form); ok {
			candidates = append(candidates, f)
		} else if n, err := plural.NumberOf(value); err == nil {
			candidates = append(candidates, plural.Cardinal(n, loc), plural.Ordinal(n, loc))
		}
	}
	candidates = append(candidates, form.CardinalOther, form.OrdinalOther)

	for _, f := range candidates {
		if text, ok := spec.Translation(f); ok {
			return text, true
		}
	}
	return "", false
}

func rawValue(placeholders M, name string) (string, bool) {
	v, ok := placeholders[name]
	if !ok {
		return "", false
	}
	return formatValue(v), true
}

// render replaces {{name}} tokens in a single left-to-right pass.
// Replacement text is never rescanned.
func render(template string, lookup func(name string) (string, bool)) string {
	if !strings.Contains(template, tokenOpen) {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))
	rest := template
	for {
		start := strings.Index(rest, tokenOpen)
		if start < 0 {
			break
		}
		end := strings.Index(rest[start+len(tokenOpen):], tokenClose)
		if end < 0 {
			break
		}
		end += start + len(tokenOpen)

		b.WriteString(rest[:start])
		name := rest[start+len(tokenOpen) : end]
		if isIdentifier(name) {
			if s, ok := lookup(name); ok {
				b.WriteString(s)
			} else {
				b.WriteString(rest[start : end+len(tokenClose)])
			}
			rest = rest[end+len(tokenClose):]
			continue
		}

		// Not a token: emit the opening braces and keep scanning after them.
		b.WriteString(tokenOpen)
		rest = rest[start+len(tokenOpen):]
	}
	b.WriteString(rest)
	return b.String()
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// formatValue renders a placeholder value. Numbers use their exact decimal
// form, forms their name.
func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case form.Form:
		return v.Name()
	case fmt.Stringer:
		return v.String()
	}
	if n, err := plural.NumberOf(v); err == nil {
		return n.String()
	}
	return fmt.Sprint(v)
}

// merge flattens several placeholder maps; later maps win.
func merge(ms []M) M {
	switch len(ms) {
	case 0:
		return nil
	case 1:
		return ms[0]
	}
	out := make(M)
	for _, m := range ms {
		maps.Copy(out, m)
	}
	return out
}
