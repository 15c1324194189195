package catalog

import (
	"fmt"
	"maps"
	"slices"

	"github.com/tidwall/gjson"

	"github.com/dmitrymomot/lingo/core/expression"
	"github.com/dmitrymomot/lingo/core/form"
	"github.com/dmitrymomot/lingo/core/locale"
)

// Parse decodes one locale file. The path is only used in error messages.
func Parse(loc locale.Locale, path string, data []byte) (*Catalog, error) {
	if loc.IsZero() {
		return nil, &LoadingError{Path: path, Err: locale.ErrInvalidTag}
	}
	entries, err := newDecoder(path, nil).decode(data)
	if err != nil {
		return nil, err
	}
	return New(map[locale.Locale][]*LocalizedString{loc: entries}), nil
}

// decoder turns locale file JSON into entries. Expressions are compiled
// once per distinct source through the shared cache.
type decoder struct {
	path  string
	exprs map[string]*expression.Expression
}

func newDecoder(path string, cache map[string]*expression.Expression) *decoder {
	if cache == nil {
		cache = make(map[string]*expression.Expression)
	}
	return &decoder{path: path, exprs: cache}
}

func (d *decoder) fail(key string, err error) error {
	return &LoadingError{Path: d.path, Key: key, Err: err}
}

func (d *decoder) decode(data []byte) ([]*LocalizedString, error) {
	if !gjson.ValidBytes(data) {
		return nil, d.fail("", ErrMalformedJSON)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, d.fail("", fmt.Errorf("%w: top-level value must be an object", ErrInvalidEntry))
	}

	var (
		entries []*LocalizedString
		err     error
	)
	root.ForEach(func(k, v gjson.Result) bool {
		var s *LocalizedString
		s, err = d.entry(k.String(), v, nil)
		if err != nil {
			return false
		}
		entries = append(entries, s)
		return true
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// entry decodes either the simple string form or the rich object form.
// Alternatives inherit the placeholders of the entry that declares them.
func (d *decoder) entry(key string, v gjson.Result, inherited map[string]Placeholder) (*LocalizedString, error) {
	switch {
	case v.Type == gjson.String:
		return NewLocalizedString(key, v.String(), placeholderList(inherited), nil), nil
	case v.IsObject():
		return d.rich(key, v, inherited)
	default:
		return nil, d.fail(key, fmt.Errorf("%w: value must be a string or an object", ErrInvalidEntry))
	}
}

func (d *decoder) rich(key string, v gjson.Result, inherited map[string]Placeholder) (*LocalizedString, error) {
	var (
		translation  string
		hasTemplate  bool
		alternatives gjson.Result
		placeholders = maps.Clone(inherited)
		err          error
	)
	if placeholders == nil {
		placeholders = make(map[string]Placeholder)
	}

	v.ForEach(func(field, val gjson.Result) bool {
		switch name := field.String(); name {
		case "translation":
			if val.Type != gjson.String {
				err = d.fail(key, fmt.Errorf("%w: translation must be a string", ErrInvalidEntry))
				return false
			}
			translation, hasTemplate = val.String(), true
		case "placeholders":
			err = d.placeholders(key, val, placeholders)
		case "alternatives":
			alternatives = val
		default:
			err = d.fail(key, fmt.Errorf("%w: unknown field %q", ErrInvalidEntry, name))
		}
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	if !hasTemplate {
		return nil, d.fail(key, ErrNoTranslation)
	}

	var alts []Alternative
	if alternatives.Exists() {
		if alts, err = d.alternatives(key, alternatives, placeholders); err != nil {
			return nil, err
		}
	}
	return NewLocalizedString(key, translation, placeholderList(placeholders), alts), nil
}

func (d *decoder) placeholders(key string, v gjson.Result, dst map[string]Placeholder) error {
	if !v.IsObject() {
		return d.fail(key, fmt.Errorf("%w: placeholders must be an object", ErrInvalidEntry))
	}

	var err error
	v.ForEach(func(k, spec gjson.Result) bool {
		var p Placeholder
		p, err = d.placeholder(key, k.String(), spec)
		if err != nil {
			return false
		}
		dst[p.name] = p
		return true
	})
	return err
}

func (d *decoder) placeholder(key, name string, spec gjson.Result) (Placeholder, error) {
	if !spec.IsObject() {
		return Placeholder{}, d.fail(key, fmt.Errorf("%w: placeholder %q must be an object", ErrInvalidEntry, name))
	}

	var (
		value        string
		translations map[form.Form]string
		err          error
	)
	spec.ForEach(func(field, val gjson.Result) bool {
		switch f := field.String(); f {
		case "value":
			if val.Type != gjson.String {
				err = d.fail(key, fmt.Errorf("%w: placeholder %q value must be a string", ErrInvalidEntry, name))
				return false
			}
			value = val.String()
		case "translations":
			translations, err = d.formTranslations(key, name, val)
		default:
			err = d.fail(key, fmt.Errorf("%w: placeholder %q has unknown field %q", ErrInvalidEntry, name, f))
		}
		return err == nil
	})
	if err != nil {
		return Placeholder{}, err
	}
	return NewPlaceholder(name, value, translations), nil
}

func (d *decoder) formTranslations(key, name string, v gjson.Result) (map[form.Form]string, error) {
	if !v.IsObject() {
		return nil, d.fail(key, fmt.Errorf("%w: placeholder %q translations must be an object", ErrInvalidEntry, name))
	}

	out := make(map[form.Form]string)
	var err error
	v.ForEach(func(k, text gjson.Result) bool {
		f, ok := form.Lookup(k.String())
		if !ok {
			err = d.fail(key, fmt.Errorf("%w: %q in placeholder %q", ErrInvalidFormName, k.String(), name))
			return false
		}
		if text.Type != gjson.String {
			err = d.fail(key, fmt.Errorf("%w: placeholder %q translation %s must be a string", ErrInvalidEntry, name, f.Name()))
			return false
		}
		out[f] = text.String()
		return true
	})
	return out, err
}

func (d *decoder) alternatives(key string, v gjson.Result, placeholders map[string]Placeholder) ([]Alternative, error) {
	if !v.IsArray() {
		return nil, d.fail(key, fmt.Errorf("%w: alternatives must be an array", ErrInvalidAlternative))
	}

	elems := v.Array()
	alts := make([]Alternative, 0, len(elems))
	for i, elem := range elems {
		if !elem.IsObject() {
			return nil, d.fail(key, fmt.Errorf("%w: element %d must be an object", ErrInvalidAlternative, i))
		}

		var fields []gjson.Result
		elem.ForEach(func(k, val gjson.Result) bool {
			fields = append(fields, k, val)
			return true
		})
		if len(fields) != 2 {
			return nil, d.fail(key, fmt.Errorf("%w: element %d must have exactly one expression key", ErrInvalidAlternative, i))
		}

		expr, err := d.compile(fields[0].String())
		if err != nil {
			return nil, d.fail(key, err)
		}
		entry, err := d.entry(key, fields[1], placeholders)
		if err != nil {
			return nil, err
		}
		alts = append(alts, NewAlternative(expr, entry))
	}
	return alts, nil
}

func (d *decoder) compile(src string) (*expression.Expression, error) {
	if expr, ok := d.exprs[src]; ok {
		return expr, nil
	}
	expr, err := expression.Compile(src)
	if err != nil {
		return nil, err
	}
	d.exprs[src] = expr
	return expr, nil
}

func placeholderList(m map[string]Placeholder) []Placeholder {
	if len(m) == 0 {
		return nil
	}
	return slices.Collect(maps.Values(m))
}
