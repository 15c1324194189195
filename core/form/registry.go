package form

import (
	"fmt"
	"sort"
)

// Registry maps form names to forms. It is built once and never mutated afterwards.
type Registry struct {
	byName map[string]Form
}

// NewRegistry builds a registry from the given forms.
// A name shared by two forms is a configuration error.
func NewRegistry(forms ...Form) (*Registry, error) {
	r := &Registry{byName: make(map[string]Form, len(forms))}
	for _, f := range forms {
		name := f.Name()
		if existing, ok := r.byName[name]; ok {
			return nil, fmt.Errorf("%w: %q used by %s and %s forms", ErrDuplicateName, name, existing.Kind(), f.Kind())
		}
		r.byName[name] = f
	}
	return r, nil
}

// Lookup returns the form registered under name.
func (r *Registry) Lookup(name string) (Form, bool) {
	f, ok := r.byName[name]
	return f, ok
}

// Names returns all registered names sorted alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every built-in form: six cardinal categories, six ordinal categories and three genders.
func All() []Form {
	forms := make([]Form, 0, 2*len(Categories)+len(Genders))
	for _, c := range Categories {
		forms = append(forms, c.Cardinal())
	}
	for _, c := range Categories {
		forms = append(forms, c.Ordinal())
	}
	for _, g := range Genders {
		forms = append(forms, g)
	}
	return forms
}

var defaultRegistry = mustRegistry(All()...)

func mustRegistry(forms ...Form) *Registry {
	r, err := NewRegistry(forms...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup resolves a form name such as "CARDINALITY_ONE" or "FEMININE" in the built-in registry.
func Lookup(name string) (Form, bool) {
	return defaultRegistry.Lookup(name)
}

// Parse is like Lookup but returns ErrUnknownForm for unknown names.
func Parse(name string) (Form, error) {
	f, ok := defaultRegistry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownForm, name)
	}
	return f, nil
}

// Names returns the names of all built-in forms.
func Names() []string {
	return defaultRegistry.Names()
}
