package catalog

import (
	"maps"
	"slices"
	"sort"

	"github.com/dmitrymomot/lingo/core/locale"
)

// Catalog maps locales to their localized strings. It never changes after
// construction; Merge returns a new value.
type Catalog struct {
	entries map[locale.Locale]map[string]*LocalizedString
}

// New builds a catalog from entries grouped by locale. Later entries with
// the same key replace earlier ones. Zero locales are ignored.
func New(entries map[locale.Locale][]*LocalizedString) *Catalog {
	c := &Catalog{entries: make(map[locale.Locale]map[string]*LocalizedString, len(entries))}
	for loc, list := range entries {
		if loc.IsZero() {
			continue
		}
		byKey := make(map[string]*LocalizedString, len(list))
		for _, s := range list {
			if s != nil {
				byKey[s.key] = s
			}
		}
		c.entries[loc] = byKey
	}
	return c
}

// Empty returns a catalog without locales.
func Empty() *Catalog {
	return &Catalog{entries: map[locale.Locale]map[string]*LocalizedString{}}
}

// Merge combines catalogs. For the same locale and key, later catalogs win.
func Merge(catalogs ...*Catalog) *Catalog {
	out := Empty()
	for _, c := range catalogs {
		if c == nil {
			continue
		}
		for loc, byKey := range c.entries {
			dst, ok := out.entries[loc]
			if !ok {
				dst = make(map[string]*LocalizedString, len(byKey))
				out.entries[loc] = dst
			}
			maps.Copy(dst, byKey)
		}
	}
	return out
}

// Lookup returns the entry for a key in exactly the given locale.
func (c *Catalog) Lookup(loc locale.Locale, key string) (*LocalizedString, bool) {
	if c == nil {
		return nil, false
	}
	s, ok := c.entries[loc][key]
	return s, ok
}

// HasLocale reports whether the catalog has entries for the locale.
func (c *Catalog) HasLocale(loc locale.Locale) bool {
	if c == nil {
		return false
	}
	_, ok := c.entries[loc]
	return ok
}

// Locales returns the catalog's locales ordered by tag.
func (c *Catalog) Locales() []locale.Locale {
	if c == nil {
		return nil
	}
	locs := slices.Collect(maps.Keys(c.entries))
	sort.Slice(locs, func(i, j int) bool { return locs[i].String() < locs[j].String() })
	return locs
}

// Keys returns the keys defined for a locale in sorted order.
func (c *Catalog) Keys(loc locale.Locale) []string {
	if c == nil {
		return nil
	}
	keys := slices.Collect(maps.Keys(c.entries[loc]))
	slices.Sort(keys)
	return keys
}

// Len returns the total number of entries across locales.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, byKey := range c.entries {
		n += len(byKey)
	}
	return n
}
