package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/core/catalog"
	"github.com/dmitrymomot/lingo/core/expression"
	"github.com/dmitrymomot/lingo/core/form"
	"github.com/dmitrymomot/lingo/core/locale"
)

const enJSON = `{
	"greeting": "Hello, {{name}}!",
	"books": {
		"translation": "You have {{count}} {{books}}.",
		"placeholders": {
			"books": {
				"value": "count",
				"translations": {
					"CARDINALITY_ONE": "book",
					"CARDINALITY_OTHER": "books"
				}
			}
		},
		"alternatives": [
			{ "count == 0": "You have no books." },
			{ "count > 100": { "translation": "You have lots of {{books}}." } }
		]
	}
}`

func TestParse(t *testing.T) {
	en := locale.MustParse("en")

	t.Run("simple and rich entries", func(t *testing.T) {
		c, err := catalog.Parse(en, "en.json", []byte(enJSON))
		require.NoError(t, err)

		assert.Equal(t, []locale.Locale{en}, c.Locales())
		assert.Equal(t, []string{"books", "greeting"}, c.Keys(en))
		assert.Equal(t, 2, c.Len())

		greeting, ok := c.Lookup(en, "greeting")
		require.True(t, ok)
		assert.Equal(t, "Hello, {{name}}!", greeting.Translation())
		assert.Empty(t, greeting.Placeholders())

		books, ok := c.Lookup(en, "books")
		require.True(t, ok)
		assert.Equal(t, "books", books.Key())
		assert.Equal(t, "You have {{count}} {{books}}.", books.Translation())

		p, ok := books.Placeholder("books")
		require.True(t, ok)
		assert.Equal(t, "count", p.Value())
		assert.True(t, p.HasTranslations())
		assert.Equal(t, []form.Form{form.CardinalOne, form.CardinalOther}, p.Forms())
		one, ok := p.Translation(form.CardinalOne)
		require.True(t, ok)
		assert.Equal(t, "book", one)

		alts := books.Alternatives()
		require.Len(t, alts, 2)
		assert.Equal(t, "count == 0", alts[0].Expression().Source())
		assert.Equal(t, "You have no books.", alts[0].Entry().Translation())
		assert.Equal(t, "count > 100", alts[1].Expression().Source())

		// Alternatives inherit the placeholders of their parent.
		inherited, ok := alts[1].Entry().Placeholder("books")
		require.True(t, ok)
		assert.Equal(t, "count", inherited.Value())
	})

	t.Run("placeholder value defaults to its name", func(t *testing.T) {
		c, err := catalog.Parse(en, "en.json", []byte(`{
			"k": {
				"translation": "{{n}}",
				"placeholders": { "n": { "translations": { "ORDINALITY_ONE": "first" } } }
			}
		}`))
		require.NoError(t, err)
		s, _ := c.Lookup(en, "k")
		p, ok := s.Placeholder("n")
		require.True(t, ok)
		assert.Equal(t, "n", p.Value())
	})

	t.Run("nested alternatives", func(t *testing.T) {
		c, err := catalog.Parse(en, "en.json", []byte(`{
			"k": {
				"translation": "base",
				"alternatives": [
					{ "a == 1": {
						"translation": "one",
						"alternatives": [ { "b == 2": "one and two" } ]
					} }
				]
			}
		}`))
		require.NoError(t, err)
		s, _ := c.Lookup(en, "k")
		inner := s.Alternative(0).Entry()
		require.Equal(t, 1, inner.NumAlternatives())
		assert.Equal(t, "one and two", inner.Alternative(0).Entry().Translation())
	})

	t.Run("same expression compiled once", func(t *testing.T) {
		c, err := catalog.Parse(en, "en.json", []byte(`{
			"a": { "translation": "a", "alternatives": [ { "n == 1": "x" } ] },
			"b": { "translation": "b", "alternatives": [ { "n == 1": "y" } ] }
		}`))
		require.NoError(t, err)
		a, _ := c.Lookup(en, "a")
		b, _ := c.Lookup(en, "b")
		assert.Same(t, a.Alternative(0).Expression(), b.Alternative(0).Expression())
	})
}

func TestParseErrors(t *testing.T) {
	en := locale.MustParse("en")

	tests := []struct {
		name   string
		input  string
		key    string
		target error
	}{
		{"malformed json", `{"a": `, "", catalog.ErrMalformedJSON},
		{"top-level array", `["a"]`, "", catalog.ErrInvalidEntry},
		{"number value", `{"a": 1}`, "a", catalog.ErrInvalidEntry},
		{"missing translation", `{"a": {"placeholders": {}}}`, "a", catalog.ErrNoTranslation},
		{"non-string translation", `{"a": {"translation": 5}}`, "a", catalog.ErrInvalidEntry},
		{"unknown field", `{"a": {"translation": "x", "translatoin": "y"}}`, "a", catalog.ErrInvalidEntry},
		{"unknown form", `{"a": {"translation": "x", "placeholders": {"p": {"translations": {"PLURAL_ONE": "x"}}}}}`, "a", catalog.ErrInvalidFormName},
		{"alternatives not array", `{"a": {"translation": "x", "alternatives": {}}}`, "a", catalog.ErrInvalidAlternative},
		{"alternative with two keys", `{"a": {"translation": "x", "alternatives": [{"n == 1": "a", "n == 2": "b"}]}}`, "a", catalog.ErrInvalidAlternative},
		{"bad expression", `{"a": {"translation": "x", "alternatives": [{"n = 1": "a"}]}}`, "a", expression.ErrEvaluation},
		{"nested missing translation", `{"a": {"translation": "x", "alternatives": [{"n == 1": {"placeholders": {}}}]}}`, "a", catalog.ErrNoTranslation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse(en, "/locales/en.json", []byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, catalog.ErrLoading)
			assert.ErrorIs(t, err, tt.target)

			var loadErr *catalog.LoadingError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, "/locales/en.json", loadErr.Path)
			assert.Equal(t, tt.key, loadErr.Key)
			assert.Contains(t, err.Error(), "/locales/en.json")
		})
	}

	t.Run("zero locale", func(t *testing.T) {
		_, err := catalog.Parse(locale.Locale{}, "x.json", []byte(`{}`))
		assert.ErrorIs(t, err, locale.ErrInvalidTag)
	})
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.json":    {Data: []byte(enJSON)},
		"locales/pt_BR.json": {Data: []byte(`{"greeting": "Olá, {{name}}!"}`)},
		"locales/README.md":  {Data: []byte("# docs")},
		"locales/notes.json": {Data: []byte(`not json`)},
		"locales/sub/de.json": {Data: []byte(`{"greeting": "Hallo"}`)},
	}

	t.Run("loads locale files and skips others", func(t *testing.T) {
		c, err := catalog.LoadFS(fsys, "locales")
		require.NoError(t, err)

		assert.Equal(t, []locale.Locale{locale.MustParse("en"), locale.MustParse("pt-BR")}, c.Locales())
		s, ok := c.Lookup(locale.MustParse("pt-BR"), "greeting")
		require.True(t, ok)
		assert.Equal(t, "Olá, {{name}}!", s.Translation())
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := catalog.LoadFS(fsys, "missing")
		assert.ErrorIs(t, err, catalog.ErrLoading)
	})

	t.Run("location is a file", func(t *testing.T) {
		_, err := catalog.LoadFS(fsys, "locales/en.json")
		assert.ErrorIs(t, err, catalog.ErrNotDirectory)
	})

	t.Run("duplicate locale", func(t *testing.T) {
		dup := fstest.MapFS{
			"l/pt-BR.json": {Data: []byte(`{}`)},
			"l/pt_BR.json": {Data: []byte(`{}`)},
		}
		_, err := catalog.LoadFS(dup, "l")
		assert.ErrorIs(t, err, catalog.ErrDuplicateLocale)
	})

	t.Run("malformed file fails the load", func(t *testing.T) {
		bad := fstest.MapFS{
			"l/en.json": {Data: []byte(`{"a": `)},
		}
		_, err := catalog.LoadFS(bad, "l")
		assert.ErrorIs(t, err, catalog.ErrMalformedJSON)
	})
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte(enJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr-FR.json"), []byte(`{"greeting": "Bonjour"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "messages.txt"), []byte("ignored"), 0o644))

	t.Run("loads directory", func(t *testing.T) {
		c, err := catalog.LoadDir(dir)
		require.NoError(t, err)
		assert.Len(t, c.Locales(), 2)
		assert.True(t, c.HasLocale(locale.MustParse("fr-FR")))
	})

	t.Run("error carries canonical path", func(t *testing.T) {
		bad := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(bad, "de.json"), []byte(`{"k": {}}`), 0o644))

		_, err := catalog.LoadDir(bad)
		var loadErr *catalog.LoadingError
		require.True(t, errors.As(err, &loadErr))
		assert.Equal(t, filepath.Join(bad, "de.json"), loadErr.Path)
		assert.Equal(t, "k", loadErr.Key)
		assert.ErrorIs(t, err, catalog.ErrNoTranslation)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := catalog.LoadDir(filepath.Join(dir, "nope"))
		assert.ErrorIs(t, err, catalog.ErrLoading)
	})

	t.Run("not a directory", func(t *testing.T) {
		_, err := catalog.LoadDir(filepath.Join(dir, "en.json"))
		assert.ErrorIs(t, err, catalog.ErrNotDirectory)
	})
}

func TestMerge(t *testing.T) {
	en := locale.MustParse("en")
	de := locale.MustParse("de")

	a := catalog.New(map[locale.Locale][]*catalog.LocalizedString{
		en: {
			catalog.NewLocalizedString("hello", "Hello", nil, nil),
			catalog.NewLocalizedString("bye", "Bye", nil, nil),
		},
	})
	b := catalog.New(map[locale.Locale][]*catalog.LocalizedString{
		en: {catalog.NewLocalizedString("hello", "Hi", nil, nil)},
		de: {catalog.NewLocalizedString("hello", "Hallo", nil, nil)},
	})

	merged := catalog.Merge(a, nil, b)
	assert.Equal(t, []locale.Locale{de, en}, merged.Locales())
	assert.Equal(t, 3, merged.Len())

	hello, _ := merged.Lookup(en, "hello")
	assert.Equal(t, "Hi", hello.Translation())
	bye, _ := merged.Lookup(en, "bye")
	assert.Equal(t, "Bye", bye.Translation())

	// Inputs are unchanged.
	orig, _ := a.Lookup(en, "hello")
	assert.Equal(t, "Hello", orig.Translation())
	assert.False(t, a.HasLocale(de))
}

func TestCheck(t *testing.T) {
	ja := locale.MustParse("ja")
	en := locale.MustParse("en")
	data := []byte(`{
		"k": {
			"translation": "{{n}}",
			"placeholders": {
				"n": { "translations": {
					"CARDINALITY_ONE": "one",
					"CARDINALITY_OTHER": "other",
					"ORDINALITY_TWO": "second",
					"FEMININE": "her"
				} }
			}
		}
	}`)

	jaCat, err := catalog.Parse(ja, "ja.json", data)
	require.NoError(t, err)
	enCat, err := catalog.Parse(en, "en.json", data)
	require.NoError(t, err)

	issues := catalog.Check(catalog.Merge(jaCat, enCat))
	assert.ElementsMatch(t, []catalog.Issue{
		{Locale: ja, Key: "k", Placeholder: "n", Form: form.CardinalOne},
		{Locale: ja, Key: "k", Placeholder: "n", Form: form.OrdinalTwo},
	}, issues)
}

func TestLocaleFromFileName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		ok       bool
	}{
		{"en.json", "en", true},
		{"locales/pt_BR.json", "pt-BR", true},
		{"zh-Hant-TW.JSON", "zh-Hant-TW", true},
		{"en.yaml", "", false},
		{"messages.json", "", false},
		{".json", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, ok := catalog.LocaleFromFileName(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, loc.String())
		})
	}
}
