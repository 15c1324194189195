package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/core/catalog"
	"github.com/dmitrymomot/lingo/core/i18n"
	"github.com/dmitrymomot/lingo/middleware"
)

func newProvider(t *testing.T) *i18n.Provider {
	t.Helper()

	fsys := fstest.MapFS{
		"locales/en.json":    {Data: []byte(`{"greeting": "Hello, {{name}}!"}`)},
		"locales/pl.json":    {Data: []byte(`{"greeting": "Cześć, {{name}}!"}`)},
		"locales/pt-BR.json": {Data: []byte(`{"greeting": "Olá, {{name}}!"}`)},
	}
	c, err := catalog.LoadFS(fsys, "locales")
	require.NoError(t, err)

	p, err := i18n.New(c, i18n.WithDefaultLanguage("en"))
	require.NoError(t, err)
	return p
}

func TestI18nNegotiation(t *testing.T) {
	t.Parallel()

	p := newProvider(t)

	tests := []struct {
		name     string
		target   string
		header   string
		cookie   string
		expected string
		text     string
	}{
		{name: "no preference", target: "/", expected: "en", text: "Hello, Ann!"},
		{name: "accept language", target: "/", header: "pl-PL,pl;q=0.9,en;q=0.5", expected: "pl", text: "Cześć, Ann!"},
		{name: "quality order", target: "/", header: "de;q=0.9, pt-BR;q=0.8, pl;q=0.7", expected: "pt-BR", text: "Olá, Ann!"},
		{name: "unsupported", target: "/", header: "de, fr", expected: "en", text: "Hello, Ann!"},
		{name: "query wins", target: "/?lang=pt_BR", header: "pl", expected: "pt-BR", text: "Olá, Ann!"},
		{name: "unsupported query falls through", target: "/?lang=de", header: "pl", expected: "pl", text: "Cześć, Ann!"},
		{name: "invalid query ignored", target: "/?lang=%21%21", header: "pl", expected: "pl", text: "Cześć, Ann!"},
		{name: "cookie", target: "/", cookie: "pl", header: "pt-BR", expected: "pl", text: "Cześć, Ann!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				gotLocale string
				gotText   string
			)
			h := middleware.I18n(p)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				loc, ok := middleware.GetLocale(r.Context())
				require.True(t, ok)
				gotLocale = loc.String()

				tr, ok := middleware.GetTranslator(r.Context())
				require.True(t, ok)
				assert.Equal(t, loc, tr.Locale())
				gotText = tr.T("greeting", i18n.M{"name": "Ann"})

				ctxText, err := p.GetContext(r.Context(), "greeting", i18n.M{"name": "Ann"})
				require.NoError(t, err)
				assert.Equal(t, gotText, ctxText)
			}))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "lang", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, gotLocale)
			assert.Equal(t, tt.text, gotText)
			assert.Equal(t, tt.expected, w.Header().Get("Content-Language"))
			assert.Equal(t, "Accept-Language", w.Header().Get("Vary"))
		})
	}
}

func TestI18nWithConfig(t *testing.T) {
	t.Parallel()

	p := newProvider(t)

	t.Run("skip", func(t *testing.T) {
		h := middleware.I18nWithConfig(middleware.I18nConfig{
			Provider: p,
			Skip:     func(r *http.Request) bool { return r.URL.Path == "/health" },
		})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := middleware.GetTranslator(r.Context())
			assert.False(t, ok)
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Empty(t, w.Header().Get("Content-Language"))
	})

	t.Run("custom extractor", func(t *testing.T) {
		var got string
		h := middleware.I18nWithConfig(middleware.I18nConfig{
			Provider:            p,
			OmitContentLanguage: true,
			LocaleExtractor: func(r *http.Request) string {
				return r.Header.Get("X-Locale")
			},
		})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loc, _ := middleware.GetLocale(r.Context())
			got = loc.String()
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Locale", "pl")
		req.Header.Set("Accept-Language", "pt-BR")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, "pl", got)
		assert.Empty(t, w.Header().Get("Content-Language"))
	})

	t.Run("custom query and cookie names", func(t *testing.T) {
		var got string
		h := middleware.I18nWithConfig(middleware.I18nConfig{
			Provider:   p,
			QueryParam: "locale",
			CookieName: "site_locale",
		})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loc, _ := middleware.GetLocale(r.Context())
			got = loc.String()
		}))

		req := httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil)
		req.AddCookie(&http.Cookie{Name: "site_locale", Value: "pl"})
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "pl", got)
	})

	t.Run("requires provider", func(t *testing.T) {
		assert.Panics(t, func() {
			middleware.I18nWithConfig(middleware.I18nConfig{})
		})
	})
}

func TestGetTranslatorMissing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := middleware.GetTranslator(req.Context())
	assert.False(t, ok)
	_, ok = middleware.GetLocale(req.Context())
	assert.False(t, ok)
}
