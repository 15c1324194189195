package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrymomot/lingo/core/i18n"
	"github.com/dmitrymomot/lingo/core/locale"
)

// i18nTranslatorContextKey is used as a key for storing i18n translator in request context.
type i18nTranslatorContextKey struct{}

// I18nConfig configures the i18n middleware.
type I18nConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Provider resolves translations (required)
	Provider *i18n.Provider
	// LocaleExtractor returns the caller's preference as an Accept-Language
	// style list or a single tag. Default: query parameter, then cookie,
	// then the Accept-Language header entries.
	LocaleExtractor func(r *http.Request) string
	// QueryParam names the query parameter checked by the default extractor.
	// Default: "lang"
	QueryParam string
	// CookieName names the cookie checked by the default extractor.
	// Default: "lang"
	CookieName string
	// OmitContentLanguage disables the Content-Language response header.
	OmitContentLanguage bool
}

// I18n creates an i18n middleware with default configuration.
// It negotiates the request locale against the provider's supported
// locales and stores both the locale and a Translator in the request context.
func I18n(p *i18n.Provider) func(http.Handler) http.Handler {
	return I18nWithConfig(I18nConfig{Provider: p})
}

// I18nWithConfig creates an i18n middleware with custom configuration.
func I18nWithConfig(cfg I18nConfig) func(http.Handler) http.Handler {
	if cfg.Provider == nil {
		panic("i18n middleware: provider is required")
	}
	if cfg.QueryParam == "" {
		cfg.QueryParam = "lang"
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "lang"
	}
	if cfg.LocaleExtractor == nil {
		cfg.LocaleExtractor = defaultLocaleExtractor(cfg.QueryParam, cfg.CookieName)
	}

	matcher := cfg.Provider.Matcher()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			// Unparseable or unsupported preferences resolve to the default locale.
			loc := matcher.BestMatchString(cfg.LocaleExtractor(r))

			w.Header().Add("Vary", "Accept-Language")
			if !cfg.OmitContentLanguage {
				w.Header().Set("Content-Language", loc.String())
			}

			ctx := i18n.WithLocale(r.Context(), loc)
			ctx = context.WithValue(ctx, i18nTranslatorContextKey{}, cfg.Provider.Translator(loc))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// defaultLocaleExtractor builds a preference list: the query parameter and
// cookie (when they hold valid tags) ahead of the Accept-Language entries.
func defaultLocaleExtractor(param, cookie string) func(r *http.Request) string {
	return func(r *http.Request) string {
		var prefs []string
		if loc, err := locale.Parse(r.URL.Query().Get(param)); err == nil {
			prefs = append(prefs, loc.String())
		}
		if c, err := r.Cookie(cookie); err == nil {
			if loc, err := locale.Parse(c.Value); err == nil {
				prefs = append(prefs, loc.String())
			}
		}
		if h := r.Header.Get("Accept-Language"); h != "" {
			prefs = append(prefs, h)
		}
		return strings.Join(prefs, ", ")
	}
}

// GetTranslator retrieves the i18n translator from the context.
// Returns the translator and a boolean indicating whether it was found.
func GetTranslator(ctx context.Context) (*i18n.Translator, bool) {
	translator, ok := ctx.Value(i18nTranslatorContextKey{}).(*i18n.Translator)
	return translator, ok
}

// GetLocale returns the negotiated locale stored by the middleware.
func GetLocale(ctx context.Context) (locale.Locale, bool) {
	return i18n.LocaleFromContext(ctx)
}
