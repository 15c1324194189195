package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/lingo/core/catalog"
	"github.com/dmitrymomot/lingo/core/expression"
	"github.com/dmitrymomot/lingo/core/locale"
	"github.com/dmitrymomot/lingo/core/logger"
)

// DefaultLocale is the fallback locale tag used when none is configured.
const DefaultLocale = "en"

// Provider resolves catalog keys into localized text.
// It is immutable after creation and safe for concurrent use.
type Provider struct {
	catalog *catalog.Catalog
	matcher *locale.Matcher

	// Default/fallback locale
	defaultLocale locale.Locale

	// Locale of the current caller for calls without an explicit locale
	supplier LocaleSupplier

	mode FailureMode
	log  *slog.Logger

	// Optional handler called when a key cannot be resolved in any locale
	missingKeyHandler func(loc locale.Locale, key string)
}

// Option configures the Provider during construction.
type Option func(*Provider) error

// New creates a Provider over a loaded catalog.
// The supported locales are the catalog's locales plus the default locale.
func New(c *catalog.Catalog, opts ...Option) (*Provider, error) {
	p, err := configure(opts)
	if err != nil {
		return nil, err
	}
	return p.finish(c)
}

// Load reads the catalog directory named by cfg and creates a Provider.
// Options are applied after cfg, so they take precedence.
func Load(cfg Config, opts ...Option) (*Provider, error) {
	p, err := configure(append([]Option{WithConfig(cfg)}, opts...))
	if err != nil {
		return nil, err
	}
	c, err := catalog.LoadDir(cfg.CatalogDir, catalog.WithLogger(p.log))
	if err != nil {
		return nil, err
	}
	return p.finish(c)
}

func configure(opts []Option) (*Provider, error) {
	p := &Provider{
		defaultLocale: locale.MustParse(DefaultLocale),
		mode:          UseFallback,
		log:           logger.Discard(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return p, nil
}

func (p *Provider) finish(c *catalog.Catalog) (*Provider, error) {
	if c == nil {
		return nil, ErrNilCatalog
	}
	p.catalog = c
	p.matcher = locale.NewMatcher(p.defaultLocale, append(c.Locales(), p.defaultLocale)...)
	if !c.HasLocale(p.defaultLocale) {
		p.log.Warn("default locale has no catalog entries",
			logger.Component("i18n"),
			logger.Locale(p.defaultLocale),
		)
	}
	return p, nil
}

// WithDefaultLocale sets the default/fallback locale.
func WithDefaultLocale(loc locale.Locale) Option {
	return func(p *Provider) error {
		if loc.IsZero() {
			return errors.New("default locale cannot be empty")
		}
		p.defaultLocale = loc
		return nil
	}
}

// WithDefaultLanguage sets the default locale from a BCP 47 tag.
func WithDefaultLanguage(tag string) Option {
	return func(p *Provider) error {
		loc, err := locale.Parse(tag)
		if err != nil {
			return err
		}
		p.defaultLocale = loc
		return nil
	}
}

// WithLocaleSupplier sets the function consulted by Get and
// GetWithPlaceholders. When it reports nothing the default locale is used.
func WithLocaleSupplier(fn LocaleSupplier) Option {
	return func(p *Provider) error {
		p.supplier = fn
		return nil
	}
}

// WithFailureMode sets how missing translations are handled.
func WithFailureMode(mode FailureMode) Option {
	return func(p *Provider) error {
		if mode != UseFallback && mode != FailFast {
			return fmt.Errorf("%w: %d", ErrInvalidFailureMode, int(mode))
		}
		p.mode = mode
		return nil
	}
}

// WithLogger sets the logger. Missing keys are logged at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) error {
		if l == nil {
			return errors.New("logger cannot be nil")
		}
		p.log = l
		return nil
	}
}

// WithMissingKeyHandler sets a handler called when a key is not found in
// the requested locale nor in the default locale. It runs in both failure
// modes and is useful for collecting missing translations during development.
func WithMissingKeyHandler(handler func(loc locale.Locale, key string)) Option {
	return func(p *Provider) error {
		p.missingKeyHandler = handler
		return nil
	}
}

// DefaultLocale returns the default/fallback locale.
func (p *Provider) DefaultLocale() locale.Locale { return p.defaultLocale }

// SupportedLocales returns the supported locales ordered by tag.
func (p *Provider) SupportedLocales() []locale.Locale { return p.matcher.Supported() }

// Matcher returns the locale matcher over the supported set.
func (p *Provider) Matcher() *locale.Matcher { return p.matcher }

// Catalog returns the underlying catalog.
func (p *Provider) Catalog() *catalog.Catalog { return p.catalog }

// FailureMode returns the configured failure mode.
func (p *Provider) FailureMode() FailureMode { return p.mode }

// Get resolves a key for the supplied locale.
func (p *Provider) Get(key string) (string, error) {
	return p.resolve(p.currentLocale(), key, nil)
}

// GetWithPlaceholders resolves a key for the supplied locale with placeholder values.
func (p *Provider) GetWithPlaceholders(key string, placeholders M) (string, error) {
	return p.resolve(p.currentLocale(), key, placeholders)
}

// GetLocale resolves a key for an explicit locale.
func (p *Provider) GetLocale(key string, loc locale.Locale) (string, error) {
	return p.resolve(loc, key, nil)
}

// GetLocaleWithPlaceholders resolves a key for an explicit locale with placeholder values.
func (p *Provider) GetLocaleWithPlaceholders(key string, loc locale.Locale, placeholders M) (string, error) {
	return p.resolve(loc, key, placeholders)
}

// GetContext resolves a key for the locale stored in ctx by WithLocale,
// falling back to the supplier and then the default locale.
func (p *Provider) GetContext(ctx context.Context, key string, placeholders M) (string, error) {
	if loc, ok := LocaleFromContext(ctx); ok {
		return p.resolve(loc, key, placeholders)
	}
	return p.resolve(p.currentLocale(), key, placeholders)
}

// T resolves a key and never fails: errors are logged and the key is returned.
// Intended for templates.
func (p *Provider) T(loc locale.Locale, key string, placeholders ...M) string {
	s, err := p.resolve(loc, key, merge(placeholders))
	if err != nil {
		attrs := []any{
			logger.Component("i18n"),
			logger.Locale(loc),
			logger.TranslationKey(key),
			logger.Error(err),
		}
		var evalErr *expression.EvaluationError
		if errors.As(err, &evalErr) {
			attrs = append(attrs, logger.Expression(evalErr.Expression))
		}
		p.log.Error("translation failed", attrs...)
		return key
	}
	return s
}

// Translator returns a Translator bound to loc.
func (p *Provider) Translator(loc locale.Locale) *Translator {
	return NewTranslator(p, loc)
}

func (p *Provider) currentLocale() locale.Locale {
	if p.supplier != nil {
		if loc, ok := p.supplier(); ok && !loc.IsZero() {
			return loc
		}
	}
	return p.defaultLocale
}
