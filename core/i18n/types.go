package i18n

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrymomot/lingo/core/locale"
)

// M is a placeholder map passed to translation calls.
type M map[string]any

// FailureMode decides what happens when a translation cannot be found.
type FailureMode int

const (
	// UseFallback degrades gracefully: the default locale's entry is tried and,
	// failing that, the key itself is returned.
	UseFallback FailureMode = iota
	// FailFast returns a *MissingTranslationError immediately.
	FailFast
)

func (m FailureMode) String() string {
	switch m {
	case UseFallback:
		return "fallback"
	case FailFast:
		return "fail_fast"
	default:
		return fmt.Sprintf("FailureMode(%d)", int(m))
	}
}

// ParseFailureMode parses "fallback" or "fail_fast" (case-insensitive;
// "use_fallback" and "failfast" are accepted too).
func ParseFailureMode(s string) (FailureMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fallback", "use_fallback":
		return UseFallback, nil
	case "fail_fast", "failfast", "strict":
		return FailFast, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFailureMode, s)
	}
}

// LocaleSupplier reports the locale of the current caller, if known.
// It is consulted by the calls that take no explicit locale.
type LocaleSupplier func() (locale.Locale, bool)

type localeContextKey struct{}

// WithLocale stores a locale in the context for GetContext.
func WithLocale(ctx context.Context, loc locale.Locale) context.Context {
	return context.WithValue(ctx, localeContextKey{}, loc)
}

// LocaleFromContext returns the locale stored by WithLocale.
func LocaleFromContext(ctx context.Context) (locale.Locale, bool) {
	loc, ok := ctx.Value(localeContextKey{}).(locale.Locale)
	if !ok || loc.IsZero() {
		return locale.Locale{}, false
	}
	return loc, true
}
