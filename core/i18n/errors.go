package i18n

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/lingo/core/locale"
)

// Error variables. Typed errors below match them through errors.Is.
var (
	// ErrMissingTranslation indicates a key has no translation for the locale.
	ErrMissingTranslation = errors.New("missing translation")

	// ErrUnsupportedLocale indicates a locale outside the provider's supported set.
	ErrUnsupportedLocale = errors.New("unsupported locale")

	// ErrInvalidFailureMode indicates an unknown failure mode name.
	ErrInvalidFailureMode = errors.New("invalid failure mode")

	// ErrNilCatalog indicates a provider was built without a catalog.
	ErrNilCatalog = errors.New("catalog is required")
)

// MissingTranslationError is returned under FailFast when a key cannot be
// resolved. Err holds the underlying cause, such as *UnsupportedLocaleError.
type MissingTranslationError struct {
	Key          string
	Locale       locale.Locale
	Placeholders M
	Err          error
}

func (e *MissingTranslationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "i18n: missing translation for key %q in locale %q", e.Key, e.Locale)
	if len(e.Placeholders) > 0 {
		names := slices.Sorted(maps.Keys(e.Placeholders))
		b.WriteString(" (placeholders: ")
		b.WriteString(strings.Join(names, ", "))
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *MissingTranslationError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrMissingTranslation) match.
func (e *MissingTranslationError) Is(target error) bool {
	return target == ErrMissingTranslation
}

// UnsupportedLocaleError reports a locale that is not in the supported set.
type UnsupportedLocaleError struct {
	Locale    locale.Locale
	Supported []locale.Locale
}

func (e *UnsupportedLocaleError) Error() string {
	tags := make([]string, len(e.Supported))
	for i, l := range e.Supported {
		tags[i] = l.String()
	}
	return fmt.Sprintf("i18n: locale %q is not supported (supported: %s)", e.Locale, strings.Join(tags, ", "))
}

// Is makes errors.Is(err, ErrUnsupportedLocale) match.
func (e *UnsupportedLocaleError) Is(target error) bool {
	return target == ErrUnsupportedLocale
}
