package catalog

import (
	"errors"
	"strings"
)

// Error variables describe loading failures. They are wrapped in a *LoadingError.
var (
	// ErrLoading is matched by every LoadingError.
	ErrLoading = errors.New("failed to load localized strings")

	// ErrNotDirectory indicates the catalog location exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrMalformedJSON indicates a locale file is not valid JSON.
	ErrMalformedJSON = errors.New("malformed JSON")

	// ErrInvalidEntry indicates a value that does not follow the file schema.
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrNoTranslation indicates a rich entry without a "translation" field.
	ErrNoTranslation = errors.New("entry has no translation")

	// ErrDuplicateLocale indicates two files resolve to the same locale tag
	// (for example "pt_BR.json" and "pt-BR.json").
	ErrDuplicateLocale = errors.New("locale defined by more than one file")

	// ErrInvalidFormName indicates a placeholder translation keyed by an unknown form.
	ErrInvalidFormName = errors.New("unknown grammatical form")

	// ErrInvalidAlternative indicates an alternatives element that is not a
	// single-key object.
	ErrInvalidAlternative = errors.New("invalid alternative")
)

// LoadingError reports a failure to read or decode a locale file.
// Path is the canonical file path; Key is set when the failure is tied to an entry.
type LoadingError struct {
	Path string
	Key  string
	Err  error
}

func (e *LoadingError) Error() string {
	var b strings.Builder
	b.WriteString("catalog: ")
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	if e.Key != "" {
		b.WriteString("key \"")
		b.WriteString(e.Key)
		b.WriteString("\": ")
	}
	if e.Err != nil {
		b.WriteString(e.Err.Error())
	} else {
		b.WriteString(ErrLoading.Error())
	}
	return b.String()
}

func (e *LoadingError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrLoading) match.
func (e *LoadingError) Is(target error) bool {
	return target == ErrLoading
}
