package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrInvalidTag is returned when a string is not a recognized BCP 47 language tag.
var ErrInvalidTag = errors.New("invalid BCP 47 language tag")

// legacyLanguages maps withdrawn ISO 639 codes to their current values.
var legacyLanguages = map[string]string{
	"iw": "he",
	"ji": "yi",
	"in": "id",
	"jw": "jv",
	"mo": "ro",
	"sh": "sr",
	"tl": "fil",
	"no": "nb",
}

// CanonicalLanguage lowercases a language subtag and replaces legacy codes (iw, ji, in, ...).
func CanonicalLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if alias, ok := legacyLanguages[lang]; ok {
		return alias
	}
	return lang
}

// Locale is a BCP 47 language tag decomposed into its language, script, region and
// variant subtags. Extensions and private use subtags are dropped.
// Locale is comparable and safe to use as a map key; the zero value means "no locale".
type Locale struct {
	language string
	script   string
	region   string
	variant  string
}

// Parse parses and canonicalizes a BCP 47 tag such as "en", "en-GB", "zh-Hant-TW" or "sl-rozaj".
// Underscores are accepted as separators ("pt_BR").
func Parse(s string) (Locale, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Locale{}, fmt.Errorf("%w: empty tag", ErrInvalidTag)
	}

	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return Locale{}, fmt.Errorf("%w: %q: %v", ErrInvalidTag, raw, err)
	}

	l := fromCanonical(tag.String())
	if l.language == "" || l.language == "und" {
		return Locale{}, fmt.Errorf("%w: %q has no language", ErrInvalidTag, raw)
	}
	return l, nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(s string) Locale {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

// Make builds a locale from a language.Tag. It returns the zero Locale for und.
func Make(tag language.Tag) Locale {
	l := fromCanonical(tag.String())
	if l.language == "und" {
		return Locale{}
	}
	return l
}

// fromCanonical splits a canonical tag string into subtags.
func fromCanonical(s string) Locale {
	parts := strings.Split(s, "-")
	l := Locale{language: CanonicalLanguage(parts[0])}

	var variants []string
	for _, p := range parts[1:] {
		switch {
		case len(p) == 1:
			// singleton: extensions and private use follow
			l.variant = strings.Join(variants, "-")
			return l
		case l.script == "" && l.region == "" && len(variants) == 0 && len(p) == 4 && isAlpha(p):
			l.script = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
		case l.region == "" && len(variants) == 0 && ((len(p) == 2 && isAlpha(p)) || (len(p) == 3 && isNumeric(p))):
			l.region = strings.ToUpper(p)
		default:
			variants = append(variants, strings.ToLower(p))
		}
	}
	l.variant = strings.Join(variants, "-")
	return l
}

// Language returns the language subtag, for example "en".
func (l Locale) Language() string { return l.language }

// Script returns the script subtag, for example "Latn", or "".
func (l Locale) Script() string { return l.script }

// Region returns the region subtag, for example "GB", or "".
func (l Locale) Region() string { return l.region }

// Variant returns the variant subtags joined by "-", or "".
func (l Locale) Variant() string { return l.variant }

// IsZero reports whether l is the zero locale.
func (l Locale) IsZero() bool { return l.language == "" }

// LanguageOnly returns the locale reduced to its language subtag.
func (l Locale) LanguageOnly() Locale {
	return Locale{language: l.language}
}

// Parent returns the locale with its most specific subtag removed: variant first,
// then region, then script. The parent of a language-only locale is the zero Locale.
func (l Locale) Parent() Locale {
	switch {
	case l.variant != "":
		l.variant = ""
	case l.region != "":
		l.region = ""
	case l.script != "":
		l.script = ""
	default:
		return Locale{}
	}
	return l
}

// Fallbacks returns l followed by each successive parent, ending with the language-only locale.
func (l Locale) Fallbacks() []Locale {
	var chain []Locale
	for cur := l; !cur.IsZero(); cur = cur.Parent() {
		chain = append(chain, cur)
	}
	return chain
}

// Tag returns the x/text language tag for the locale.
func (l Locale) Tag() language.Tag {
	if l.IsZero() {
		return language.Und
	}
	return language.Make(l.String())
}

// String returns the BCP 47 form, for example "zh-Hant-TW".
func (l Locale) String() string {
	if l.IsZero() {
		return ""
	}
	parts := []string{l.language}
	for _, p := range []string{l.script, l.region, l.variant} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-")
}

// MarshalText implements encoding.TextMarshaler.
func (l Locale) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so locales can be read from env config.
func (l *Locale) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
