package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/core/locale"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		lang     string
		script   string
		region   string
		variant  string
	}{
		{"en", "en", "en", "", "", ""},
		{"en-gb", "en-GB", "en", "", "GB", ""},
		{"pt_BR", "pt-BR", "pt", "", "BR", ""},
		{"zh-Hant-TW", "zh-Hant-TW", "zh", "Hant", "TW", ""},
		{"sr-Latn", "sr-Latn", "sr", "Latn", "", ""},
		{"es-419", "es-419", "es", "", "419", ""},
		{"de-CH-1996", "de-CH-1996", "de", "", "CH", "1996"},
		{"en-US-u-ca-gregory", "en-US", "en", "", "US", ""},
		{"iw", "he", "he", "", "", ""},
		{"in-ID", "id-ID", "id", "", "ID", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l, err := locale.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, l.String())
			assert.Equal(t, tt.lang, l.Language())
			assert.Equal(t, tt.script, l.Script())
			assert.Equal(t, tt.region, l.Region())
			assert.Equal(t, tt.variant, l.Variant())
		})
	}

	t.Run("rejects invalid tags", func(t *testing.T) {
		for _, input := range []string{"", "messages", "en--", "und", "12"} {
			_, err := locale.Parse(input)
			assert.ErrorIs(t, err, locale.ErrInvalidTag, "input %q", input)
		}
	})
}

func TestLocaleEquality(t *testing.T) {
	assert.Equal(t, locale.MustParse("en-gb"), locale.MustParse("EN_GB"))
	assert.NotEqual(t, locale.MustParse("en-GB"), locale.MustParse("en"))
	assert.Equal(t, locale.MustParse("en"), locale.MustParse("en-GB").LanguageOnly())

	set := map[locale.Locale]bool{locale.MustParse("fr-CA"): true}
	assert.True(t, set[locale.MustParse("fr-ca")])
}

func TestFallbacks(t *testing.T) {
	chain := locale.MustParse("zh-Hant-TW").Fallbacks()
	require.Len(t, chain, 3)
	assert.Equal(t, "zh-Hant-TW", chain[0].String())
	assert.Equal(t, "zh-Hant", chain[1].String())
	assert.Equal(t, "zh", chain[2].String())

	assert.True(t, locale.MustParse("en").Parent().IsZero())
}

func TestTag(t *testing.T) {
	assert.Equal(t, "en-GB", locale.MustParse("en-GB").Tag().String())
	assert.Equal(t, "und", locale.Locale{}.Tag().String())
}

func TestUnmarshalText(t *testing.T) {
	var l locale.Locale
	require.NoError(t, l.UnmarshalText([]byte("pl-PL")))
	assert.Equal(t, "pl-PL", l.String())
	assert.Error(t, l.UnmarshalText([]byte("not a tag")))
}
