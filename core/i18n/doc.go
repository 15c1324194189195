// Package i18n resolves catalog keys into localized text.
//
// A Provider is built once over an immutable catalog and is safe for
// concurrent use. Every call runs the same pipeline: resolve the locale,
// look up the key, select the first alternative whose guard expression
// holds, and substitute {{name}} placeholders.
//
// # Basic Usage
//
//	c, err := catalog.LoadDir("./locales")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	p, err := i18n.New(c,
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithFailureMode(i18n.UseFallback),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	msg, err := p.GetLocaleWithPlaceholders("books", locale.MustParse("pl"), i18n.M{"count": 3})
//
// Or straight from the environment (I18N_DEFAULT_LOCALE, I18N_FAILURE_MODE,
// I18N_CATALOG_DIR):
//
//	var cfg i18n.Config
//	config.MustLoad(&cfg)
//	p, err := i18n.Load(cfg, i18n.WithLogger(log))
//
// # Placeholders
//
// Placeholder values may be integers, floats, decimal strings, plural.Number,
// grammatical forms such as form.Feminine, or anything printable. Numeric
// values are classified with the locale's plural rules, so both templates
// and guards can use categories:
//
//	"books": {
//		"translation": "{{count}} {{books}}",
//		"placeholders": {
//			"books": {
//				"value": "count",
//				"translations": {
//					"CARDINALITY_ONE": "książka",
//					"CARDINALITY_FEW": "książki",
//					"CARDINALITY_MANY": "książek"
//				}
//			}
//		},
//		"alternatives": [ { "count == 0": "Brak książek" } ]
//	}
//
// A sub-translation is chosen by the value's form, then its cardinal and
// ordinal category, then CARDINALITY_OTHER and ORDINALITY_OTHER, and finally
// the raw value is used. Tokens without a supplied value are left as is.
//
// # Locale Selection
//
// Get and GetWithPlaceholders ask the LocaleSupplier configured with
// WithLocaleSupplier and fall back to the default locale. GetContext reads
// the locale stored by WithLocale, which the HTTP middleware sets from
// Accept-Language. GetLocale takes the locale explicitly.
//
// # Failure Modes
//
// UseFallback never fails on a missing key: the best supported match for
// the requested locale is tried, then its parents, then the default locale,
// and finally the key itself is returned. FailFast returns a
// *MissingTranslationError as soon as the key is absent from the requested
// locale, wrapping *UnsupportedLocaleError when the locale is not supported:
//
//	_, err := p.GetLocale("checkout.title", loc)
//	if errors.Is(err, i18n.ErrMissingTranslation) {
//		// ...
//	}
//
// Errors from guard expressions are catalog bugs and are returned in both
// modes; they match expression.ErrEvaluation.
//
// # Translator
//
// A Translator binds a locale for template-friendly calls that never fail:
//
//	t := p.Translator(locale.MustParse("de"))
//	t.T("greeting", i18n.M{"name": "Anna"})
package i18n
