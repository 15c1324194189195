// Package catalog holds localized strings and loads them from locale files.
//
// A catalog directory contains one JSON file per locale, named by its
// BCP 47 tag ("en.json", "pt-BR.json"). Each file is an object mapping keys
// to either a plain template or a rich entry:
//
//	{
//		"greeting": "Hello, {{name}}!",
//		"books": {
//			"translation": "You have {{count}} {{books}}.",
//			"placeholders": {
//				"books": {
//					"value": "count",
//					"translations": {
//						"CARDINALITY_ONE": "book",
//						"CARDINALITY_OTHER": "books"
//					}
//				}
//			},
//			"alternatives": [
//				{ "count == 0": "You have no books." }
//			]
//		}
//	}
//
// Alternatives keep file order and are decoded recursively; each inherits
// the placeholders of the entry that declares it. Every distinct guard
// expression is compiled once per load.
//
// Loading from disk or from an embedded filesystem:
//
//	c, err := catalog.LoadDir("./locales", catalog.WithLogger(log))
//
//	//go:embed locales/*.json
//	var files embed.FS
//	c, err := catalog.LoadFS(files, "locales")
//
// Files whose name is not a locale tag are skipped and logged at debug
// level. Any other problem fails the load with a *LoadingError carrying the
// file path and, when known, the entry key.
//
// A Catalog is immutable. Merge builds a new catalog from several sources
// with later sources winning per key.
package catalog
