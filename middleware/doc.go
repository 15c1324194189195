// Package middleware provides net/http middleware for localized handlers.
//
// I18n negotiates the request locale against the provider's supported
// locales. The preference list is built from the "lang" query parameter,
// the "lang" cookie and the Accept-Language header, in that order. The
// negotiated locale is stored with i18n.WithLocale, so Provider.GetContext
// works with the request context, and a Translator bound to it is available
// through GetTranslator:
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//		tr, _ := middleware.GetTranslator(r.Context())
//		fmt.Fprintln(w, tr.T("greeting", i18n.M{"name": "Ann"}))
//	})
//
//	http.ListenAndServe(":8080", middleware.I18n(provider)(mux))
//
// Responses carry Content-Language and "Vary: Accept-Language" headers.
// Use I18nWithConfig to skip paths, rename the query parameter or cookie,
// or supply a custom extractor.
package middleware
