// Package logger provides structured logging built on log/slog: a logger
// factory configured with functional options and attribute helpers for the
// values this module logs (locales, catalog keys, paths, expressions).
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithDevelopment("lingo"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Warn("translation missing",
//		logger.Locale(loc),
//		logger.TranslationKey("cart.title"),
//	)
//
// Production setups usually switch to JSON:
//
//	log := logger.New(logger.WithProduction("lingo"))
//
// Libraries in this module default to Discard so they stay silent until a
// logger is supplied.
//
// # Attribute Helpers
//
// Helpers return the empty slog.Attr for zero input, which slog drops:
//
//	log.Error("load failed", logger.Error(err), logger.Path(path))
//
// # Testing
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
package logger
