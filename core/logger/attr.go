package logger

import (
	"fmt"
	"log/slog"
	"time"
)

// Attribute helpers return the empty Attr for zero inputs, so calls like
// log.Info("msg", logger.Error(err)) need no nil checks.

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Elapsed calculates the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Path creates an attribute for file or object paths.
func Path(path string) slog.Attr {
	if path == "" {
		return slog.Attr{}
	}
	return slog.String("path", path)
}

// Locale creates an attribute for a locale tag. Accepts any fmt.Stringer
// so locale values can be passed directly.
func Locale(loc fmt.Stringer) slog.Attr {
	if loc == nil {
		return slog.Attr{}
	}
	s := loc.String()
	if s == "" {
		return slog.Attr{}
	}
	return slog.String("locale", s)
}

// TranslationKey creates an attribute for a catalog key.
func TranslationKey(key string) slog.Attr {
	if key == "" {
		return slog.Attr{}
	}
	return slog.String("translation_key", key)
}

// Expression creates an attribute for an alternative's guard expression.
func Expression(src string) slog.Attr {
	if src == "" {
		return slog.Attr{}
	}
	return slog.String("expression", src)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Key creates a generic key-value attribute.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}
