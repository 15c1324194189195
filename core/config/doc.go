// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file on first use (a missing file is fine) and
// uses caarlos0/env to parse environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/lingo/core/config"
//
//	type LocalesConfig struct {
//		Dir     string `env:"LOCALES_DIR" envDefault:"./locales"`
//		Default string `env:"DEFAULT_LOCALE" envDefault:"en"`
//	}
//
//	var cfg LocalesConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup
//	config.MustLoad(&cfg)
//
// # Caching Behavior
//
// The first successful load of a type wins; later calls for the same type
// return the cached value even if the environment has changed:
//
//	var a, b i18n.Config
//	config.Load(&a) // reads the environment
//	config.Load(&b) // cached, a == b
//
// Different types are cached independently.
package config
