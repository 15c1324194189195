package i18n

// Config holds provider settings read from the environment with config.Load.
type Config struct {
	DefaultLocale string `env:"I18N_DEFAULT_LOCALE" envDefault:"en"`
	FailureMode   string `env:"I18N_FAILURE_MODE" envDefault:"fallback"`
	CatalogDir    string `env:"I18N_CATALOG_DIR" envDefault:"./locales"`
}

// WithConfig applies the default locale and failure mode from cfg.
func WithConfig(cfg Config) Option {
	return func(p *Provider) error {
		if cfg.DefaultLocale != "" {
			if err := WithDefaultLanguage(cfg.DefaultLocale)(p); err != nil {
				return err
			}
		}
		mode, err := ParseFailureMode(cfg.FailureMode)
		if err != nil {
			return err
		}
		p.mode = mode
		return nil
	}
}
