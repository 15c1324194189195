package catalog

import (
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/lingo/core/expression"
	"github.com/dmitrymomot/lingo/core/locale"
	"github.com/dmitrymomot/lingo/core/logger"
)

// FileExt is the extension of locale files.
const FileExt = ".json"

type loader struct {
	log   *slog.Logger
	root  string // prefix for error paths
	exprs map[string]*expression.Expression
}

// Option configures loading.
type Option func(*loader)

// WithLogger sets the logger used to report skipped files and unreachable
// sub-translations. Loading is silent by default.
func WithLogger(l *slog.Logger) Option {
	return func(ld *loader) {
		if l != nil {
			ld.log = l
		}
	}
}

func newLoader(opts []Option) *loader {
	ld := &loader{
		log:   logger.Discard(),
		exprs: make(map[string]*expression.Expression),
	}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// LoadDir loads every "<tag>.json" file in dir. Files whose name is not a
// BCP 47 tag are skipped. A missing or unreadable directory, or any
// malformed file, fails the whole load.
func LoadDir(dir string, opts ...Option) (*Catalog, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, &LoadingError{Path: dir, Err: err}
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, &LoadingError{Path: abs, Err: err}
	}
	if !info.IsDir() {
		return nil, &LoadingError{Path: abs, Err: ErrNotDirectory}
	}

	ld := newLoader(opts)
	ld.root = abs
	return ld.load(os.DirFS(abs), ".")
}

// LoadFS loads locale files from dir inside fsys, typically an embed.FS
// bundled with the application.
func LoadFS(fsys fs.FS, dir string, opts ...Option) (*Catalog, error) {
	ld := newLoader(opts)
	return ld.load(fsys, dir)
}

func (ld *loader) displayPath(name string) string {
	if ld.root == "" {
		return name
	}
	return filepath.Join(ld.root, filepath.FromSlash(name))
}

func (ld *loader) load(fsys fs.FS, dir string) (*Catalog, error) {
	dir = path.Clean(dir)
	info, err := fs.Stat(fsys, dir)
	if err != nil {
		return nil, &LoadingError{Path: ld.displayPath(dir), Err: err}
	}
	if !info.IsDir() {
		return nil, &LoadingError{Path: ld.displayPath(dir), Err: ErrNotDirectory}
	}

	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, &LoadingError{Path: ld.displayPath(dir), Err: err}
	}

	entries := make(map[locale.Locale][]*LocalizedString)
	sources := make(map[locale.Locale]string)
	for _, f := range files {
		name := path.Join(dir, f.Name())
		if f.IsDir() {
			continue
		}

		loc, ok := LocaleFromFileName(f.Name())
		if !ok {
			ld.log.Debug("skipping file without locale name",
				logger.Component("catalog"),
				logger.Path(ld.displayPath(name)),
			)
			continue
		}
		if prev, dup := sources[loc]; dup {
			return nil, &LoadingError{
				Path: ld.displayPath(name),
				Err:  &duplicateError{locale: loc, other: prev},
			}
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, &LoadingError{Path: ld.displayPath(name), Err: err}
		}
		list, err := newDecoder(ld.displayPath(name), ld.exprs).decode(data)
		if err != nil {
			return nil, err
		}

		entries[loc] = list
		sources[loc] = ld.displayPath(name)
		ld.log.Debug("loaded locale file",
			logger.Component("catalog"),
			logger.Locale(loc),
			logger.Path(ld.displayPath(name)),
			logger.Count("entries", len(list)),
		)
	}

	c := New(entries)
	Report(c, ld.log)
	return c, nil
}

// LocaleFromFileName derives the locale from a locale file name such as
// "pt-BR.json". It reports false for other extensions and non-tag names.
func LocaleFromFileName(name string) (locale.Locale, bool) {
	name = path.Base(name)
	if !strings.EqualFold(path.Ext(name), FileExt) {
		return locale.Locale{}, false
	}
	loc, err := locale.Parse(strings.TrimSuffix(name, path.Ext(name)))
	if err != nil {
		return locale.Locale{}, false
	}
	return loc, true
}

// Report logs the issues found by Check at warn level.
func Report(c *Catalog, log *slog.Logger) {
	if log == nil {
		return
	}
	for _, issue := range Check(c) {
		log.Warn("unreachable placeholder translation",
			logger.Component("catalog"),
			logger.Locale(issue.Locale),
			logger.TranslationKey(issue.Key),
			logger.Key("placeholder", issue.Placeholder),
			logger.Key("form", issue.Form.Name()),
		)
	}
}

type duplicateError struct {
	locale locale.Locale
	other  string
}

func (e *duplicateError) Error() string {
	return ErrDuplicateLocale.Error() + ": " + e.locale.String() + " already loaded from " + e.other
}

func (e *duplicateError) Unwrap() error { return ErrDuplicateLocale }
