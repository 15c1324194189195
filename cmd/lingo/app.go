package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/dmitrymomot/lingo/core/catalog"
	"github.com/dmitrymomot/lingo/core/config"
	"github.com/dmitrymomot/lingo/core/form"
	"github.com/dmitrymomot/lingo/core/i18n"
	"github.com/dmitrymomot/lingo/core/locale"
	"github.com/dmitrymomot/lingo/core/logger"
	"github.com/dmitrymomot/lingo/integration/storage/s3"
)

// Exit codes.
const (
	exitOK     = 0
	exitError  = 1
	exitIssues = 2
)

var (
	errIssues      = errors.New("catalog has unreachable translations")
	errPlaceholder = errors.New("placeholder must be name=value")
)

type globalOptions struct {
	Verbose bool `short:"v" long:"verbose" description:"Log debug output"`
	JSONLog bool `long:"json-log" description:"Log in JSON format"`
}

type sourceOptions struct {
	Dirs []string `short:"d" long:"dir" value-name:"DIR" description:"Catalog directory; repeat to merge several, later ones win (default: $I18N_CATALOG_DIR)"`
	S3   bool     `long:"s3" description:"Load the catalog from S3 using the I18N_S3_* variables"`
}

type app struct {
	ctx    context.Context
	stdout io.Writer
	stderr io.Writer
	opts   globalOptions
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{ctx: ctx, stdout: stdout, stderr: stderr}
	parser := a.parser()

	_, err := parser.ParseArgs(args)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errIssues):
		return exitIssues
	}

	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
		fmt.Fprintln(stdout, flagsErr.Message)
		return exitOK
	}
	fmt.Fprintln(stderr, "lingo:", err)
	return exitError
}

func (a *app) parser() *flags.Parser {
	p := flags.NewParser(&a.opts, flags.HelpFlag|flags.PassDoubleDash)
	p.Name = "lingo"

	mustAdd := func(name, short, long string, cmd any) {
		if _, err := p.AddCommand(name, short, long, cmd); err != nil {
			panic(err)
		}
	}
	mustAdd("check", "Validate a catalog",
		"Loads every locale file, compiling all alternative expressions, and reports placeholder translations a locale can never select.",
		&checkCommand{app: a})
	mustAdd("locales", "List catalog locales", "Prints each locale with its number of entries.",
		&localesCommand{app: a})
	mustAdd("get", "Resolve a key",
		"Resolves KEY for a locale. Placeholders are given as name=value; values naming a form such as FEMININE bind that form.",
		&getCommand{app: a})
	return p
}

func (a *app) logger() *slog.Logger {
	opts := []logger.Option{logger.WithOutput(a.stderr), logger.WithLevel(slog.LevelWarn)}
	if a.opts.Verbose {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}
	if a.opts.JSONLog {
		opts = append(opts, logger.WithJSONFormatter())
	}
	return logger.New(opts...)
}

func (a *app) loadCatalog(src sourceOptions, log *slog.Logger) (*catalog.Catalog, error) {
	if src.S3 {
		var cfg s3.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		source, err := s3.New(a.ctx, cfg, s3.WithLogger(log))
		if err != nil {
			return nil, err
		}
		return source.Load(a.ctx)
	}

	dirs := src.Dirs
	if len(dirs) == 0 {
		var cfg i18n.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		dirs = []string{cfg.CatalogDir}
	}

	parts := make([]*catalog.Catalog, 0, len(dirs))
	for _, dir := range dirs {
		c, err := catalog.LoadDir(dir, catalog.WithLogger(log))
		if err != nil {
			return nil, err
		}
		parts = append(parts, c)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return catalog.Merge(parts...), nil
}

type checkCommand struct {
	sourceOptions
	Strict bool `long:"strict" description:"Exit with status 2 when unreachable translations are found"`

	app *app
}

func (c *checkCommand) Execute([]string) error {
	cat, err := c.app.loadCatalog(c.sourceOptions, c.app.logger())
	if err != nil {
		return err
	}

	issues := catalog.Check(cat)
	for _, issue := range issues {
		fmt.Fprintf(c.app.stdout, "%s: key %q: placeholder %q: %s is never selected\n",
			issue.Locale, issue.Key, issue.Placeholder, issue.Form.Name())
	}
	fmt.Fprintf(c.app.stdout, "%d locales, %d entries, %d issues\n", len(cat.Locales()), cat.Len(), len(issues))

	if c.Strict && len(issues) > 0 {
		return errIssues
	}
	return nil
}

type localesCommand struct {
	sourceOptions

	app *app
}

func (c *localesCommand) Execute([]string) error {
	cat, err := c.app.loadCatalog(c.sourceOptions, c.app.logger())
	if err != nil {
		return err
	}
	for _, loc := range cat.Locales() {
		fmt.Fprintf(c.app.stdout, "%s\t%d\n", loc, len(cat.Keys(loc)))
	}
	return nil
}

type getCommand struct {
	sourceOptions
	Locale        string `short:"l" long:"locale" value-name:"TAG" description:"Requested locale (default: the default locale)"`
	DefaultLocale string `long:"default-locale" value-name:"TAG" description:"Default locale (default: $I18N_DEFAULT_LOCALE)"`
	FailFast      bool   `long:"fail-fast" description:"Fail instead of falling back to parent or default locales"`

	Args struct {
		Key          string   `positional-arg-name:"KEY" required:"yes"`
		Placeholders []string `positional-arg-name:"NAME=VALUE"`
	} `positional-args:"yes"`

	app *app
}

func (c *getCommand) Execute([]string) error {
	placeholders, err := parsePlaceholders(c.Args.Placeholders)
	if err != nil {
		return err
	}

	log := c.app.logger()
	cat, err := c.app.loadCatalog(c.sourceOptions, log)
	if err != nil {
		return err
	}

	var cfg i18n.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	opts := []i18n.Option{i18n.WithConfig(cfg), i18n.WithLogger(log)}
	if c.DefaultLocale != "" {
		opts = append(opts, i18n.WithDefaultLanguage(c.DefaultLocale))
	}
	if c.FailFast {
		opts = append(opts, i18n.WithFailureMode(i18n.FailFast))
	}
	p, err := i18n.New(cat, opts...)
	if err != nil {
		return err
	}

	loc := p.DefaultLocale()
	if c.Locale != "" {
		if loc, err = locale.Parse(c.Locale); err != nil {
			return err
		}
	}

	text, err := p.GetLocaleWithPlaceholders(c.Args.Key, loc, placeholders)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.app.stdout, text)
	return nil
}

// parsePlaceholders turns name=value arguments into a placeholder map.
// Values naming a form bind the form; everything else stays a string and
// is treated as a number when it parses as one.
func parsePlaceholders(args []string) (i18n.M, error) {
	m := make(i18n.M, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q", errPlaceholder, arg)
		}
		if f, ok := form.Lookup(value); ok {
			m[name] = f
			continue
		}
		m[name] = value
	}
	return m, nil
}
