// Command lingo inspects translation catalogs.
//
//	lingo check -d ./locales            validate every locale file
//	lingo locales -d ./locales          list locales and entry counts
//	lingo get -l pl books count=5       resolve one key
//
// Catalog settings default to the I18N_* environment variables (a .env file
// is honored). With --s3 the catalog is read from the bucket named by the
// I18N_S3_* variables instead of a directory.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}
