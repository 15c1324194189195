// Package s3 loads translation catalogs from Amazon S3 and S3-compatible
// services such as MinIO.
//
// Locale files use the same layout as a catalog directory: one "<tag>.json"
// object per locale directly under a key prefix. Objects whose base name is
// not a BCP 47 tag are skipped, and nested keys are ignored.
//
//	cfg := s3.Config{
//		Bucket: "acme-translations",
//		Region: "eu-central-1",
//		Prefix: "web/locales",
//	}
//
//	src, err := s3.New(ctx, cfg, s3.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	cat, err := src.Load(ctx)
//	if err != nil {
//		return err
//	}
//
//	provider, err := i18n.New(cat, i18n.WithDefaultLanguage("en"))
//
// Config carries env tags and can be filled with config.Load.
//
// Downloads run in parallel (see WithConcurrency). Any failure aborts the
// whole load and is returned as a *catalog.LoadingError wrapping one of the
// package's sentinel errors, so callers can branch with errors.Is:
//
//	if errors.Is(err, s3.ErrAccessDenied) {
//		// fix bucket policy
//	}
package s3
