package s3

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/lingo/core/catalog"
	"github.com/dmitrymomot/lingo/core/locale"
	"github.com/dmitrymomot/lingo/core/logger"
)

const (
	// DefaultConcurrency is the number of locale files downloaded in parallel.
	DefaultConcurrency = 4

	// MaxObjectSize caps a single locale file.
	MaxObjectSize = 8 << 20
)

// S3Client defines the S3 operations used by Source.
type S3Client interface {
	GetObject(ctx context.Context, params *s3aws.GetObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3aws.ListObjectsV2Input, optFns ...func(*s3aws.Options)) (*s3aws.ListObjectsV2Output, error)
}

// S3ListObjectsV2Paginator defines the interface for paginated list operations.
type S3ListObjectsV2Paginator interface {
	HasMorePages() bool
	NextPage(ctx context.Context, optFns ...func(*s3aws.Options)) (*s3aws.ListObjectsV2Output, error)
}

// PaginatorFactory builds a paginator for a listing request.
type PaginatorFactory func(client S3Client, params *s3aws.ListObjectsV2Input) S3ListObjectsV2Paginator

// Config locates the locale files. Every "<tag>.json" object directly under
// Prefix is loaded; nested keys are ignored.
type Config struct {
	Bucket         string `env:"I18N_S3_BUCKET,required"`
	Region         string `env:"I18N_S3_REGION" envDefault:"us-east-1"`
	Prefix         string `env:"I18N_S3_PREFIX"`
	AccessKeyID    string `env:"I18N_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"I18N_S3_SECRET_KEY"`
	Endpoint       string `env:"I18N_S3_ENDPOINT"`         // MinIO, Wasabi and friends
	ForcePathStyle bool   `env:"I18N_S3_FORCE_PATH_STYLE"` // required by MinIO
}

// Source loads a translation catalog from an S3 bucket.
// Safe for concurrent use; each Load call lists the bucket again.
type Source struct {
	client           S3Client
	bucket           string
	prefix           string
	concurrency      int
	timeout          time.Duration
	log              *slog.Logger
	paginatorFactory PaginatorFactory
}

// Option configures a Source.
type Option func(*options)

type options struct {
	httpClient       *http.Client
	s3Client         S3Client
	s3ConfigOptions  []func(*config.LoadOptions) error
	s3ClientOptions  []func(*s3aws.Options)
	paginatorFactory PaginatorFactory
	concurrency      int
	timeout          time.Duration
	log              *slog.Logger
}

// WithS3Client sets a pre-configured client. Custom clients other than
// *s3.Client also need WithPaginatorFactory.
func WithS3Client(client S3Client) Option {
	return func(o *options) {
		o.s3Client = client
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) Option {
	return func(o *options) {
		o.s3ConfigOptions = append(o.s3ConfigOptions, option)
	}
}

// WithS3ClientOption adds a custom S3 client option.
func WithS3ClientOption(option func(*s3aws.Options)) Option {
	return func(o *options) {
		o.s3ClientOptions = append(o.s3ClientOptions, option)
	}
}

// WithPaginatorFactory sets a custom paginator factory.
func WithPaginatorFactory(factory PaginatorFactory) Option {
	return func(o *options) {
		o.paginatorFactory = factory
	}
}

// WithConcurrency limits parallel downloads. Values below one are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithDownloadTimeout bounds a whole Load call.
// If not set, relies on context deadline from caller.
func WithDownloadTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithLogger sets the logger for load progress and catalog warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// New creates an S3 catalog source.
func New(ctx context.Context, cfg Config, opts ...Option) (*Source, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	o := &options{
		concurrency: DefaultConcurrency,
		log:         logger.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}

	client := o.s3Client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}

		// Static credentials are optional; the default chain covers IAM roles and env vars.
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}
		if o.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(o.httpClient))
		}
		awsOptions = append(awsOptions, o.s3ConfigOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client = s3aws.NewFromConfig(awsConfig, func(so *s3aws.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle

			for _, opt := range o.s3ClientOptions {
				opt(so)
			}
		})
	}

	factory := o.paginatorFactory
	if factory == nil {
		factory = func(c S3Client, params *s3aws.ListObjectsV2Input) S3ListObjectsV2Paginator {
			if realClient, ok := c.(*s3aws.Client); ok {
				return s3aws.NewListObjectsV2Paginator(realClient, params)
			}
			return nil
		}
	}

	return &Source{
		client:           client,
		bucket:           cfg.Bucket,
		prefix:           normalizePrefix(cfg.Prefix),
		concurrency:      o.concurrency,
		timeout:          o.timeout,
		log:              o.log,
		paginatorFactory: factory,
	}, nil
}

// Load lists the locale files under the prefix, downloads them in parallel
// and returns the merged catalog. Any failed download fails the load.
func (s *Source) Load(ctx context.Context) (*catalog.Catalog, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	files, err := s.list(ctx)
	if err != nil {
		return nil, err
	}

	parts := make([]*catalog.Catalog, len(files))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.concurrency)
	for i, f := range files {
		eg.Go(func() error {
			c, err := s.fetch(egCtx, f)
			if err != nil {
				return err
			}
			parts[i] = c
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	c := catalog.Merge(parts...)
	s.log.Info("loaded catalog from S3",
		logger.Component("catalog"),
		slog.String("bucket", s.bucket),
		slog.String("prefix", s.prefix),
		logger.Count("locales", len(files)),
		logger.Elapsed(start),
	)
	catalog.Report(c, s.log)
	return c, nil
}

type localeFile struct {
	key    string
	locale locale.Locale
}

// list returns the locale files directly under the prefix, sorted by key.
func (s *Source) list(ctx context.Context) ([]localeFile, error) {
	paginator := s.paginatorFactory(s.client, &s3aws.ListObjectsV2Input{
		Bucket:    aws.String(s.bucket),
		Prefix:    aws.String(s.prefix),
		Delimiter: aws.String("/"),
	})
	if paginator == nil {
		return nil, &catalog.LoadingError{Path: s.url(s.prefix), Err: ErrPaginatorNil}
	}

	var files []localeFile
	seen := make(map[locale.Locale]string)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &catalog.LoadingError{Path: s.url(s.prefix), Err: classifyS3Error(err, "list catalog")}
		}

		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			name := strings.TrimPrefix(key, s.prefix)
			if name == "" || strings.Contains(name, "/") {
				continue
			}
			loc, ok := catalog.LocaleFromFileName(name)
			if !ok {
				s.log.Debug("skipping object without locale name",
					logger.Component("catalog"),
					logger.Path(s.url(key)),
				)
				continue
			}
			if prev, dup := seen[loc]; dup {
				return nil, &catalog.LoadingError{
					Path: s.url(key),
					Err:  fmt.Errorf("%w: %s already loaded from %s", catalog.ErrDuplicateLocale, loc, prev),
				}
			}
			seen[loc] = s.url(key)
			files = append(files, localeFile{key: key, locale: loc})
		}
	}

	slices.SortFunc(files, func(a, b localeFile) int { return strings.Compare(a.key, b.key) })
	return files, nil
}

func (s *Source) fetch(ctx context.Context, f localeFile) (*catalog.Catalog, error) {
	out, err := s.client.GetObject(ctx, &s3aws.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(f.key),
	})
	if err != nil {
		return nil, &catalog.LoadingError{Path: s.url(f.key), Err: classifyS3Error(err, "download locale file")}
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(out.Body, MaxObjectSize+1))
	if err != nil {
		return nil, &catalog.LoadingError{Path: s.url(f.key), Err: classifyS3Error(err, "read locale file")}
	}
	if len(data) > MaxObjectSize {
		return nil, &catalog.LoadingError{Path: s.url(f.key), Err: ErrObjectTooLarge}
	}

	c, err := catalog.Parse(f.locale, s.url(f.key), data)
	if err != nil {
		return nil, err
	}
	s.log.Debug("loaded locale file",
		logger.Component("catalog"),
		logger.Locale(f.locale),
		logger.Path(s.url(f.key)),
		logger.Count("entries", len(c.Keys(f.locale))),
	)
	return c, nil
}

func (s *Source) url(key string) string {
	return "s3://" + path.Join(s.bucket, key)
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimPrefix(prefix, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}
