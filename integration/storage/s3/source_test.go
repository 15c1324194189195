package s3_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/core/catalog"
	"github.com/dmitrymomot/lingo/core/locale"
	"github.com/dmitrymomot/lingo/integration/storage/s3"
)

type fakeClient struct {
	mu      sync.Mutex
	objects map[string]string
	errs    map[string]error
	gets    []string
}

func (c *fakeClient) GetObject(_ context.Context, params *s3aws.GetObjectInput, _ ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error) {
	key := aws.ToString(params.Key)
	c.mu.Lock()
	c.gets = append(c.gets, key)
	c.mu.Unlock()

	if err, ok := c.errs[key]; ok {
		return nil, err
	}
	body, ok := c.objects[key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3aws.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func (c *fakeClient) ListObjectsV2(context.Context, *s3aws.ListObjectsV2Input, ...func(*s3aws.Options)) (*s3aws.ListObjectsV2Output, error) {
	return nil, errors.New("use the paginator")
}

// fakePaginator serves the configured pages in order.
type fakePaginator struct {
	pages [][]string
	err   error
	pos   int
}

func (p *fakePaginator) HasMorePages() bool { return p.pos < len(p.pages) || (p.err != nil && p.pos == 0) }

func (p *fakePaginator) NextPage(context.Context, ...func(*s3aws.Options)) (*s3aws.ListObjectsV2Output, error) {
	if p.err != nil {
		p.pos++
		return nil, p.err
	}
	out := &s3aws.ListObjectsV2Output{}
	for _, key := range p.pages[p.pos] {
		out.Contents = append(out.Contents, types.Object{Key: aws.String(key)})
	}
	p.pos++
	return out, nil
}

func paginate(pages [][]string, err error, seen *s3aws.ListObjectsV2Input) s3.PaginatorFactory {
	return func(_ s3.S3Client, params *s3aws.ListObjectsV2Input) s3.S3ListObjectsV2Paginator {
		if seen != nil {
			*seen = *params
		}
		return &fakePaginator{pages: pages, err: err}
	}
}

func newSource(t *testing.T, client *fakeClient, factory s3.PaginatorFactory, opts ...s3.Option) *s3.Source {
	t.Helper()
	opts = append([]s3.Option{s3.WithS3Client(client), s3.WithPaginatorFactory(factory)}, opts...)
	src, err := s3.New(context.Background(), s3.Config{
		Bucket: "translations",
		Region: "us-east-1",
		Prefix: "/app/locales",
	}, opts...)
	require.NoError(t, err)
	return src
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires bucket", func(t *testing.T) {
		_, err := s3.New(context.Background(), s3.Config{Region: "us-east-1"}, s3.WithS3Client(&fakeClient{}))
		assert.ErrorIs(t, err, s3.ErrInvalidConfig)
	})

	t.Run("requires region", func(t *testing.T) {
		_, err := s3.New(context.Background(), s3.Config{Bucket: "b"}, s3.WithS3Client(&fakeClient{}))
		assert.ErrorIs(t, err, s3.ErrInvalidConfig)
	})

	t.Run("custom client without paginator", func(t *testing.T) {
		src, err := s3.New(context.Background(), s3.Config{Bucket: "b", Region: "us-east-1"}, s3.WithS3Client(&fakeClient{}))
		require.NoError(t, err)

		_, err = src.Load(context.Background())
		assert.ErrorIs(t, err, s3.ErrPaginatorNil)
		assert.ErrorIs(t, err, catalog.ErrLoading)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	client := &fakeClient{objects: map[string]string{
		"app/locales/en.json":    `{"greeting": "Hello, {{name}}!"}`,
		"app/locales/pt_BR.json": `{"greeting": "Olá, {{name}}!"}`,
		"app/locales/de.json":    `{"greeting": {"translation": "Hallo, {{name}}!"}}`,
	}}
	pages := [][]string{
		{"app/locales/", "app/locales/en.json", "app/locales/README.md"},
		{"app/locales/pt_BR.json", "app/locales/de.json", "app/locales/notes.json"},
	}
	var params s3aws.ListObjectsV2Input
	src := newSource(t, client, paginate(pages, nil, &params), s3.WithConcurrency(2))

	c, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "translations", aws.ToString(params.Bucket))
	assert.Equal(t, "app/locales/", aws.ToString(params.Prefix))
	assert.Equal(t, "/", aws.ToString(params.Delimiter))

	assert.Equal(t, []locale.Locale{locale.MustParse("de"), locale.MustParse("en"), locale.MustParse("pt-BR")}, c.Locales())
	s, ok := c.Lookup(locale.MustParse("pt-BR"), "greeting")
	require.True(t, ok)
	assert.Equal(t, "Olá, {{name}}!", s.Translation())

	assert.ElementsMatch(t, []string{"app/locales/de.json", "app/locales/en.json", "app/locales/pt_BR.json"}, client.gets)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	apiErr := func(code string) error {
		return &smithy.GenericAPIError{Code: code, Message: code}
	}

	tests := []struct {
		name    string
		pages   [][]string
		listErr error
		objects map[string]string
		errs    map[string]error
		target  error
		path    string
	}{
		{
			name:    "missing bucket",
			listErr: &types.NoSuchBucket{},
			target:  s3.ErrBucketNotFound,
			path:    "s3://translations/app/locales",
		},
		{
			name:    "list access denied",
			listErr: apiErr("AccessDenied"),
			target:  s3.ErrAccessDenied,
		},
		{
			name:    "throttled",
			listErr: apiErr("SlowDown"),
			target:  s3.ErrServiceUnavailable,
		},
		{
			name:    "canceled",
			listErr: context.Canceled,
			target:  s3.ErrOperationCanceled,
		},
		{
			name:   "object vanished",
			pages:  [][]string{{"app/locales/en.json"}},
			target: s3.ErrObjectNotFound,
			path:   "s3://translations/app/locales/en.json",
		},
		{
			name:   "archived object",
			pages:  [][]string{{"app/locales/en.json"}},
			errs:   map[string]error{"app/locales/en.json": apiErr("InvalidObjectState")},
			target: s3.ErrInvalidObjectState,
		},
		{
			name:    "malformed file",
			pages:   [][]string{{"app/locales/en.json"}},
			objects: map[string]string{"app/locales/en.json": `{"greeting": `},
			target:  catalog.ErrMalformedJSON,
			path:    "s3://translations/app/locales/en.json",
		},
		{
			name:  "duplicate locale",
			pages: [][]string{{"app/locales/pt-BR.json", "app/locales/pt_BR.json"}},
			objects: map[string]string{
				"app/locales/pt-BR.json": `{}`,
				"app/locales/pt_BR.json": `{}`,
			},
			target: catalog.ErrDuplicateLocale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{objects: tt.objects, errs: tt.errs}
			src := newSource(t, client, paginate(tt.pages, tt.listErr, nil))

			_, err := src.Load(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.ErrorIs(t, err, catalog.ErrLoading)

			var le *catalog.LoadingError
			require.ErrorAs(t, err, &le)
			if tt.path != "" {
				assert.Equal(t, tt.path, le.Path)
			}
		})
	}
}

func TestLoadEmptyBucket(t *testing.T) {
	t.Parallel()

	src := newSource(t, &fakeClient{}, paginate(nil, nil, nil))
	c, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Zero(t, c.Len())
}
