package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"opticai/internal/domain/document"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxLogoBytes = 5 << 20

var (
	ErrUnsupportedScheme = errors.New("unsupported logo url scheme")
	ErrLogoTooLarge      = errors.New("logo exceeds size limit")
)

// HTTPFetcher downloads logos over http(s).
type HTTPFetcher struct {
	client *http.Client
}

var _ document.BinaryFetcher = (*HTTPFetcher)(nil)

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}}
}

func (f *HTTPFetcher) FetchBinary(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}
	return readLimited(resp.Body)
}

// S3Fetcher reads logos stored as s3://bucket/key objects.
type S3Fetcher struct {
	client *s3.Client
}

var _ document.BinaryFetcher = (*S3Fetcher)(nil)

func NewS3Fetcher(cfg aws.Config, endpoint string) *S3Fetcher {
	return &S3Fetcher{client: s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})}
}

func (f *S3Fetcher) FetchBinary(ctx context.Context, rawURL string) ([]byte, error) {
	bucket, key, err := parseS3URL(rawURL)
	if err != nil {
		return nil, err
	}
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()
	return readLimited(out.Body)
}

func parseS3URL(rawURL string) (bucket, key string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", err
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if u.Scheme != "s3" || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid s3 url %q", rawURL)
	}
	return bucket, key, nil
}

// LogoFetcher routes a logo URL to the fetcher of its scheme. A nil entry
// disables that scheme.
type LogoFetcher struct {
	HTTP document.BinaryFetcher
	S3   document.BinaryFetcher
}

var _ document.BinaryFetcher = (*LogoFetcher)(nil)

func (f *LogoFetcher) FetchBinary(ctx context.Context, rawURL string) ([]byte, error) {
	scheme, _, ok := strings.Cut(rawURL, "://")
	if !ok {
		return nil, ErrUnsupportedScheme
	}
	var next document.BinaryFetcher
	switch strings.ToLower(scheme) {
	case "http", "https":
		next = f.HTTP
	case "s3":
		next = f.S3
	}
	if next == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)
	}
	return next.FetchBinary(ctx, rawURL)
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxLogoBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxLogoBytes {
		return nil, ErrLogoTooLarge
	}
	return data, nil
}
