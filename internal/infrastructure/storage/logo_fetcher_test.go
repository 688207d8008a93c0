package storage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type stubFetcher struct {
	got string
}

func (s *stubFetcher) FetchBinary(_ context.Context, url string) ([]byte, error) {
	s.got = url
	return []byte("ok"), nil
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/logo.png":
			_, _ = w.Write([]byte("png-bytes"))
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("x", maxLogoBytes+1)))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5 * time.Second)

	t.Run("ok", func(t *testing.T) {
		data, err := f.FetchBinary(context.Background(), srv.URL+"/logo.png")
		if err != nil || string(data) != "png-bytes" {
			t.Fatalf("unexpected result %q err=%v", data, err)
		}
	})

	t.Run("non ok status", func(t *testing.T) {
		if _, err := f.FetchBinary(context.Background(), srv.URL+"/missing"); err == nil {
			t.Fatalf("expected error for 404")
		}
	})

	t.Run("too large", func(t *testing.T) {
		if _, err := f.FetchBinary(context.Background(), srv.URL+"/big"); !errors.Is(err, ErrLogoTooLarge) {
			t.Fatalf("expected ErrLogoTooLarge, got %v", err)
		}
	})
}

func TestLogoFetcherRouting(t *testing.T) {
	httpStub := &stubFetcher{}
	s3Stub := &stubFetcher{}
	f := &LogoFetcher{HTTP: httpStub, S3: s3Stub}

	if _, err := f.FetchBinary(context.Background(), "HTTPS://cdn.example.com/a.png"); err != nil || httpStub.got == "" {
		t.Fatalf("expected http fetcher to be used, err=%v", err)
	}
	if _, err := f.FetchBinary(context.Background(), "s3://logos/tenant-1.png"); err != nil || s3Stub.got != "s3://logos/tenant-1.png" {
		t.Fatalf("expected s3 fetcher to be used, err=%v", err)
	}
	if _, err := f.FetchBinary(context.Background(), "ftp://x/y"); !errors.Is(err, ErrUnsupportedScheme) {
		t.Fatalf("expected ErrUnsupportedScheme, got %v", err)
	}
	if _, err := (&LogoFetcher{HTTP: httpStub}).FetchBinary(context.Background(), "s3://logos/a.png"); !errors.Is(err, ErrUnsupportedScheme) {
		t.Fatalf("expected disabled s3 scheme, got %v", err)
	}
}

func TestParseS3URL(t *testing.T) {
	bucket, key, err := parseS3URL("s3://logos/tenants/t-1.png")
	if err != nil || bucket != "logos" || key != "tenants/t-1.png" {
		t.Fatalf("unexpected %q %q err=%v", bucket, key, err)
	}
	if _, _, err := parseS3URL("s3://logos/"); err == nil {
		t.Fatalf("expected error for missing key")
	}
}
