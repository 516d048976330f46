package document

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// FixtureSource fetches the static seed document.
type FixtureSource interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// FixtureFunc adapts a function to FixtureSource.
type FixtureFunc func(ctx context.Context) ([]byte, error)

func (f FixtureFunc) Fetch(ctx context.Context) ([]byte, error) {
	return f(ctx)
}

// NewFixtureSource picks an HTTP source for http(s) locations and a file source otherwise.
func NewFixtureSource(location string) FixtureSource {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &HTTPFixture{URL: location, Client: &http.Client{}}
	}
	return FileFixture{Path: location}
}

// FileFixture reads the document from disk.
type FileFixture struct {
	Path string
}

func (f FileFixture) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", f.Path, err)
	}
	return data, nil
}

// HTTPFixture fetches the document by URL, bypassing intermediary caches.
type HTTPFixture struct {
	URL    string
	Client *http.Client
}

func (f *HTTPFixture) Fetch(ctx context.Context) ([]byte, error) {
	u, err := url.Parse(f.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid fixture url %s: %w", f.URL, err)
	}
	q := u.Query()
	q.Set("t", strconv.FormatInt(time.Now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fixture: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch fixture: unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
