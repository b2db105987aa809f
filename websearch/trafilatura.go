package websearch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/markusmobius/go-trafilatura"
)

const (
	// fetchMaxBodySize caps how much of a page body is read before extraction.
	fetchMaxBodySize = 10 * 1024 * 1024

	fetchUserAgent = "moa-bot/1.0"
)

// TrafilaturaFetcher implements Fetcher by downloading a page and extracting
// its readable main content with go-trafilatura.
type TrafilaturaFetcher struct {
	client *http.Client
}

// NewTrafilaturaFetcher creates a fetcher with a conservative timeout.
func NewTrafilaturaFetcher() *TrafilaturaFetcher {
	return &TrafilaturaFetcher{client: &http.Client{Timeout: 30 * time.Second}}
}

// NewTrafilaturaFetcherWithClient creates a fetcher using the supplied HTTP client.
func NewTrafilaturaFetcherWithClient(client *http.Client) *TrafilaturaFetcher {
	return &TrafilaturaFetcher{client: client}
}

// FetchAndExtract downloads the URL and returns its title and readable text.
// An empty extraction is reported as an error so callers can substitute a
// per-URL notice.
func (f *TrafilaturaFetcher) FetchAndExtract(ctx context.Context, rawURL string) (Page, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return Page{}, fmt.Errorf("invalid url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Page{}, err
	}
	req.Header.Set("User-Agent", fetchUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Page{}, fmt.Errorf("fetch %s: http %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, fetchMaxBodySize))
	if err != nil {
		return Page{}, fmt.Errorf("read %s: %w", rawURL, err)
	}

	result, err := trafilatura.Extract(bytes.NewReader(body), trafilatura.Options{OriginalURL: parsed})
	if err != nil {
		return Page{}, fmt.Errorf("extract %s: %w", rawURL, err)
	}
	if result == nil || result.ContentText == "" {
		return Page{}, fmt.Errorf("no content extracted from %s", rawURL)
	}

	return Page{Title: result.Metadata.Title, Text: result.ContentText}, nil
}
