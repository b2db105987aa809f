// Package websearch implements the web augmentation collaborator: given a
// query it performs an external search, fetches and extracts readable content
// from each result and assembles a delimited evidence block for downstream
// agents. Search providers and page fetchers are pluggable interfaces; the
// bundled implementations use DuckDuckGo's lite HTML endpoint and
// go-trafilatura content extraction.
package websearch

import (
	"context"
	"fmt"
	"strings"

	"github.com/vodalus/moa/logging"
)

const (
	// SuccessMarker prefixes every evidence block that contains gathered
	// content. Callers discriminate "search produced usable evidence" from
	// "search was attempted but empty" by substring match on this marker.
	SuccessMarker = "Based on the following results:"

	// NoResultsSentinel is returned when the search yielded nothing at all.
	NoResultsSentinel = "No relevant information found from the web search."

	// defaultMaxResults caps how many search hits are fetched per query.
	defaultMaxResults = 3
)

// Result is a single search engine hit.
type Result struct {
	Title   string
	URL     string
	Snippet string
}

// Provider issues an external search returning hits best-first.
type Provider interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}

// Page is the readable content extracted from a fetched URL.
type Page struct {
	Title string
	Text  string
}

// Fetcher retrieves a URL and extracts its readable content.
type Fetcher interface {
	FetchAndExtract(ctx context.Context, url string) (Page, error)
}

// Options configure a Client.
type Options struct {
	MaxResults int
	Logger     logging.Logger
}

// Client composes a Provider and a Fetcher into the single Gather operation
// used by agents and the orchestrator.
type Client struct {
	provider   Provider
	fetcher    Fetcher
	maxResults int
	logger     logging.Logger
}

// New creates a Client over the given provider and fetcher.
func New(provider Provider, fetcher Fetcher, optFns ...func(o *Options)) *Client {
	opts := Options{
		MaxResults: defaultMaxResults,
		Logger:     logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Client{
		provider:   provider,
		fetcher:    fetcher,
		maxResults: opts.MaxResults,
		logger:     opts.Logger,
	}
}

// NewDefault creates a Client using the DuckDuckGo provider and the
// trafilatura fetcher.
func NewDefault(optFns ...func(o *Options)) *Client {
	return New(NewDuckDuckGo(), NewTrafilaturaFetcher(), optFns...)
}

// Gather runs a search and concatenates per-URL evidence blocks. A fetch
// failure or empty extraction substitutes a descriptive notice for that URL
// rather than aborting the batch. If nothing at all was gathered the
// NoResultsSentinel is returned; otherwise the block is prefixed with
// SuccessMarker.
func (c *Client) Gather(ctx context.Context, query string) (string, error) {
	results, err := c.provider.Search(ctx, query, c.maxResults)
	if err != nil {
		return "", fmt.Errorf("web search for %q: %w", query, err)
	}

	var b strings.Builder
	for _, res := range results {
		page, err := c.fetcher.FetchAndExtract(ctx, res.URL)
		switch {
		case err != nil:
			c.logger.Warn("fetch failed", "url", res.URL, "error", err)
			b.WriteString(fmt.Sprintf("Failed to fetch content from %s\n\n", res.URL))
		case strings.TrimSpace(page.Text) == "":
			b.WriteString(fmt.Sprintf("No content could be extracted from %s\n\n", res.URL))
		default:
			b.WriteString(formatEvidence(page.Title, res.URL, page.Text))
			b.WriteString("\n\n")
		}
	}

	if strings.TrimSpace(b.String()) == "" {
		return NoResultsSentinel, nil
	}
	return SuccessMarker + "\n\n" + b.String(), nil
}

// formatEvidence delimits a single source with explicit title/URL/content/end
// markers so downstream agents can visually segment sources.
func formatEvidence(title, url, content string) string {
	if title == "" {
		title = "No title found"
	}
	return fmt.Sprintf(
		"=========== Website Title: %s ===========\n\n"+
			"=========== Website URL: %s ===========\n\n"+
			"=========== Website Content ===========\n\n%s\n\n"+
			"=========== Website Content End ===========\n",
		title, url, content,
	)
}
