package websearch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// ddgEndpoint is the lite HTML interface, which is simpler and more stable
// for scraping than the full site.
const ddgEndpoint = "https://lite.duckduckgo.com/lite/"

// ddgUserAgent identifies requests as coming from a desktop browser; the lite
// endpoint serves a reduced page to unknown agents.
const ddgUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DuckDuckGo implements Provider using DuckDuckGo's HTML lite interface.
// Queries are scoped to the past year.
type DuckDuckGo struct {
	client *http.Client
}

// NewDuckDuckGo creates a DuckDuckGo provider with a modest timeout.
func NewDuckDuckGo() *DuckDuckGo {
	return &DuckDuckGo{client: &http.Client{Timeout: 15 * time.Second}}
}

// NewDuckDuckGoWithClient creates a DuckDuckGo provider using the supplied
// HTTP client. This is useful for overriding the default timeout.
func NewDuckDuckGoWithClient(client *http.Client) *DuckDuckGo {
	return &DuckDuckGo{client: client}
}

// Search scrapes the DuckDuckGo lite HTML page for results.
func (d *DuckDuckGo) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("query is empty")
	}

	formData := url.Values{}
	formData.Set("q", query)
	formData.Set("df", "y") // recency window: past year

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ddgEndpoint, strings.NewReader(formData.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", ddgUserAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo http %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return parseHTMLResults(string(body), maxResults), nil
}

// Patterns for the lite page structure: result links carry a result-link
// class and snippets live in result-snippet table cells.
var (
	linkPattern     = regexp.MustCompile(`<a[^>]*class=['"]result-link['"][^>]*href=['"]([^'"]+)['"][^>]*>([^<]+)</a>`)
	linkPatternAlt  = regexp.MustCompile(`<a[^>]*href=['"]([^'"]+)['"][^>]*class=['"]result-link['"][^>]*>([^<]+)</a>`)
	snippetPattern  = regexp.MustCompile(`<td[^>]*class=['"]result-snippet['"][^>]*>([^<]+(?:<[^>]+>[^<]*</[^>]+>)*[^<]*)</td>`)
	fallbackPattern = regexp.MustCompile(`<a[^>]+href=['"]([^'"]+)['"][^>]*>([^<]+)</a>`)
	tagPattern      = regexp.MustCompile(`<[^>]+>`)
)

// parseHTMLResults extracts search results from the DuckDuckGo lite HTML.
func parseHTMLResults(html string, maxResults int) []Result {
	var results []Result

	matches := linkPattern.FindAllStringSubmatch(html, -1)
	if len(matches) == 0 {
		matches = linkPatternAlt.FindAllStringSubmatch(html, -1)
	}
	snippetMatches := snippetPattern.FindAllStringSubmatch(html, -1)

	for i, match := range matches {
		if len(match) < 3 {
			continue
		}
		urlStr := strings.TrimSpace(match[1])
		title := cleanHTML(match[2])
		if urlStr == "" || title == "" {
			continue
		}

		snippet := ""
		if i < len(snippetMatches) && len(snippetMatches[i]) > 1 {
			snippet = cleanHTML(snippetMatches[i][1])
		}

		results = append(results, Result{Title: title, URL: urlStr, Snippet: snippet})
		if len(results) >= maxResults {
			break
		}
	}

	if len(results) == 0 {
		results = fallbackParse(html, maxResults)
	}
	return results
}

// fallbackParse tries a simpler approach: any external link that looks like a
// search result.
func fallbackParse(html string, maxResults int) []Result {
	var results []Result
	seen := make(map[string]bool)

	for _, match := range fallbackPattern.FindAllStringSubmatch(html, -1) {
		if len(match) < 3 {
			continue
		}
		urlStr := strings.TrimSpace(match[1])
		title := cleanHTML(match[2])

		// Skip DuckDuckGo internal links and navigation noise.
		if strings.Contains(urlStr, "duckduckgo.com") ||
			strings.HasPrefix(urlStr, "/") ||
			strings.HasPrefix(urlStr, "#") ||
			strings.HasPrefix(urlStr, "javascript:") {
			continue
		}
		if len(title) < 5 || seen[urlStr] {
			continue
		}
		seen[urlStr] = true

		results = append(results, Result{Title: title, URL: urlStr})
		if len(results) >= maxResults {
			break
		}
	}
	return results
}

// cleanHTML removes HTML tags and decodes common entities.
func cleanHTML(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", "\"")
	s = strings.ReplaceAll(s, "&#39;", "'")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	return strings.TrimSpace(s)
}
