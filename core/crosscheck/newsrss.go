// ABOUTME: News RSS search provider backed by the Google News search feed
// ABOUTME: Finds related coverage for a query by parsing the returned RSS

package crosscheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/mmcdole/gofeed"

	"newssniff-api/core/domain"
	"newssniff-api/core/interfaces"
	htmlutil "newssniff-api/pkg/utils/html"
)

const defaultNewsRSSBaseURL = "https://news.google.com/rss/search"

// NewsRSSProvider finds related coverage through a news search RSS feed
type NewsRSSProvider struct {
	deps    interfaces.Dependencies
	baseURL string
	parser  *gofeed.Parser
}

// NewNewsRSSProvider creates a news RSS search provider
func NewNewsRSSProvider(deps interfaces.Dependencies) *NewsRSSProvider {
	return &NewsRSSProvider{
		deps:    deps,
		baseURL: defaultNewsRSSBaseURL,
		parser:  gofeed.NewParser(),
	}
}

// NewNewsRSSProviderWithBaseURL creates a provider against a custom feed endpoint
func NewNewsRSSProviderWithBaseURL(deps interfaces.Dependencies, baseURL string) *NewsRSSProvider {
	p := NewNewsRSSProvider(deps)
	p.baseURL = baseURL
	return p
}

// Name identifies this provider in logs and diagnostics
func (p *NewsRSSProvider) Name() string {
	return "newsrss"
}

// Search returns up to limit related coverage results for the query
func (p *NewsRSSProvider) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	if query == "" {
		return nil, errors.New("search query cannot be empty")
	}
	if p.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	feedURL := fmt.Sprintf("%s?q=%s&hl=en-US&gl=US&ceid=US:en", p.baseURL, url.QueryEscape(query))

	resp, err := p.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("news feed request failed: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("news feed returned status %d", resp.StatusCode())
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to read news feed: %w", err)
	}

	feed, err := p.parser.ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse news feed: %w", err)
	}

	results := make([]domain.SearchResult, 0, limit)
	for _, item := range feed.Items {
		if len(results) >= limit {
			break
		}
		if item.Link == "" {
			continue
		}
		// News feed descriptions carry markup
		results = append(results, domain.SearchResult{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: htmlutil.StripHTML(item.Description),
		})
	}

	return results, nil
}
