// ABOUTME: Web search scraping provider using colly over an HTML results page
// ABOUTME: Extracts result links and snippets the way the search page renders them

package crosscheck

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"

	"newssniff-api/core/domain"
	"newssniff-api/core/interfaces"
)

const (
	defaultScrapeBaseURL = "https://html.duckduckgo.com/html/"
	scrapeUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	scrapeTimeout        = 10 * time.Second
)

// WebScrapeProvider finds related coverage by scraping an HTML search results page
type WebScrapeProvider struct {
	logger  interfaces.Logger
	baseURL string
}

// NewWebScrapeProvider creates a search scraping provider
func NewWebScrapeProvider(logger interfaces.Logger) *WebScrapeProvider {
	return &WebScrapeProvider{
		logger:  logger,
		baseURL: defaultScrapeBaseURL,
	}
}

// NewWebScrapeProviderWithBaseURL creates a provider against a custom results endpoint
func NewWebScrapeProviderWithBaseURL(logger interfaces.Logger, baseURL string) *WebScrapeProvider {
	p := NewWebScrapeProvider(logger)
	p.baseURL = baseURL
	return p
}

// Name identifies this provider in logs and diagnostics
func (p *WebScrapeProvider) Name() string {
	return "webscrape"
}

// Search returns up to limit results scraped from the results page
func (p *WebScrapeProvider) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	if query == "" {
		return nil, errors.New("search query cannot be empty")
	}

	c := colly.NewCollector(
		colly.UserAgent(scrapeUserAgent),
		colly.MaxBodySize(5*1024*1024),
		colly.IgnoreRobotsTxt(),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(scrapeTimeout)

	var results []domain.SearchResult

	c.OnHTML("html", func(e *colly.HTMLElement) {
		results = parseResults(e.DOM, limit)
	})

	searchURL := fmt.Sprintf("%s?q=%s", p.baseURL, url.QueryEscape(query))
	if err := c.Visit(searchURL); err != nil {
		return nil, fmt.Errorf("search page fetch failed: %w", err)
	}
	c.Wait()

	if p.logger != nil {
		p.logger.Debug("Search scrape complete", map[string]interface{}{
			"query":   query,
			"results": len(results),
		})
	}

	return results, nil
}

// resolveResultURL unwraps redirect-style result links and rejects
// anything that is not an absolute HTTP(S) URL
func resolveResultURL(href string) string {
	if href == "" {
		return ""
	}

	u, err := url.Parse(href)
	if err != nil {
		return ""
	}

	// Results pages often wrap the target in a redirect with the real
	// URL carried in the uddg query parameter
	if target := u.Query().Get("uddg"); target != "" {
		if decoded, err := url.QueryUnescape(target); err == nil {
			href = decoded
			u, err = url.Parse(href)
			if err != nil {
				return ""
			}
		}
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}

	return href
}

// parseResults extracts results from a parsed results page.
// Split out from the collector wiring so parsing is testable in isolation.
func parseResults(root *goquery.Selection, limit int) []domain.SearchResult {
	var results []domain.SearchResult

	root.Find("div.result").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		link := sel.Find("a.result__a").First()
		title := strings.TrimSpace(link.Text())
		href := link.AttrOr("href", "")
		snippet := strings.TrimSpace(sel.Find(".result__snippet").First().Text())

		resultURL := resolveResultURL(href)
		if title != "" && resultURL != "" {
			results = append(results, domain.SearchResult{
				Title:   title,
				URL:     resultURL,
				Snippet: snippet,
			})
		}

		return len(results) < limit
	})

	return results
}
