// ABOUTME: Content extraction service for recovering article text from URLs or raw input
// ABOUTME: Uses go-readability with a goquery selector sweep as a fallback

package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"newssniff-api/core/domain"
	"newssniff-api/core/interfaces"
	timeutil "newssniff-api/pkg/utils/time"
)

const (
	// maxContentLength caps extracted content to keep downstream analysis bounded
	maxContentLength = 2000

	// minArticleLength is the minimum text length for an extraction to count
	minArticleLength = 100

	// maxFetchBytes bounds how much of a page we read
	maxFetchBytes = 5 * 1024 * 1024
)

// contentSelectors are tried in order when readability comes up short
var contentSelectors = []string{
	"article",
	".content",
	".post-content",
	".entry-content",
	"main",
}

// titleSelectors are tried in order for a headline
var titleSelectors = []string{
	"h1",
	"title",
	".title",
	".headline",
}

// Service extracts article content from URLs or passes through raw text
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new extraction service
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// IsURL reports whether the input looks like an absolute HTTP(S) URL
func IsURL(input string) bool {
	if strings.ContainsAny(input, " \t\n") {
		return false
	}

	u, err := url.Parse(input)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Extract recovers content for the given input. URL inputs are fetched and
// parsed; anything else is treated as direct text. Extraction never fails
// hard: on error the returned content carries the "failed" method tag and
// placeholder text so analysis can still proceed.
func (s *Service) Extract(ctx context.Context, urlOrText string) *domain.ExtractedContent {
	if !IsURL(urlOrText) {
		return &domain.ExtractedContent{
			Title:   "Direct text",
			Content: truncate(urlOrText, maxContentLength),
			Method:  domain.ExtractMethodDirectText,
		}
	}

	return s.extractFromURL(ctx, urlOrText)
}

func (s *Service) extractFromURL(ctx context.Context, pageURL string) *domain.ExtractedContent {
	body, err := s.fetch(ctx, pageURL)
	if err != nil {
		s.deps.Logger.Warn("Page fetch failed", map[string]interface{}{
			"url":   pageURL,
			"error": err.Error(),
		})
		return failedContent(pageURL)
	}

	parsedURL, _ := url.Parse(pageURL)

	// Primary: readability
	if article, err := readability.FromReader(bytes.NewReader(body), parsedURL); err == nil {
		text := strings.TrimSpace(article.TextContent)
		if len(text) > minArticleLength {
			result := &domain.ExtractedContent{
				Title:     strings.TrimSpace(article.Title),
				Content:   truncate(text, maxContentLength),
				SourceURL: pageURL,
				Method:    domain.ExtractMethodReadability,
			}
			if byline := strings.TrimSpace(article.Byline); byline != "" {
				result.Authors = []string{byline}
			}
			s.fillMetaFields(body, result)
			return result
		}
	}

	// Fallback: selector sweep over the raw document
	return s.extractWithSelectors(body, pageURL)
}

// fetch retrieves the page body, bounded by maxFetchBytes
func (s *Service) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("page returned status %d", resp.StatusCode())
	}

	return io.ReadAll(io.LimitReader(resp.Body(), maxFetchBytes))
}

// extractWithSelectors pulls title and content out of the document using
// common article selectors, the way scrapers do when structure is unknown
func (s *Service) extractWithSelectors(body []byte, pageURL string) *domain.ExtractedContent {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return failedContent(pageURL)
	}

	result := &domain.ExtractedContent{
		SourceURL: pageURL,
		Method:    domain.ExtractMethodSelectors,
	}

	for _, sel := range titleSelectors {
		if title := strings.TrimSpace(doc.Find(sel).First().Text()); title != "" {
			result.Title = title
			break
		}
	}

	for _, sel := range contentSelectors {
		node := doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		node.Find("script,style,noscript").Remove()
		if text := normalize(node.Text()); len(text) > minArticleLength {
			result.Content = truncate(text, maxContentLength)
			break
		}
	}

	if result.Content == "" {
		// Last resort: stitch together the first paragraphs
		var parts []string
		doc.Find("p").EachWithBreak(func(i int, p *goquery.Selection) bool {
			if text := normalize(p.Text()); text != "" {
				parts = append(parts, text)
			}
			return len(parts) < 10
		})
		result.Content = truncate(strings.Join(parts, " "), maxContentLength)
	}

	if result.Title == "" && result.Content == "" {
		return failedContent(pageURL)
	}

	if result.Title == "" {
		result.Title = "Untitled"
	}

	s.fillMetaFieldsFromDoc(doc, result)
	return result
}

// fillMetaFields extracts byline and publish date hints from meta tags
func (s *Service) fillMetaFields(body []byte, result *domain.ExtractedContent) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return
	}
	s.fillMetaFieldsFromDoc(doc, result)
}

func (s *Service) fillMetaFieldsFromDoc(doc *goquery.Document, result *domain.ExtractedContent) {
	if len(result.Authors) == 0 {
		doc.Find("meta[name='author']").EachWithBreak(func(i int, sel *goquery.Selection) bool {
			if content, ok := sel.Attr("content"); ok && strings.TrimSpace(content) != "" {
				result.Authors = append(result.Authors, strings.TrimSpace(content))
			}
			return false
		})
	}

	if result.PublishDate == "" {
		if content, ok := doc.Find("meta[property='article:published_time']").Attr("content"); ok {
			result.PublishDate = strings.TrimSpace(content)
		}
	}
	if result.PublishDate == "" {
		if datetime, ok := doc.Find("time[datetime]").Attr("datetime"); ok {
			result.PublishDate = strings.TrimSpace(datetime)
		}
	}

	// Normalize recognizable dates; keep the raw value otherwise
	if parsed := timeutil.ParseFlexibleTime(result.PublishDate); !parsed.IsZero() {
		result.PublishDate = parsed.Format(time.RFC3339)
	}
}

func failedContent(pageURL string) *domain.ExtractedContent {
	return &domain.ExtractedContent{
		Title:     "Extraction failed",
		Content:   "",
		SourceURL: pageURL,
		Method:    domain.ExtractMethodFailed,
	}
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
