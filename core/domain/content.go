// ABOUTME: Domain model for extracted article content
// ABOUTME: Captures what the content extractor recovered from a URL or raw text

package domain

// ExtractedContent represents article content recovered from a page or raw text
type ExtractedContent struct {
	// Title is the article headline, or a placeholder when unavailable
	Title string

	// Content is the article body text, capped by the extractor
	Content string

	// Authors lists identified bylines, empty when none were found
	Authors []string

	// PublishDate is the raw publication date string, empty when unknown
	PublishDate string

	// SourceURL is the page the content came from, empty for direct text input
	SourceURL string

	// Method records which extraction strategy produced the content
	Method string
}

// Extraction method tags
const (
	ExtractMethodReadability = "readability"
	ExtractMethodSelectors   = "selectors"
	ExtractMethodDirectText  = "direct_text"
	ExtractMethodFailed      = "failed"
)
