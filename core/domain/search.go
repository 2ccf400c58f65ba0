// ABOUTME: Search domain models for cross-check coverage lookups
// ABOUTME: Defines structures for results returned by search providers

package domain

// SearchResult represents a single piece of related coverage found by a search provider
type SearchResult struct {
	// Title is the result's headline
	Title string

	// URL is the result's absolute URL
	URL string

	// Snippet is a short excerpt of the result, may be empty
	Snippet string
}
