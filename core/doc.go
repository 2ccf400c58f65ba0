// Package core contains the business logic for the NewsSniff API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (AnalysisResult, ExtractedContent, etc.)
// - extract: Article content extraction from URLs or raw text
// - crosscheck: Search providers for finding corroborating coverage
// - analysis: The credibility scoring pipeline
package core
