// ABOUTME: HTML utilities for stripping tags down to plain text
// ABOUTME: Used to clean extracted page content before summarizing

package html

import (
	"strings"

	xhtml "golang.org/x/net/html"
)

// StripHTML removes HTML markup from a string, returning the visible text.
// Script and style contents are dropped entirely. Entities are decoded by
// the tokenizer. Malformed markup falls back to returning the input text
// as-is rather than failing.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return normalizeWhitespace(s)
	}

	tokenizer := xhtml.NewTokenizer(strings.NewReader(s))

	var b strings.Builder
	skipDepth := 0

	for {
		tt := tokenizer.Next()
		switch tt {
		case xhtml.ErrorToken:
			// io.EOF terminates cleanly; any other error means the input
			// was not parseable as HTML, so keep whatever we collected.
			return normalizeWhitespace(b.String())

		case xhtml.StartTagToken:
			name, _ := tokenizer.TagName()
			if isInvisible(string(name)) {
				skipDepth++
			}

		case xhtml.EndTagToken:
			name, _ := tokenizer.TagName()
			if isInvisible(string(name)) && skipDepth > 0 {
				skipDepth--
			}

		case xhtml.TextToken:
			if skipDepth == 0 {
				b.Write(tokenizer.Text())
				b.WriteByte(' ')
			}
		}
	}
}

// isInvisible reports whether an element's text content is never rendered
func isInvisible(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "iframe", "head":
		return true
	}
	return false
}

// normalizeWhitespace collapses runs of whitespace into single spaces
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
