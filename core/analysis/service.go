// ABOUTME: Credibility analysis service orchestrating extraction, cross-check and scoring
// ABOUTME: Produces the suspicion score, factor list and checked sources for an input

package analysis

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"newssniff-api/core/domain"
	coreerrors "newssniff-api/core/errors"
	"newssniff-api/core/extract"
	"newssniff-api/core/interfaces"
)

const (
	// summaryLength caps the content summary
	summaryLength = 200

	// textQueryLength caps the search query built from direct text input
	textQueryLength = 100

	// maxReportedSources caps how many checked sources the result carries
	maxReportedSources = 5

	// cacheTTL is how long a finished analysis stays cached
	cacheTTL = 1 * time.Hour
)

// Config tunes the analysis pipeline
type Config struct {
	// SearchResultLimit is how many related results to request
	SearchResultLimit int

	// ExtraReliableDomains extends the built-in reliable outlet list
	ExtraReliableDomains []string
}

// Service runs credibility analyses
type Service struct {
	deps        interfaces.Dependencies
	extractor   interfaces.ContentExtractor
	search      interfaces.SearchProvider
	storage     interfaces.AnalysisStorage
	reliable    []string
	searchLimit int
}

// NewService creates a new analysis service. Storage may be nil, in which
// case analyses are not persisted.
func NewService(
	deps interfaces.Dependencies,
	extractor interfaces.ContentExtractor,
	search interfaces.SearchProvider,
	storage interfaces.AnalysisStorage,
	cfg Config,
) *Service {
	limit := cfg.SearchResultLimit
	if limit < 1 {
		limit = 8
	}

	reliable := make([]string, 0, len(defaultReliableDomains)+len(cfg.ExtraReliableDomains))
	reliable = append(reliable, defaultReliableDomains...)
	reliable = append(reliable, cfg.ExtraReliableDomains...)

	return &Service{
		deps:        deps,
		extractor:   extractor,
		search:      search,
		storage:     storage,
		reliable:    reliable,
		searchLimit: limit,
	}
}

// Analyze runs the full credibility pipeline for a URL or text snippet
func (s *Service) Analyze(ctx context.Context, urlOrText string) (*domain.AnalysisResult, error) {
	input := strings.TrimSpace(urlOrText)
	if input == "" {
		return nil, &coreerrors.ValidationError{
			Field:   "url_or_text",
			Message: "cannot be empty",
		}
	}

	cacheKey := analysisCacheKey(input)
	if cached := s.cachedResult(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	result := s.analyze(ctx, input)

	s.cacheResult(ctx, cacheKey, result)
	s.persist(ctx, input, result)

	return result, nil
}

// analyze applies the scoring heuristics; it never fails, only degrades
func (s *Service) analyze(ctx context.Context, input string) *domain.AnalysisResult {
	raw := 0
	var factors []string
	details := domain.AnalysisDetails{}

	isURL := extract.IsURL(input)
	content := s.extractor.Extract(ctx, input)
	details.ExtractionMethod = content.Method
	details.ContentLength = len(content.Content)

	var summary, searchQuery string
	if isURL {
		summary = buildSummary(content.Title, content.Content)

		host := hostnameOf(input)
		details.OriginalDomain = host
		if isReliableDomain(host, s.reliable) {
			factors = append(factors, "Known and reliable source")
			raw += adjReliableSource
		} else {
			factors = append(factors, "Unknown or unverified source")
			raw += adjUnknownSource
		}

		searchQuery = content.Title
		if searchQuery == "" || content.Method == domain.ExtractMethodFailed {
			searchQuery = truncateRunes(input, textQueryLength)
		}
	} else {
		summary = truncateRunes(input, summaryLength) + "..."
		searchQuery = truncateRunes(input, textQueryLength)
	}

	// Sensationalist language
	fullText := content.Title + " " + content.Content
	if !isURL {
		fullText = input
	}
	matches := matchSensational(fullText)
	if len(matches) > 0 {
		factors = append(factors, "Sensationalist language detected: "+strings.Join(matches, ", "))
		raw += adjPerSensationalMatch * len(matches)
		details.SuspiciousPatterns = len(matches)
	}

	// Cross-check against external coverage
	sources := s.crossCheck(ctx, searchQuery, &raw, &factors, &details)

	// Content quality signals
	if len(content.Content) < minTrustedContentLength {
		factors = append(factors, "Content too short for thorough verification")
		raw += adjShortContent
	}

	if len(content.Authors) > 0 {
		factors = append(factors, "Author identified")
		raw += adjAuthorKnown
	} else {
		factors = append(factors, "No author identified")
		raw += adjAuthorUnknown
	}

	if content.PublishDate != "" {
		factors = append(factors, "Publication date identified")
		raw += adjDateKnown
	} else {
		factors = append(factors, "No publication date identified")
		raw += adjDateUnknown
	}

	return &domain.AnalysisResult{
		SuspicionScore: domain.ClampScore(raw + scoreBase),
		ContentSummary: summary,
		Factors:        factors,
		SourcesChecked: sources,
		Details:        details,
	}
}

// crossCheck searches for related coverage and scores corroboration.
// Returns the checked source URLs, capped at maxReportedSources.
func (s *Service) crossCheck(ctx context.Context, query string, raw *int, factors *[]string, details *domain.AnalysisDetails) []string {
	results, err := s.search.Search(ctx, query, s.searchLimit)
	if err != nil {
		s.deps.Logger.Warn("Cross-check search failed", map[string]interface{}{
			"provider": s.search.Name(),
			"error":    err.Error(),
		})
		*factors = append(*factors, "Could not verify against external sources")
		*raw += adjSearchFailed
		return nil
	}

	if len(results) == 0 {
		*factors = append(*factors, "No additional coverage found")
		*raw += adjNoCoverage
		return nil
	}

	confirmations := 0
	sources := make([]string, 0, len(results))
	for _, r := range results {
		sources = append(sources, r.URL)
		if isReliableDomain(hostnameOf(r.URL), s.reliable) {
			confirmations++
		}
	}

	switch {
	case confirmations >= 2:
		*factors = append(*factors, fmt.Sprintf("%d reliable sources report similar information", confirmations))
		*raw += adjStrongCorroboration
	case confirmations == 1:
		*factors = append(*factors, "Only one reliable source found")
		*raw += adjWeakCorroboration
	default:
		*factors = append(*factors, "No reliable sources corroborate the information")
		*raw += adjNoCorroboration
	}

	details.ReliableConfirmations = confirmations
	details.TotalResults = len(results)

	if len(sources) > maxReportedSources {
		sources = sources[:maxReportedSources]
	}
	return sources
}

// cachedResult returns a previously computed result for the key, if any
func (s *Service) cachedResult(ctx context.Context, key string) *domain.AnalysisResult {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil
	}
	return &result
}

func (s *Service) cacheResult(ctx context.Context, key string, result *domain.AnalysisResult) {
	if s.deps.Cache == nil {
		return
	}

	if data, err := json.Marshal(result); err == nil {
		_ = s.deps.Cache.Set(ctx, key, data, cacheTTL)
	}
}

// persist stores the finished analysis; storage failures are logged, never fatal
func (s *Service) persist(ctx context.Context, input string, result *domain.AnalysisResult) {
	if s.storage == nil {
		return
	}

	record := &domain.AnalysisRecord{
		Input:     input,
		Result:    *result,
		CreatedAt: time.Now(),
	}

	if err := s.storage.Save(ctx, record); err != nil {
		s.deps.Logger.Error("Failed to store analysis", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func analysisCacheKey(input string) string {
	sum := sha1.Sum([]byte(input))
	return "analysis:" + hex.EncodeToString(sum[:])
}

// buildSummary joins title and leading content into a short synopsis
func buildSummary(title, content string) string {
	lead := truncateRunes(content, summaryLength)
	if title == "" {
		return lead + "..."
	}
	return title + ": " + lead + "..."
}

// truncateRunes cuts a string to at most n runes without splitting multibyte characters
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
