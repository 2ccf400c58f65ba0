// ABOUTME: Mappers between domain models and API DTOs
// ABOUTME: Converts analysis results and history records to wire format

package mappers

import (
	"newssniff-api/api/dto/responses"
	"newssniff-api/core/domain"
)

// ToAnalyzeResponse converts a domain analysis result to its wire format
func ToAnalyzeResponse(result *domain.AnalysisResult) responses.AnalyzeResponse {
	resp := responses.AnalyzeResponse{
		SuspicionScore: result.SuspicionScore,
		ContentSummary: result.ContentSummary,
		Factors:        result.Factors,
		SourcesChecked: result.SourcesChecked,
		AnalysisDetails: responses.AnalysisDetailsResponse{
			OriginalDomain:          result.Details.OriginalDomain,
			ReliableConfirmations:   result.Details.ReliableConfirmations,
			TotalResults:            result.Details.TotalResults,
			ContentLength:           result.Details.ContentLength,
			SuspiciousPatternsFound: result.Details.SuspiciousPatterns,
			ExtractionMethod:        result.Details.ExtractionMethod,
		},
	}

	// Empty slices serialize as [] rather than null
	if resp.Factors == nil {
		resp.Factors = []string{}
	}
	if resp.SourcesChecked == nil {
		resp.SourcesChecked = []string{}
	}

	return resp
}

// ToHistoryResponse converts stored analysis records to wire format
func ToHistoryResponse(records []domain.AnalysisRecord) responses.HistoryResponse {
	items := make([]responses.HistoryItem, 0, len(records))
	for i := range records {
		r := &records[i]
		items = append(items, responses.HistoryItem{
			ID:        r.ID,
			Input:     r.Input,
			Result:    ToAnalyzeResponse(&r.Result),
			CreatedAt: r.CreatedAt,
		})
	}

	return responses.HistoryResponse{
		Analyses: items,
		Count:    len(items),
	}
}
