package services

import (
	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driving"
	"github.com/makechair/text-analyzer/internal/pipeline"
)

// Ensure ConcordanceService implements the interface.
var _ driving.ConcordanceService = (*ConcordanceService)(nil)

// ConcordanceService builds read-only views over analysis results.
type ConcordanceService struct {
	analysis driving.AnalysisService
}

// NewConcordanceService creates a concordance service. analysis provides
// the last result for ForLast and may be nil.
func NewConcordanceService(analysis driving.AnalysisService) *ConcordanceService {
	return &ConcordanceService{analysis: analysis}
}

// Concordance builds the view for reading.
func (s *ConcordanceService) Concordance(result *domain.AnalysisResult, reading string) domain.ConcordanceView {
	return pipeline.BuildConcordance(result, reading)
}

// ForLast builds the view against the last successful analysis.
func (s *ConcordanceService) ForLast(reading string) (domain.ConcordanceView, error) {
	if s.analysis == nil {
		return domain.ConcordanceView{}, domain.ErrNoResult
	}
	last := s.analysis.Last()
	if last == nil {
		return domain.ConcordanceView{}, domain.ErrNoResult
	}
	return pipeline.BuildConcordance(last, reading), nil
}

// List returns the word list of result filtered and sorted for display.
func (s *ConcordanceService) List(result *domain.AnalysisResult, opts domain.ListOptions) []domain.CategoryGroups {
	return pipeline.Select(result, opts)
}
