package driving

import "github.com/makechair/text-analyzer/internal/core/domain"

// ConcordanceService builds per-variant sentence listings.
// Calls are synchronous and have no side effects.
type ConcordanceService interface {
	// Concordance builds the view for a reading of the given result.
	// An unknown reading yields an empty view.
	Concordance(result *domain.AnalysisResult, reading string) domain.ConcordanceView

	// ForLast builds the view against the last successful analysis.
	// Returns domain.ErrNoResult when no analysis has succeeded.
	ForLast(reading string) (domain.ConcordanceView, error)

	// List returns the word list of a result filtered for display.
	List(result *domain.AnalysisResult, opts domain.ListOptions) []domain.CategoryGroups
}
