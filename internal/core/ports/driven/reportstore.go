package driven

import (
	"context"

	"github.com/makechair/text-analyzer/internal/core/domain"
)

// ReportStore persists analysis reports.
// Backed by SQLite for history, or memory for tests.
type ReportStore interface {
	// Save stores or replaces a report.
	Save(ctx context.Context, report domain.Report) error

	// Get retrieves a report with its full result.
	// Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.Report, error)

	// List returns reports newest first, without results.
	// A limit of zero or less returns every report.
	List(ctx context.Context, limit int) ([]domain.Report, error)

	// FindWord returns reports whose result contains the surface form
	// word, newest first, without results.
	FindWord(ctx context.Context, word string, limit int) ([]domain.Report, error)

	// Delete removes a report. Deleting an absent report is not an error.
	Delete(ctx context.Context, id string) error
}
