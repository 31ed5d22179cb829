package driving

import (
	"context"

	"github.com/makechair/text-analyzer/internal/core/domain"
)

// ReportService exposes analysis history.
type ReportService interface {
	// List returns recent reports, newest first, without results.
	List(ctx context.Context, limit int) ([]domain.Report, error)

	// Get retrieves a report with its full result.
	Get(ctx context.Context, id string) (*domain.Report, error)

	// FindWord returns reports containing the surface form word.
	FindWord(ctx context.Context, word string, limit int) ([]domain.Report, error)

	// Delete removes a report.
	Delete(ctx context.Context, id string) error

	// Enabled reports whether history is being recorded.
	Enabled() bool
}
