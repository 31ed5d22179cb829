package services

import (
	"context"

	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driven"
	"github.com/makechair/text-analyzer/internal/core/ports/driving"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService exposes the analysis history. A nil store disables it:
// listings are empty and lookups report domain.ErrNotFound.
type ReportService struct {
	store driven.ReportStore
}

// NewReportService creates a report service.
func NewReportService(store driven.ReportStore) *ReportService {
	return &ReportService{store: store}
}

// Enabled reports whether history is being recorded.
func (s *ReportService) Enabled() bool {
	return s.store != nil
}

// List returns recent reports, newest first.
func (s *ReportService) List(ctx context.Context, limit int) ([]domain.Report, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.List(ctx, limit)
}

// Get retrieves a report with its full result.
func (s *ReportService) Get(ctx context.Context, id string) (*domain.Report, error) {
	if s.store == nil {
		return nil, domain.ErrNotFound
	}
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.Get(ctx, id)
}

// FindWord returns reports containing word.
func (s *ReportService) FindWord(ctx context.Context, word string, limit int) ([]domain.Report, error) {
	if word == "" {
		return nil, domain.ErrInvalidInput
	}
	if s.store == nil {
		return nil, nil
	}
	return s.store.FindWord(ctx, word, limit)
}

// Delete removes a report. Deleting an unknown ID is an error here so
// that the CLI can tell the user.
func (s *ReportService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotFound
	}
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}
