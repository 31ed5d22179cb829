package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driven"
)

// Ensure ReportStore implements the interface.
var _ driven.ReportStore = (*ReportStore)(nil)

// ReportStore is an in-memory implementation of driven.ReportStore.
type ReportStore struct {
	mu      sync.RWMutex
	reports map[string]domain.Report
}

// NewReportStore creates a new in-memory report store.
func NewReportStore() *ReportStore {
	return &ReportStore{
		reports: make(map[string]domain.Report),
	}
}

// Save stores or replaces a report.
func (s *ReportStore) Save(_ context.Context, report domain.Report) error {
	if report.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[report.ID] = report
	return nil
}

// Get retrieves a report by ID.
func (s *ReportStore) Get(_ context.Context, id string) (*domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &report, nil
}

// List returns reports newest first without their results.
func (s *ReportStore) List(_ context.Context, limit int) ([]domain.Report, error) {
	return s.collect(limit, func(domain.Report) bool { return true }), nil
}

// FindWord returns reports containing word, newest first.
func (s *ReportStore) FindWord(_ context.Context, word string, limit int) ([]domain.Report, error) {
	return s.collect(limit, func(r domain.Report) bool { return containsWord(r.Result, word) }), nil
}

func (s *ReportStore) collect(limit int, keep func(domain.Report) bool) []domain.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]domain.Report, 0, len(s.reports))
	for _, report := range s.reports {
		if !keep(report) {
			continue
		}
		report.Result = nil
		list = append(list, report)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})

	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}

func containsWord(result *domain.AnalysisResult, word string) bool {
	if result == nil {
		return false
	}
	for _, cg := range result.Categories {
		for _, g := range cg.Groups {
			for _, v := range g.Variants {
				if v.Word == word {
					return true
				}
			}
		}
	}
	return false
}

// Delete removes a report.
func (s *ReportStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reports, id)
	return nil
}
