package mcp

import (
	"context"

	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driving"
	"github.com/makechair/text-analyzer/internal/pipeline"
)

// mockAnalysisService is a mock implementation of driving.AnalysisService.
type mockAnalysisService struct {
	result *domain.AnalysisResult
	last   *domain.AnalysisResult
	err    error

	requests []driving.AnalyzeRequest
}

func (m *mockAnalysisService) Analyze(_ context.Context, req driving.AnalyzeRequest) (*domain.AnalysisResult, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	m.last = m.result
	return m.result, nil
}

func (m *mockAnalysisService) AnalyzeAsync(ctx context.Context, req driving.AnalyzeRequest) <-chan driving.AnalysisOutcome {
	out := make(chan driving.AnalysisOutcome, 1)
	result, err := m.Analyze(ctx, req)
	out <- driving.AnalysisOutcome{Result: result, Err: err}
	close(out)
	return out
}

func (m *mockAnalysisService) Last() *domain.AnalysisResult { return m.last }

func (m *mockAnalysisService) Busy() bool { return false }

func (m *mockAnalysisService) Warm() {}

// pipelineConcordance implements driving.ConcordanceService over the
// pipeline functions.
type pipelineConcordance struct {
	analysis driving.AnalysisService
}

func (c *pipelineConcordance) Concordance(result *domain.AnalysisResult, reading string) domain.ConcordanceView {
	return pipeline.BuildConcordance(result, reading)
}

func (c *pipelineConcordance) ForLast(reading string) (domain.ConcordanceView, error) {
	last := c.analysis.Last()
	if last == nil {
		return domain.ConcordanceView{}, domain.ErrNoResult
	}
	return pipeline.BuildConcordance(last, reading), nil
}

func (c *pipelineConcordance) List(result *domain.AnalysisResult, opts domain.ListOptions) []domain.CategoryGroups {
	return pipeline.Select(result, opts)
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	document *domain.Document
	err      error
}

func (m *mockDocumentService) Load(_ context.Context, _ string) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) Decode(_ context.Context, _ *domain.RawDocument) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) Expand(args []string) ([]string, error) {
	return args, m.err
}

func (m *mockDocumentService) SupportedMIMETypes() []string {
	return []string{"text/plain"}
}

// mockReportService is a mock implementation of driving.ReportService.
type mockReportService struct {
	reports []domain.Report
	report  *domain.Report
	enabled bool
	err     error
}

func (m *mockReportService) List(_ context.Context, _ int) ([]domain.Report, error) {
	return m.reports, m.err
}

func (m *mockReportService) Get(_ context.Context, _ string) (*domain.Report, error) {
	return m.report, m.err
}

func (m *mockReportService) FindWord(_ context.Context, _ string, _ int) ([]domain.Report, error) {
	return m.reports, m.err
}

func (m *mockReportService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockReportService) Enabled() bool { return m.enabled }

func sampleResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		ID:     "run-1",
		Source: "story.txt",
		Categories: []domain.CategoryGroups{
			{
				Category: domain.CategoryNoun,
				Groups: []domain.DisplayGroup{
					{
						Reading:     "リンゴ",
						PrimaryWord: "りんご",
						TotalCount:  3,
						Variants:    []domain.Variant{{Word: "りんご", Count: 2}, {Word: "林檎", Count: 1}},
						Category:    domain.CategoryNoun,
					},
					{
						Reading:     "ネコ",
						PrimaryWord: "猫",
						TotalCount:  2,
						Variants:    []domain.Variant{{Word: "猫", Count: 2}},
						Category:    domain.CategoryNoun,
					},
				},
			},
		},
		Sentences: []domain.Sentence{
			{Index: 0, Line: 1, Text: "りんごを食べた。"},
			{Index: 1, Line: 2, Text: "林檎と猫。"},
			{Index: 2, Line: 3, Text: "りんごと猫。"},
		},
		SentenceMap: map[string][]int{"リンゴ": {0, 1, 2}, "ネコ": {1, 2}},
	}
}

func newTestServer(analysis *mockAnalysisService, extra ...func(*Ports)) (*Server, error) {
	ports := &Ports{
		Analysis:    analysis,
		Concordance: &pipelineConcordance{analysis: analysis},
	}
	for _, fn := range extra {
		fn(ports)
	}
	return NewServer(ports)
}
