package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/makechair/text-analyzer/internal/adapters/driven/storage/memory"
	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driving"
	"github.com/makechair/text-analyzer/internal/core/services"
)

// MockAnalysisService implements driving.AnalysisService for testing.
type MockAnalysisService struct {
	AnalyzeFunc func(ctx context.Context, req driving.AnalyzeRequest) (*domain.AnalysisResult, error)
	BusyValue   bool

	mu       sync.Mutex
	requests []driving.AnalyzeRequest
	last     *domain.AnalysisResult
	warmed   bool
}

func (m *MockAnalysisService) Analyze(ctx context.Context, req driving.AnalyzeRequest) (*domain.AnalysisResult, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	var (
		result *domain.AnalysisResult
		err    error
	)
	if m.AnalyzeFunc != nil {
		result, err = m.AnalyzeFunc(ctx, req)
	} else {
		result = sampleResult()
		result.Source = req.Source
	}
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.last = result
	m.mu.Unlock()
	return result, nil
}

func (m *MockAnalysisService) AnalyzeAsync(ctx context.Context, req driving.AnalyzeRequest) <-chan driving.AnalysisOutcome {
	ch := make(chan driving.AnalysisOutcome, 1)
	result, err := m.Analyze(ctx, req)
	ch <- driving.AnalysisOutcome{Result: result, Err: err}
	close(ch)
	return ch
}

func (m *MockAnalysisService) Last() *domain.AnalysisResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

func (m *MockAnalysisService) Busy() bool {
	return m.BusyValue
}

func (m *MockAnalysisService) Warm() {
	m.mu.Lock()
	m.warmed = true
	m.mu.Unlock()
}

func (m *MockAnalysisService) Requests() []driving.AnalyzeRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]driving.AnalyzeRequest(nil), m.requests...)
}

// MockDocumentService implements driving.DocumentService for testing.
// Files maps a path to its decoded content.
type MockDocumentService struct {
	Files map[string]string
}

func (m *MockDocumentService) Load(_ context.Context, path string) (*domain.Document, error) {
	content, ok := m.Files[path]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.Document{URI: path, Title: path, Content: content}, nil
}

func (m *MockDocumentService) Decode(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	return &domain.Document{URI: raw.URI, Content: string(raw.Content)}, nil
}

func (m *MockDocumentService) Expand(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if _, ok := m.Files[arg]; ok {
			paths = append(paths, arg)
		}
	}
	return paths, nil
}

func (m *MockDocumentService) SupportedMIMETypes() []string {
	return []string{"text/plain"}
}

// MockFileWatcher implements driven.FileWatcher for testing.
// Each Watch call replays Changes and then closes its channels.
type MockFileWatcher struct {
	Changes []domain.FileChange
	Err     error
}

func (m *MockFileWatcher) Watch(_ context.Context, _ string) (<-chan domain.FileChange, <-chan error, error) {
	if m.Err != nil {
		return nil, nil, m.Err
	}
	changes := make(chan domain.FileChange, len(m.Changes))
	for _, c := range m.Changes {
		changes <- c
	}
	close(changes)
	errs := make(chan error)
	close(errs)
	return changes, errs, nil
}

func sampleResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		ID:        "report-1",
		Source:    "draft.txt",
		CreatedAt: time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC),
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
						TotalCount:  1,
						Variants:    []domain.Variant{{Word: "猫", Count: 1}},
						Category:    domain.CategoryNoun,
					},
				},
			},
		},
		Sentences: []domain.Sentence{
			{Index: 0, Line: 1, Text: "りんごを食べた。"},
			{Index: 1, Line: 2, Text: "林檎が好きだ！"},
			{Index: 2, Line: 4, Text: "猫もりんごを見た。"},
		},
		SentenceMap: map[string][]int{"リンゴ": {0, 1, 2}, "ネコ": {2}},
	}
}

// testServices holds the services installed by setupTestServices.
type testServices struct {
	analysis *MockAnalysisService
	document *MockDocumentService
	reports  *memory.ReportStore
	settings *services.SettingsService
	watcher  *MockFileWatcher
}

// setupTestServices installs test services and returns a cleanup function.
func setupTestServices() func() {
	cleanup, _ := installTestServices()
	return cleanup
}

func installTestServices() (func(), *testServices) {
	old := Services{
		Analysis:    analysisService,
		Concordance: concordanceService,
		Document:    documentService,
		Reports:     reportService,
		Settings:    settingsService,
		Watcher:     fileWatcher,
	}

	ts := &testServices{
		analysis: &MockAnalysisService{},
		document: &MockDocumentService{Files: map[string]string{
			"draft.txt": "りんごを食べた。\n林檎が好きだ！\n\n猫もりんごを見た。",
		}},
		reports:  memory.NewReportStore(),
		settings: services.NewSettingsService(memory.NewConfigStore()),
		watcher:  &MockFileWatcher{},
	}

	SetServices(Services{
		Analysis:    ts.analysis,
		Concordance: services.NewConcordanceService(ts.analysis),
		Document:    ts.document,
		Reports:     services.NewReportService(ts.reports),
		Settings:    ts.settings,
		Watcher:     ts.watcher,
	})

	return func() {
		SetServices(old)
		resetFlags(rootCmd)
	}, ts
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	var in io.Reader = strings.NewReader(stdin)
	rootCmd.SetIn(in)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
