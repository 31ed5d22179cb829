package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driven"
	"github.com/makechair/text-analyzer/internal/core/ports/driving"
	"github.com/makechair/text-analyzer/internal/logger"
	"github.com/makechair/text-analyzer/internal/pipeline"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService runs the notation-variant pipeline. One run at a time;
// the last successful result is kept for concordance lookups.
type AnalysisService struct {
	tokenizer *TokenizerHandle
	settings  driving.SettingsService
	reports   driven.ReportStore

	busy atomic.Bool

	mu   sync.RWMutex
	last *domain.AnalysisResult

	now   func() time.Time
	newID func() string
}

// NewAnalysisService creates an analysis service. settings supplies the
// default options and may be nil; reports may be nil to disable history.
func NewAnalysisService(
	tokenizer *TokenizerHandle,
	settings driving.SettingsService,
	reports driven.ReportStore,
) *AnalysisService {
	return &AnalysisService{
		tokenizer: tokenizer,
		settings:  settings,
		reports:   reports,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// Analyze runs the pipeline over req.Text on the calling goroutine.
func (s *AnalysisService) Analyze(ctx context.Context, req driving.AnalyzeRequest) (*domain.AnalysisResult, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, domain.ErrAnalysisInProgress
	}
	defer s.busy.Store(false)

	logger.Section("Analysis")
	defer logger.Timed("analysis")()

	if s.tokenizer == nil {
		return nil, fmt.Errorf("analyze: %w", domain.ErrTokenizerInit)
	}
	tok, err := s.tokenizer.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	opts := s.options(req)
	logger.Debug("Options: exclude_symbols=%t, category_order=%s", opts.Filter.ExcludeSymbols, opts.CategoryOrder)

	result, err := s.run(ctx, tok, req.Text, opts)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	result.ID = s.newID()
	result.Source = req.Source
	result.CreatedAt = s.now().UTC()

	s.mu.Lock()
	s.last = result
	s.mu.Unlock()

	logger.Info("Analysed %d sentences: %d groups, %d with variants",
		len(result.Sentences), result.GroupCount(), result.VariantGroupCount())

	if s.reports != nil {
		if err := s.reports.Save(ctx, domain.NewReport(result)); err != nil {
			logger.Warn("Saving report %s failed: %v", result.ID, err)
		}
	}

	return result, nil
}

// run calls the pipeline, turning a panic from the tokenizer or a stage
// into ErrAnalysisFailure.
func (s *AnalysisService) run(
	ctx context.Context,
	tok driven.Tokenizer,
	text string,
	opts domain.AnalysisOptions,
) (result *domain.AnalysisResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("pipeline panic: %v: %w", r, domain.ErrAnalysisFailure)
		}
	}()
	return pipeline.Run(ctx, tok, text, opts)
}

// AnalyzeAsync runs Analyze on a new goroutine. The channel receives one
// outcome and is closed.
func (s *AnalysisService) AnalyzeAsync(ctx context.Context, req driving.AnalyzeRequest) <-chan driving.AnalysisOutcome {
	out := make(chan driving.AnalysisOutcome, 1)
	go func() {
		defer close(out)
		result, err := s.Analyze(ctx, req)
		out <- driving.AnalysisOutcome{Result: result, Err: err}
	}()
	return out
}

// Last returns the most recent successful result, or nil.
func (s *AnalysisService) Last() *domain.AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// Busy reports whether a run is in flight.
func (s *AnalysisService) Busy() bool {
	return s.busy.Load()
}

// Warm starts loading the tokenizer in the background.
func (s *AnalysisService) Warm() {
	if s.tokenizer != nil {
		s.tokenizer.Warm()
	}
}

func (s *AnalysisService) options(req driving.AnalyzeRequest) domain.AnalysisOptions {
	if req.Options != nil {
		opts := *req.Options
		if !opts.CategoryOrder.IsValid() {
			opts.CategoryOrder = domain.CategoryOrderPriority
		}
		return opts
	}
	if s.settings == nil {
		return domain.DefaultAnalysisOptions()
	}
	settings, err := s.settings.Get()
	if err != nil {
		logger.Warn("Reading settings failed, using defaults: %v", err)
		return domain.DefaultAnalysisOptions()
	}
	return settings.AnalysisOptions()
}
