package driving

import (
	"context"

	"github.com/makechair/text-analyzer/internal/core/domain"
)

// AnalysisService runs the notation-variant pipeline.
type AnalysisService interface {
	// Analyze runs the pipeline over text and returns the result.
	// Only one run may be in flight; a concurrent call fails with
	// domain.ErrAnalysisInProgress. A failed run leaves Last unchanged.
	Analyze(ctx context.Context, req AnalyzeRequest) (*domain.AnalysisResult, error)

	// AnalyzeAsync starts a run in the background. The returned channel
	// yields exactly one outcome and is then closed.
	AnalyzeAsync(ctx context.Context, req AnalyzeRequest) <-chan AnalysisOutcome

	// Last returns the most recent successful result, or nil.
	Last() *domain.AnalysisResult

	// Busy reports whether a run is in flight.
	Busy() bool

	// Warm starts loading the tokenizer in the background.
	Warm()
}

// AnalyzeRequest describes one analysis run.
type AnalyzeRequest struct {
	// Text is the decoded input.
	Text string

	// Source names the input for display and history.
	Source string

	// Options override the configured analysis options when non-nil.
	Options *domain.AnalysisOptions
}

// AnalysisOutcome is the result of an asynchronous run.
type AnalysisOutcome struct {
	Result *domain.AnalysisResult
	Err    error
}
