package pipeline

import (
	"context"
	"fmt"

	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driven"
	"github.com/makechair/text-analyzer/internal/logger"
)

// Run executes every stage over text and returns the ordered result.
// The context is checked between sentences; cancellation abandons the
// run without a partial result. ID, Source and CreatedAt are left for
// the caller to fill.
func Run(ctx context.Context, tok driven.Tokenizer, text string, opts domain.AnalysisOptions) (*domain.AnalysisResult, error) {
	if tok == nil {
		return nil, fmt.Errorf("run pipeline: %w", domain.ErrTokenizerInit)
	}

	sentences := SplitSentences(text)
	logger.Debug("Segmented %d sentences", len(sentences))

	agg := NewAggregator()
	admitted := 0
	for _, s := range sentences {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, t := range tok.Tokenize(s.Text) {
			if Admit(t, opts.Filter) {
				agg.Add(s.Index, t)
				admitted++
			}
		}
	}
	logger.Debug("Admitted %d tokens into %d readings", admitted, agg.Len())

	buckets, sentenceMap := Partition(agg.Groups())
	categories := Order(buckets, opts.CategoryOrder)
	logger.Debug("Retained %d readings in %d categories", len(sentenceMap), len(categories))

	if sentences == nil {
		sentences = []domain.Sentence{}
	}
	return &domain.AnalysisResult{
		Categories:  categories,
		Sentences:   sentences,
		SentenceMap: sentenceMap,
	}, nil
}
