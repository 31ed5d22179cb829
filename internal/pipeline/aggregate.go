package pipeline

import (
	"slices"

	"github.com/makechair/text-analyzer/internal/core/domain"
)

// Aggregator folds admitted tokens into reading groups.
// Readings and variants keep first-seen order. Each group's sentence
// indices stay sorted and free of duplicates.
type Aggregator struct {
	groups    []domain.ReadingGroup
	byReading map[string]int
	variants  []map[string]int
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		byReading: make(map[string]int),
	}
}

// Add records one occurrence of tok in the given sentence.
func (a *Aggregator) Add(sentence int, tok domain.Token) {
	gi, ok := a.byReading[tok.Reading]
	if !ok {
		gi = len(a.groups)
		a.byReading[tok.Reading] = gi
		a.groups = append(a.groups, domain.ReadingGroup{Reading: tok.Reading})
		a.variants = append(a.variants, make(map[string]int))
	}
	g := &a.groups[gi]

	vi, ok := a.variants[gi][tok.Surface]
	if !ok {
		vi = len(g.Variants)
		a.variants[gi][tok.Surface] = vi
		g.Variants = append(g.Variants, domain.VariantStat{
			Word:     tok.Surface,
			Category: Categorize(tok),
			BaseForm: tok.BaseForm,
		})
	}

	g.Variants[vi].Count++
	g.TotalCount++
	g.SentenceIndices = insertIndex(g.SentenceIndices, sentence)
}

// insertIndex adds i to the sorted set indices.
func insertIndex(indices []int, i int) []int {
	if n := len(indices); n == 0 || indices[n-1] < i {
		return append(indices, i)
	}
	pos, found := slices.BinarySearch(indices, i)
	if found {
		return indices
	}
	return slices.Insert(indices, pos, i)
}

// Len returns the number of distinct readings seen.
func (a *Aggregator) Len() int {
	return len(a.groups)
}

// Groups returns the reading groups in first-seen order.
func (a *Aggregator) Groups() []domain.ReadingGroup {
	out := make([]domain.ReadingGroup, len(a.groups))
	copy(out, a.groups)
	return out
}

// Aggregate admits and folds the tokens of each sentence.
// tokens[i] holds the tokens of sentence i.
func Aggregate(tokens [][]domain.Token, policy domain.FilterPolicy) []domain.ReadingGroup {
	agg := NewAggregator()
	for i, sentence := range tokens {
		for _, tok := range sentence {
			if Admit(tok, policy) {
				agg.Add(i, tok)
			}
		}
	}
	return agg.Groups()
}
