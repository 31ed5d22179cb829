package pipeline

import (
	"strings"

	"github.com/makechair/text-analyzer/internal/core/domain"
)

// BuildConcordance attributes the sentences of a reading to its variants.
//
// Variants are tried in the group's stored order, and each sentence goes
// to the first variant whose surface form occurs in it as a substring.
// A sentence is claimed at most once. Variants that claim nothing are
// left out. An unknown reading yields an empty view.
func BuildConcordance(result *domain.AnalysisResult, reading string) domain.ConcordanceView {
	view := domain.ConcordanceView{Reading: reading}

	group, ok := result.Group(reading)
	if !ok {
		return view
	}
	indices := result.SentenceMap[reading]
	claimed := make(map[int]bool, len(indices))

	for _, v := range group.Variants {
		var sentences []domain.Sentence
		for _, idx := range indices {
			if claimed[idx] || idx < 0 || idx >= len(result.Sentences) {
				continue
			}
			s := result.Sentences[idx]
			if strings.Contains(s.Text, v.Word) {
				claimed[idx] = true
				sentences = append(sentences, s)
			}
		}
		if len(sentences) > 0 {
			view.Entries = append(view.Entries, domain.ConcordanceEntry{
				Word:      v.Word,
				Sentences: sentences,
			})
		}
	}

	return view
}
