package pipeline

import (
	"sort"

	"github.com/makechair/text-analyzer/internal/core/domain"
)

// Significant reports whether a group is worth showing.
// A group is discarded only when it was seen once in a single form.
func Significant(g domain.ReadingGroup) bool {
	return !(g.TotalCount <= 1 && len(g.Variants) == 1)
}

// Display converts a reading group into its presentation form.
// Variants are ordered by descending count, ties keeping first-seen order,
// and the top variant supplies the primary word and category.
func Display(g domain.ReadingGroup) domain.DisplayGroup {
	stats := make([]domain.VariantStat, len(g.Variants))
	copy(stats, g.Variants)
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	variants := make([]domain.Variant, len(stats))
	for i, s := range stats {
		variants[i] = domain.Variant{Word: s.Word, Count: s.Count}
	}

	dg := domain.DisplayGroup{
		Reading:    g.Reading,
		TotalCount: g.TotalCount,
		Variants:   variants,
	}
	if len(stats) > 0 {
		dg.PrimaryWord = stats[0].Word
		dg.Category = stats[0].Category
	}
	return dg
}

// Partition drops insignificant groups and buckets the rest by category.
// Buckets and their groups keep first-seen order; Order sorts them.
// The returned map holds the sentence indices of every retained reading.
func Partition(groups []domain.ReadingGroup) ([]domain.CategoryGroups, map[string][]int) {
	var buckets []domain.CategoryGroups
	index := make(map[domain.Category]int)
	sentenceMap := make(map[string][]int)

	for _, g := range groups {
		if !Significant(g) {
			continue
		}
		dg := Display(g)

		bi, ok := index[dg.Category]
		if !ok {
			bi = len(buckets)
			index[dg.Category] = bi
			buckets = append(buckets, domain.CategoryGroups{Category: dg.Category})
		}
		buckets[bi].Groups = append(buckets[bi].Groups, dg)

		indices := make([]int, len(g.SentenceIndices))
		copy(indices, g.SentenceIndices)
		sentenceMap[g.Reading] = indices
	}

	return buckets, sentenceMap
}
