package pipeline

import (
	"sort"
	"strings"

	"golang.org/x/text/width"

	"github.com/makechair/text-analyzer/internal/core/domain"
)

// Select returns the word list of a result filtered and sorted for display.
// The result itself is not modified. Categories left empty are dropped.
func Select(result *domain.AnalysisResult, opts domain.ListOptions) []domain.CategoryGroups {
	if result == nil {
		return nil
	}
	query := foldKana(strings.TrimSpace(opts.Query))

	var out []domain.CategoryGroups
	for _, cg := range result.Categories {
		var groups []domain.DisplayGroup
		for _, g := range cg.Groups {
			if !opts.ShowAll && !g.HasVariants() {
				continue
			}
			if query != "" && !matchesQuery(g, query) {
				continue
			}
			groups = append(groups, g)
		}
		if len(groups) == 0 {
			continue
		}
		sortGroups(groups, opts.Sort)
		out = append(out, domain.CategoryGroups{Category: cg.Category, Groups: groups})
	}

	return out
}

// sortGroups reorders groups in place. Groups arrive in reading order,
// so a stable frequency sort keeps reading order among equal counts.
func sortGroups(groups []domain.DisplayGroup, order domain.SortOrder) {
	switch order {
	case domain.SortFreqDesc:
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].TotalCount > groups[j].TotalCount
		})
	case domain.SortFreqAsc:
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].TotalCount < groups[j].TotalCount
		})
	default:
		col := newCollator()
		sort.SliceStable(groups, func(i, j int) bool {
			return col.less(groups[i].Reading, groups[j].Reading)
		})
	}
}

// matchesQuery reports whether the folded query occurs in the reading
// or any variant of g.
func matchesQuery(g domain.DisplayGroup, query string) bool {
	if strings.Contains(foldKana(g.Reading), query) {
		return true
	}
	for _, v := range g.Variants {
		if strings.Contains(foldKana(v.Word), query) {
			return true
		}
	}
	return false
}

// foldKana normalises width and maps katakana to hiragana so that
// ｶﾀｶﾅ, カタカナ and かたかな compare equal.
func foldKana(s string) string {
	s = width.Fold.String(s)
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return strings.ToLower(string(runes))
}
