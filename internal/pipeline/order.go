package pipeline

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/makechair/text-analyzer/internal/core/domain"
)

// collator compares strings in Japanese order with a byte-order
// tie-break, so equal-collating strings still sort deterministically.
// A Collator is not safe for concurrent use; create one per call.
type collator struct {
	c *collate.Collator
}

func newCollator() collator {
	return collator{c: collate.New(language.Japanese)}
}

func (c collator) compare(a, b string) int {
	if r := c.c.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}

func (c collator) less(a, b string) bool {
	return c.compare(a, b) < 0
}

// CompareReadings orders two readings in Japanese collation order.
func CompareReadings(a, b string) int {
	return newCollator().compare(a, b)
}

// Order returns a copy of categories sorted for display.
// Categories follow the chosen policy; groups within each category are
// sorted by reading.
func Order(categories []domain.CategoryGroups, policy domain.CategoryOrder) []domain.CategoryGroups {
	col := newCollator()

	out := make([]domain.CategoryGroups, len(categories))
	for i, cg := range categories {
		groups := make([]domain.DisplayGroup, len(cg.Groups))
		copy(groups, cg.Groups)
		sort.SliceStable(groups, func(a, b int) bool {
			return col.less(groups[a].Reading, groups[b].Reading)
		})
		out[i] = domain.CategoryGroups{Category: cg.Category, Groups: groups}
	}

	rank := categoryRank(policy)
	sort.SliceStable(out, func(a, b int) bool {
		ra, rb := rank(out[a].Category), rank(out[b].Category)
		if ra != rb {
			return ra < rb
		}
		return col.less(out[a].Category.String(), out[b].Category.String())
	})

	return out
}

// categoryRank returns a ranking function for the policy. Lower ranks
// sort first; equal ranks fall back to collation of the label.
func categoryRank(policy domain.CategoryOrder) func(domain.Category) int {
	if policy == domain.CategoryOrderCollation {
		return func(domain.Category) int { return 0 }
	}

	ranks := make(map[domain.Category]int, len(domain.PriorityCategories))
	for i, c := range domain.PriorityCategories {
		ranks[c] = i
	}
	unknown := len(domain.PriorityCategories)
	return func(c domain.Category) int {
		if r, ok := ranks[c]; ok {
			return r
		}
		return unknown
	}
}
