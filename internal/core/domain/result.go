package domain

import "time"

// AnalysisResult is the output of one successful analysis run.
// It is immutable once produced.
type AnalysisResult struct {
	// ID is the unique identifier for the run.
	ID string `json:"id" yaml:"id"`

	// Source names the analysed input (file path or "stdin").
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// CreatedAt is when the run finished.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// Categories holds the display groups, categories and groups in display order.
	Categories []CategoryGroups `json:"categories" yaml:"categories"`

	// Sentences is the full segmented sentence list.
	Sentences []Sentence `json:"sentences" yaml:"sentences"`

	// SentenceMap maps each retained reading to its ascending sentence indices.
	SentenceMap map[string][]int `json:"sentence_map" yaml:"sentence_map"`
}

// Group returns the display group for a reading.
func (r *AnalysisResult) Group(reading string) (DisplayGroup, bool) {
	if r == nil {
		return DisplayGroup{}, false
	}
	for _, cg := range r.Categories {
		for _, g := range cg.Groups {
			if g.Reading == reading {
				return g, true
			}
		}
	}
	return DisplayGroup{}, false
}

// GroupCount returns the number of retained reading groups.
func (r *AnalysisResult) GroupCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, cg := range r.Categories {
		n += len(cg.Groups)
	}
	return n
}

// VariantGroupCount returns the number of groups with more than one surface form.
func (r *AnalysisResult) VariantGroupCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, cg := range r.Categories {
		for _, g := range cg.Groups {
			if g.HasVariants() {
				n++
			}
		}
	}
	return n
}

// IsEmpty reports whether the result has no retained groups.
func (r *AnalysisResult) IsEmpty() bool {
	return r.GroupCount() == 0
}
