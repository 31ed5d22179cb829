package domain

import "time"

// Report is a persisted analysis result.
type Report struct {
	// ID matches the AnalysisResult ID.
	ID string `json:"id"`

	// Source names the analysed input.
	Source string `json:"source"`

	// SentenceCount is the number of segmented sentences.
	SentenceCount int `json:"sentence_count"`

	// GroupCount is the number of retained reading groups.
	GroupCount int `json:"group_count"`

	// VariantGroupCount is the number of groups with several surface forms.
	VariantGroupCount int `json:"variant_group_count"`

	// CreatedAt is when the analysis finished.
	CreatedAt time.Time `json:"created_at"`

	// Result is the full result. Nil in listings.
	Result *AnalysisResult `json:"result,omitempty"`
}

// NewReport builds a report from a result.
func NewReport(r *AnalysisResult) Report {
	return Report{
		ID:                r.ID,
		Source:            r.Source,
		SentenceCount:     len(r.Sentences),
		GroupCount:        r.GroupCount(),
		VariantGroupCount: r.VariantGroupCount(),
		CreatedAt:         r.CreatedAt,
		Result:            r,
	}
}
