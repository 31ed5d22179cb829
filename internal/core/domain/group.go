package domain

// VariantStat records one surface form observed for a reading.
type VariantStat struct {
	// Word is the surface form.
	Word string

	// Count is the number of occurrences.
	Count int

	// Category is the display category of the first occurrence.
	Category Category

	// BaseForm is the dictionary form of the first occurrence.
	BaseForm string
}

// ReadingGroup aggregates every surface form sharing one reading.
// Variants are kept in first-seen order.
type ReadingGroup struct {
	// Reading is the shared phonetic reading.
	Reading string

	// TotalCount is the sum of all variant counts.
	TotalCount int

	// Variants holds one entry per distinct surface form.
	Variants []VariantStat

	// SentenceIndices is the ascending, duplicate-free list of sentences
	// containing at least one token with this reading.
	SentenceIndices []int
}

// Variant is a surface form and its occurrence count.
type Variant struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// DisplayGroup is a reading group prepared for presentation.
// Variants are sorted by descending count, ties kept in first-seen order.
type DisplayGroup struct {
	// Reading is the shared phonetic reading.
	Reading string `json:"reading" yaml:"reading"`

	// PrimaryWord is the most frequent surface form.
	PrimaryWord string `json:"primary_word" yaml:"primary_word"`

	// TotalCount is the sum of all variant counts.
	TotalCount int `json:"total_count" yaml:"total_count"`

	// Variants lists every surface form.
	Variants []Variant `json:"variants" yaml:"variants"`

	// Category is taken from the primary word.
	Category Category `json:"category" yaml:"category"`
}

// HasVariants reports whether the group has more than one surface form.
func (g DisplayGroup) HasVariants() bool {
	return len(g.Variants) > 1
}

// Words returns the surface forms in display order.
func (g DisplayGroup) Words() []string {
	words := make([]string, len(g.Variants))
	for i, v := range g.Variants {
		words[i] = v.Word
	}
	return words
}

// CategoryGroups is one category bucket of display groups.
type CategoryGroups struct {
	Category Category       `json:"category" yaml:"category"`
	Groups   []DisplayGroup `json:"groups" yaml:"groups"`
}
