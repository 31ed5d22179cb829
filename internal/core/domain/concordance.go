package domain

// ConcordanceEntry holds the sentences attributed to one variant word.
type ConcordanceEntry struct {
	Word      string     `json:"word" yaml:"word"`
	Sentences []Sentence `json:"sentences" yaml:"sentences"`
}

// ConcordanceView lists, for one reading, the sentences in which each
// variant appears. Entries follow the group's variant order and each
// sentence is attributed to at most one entry. Variants with no
// sentences are omitted.
type ConcordanceView struct {
	Reading string             `json:"reading" yaml:"reading"`
	Entries []ConcordanceEntry `json:"entries" yaml:"entries"`
}

// Sentences returns the sentences attributed to word.
func (v ConcordanceView) Sentences(word string) []Sentence {
	for _, e := range v.Entries {
		if e.Word == word {
			return e.Sentences
		}
	}
	return nil
}

// Words returns the variant words present in the view, in order.
func (v ConcordanceView) Words() []string {
	words := make([]string, len(v.Entries))
	for i, e := range v.Entries {
		words[i] = e.Word
	}
	return words
}

// Len returns the total number of attributed sentences.
func (v ConcordanceView) Len() int {
	n := 0
	for _, e := range v.Entries {
		n += len(e.Sentences)
	}
	return n
}
