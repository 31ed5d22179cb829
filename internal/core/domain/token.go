package domain

// Token is a single morphological unit produced by the tokenizer.
type Token struct {
	// Surface is the literal text as written.
	Surface string

	// Reading is the phonetic reading in katakana. Empty or "*" means unknown.
	Reading string

	// PartOfSpeech is the hierarchical part-of-speech label.
	// Index 0 is the major class; 1 and 2 are subdivisions.
	PartOfSpeech []string

	// BaseForm is the dictionary form of the word.
	BaseForm string
}

// POS returns the part-of-speech label at the given level,
// or an empty string when the level is absent.
func (t Token) POS(level int) string {
	if level < 0 || level >= len(t.PartOfSpeech) {
		return ""
	}
	return t.PartOfSpeech[level]
}

// HasReading reports whether the token carries a usable reading.
func (t Token) HasReading() bool {
	return t.Reading != "" && t.Reading != "*"
}
