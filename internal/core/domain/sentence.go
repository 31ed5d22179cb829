package domain

// Sentence is one segment of the source text.
type Sentence struct {
	// Index is the zero-based position among retained sentences.
	Index int `json:"index" yaml:"index"`

	// Line is the one-based source line the sentence starts on.
	Line int `json:"line" yaml:"line"`

	// Text is the raw span including its terminator.
	Text string `json:"text" yaml:"text"`
}
