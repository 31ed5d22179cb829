package driven

import "github.com/makechair/text-analyzer/internal/core/domain"

// Tokenizer performs morphological analysis.
// A loaded Tokenizer must be safe for concurrent use.
type Tokenizer interface {
	// Tokenize splits text into morphological tokens.
	Tokenize(text string) []domain.Token
}

// TokenizerLoader builds a Tokenizer from its dictionary resources.
// Loading is expensive and blocking; callers should load once and share.
type TokenizerLoader interface {
	// Name identifies the dictionary, e.g. "ipa".
	Name() string

	// Load reads the dictionary and returns a ready Tokenizer.
	// Returns an error wrapping domain.ErrTokenizerInit on failure.
	Load() (Tokenizer, error)
}
