// Package static provides a table-driven Tokenizer for tests.
// Each input sentence is looked up verbatim; unknown sentences yield no tokens.
package static

import (
	"sync"

	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driven"
)

// Ensure interfaces are implemented.
var (
	_ driven.Tokenizer       = (*Tokenizer)(nil)
	_ driven.TokenizerLoader = (*Loader)(nil)
)

// Tokenizer returns pre-recorded tokens for known sentences.
type Tokenizer struct {
	mu     sync.RWMutex
	table  map[string][]domain.Token
	calls  int
	onCall func(text string)
}

// New creates a tokenizer from a sentence -> tokens table.
func New(table map[string][]domain.Token) *Tokenizer {
	if table == nil {
		table = make(map[string][]domain.Token)
	}
	return &Tokenizer{table: table}
}

// Add records the tokens for a sentence.
func (t *Tokenizer) Add(sentence string, tokens ...domain.Token) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table[sentence] = tokens
}

// OnCall registers a hook run before every Tokenize call.
func (t *Tokenizer) OnCall(fn func(text string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onCall = fn
}

// Tokenize returns the recorded tokens for text.
func (t *Tokenizer) Tokenize(text string) []domain.Token {
	t.mu.Lock()
	t.calls++
	hook := t.onCall
	toks := t.table[text]
	t.mu.Unlock()

	if hook != nil {
		hook(text)
	}
	out := make([]domain.Token, len(toks))
	copy(out, toks)
	return out
}

// Calls returns how many times Tokenize ran.
func (t *Tokenizer) Calls() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.calls
}

// Loader hands out a fixed tokenizer, optionally failing or blocking first.
type Loader struct {
	mu    sync.Mutex
	tok   driven.Tokenizer
	err   error
	gate  chan struct{}
	loads int
}

// NewLoader creates a loader that returns tok.
func NewLoader(tok driven.Tokenizer) *Loader {
	return &Loader{tok: tok}
}

// Name identifies the loader.
func (l *Loader) Name() string {
	return "static"
}

// FailWith makes subsequent loads return err. Passing nil clears it.
func (l *Loader) FailWith(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = err
}

// Block makes subsequent loads wait until the returned function is called.
func (l *Loader) Block() (release func()) {
	gate := make(chan struct{})
	l.mu.Lock()
	l.gate = gate
	l.mu.Unlock()

	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

// Load returns the configured tokenizer or error.
func (l *Loader) Load() (driven.Tokenizer, error) {
	l.mu.Lock()
	l.loads++
	gate := l.gate
	l.mu.Unlock()

	if gate != nil {
		<-gate
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	return l.tok, nil
}

// Loads returns how many times Load ran.
func (l *Loader) Loads() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loads
}
