package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driven"
	"github.com/makechair/text-analyzer/internal/logger"
)

// TokenizerHandle owns the morphological analyser. The dictionary is
// loaded at most once per successful attempt: concurrent callers share
// one load, a success is kept for the life of the handle and a failure
// lets the next caller try again.
type TokenizerHandle struct {
	loader driven.TokenizerLoader

	mu       sync.Mutex
	tok      driven.Tokenizer
	inflight *loadAttempt
}

type loadAttempt struct {
	done chan struct{}
	tok  driven.Tokenizer
	err  error
}

// NewTokenizerHandle creates a handle that loads through loader on first use.
func NewTokenizerHandle(loader driven.TokenizerLoader) *TokenizerHandle {
	return &TokenizerHandle{loader: loader}
}

// Name returns the loader's dictionary name.
func (h *TokenizerHandle) Name() string {
	if h.loader == nil {
		return ""
	}
	return h.loader.Name()
}

// Ready reports whether the tokenizer has been loaded.
func (h *TokenizerHandle) Ready() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.tok != nil
}

// Get returns the tokenizer, loading it if needed. The load itself runs
// on its own goroutine and is not cancelled with ctx; only this caller's
// wait is.
func (h *TokenizerHandle) Get(ctx context.Context) (driven.Tokenizer, error) {
	h.mu.Lock()
	if h.tok != nil {
		tok := h.tok
		h.mu.Unlock()
		return tok, nil
	}
	attempt := h.startLocked()
	h.mu.Unlock()

	select {
	case <-attempt.done:
		return attempt.tok, attempt.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Warm starts loading in the background if nothing is loaded or loading.
func (h *TokenizerHandle) Warm() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.tok == nil {
		h.startLocked()
	}
}

// startLocked returns the in-flight attempt, starting one if needed.
// Caller must hold h.mu.
func (h *TokenizerHandle) startLocked() *loadAttempt {
	if h.inflight != nil {
		return h.inflight
	}

	attempt := &loadAttempt{done: make(chan struct{})}
	h.inflight = attempt

	go func() {
		tok, err := h.load()

		h.mu.Lock()
		if err == nil {
			h.tok = tok
		}
		h.inflight = nil
		attempt.tok, attempt.err = tok, err
		h.mu.Unlock()

		close(attempt.done)
	}()

	return attempt
}

func (h *TokenizerHandle) load() (tok driven.Tokenizer, err error) {
	if h.loader == nil {
		return nil, fmt.Errorf("no tokenizer configured: %w", domain.ErrTokenizerInit)
	}

	defer func() {
		if r := recover(); r != nil {
			tok = nil
			err = fmt.Errorf("load %s: %v: %w", h.loader.Name(), r, domain.ErrTokenizerInit)
		}
	}()

	logger.Debug("Loading tokenizer %s", h.loader.Name())
	tok, err = h.loader.Load()
	if err != nil {
		logger.Warn("Tokenizer %s failed to load: %v", h.loader.Name(), err)
		if !errors.Is(err, domain.ErrTokenizerInit) {
			err = fmt.Errorf("load %s: %v: %w", h.loader.Name(), err, domain.ErrTokenizerInit)
		}
		return nil, err
	}
	if tok == nil {
		return nil, fmt.Errorf("load %s: loader returned no tokenizer: %w", h.loader.Name(), domain.ErrTokenizerInit)
	}
	return tok, nil
}
