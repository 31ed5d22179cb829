package driven

import (
	"context"

	"github.com/makechair/text-analyzer/internal/core/domain"
)

// DocumentLoader reads input files as raw documents.
type DocumentLoader interface {
	// Load reads the file at path and detects its MIME type.
	// Returns domain.ErrUnsupportedFormat for types no normaliser handles.
	Load(ctx context.Context, path string) (*domain.RawDocument, error)

	// Expand resolves files, directories and glob patterns to a sorted
	// list of loadable files.
	Expand(args []string) ([]string, error)
}

// FileWatcher reports changes to a single file.
type FileWatcher interface {
	// Watch emits change events for path until ctx is cancelled.
	// Both channels are closed when watching stops.
	Watch(ctx context.Context, path string) (<-chan domain.FileChange, <-chan error, error)
}
