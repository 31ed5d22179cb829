package driving

import (
	"context"

	"github.com/makechair/text-analyzer/internal/core/domain"
)

// DocumentService decodes input files into plain text.
type DocumentService interface {
	// Load reads and decodes the file at path.
	// Returns domain.ErrUnsupportedFormat or domain.ErrDecodeFailure on failure.
	Load(ctx context.Context, path string) (*domain.Document, error)

	// Decode normalises raw bytes of a known MIME type.
	Decode(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error)

	// Expand resolves files, directories and glob patterns to the files
	// that Load accepts.
	Expand(args []string) ([]string, error)

	// SupportedMIMETypes lists the decodable MIME types.
	SupportedMIMETypes() []string
}
