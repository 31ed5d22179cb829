package services

import (
	"context"
	"fmt"

	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driven"
	"github.com/makechair/text-analyzer/internal/core/ports/driving"
	"github.com/makechair/text-analyzer/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService turns input files into plain text.
type DocumentService struct {
	loader   driven.DocumentLoader
	registry driven.NormaliserRegistry
}

// NewDocumentService creates a new document service.
func NewDocumentService(loader driven.DocumentLoader, registry driven.NormaliserRegistry) *DocumentService {
	return &DocumentService{
		loader:   loader,
		registry: registry,
	}
}

// Load reads and decodes the file at path.
func (s *DocumentService) Load(ctx context.Context, path string) (*domain.Document, error) {
	if s.loader == nil {
		return nil, domain.ErrNotImplemented
	}

	raw, err := s.loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return s.Decode(ctx, raw)
}

// Decode normalises raw into a document. Extraction warnings are logged.
func (s *DocumentService) Decode(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if s.registry == nil {
		return nil, fmt.Errorf("%s: %w", raw.URI, domain.ErrUnsupportedFormat)
	}

	result, err := s.registry.Normalise(ctx, raw)
	if err != nil {
		return nil, err
	}
	for _, w := range result.Warnings {
		logger.Warn("%s: %s", raw.URI, w)
	}

	logger.Debug("Decoded %s (%s): %d bytes of text", raw.URI, raw.MIMEType, len(result.Document.Content))
	doc := result.Document
	return &doc, nil
}

// Expand resolves command-line arguments to loadable files.
func (s *DocumentService) Expand(args []string) ([]string, error) {
	if s.loader == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.loader.Expand(args)
}

// SupportedMIMETypes lists the decodable MIME types.
func (s *DocumentService) SupportedMIMETypes() []string {
	if s.registry == nil {
		return nil
	}
	return s.registry.SupportedMIMETypes()
}
