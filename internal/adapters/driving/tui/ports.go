// Package tui provides an interactive terminal user interface for text-analyzer.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/makechair/text-analyzer/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Analysis runs the notation-variant pipeline.
	Analysis driving.AnalysisService

	// Concordance builds word lists and sentence listings.
	Concordance driving.ConcordanceService

	// Document decodes input files.
	Document driving.DocumentService

	// Settings supplies display defaults and persists display changes. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	analysis driving.AnalysisService,
	concordance driving.ConcordanceService,
	document driving.DocumentService,
) *Ports {
	return &Ports{
		Analysis:    analysis,
		Concordance: concordance,
		Document:    document,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Analysis == nil {
		return ErrMissingAnalysisService
	}
	if p.Concordance == nil {
		return ErrMissingConcordanceService
	}
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	return nil
}
