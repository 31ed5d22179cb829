package mcp

import (
	"github.com/makechair/text-analyzer/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Analysis runs the pipeline.
	Analysis driving.AnalysisService

	// Concordance builds word lists and per-variant sentence views.
	Concordance driving.ConcordanceService

	// Document decodes files for analyze_file. Optional.
	Document driving.DocumentService

	// Reports exposes stored history. Optional.
	Reports driving.ReportService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Analysis == nil {
		return ErrMissingAnalysisService
	}
	if p.Concordance == nil {
		return ErrMissingConcordanceService
	}
	return nil
}
