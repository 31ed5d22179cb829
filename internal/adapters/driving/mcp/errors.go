// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// analyzer. It lets AI assistants run notation-variant checks and read
// concordances over stdio or HTTP.
package mcp

import "errors"

// ErrMissingAnalysisService is returned when the analysis service is not provided.
var ErrMissingAnalysisService = errors.New("mcp: analysis service is required")

// ErrMissingConcordanceService is returned when the concordance service is not provided.
var ErrMissingConcordanceService = errors.New("mcp: concordance service is required")
