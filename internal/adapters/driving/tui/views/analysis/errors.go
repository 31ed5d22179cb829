package analysis

import "errors"

// Error definitions for the analysis view.
var (
	// ErrNoDocumentService indicates that no document service was provided.
	ErrNoDocumentService = errors.New("document service is required")

	// ErrNoAnalysisService indicates that no analysis service was provided.
	ErrNoAnalysisService = errors.New("analysis service is required")
)
