package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not available in this build.
	ErrNotImplemented = errors.New("not implemented")

	// Analysis Errors.

	// ErrTokenizerInit indicates the morphological dictionary could not be loaded.
	// Analysis is impossible until a later initialisation attempt succeeds.
	ErrTokenizerInit = errors.New("tokenizer initialisation failed")

	// ErrAnalysisFailure indicates an unexpected failure during an analysis run.
	// No partial result is produced.
	ErrAnalysisFailure = errors.New("analysis failed")

	// ErrAnalysisInProgress indicates a run is already in flight.
	ErrAnalysisInProgress = errors.New("analysis in progress")

	// ErrNoResult indicates no successful analysis exists yet.
	ErrNoResult = errors.New("no analysis result")

	// Document Errors.

	// ErrUnsupportedFormat indicates the input file type cannot be decoded.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrDecodeFailure indicates text extraction from a document failed.
	ErrDecodeFailure = errors.New("document decode failed")
)
