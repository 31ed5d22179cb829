// Package domain defines the core business entities for the text analyzer.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Token: A morphological unit produced by the tokenizer
//   - Sentence: A segment of source text with its line number
//   - ReadingGroup: All surface forms observed for one reading
//   - AnalysisResult: The ordered, filtered output of a run
//   - ConcordanceView: Sentences attributed to each variant of a reading
//   - RawDocument / Document: Input files before and after decoding
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
