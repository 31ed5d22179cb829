// Package pipeline implements the notation-variant analysis stages.
//
// A run flows through the stages in order:
//
//   - SplitSentences: segment text into sentences with line numbers
//   - Admit / Categorize: drop function words and assign display categories
//   - Aggregator: fold tokens into reading groups
//   - Partition: discard insignificant groups and bucket by category
//   - Order: sort categories and groups deterministically
//
// BuildConcordance and Select operate on a finished result.
//
// Every stage is a pure function of its input. Only Run touches a
// tokenizer, and it holds no state between calls.
package pipeline
