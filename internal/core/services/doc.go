// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The AnalysisService owns the tokenizer through a TokenizerHandle and
// runs the notation-variant pipeline; the other services are thin,
// synchronous views over its results, the decoders and the stores.
package services
