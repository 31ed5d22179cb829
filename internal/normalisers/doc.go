// Package normalisers provides the NormaliserRegistry and shared helpers
// for the format-specific normalisers in its subpackages. Each normaliser
// knows how to extract plain text from a specific MIME type.
//
// Normalisers are registered with the Registry at startup.
package normalisers
