package domain

import "time"

// Document represents a decoded input document.
// It is the canonical representation after normalisation.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// URI is the original location (file path, "stdin", etc).
	URI string

	// Title is the human-readable title.
	Title string

	// Content is the full plain text content after normalisation.
	Content string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// CreatedAt is when the document was decoded.
	CreatedAt time.Time
}
