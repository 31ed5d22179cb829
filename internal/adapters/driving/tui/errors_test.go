package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errors := []error{
		ErrMissingAnalysisService,
		ErrMissingConcordanceService,
		ErrMissingDocumentService,
		ErrInvalidPorts,
	}

	seen := make(map[string]bool)
	for _, err := range errors {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrors_Messages(t *testing.T) {
	assert.Contains(t, ErrMissingAnalysisService.Error(), "analysis service")
	assert.Contains(t, ErrMissingConcordanceService.Error(), "concordance service")
	assert.Contains(t, ErrMissingDocumentService.Error(), "document service")
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
