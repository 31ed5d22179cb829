package driving

import "github.com/makechair/text-analyzer/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	// Missing or invalid stored values fall back to defaults.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set validates and stores a single setting by key.
	Set(key, value string) error

	// Value returns the effective value of a key as text.
	Value(key string) (string, error)

	// Keys lists every recognised setting key in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
