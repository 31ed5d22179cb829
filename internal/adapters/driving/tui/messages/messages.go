// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/makechair/text-analyzer/internal/core/domain"
)

// AnalysisRequested is a command to analyse a file.
type AnalysisRequested struct {
	Path string
}

// AnalysisStarted is sent once the document is decoded and the run begins.
type AnalysisStarted struct {
	Path string
}

// AnalysisCompleted carries the outcome of a run back to the model.
// On error Result is nil and the previous result stays on screen.
type AnalysisCompleted struct {
	Path   string
	Result *domain.AnalysisResult
	Err    error
}

// GroupSelected is sent when a reading group is chosen in the word list.
type GroupSelected struct {
	Reading string
}

// ListOptionsChanged is sent when sort, show-all or the query changes.
type ListOptionsChanged struct {
	Options domain.ListOptions
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewAnalysis is the word list and concordance view.
	ViewAnalysis ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewAnalysis:
		return "analysis"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}
