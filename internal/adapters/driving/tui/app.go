package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/makechair/text-analyzer/internal/adapters/driving/tui/keymap"
	"github.com/makechair/text-analyzer/internal/adapters/driving/tui/messages"
	"github.com/makechair/text-analyzer/internal/adapters/driving/tui/styles"
	"github.com/makechair/text-analyzer/internal/adapters/driving/tui/views/analysis"
	"github.com/makechair/text-analyzer/internal/core/domain"
)

// Setting keys written when display options change.
const (
	settingDisplaySort = "display.sort"
	settingShowAll     = "display.show_all"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings shared by every view.
	keymap *keymap.KeyMap

	// analysisView is the word list and concordance view.
	analysisView *analysis.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		analysisView: analysis.NewView(s, km, ports.Analysis, ports.Concordance, ports.Document),
		currentView:  messages.ViewAnalysis,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.analysisView.WithContext(ctx)
	return a
}

// WithPath sets the file analysed on start.
func (a *App) WithPath(path string) *App {
	a.analysisView.SetPath(path)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("text-analyzer - 表記揺れ"),
		a.loadSettings(),
		a.analysisView.Init(),
	)
}

func (a *App) loadSettings() tea.Cmd {
	if a.ports.Settings == nil {
		return nil
	}
	svc := a.ports.Settings
	return func() tea.Msg {
		settings, err := svc.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// saveListOptions persists the display part of opts. The query is not saved.
func (a *App) saveListOptions(opts domain.ListOptions) tea.Cmd {
	if a.ports.Settings == nil {
		return nil
	}
	svc := a.ports.Settings
	return func() tea.Msg {
		if err := svc.Set(settingDisplaySort, opts.Sort.String()); err != nil {
			return messages.ErrorOccurred{Err: err}
		}
		if err := svc.Set(settingShowAll, strconv.FormatBool(opts.ShowAll)); err != nil {
			return messages.ErrorOccurred{Err: err}
		}
		return nil
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if a.currentView == messages.ViewHelp {
			switch {
			case keymap.Matches(msg.String(), a.keymap.Back), keymap.Matches(msg.String(), a.keymap.Help):
				a.currentView = messages.ViewAnalysis
			case keymap.Matches(msg.String(), a.keymap.Quit):
				return a, tea.Quit
			}
			return a, nil
		}

		a.analysisView, cmd = a.analysisView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ListOptionsChanged:
		return a, a.saveListOptions(msg.Options)

	case messages.AnalysisCompleted:
		a.err = msg.Err
		a.analysisView, cmd = a.analysisView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.analysisView, cmd = a.analysisView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	a.analysisView, cmd = a.analysisView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewAnalysis:
		return a.analysisView.View()
	default:
		return a.analysisView.View()
	}
}

// viewHelp renders the help view from the keymap.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	sections := []string{"Navigation", "Word list", "Files", "General"}
	for i, group := range a.keymap.FullHelp() {
		b.WriteString(a.styles.Subtitle.Render(sections[i]))
		b.WriteString("\n")
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Help.Render("[esc] back"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// AnalysisView returns the word list and concordance view.
func (a *App) AnalysisView() *analysis.View {
	return a.analysisView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.analysisView.SetDimensions(width, height)
}
