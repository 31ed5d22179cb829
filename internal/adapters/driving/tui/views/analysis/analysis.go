// Package analysis provides the main word list and concordance view for the TUI.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/makechair/text-analyzer/internal/adapters/driving/tui/components/input"
	"github.com/makechair/text-analyzer/internal/adapters/driving/tui/components/list"
	"github.com/makechair/text-analyzer/internal/adapters/driving/tui/components/status"
	"github.com/makechair/text-analyzer/internal/adapters/driving/tui/keymap"
	"github.com/makechair/text-analyzer/internal/adapters/driving/tui/messages"
	"github.com/makechair/text-analyzer/internal/adapters/driving/tui/styles"
	"github.com/makechair/text-analyzer/internal/adapters/driving/tui/views/concordance"
	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driving"
)

type promptMode int

const (
	promptNone promptMode = iota
	promptFilter
	promptOpen
)

// Pane identifies which pane receives navigation keys.
type Pane int

const (
	// PaneList is the word list on the left.
	PaneList Pane = iota
	// PaneConcordance is the sentence listing on the right.
	PaneConcordance
)

// View shows the word list of the current analysis beside the
// concordance of the selected reading.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	list        *list.GroupList
	concordance *concordance.View
	prompt      *input.PromptInput
	statusbar   *status.Bar

	analysisService    driving.AnalysisService
	concordanceService driving.ConcordanceService
	documentService    driving.DocumentService
	ctx                context.Context

	path       string
	result     *domain.AnalysisResult
	opts       domain.ListOptions
	savedQuery string
	mode       promptMode
	focus      Pane
	analysing  bool
	err        error
	width      int
	height     int
	ready      bool
}

// NewView creates a new analysis view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	analysisService driving.AnalysisService,
	concordanceService driving.ConcordanceService,
	documentService driving.DocumentService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:             s,
		keymap:             km,
		list:               list.NewGroupList(s),
		concordance:        concordance.NewView(s, concordanceService),
		prompt:             input.NewPromptInput(s, "Filter", ""),
		statusbar:          status.NewBar(s, km),
		analysisService:    analysisService,
		concordanceService: concordanceService,
		documentService:    documentService,
		ctx:                context.Background(),
		opts:               domain.DefaultAppSettings().ListOptions(),
		width:              80,
		height:             24,
	}
	v.statusbar.SetMessage("Press o to open a file")
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetPath sets the file analysed by Init and re-analysis.
func (v *View) SetPath(path string) {
	v.path = path
}

// Init starts loading the tokenizer and analyses the initial file, if any.
func (v *View) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if v.analysisService != nil {
		svc := v.analysisService
		cmds = append(cmds, func() tea.Msg {
			svc.Warm()
			return nil
		})
	}
	if v.path != "" {
		cmds = append(cmds, v.Analyse(v.path))
	}
	return tea.Batch(cmds...)
}

// Analyse returns a command that decodes path and runs the analysis.
// It returns nil while a run is in flight.
func (v *View) Analyse(path string) tea.Cmd {
	if v.analysing {
		v.statusbar.SetMessage("Analysis already running")
		return nil
	}
	if v.documentService == nil {
		return v.fail(ErrNoDocumentService)
	}
	if v.analysisService == nil {
		return v.fail(ErrNoAnalysisService)
	}

	v.analysing = true
	v.statusbar.SetState(status.StateAnalysing)
	v.statusbar.SetMessage(filepath.Base(path))

	ctx, docs, svc := v.ctx, v.documentService, v.analysisService
	return func() tea.Msg {
		doc, err := docs.Load(ctx, path)
		if err != nil {
			return messages.AnalysisCompleted{Path: path, Err: err}
		}
		result, err := svc.Analyze(ctx, driving.AnalyzeRequest{Text: doc.Content, Source: path})
		return messages.AnalysisCompleted{Path: path, Result: result, Err: err}
	}
}

func (v *View) fail(err error) tea.Cmd {
	return func() tea.Msg {
		return messages.ErrorOccurred{Err: err}
	}
}

// Update handles messages for the analysis view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.AnalysisRequested:
		return v, v.Analyse(msg.Path)

	case messages.AnalysisCompleted:
		v.handleAnalysisCompleted(msg)
		return v, nil

	case messages.GroupSelected:
		if g, ok := v.result.Group(msg.Reading); ok {
			v.concordance.SetGroup(v.result, &g)
		}
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err == nil && msg.Settings != nil {
			opts := msg.Settings.ListOptions()
			opts.Query = v.opts.Query
			v.opts = opts
			v.refreshList()
		}
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	if v.mode != promptNone {
		var cmd tea.Cmd
		v.prompt, cmd = v.prompt.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.mode != promptNone {
		return v.handlePromptKey(msg)
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	case keymap.Matches(key, v.keymap.Help):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }
	case keymap.Matches(key, v.keymap.SwitchPane):
		v.toggleFocus()
		return v, nil
	case keymap.Matches(key, v.keymap.Open):
		v.mode = promptOpen
		return v, v.prompt.Prompt("Open", "path to a .txt, .md or .docx file", v.path)
	case keymap.Matches(key, v.keymap.Reanalyse):
		if v.path == "" {
			v.statusbar.SetMessage("No file to re-analyse")
			return v, nil
		}
		return v, v.Analyse(v.path)
	}

	if v.focus == PaneConcordance {
		if keymap.Matches(key, v.keymap.Back) {
			v.focus = PaneList
			return v, nil
		}
		var cmd tea.Cmd
		v.concordance, cmd = v.concordance.Update(msg)
		return v, cmd
	}

	switch {
	case keymap.Matches(key, v.keymap.Select):
		g := v.list.SelectedGroup()
		if g == nil {
			return v, nil
		}
		reading := g.Reading
		return v, func() tea.Msg { return messages.GroupSelected{Reading: reading} }
	case keymap.Matches(key, v.keymap.Sort):
		v.opts.Sort = v.opts.Sort.Next()
		return v, v.optionsChanged()
	case keymap.Matches(key, v.keymap.ShowAll):
		v.opts.ShowAll = !v.opts.ShowAll
		return v, v.optionsChanged()
	case keymap.Matches(key, v.keymap.Filter):
		v.mode = promptFilter
		v.savedQuery = v.opts.Query
		return v, v.prompt.Prompt("Filter", "reading or word", v.opts.Query)
	case keymap.Matches(key, v.keymap.Back):
		if v.opts.Query != "" {
			v.opts.Query = ""
			v.refreshList()
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *View) handlePromptKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		if v.mode == promptFilter {
			v.opts.Query = v.savedQuery
			v.refreshList()
		}
		v.closePrompt()
		return v, nil

	case tea.KeyEnter:
		mode := v.mode
		value := strings.TrimSpace(v.prompt.Value())
		v.closePrompt()
		if mode == promptOpen {
			if value == "" {
				return v, nil
			}
			return v, v.Analyse(value)
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.prompt, cmd = v.prompt.Update(msg)
	if v.mode == promptFilter {
		v.opts.Query = strings.TrimSpace(v.prompt.Value())
		v.refreshList()
	}
	return v, cmd
}

func (v *View) closePrompt() {
	v.mode = promptNone
	v.prompt.Blur()
	v.prompt.Reset()
}

func (v *View) toggleFocus() {
	if v.focus == PaneList {
		v.focus = PaneConcordance
		return
	}
	v.focus = PaneList
}

func (v *View) optionsChanged() tea.Cmd {
	v.refreshList()
	opts := v.opts
	return func() tea.Msg { return messages.ListOptionsChanged{Options: opts} }
}

func (v *View) handleAnalysisCompleted(msg messages.AnalysisCompleted) {
	v.analysing = false
	if msg.Err != nil {
		if errors.Is(msg.Err, domain.ErrAnalysisInProgress) {
			v.statusbar.SetState(status.StateResults)
			v.statusbar.SetMessage("Analysis already running")
			return
		}
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.path = msg.Path
	v.result = msg.Result
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetMessage("")
	v.refreshList()

	if shown := v.concordance.Group(); shown != nil {
		if g, ok := v.result.Group(shown.Reading); ok {
			v.concordance.SetGroup(v.result, &g)
			return
		}
	}
	v.concordance.Clear()
}

// setError shows err without discarding the current result.
func (v *View) setError(err error) {
	if err == nil {
		return
	}
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

func (v *View) refreshList() {
	if v.result == nil || v.concordanceService == nil {
		v.list.SetCategories(nil)
		return
	}
	v.list.SetCategories(v.concordanceService.List(v.result, v.opts))
	v.statusbar.SetCounts(v.list.Count(), v.result.VariantGroupCount(), len(v.result.Sentences))
}

// View renders the analysis view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 4)
	sections = append(sections, v.renderHeader())

	if v.mode != promptNone {
		sections = append(sections, v.prompt.View())
	} else {
		sections = append(sections, "")
	}

	leftWidth, rightWidth, bodyHeight := v.layout()
	left := v.paneStyle(PaneList).Width(leftWidth).Height(bodyHeight).Render(v.list.View())
	right := v.paneStyle(PaneConcordance).Width(rightWidth).Height(bodyHeight).Render(v.concordance.View())
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, left, right))

	sections = append(sections, v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderHeader() string {
	title := v.styles.Title.Render("text-analyzer")
	source := "no file"
	if v.path != "" {
		source = v.path
	}

	all := "off"
	if v.opts.ShowAll {
		all = "on"
	}
	details := fmt.Sprintf("%s · sort: %s · all: %s", source, v.opts.Sort.Description(), all)
	if v.opts.Query != "" {
		details += fmt.Sprintf(" · filter: %s", v.opts.Query)
	}
	return title + " " + v.styles.Muted.Render(details)
}

func (v *View) paneStyle(p Pane) lipgloss.Style {
	if v.focus == p {
		return v.styles.FocusedBorder
	}
	return v.styles.Border
}

// layout returns the inner pane widths and the body height.
// The header, prompt line, status bar and borders take six rows.
func (v *View) layout() (int, int, int) {
	bodyHeight := v.height - 6
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	leftWidth := v.width*2/5 - 2
	if leftWidth < 20 {
		leftWidth = 20
	}
	rightWidth := v.width - leftWidth - 4
	if rightWidth < 20 {
		rightWidth = 20
	}
	return leftWidth, rightWidth, bodyHeight
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	leftWidth, rightWidth, bodyHeight := v.layout()
	v.list.SetDimensions(leftWidth, bodyHeight)
	v.concordance.SetDimensions(rightWidth, bodyHeight)
	v.prompt.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Path returns the file of the current result.
func (v *View) Path() string {
	return v.path
}

// Result returns the displayed analysis result.
func (v *View) Result() *domain.AnalysisResult {
	return v.result
}

// ListOptions returns the current list options.
func (v *View) ListOptions() domain.ListOptions {
	return v.opts
}

// Categories returns the groups shown in the word list.
func (v *View) Categories() []domain.CategoryGroups {
	return v.list.Categories()
}

// SelectedGroup returns the highlighted group.
func (v *View) SelectedGroup() *domain.DisplayGroup {
	return v.list.SelectedGroup()
}

// Concordance returns the concordance shown in the right pane.
func (v *View) Concordance() domain.ConcordanceView {
	return v.concordance.Concordance()
}

// Focus returns the pane holding focus.
func (v *View) Focus() Pane {
	return v.focus
}

// Analysing reports whether a run is in flight.
func (v *View) Analysing() bool {
	return v.analysing
}

// PromptOpen reports whether the filter or open prompt is active.
func (v *View) PromptOpen() bool {
	return v.mode != promptNone
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Status returns the status bar state.
func (v *View) Status() status.State {
	return v.statusbar.State()
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}
