// Package concordance provides the sentence listing pane for the TUI.
package concordance

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/makechair/text-analyzer/internal/adapters/driving/tui/styles"
	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driving"
	"github.com/makechair/text-analyzer/internal/pipeline"
)

// View lists, for the selected reading group, every sentence each
// variant appears in. Variant words are highlighted.
type View struct {
	styles      *styles.Styles
	concordance driving.ConcordanceService

	group        *domain.DisplayGroup
	view         domain.ConcordanceView
	lines        []string
	scrollOffset int
	width        int
	height       int
}

// NewView creates a new concordance view.
func NewView(s *styles.Styles, concordance driving.ConcordanceService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:      s,
		concordance: concordance,
		width:       40,
		height:      10,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetGroup builds the concordance of group against result.
// A nil group or result clears the pane.
func (v *View) SetGroup(result *domain.AnalysisResult, group *domain.DisplayGroup) {
	v.scrollOffset = 0
	if result == nil || group == nil || v.concordance == nil {
		v.Clear()
		return
	}

	g := *group
	v.group = &g
	v.view = v.concordance.Concordance(result, g.Reading)
	v.render()
}

// Clear empties the pane.
func (v *View) Clear() {
	v.group = nil
	v.view = domain.ConcordanceView{}
	v.lines = nil
	v.scrollOffset = 0
}

// Update handles scrolling keys.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "pgup", "ctrl+u":
		v.scrollOffset -= v.visibleLines()
		if v.scrollOffset < 0 {
			v.scrollOffset = 0
		}
	case "pgdown", "ctrl+d":
		v.scrollOffset += v.visibleLines()
		if v.scrollOffset > v.maxScrollOffset() {
			v.scrollOffset = v.maxScrollOffset()
		}
	case "home", "g":
		v.scrollOffset = 0
	case "end", "G":
		v.scrollOffset = v.maxScrollOffset()
	}
	return v, nil
}

// render lays out every entry as a heading followed by its sentences,
// wrapped to the pane width.
func (v *View) render() {
	v.lines = nil
	if v.group == nil {
		return
	}

	words := v.group.Words()
	highlight := v.styles.Highlight
	mark := func(s string) string { return highlight.Render(s) }
	width := v.contentWidth()

	for i, entry := range v.view.Entries {
		if i > 0 {
			v.lines = append(v.lines, "")
		}
		v.lines = append(v.lines, v.styles.Subtitle.Render(
			fmt.Sprintf("■ %s (%d)", entry.Word, len(entry.Sentences))))

		for _, s := range entry.Sentences {
			prefix := fmt.Sprintf("%5d ", s.Line)
			indent := strings.Repeat(" ", len(prefix))
			text := strings.TrimSpace(strings.ReplaceAll(s.Text, "\n", " "))

			for j, seg := range wrapSpans(pipeline.Highlight(text, words), width-len(prefix)) {
				lead := v.styles.LineNumber.Render(prefix)
				if j > 0 {
					lead = indent
				}
				v.lines = append(v.lines, lead+pipeline.Render(seg, mark))
			}
		}
	}
}

// wrapSpans splits spans into lines no wider than width display cells.
// Highlighted runs keep their marking across a break.
func wrapSpans(spans []pipeline.Span, width int) [][]pipeline.Span {
	if width < 1 {
		width = 1
	}

	var (
		lines  [][]pipeline.Span
		line   []pipeline.Span
		used   int
		buf    strings.Builder
		marked bool
	)
	flush := func() {
		if buf.Len() > 0 {
			line = append(line, pipeline.Span{Text: buf.String(), Highlight: marked})
			buf.Reset()
		}
	}

	for _, span := range spans {
		flush()
		marked = span.Highlight
		for _, r := range span.Text {
			w := runewidth.RuneWidth(r)
			if used+w > width && used > 0 {
				flush()
				lines = append(lines, line)
				line = nil
				used = 0
			}
			buf.WriteRune(r)
			used += w
		}
	}
	flush()
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

func (v *View) contentWidth() int {
	w := v.width - 2
	if w < 20 {
		w = 20
	}
	return w
}

// visibleLines returns the number of body lines that fit under the title.
func (v *View) visibleLines() int {
	available := v.height - 2
	if available < 1 {
		available = 1
	}
	return available
}

func (v *View) maxScrollOffset() int {
	maxOffset := len(v.lines) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// View renders the pane.
func (v *View) View() string {
	var b strings.Builder

	if v.group == nil {
		b.WriteString(v.styles.Title.Render("Concordance"))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Muted.Render("Select a word and press enter"))
		return b.String()
	}

	title := v.styles.Title.Render(v.group.PrimaryWord) + " " +
		v.styles.Muted.Render(fmt.Sprintf("[%s] %d sentences", v.group.Reading, v.view.Len()))
	b.WriteString(title)
	b.WriteString("\n\n")

	if len(v.lines) == 0 {
		b.WriteString(v.styles.Muted.Render("(No sentences)"))
		return b.String()
	}

	end := v.scrollOffset + v.visibleLines()
	if end > len(v.lines) {
		end = len(v.lines)
	}
	b.WriteString(strings.Join(v.lines[v.scrollOffset:end], "\n"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.render()
	if v.scrollOffset > v.maxScrollOffset() {
		v.scrollOffset = v.maxScrollOffset()
	}
}

// Concordance returns the displayed concordance.
func (v *View) Concordance() domain.ConcordanceView {
	return v.view
}

// Group returns the displayed group, or nil.
func (v *View) Group() *domain.DisplayGroup {
	return v.group
}

// ScrollOffset returns the index of the first visible line.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}

// LineCount returns the number of rendered body lines.
func (v *View) LineCount() int {
	return len(v.lines)
}
