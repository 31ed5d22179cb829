// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/makechair/text-analyzer/internal/adapters/driving/tui/styles"
	"github.com/makechair/text-analyzer/internal/core/domain"
)

// row is one rendered line: a category heading or a group.
type row struct {
	category domain.Category
	group    *domain.DisplayGroup
}

// GroupList displays reading groups under their category headings.
// Only group rows are selectable.
type GroupList struct {
	categories []domain.CategoryGroups
	rows       []row
	groupRows  []int
	selected   int
	styles     *styles.Styles
	width      int
	height     int
}

// NewGroupList creates a new group list component.
func NewGroupList(s *styles.Styles) *GroupList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &GroupList{
		styles: s,
		width:  40,
		height: 10,
	}
}

// Init initialises the group list.
func (l *GroupList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *GroupList) Update(msg tea.Msg) (*GroupList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "home", "g":
			l.selected = 0
		case "end", "G":
			if len(l.groupRows) > 0 {
				l.selected = len(l.groupRows) - 1
			}
		}
	}
	return l, nil
}

// View renders the visible window of the list.
func (l *GroupList) View() string {
	if len(l.groupRows) == 0 {
		return l.styles.Muted.Render("No notation variants")
	}

	height := l.height
	if height < 1 {
		height = 1
	}

	cursor := l.groupRows[l.selected]
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	// Keep the heading of the first visible group on screen.
	if start > 0 && l.rows[start].group != nil && l.rows[start-1].group == nil && cursor-start+1 < height {
		start--
	}
	end := start + height
	if end > len(l.rows) {
		end = len(l.rows)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderRow(i))
	}
	return strings.Join(lines, "\n")
}

func (l *GroupList) renderRow(i int) string {
	r := l.rows[i]
	if r.group == nil {
		return l.styles.Category.Render(l.truncate(fmt.Sprintf("■ %s", r.category)))
	}

	selected := i == l.groupRows[l.selected]
	indicator := "  "
	if selected {
		indicator = "> "
	}

	g := r.group
	head := fmt.Sprintf("%s%s (合計: %d)", indicator, g.PrimaryWord, g.TotalCount)
	variants := make([]string, len(g.Variants))
	for j, v := range g.Variants {
		variants[j] = fmt.Sprintf("%s %d", v.Word, v.Count)
	}
	tail := ""
	if g.HasVariants() {
		tail = "  " + strings.Join(variants, "・")
	}

	text := l.truncate(head + tail)
	if selected {
		return l.styles.Selected.Render(text)
	}
	if runewidth.StringWidth(text) <= runewidth.StringWidth(head) {
		return l.styles.Normal.Render(text)
	}
	return l.styles.Normal.Render(head) + l.styles.Muted.Render(text[len(head):])
}

func (l *GroupList) truncate(s string) string {
	w := l.width
	if w < 10 {
		w = 10
	}
	return runewidth.Truncate(s, w, "…")
}

// SetCategories replaces the list contents. The selection moves to the
// group with the same reading when it is still present, otherwise to the
// first group.
func (l *GroupList) SetCategories(categories []domain.CategoryGroups) {
	previous := ""
	if g := l.SelectedGroup(); g != nil {
		previous = g.Reading
	}

	l.categories = categories
	l.rows = l.rows[:0]
	l.groupRows = l.groupRows[:0]
	l.selected = 0

	for ci := range categories {
		cg := &categories[ci]
		if len(cg.Groups) == 0 {
			continue
		}
		l.rows = append(l.rows, row{category: cg.Category})
		for gi := range cg.Groups {
			g := &cg.Groups[gi]
			if g.Reading == previous {
				l.selected = len(l.groupRows)
			}
			l.groupRows = append(l.groupRows, len(l.rows))
			l.rows = append(l.rows, row{category: cg.Category, group: g})
		}
	}
}

// Categories returns the current list contents.
func (l *GroupList) Categories() []domain.CategoryGroups {
	return l.categories
}

// Selected returns the index of the selected group.
func (l *GroupList) Selected() int {
	return l.selected
}

// SetSelected sets the selected group index.
func (l *GroupList) SetSelected(index int) {
	if index >= 0 && index < len(l.groupRows) {
		l.selected = index
	}
}

// SelectedGroup returns the currently selected group, or nil if none.
func (l *GroupList) SelectedGroup() *domain.DisplayGroup {
	if len(l.groupRows) == 0 || l.selected < 0 || l.selected >= len(l.groupRows) {
		return nil
	}
	return l.rows[l.groupRows[l.selected]].group
}

// MoveUp moves selection up.
func (l *GroupList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *GroupList) MoveDown() {
	if l.selected < len(l.groupRows)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *GroupList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *GroupList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *GroupList) Height() int {
	return l.height
}

// Count returns the number of groups.
func (l *GroupList) Count() int {
	return len(l.groupRows)
}

// IsEmpty returns whether the list is empty.
func (l *GroupList) IsEmpty() bool {
	return len(l.groupRows) == 0
}
