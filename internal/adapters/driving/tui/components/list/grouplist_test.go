package list

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makechair/text-analyzer/internal/adapters/driving/tui/styles"
	"github.com/makechair/text-analyzer/internal/core/domain"
)

func sampleCategories() []domain.CategoryGroups {
	return []domain.CategoryGroups{
		{
			Category: domain.CategoryNoun,
			Groups: []domain.DisplayGroup{
				{
					Reading:     "リンゴ",
					PrimaryWord: "りんご",
					TotalCount:  3,
					Variants:    []domain.Variant{{Word: "りんご", Count: 2}, {Word: "林檎", Count: 1}},
					Category:    domain.CategoryNoun,
				},
				{
					Reading:     "ネコ",
					PrimaryWord: "猫",
					TotalCount:  2,
					Variants:    []domain.Variant{{Word: "猫", Count: 1}, {Word: "ねこ", Count: 1}},
					Category:    domain.CategoryNoun,
				},
			},
		},
		{Category: domain.CategoryAdverb},
		{
			Category: domain.CategoryVerb,
			Groups: []domain.DisplayGroup{
				{
					Reading:     "タベル",
					PrimaryWord: "食べる",
					TotalCount:  1,
					Variants:    []domain.Variant{{Word: "食べる", Count: 1}},
					Category:    domain.CategoryVerb,
				},
			},
		},
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewGroupList(t *testing.T) {
	l := NewGroupList(styles.DefaultStyles())

	require.NotNil(t, l)
	assert.Equal(t, 0, l.Selected())
	assert.True(t, l.IsEmpty())
	assert.Nil(t, l.SelectedGroup())
	assert.Nil(t, l.Init())
}

func TestNewGroupList_NilStyles(t *testing.T) {
	l := NewGroupList(nil)

	require.NotNil(t, l)
	assert.NotNil(t, l.styles)
}

func TestGroupList_SetCategories(t *testing.T) {
	l := NewGroupList(nil)

	l.SetCategories(sampleCategories())

	assert.Equal(t, 3, l.Count())
	assert.False(t, l.IsEmpty())
	assert.Len(t, l.Categories(), 3)
	// Two headings plus three groups; the empty category gets no heading.
	assert.Len(t, l.rows, 5)
	require.NotNil(t, l.SelectedGroup())
	assert.Equal(t, "リンゴ", l.SelectedGroup().Reading)
}

func TestGroupList_SetCategories_KeepsSelection(t *testing.T) {
	l := NewGroupList(nil)
	l.SetCategories(sampleCategories())
	l.SetSelected(1)

	reordered := sampleCategories()
	reordered[0].Groups[0], reordered[0].Groups[1] = reordered[0].Groups[1], reordered[0].Groups[0]
	l.SetCategories(reordered)

	assert.Equal(t, 0, l.Selected())
	assert.Equal(t, "ネコ", l.SelectedGroup().Reading)
}

func TestGroupList_SetCategories_DroppedSelection(t *testing.T) {
	l := NewGroupList(nil)
	l.SetCategories(sampleCategories())
	l.SetSelected(2)

	l.SetCategories(sampleCategories()[:1])

	assert.Equal(t, 0, l.Selected())
	assert.Equal(t, "リンゴ", l.SelectedGroup().Reading)
}

func TestGroupList_Navigation(t *testing.T) {
	l := NewGroupList(nil)
	l.SetCategories(sampleCategories())

	l.MoveUp()
	assert.Equal(t, 0, l.Selected())

	l.MoveDown()
	l.MoveDown()
	assert.Equal(t, 2, l.Selected())
	assert.Equal(t, "タベル", l.SelectedGroup().Reading)

	l.MoveDown()
	assert.Equal(t, 2, l.Selected())
}

func TestGroupList_Update_Keys(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		expected int
	}{
		{"j moves down", []tea.KeyMsg{key("j")}, 1},
		{"down arrow moves down", []tea.KeyMsg{{Type: tea.KeyDown}}, 1},
		{"k after j returns", []tea.KeyMsg{key("j"), key("k")}, 0},
		{"up arrow at top stays", []tea.KeyMsg{{Type: tea.KeyUp}}, 0},
		{"G jumps to end", []tea.KeyMsg{key("G")}, 2},
		{"g jumps to start", []tea.KeyMsg{key("G"), key("g")}, 0},
		{"other keys ignored", []tea.KeyMsg{key("x")}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewGroupList(nil)
			l.SetCategories(sampleCategories())

			for _, k := range tt.keys {
				updated, cmd := l.Update(k)
				assert.Equal(t, l, updated)
				assert.Nil(t, cmd)
			}

			assert.Equal(t, tt.expected, l.Selected())
		})
	}
}

func TestGroupList_SetSelected_OutOfRange(t *testing.T) {
	l := NewGroupList(nil)
	l.SetCategories(sampleCategories())

	l.SetSelected(-1)
	assert.Equal(t, 0, l.Selected())

	l.SetSelected(10)
	assert.Equal(t, 0, l.Selected())
}

func TestGroupList_View_Empty(t *testing.T) {
	l := NewGroupList(nil)

	assert.Contains(t, l.View(), "No notation variants")
}

func TestGroupList_View(t *testing.T) {
	l := NewGroupList(nil)
	l.SetDimensions(60, 20)
	l.SetCategories(sampleCategories())

	view := l.View()

	assert.Contains(t, view, "名詞")
	assert.Contains(t, view, "動詞")
	assert.NotContains(t, view, "副詞")
	assert.Contains(t, view, "> りんご (合計: 3)")
	assert.Contains(t, view, "林檎 1")
	assert.Contains(t, view, "猫 (合計: 2)")
	assert.Contains(t, view, "食べる (合計: 1)")
}

func TestGroupList_View_ScrollsToSelection(t *testing.T) {
	l := NewGroupList(nil)
	l.SetDimensions(60, 2)
	l.SetCategories(sampleCategories())
	l.SetSelected(2)

	view := l.View()

	assert.Len(t, strings.Split(view, "\n"), 2)
	assert.Contains(t, view, "食べる")
	assert.NotContains(t, view, "りんご")
}

func TestGroupList_View_Truncates(t *testing.T) {
	l := NewGroupList(nil)
	l.SetDimensions(12, 10)
	l.SetCategories(sampleCategories())

	view := l.View()

	assert.Contains(t, view, "…")
	assert.NotContains(t, view, "林檎 1")
}

func TestGroupList_Dimensions(t *testing.T) {
	l := NewGroupList(nil)

	l.SetDimensions(100, 50)

	assert.Equal(t, 100, l.Width())
	assert.Equal(t, 50, l.Height())
}
