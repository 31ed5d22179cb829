package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makechair/text-analyzer/internal/adapters/driving/tui/styles"
)

func TestNewPromptInput(t *testing.T) {
	input := NewPromptInput(styles.DefaultStyles(), "Filter", "reading or word")

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.Equal(t, "Filter", input.Label())
	assert.False(t, input.Focused())
}

func TestNewPromptInput_NilStyles(t *testing.T) {
	input := NewPromptInput(nil, "Filter", "")

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestPromptInput_Init(t *testing.T) {
	input := NewPromptInput(nil, "Filter", "")

	assert.NotNil(t, input.Init())
}

func TestPromptInput_Prompt(t *testing.T) {
	input := NewPromptInput(nil, "Filter", "")

	cmd := input.Prompt("Open", "path to a file", "/tmp/draft.txt")

	assert.NotNil(t, cmd)
	assert.True(t, input.Focused())
	assert.Equal(t, "Open", input.Label())
	assert.Equal(t, "/tmp/draft.txt", input.Value())
}

func TestPromptInput_View(t *testing.T) {
	input := NewPromptInput(nil, "Open", "")

	assert.Contains(t, input.View(), "Open")
}

func TestPromptInput_Update_Typing(t *testing.T) {
	input := NewPromptInput(nil, "Filter", "")
	input.Focus()

	for _, r := range "りんご" {
		input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "りんご", input.Value())
}

func TestPromptInput_Update_Backspace(t *testing.T) {
	input := NewPromptInput(nil, "Filter", "")
	input.Prompt("Filter", "", "test")

	input.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	assert.Equal(t, "tes", input.Value())
}

func TestPromptInput_Update_Blurred(t *testing.T) {
	input := NewPromptInput(nil, "Filter", "")

	input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	assert.Equal(t, "", input.Value())
}

func TestPromptInput_FocusBlur(t *testing.T) {
	input := NewPromptInput(nil, "Filter", "")

	cmd := input.Focus()
	assert.NotNil(t, cmd)
	assert.True(t, input.Focused())

	input.Blur()
	assert.False(t, input.Focused())
}

func TestPromptInput_SetWidth(t *testing.T) {
	input := NewPromptInput(nil, "Filter", "")
	assert.Equal(t, 50, input.Width())

	input.SetWidth(100)
	assert.Equal(t, 100, input.Width())

	input.SetWidth(10)
	assert.Equal(t, 10, input.Width())
}

func TestPromptInput_Reset(t *testing.T) {
	input := NewPromptInput(nil, "Filter", "")
	input.SetValue("some text")

	input.Reset()

	assert.Equal(t, "", input.Value())
}
