package cli

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makechair/text-analyzer/internal/core/domain"
)

func TestSettingsCmd_Subcommands(t *testing.T) {
	names := make([]string, 0, len(settingsCmd.Commands()))
	for _, c := range settingsCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.ElementsMatch(t, []string{"show", "set", "wizard"}, names)
}

func TestSettingsShow(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "[tokenizer]")
	assert.Contains(t, out, "dictionary:      ipa")
	assert.Contains(t, out, "user_dict:       (not set)")
	assert.Contains(t, out, "[display]")
	assert.Contains(t, out, "sort:            kana")
	assert.Contains(t, out, "interval_ms:     500")
}

func TestSettingsShow_Default(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "[history]")
}

func TestSettingsSet(t *testing.T) {
	cleanup, ts := installTestServices()
	defer cleanup()

	out, err := execute(t, "", "settings", "set", "display.sort", "freq_desc")

	require.NoError(t, err)
	assert.Contains(t, out, "Set display.sort = freq_desc")
	s, err := ts.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.SortFreqDesc, s.Display.Sort)
}

func TestSettingsSet_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "search.mode", "hybrid"},
		{"bad dictionary", "tokenizer.dictionary", "neologd"},
		{"bad bool", "history.enabled", "maybe"},
		{"bad interval", "watch.interval_ms", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestServices()
			defer cleanup()

			_, err := execute(t, "", "settings", "set", tt.key, tt.value)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsWizard(t *testing.T) {
	cleanup, ts := installTestServices()
	defer cleanup()

	// Keep the dictionary, leave user_dict empty, then turn off symbol
	// exclusion. Input ends before the remaining keys.
	out, err := execute(t, "\n\nfalse\n", "settings", "wizard")

	require.NoError(t, err)
	assert.Contains(t, out, "tokenizer.dictionary [ipa]: ")
	assert.Contains(t, out, "1 setting(s) changed")
	s, err := ts.settings.Get()
	require.NoError(t, err)
	assert.False(t, s.Analysis.ExcludeSymbols)
	assert.Equal(t, domain.DictionaryIPA, s.Tokenizer.Dictionary)
}

func TestSettingsWizard_RetriesInvalidValue(t *testing.T) {
	cleanup, ts := installTestServices()
	defer cleanup()

	out, err := execute(t, "bogus\nuni\n", "settings", "wizard")

	require.NoError(t, err)
	assert.Contains(t, out, "Invalid value:")
	s, err := ts.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DictionaryUni, s.Tokenizer.Dictionary)
}

func TestSettings_NoService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	settingsService = nil

	_, err := execute(t, "", "settings", "show")

	assert.EqualError(t, err, "settings service not configured")
}

func TestReadLine(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  uni \nlast"))

	line, eof := readLine(reader)
	assert.Equal(t, "uni", line)
	assert.False(t, eof)

	line, eof = readLine(reader)
	assert.Equal(t, "last", line)
	assert.True(t, eof)
}
