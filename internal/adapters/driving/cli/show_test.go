package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makechair/text-analyzer/internal/core/domain"
)

func TestShowCmd_RequiresTwoArgs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "", "show", "draft.txt")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestShowCmd_ByWord(t *testing.T) {
	tests := []struct {
		name string
		word string
	}{
		{"reading", "リンゴ"},
		{"primary word", "りんご"},
		{"other form", "林檎"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestServices()
			defer cleanup()

			out, err := execute(t, "", "show", "draft.txt", tt.word)

			require.NoError(t, err)
			assert.Contains(t, out, "りんご [リンゴ] 合計: 3")
			assert.Contains(t, out, "■ りんご (2)")
			assert.Contains(t, out, "    1 りんごを食べた。")
			assert.Contains(t, out, "    4 猫もりんごを見た。")
			assert.Contains(t, out, "■ 林檎 (1)")
			assert.Contains(t, out, "    2 林檎が好きだ！")
		})
	}
}

func TestShowCmd_EntriesInVariantOrder(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "show", "draft.txt", "林檎")

	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "■ りんご"), strings.Index(out, "■ 林檎"))
}

func TestShowCmd_UnknownWord(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "", "show", "draft.txt", "バナナ")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "バナナ")
}

func TestShowCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "", "show", "missing.txt", "林檎")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "loading missing.txt")
}

func TestResolveGroup(t *testing.T) {
	result := sampleResult()

	g, err := resolveGroup(result, "猫")
	require.NoError(t, err)
	assert.Equal(t, "ネコ", g.Reading)

	_, err = resolveGroup(result, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
