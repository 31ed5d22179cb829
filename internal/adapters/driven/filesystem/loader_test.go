package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/normalisers"
	"github.com/makechair/text-analyzer/internal/normalisers/markdown"
	"github.com/makechair/text-analyzer/internal/normalisers/plaintext"
)

func newTestLoader() *Loader {
	return NewLoader(normalisers.NewRegistry(plaintext.New(), markdown.New()))
}

// writeTree creates files under dir. Keys are slash-separated relative paths.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"story.txt": "りんごを食べた。"})
	path := filepath.Join(dir, "story.txt")

	raw, err := newTestLoader().Load(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, path, raw.URI)
	assert.Equal(t, "text/plain", raw.MIMEType)
	assert.Equal(t, []byte("りんごを食べた。"), raw.Content)
	assert.EqualValues(t, len("りんごを食べた。"), raw.Metadata["size"])
	assert.Contains(t, raw.Metadata, "modified")
}

func TestLoader_Load_Errors(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"image.png": "x",
		"sub/a.txt": "x",
	})

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"missing file", filepath.Join(dir, "nope.txt"), domain.ErrNotFound},
		{"directory", filepath.Join(dir, "sub"), domain.ErrInvalidInput},
		{"unsupported type", filepath.Join(dir, "image.png"), domain.ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := newTestLoader().Load(context.Background(), tt.path)
			assert.Nil(t, raw)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_Load_NilRegistryAcceptsAll(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"image.png": "x"})

	raw, err := NewLoader(nil).Load(context.Background(), filepath.Join(dir, "image.png"))

	require.NoError(t, err)
	assert.Equal(t, "image/png", raw.MIMEType)
}

func TestLoader_Load_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestLoader().Load(ctx, "whatever.txt")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoader_Expand(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.txt":                 "a",
		"b.md":                  "b",
		"c.png":                 "c",
		"chapters/01.md":        "1",
		"chapters/02.md":        "2",
		"chapters/deep/03.md":   "3",
		".git/config.txt":       "hidden",
		"chapters/.draft.md":    "hidden",
		"chapters/notes.docx":   "unsupported here",
		"other/readme.markdown": "r",
	})
	join := func(rel string) string { return filepath.Join(dir, filepath.FromSlash(rel)) }

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "explicit file",
			args: []string{join("a.txt")},
			want: []string{join("a.txt")},
		},
		{
			name: "explicit unsupported file kept",
			args: []string{join("c.png")},
			want: []string{join("c.png")},
		},
		{
			name: "directory walk skips hidden and unsupported",
			args: []string{join("chapters")},
			want: []string{join("chapters/01.md"), join("chapters/02.md"), join("chapters/deep/03.md")},
		},
		{
			name: "doublestar pattern",
			args: []string{join("chapters") + "/**/*.md"},
			want: []string{join("chapters/01.md"), join("chapters/02.md"), join("chapters/deep/03.md")},
		},
		{
			name: "single star pattern",
			args: []string{join("*")},
			want: []string{join("a.txt"), join("b.md")},
		},
		{
			name: "duplicates removed",
			args: []string{join("a.txt"), join("*.txt")},
			want: []string{join("a.txt")},
		},
		{
			name: "pattern without matches",
			args: []string{join("*.zzz")},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestLoader().Expand(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoader_Expand_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := newTestLoader().Expand([]string{filepath.Join(dir, "missing.txt")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = newTestLoader().Expand([]string{filepath.Join(dir, "[")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
