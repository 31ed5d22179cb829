package file

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDirFromEnv(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "home")
	t.Setenv(HomeEnv, dir)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDefaultDir(t *testing.T) {
	t.Setenv(HomeEnv, "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	dir, err := DefaultDir()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".text-analyzer"), dir)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("display.sort", "kana"))
	require.NoError(t, store.Set("watch.interval_ms", 750))
	require.NoError(t, store.Set("display.show_all", true))
	require.NoError(t, store.Set("extra.list", []string{"a", "b"}))

	assert.Equal(t, "kana", store.GetString("display.sort"))
	assert.Equal(t, 750, store.GetInt("watch.interval_ms"))
	assert.True(t, store.GetBool("display.show_all"))
	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("extra.list"))

	// Wrong types and missing keys yield zero values.
	assert.Empty(t, store.GetString("watch.interval_ms"))
	assert.Zero(t, store.GetInt("display.sort"))
	assert.False(t, store.GetBool("missing"))
	assert.Nil(t, store.GetStringSlice("missing"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("tokenizer.dictionary", "uni"))
	require.NoError(t, store1.Set("watch.interval_ms", 250))
	require.NoError(t, store1.Set("history.enabled", false))
	require.NoError(t, store1.Set("top", "level"))

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "uni", store2.GetString("tokenizer.dictionary"))
	assert.Equal(t, 250, store2.GetInt("watch.interval_ms"))
	_, ok := store2.Get("history.enabled")
	assert.True(t, ok)
	assert.False(t, store2.GetBool("history.enabled"))
	assert.Equal(t, "level", store2.GetString("top"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("display.sort", "freq_desc"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	assert.Contains(t, string(data), "[display]")
	assert.Regexp(t, `sort = ['"]freq_desc['"]`, string(data))
}

func TestConfigStore_LoadNestedFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[tokenizer]\ndictionary = \"uni\"\nuser_dict = \"/tmp/dict.csv\"\n\n[display]\nshow_all = true\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "uni", store.GetString("tokenizer.dictionary"))
	assert.Equal(t, "/tmp/dict.csv", store.GetString("tokenizer.user_dict"))
	assert.True(t, store.GetBool("display.show_all"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on Windows")
	}
	store := newTestStore(t)
	require.NoError(t, store.Set("key", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_NoTempFilesLeft(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("a.b", 1))
	require.NoError(t, store.Set("a.c", 2))

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.toml", entries[0].Name())
}

func TestConfigStore_Set_ConflictingKeysRollBack(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("display", "flat"))

	err := store.Set("display.sort", "kana")

	require.Error(t, err)
	_, ok := store.Get("display.sort")
	assert.False(t, ok)
	assert.Equal(t, "flat", store.GetString("display"))
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(""), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("anything")
	assert.False(t, ok)
	require.NoError(t, store.Set("k", "v"))
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not [valid toml"), 0600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
	assert.Contains(t, err.Error(), "config.toml")
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	_, err := NewConfigStore(filepath.Join(blocker, "sub"))

	assert.Error(t, err)
}

func TestConfigStore_Load_DiscardsUnsaved(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("saved", "yes"))

	other, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, other.Set("saved", "changed"))

	require.NoError(t, store.Load())
	assert.Equal(t, "changed", store.GetString("saved"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set("concurrent.key", "value")
		}()
		go func() {
			defer wg.Done()
			_ = store.GetString("concurrent.key")
		}()
	}
	wg.Wait()

	assert.Equal(t, "value", store.GetString("concurrent.key"))
}

func TestNestMap(t *testing.T) {
	nested, err := nestMap(map[string]any{
		"a.b.c": 1,
		"a.d":   "x",
		"e":     true,
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": 1},
			"d": "x",
		},
		"e": true,
	}, nested)
}

func TestFlattenMap(t *testing.T) {
	flat := flattenMap(map[string]any{
		"a": map[string]any{"b": int64(1)},
		"c": "d",
	}, "")

	assert.Equal(t, map[string]any{"a.b": int64(1), "c": "d"}, flat)
}
