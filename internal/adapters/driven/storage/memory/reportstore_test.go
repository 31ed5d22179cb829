package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makechair/text-analyzer/internal/core/domain"
)

func report(id string, at time.Time) domain.Report {
	return domain.Report{
		ID:        id,
		Source:    id + ".txt",
		CreatedAt: at,
		Result:    &domain.AnalysisResult{ID: id},
	}
}

func TestReportStore_SaveAndGet(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Save(ctx, report("r1", now)))

	got, err := store.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1.txt", got.Source)
	require.NotNil(t, got.Result)
	assert.Equal(t, "r1", got.Result.ID)
}

func TestReportStore_Save_Replaces(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()

	first := report("r1", time.Now())
	require.NoError(t, store.Save(ctx, first))
	second := first
	second.Source = "renamed.txt"
	require.NoError(t, store.Save(ctx, second))

	got, err := store.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "renamed.txt", got.Source)
}

func TestReportStore_Save_EmptyID(t *testing.T) {
	err := NewReportStore().Save(context.Background(), domain.Report{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReportStore_Get_NotFound(t *testing.T) {
	_, err := NewReportStore().Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportStore_List(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, report("old", base)))
	require.NoError(t, store.Save(ctx, report("new", base.Add(2*time.Hour))))
	require.NoError(t, store.Save(ctx, report("mid", base.Add(time.Hour))))

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"all", 0, []string{"new", "mid", "old"}},
		{"negative is all", -1, []string{"new", "mid", "old"}},
		{"limited", 2, []string{"new", "mid"}},
		{"limit above size", 10, []string{"new", "mid", "old"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := store.List(ctx, tt.limit)
			require.NoError(t, err)

			ids := make([]string, len(list))
			for i, r := range list {
				ids[i] = r.ID
				assert.Nil(t, r.Result, "listing must not carry results")
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	// Listing must not strip the stored result.
	got, err := store.Get(ctx, "old")
	require.NoError(t, err)
	assert.NotNil(t, got.Result)
}

func TestReportStore_FindWord(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	withWords := func(id string, at time.Time, words ...string) domain.Report {
		r := report(id, at)
		group := domain.DisplayGroup{Reading: "リンゴ"}
		for _, w := range words {
			group.Variants = append(group.Variants, domain.Variant{Word: w, Count: 1})
		}
		r.Result.Categories = []domain.CategoryGroups{{Category: domain.CategoryNoun, Groups: []domain.DisplayGroup{group}}}
		return r
	}

	require.NoError(t, store.Save(ctx, withWords("a", base, "りんご", "林檎")))
	require.NoError(t, store.Save(ctx, withWords("b", base.Add(time.Hour), "林檎")))
	require.NoError(t, store.Save(ctx, withWords("c", base.Add(2*time.Hour), "りんご")))
	require.NoError(t, store.Save(ctx, report("empty", base.Add(3*time.Hour))))

	list, err := store.FindWord(ctx, "林檎", 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
	assert.Nil(t, list[0].Result)

	list, err = store.FindWord(ctx, "りんご", 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "c", list[0].ID)

	list, err = store.FindWord(ctx, "バナナ", 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReportStore_Delete(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, report("r1", time.Now())))

	require.NoError(t, store.Delete(ctx, "r1"))
	require.NoError(t, store.Delete(ctx, "r1"))

	_, err := store.Get(ctx, "r1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
