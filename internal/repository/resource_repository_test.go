package repository

import (
	"context"
	"sync"
	"testing"

	"resource-share/internal/models"
	"resource-share/pkg/writelock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFields() models.ResourceFields {
	return models.ResourceFields{
		Title:        "X",
		Description:  "Y",
		Size:         "1GB",
		Format:       "zip",
		Platform:     models.PlatformBaidu,
		ResourceType: models.TypeDocument,
		ThumbnailURL: "",
		DownloadURL:  "#",
		Tags:         []string{"a", "b"},
	}
}

func ids(resources []models.Resource) []string {
	out := make([]string, len(resources))
	for i, r := range resources {
		out[i] = r.ID
	}
	return out
}

func TestList_SeedWhenNothingPersisted(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	first := repo.List(ctx)
	second := repo.List(ctx)

	require.Len(t, first, 6)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(first))
}

func TestList_FallbackOnUnusableSlot(t *testing.T) {
	ctx := context.Background()

	cases := map[string]int{
		"{not json": 6,
		"null":      6,
		"[]":        0,
	}
	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			repo, kv := newTestRepo(t)
			require.NoError(t, kv.Set(ctx, ResourcesKey, raw))
			assert.Len(t, repo.List(ctx), want)
		})
	}
}

func TestList_BackendFailureFallsBackToSeed(t *testing.T) {
	repo := NewResourceRepository(brokenKV{}, writelock.NewLocalLocker(), quietLogger())
	ctx := context.Background()

	assert.Len(t, repo.List(ctx), 6)

	_, err := repo.Create(ctx, sampleFields())
	assert.ErrorIs(t, err, errBackendDown)
}

func TestCreate_PrependsWithZeroCounters(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleFields())
	require.NoError(t, err)

	assert.Equal(t, "1792398600000", created.ID)
	assert.Equal(t, "2026-10-19", created.UploadDate)
	assert.Zero(t, created.LikeCount)
	assert.Zero(t, created.DownloadCount)
	assert.Equal(t, []string{"a", "b"}, created.Tags)

	all := repo.List(ctx)
	require.Len(t, all, 7)
	assert.Equal(t, "X", all[0].Title)
	assert.Zero(t, all[0].LikeCount)
	assert.Zero(t, all[0].DownloadCount)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
}

func TestCreate_IDsStayUniqueWithinSameMillisecond(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	a, err := repo.Create(ctx, sampleFields())
	require.NoError(t, err)
	b, err := repo.Create(ctx, sampleFields())
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "1792398600001", b.ID)
	assert.Equal(t, []string{b.ID, a.ID}, ids(repo.List(ctx))[:2])
}

func TestCreate_ConcurrentWritersKeepEveryRecord(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, sampleFields())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all := repo.List(ctx)
	require.Len(t, all, 16)

	seen := make(map[string]bool)
	for _, r := range all {
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestUpdate_PartialReplacement(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	title := "新标题"
	updated, err := repo.Update(ctx, "2", models.ResourcePatch{
		Title: &title,
		Tags:  []string{"only"},
	})
	require.NoError(t, err)

	assert.Equal(t, "2", updated.ID)
	assert.Equal(t, "新标题", updated.Title)
	assert.Equal(t, []string{"only"}, updated.Tags)
	assert.Equal(t, "Adobe全套设计软件集合，包含Photoshop、Illustrator、Premiere等", updated.Description)
	assert.Equal(t, "2025-08-10", updated.UploadDate)
	assert.Equal(t, 542, updated.LikeCount)
	assert.Equal(t, 3205, updated.DownloadCount)

	got, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)

	// 顺序不变
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(repo.List(ctx)))
}

func TestUpdate_ExplicitCounters(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	zero := 0
	updated, err := repo.Update(ctx, "1", models.ResourcePatch{LikeCount: &zero})
	require.NoError(t, err)
	assert.Zero(t, updated.LikeCount)
	assert.Equal(t, 1562, updated.DownloadCount)
}

func TestUpdate_MissingLeavesCollectionUntouched(t *testing.T) {
	repo, kv := newTestRepo(t)
	ctx := context.Background()

	title := "nope"
	_, err := repo.Update(ctx, "missing", models.ResourcePatch{Title: &title})
	assert.ErrorIs(t, err, ErrResourceNotFound)

	_, persisted, err := kv.Get(ctx, ResourcesKey)
	require.NoError(t, err)
	assert.False(t, persisted)
	assert.Len(t, repo.List(ctx), 6)
}

func TestDelete(t *testing.T) {
	repo, kv := newTestRepo(t)
	ctx := context.Background()

	removed, err := repo.Delete(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, removed)

	_, persisted, err := kv.Get(ctx, ResourcesKey)
	require.NoError(t, err)
	assert.False(t, persisted, "nothing should be written when no record was removed")

	removed, err = repo.Delete(ctx, "3")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []string{"1", "2", "4", "5", "6"}, ids(repo.List(ctx)))

	_, err = repo.GetByID(ctx, "3")
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestDelete_AllLeavesEmptyCollection(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3", "4", "5", "6"} {
		removed, err := repo.Delete(ctx, id)
		require.NoError(t, err)
		assert.True(t, removed)
	}
	assert.Empty(t, repo.List(ctx))
}

func TestReset(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleFields())
	require.NoError(t, err)
	require.Len(t, repo.List(ctx), 7)

	require.NoError(t, repo.Reset(ctx))
	assert.Len(t, repo.List(ctx), 6)
}

func TestPersistsAcrossInstances(t *testing.T) {
	repo, kv := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleFields())
	require.NoError(t, err)

	reopened := NewResourceRepository(kv, writelock.NewLocalLocker(), quietLogger())
	got, err := reopened.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "X", got.Title)
}

func TestFilters(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	all := repo.List(ctx)

	assert.Equal(t, all, repo.FilterByPlatform(ctx, "all"))
	assert.Equal(t, all, repo.FilterByType(ctx, "all"))
	assert.Equal(t, []string{"1", "4"}, ids(repo.FilterByPlatform(ctx, "baidu")))
	assert.Equal(t, []string{"2", "5"}, ids(repo.FilterByType(ctx, "software")))
	assert.Empty(t, repo.FilterByPlatform(ctx, "other"))

	// 新建后 "all" 仍然是完整集合
	_, err := repo.Create(ctx, sampleFields())
	require.NoError(t, err)
	assert.Equal(t, repo.List(ctx), repo.FilterByPlatform(ctx, "all"))
}

func TestSearch(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	assert.Equal(t, repo.List(ctx), repo.Search(ctx, ""))
	assert.Equal(t, []string{"1"}, ids(repo.Search(ctx, "react")))
	assert.Equal(t, []string{"4"}, ids(repo.Search(ctx, "PYTHON")))
	// 标签匹配
	assert.Equal(t, []string{"5"}, ids(repo.Search(ctx, "实用")))
	assert.Empty(t, repo.Search(ctx, "不存在的关键词"))
}
