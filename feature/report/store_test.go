package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ornasync/core/database"
	"ornasync/feature/match"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Connect(database.Config{Path: ":memory:"})
	require.NoError(t, err)
	store, err := NewStore(db, zap.NewNop())
	require.NoError(t, err)
	return store
}

func TestStore_SaveAndLoadRun(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	rep := match.NewReporter(zap.NewNop())
	m := rep.Field("items", "Aquatic Blade", 42, "tier", 7, 8)
	m.Fixed = true
	rep.MissingOnGuide("skills", "Ghost Arrow", "/codex/spells/ghost-arrow/")

	started := time.Now().Add(-time.Minute)
	run, err := store.SaveRun(ctx, rep, true, []string{"items", "skills"}, started, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)

	loaded, err := store.Run(ctx, run.ID)
	require.NoError(t, err)
	assert.True(t, loaded.Fix)
	assert.Equal(t, "items,skills", loaded.Targets)

	require.Len(t, loaded.Mismatches, 1)
	assert.Equal(t, "tier", loaded.Mismatches[0].Field)
	assert.Equal(t, "7", loaded.Mismatches[0].Guide)
	assert.Equal(t, "8", loaded.Mismatches[0].Codex)
	assert.True(t, loaded.Mismatches[0].Fixed)

	require.Len(t, loaded.Missings, 1)
	assert.Equal(t, "Ghost Arrow", loaded.Missings[0].Name)
	assert.True(t, loaded.Missings[0].OnGuide)
}

func TestStore_LastRuns(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rep := match.NewReporter(zap.NewNop())
		started := time.Date(2026, 8, 1+i, 12, 0, 0, 0, time.UTC)
		_, err := store.SaveRun(ctx, rep, false, []string{"items"}, started, started.Add(time.Minute))
		require.NoError(t, err)
	}

	runs, err := store.LastRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.True(t, runs[0].StartedAt.After(runs[1].StartedAt))
}

func TestStore_RunNotFound(t *testing.T) {
	store := newStore(t)
	_, err := store.Run(context.Background(), "nope")
	assert.Error(t, err)
}
