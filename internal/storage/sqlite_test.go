package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should be created with its parent directory")
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, run := range []struct{ score, level int }{{100, 2}, {50, 1}, {200, 3}} {
		_, err := store.SaveRun("blaster", run.score, run.level)
		require.NoError(t, err)
	}
	_, err := store.SaveRun("other", 500, 9)
	require.NoError(t, err)

	scores, err := store.TopScores("blaster", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.Equal(t, 200, scores[0].Score)
	assert.Equal(t, 3, scores[0].Level)
	assert.Equal(t, 100, scores[1].Score)
	assert.Equal(t, 50, scores[2].Score)
	assert.False(t, scores[0].CreatedAt.IsZero(), "created_at should be parsed")
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		_, err := store.SaveRun("blaster", i*10, 1)
		require.NoError(t, err)
	}

	scores, err := store.TopScores("blaster", 5)
	require.NoError(t, err)
	assert.Len(t, scores, 5)
	assert.Equal(t, 140, scores[0].Score)

	scores, err = store.TopScores("blaster", 0)
	require.NoError(t, err)
	assert.Len(t, scores, 10, "non-positive limit falls back to 10")
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.HighScore("blaster")
	require.NoError(t, err)
	assert.Equal(t, 0, best)

	_, err = store.SaveRun("blaster", 300, 2)
	require.NoError(t, err)
	best, err = store.HighScore("blaster")
	require.NoError(t, err)
	assert.Equal(t, 300, best)

	// A live high score beats recorded runs until the run is saved
	raised, err := store.RaiseHighScore("blaster", 450)
	require.NoError(t, err)
	assert.True(t, raised)
	best, err = store.HighScore("blaster")
	require.NoError(t, err)
	assert.Equal(t, 450, best)
}

func TestStoreRaiseHighScoreOnlyUpward(t *testing.T) {
	store := openTestStore(t)

	raised, err := store.RaiseHighScore("blaster", 100)
	require.NoError(t, err)
	assert.True(t, raised)

	raised, err = store.RaiseHighScore("blaster", 80)
	require.NoError(t, err)
	assert.False(t, raised)

	raised, err = store.RaiseHighScore("blaster", 100)
	require.NoError(t, err)
	assert.False(t, raised)

	best, err := store.HighScore("blaster")
	require.NoError(t, err)
	assert.Equal(t, 100, best)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun("blaster", 100, 1)
	require.NoError(t, err)
	_, err = store.RaiseHighScore("blaster", 150)
	require.NoError(t, err)
	_, err = store.SaveRun("other", 70, 1)
	require.NoError(t, err)

	require.NoError(t, store.ClearScores("blaster"))

	best, err := store.HighScore("blaster")
	require.NoError(t, err)
	assert.Equal(t, 0, best)

	other, err := store.TopScores("other", 10)
	require.NoError(t, err)
	assert.Len(t, other, 1, "other games are untouched")
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("blaster")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.GamesCount)
	assert.True(t, stats.LastPlayed.IsZero())

	_, err = store.SaveRun("blaster", 100, 2)
	require.NoError(t, err)
	_, err = store.SaveRun("blaster", 300, 4)
	require.NoError(t, err)

	stats, err = store.GetGameStats("blaster")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 300, stats.HighScore)
	assert.Equal(t, 4, stats.BestLevel)
	assert.InDelta(t, 200.0, stats.AvgScore, 1e-9)
	assert.EqualValues(t, 400, stats.TotalScore)
	assert.False(t, stats.LastPlayed.IsZero())
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/scores.db")
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(home, ".arcade", "scores.db"))
	assert.NoError(t, err)
}
