package sink_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/upword/sink"
	"github.com/katalvlaran/upword/word"
)

func TestNewRun(t *testing.T) {
	run := sink.NewRun(word.MustParams("01", 4), true, 9)
	assert.NotEqual(t, uuid.Nil, run.ID)
	assert.Equal(t, "01", run.Alphabet)
	assert.Equal(t, 4, run.WindowLength)
	assert.Equal(t, 11, run.TargetLength)
	assert.True(t, run.Randomized)
	assert.Equal(t, int64(9), run.Seed)
	assert.WithinDuration(t, time.Now(), run.StartedAt, time.Minute)
}

func TestSQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "upwords.db")
	run := sink.NewRun(word.MustParams("01", 4), false, 0)

	s, err := sink.OpenSQLite(ctx, path, run)
	require.NoError(t, err)
	assert.Equal(t, run.ID, s.Run().ID)

	require.NoError(t, s.Put(ctx, "011*100*011"))
	require.NoError(t, s.Put(ctx, "001*110*001"))

	// Readable while the run is in progress.
	words, err := sink.LoadWords(ctx, s.DB(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, []word.Word{"011*100*011", "001*110*001"}, words)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Put(ctx, "x"), sink.ErrClosed)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	got, err := sink.LoadRun(ctx, db, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "01", got.Alphabet)
	assert.Equal(t, 11, got.TargetLength)
	assert.False(t, got.Randomized)
	assert.Equal(t, 2, got.Results)
	assert.True(t, run.StartedAt.Equal(got.StartedAt))
	assert.False(t, got.FinishedAt.IsZero())

	_, err = sink.LoadRun(ctx, db, uuid.New())
	assert.ErrorIs(t, err, sink.ErrRunNotFound)
}

func TestSQLite_SeveralRunsShareADatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "upwords.db")
	p := word.MustParams("0", 3)

	first := sink.NewRun(p, false, 0)
	s1, err := sink.OpenSQLite(ctx, path, first)
	require.NoError(t, err)
	require.NoError(t, s1.Put(ctx, "00*"))
	require.NoError(t, s1.Close())

	second := sink.NewRun(p, true, 3)
	s2, err := sink.OpenSQLite(ctx, path, second)
	require.NoError(t, err)
	defer s2.Close()

	words, err := sink.LoadWords(ctx, s2.DB(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, []word.Word{"00*"}, words)

	words, err = sink.LoadWords(ctx, s2.DB(), second.ID)
	require.NoError(t, err)
	assert.Empty(t, words)
}
