package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vodalus/moa/internal/testutil"
)

func newTestArchival(t *testing.T) *Archival {
	t.Helper()
	a, err := NewArchival(testutil.HashEmbedding(256))
	require.NoError(t, err)
	return a
}

func TestArchival_AddAndCount(t *testing.T) {
	a := newTestArchival(t)
	ctx := context.Background()

	assert.Equal(t, 0, a.Count())
	require.NoError(t, a.Add(ctx, "solar flares disrupt radio"))
	require.NoError(t, a.Add(ctx, "auroras follow geomagnetic storms"))
	assert.Equal(t, 2, a.Count())
}

func TestArchival_RejectsEmptyContent(t *testing.T) {
	a := newTestArchival(t)

	err := a.Add(context.Background(), "   \n  ")
	require.ErrorIs(t, err, ErrEmptyContent)
	assert.Equal(t, 0, a.Count())
}

func TestArchival_RetrieveEmptyIndex(t *testing.T) {
	a := newTestArchival(t)

	chunks, err := a.Retrieve(context.Background(), "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestArchival_RetrieveSelfSimilarityRanksFirst(t *testing.T) {
	a := newTestArchival(t)
	ctx := context.Background()

	require.NoError(t, a.Add(ctx, "solar flares can cause radio blackouts"))
	require.NoError(t, a.Add(ctx, "the history of the roman empire"))
	require.NoError(t, a.Add(ctx, "recipes for sourdough bread"))

	chunks, err := a.Retrieve(ctx, "solar flares can cause radio blackouts", 3)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)
	assert.Equal(t, "solar flares can cause radio blackouts", chunks[0].Content)
	for _, c := range chunks[1:] {
		assert.LessOrEqual(t, c.Score, chunks[0].Score)
	}
}

func TestArchival_RetrieveClampsKToCount(t *testing.T) {
	a := newTestArchival(t)
	ctx := context.Background()

	require.NoError(t, a.Add(ctx, "only one chunk"))

	chunks, err := a.Retrieve(ctx, "one chunk", 5)
	require.NoError(t, err)
	assert.Len(t, chunks, 1)
}

func TestArchival_Clear(t *testing.T) {
	a := newTestArchival(t)
	ctx := context.Background()

	require.NoError(t, a.Add(ctx, "something to forget"))
	require.NoError(t, a.Clear(ctx))
	assert.Equal(t, 0, a.Count())

	chunks, err := a.Retrieve(ctx, "something", 1)
	require.NoError(t, err)
	assert.Empty(t, chunks)

	// The store is usable again after clearing.
	require.NoError(t, a.Add(ctx, "a fresh start"))
	assert.Equal(t, 1, a.Count())
}
