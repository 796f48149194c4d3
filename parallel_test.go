package brokentoys

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	rng "github.com/leesper/go_rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelMatchesSequential(t *testing.T) {
	gen := rng.NewUniformGenerator(2024)
	toys := randomCatalog(gen, 500)

	queries := make([]Query, 400)
	for i := range queries {
		queries[i] = randomQuery(gen, len(toys), 12000)
	}
	// A few rejects sprinkled in.
	queries[17] = Query{Budget: -1}
	queries[250] = Query{Budget: 10, Excluded: []int{501}}

	w, err := New(toys, Workers(4))
	require.NoError(t, err)
	pristine := snapshot(w)

	want, wantErr := w.AnswerQueries(queries)
	got, gotErr := w.AnswerQueriesParallel(context.Background(), queries)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AnswerQueriesParallel() mismatch (-want +got):\n%s", diff)
	}
	assert.ErrorIs(t, gotErr, ErrInvalidQuery)
	assert.Equal(t, wantErr.Error(), gotErr.Error())
	assert.Empty(t, cmp.Diff(pristine, snapshot(w)))
}

func TestParallelSingleWorker(t *testing.T) {
	w, err := New([]int64{9, 7, 2, 1, 9, 4, 2, 9, 5, 8}, Workers(1))
	require.NoError(t, err)

	got, err := w.AnswerQueriesParallel(context.Background(), []Query{
		{Budget: 1, Excluded: []int{6, 7}},
		{Budget: 9, Excluded: []int{10}},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, got)
}

func TestParallelCancelled(t *testing.T) {
	w, err := New([]int64{1, 2, 3}, Workers(2))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := w.AnswerQueriesParallel(ctx, []Query{{Budget: 1}, {Budget: 2}, {Budget: 3}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)

	w, err = New([]int64{1, 2, 3}, Workers(1))
	require.NoError(t, err)
	_, err = w.AnswerQueriesParallel(ctx, []Query{{Budget: 1}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParallelEmptyBatch(t *testing.T) {
	w, err := New([]int64{1, 2, 3}, Workers(8))
	require.NoError(t, err)

	got, err := w.AnswerQueriesParallel(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
