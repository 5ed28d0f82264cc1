package fixpoint_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/fixpoint"
)

func TestSolveAll(t *testing.T) {
	problems := make([]fixpoint.Problem[*bitvec.BitVector], 8)
	for i := range problems {
		problems[i] = chain(i+2, 1000)
		problems[i].Name = fmt.Sprintf("shard-%d", i)
	}

	metrics := &fixpoint.BasicMetricsCollector{}
	stats, err := fixpoint.SolveAll(context.Background(), problems,
		fixpoint.WithParallelism(3),
		fixpoint.WithMetricsCollector(metrics),
	)
	require.NoError(t, err)
	require.Len(t, stats, len(problems))

	for i, p := range problems {
		assert.Equal(t, i+2, stats[i].Sweeps, p.Name)
		assertAllSet(t, p.Values)
	}
	assert.Equal(t, int64(len(problems)), metrics.GetStats().SolveCount)
}

func TestSolveAllError(t *testing.T) {
	bad := chain(3, 16)
	bad.Name = "bad"
	bad.Edges = append(bad.Edges, fixpoint.Edge{From: 0, To: 7})

	problems := []fixpoint.Problem[*bitvec.BitVector]{chain(3, 16), bad, chain(4, 16)}

	_, err := fixpoint.SolveAll(context.Background(), problems, fixpoint.WithParallelism(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `problem "bad"`)

	var invalid *fixpoint.ErrInvalidEdge
	assert.True(t, errors.As(err, &invalid))
}

func TestSolveAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fixpoint.SolveAll(ctx, []fixpoint.Problem[*bitvec.BitVector]{chain(3, 16)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveAllEmpty(t *testing.T) {
	stats, err := fixpoint.SolveAll[*bitvec.BitVector](context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, stats)
}
