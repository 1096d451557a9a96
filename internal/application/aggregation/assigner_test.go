package aggregation_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/hexmean/internal/application/aggregation"
	"github.com/turtacn/hexmean/pkg/errors"
	"github.com/turtacn/hexmean/pkg/types/geo"
)

func scoredPoints(n int) []geo.ScoredPoint {
	pts := make([]geo.ScoredPoint, n)
	for i := range pts {
		pts[i] = geo.ScoredPoint{
			Point: orb.Point{float64(i) * 0.01, float64(i) * 0.01},
			Score: float64(i),
		}
	}
	return pts
}

func TestAssignCells_PreservesOrderAndScores(t *testing.T) {
	t.Parallel()

	pts := scoredPoints(100)
	out, err := aggregation.AssignCells(context.Background(), &fakeIndex{}, pts, 7, 4)
	require.NoError(t, err)
	require.Len(t, out, len(pts))

	for i, a := range out {
		assert.Equal(t, pts[i].Score, a.Score, "index %d", i)
		assert.Equal(t, pts[i].Point, a.Point, "index %d", i)
		assert.NotEmpty(t, a.Cell, "index %d", i)
	}
}

func TestAssignCells_DeterministicAcrossWorkerCounts(t *testing.T) {
	t.Parallel()

	pts := scoredPoints(50)

	serial, err := aggregation.AssignCells(context.Background(), &fakeIndex{}, pts, 9, 1)
	require.NoError(t, err)
	parallel, err := aggregation.AssignCells(context.Background(), &fakeIndex{}, pts, 9, 8)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

func TestAssignCells_InvalidResolution(t *testing.T) {
	t.Parallel()

	for _, res := range []int{-1, 16} {
		_, err := aggregation.AssignCells(context.Background(), &fakeIndex{}, scoredPoints(1), res, 1)
		require.Error(t, err, "resolution %d", res)
		assert.True(t, errors.IsCode(err, errors.CodeInvalidResolution))
	}
}

func TestAssignCells_EmptyInput(t *testing.T) {
	t.Parallel()

	out, err := aggregation.AssignCells(context.Background(), &fakeIndex{}, nil, 7, 0)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestAssignCells_IndexErrorPropagates(t *testing.T) {
	t.Parallel()

	idx := &fakeIndex{cellErr: fmt.Errorf("index exploded")}
	_, err := aggregation.AssignCells(context.Background(), idx, scoredPoints(10), 7, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index exploded")
}

func TestAssignCells_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := aggregation.AssignCells(ctx, &fakeIndex{}, scoredPoints(1000), 7, 2)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeInternal))
}

func TestAssignCells_WorkerCountLargerThanInput(t *testing.T) {
	t.Parallel()

	out, err := aggregation.AssignCells(context.Background(), &fakeIndex{}, scoredPoints(3), 7, 64)
	require.NoError(t, err)
	assert.Len(t, out, 3)
}
