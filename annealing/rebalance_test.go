package annealing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/capclust"
)

// overloadedSolver restores a fitted solver whose labels put three of four
// points into cluster 0 while the target distribution allows two per cluster.
func overloadedSolver(t *testing.T) (*Solver, *mat.Dense) {
	t.Helper()

	s, err := NewFromModel(&Model{
		K:            2,
		Distribution: []float64{0.5, 0.5},
		Metric:       "Euclidean",
		Centers:      [][]float64{{0, 0}, {5, 5}},
		Eta:          []float64{0.5, 0.5},
		Demand:       []float64{0.25, 0.25, 0.25, 0.25},
		Beta:         100,
		Labels:       []int{0, 0, 0, 1},
	})
	require.NoError(t, err)

	x := mat.NewDense(4, 2, []float64{
		0.0, 0.0,
		0.1, 0.0,
		4.9, 5.0,
		5.0, 5.0,
	})
	return s, x
}

func TestRebalance(t *testing.T) {
	ctx := context.Background()

	t.Run("moves excess to the nearest neighbor cluster", func(t *testing.T) {
		s, x := overloadedSolver(t)

		labels, err := s.Rebalance(ctx, x)
		require.NoError(t, err)

		// Point 2 sits next to cluster 1's center, so it is the cheapest move.
		assert.Equal(t, []int{0, 0, 1, 1}, labels)
		assert.Equal(t, labels, s.Labels(), "fitted labels are replaced")

		counts := countLabels(labels, 2)
		assert.True(t, satisfied(counts, s.capacity))
	})

	t.Run("already satisfied is a no-op", func(t *testing.T) {
		s, x := overloadedSolver(t)
		s.labels = []int{0, 0, 1, 1}

		labels, err := s.Rebalance(ctx, x)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0, 1, 1}, labels)
	})

	t.Run("not fitted", func(t *testing.T) {
		s, err := New(2, []float64{0.5, 0.5})
		require.NoError(t, err)

		_, err = s.Rebalance(ctx, mat.NewDense(1, 2, nil))
		assert.ErrorIs(t, err, capclust.ErrNotFitted)
	})

	t.Run("point count mismatch", func(t *testing.T) {
		s, _ := overloadedSolver(t)

		_, err := s.Rebalance(ctx, mat.NewDense(3, 2, nil))
		require.Error(t, err)
		assert.ErrorIs(t, err, capclust.ErrInputShape)
	})

	t.Run("after fit converges on overloaded demand", func(t *testing.T) {
		// Four points near one spot, two clusters of capacity two each: the
		// annealing result cannot help but overload, rebalancing must fix it.
		x := mat.NewDense(4, 2, []float64{
			0.0, 0.0,
			0.1, 0.1,
			0.2, 0.0,
			3.0, 3.0,
		})

		s, err := New(2, []float64{0.5, 0.5}, blobSchedule)
		require.NoError(t, err)
		require.NoError(t, s.Fit(context.Background(), x))

		labels, err := s.Rebalance(ctx, x)
		require.NoError(t, err)

		counts := countLabels(labels, 2)
		assert.True(t, satisfied(counts, s.capacity))
	})
}

func TestAdjacentClusters(t *testing.T) {
	s, err := NewFromModel(&Model{
		K:            3,
		Distribution: []float64{0.4, 0.3, 0.3},
		Metric:       "Euclidean",
		Centers:      [][]float64{{0, 0}, {1, 0}, {10, 0}},
		Eta:          []float64{1, 1, 1},
		Demand:       []float64{0.5, 0.5},
		Beta:         1,
		Labels:       []int{0, 1},
	})
	require.NoError(t, err)

	adjacent := s.adjacentClusters()
	require.Len(t, adjacent, 3)
	assert.Equal(t, []int{1, 2}, adjacent[0])
	assert.Equal(t, []int{0, 2}, adjacent[1])
	assert.Equal(t, []int{1, 0}, adjacent[2])
}
