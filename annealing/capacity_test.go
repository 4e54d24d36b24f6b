package annealing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacities(t *testing.T) {
	got := capacities(10, []float64{0.2, 0.3, 0.5})
	assert.Equal(t, []float64{2, 3, 5}, got)
}

func TestCountLabels(t *testing.T) {
	got := countLabels([]int{0, 1, 1, 2, 1, 0}, 3)
	assert.Equal(t, []int{2, 3, 1}, got)
}

func TestSatisfied(t *testing.T) {
	capacity := []float64{3, 3}

	assert.True(t, satisfied([]int{3, 3}, capacity))
	assert.True(t, satisfied([]int{2, 3}, capacity))
	assert.False(t, satisfied([]int{4, 2}, capacity), "over capacity")
	assert.False(t, satisfied([]int{6, 0}, capacity), "empty cluster")

	// Fractional capacity: a count equal to the floor fits, one above does not.
	assert.True(t, satisfied([]int{2, 2}, []float64{2.5, 2.5}))
	assert.False(t, satisfied([]int{3, 1}, []float64{2.5, 2.5}))
}

func TestRealizedClusters(t *testing.T) {
	assert.Equal(t, 2, realizedClusters([]int{4, 0, 2}))
	assert.Equal(t, 0, realizedClusters([]int{0, 0}))
}
