package annealing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestAnchorSetApplyGibbs(t *testing.T) {
	anchors := newAnchorSet(map[int][]int{2: {0, 3}})

	gibbs := mat.NewDense(4, 3, []float64{
		0.5, 0.3, 0.2,
		0.1, 0.8, 0.1,
		0.3, 0.3, 0.4,
		0.6, 0.2, 0.2,
	})
	anchors.applyGibbs(gibbs)

	assert.Equal(t, []float64{0, 0, 1}, gibbs.RawRowView(0))
	assert.Equal(t, []float64{0.1, 0.8, 0.1}, gibbs.RawRowView(1))
	assert.Equal(t, []float64{0, 0, 1}, gibbs.RawRowView(3))
}

func TestAnchorSetApplyCenters(t *testing.T) {
	anchors := newAnchorSet(map[int][]int{1: {0, 2}})

	x := mat.NewDense(3, 2, []float64{
		0, 0,
		9, 9,
		4, 2,
	})
	centers := mat.NewDense(2, 2, []float64{
		7, 7,
		7, 7,
	})
	anchors.applyCenters(centers, x)

	// Cluster 1's center pins to the mean of points 0 and 2.
	assert.Equal(t, []float64{7, 7}, centers.RawRowView(0))
	assert.Equal(t, []float64{2, 1}, centers.RawRowView(1))
}

func TestAnchorSetEmpty(t *testing.T) {
	assert.True(t, newAnchorSet(nil).empty())
	assert.True(t, newAnchorSet(map[int][]int{}).empty())
	assert.False(t, newAnchorSet(map[int][]int{0: {1}}).empty())
}

func TestNewAnchorSetCopies(t *testing.T) {
	points := []int{1, 2}
	anchors := newAnchorSet(map[int][]int{0: points})

	points[0] = 99
	assert.Equal(t, []int{1, 2}, anchors.byCluster[0])
}
