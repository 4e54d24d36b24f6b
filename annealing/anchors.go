package annealing

import (
	"gonum.org/v1/gonum/mat"
)

// anchorSet holds the anchored points of one fit call: cluster id → point
// indices. Anchored points keep their labels through every iteration and
// their clusters' centers are pinned to the anchored points' mean.
type anchorSet struct {
	byCluster map[int][]int
}

func newAnchorSet(fixedPoints map[int][]int) anchorSet {
	if len(fixedPoints) == 0 {
		return anchorSet{}
	}
	byCluster := make(map[int][]int, len(fixedPoints))
	for clusterID, points := range fixedPoints {
		cp := make([]int, len(points))
		copy(cp, points)
		byCluster[clusterID] = cp
	}
	return anchorSet{byCluster: byCluster}
}

func (a anchorSet) empty() bool { return len(a.byCluster) == 0 }

// applyGibbs forces each anchored point's soft-assignment row to a one-hot
// vector selecting its cluster.
func (a anchorSet) applyGibbs(gibbs *mat.Dense) {
	if a.empty() {
		return
	}
	_, k := gibbs.Dims()
	for clusterID, points := range a.byCluster {
		for _, p := range points {
			for j := 0; j < k; j++ {
				gibbs.Set(p, j, 0)
			}
			gibbs.Set(p, clusterID, 1)
		}
	}
}

// applyCenters overrides each anchored cluster's center with the mean of its
// anchored points' feature vectors.
func (a anchorSet) applyCenters(centers, x *mat.Dense) {
	if a.empty() {
		return
	}
	_, d := x.Dims()
	for clusterID, points := range a.byCluster {
		row := make([]float64, d)
		for _, p := range points {
			xp := x.RawRowView(p)
			for c := range row {
				row[c] += xp[c]
			}
		}
		inv := 1 / float64(len(points))
		for c := range row {
			row[c] *= inv
		}
		centers.SetRow(clusterID, row)
	}
}
