package capclust

import (
	"context"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Clusterer is the contract every clustering solver in the family satisfies.
//
// Fit consumes an n×d point matrix and populates the solver's fitted state;
// results are read back through solver-specific accessors. Predict assigns
// labels to new points using the fitted state only and requires a prior Fit.
type Clusterer interface {
	Fit(ctx context.Context, x *mat.Dense, optFns ...func(o *FitOptions)) error
	Predict(ctx context.Context, x *mat.Dense) ([]int, error)
}

// FitOptions contains per-call options for Fit.
type FitOptions struct {
	// DemandsProb assigns a weight to every point, used in place of uniform
	// point mass for weighted centroids and multiplier updates. It must have
	// one entry per point and is normalized to sum 1. Nil means uniform.
	DemandsProb []float64

	// FixedPoints anchors points to clusters for the duration of this fit:
	// cluster id → point indices. Anchored points keep their cluster label
	// through every iteration, overriding the distance-driven assignment.
	FixedPoints map[int][]int
}

// ValidateBasicOptions validates the shared constructor parameters of the
// solver family: cluster count and inner-loop iteration budget.
func ValidateBasicOptions(k, maxIters int) error {
	if k < 1 {
		return &ClusterCountError{K: k}
	}
	if maxIters < 1 {
		return &MaxItersError{MaxIters: maxIters}
	}
	return nil
}

// ValidateDistribution validates a target cluster-size distribution: length
// must equal k, entries must be non-negative, and the sum must equal 1 when
// rounded to 3 decimals.
func ValidateDistribution(distribution []float64, k int) error {
	if len(distribution) != k {
		return &DistributionLengthError{Expected: k, Actual: len(distribution)}
	}
	var sum float64
	for _, p := range distribution {
		if p < 0 || math.IsNaN(p) {
			return &DistributionSumError{Sum: p}
		}
		sum += p
	}
	if math.Round(sum*1000)/1000 != 1 {
		return &DistributionSumError{Sum: sum}
	}
	return nil
}

// NormalizeDemands validates and normalizes per-point demand weights against
// the point count n. Nil yields the uniform distribution.
func NormalizeDemands(demands []float64, n int) ([]float64, error) {
	if demands == nil {
		out := make([]float64, n)
		for i := range out {
			out[i] = 1 / float64(n)
		}
		return out, nil
	}
	if len(demands) != n {
		return nil, &DemandLengthError{Expected: n, Actual: len(demands)}
	}
	var sum float64
	for _, d := range demands {
		sum += d
	}
	if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return nil, &DemandSumError{Sum: sum}
	}
	out := make([]float64, n)
	for i, d := range demands {
		out[i] = d / sum
	}
	return out, nil
}

// ValidateAnchors validates anchor assignments against the cluster count k
// and point count n: cluster ids in [0,k), point indices in [0,n), and no
// point anchored to more than one cluster.
func ValidateAnchors(anchors map[int][]int, k, n int) error {
	seen := make(map[int]int, len(anchors))
	for clusterID, points := range anchors {
		if clusterID < 0 || clusterID >= k {
			return &AnchorIndexError{ClusterID: clusterID, PointIndex: -1}
		}
		for _, p := range points {
			if p < 0 || p >= n {
				return &AnchorIndexError{ClusterID: clusterID, PointIndex: p}
			}
			if prev, ok := seen[p]; ok && prev != clusterID {
				return &AnchorConflictError{PointIndex: p, ClusterA: prev, ClusterB: clusterID}
			}
			seen[p] = clusterID
		}
	}
	return nil
}
