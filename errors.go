package capclust

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the sentinel for construction-time validation
	// failures. All structured configuration errors unwrap to it.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrInputShape is the sentinel for call-time shape mismatches between
	// arguments and the point set. All structured input-shape errors unwrap
	// to it.
	ErrInputShape = errors.New("input shape mismatch")

	// ErrNotFitted is returned when Predict (or another accessor that needs
	// fitted state) is called before a successful Fit.
	ErrNotFitted = errors.New("not fitted: call Fit first")
)

// ClusterCountError indicates a non-positive cluster count.
type ClusterCountError struct {
	K int
}

func (e *ClusterCountError) Error() string {
	return fmt.Sprintf("cluster count must be at least 1, got %d", e.K)
}

func (e *ClusterCountError) Unwrap() error { return ErrConfiguration }

// MaxItersError indicates a non-positive inner-loop iteration budget.
type MaxItersError struct {
	MaxIters int
}

func (e *MaxItersError) Error() string {
	return fmt.Sprintf("max iterations must be at least 1, got %d", e.MaxIters)
}

func (e *MaxItersError) Unwrap() error { return ErrConfiguration }

// DistributionLengthError indicates a target distribution whose length does
// not match the cluster count.
type DistributionLengthError struct {
	Expected int
	Actual   int
}

func (e *DistributionLengthError) Error() string {
	return fmt.Sprintf("distribution length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *DistributionLengthError) Unwrap() error { return ErrConfiguration }

// DistributionSumError indicates a target distribution with a negative entry
// or a sum that does not round to 1 at 3 decimals.
type DistributionSumError struct {
	Sum float64
}

func (e *DistributionSumError) Error() string {
	return fmt.Sprintf("distribution must be non-negative and sum to 1 (3-decimal tolerance), got sum %v", e.Sum)
}

func (e *DistributionSumError) Unwrap() error { return ErrConfiguration }

// TemperatureScheduleError indicates an invalid temperature schedule.
type TemperatureScheduleError struct {
	Index int
	Value float64
}

func (e *TemperatureScheduleError) Error() string {
	return fmt.Sprintf("temperature schedule must be positive and decreasing: index %d, value %v", e.Index, e.Value)
}

func (e *TemperatureScheduleError) Unwrap() error { return ErrConfiguration }

// DemandLengthError indicates a demand vector whose length does not match the
// point count.
type DemandLengthError struct {
	Expected int
	Actual   int
}

func (e *DemandLengthError) Error() string {
	return fmt.Sprintf("demand length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *DemandLengthError) Unwrap() error { return ErrInputShape }

// DemandSumError indicates a demand vector whose total mass is not positive
// and finite, so it cannot be normalized.
type DemandSumError struct {
	Sum float64
}

func (e *DemandSumError) Error() string {
	return fmt.Sprintf("demand weights must have positive finite total mass, got %v", e.Sum)
}

func (e *DemandSumError) Unwrap() error { return ErrInputShape }

// AnchorIndexError indicates an anchor referencing an out-of-range cluster or
// point. PointIndex is -1 when the cluster id itself is out of range.
type AnchorIndexError struct {
	ClusterID  int
	PointIndex int
}

func (e *AnchorIndexError) Error() string {
	if e.PointIndex < 0 {
		return fmt.Sprintf("anchor cluster id out of range: %d", e.ClusterID)
	}
	return fmt.Sprintf("anchor point index out of range: cluster %d, point %d", e.ClusterID, e.PointIndex)
}

func (e *AnchorIndexError) Unwrap() error { return ErrInputShape }

// AnchorConflictError indicates a point anchored to two different clusters.
type AnchorConflictError struct {
	PointIndex int
	ClusterA   int
	ClusterB   int
}

func (e *AnchorConflictError) Error() string {
	return fmt.Sprintf("point %d anchored to both cluster %d and cluster %d", e.PointIndex, e.ClusterA, e.ClusterB)
}

func (e *AnchorConflictError) Unwrap() error { return ErrInputShape }

// PointCountError indicates a point set with fewer points than clusters, so
// no assignment can populate every cluster.
type PointCountError struct {
	K int
	N int
}

func (e *PointCountError) Error() string {
	return fmt.Sprintf("need at least %d points for %d clusters, got %d", e.K, e.K, e.N)
}

func (e *PointCountError) Unwrap() error { return ErrInputShape }

// DimensionMismatchError indicates a point matrix whose column count does not
// match the fitted centers.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrInputShape }
