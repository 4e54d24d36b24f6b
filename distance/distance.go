package distance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Euclidean calculates the Euclidean (L2) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// SquaredEuclidean calculates the squared Euclidean distance between two
// vectors. Assumes vectors are the same length (caller's responsibility).
func SquaredEuclidean(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

// Manhattan calculates the Manhattan (L1) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Manhattan(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// Cosine calculates the cosine distance (1 - cosine similarity) between two
// vectors. Zero-norm inputs yield the maximum distance of 1.
func Cosine(a, b []float64) float64 {
	dot := floats.Dot(a, b)
	na := math.Sqrt(floats.Dot(a, a))
	nb := math.Sqrt(floats.Dot(b, b))
	if na == 0 || nb == 0 {
		return 1
	}
	return 1 - dot/(na*nb)
}

// Metric represents the distance metric used for point comparison.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricSquaredEuclidean
	MetricManhattan
	MetricCosine
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricSquaredEuclidean:
		return "SquaredEuclidean"
	case MetricManhattan:
		return "Manhattan"
	case MetricCosine:
		return "Cosine"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ByName returns the metric with the given stable name, as produced by
// String. This is used by persistence formats that record the metric of a
// fitted model.
func ByName(name string) (Metric, bool) {
	switch name {
	case "Euclidean":
		return MetricEuclidean, true
	case "SquaredEuclidean":
		return MetricSquaredEuclidean, true
	case "Manhattan":
		return MetricManhattan, true
	case "Cosine":
		return MetricCosine, true
	default:
		return 0, false
	}
}

// Func is a function type for point-pair distance calculation.
type Func func(a, b []float64) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricSquaredEuclidean:
		return SquaredEuclidean, nil
	case MetricManhattan:
		return Manhattan, nil
	case MetricCosine:
		return Cosine, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
