package distance

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// PairwiseFunc computes the full pairwise distance matrix between two point
// sets: given x (n×d) and y (k×d) it returns an n×k matrix whose (i,j) entry
// is the distance from row i of x to row j of y.
//
// This is the only distance operation the solvers consume, so swapping the
// metric is a matter of injecting a different PairwiseFunc.
type PairwiseFunc func(x, y *mat.Dense) *mat.Dense

// Pairwise lifts a point-pair metric into a PairwiseFunc.
func Pairwise(f Func) PairwiseFunc {
	return func(x, y *mat.Dense) *mat.Dense {
		n, _ := x.Dims()
		k, _ := y.Dims()
		out := mat.NewDense(n, k, nil)
		for i := 0; i < n; i++ {
			xi := x.RawRowView(i)
			for j := 0; j < k; j++ {
				out.Set(i, j, f(xi, y.RawRowView(j)))
			}
		}
		return out
	}
}

// PairwiseEuclidean computes the Euclidean pairwise matrix using one matrix
// multiplication instead of n·k point-pair calls:
//
//	d(i,j)² = ||x_i||² + ||y_j||² - 2·(x_i · y_j)
//
// Negative values from floating-point cancellation are clamped to zero before
// the square root.
func PairwiseEuclidean(x, y *mat.Dense) *mat.Dense {
	return pairwiseL2(x, y, true)
}

// PairwiseSquaredEuclidean is PairwiseEuclidean without the square root.
func PairwiseSquaredEuclidean(x, y *mat.Dense) *mat.Dense {
	return pairwiseL2(x, y, false)
}

func pairwiseL2(x, y *mat.Dense, sqrt bool) *mat.Dense {
	n, _ := x.Dims()
	k, _ := y.Dims()

	xNorms := rowNorms(x)
	yNorms := rowNorms(y)

	// dots = x yᵀ in a single GEMM.
	var dots mat.Dense
	dots.Mul(x, y.T())

	out := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			d := xNorms[i] + yNorms[j] - 2*dots.At(i, j)
			if d < 0 {
				d = 0
			}
			if sqrt {
				d = math.Sqrt(d)
			}
			out.Set(i, j, d)
		}
	}
	return out
}

func rowNorms(m *mat.Dense) []float64 {
	r, _ := m.Dims()
	norms := make([]float64, r)
	for i := 0; i < r; i++ {
		row := m.RawRowView(i)
		var s float64
		for _, v := range row {
			s += v * v
		}
		norms[i] = s
	}
	return norms
}

// PairwiseProvider returns the pairwise distance function for the given
// metric. Euclidean variants use the vectorized path; other metrics are
// lifted from their point-pair form.
func PairwiseProvider(m Metric) (PairwiseFunc, error) {
	switch m {
	case MetricEuclidean:
		return PairwiseEuclidean, nil
	case MetricSquaredEuclidean:
		return PairwiseSquaredEuclidean, nil
	default:
		f, err := Provider(m)
		if err != nil {
			return nil, err
		}
		return Pairwise(f), nil
	}
}
