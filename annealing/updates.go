package annealing

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// expRow fills w with exp(-beta·(d_j - min_j d_j)) for one distance row.
//
// Both the eta and Gibbs expressions are invariant under per-row scaling of
// the exponential term, so shifting by the row minimum is exact in real
// arithmetic while keeping the largest entry at exp(0)=1. This prevents the
// all-entries-underflow degeneracy that otherwise turns the softmax
// denominators into 0/0 at very low temperatures.
func expRow(w, dists []float64, beta float64) {
	shift := dists[0]
	for _, d := range dists[1:] {
		if d < shift {
			shift = d
		}
	}
	for j, d := range dists {
		w[j] = math.Exp(-beta * (d - shift))
	}
}

// updateEta performs one fixed-point step of the capacity multipliers:
//
//	eta_j ← lambda_j / Σ_i demand_i·exp(-beta·d_ij) / Σ_j' eta_j'·exp(-beta·d_ij')
//
// A cluster whose accumulated mass underflows to zero keeps its previous
// multiplier instead of producing ∞.
func updateEta(lambda, eta, demand []float64, dists *mat.Dense, beta float64) []float64 {
	n, k := dists.Dims()
	mass := make([]float64, k)
	w := make([]float64, k)

	for i := 0; i < n; i++ {
		expRow(w, dists.RawRowView(i), beta)
		var denom float64
		for j := 0; j < k; j++ {
			denom += eta[j] * w[j]
		}
		if denom <= 0 {
			continue
		}
		scale := demand[i] / denom
		for j := 0; j < k; j++ {
			mass[j] += w[j] * scale
		}
	}

	next := make([]float64, k)
	for j := 0; j < k; j++ {
		if mass[j] > 0 {
			next[j] = lambda[j] / mass[j]
		} else {
			next[j] = eta[j]
		}
	}
	return next
}

// updateGibbs computes the soft assignment:
//
//	gibbs_ij = eta_j·exp(-beta·d_ij) / Σ_j' eta_j'·exp(-beta·d_ij')
//
// Each row sums to 1. A row whose denominator underflows to zero falls back
// to a one-hot assignment at the nearest center, the beta→∞ limit.
func updateGibbs(eta []float64, dists *mat.Dense, beta float64) *mat.Dense {
	n, k := dists.Dims()
	gibbs := mat.NewDense(n, k, nil)
	w := make([]float64, k)

	for i := 0; i < n; i++ {
		row := dists.RawRowView(i)
		expRow(w, row, beta)

		var z float64
		for j := 0; j < k; j++ {
			w[j] *= eta[j]
			z += w[j]
		}

		if z > 0 {
			for j := 0; j < k; j++ {
				gibbs.Set(i, j, w[j]/z)
			}
			continue
		}

		// Hard nearest-center fallback.
		best := 0
		for j := 1; j < k; j++ {
			if row[j] < row[best] {
				best = j
			}
		}
		gibbs.Set(i, best, 1)
	}
	return gibbs
}

// updateCenters recomputes cluster centers as demand-weighted centroids of
// the soft assignment:
//
//	center_j = Σ_i gibbs_ij·demand_i·x_i / Σ_i gibbs_ij·demand_i
//
// A cluster with zero accumulated mass keeps its previous center.
func updateCenters(demand []float64, gibbs, x, prev *mat.Dense) *mat.Dense {
	n, d := x.Dims()
	_, k := gibbs.Dims()

	// xw_i = demand_i·x_i, so the numerator is the single GEMM gibbsᵀ·xw.
	xw := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		xi := x.RawRowView(i)
		wi := xw.RawRowView(i)
		for c := 0; c < d; c++ {
			wi[c] = xi[c] * demand[i]
		}
	}

	var num mat.Dense
	num.Mul(gibbs.T(), xw)

	mass := make([]float64, k)
	for i := 0; i < n; i++ {
		gi := gibbs.RawRowView(i)
		for j := 0; j < k; j++ {
			mass[j] += gi[j] * demand[i]
		}
	}

	centers := mat.NewDense(k, d, nil)
	for j := 0; j < k; j++ {
		if mass[j] > 0 {
			inv := 1 / mass[j]
			nj := num.RawRowView(j)
			cj := centers.RawRowView(j)
			for c := 0; c < d; c++ {
				cj[c] = nj[c] * inv
			}
		} else {
			centers.SetRow(j, prev.RawRowView(j))
		}
	}
	return centers
}

// argmaxRows derives hard labels from the soft assignment.
func argmaxRows(gibbs *mat.Dense) []int {
	n, k := gibbs.Dims()
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		row := gibbs.RawRowView(i)
		best := 0
		for j := 1; j < k; j++ {
			if row[j] > row[best] {
				best = j
			}
		}
		labels[i] = best
	}
	return labels
}
