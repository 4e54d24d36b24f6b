package annealing

// capacities derives the per-cluster capacity from the point count and the
// target distribution: capacity_j = n·lambda_j.
func capacities(n int, lambda []float64) []float64 {
	out := make([]float64, len(lambda))
	for j, p := range lambda {
		out[j] = float64(n) * p
	}
	return out
}

// countLabels counts hard labels per cluster.
func countLabels(labels []int, k int) []int {
	counts := make([]int, k)
	for _, l := range labels {
		if l >= 0 && l < k {
			counts[l]++
		}
	}
	return counts
}

// satisfied reports whether every cluster is populated and within capacity.
// Used both as the inner-loop break condition and as the scheduler's exact
// success signal.
func satisfied(counts []int, capacity []float64) bool {
	for j, c := range counts {
		if c == 0 {
			return false
		}
		if float64(c) > capacity[j] {
			return false
		}
	}
	return true
}

// realizedClusters is the number of distinct labels present.
func realizedClusters(counts []int) int {
	var r int
	for _, c := range counts {
		if c > 0 {
			r++
		}
	}
	return r
}
