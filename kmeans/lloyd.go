package kmeans

import (
	"math"

	"github.com/Undertaker049/KORA/internal/f64"
)

// lloydResult is the outcome of a single restart.
type lloydResult struct {
	centroids  [][]float64
	labels     []int
	inertia    float64
	iterations int
	converged  bool
}

// nearest returns the index of the centroid closest to row by squared
// Euclidean distance, and that distance. Ties resolve to the lowest centroid
// index.
func nearest(row []float64, centroids [][]float64) (int, float64) {
	best := 0
	bestDist := math.MaxFloat64

	for c, centroid := range centroids {
		if d := f64.SquaredL2(row, centroid); d < bestDist {
			bestDist = d
			best = c
		}
	}

	return best, bestDist
}

// runLloyd iterates assignment and update steps until the summed centroid
// movement drops below tol or maxIter is exhausted. Exhaustion is not an
// error; the result is simply marked not converged. The initial centroids
// are mutated in place and owned by the result.
func runLloyd(data [][]float64, centroids [][]float64, maxIter int, tol float64) lloydResult {
	n := len(data)
	k := len(centroids)
	dim := len(data[0])

	labels := make([]int, n)
	dists := make([]float64, n)
	counts := make([]int, k)

	// Per-cluster accumulation buffers backed by one allocation.
	flat := make([]float64, k*dim)
	sums := make([][]float64, k)
	for c := range sums {
		sums[c] = flat[c*dim : (c+1)*dim]
	}

	var (
		iterations int
		converged  bool
	)

	for iterations < maxIter {
		iterations++

		// Assignment step.
		for i, row := range data {
			labels[i], dists[i] = nearest(row, centroids)
		}

		// Update step: accumulate per-cluster sums.
		clear(flat)
		clear(counts)

		for i, row := range data {
			c := labels[i]
			counts[c]++
			f64.AddInPlace(sums[c], row)
		}

		relocateEmpty(data, labels, dists, counts, sums)

		// Divide sums into means and measure the total movement.
		var shift float64

		for c, centroid := range centroids {
			if counts[c] == 0 {
				// Fewer than k distinct points; the centroid stays put.
				continue
			}

			f64.ScaleInPlace(sums[c], 1/float64(counts[c]))
			shift += f64.L2(centroid, sums[c])
			copy(centroid, sums[c])
		}

		if shift < tol {
			converged = true
			break
		}
	}

	// Final assignment against the final centroids; inertia comes from this
	// pass so it always matches the returned labels.
	var inertia float64

	for i, row := range data {
		var d float64
		labels[i], d = nearest(row, centroids)
		inertia += d
	}

	return lloydResult{
		centroids:  centroids,
		labels:     labels,
		inertia:    inertia,
		iterations: iterations,
		converged:  converged,
	}
}

// relocateEmpty reseeds every cluster that received no samples to the sample
// farthest from its own assigned centroid, lowest sample index on ties. The
// sample moves into the reseeded cluster so that no cluster stays starved;
// samples whose departure would empty their current cluster are not eligible.
func relocateEmpty(data [][]float64, labels []int, dists []float64, counts []int, sums [][]float64) {
	for c := range counts {
		if counts[c] > 0 {
			continue
		}

		s := -1
		best := -1.0

		for i, d := range dists {
			if counts[labels[i]] <= 1 {
				continue
			}

			if d > best {
				best = d
				s = i
			}
		}

		if s < 0 {
			// No eligible donor; leave the cluster empty.
			continue
		}

		donor := labels[s]
		counts[donor]--

		for j, v := range data[s] {
			sums[donor][j] -= v
		}

		labels[s] = c
		counts[c] = 1
		dists[s] = 0
		copy(sums[c], data[s])
	}
}
