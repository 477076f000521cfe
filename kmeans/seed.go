package kmeans

import (
	"math/rand"

	"github.com/Undertaker049/KORA/internal/f64"
)

// seedCentroids picks k initial centroids from data using k-means++
// weighting: the first centroid is drawn uniformly, each subsequent one with
// probability proportional to its squared distance to the nearest already
// chosen centroid. The returned centroids are copies, never aliases of data
// rows.
func seedCentroids(rng *rand.Rand, data [][]float64, k int) [][]float64 {
	dim := len(data[0])

	centroids := make([][]float64, k)
	for i := range centroids {
		centroids[i] = make([]float64, dim)
	}

	firstIdx := rng.Intn(len(data))
	copy(centroids[0], data[firstIdx])

	// minDistSq tracks each sample's squared distance to its nearest chosen centroid.
	minDistSq := make([]float64, len(data))

	var sum float64

	for i, row := range data {
		d := f64.SquaredL2(row, centroids[0])
		minDistSq[i] = d
		sum += d
	}

	for c := 1; c < k; c++ {
		if sum == 0 {
			// All remaining mass is zero (duplicate points); fall back to uniform.
			idx := rng.Intn(len(data))
			copy(centroids[c], data[idx])

			continue
		}

		// Sample proportional to squared distance (already squared in minDistSq).
		target := rng.Float64() * sum

		var cumsum float64

		chosen := 0

		for i, d := range minDistSq {
			cumsum += d
			if cumsum >= target {
				chosen = i
				break
			}
		}

		copy(centroids[c], data[chosen])

		// Update minDistSq incrementally (O(n) per centroid).
		sum = 0

		for i, row := range data {
			d := f64.SquaredL2(row, centroids[c])
			if d < minDistSq[i] {
				minDistSq[i] = d
			}

			sum += minDistSq[i]
		}
	}

	return centroids
}
