package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformMatrix generates rows with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformMatrix(num, dim int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	rows := make([][]float64, num)

	for i := range num {
		row := data[i*dim : (i+1)*dim]
		for j := range row {
			row[j] = r.rand.Float64()
		}
		rows[i] = row
	}

	return rows
}

// GaussianMatrix generates rows with values from a standard normal
// distribution.
func (r *RNG) GaussianMatrix(num, dim int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	rows := make([][]float64, num)

	for i := range num {
		row := data[i*dim : (i+1)*dim]
		for j := range row {
			row[j] = r.rand.NormFloat64()
		}
		rows[i] = row
	}

	return rows
}

// Blobs generates rows scattered around random centroids and returns them
// together with the generating assignment. Row i belongs to centroid
// i%clusters; centroid coordinates are uniform in [-10, 10) and rows add
// Gaussian noise scaled by spread.
func (r *RNG) Blobs(num, dim, clusters int, spread float64) ([][]float64, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	centroids := make([][]float64, clusters)
	for c := range centroids {
		centroid := make([]float64, dim)
		for j := range centroid {
			centroid[j] = r.rand.Float64()*20 - 10
		}
		centroids[c] = centroid
	}

	data := make([]float64, num*dim)
	rows := make([][]float64, num)
	labels := make([]int, num)

	for i := range num {
		centroid := centroids[i%clusters]
		row := data[i*dim : (i+1)*dim]

		for j := range row {
			row[j] = centroid[j] + r.rand.NormFloat64()*spread
		}

		rows[i] = row
		labels[i] = i % clusters
	}

	return rows, labels
}
