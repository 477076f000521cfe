package kmeans

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCentroids(t *testing.T) {
	data := [][]float64{{0, 0}, {0, 1}, {1, 0}, {10, 10}, {10, 11}}

	t.Run("picks data rows", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1)) // nolint gosec
		centroids := seedCentroids(rng, data, 3)
		require.Len(t, centroids, 3)

		for _, c := range centroids {
			assert.Contains(t, data, c)
		}
	})

	t.Run("deterministic for a fixed source", func(t *testing.T) {
		a := seedCentroids(rand.New(rand.NewSource(42)), data, 3) // nolint gosec
		b := seedCentroids(rand.New(rand.NewSource(42)), data, 3) // nolint gosec
		assert.Equal(t, a, b)
	})

	t.Run("returns copies", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7)) // nolint gosec
		centroids := seedCentroids(rng, data, 2)

		centroids[0][0] = 1e9
		for _, row := range data {
			assert.NotEqual(t, 1e9, row[0])
		}
	})

	t.Run("uniform fallback on duplicate points", func(t *testing.T) {
		same := [][]float64{{5, 5}, {5, 5}, {5, 5}}
		rng := rand.New(rand.NewSource(3)) // nolint gosec

		centroids := seedCentroids(rng, same, 2)
		assert.Equal(t, []float64{5, 5}, centroids[0])
		assert.Equal(t, []float64{5, 5}, centroids[1])
	})
}
