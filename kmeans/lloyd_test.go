package kmeans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestTieBreak(t *testing.T) {
	// Equidistant centroids resolve to the lowest index.
	idx, dist := nearest([]float64{0, 0}, [][]float64{{1, 0}, {-1, 0}})
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1.0, dist)

	idx, dist = nearest([]float64{0.9, 0}, [][]float64{{1, 0}, {-1, 0}})
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 0.01, dist, 1e-12)
}

func TestRunLloydRelocatesEmptyCluster(t *testing.T) {
	// Identical initial centroids leave cluster 1 starved after the first
	// assignment; the farthest sample must be relocated into it.
	data := [][]float64{{0, 0}, {1, 0}, {10, 10}}
	centroids := [][]float64{{0, 0}, {0, 0}}

	res := runLloyd(data, centroids, 100, 1e-4)

	assert.True(t, res.converged)
	assert.Equal(t, []int{0, 0, 1}, res.labels)
	assert.InDelta(t, 0.5, res.inertia, 1e-12)

	require.Len(t, res.centroids, 2)
	assert.InDelta(t, 0.5, res.centroids[0][0], 1e-12)
	assert.InDelta(t, 0.0, res.centroids[0][1], 1e-12)
	assert.InDelta(t, 10.0, res.centroids[1][0], 1e-12)
	assert.InDelta(t, 10.0, res.centroids[1][1], 1e-12)
}

func TestRunLloydKeepsStarvedCentroidInPlace(t *testing.T) {
	// A single sample cannot feed two clusters; the unfed centroid must not
	// be divided by a zero count.
	data := [][]float64{{0, 0}}
	centroids := [][]float64{{1, 0}, {-1, 0}}

	res := runLloyd(data, centroids, 50, 1e-4)

	assert.True(t, res.converged)
	assert.Equal(t, []int{0}, res.labels)
	assert.Zero(t, res.inertia)
	assert.Equal(t, []float64{-1, 0}, res.centroids[1])
}

func TestRunLloydInertiaMonotonicInBudget(t *testing.T) {
	data := twoBlobs()

	// Fixed poor initialization; deeper budgets may only improve the fit.
	initial := func() [][]float64 {
		return [][]float64{{0, 0}, {0, 1}}
	}

	prev := -1.0

	for budget := 1; budget <= 6; budget++ {
		res := runLloyd(data, initial(), budget, 1e-4)

		assert.GreaterOrEqual(t, res.inertia, 0.0)

		if prev >= 0 {
			assert.LessOrEqual(t, res.inertia, prev, "budget %d", budget)
		}

		prev = res.inertia
	}
}

func TestRunLloydIterationAccounting(t *testing.T) {
	res := runLloyd(twoBlobs(), [][]float64{{0, 0}, {10, 10}}, 1, 1e-4)

	assert.Equal(t, 1, res.iterations)
	assert.False(t, res.converged)

	res = runLloyd(twoBlobs(), [][]float64{{0, 0}, {10, 10}}, 300, 1e-4)

	assert.True(t, res.converged)
	assert.LessOrEqual(t, res.iterations, 300)
	assert.GreaterOrEqual(t, res.iterations, 1)
}
