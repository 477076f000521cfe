package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Undertaker049/KORA/testutil"
)

func TestSilhouetteSamples(t *testing.T) {
	t.Run("two blobs score high", func(t *testing.T) {
		scores, err := SilhouetteSamples(twoBlobs(), blobLabels())
		require.NoError(t, err)
		require.Len(t, scores, 6)

		for i, s := range scores {
			assert.GreaterOrEqual(t, s, -1.0, "sample %d", i)
			assert.LessOrEqual(t, s, 1.0, "sample %d", i)
			assert.Greater(t, s, 0.9, "sample %d", i)
		}

		// Corner point (0,0): a=1, b=(sqrt(200)+2*sqrt(221))/3.
		assert.InDelta(t, 0.93162, scores[0], 1e-4)
		assert.InDelta(t, 0.91338, scores[1], 1e-4)
		assert.InDelta(t, scores[1], scores[2], 1e-12)
	})

	t.Run("single cluster yields zero vector", func(t *testing.T) {
		scores, err := SilhouetteSamples(twoBlobs(), []int{0, 0, 0, 0, 0, 0})
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, scores)
	})

	t.Run("singleton cluster scores zero", func(t *testing.T) {
		data := [][]float64{{1, 1}, {1, 1}, {2, 2}}
		scores, err := SilhouetteSamples(data, []int{0, 0, 1})
		require.NoError(t, err)

		// Coincident pair fits its cluster perfectly, singleton scores 0.
		assert.InDelta(t, 1.0, scores[0], 1e-12)
		assert.InDelta(t, 1.0, scores[1], 1e-12)
		assert.Zero(t, scores[2])
	})

	t.Run("zero over zero scores zero", func(t *testing.T) {
		data := [][]float64{{3, 3}, {3, 3}, {3, 3}, {3, 3}}
		scores, err := SilhouetteSamples(data, []int{0, 0, 1, 1})
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0, 0, 0}, scores)
	})

	t.Run("misassigned samples score negative", func(t *testing.T) {
		// Each cluster holds one point from each blob, so every sample is
		// exactly as far from its partner as from half the other cluster.
		data := [][]float64{{0, 0}, {5, 5}, {5, 5}, {0, 0}}
		scores, err := SilhouetteSamples(data, []int{0, 0, 1, 1})
		require.NoError(t, err)

		for i, s := range scores {
			assert.InDelta(t, -0.5, s, 1e-12, "sample %d", i)
		}
	})
}

func TestSilhouette(t *testing.T) {
	t.Run("two blobs", func(t *testing.T) {
		mean, err := Silhouette(twoBlobs(), blobLabels())
		require.NoError(t, err)
		assert.InDelta(t, 0.91962, mean, 1e-4)
	})

	t.Run("mean of mixed partition", func(t *testing.T) {
		data := [][]float64{{0, 0}, {5, 5}, {5, 5}, {0, 0}}
		mean, err := Silhouette(data, []int{0, 0, 1, 1})
		require.NoError(t, err)
		assert.InDelta(t, -0.5, mean, 1e-12)
	})

	t.Run("all singletons average zero", func(t *testing.T) {
		data := [][]float64{{0, 0}, {5, 5}, {9, 0}}
		mean, err := Silhouette(data, []int{0, 1, 2})
		require.NoError(t, err)
		assert.Zero(t, mean)
	})

	t.Run("undefined for one cluster", func(t *testing.T) {
		_, err := Silhouette(twoBlobs(), []int{0, 0, 0, 0, 0, 0})

		var deg *ErrDegenerate
		require.ErrorAs(t, err, &deg)
		assert.Equal(t, MetricSilhouette, deg.Metric)
		assert.Equal(t, 1, deg.Clusters)
		assert.Equal(t, 6, deg.Samples)
	})
}

func TestSilhouetteSamplesRange(t *testing.T) {
	rng := testutil.NewRNG(99)
	data, labels := rng.Blobs(120, 3, 4, 1.5)

	// Corrupt a tenth of the labels so scores span more of the range.
	for range 12 {
		labels[rng.Intn(len(labels))] = rng.Intn(4)
	}

	scores, err := SilhouetteSamples(data, labels)
	require.NoError(t, err)
	require.Len(t, scores, 120)

	for _, score := range scores {
		assert.GreaterOrEqual(t, score, -1.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}
