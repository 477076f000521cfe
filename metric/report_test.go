package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("two blobs yield a full report", func(t *testing.T) {
		r, err := Evaluate(twoBlobs(), blobLabels(), nil)
		require.NoError(t, err)

		assert.InDelta(t, 8.0/3.0, r.Inertia(), 1e-9)

		sil, ok := r.Silhouette()
		require.True(t, ok)
		assert.InDelta(t, 0.91962, sil, 1e-4)

		vr, ok := r.VarianceRatio()
		require.True(t, ok)
		assert.InDelta(t, 450.0, vr, 1e-9)

		si, ok := r.SimilarityIndex()
		require.True(t, ok)
		assert.InDelta(t, 0.0925, si, 1e-4)
	})

	t.Run("single cluster keeps inertia only", func(t *testing.T) {
		r, err := Evaluate(twoBlobs(), []int{0, 0, 0, 0, 0, 0}, nil)
		require.NoError(t, err)

		assert.InDelta(t, 2724.0/9.0, r.Inertia(), 1e-9)

		_, ok := r.Silhouette()
		assert.False(t, ok)

		_, ok = r.VarianceRatio()
		assert.False(t, ok)

		_, ok = r.SimilarityIndex()
		assert.False(t, ok)
	})

	t.Run("fitted inertia is adopted verbatim", func(t *testing.T) {
		fitted := 42.5

		r, err := Evaluate(twoBlobs(), blobLabels(), &fitted)
		require.NoError(t, err)
		assert.Equal(t, 42.5, r.Inertia())

		// The remaining metrics are still computed from the data.
		_, ok := r.Silhouette()
		assert.True(t, ok)
	})

	t.Run("assignment length mismatch", func(t *testing.T) {
		_, err := Evaluate(twoBlobs(), []int{0, 1}, nil)

		var lenErr *ErrAssignmentLength
		require.ErrorAs(t, err, &lenErr)
		assert.Equal(t, 6, lenErr.Rows)
		assert.Equal(t, 2, lenErr.Labels)
	})
}

func TestReportFields(t *testing.T) {
	t.Run("defined metrics appear under their report names", func(t *testing.T) {
		r, err := Evaluate(twoBlobs(), blobLabels(), nil)
		require.NoError(t, err)

		fields := r.Fields()
		require.Len(t, fields, 4)

		assert.InDelta(t, 8.0/3.0, fields[MetricInertia], 1e-9)

		sil, _ := r.Silhouette()
		assert.Equal(t, sil, fields[MetricSilhouette])

		vr, _ := r.VarianceRatio()
		assert.Equal(t, vr, fields[MetricVarianceRatio])

		si, _ := r.SimilarityIndex()
		assert.Equal(t, si, fields[MetricSimilarityIndex])
	})

	t.Run("undefined metrics are omitted", func(t *testing.T) {
		r, err := Evaluate(twoBlobs(), []int{0, 0, 0, 0, 0, 0}, nil)
		require.NoError(t, err)

		fields := r.Fields()
		require.Len(t, fields, 1)
		assert.Contains(t, fields, MetricInertia)
	})
}
