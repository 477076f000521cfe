package kmeans

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElbow(t *testing.T) {
	km := seeded(42, func(o *Options) { o.NClusters = 2; o.NRestarts = 5 })

	curve, err := km.Elbow(context.Background(), twoBlobs(), []int{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, curve.K)
	require.Len(t, curve.Inertia, 3)

	// k=1 collapses everything onto the global mean (16/3, 16/3).
	assert.InDelta(t, 2724.0/9.0, curve.Inertia[0], 1e-9)

	// k=2 recovers the two blobs.
	assert.InDelta(t, 8.0/3.0, curve.Inertia[1], 1e-9)

	// Splitting a blob further can only shed inertia.
	assert.Greater(t, curve.Inertia[0], curve.Inertia[1])
	assert.Greater(t, curve.Inertia[1], curve.Inertia[2])
	assert.Greater(t, curve.Inertia[2], 0.0)
}

func TestElbowPreservesInputOrder(t *testing.T) {
	km := seeded(42, func(o *Options) { o.NRestarts = 5 })

	curve, err := km.Elbow(context.Background(), twoBlobs(), []int{3, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, []int{3, 1, 2}, curve.K)
	assert.InDelta(t, 2724.0/9.0, curve.Inertia[1], 1e-9)
	assert.InDelta(t, 8.0/3.0, curve.Inertia[2], 1e-9)
}

func TestElbowDeterministic(t *testing.T) {
	a := seeded(9, func(o *Options) { o.NRestarts = 4 })
	b := seeded(9, func(o *Options) { o.NRestarts = 4 })

	ca, err := a.Elbow(context.Background(), twoBlobs(), []int{1, 2, 3, 4})
	require.NoError(t, err)
	cb, err := b.Elbow(context.Background(), twoBlobs(), []int{1, 2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, ca.K, cb.K)
	assert.Equal(t, ca.Inertia, cb.Inertia)
}

func TestElbowErrors(t *testing.T) {
	km := seeded(1)

	t.Run("empty sweep", func(t *testing.T) {
		_, err := km.Elbow(context.Background(), twoBlobs(), nil)
		assert.ErrorIs(t, err, ErrEmptySweep)
	})

	t.Run("invalid matrix", func(t *testing.T) {
		_, err := km.Elbow(context.Background(), nil, []int{1, 2})
		assert.Error(t, err)
	})

	t.Run("aborts on failing k", func(t *testing.T) {
		_, err := km.Elbow(context.Background(), twoBlobs(), []int{1, 99})

		var sf *ErrSweepFailed
		require.ErrorAs(t, err, &sf)
		assert.Equal(t, 99, sf.K)

		var tmc *ErrTooManyClusters
		assert.ErrorAs(t, err, &tmc)
	})

	t.Run("rejects non-positive k", func(t *testing.T) {
		_, err := km.Elbow(context.Background(), twoBlobs(), []int{0})

		var sf *ErrSweepFailed
		require.ErrorAs(t, err, &sf)
		assert.Equal(t, 0, sf.K)

		var icc *ErrInvalidClusterCount
		assert.ErrorAs(t, err, &icc)
	})
}
