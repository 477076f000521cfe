package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("valid matrix", func(t *testing.T) {
		rows, cols, err := Validate([][]float64{{1, 2}, {3, 4}, {5, 6}})
		require.NoError(t, err)
		assert.Equal(t, 3, rows)
		assert.Equal(t, 2, cols)
	})

	t.Run("single row", func(t *testing.T) {
		rows, cols, err := Validate([][]float64{{1, 2, 3}})
		require.NoError(t, err)
		assert.Equal(t, 1, rows)
		assert.Equal(t, 3, cols)
	})

	t.Run("nil matrix", func(t *testing.T) {
		_, _, err := Validate(nil)
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("no rows", func(t *testing.T) {
		_, _, err := Validate([][]float64{})
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("no columns", func(t *testing.T) {
		_, _, err := Validate([][]float64{{}, {}})
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("ragged row", func(t *testing.T) {
		_, _, err := Validate([][]float64{{1, 2}, {3}})

		var ragged *ErrRaggedRow
		require.ErrorAs(t, err, &ragged)
		assert.Equal(t, 1, ragged.Row)
		assert.Equal(t, 2, ragged.Expected)
		assert.Equal(t, 1, ragged.Actual)
	})

	t.Run("NaN value", func(t *testing.T) {
		_, _, err := Validate([][]float64{{1, 2}, {math.NaN(), 4}})

		var nf *ErrNotFinite
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, 1, nf.Row)
		assert.Equal(t, 0, nf.Col)
	})

	t.Run("Inf value", func(t *testing.T) {
		_, _, err := Validate([][]float64{{1, math.Inf(1)}})

		var nf *ErrNotFinite
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, 0, nf.Row)
		assert.Equal(t, 1, nf.Col)
	})
}

func TestDims(t *testing.T) {
	rows, cols := Dims([][]float64{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)

	rows, cols = Dims(nil)
	assert.Equal(t, 0, rows)
	assert.Equal(t, 0, cols)
}

func TestClone(t *testing.T) {
	orig := [][]float64{{1, 2}, {3, 4}}
	cp := Clone(orig)

	require.Equal(t, orig, cp)

	cp[0][0] = 99
	cp[1] = append(cp[1], 5)
	assert.Equal(t, 1.0, orig[0][0])
	assert.Len(t, orig[1], 2)
}
