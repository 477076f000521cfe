// Package matrix provides validation and copying for row-major float64 datasets.
package matrix

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmpty is returned when a dataset contains no rows or no columns.
var ErrEmpty = errors.New("matrix is empty")

// ErrRaggedRow is a named error type for rows whose length differs from the
// first row.
type ErrRaggedRow struct {
	Row      int // Offending row index
	Expected int // Expected row length
	Actual   int // Actual row length
}

// Error returns the error message for a ragged row.
func (e *ErrRaggedRow) Error() string {
	return fmt.Sprintf("ragged matrix: row %d has %d columns, expected %d", e.Row, e.Actual, e.Expected)
}

// ErrNotFinite is a named error type for NaN or Inf values.
type ErrNotFinite struct {
	Row int // Row of the offending value
	Col int // Column of the offending value
}

// Error returns the error message for a non-finite value.
func (e *ErrNotFinite) Error() string {
	return fmt.Sprintf("value at row %d, column %d is not finite", e.Row, e.Col)
}

// Dims returns the number of rows and columns of data. The column count is
// taken from the first row.
func Dims(data [][]float64) (rows, cols int) {
	if len(data) == 0 {
		return 0, 0
	}

	return len(data), len(data[0])
}

// Validate checks that data is non-empty, rectangular, and contains only
// finite values. It returns the dataset dimensions.
func Validate(data [][]float64) (rows, cols int, err error) {
	if len(data) == 0 {
		return 0, 0, ErrEmpty
	}

	cols = len(data[0])
	if cols == 0 {
		return 0, 0, ErrEmpty
	}

	for i, row := range data {
		if len(row) != cols {
			return 0, 0, &ErrRaggedRow{Row: i, Expected: cols, Actual: len(row)}
		}

		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, 0, &ErrNotFinite{Row: i, Col: j}
			}
		}
	}

	return len(data), cols, nil
}

// Clone returns a deep copy of data. Mutating the copy never affects the
// original rows.
func Clone(data [][]float64) [][]float64 {
	out := make([][]float64, len(data))
	for i, row := range data {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out
}
