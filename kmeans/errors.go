package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFitted is returned when an operation requiring a fitted model is
	// called before a successful Fit.
	ErrNotFitted = errors.New("model is not fitted")

	// ErrEmptySweep is returned when an elbow sweep receives no cluster counts.
	ErrEmptySweep = errors.New("no cluster counts to sweep")
)

// ErrInvalidClusterCount is a named error type for a non-positive cluster count.
type ErrInvalidClusterCount struct {
	K int // Configured cluster count
}

func (e *ErrInvalidClusterCount) Error() string {
	return fmt.Sprintf("invalid cluster count: %d", e.K)
}

// ErrTooManyClusters is a named error type for a cluster count exceeding the
// sample count.
type ErrTooManyClusters struct {
	K       int // Configured cluster count
	Samples int // Number of samples
}

func (e *ErrTooManyClusters) Error() string {
	return fmt.Sprintf("cluster count %d exceeds sample count %d", e.K, e.Samples)
}

// ErrDimensionMismatch is a named error type for input whose width differs
// from the fitted centroids.
type ErrDimensionMismatch struct {
	Expected int // Fitted dimensionality
	Actual   int // Input dimensionality
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrSweepFailed is a named error type for an elbow sweep aborted by a
// failing cluster count.
//
// The underlying fit error can be accessed via errors.Unwrap.
type ErrSweepFailed struct {
	K     int // Cluster count whose fit failed
	cause error
}

func (e *ErrSweepFailed) Error() string {
	return fmt.Sprintf("sweep failed at k=%d: %v", e.K, e.cause)
}

func (e *ErrSweepFailed) Unwrap() error { return e.cause }
