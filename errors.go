package kora

import (
	"errors"
	"fmt"

	"github.com/Undertaker049/KORA/analyze"
	"github.com/Undertaker049/KORA/kmeans"
	"github.com/Undertaker049/KORA/matrix"
	"github.com/Undertaker049/KORA/metric"
	"github.com/Undertaker049/KORA/partition"
)

var (
	// ErrNotFitted is returned when an operation needs a fitted model and no
	// successful Fit has stored one yet.
	ErrNotFitted = errors.New("model is not fitted")

	// ErrInvalidParameter is returned when a configuration value is out of
	// range or names an unknown strategy.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidInput is returned when the data matrix or the assignments
	// handed to an operation are malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateMetric is returned when a quality metric is mathematically
	// undefined for the current cluster count.
	ErrDegenerateMetric = errors.New("metric undefined for cluster count")
)

// translateError maps errors from the inner packages onto the public
// sentinels so callers can match with errors.Is against a stable set. The
// wrapped cause keeps the detailed type reachable via errors.As.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Not fitted unification.
	if errors.Is(err, kmeans.ErrNotFitted) {
		return fmt.Errorf("%w: %w", ErrNotFitted, err)
	}

	// Input normalization.
	if errors.Is(err, matrix.ErrEmpty) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var ragged *matrix.ErrRaggedRow
	if errors.As(err, &ragged) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var notFinite *matrix.ErrNotFinite
	if errors.As(err, &notFinite) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var dimension *kmeans.ErrDimensionMismatch
	if errors.As(err, &dimension) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var metricLength *metric.ErrAssignmentLength
	if errors.As(err, &metricLength) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var analyzeLength *analyze.ErrAssignmentLength
	if errors.As(err, &analyzeLength) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var nameCount *analyze.ErrFeatureNameCount
	if errors.As(err, &nameCount) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var label *partition.ErrLabelOutOfRange
	if errors.As(err, &label) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// Parameter normalization.
	var clusterCount *kmeans.ErrInvalidClusterCount
	if errors.As(err, &clusterCount) {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	var tooMany *kmeans.ErrTooManyClusters
	if errors.As(err, &tooMany) {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	if errors.Is(err, kmeans.ErrEmptySweep) {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	var method *analyze.ErrUnknownOutlierMethod
	if errors.As(err, &method) {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	// Degenerate metric unification.
	var degenerate *metric.ErrDegenerate
	if errors.As(err, &degenerate) {
		return fmt.Errorf("%w: %w", ErrDegenerateMetric, err)
	}

	return err
}
