package metric

import "fmt"

// ErrAssignmentLength is a named error type for a label vector whose length
// differs from the matrix row count.
type ErrAssignmentLength struct {
	Rows   int // Number of matrix rows
	Labels int // Number of labels supplied
}

func (e *ErrAssignmentLength) Error() string {
	return fmt.Sprintf("assignment length %d does not match %d samples", e.Labels, e.Rows)
}

// ErrCentroidDimension is a named error type for a centroid vector whose
// length differs from the matrix column count.
type ErrCentroidDimension struct {
	Cluster  int // Index of the offending centroid
	Expected int // Matrix column count
	Actual   int // Centroid vector length
}

func (e *ErrCentroidDimension) Error() string {
	return fmt.Sprintf("centroid %d has %d dimensions, want %d", e.Cluster, e.Actual, e.Expected)
}

// ErrDegenerate is a named error type for a metric that is mathematically
// undefined at the partition's cluster count.
type ErrDegenerate struct {
	Metric   string // Report name of the metric
	Clusters int    // Non-empty clusters in the partition
	Samples  int    // Number of samples
}

func (e *ErrDegenerate) Error() string {
	return fmt.Sprintf("%s is undefined for %d clusters over %d samples", e.Metric, e.Clusters, e.Samples)
}
