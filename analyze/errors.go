package analyze

import "fmt"

// ErrUnknownOutlierMethod is a named error type for an outlier detection
// method name that matches no supported method.
type ErrUnknownOutlierMethod struct {
	Method string // Rejected method name
}

func (e *ErrUnknownOutlierMethod) Error() string {
	return fmt.Sprintf("unknown outlier detection method: %q", e.Method)
}

// ErrAssignmentLength is a named error type for a label vector whose length
// differs from the matrix row count.
type ErrAssignmentLength struct {
	Rows   int // Number of matrix rows
	Labels int // Number of labels supplied
}

func (e *ErrAssignmentLength) Error() string {
	return fmt.Sprintf("assignment length %d does not match %d samples", e.Labels, e.Rows)
}

// ErrFeatureNameCount is a named error type for a feature name list that
// does not cover the matrix columns.
type ErrFeatureNameCount struct {
	Columns int // Number of matrix columns
	Names   int // Number of names supplied
}

func (e *ErrFeatureNameCount) Error() string {
	return fmt.Sprintf("got %d feature names for %d columns", e.Names, e.Columns)
}
