// Package partition groups sample indices by cluster assignment.
//
// A Partition is an immutable view over a label vector: one roaring bitmap
// per cluster holds the indices of the samples assigned to it, so downstream
// consumers can walk each cluster's members in ascending order without
// rescanning the label vector.
package partition

import (
	"errors"
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// ErrEmptyAssignments is returned when the label vector contains no entries.
var ErrEmptyAssignments = errors.New("no assignments")

// ErrInvalidClusterCount is returned when the cluster count is not positive.
var ErrInvalidClusterCount = errors.New("cluster count must be positive")

// ErrLabelOutOfRange is a named error type for labels outside [0, k).
type ErrLabelOutOfRange struct {
	Sample      int // Index of the offending sample
	Label       int // Offending label value
	NumClusters int // Number of clusters
}

// Error returns the error message for an out-of-range label.
func (e *ErrLabelOutOfRange) Error() string {
	return fmt.Sprintf("label %d of sample %d out of range [0, %d)", e.Label, e.Sample, e.NumClusters)
}

// Partition is a grouped view of a cluster assignment vector.
type Partition struct {
	numClusters int
	labels      []int
	clusters    []*roaring.Bitmap
}

// New builds a Partition from a label vector over numClusters clusters.
// Every label must lie in [0, numClusters).
func New(labels []int, numClusters int) (*Partition, error) {
	if numClusters < 1 {
		return nil, ErrInvalidClusterCount
	}

	if len(labels) == 0 {
		return nil, ErrEmptyAssignments
	}

	clusters := make([]*roaring.Bitmap, numClusters)
	for c := range clusters {
		clusters[c] = roaring.New()
	}

	owned := make([]int, len(labels))
	copy(owned, labels)

	for i, label := range owned {
		if label < 0 || label >= numClusters {
			return nil, &ErrLabelOutOfRange{Sample: i, Label: label, NumClusters: numClusters}
		}

		clusters[label].Add(uint32(i))
	}

	return &Partition{
		numClusters: numClusters,
		labels:      owned,
		clusters:    clusters,
	}, nil
}

// NumClusters returns the number of clusters, including empty ones.
func (p *Partition) NumClusters() int {
	return p.numClusters
}

// Len returns the number of samples.
func (p *Partition) Len() int {
	return len(p.labels)
}

// Label returns the cluster of sample i.
func (p *Partition) Label(i int) int {
	return p.labels[i]
}

// Assignments returns a copy of the label vector.
func (p *Partition) Assignments() []int {
	out := make([]int, len(p.labels))
	copy(out, p.labels)

	return out
}

// Size returns the number of samples in cluster c, or 0 if c is out of range.
func (p *Partition) Size(c int) int {
	if c < 0 || c >= p.numClusters {
		return 0
	}

	return int(p.clusters[c].GetCardinality())
}

// Counts returns the per-cluster sample counts.
func (p *Partition) Counts() []int {
	counts := make([]int, p.numClusters)
	for c := range counts {
		counts[c] = int(p.clusters[c].GetCardinality())
	}

	return counts
}

// NonEmpty returns the number of clusters with at least one sample.
func (p *Partition) NonEmpty() int {
	var n int

	for _, b := range p.clusters {
		if !b.IsEmpty() {
			n++
		}
	}

	return n
}

// Members returns an iterator over the sample indices of cluster c in
// ascending order. An out-of-range c yields nothing.
func (p *Partition) Members(c int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if c < 0 || c >= p.numClusters {
			return
		}

		it := p.clusters[c].Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
