// Package analyze inspects fitted partitions: cluster sizes, per-feature
// descriptive statistics, and outlier detection.
package analyze

import (
	"fmt"

	"github.com/Undertaker049/KORA/matrix"
	"github.com/Undertaker049/KORA/partition"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sizes tallies the number of samples per cluster label. Only labels that
// occur appear as keys.
func Sizes(assignments []int) map[int]int {
	sizes := make(map[int]int)

	for _, label := range assignments {
		sizes[label]++
	}

	return sizes
}

// FeatureStats holds the descriptive statistics of one feature within one
// cluster. Std is the sample standard deviation and is NaN for singleton
// clusters.
type FeatureStats struct {
	Name string
	Mean float64
	Std  float64
	Min  float64
	Max  float64
}

// ClusterStats summarizes one non-empty cluster.
type ClusterStats struct {
	ID         int
	Size       int
	Percentage float64 // Share of all samples, in percent
	Features   []FeatureStats
}

// Stats computes per-cluster, per-feature descriptive statistics. Empty
// clusters produce no entry; entries are ordered by cluster ID. When
// featureNames is nil, names are generated as "Feature_0", "Feature_1", ...
func Stats(data [][]float64, assignments []int, featureNames []string) ([]ClusterStats, error) {
	p, cols, err := buildPartition(data, assignments)
	if err != nil {
		return nil, err
	}

	if featureNames == nil {
		featureNames = make([]string, cols)
		for j := range featureNames {
			featureNames[j] = fmt.Sprintf("Feature_%d", j)
		}
	} else if len(featureNames) != cols {
		return nil, &ErrFeatureNameCount{Columns: cols, Names: len(featureNames)}
	}

	stats := make([]ClusterStats, 0, p.NumClusters())
	col := make([]float64, 0, p.Len())

	for c := 0; c < p.NumClusters(); c++ {
		size := p.Size(c)
		if size == 0 {
			continue
		}

		cs := ClusterStats{
			ID:         c,
			Size:       size,
			Percentage: float64(size) / float64(p.Len()) * 100,
			Features:   make([]FeatureStats, cols),
		}

		for j := 0; j < cols; j++ {
			col = col[:0]

			for i := range p.Members(c) {
				col = append(col, data[i][j])
			}

			cs.Features[j] = FeatureStats{
				Name: featureNames[j],
				Mean: stat.Mean(col, nil),
				Std:  stat.StdDev(col, nil),
				Min:  floats.Min(col),
				Max:  floats.Max(col),
			}
		}

		stats = append(stats, cs)
	}

	return stats, nil
}

// buildPartition validates the data matrix and the assignment vector and
// groups the assignments. The cluster count is inferred from the highest
// label so that negative labels surface as partition range errors.
func buildPartition(data [][]float64, assignments []int) (*partition.Partition, int, error) {
	rows, cols, err := matrix.Validate(data)
	if err != nil {
		return nil, 0, err
	}

	if len(assignments) != rows {
		return nil, 0, &ErrAssignmentLength{Rows: rows, Labels: len(assignments)}
	}

	k := 0

	for _, label := range assignments {
		if label+1 > k {
			k = label + 1
		}
	}

	if k == 0 {
		k = 1
	}

	p, err := partition.New(assignments, k)
	if err != nil {
		return nil, 0, err
	}

	return p, cols, nil
}
