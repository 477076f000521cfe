// Package metric computes clustering quality scores from a data matrix and
// an assignment vector.
//
// All functions are pure: they validate their inputs, group samples by
// cluster, and never retain or mutate what they are given. Metrics that are
// undefined for a partition's cluster count return ErrDegenerate from their
// standalone functions and are omitted from Evaluate reports.
package metric

import (
	"github.com/Undertaker049/KORA/internal/f64"
	"github.com/Undertaker049/KORA/matrix"
	"github.com/Undertaker049/KORA/partition"
)

// Metric names used in reports and degenerate-metric errors.
const (
	MetricInertia         = "inertia"
	MetricSilhouette      = "silhouette_score"
	MetricVarianceRatio   = "calinski_harabasz_score"
	MetricSimilarityIndex = "davies_bouldin_score"
)

// buildPartition validates data against labels and groups the sample
// indices by cluster. The cluster count is taken from the largest label.
func buildPartition(data [][]float64, labels []int) (*partition.Partition, error) {
	rows, _, err := matrix.Validate(data)
	if err != nil {
		return nil, err
	}

	if len(labels) != rows {
		return nil, &ErrAssignmentLength{Rows: rows, Labels: len(labels)}
	}

	numClusters := 0

	for _, label := range labels {
		if label >= numClusters {
			numClusters = label + 1
		}
	}

	if numClusters == 0 {
		// Only negative labels present; let partition report the offender.
		numClusters = 1
	}

	return partition.New(labels, numClusters)
}

// clusterMeans returns the mean vector of every cluster. Entries for empty
// clusters are nil.
func clusterMeans(data [][]float64, p *partition.Partition) [][]float64 {
	dim := len(data[0])
	means := make([][]float64, p.NumClusters())

	for c := range means {
		size := p.Size(c)
		if size == 0 {
			continue
		}

		mean := make([]float64, dim)
		for i := range p.Members(c) {
			f64.AddInPlace(mean, data[i])
		}

		f64.ScaleInPlace(mean, 1/float64(size))
		means[c] = mean
	}

	return means
}

// Inertia sums the squared Euclidean distance of every sample to its
// cluster's mean, with the means recomputed from the assignments.
func Inertia(data [][]float64, labels []int) (float64, error) {
	p, err := buildPartition(data, labels)
	if err != nil {
		return 0, err
	}

	return inertia(data, labels, p), nil
}

func inertia(data [][]float64, labels []int, p *partition.Partition) float64 {
	means := clusterMeans(data, p)

	var total float64
	for i, row := range data {
		total += f64.SquaredL2(row, means[labels[i]])
	}

	return total
}

// InertiaWithCentroids sums the squared Euclidean distance of every sample
// to the centroid selected by its label. Unlike Inertia the cluster means
// are supplied rather than recomputed, so holdout data can be scored
// against a fitted model's centroids.
func InertiaWithCentroids(data [][]float64, labels []int, centroids [][]float64) (float64, error) {
	rows, cols, err := matrix.Validate(data)
	if err != nil {
		return 0, err
	}

	if len(labels) != rows {
		return 0, &ErrAssignmentLength{Rows: rows, Labels: len(labels)}
	}

	for c, centroid := range centroids {
		if len(centroid) != cols {
			return 0, &ErrCentroidDimension{Cluster: c, Expected: cols, Actual: len(centroid)}
		}
	}

	for i, label := range labels {
		if label < 0 || label >= len(centroids) {
			return 0, &partition.ErrLabelOutOfRange{Sample: i, Label: label, NumClusters: len(centroids)}
		}
	}

	var total float64
	for i, row := range data {
		total += f64.SquaredL2(row, centroids[labels[i]])
	}

	return total, nil
}
