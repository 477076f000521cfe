package metric

import (
	"github.com/Undertaker049/KORA/internal/f64"
	"github.com/Undertaker049/KORA/partition"
)

// SimilarityIndex returns the Davies-Bouldin score: for every cluster, the
// worst ratio of summed scatter to centroid separation against any other
// cluster, averaged over clusters. Lower is better; 0 means perfectly tight,
// well-separated clusters. Pairs whose centroids coincide contribute nothing
// to the maximum. Undefined for fewer than two non-empty clusters.
func SimilarityIndex(data [][]float64, labels []int) (float64, error) {
	p, err := buildPartition(data, labels)
	if err != nil {
		return 0, err
	}

	v, ok := similarityIndex(data, p)
	if !ok {
		return 0, &ErrDegenerate{Metric: MetricSimilarityIndex, Clusters: p.NonEmpty(), Samples: p.Len()}
	}

	return v, nil
}

func similarityIndex(data [][]float64, p *partition.Partition) (float64, bool) {
	if p.NonEmpty() < 2 {
		return 0, false
	}

	means := clusterMeans(data, p)

	// Ignore empty clusters entirely.
	ids := make([]int, 0, p.NumClusters())
	for c := 0; c < p.NumClusters(); c++ {
		if p.Size(c) > 0 {
			ids = append(ids, c)
		}
	}

	// Mean Euclidean distance of each cluster's members to its centroid.
	scatter := make([]float64, len(ids))

	for x, c := range ids {
		var sum float64
		for i := range p.Members(c) {
			sum += f64.L2(data[i], means[c])
		}

		scatter[x] = sum / float64(p.Size(c))
	}

	var total float64

	for x := range ids {
		var worst float64

		for y := range ids {
			if y == x {
				continue
			}

			m := f64.L2(means[ids[x]], means[ids[y]])
			if m == 0 {
				continue
			}

			if r := (scatter[x] + scatter[y]) / m; r > worst {
				worst = r
			}
		}

		total += worst
	}

	return total / float64(len(ids)), true
}
