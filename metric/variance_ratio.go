package metric

import (
	"github.com/Undertaker049/KORA/internal/f64"
	"github.com/Undertaker049/KORA/partition"
)

// VarianceRatio returns the Calinski-Harabasz score: between-cluster
// dispersion over within-cluster dispersion, each normalized by its degrees
// of freedom. Higher is better. The cluster count is the number of non-empty
// clusters; the score is undefined when it is 1 or equals the sample count.
func VarianceRatio(data [][]float64, labels []int) (float64, error) {
	p, err := buildPartition(data, labels)
	if err != nil {
		return 0, err
	}

	v, ok := varianceRatio(data, p)
	if !ok {
		return 0, &ErrDegenerate{Metric: MetricVarianceRatio, Clusters: p.NonEmpty(), Samples: p.Len()}
	}

	return v, nil
}

func varianceRatio(data [][]float64, p *partition.Partition) (float64, bool) {
	k := p.NonEmpty()
	n := p.Len()

	if k < 2 || k >= n {
		return 0, false
	}

	dim := len(data[0])

	globalMean := make([]float64, dim)
	for _, row := range data {
		f64.AddInPlace(globalMean, row)
	}
	f64.ScaleInPlace(globalMean, 1/float64(n))

	means := clusterMeans(data, p)

	var between, within float64

	for c := 0; c < p.NumClusters(); c++ {
		size := p.Size(c)
		if size == 0 {
			continue
		}

		between += float64(size) * f64.SquaredL2(means[c], globalMean)

		for i := range p.Members(c) {
			within += f64.SquaredL2(data[i], means[c])
		}
	}

	if within == 0 {
		// Perfectly tight clusters; the ratio saturates at 1.
		return 1, true
	}

	return between * float64(n-k) / (within * float64(k-1)), true
}
