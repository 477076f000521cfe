package metric

import (
	"math"

	"github.com/Undertaker049/KORA/internal/f64"
	"github.com/Undertaker049/KORA/partition"
)

// SilhouetteSamples computes the per-sample silhouette coefficient: how much
// closer each sample sits to its own cluster than to the nearest other one,
// scaled into [-1, 1]. Samples in singleton clusters score 0, as does any
// sample whose mean distances are both 0. With fewer than two non-empty
// clusters every sample scores 0.
func SilhouetteSamples(data [][]float64, labels []int) ([]float64, error) {
	p, err := buildPartition(data, labels)
	if err != nil {
		return nil, err
	}

	return silhouetteSamples(data, p), nil
}

// Silhouette returns the mean silhouette coefficient over all samples. It is
// undefined for fewer than two non-empty clusters.
func Silhouette(data [][]float64, labels []int) (float64, error) {
	p, err := buildPartition(data, labels)
	if err != nil {
		return 0, err
	}

	mean, ok := silhouette(data, p)
	if !ok {
		return 0, &ErrDegenerate{Metric: MetricSilhouette, Clusters: p.NonEmpty(), Samples: p.Len()}
	}

	return mean, nil
}

func silhouette(data [][]float64, p *partition.Partition) (float64, bool) {
	if p.NonEmpty() < 2 {
		return 0, false
	}

	scores := silhouetteSamples(data, p)

	return f64.Sum(scores) / float64(len(scores)), true
}

func silhouetteSamples(data [][]float64, p *partition.Partition) []float64 {
	n := p.Len()
	k := p.NumClusters()
	scores := make([]float64, n)

	if p.NonEmpty() < 2 {
		return scores
	}

	counts := p.Counts()

	// distSum[i*k+c] accumulates sample i's total distance to the members of
	// cluster c. Each pair is measured once and credited to both rows.
	distSum := make([]float64, n*k)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := f64.L2(data[i], data[j])
			distSum[i*k+p.Label(j)] += d
			distSum[j*k+p.Label(i)] += d
		}
	}

	for i := 0; i < n; i++ {
		own := p.Label(i)
		if counts[own] <= 1 {
			continue
		}

		// Mean distance to the other members of the own cluster.
		a := distSum[i*k+own] / float64(counts[own]-1)

		// Smallest mean distance to any other non-empty cluster.
		b := math.MaxFloat64

		for c := 0; c < k; c++ {
			if c == own || counts[c] == 0 {
				continue
			}

			if m := distSum[i*k+c] / float64(counts[c]); m < b {
				b = m
			}
		}

		if denom := math.Max(a, b); denom > 0 {
			scores[i] = (b - a) / denom
		}
	}

	return scores
}
