package analyze

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/Undertaker049/KORA/internal/f64"
	"github.com/Undertaker049/KORA/metric"
	"github.com/Undertaker049/KORA/partition"
)

// Method selects how Outliers decides which samples are anomalous.
type Method string

const (
	// MethodDistance flags samples whose Euclidean distance to their
	// cluster's centroid exceeds Threshold times the cluster's distance
	// deviation.
	MethodDistance Method = "distance"

	// MethodSilhouette flags samples whose silhouette score falls below
	// Threshold.
	MethodSilhouette Method = "silhouette"
)

// ParseMethod converts a method name into a Method, rejecting unknown names.
func ParseMethod(name string) (Method, error) {
	switch m := Method(name); m {
	case MethodDistance, MethodSilhouette:
		return m, nil
	default:
		return "", &ErrUnknownOutlierMethod{Method: name}
	}
}

// Options are the options for outlier detection.
type Options struct {
	// Method selects the detection strategy.
	Method Method

	// Threshold is interpreted per method: a multiplier of the cluster's
	// distance deviation for MethodDistance, an absolute silhouette score
	// bound (typically negative, e.g. -0.3) for MethodSilhouette.
	Threshold float64
}

// DefaultOptions are the default options for outlier detection.
var DefaultOptions = Options{
	Method:    MethodDistance,
	Threshold: 2.0,
}

// Outliers returns the indices of samples considered anomalous under the
// configured method, in ascending order without duplicates.
func Outliers(data [][]float64, assignments []int, optFns ...func(o *Options)) ([]int, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	p, _, err := buildPartition(data, assignments)
	if err != nil {
		return nil, err
	}

	switch opts.Method {
	case MethodDistance:
		return distanceOutliers(data, p, opts.Threshold), nil
	case MethodSilhouette:
		return silhouetteOutliers(data, assignments, opts.Threshold)
	default:
		return nil, &ErrUnknownOutlierMethod{Method: string(opts.Method)}
	}
}

// distanceOutliers flags samples lying further from their centroid than
// threshold times the population standard deviation of their cluster's
// centroid distances.
func distanceOutliers(data [][]float64, p *partition.Partition, threshold float64) []int {
	cols := len(data[0])
	k := p.NumClusters()

	centroids := make([][]float64, k)

	for c := 0; c < k; c++ {
		if p.Size(c) == 0 {
			continue
		}

		centroid := make([]float64, cols)

		for i := range p.Members(c) {
			f64.AddInPlace(centroid, data[i])
		}

		f64.ScaleInPlace(centroid, 1/float64(p.Size(c)))

		centroids[c] = centroid
	}

	dists := make([]float64, p.Len())
	sum := make([]float64, k)

	for i := 0; i < p.Len(); i++ {
		label := p.Label(i)
		dists[i] = f64.L2(data[i], centroids[label])
		sum[label] += dists[i]
	}

	varSum := make([]float64, k)

	for i := 0; i < p.Len(); i++ {
		label := p.Label(i)
		dev := dists[i] - sum[label]/float64(p.Size(label))
		varSum[label] += dev * dev
	}

	std := make([]float64, k)

	for c := 0; c < k; c++ {
		if size := p.Size(c); size > 0 {
			std[c] = math.Sqrt(varSum[c] / float64(size))
		}
	}

	found := roaring.New()

	for i := 0; i < p.Len(); i++ {
		if dists[i] > threshold*std[p.Label(i)] {
			found.Add(uint32(i))
		}
	}

	return toIntSlice(found)
}

// silhouetteOutliers flags samples whose silhouette score falls below the
// threshold. With fewer than two populated clusters every score is zero, so
// nothing is flagged for any negative threshold.
func silhouetteOutliers(data [][]float64, assignments []int, threshold float64) ([]int, error) {
	scores, err := metric.SilhouetteSamples(data, assignments)
	if err != nil {
		return nil, err
	}

	found := roaring.New()

	for i, score := range scores {
		if score < threshold {
			found.Add(uint32(i))
		}
	}

	return toIntSlice(found), nil
}

func toIntSlice(bm *roaring.Bitmap) []int {
	out := make([]int, 0, bm.GetCardinality())

	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}
