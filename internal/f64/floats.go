// Package f64 provides float64 vector operations shared by the clustering,
// metric, and analysis packages.
// This is an internal package - external users should use the kora package.
package f64

import "math"

// SquaredL2 calculates the squared L2 distance between two vectors.
func SquaredL2(a, b []float64) float64 {
	var distance float64
	for i := range a {
		distance += (a[i] - b[i]) * (a[i] - b[i])
	}

	return distance
}

// L2 calculates the L2 (Euclidean) distance between two vectors.
func L2(a, b []float64) float64 {
	return math.Sqrt(SquaredL2(a, b))
}

// Sum returns the sum of all elements of a.
func Sum(a []float64) float64 {
	var ret float64
	for i := range a {
		ret += a[i]
	}

	return ret
}

// ScaleInPlace multiplies all elements of a by scalar.
func ScaleInPlace(a []float64, scalar float64) {
	for i := range a {
		a[i] *= scalar
	}
}

// AddInPlace adds b to a element-wise.
//
// This is primarily used by centroid accumulation.
func AddInPlace(a, b []float64) {
	for i := range a {
		a[i] += b[i]
	}
}
