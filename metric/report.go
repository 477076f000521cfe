package metric

// Report carries the quality metrics of one partition. Inertia is always
// present; the remaining metrics are absent when undefined for the
// partition's cluster count, so accessors return a second value reporting
// presence.
type Report struct {
	inertia         float64
	silhouette      *float64
	varianceRatio   *float64
	similarityIndex *float64
}

// Inertia returns the sum of squared distances to the assigned centroids.
func (r *Report) Inertia() float64 {
	return r.inertia
}

// Silhouette returns the mean silhouette score and whether it is defined.
func (r *Report) Silhouette() (float64, bool) {
	if r.silhouette == nil {
		return 0, false
	}

	return *r.silhouette, true
}

// VarianceRatio returns the Calinski-Harabasz score and whether it is
// defined.
func (r *Report) VarianceRatio() (float64, bool) {
	if r.varianceRatio == nil {
		return 0, false
	}

	return *r.varianceRatio, true
}

// SimilarityIndex returns the Davies-Bouldin score and whether it is
// defined.
func (r *Report) SimilarityIndex() (float64, bool) {
	if r.similarityIndex == nil {
		return 0, false
	}

	return *r.similarityIndex, true
}

// Fields returns the defined metrics keyed by their report names. Undefined
// metrics are left out rather than zeroed.
func (r *Report) Fields() map[string]float64 {
	fields := map[string]float64{
		MetricInertia: r.inertia,
	}

	if r.silhouette != nil {
		fields[MetricSilhouette] = *r.silhouette
	}

	if r.varianceRatio != nil {
		fields[MetricVarianceRatio] = *r.varianceRatio
	}

	if r.similarityIndex != nil {
		fields[MetricSimilarityIndex] = *r.similarityIndex
	}

	return fields
}

// Evaluate computes every quality metric that is defined for the given
// partition and assembles them into a Report. When fittedInertia is non-nil
// it is adopted as the report's inertia (the fitted model's exact value);
// otherwise inertia is recomputed from the assignments. Degenerate metrics
// are omitted from the report, never surfaced as errors.
func Evaluate(data [][]float64, labels []int, fittedInertia *float64) (*Report, error) {
	p, err := buildPartition(data, labels)
	if err != nil {
		return nil, err
	}

	r := &Report{}

	if fittedInertia != nil {
		r.inertia = *fittedInertia
	} else {
		r.inertia = inertia(data, labels, p)
	}

	if mean, ok := silhouette(data, p); ok {
		r.silhouette = &mean
	}

	if v, ok := varianceRatio(data, p); ok {
		r.varianceRatio = &v
	}

	if v, ok := similarityIndex(data, p); ok {
		r.similarityIndex = &v
	}

	return r, nil
}
