package kora

import (
	"context"
	"time"

	"github.com/Undertaker049/KORA/analyze"
	"github.com/Undertaker049/KORA/kmeans"
	"github.com/Undertaker049/KORA/metric"
)

// Engine is the facade over the clustering core: it owns one k-means model
// and funnels every operation through error normalization, structured
// logging, and metrics collection.
//
// An Engine is safe for concurrent readers once fitted; one fitting
// goroutine at a time is the intended discipline.
type Engine struct {
	km      *kmeans.KMeans
	metrics MetricsCollector
	logger  *Logger
}

// New creates a new Engine.
func New(optFns ...Option) (*Engine, error) {
	opts := applyOptions(optFns)

	km, err := kmeans.New(opts.kmeansOptFns...)
	if err != nil {
		return nil, translateError(err)
	}

	return &Engine{
		km:      km,
		metrics: opts.metricsCollector,
		logger:  opts.logger,
	}, nil
}

// Fit partitions data into the configured number of clusters and stores the
// best model found across the configured restarts. A failed fit leaves any
// previously stored model untouched.
func (e *Engine) Fit(ctx context.Context, data [][]float64) error {
	start := time.Now()
	err := e.km.Fit(ctx, data)
	duration := time.Since(start)
	err = translateError(err)
	e.metrics.RecordFit(e.km.NumClusters(), e.km.Restarts(), duration, err)
	e.logger.LogFit(ctx, e.km.NumClusters(), e.km.Iterations(), e.km.Converged(), err)
	return err
}

// FitPredict fits the model on data and returns the assignment for each row.
func (e *Engine) FitPredict(ctx context.Context, data [][]float64) ([]int, error) {
	start := time.Now()
	labels, err := e.km.FitPredict(ctx, data)
	duration := time.Since(start)
	err = translateError(err)
	e.metrics.RecordFit(e.km.NumClusters(), e.km.Restarts(), duration, err)
	e.logger.LogFit(ctx, e.km.NumClusters(), e.km.Iterations(), e.km.Converged(), err)
	return labels, err
}

// Predict assigns each row of data to its nearest fitted centroid without
// refitting. The rows must have the fitted dimensionality.
func (e *Engine) Predict(ctx context.Context, data [][]float64) ([]int, error) {
	start := time.Now()
	labels, err := e.km.Predict(data)
	duration := time.Since(start)
	err = translateError(err)
	e.metrics.RecordPredict(len(data), duration, err)
	e.logger.LogPredict(ctx, len(data), err)
	return labels, err
}

// Evaluate computes the quality report for a clustering of data. With nil
// assignments it scores the stored model on its training data, reusing the
// fitted inertia; explicit assignments are scored from scratch. Metrics that
// are undefined for the effective cluster count are left out of the report
// rather than reported as errors.
func (e *Engine) Evaluate(ctx context.Context, data [][]float64, assignments []int) (*metric.Report, error) {
	start := time.Now()
	report, err := e.evaluate(data, assignments)
	duration := time.Since(start)
	err = translateError(err)

	fields := 0
	if report != nil {
		fields = len(report.Fields())
	}
	e.metrics.RecordEvaluate(duration, err)
	e.logger.LogEvaluate(ctx, fields, err)
	return report, err
}

func (e *Engine) evaluate(data [][]float64, assignments []int) (*metric.Report, error) {
	var fitted *float64
	if assignments == nil {
		if !e.km.IsFitted() {
			return nil, ErrNotFitted
		}
		assignments = e.km.Labels()
		inertia := e.km.Inertia()
		fitted = &inertia
	}
	return metric.Evaluate(data, assignments, fitted)
}

// OptimalKElbow fits data once per candidate cluster count and returns the
// (k, inertia) curve for elbow inspection. Nil or empty kValues sweep 1
// through 10. The stored model is not modified.
func (e *Engine) OptimalKElbow(ctx context.Context, data [][]float64, kValues []int) (*kmeans.ElbowCurve, error) {
	start := time.Now()
	if len(kValues) == 0 {
		kValues = defaultSweep()
	}
	curve, err := e.km.Elbow(ctx, data, kValues)
	duration := time.Since(start)
	err = translateError(err)
	e.metrics.RecordSweep(len(kValues), duration, err)
	e.logger.LogSweep(ctx, len(kValues), err)
	return curve, err
}

func defaultSweep() []int {
	ks := make([]int, 10)
	for i := range ks {
		ks[i] = i + 1
	}
	return ks
}

// Outliers returns the indices of samples considered anomalous, in ascending
// order. With nil assignments the stored model's labels are used, so data
// must be the matrix the model was fitted on.
func (e *Engine) Outliers(ctx context.Context, data [][]float64, assignments []int, optFns ...func(o *analyze.Options)) ([]int, error) {
	start := time.Now()
	found, err := e.outliers(data, assignments, optFns)
	duration := time.Since(start)
	err = translateError(err)
	e.metrics.RecordOutliers(len(found), duration, err)
	e.logger.LogOutliers(ctx, len(found), err)
	return found, err
}

func (e *Engine) outliers(data [][]float64, assignments []int, optFns []func(o *analyze.Options)) ([]int, error) {
	if assignments == nil {
		if !e.km.IsFitted() {
			return nil, ErrNotFitted
		}
		assignments = e.km.Labels()
	}
	return analyze.Outliers(data, assignments, optFns...)
}

// ClusterSizes tallies the stored assignments per cluster.
func (e *Engine) ClusterSizes() (map[int]int, error) {
	if !e.km.IsFitted() {
		return nil, ErrNotFitted
	}
	return analyze.Sizes(e.km.Labels()), nil
}

// ClusterStats summarizes each non-empty cluster of the stored assignment
// over data, which must be the matrix the model was fitted on. featureNames
// may be nil for generated column names.
func (e *Engine) ClusterStats(data [][]float64, featureNames []string) ([]analyze.ClusterStats, error) {
	if !e.km.IsFitted() {
		return nil, ErrNotFitted
	}
	stats, err := analyze.Stats(data, e.km.Labels(), featureNames)
	return stats, translateError(err)
}

// NumClusters returns the configured cluster count.
func (e *Engine) NumClusters() int {
	return e.km.NumClusters()
}

// IsFitted reports whether a successful fit has stored a model.
func (e *Engine) IsFitted() bool {
	return e.km.IsFitted()
}

// Centroids returns a copy of the fitted centroids, or nil before a fit.
func (e *Engine) Centroids() [][]float64 {
	return e.km.Centroids()
}

// Labels returns a copy of the fitted assignment vector, or nil before a fit.
func (e *Engine) Labels() []int {
	return e.km.Labels()
}

// Inertia returns the fitted within-cluster sum of squares, or 0 before a fit.
func (e *Engine) Inertia() float64 {
	return e.km.Inertia()
}

// Iterations returns the Lloyd iterations of the winning restart, or 0
// before a fit.
func (e *Engine) Iterations() int {
	return e.km.Iterations()
}

// Converged reports whether the winning restart converged within tolerance.
func (e *Engine) Converged() bool {
	return e.km.Converged()
}
