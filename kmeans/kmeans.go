// Package kmeans implements multi-restart k-means clustering with k-means++
// seeding.
//
// A KMeans engine runs Lloyd's algorithm from several independent seedings,
// keeps the restart with the lowest inertia as its fitted model, and serves
// predictions against that model. The fitted state is replaced wholesale by
// each successful Fit, so readers always observe a complete model.
package kmeans

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Undertaker049/KORA/matrix"
)

// Options contains configuration options for the clustering engine.
type Options struct {
	// NClusters is the number of clusters to partition into. Must be >= 1
	// and no larger than the number of samples passed to Fit.
	NClusters int

	// MaxIterations caps the Lloyd iterations of a single restart.
	MaxIterations int

	// NRestarts is the number of independent seedings per Fit. The restart
	// with the lowest inertia wins; ties keep the earliest restart.
	NRestarts int

	// RandomSeed makes Fit deterministic when set. When nil, a time-derived
	// seed is drawn and repeated fits may differ.
	RandomSeed *int64

	// Tolerance is the summed centroid movement below which a restart is
	// considered converged.
	Tolerance float64

	// Workers bounds the number of concurrently running restarts and sweep
	// fits. Values < 1 mean runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultOptions contains the default configuration options for the
// clustering engine.
var DefaultOptions = Options{
	NClusters:     3,
	MaxIterations: 300,
	NRestarts:     10,
	Tolerance:     1e-4,
	Workers:       0,
}

// model is the immutable fitted state, replaced wholesale by each Fit.
type model struct {
	centroids  [][]float64
	labels     []int
	inertia    float64
	iterations int
	converged  bool
}

// KMeans is a multi-restart k-means clustering engine.
//
// Accessors read the last fitted model lock-free. A failed Fit never touches
// the stored model. Concurrent Fit calls are safe but race on which model
// wins; one writer at a time is the intended discipline.
type KMeans struct {
	opts  Options
	model atomic.Pointer[model]
}

// New creates a new clustering engine.
func New(optFns ...func(o *Options)) (*KMeans, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.NClusters < 1 {
		return nil, &ErrInvalidClusterCount{K: opts.NClusters}
	}

	if opts.MaxIterations < 1 {
		return nil, fmt.Errorf("max iterations must be >= 1, got %d", opts.MaxIterations)
	}

	if opts.NRestarts < 1 {
		return nil, fmt.Errorf("restarts must be >= 1, got %d", opts.NRestarts)
	}

	if opts.Tolerance <= 0 {
		return nil, fmt.Errorf("tolerance must be > 0, got %g", opts.Tolerance)
	}

	if opts.Workers < 1 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	return &KMeans{opts: opts}, nil
}

// Fit partitions data into NClusters clusters and stores the best model
// found across NRestarts restarts. Restarts run concurrently up to Workers;
// each owns its RNG seeded from the base seed plus its restart index, so a
// fixed RandomSeed reproduces results bit for bit regardless of scheduling.
func (km *KMeans) Fit(ctx context.Context, data [][]float64) error {
	n, _, err := matrix.Validate(data)
	if err != nil {
		return err
	}

	k := km.opts.NClusters
	if k > n {
		return &ErrTooManyClusters{K: k, Samples: n}
	}

	baseSeed := km.baseSeed()
	results := make([]lloydResult, km.opts.NRestarts)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(km.opts.Workers)

	for r := 0; r < km.opts.NRestarts; r++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(baseSeed + int64(r))) // nolint gosec

			centroids := seedCentroids(rng, data, k)
			results[r] = runLloyd(data, centroids, km.opts.MaxIterations, km.opts.Tolerance)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Reduce by minimum inertia; ties keep the earliest restart.
	best := 0
	for r := 1; r < len(results); r++ {
		if results[r].inertia < results[best].inertia {
			best = r
		}
	}

	res := results[best]
	km.model.Store(&model{
		centroids:  res.centroids,
		labels:     res.labels,
		inertia:    res.inertia,
		iterations: res.iterations,
		converged:  res.converged,
	})

	return nil
}

// FitPredict fits the engine to data and returns the resulting labels.
func (km *KMeans) FitPredict(ctx context.Context, data [][]float64) ([]int, error) {
	if err := km.Fit(ctx, data); err != nil {
		return nil, err
	}

	return km.Labels(), nil
}

// Predict assigns each row of data to the nearest stored centroid using the
// same distance and tie-break rule as Fit. It never mutates the fitted model.
func (km *KMeans) Predict(data [][]float64) ([]int, error) {
	m := km.model.Load()
	if m == nil {
		return nil, ErrNotFitted
	}

	_, d, err := matrix.Validate(data)
	if err != nil {
		return nil, err
	}

	if want := len(m.centroids[0]); d != want {
		return nil, &ErrDimensionMismatch{Expected: want, Actual: d}
	}

	labels := make([]int, len(data))
	for i, row := range data {
		labels[i], _ = nearest(row, m.centroids)
	}

	return labels, nil
}

// NumClusters returns the configured cluster count.
func (km *KMeans) NumClusters() int {
	return km.opts.NClusters
}

// Restarts returns the configured number of seedings per Fit.
func (km *KMeans) Restarts() int {
	return km.opts.NRestarts
}

// IsFitted reports whether a successful Fit has stored a model.
func (km *KMeans) IsFitted() bool {
	return km.model.Load() != nil
}

// Centroids returns a copy of the fitted centroids, or nil before Fit.
func (km *KMeans) Centroids() [][]float64 {
	m := km.model.Load()
	if m == nil {
		return nil
	}

	return matrix.Clone(m.centroids)
}

// Labels returns a copy of the fitted assignment vector, or nil before Fit.
func (km *KMeans) Labels() []int {
	m := km.model.Load()
	if m == nil {
		return nil
	}

	out := make([]int, len(m.labels))
	copy(out, m.labels)

	return out
}

// Inertia returns the inertia of the fitted model, or 0 before Fit.
func (km *KMeans) Inertia() float64 {
	m := km.model.Load()
	if m == nil {
		return 0
	}

	return m.inertia
}

// Iterations returns the Lloyd iterations of the winning restart.
func (km *KMeans) Iterations() int {
	m := km.model.Load()
	if m == nil {
		return 0
	}

	return m.iterations
}

// Converged reports whether the winning restart converged within its
// iteration budget.
func (km *KMeans) Converged() bool {
	m := km.model.Load()
	if m == nil {
		return false
	}

	return m.converged
}

func (km *KMeans) baseSeed() int64 {
	if km.opts.RandomSeed != nil {
		return *km.opts.RandomSeed
	}

	return time.Now().UnixNano()
}
