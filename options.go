package kora

import (
	"log/slog"

	"github.com/Undertaker049/KORA/kmeans"
)

type options struct {
	kmeansOptFns     []func(o *kmeans.Options)
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Engine constructor behavior.
type Option func(*options)

// WithClusters configures the number of clusters to partition into.
func WithClusters(k int) Option {
	return func(o *options) {
		o.kmeansOptFns = append(o.kmeansOptFns, func(ko *kmeans.Options) {
			ko.NClusters = k
		})
	}
}

// WithMaxIterations caps the Lloyd iterations of a single restart.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.kmeansOptFns = append(o.kmeansOptFns, func(ko *kmeans.Options) {
			ko.MaxIterations = n
		})
	}
}

// WithRestarts configures the number of independent seedings per fit. The
// restart with the lowest inertia wins.
func WithRestarts(n int) Option {
	return func(o *options) {
		o.kmeansOptFns = append(o.kmeansOptFns, func(ko *kmeans.Options) {
			ko.NRestarts = n
		})
	}
}

// WithSeed pins the random seed so repeated fits on the same data reproduce
// bit-identical results. Without it each fit draws a fresh seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.kmeansOptFns = append(o.kmeansOptFns, func(ko *kmeans.Options) {
			ko.RandomSeed = &seed
		})
	}
}

// WithTolerance configures the summed centroid movement below which a
// restart is considered converged.
func WithTolerance(tolerance float64) Option {
	return func(o *options) {
		o.kmeansOptFns = append(o.kmeansOptFns, func(ko *kmeans.Options) {
			ko.Tolerance = tolerance
		})
	}
}

// WithWorkers bounds the number of concurrently running restarts and sweep
// fits. Values < 1 mean one worker per CPU.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.kmeansOptFns = append(o.kmeansOptFns, func(ko *kmeans.Options) {
			ko.Workers = n
		})
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kora.BasicMetricsCollector{}
//	engine, _ := kora.New(kora.WithClusters(3), kora.WithMetricsCollector(metrics))
//	// ... use engine ...
//	stats := metrics.GetStats()
//	fmt.Printf("Fits: %d, Avg latency: %dns\n", stats.FitCount, stats.FitAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
//
// Example with JSON logging:
//
//	logger := kora.NewJSONLogger(slog.LevelInfo)
//	engine, _ := kora.New(kora.WithClusters(3), kora.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
