package kora

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    fitCounter       prometheus.Counter
//	    predictHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordFit(k, restarts int, duration time.Duration, err error) {
//	    p.fitCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordFit is called after each fit operation.
	// k is the configured cluster count, restarts the number of seedings,
	// duration is the total time taken, err is nil if successful.
	RecordFit(k, restarts int, duration time.Duration, err error)

	// RecordPredict is called after each predict operation.
	// samples is the number of rows assigned, duration is the time taken,
	// err is nil if successful.
	RecordPredict(samples int, duration time.Duration, err error)

	// RecordEvaluate is called after each evaluation pass.
	RecordEvaluate(duration time.Duration, err error)

	// RecordSweep is called after each cluster-count sweep.
	// candidates is the number of cluster counts tried.
	RecordSweep(candidates int, duration time.Duration, err error)

	// RecordOutliers is called after each outlier detection pass.
	// flagged is the number of samples flagged.
	RecordOutliers(flagged int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordPredict(int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordEvaluate(time.Duration, error)      {}
func (NoopMetricsCollector) RecordSweep(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordOutliers(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FitCount          atomic.Int64
	FitErrors         atomic.Int64
	FitTotalNanos     atomic.Int64
	FitRestarts       atomic.Int64
	PredictCount      atomic.Int64
	PredictErrors     atomic.Int64
	PredictTotalNanos atomic.Int64
	EvaluateCount     atomic.Int64
	EvaluateErrors    atomic.Int64
	SweepCount        atomic.Int64
	SweepErrors       atomic.Int64
	SweepCandidates   atomic.Int64
	OutliersCount     atomic.Int64
	OutliersErrors    atomic.Int64
	OutliersFlagged   atomic.Int64
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(k, restarts int, duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitTotalNanos.Add(duration.Nanoseconds())
	b.FitRestarts.Add(int64(restarts))
	if err != nil {
		b.FitErrors.Add(1)
	}
}

// RecordPredict implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPredict(samples int, duration time.Duration, err error) {
	b.PredictCount.Add(1)
	b.PredictTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PredictErrors.Add(1)
	}
}

// RecordEvaluate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEvaluate(duration time.Duration, err error) {
	b.EvaluateCount.Add(1)
	if err != nil {
		b.EvaluateErrors.Add(1)
	}
}

// RecordSweep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSweep(candidates int, duration time.Duration, err error) {
	b.SweepCount.Add(1)
	b.SweepCandidates.Add(int64(candidates))
	if err != nil {
		b.SweepErrors.Add(1)
	}
}

// RecordOutliers implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOutliers(flagged int, duration time.Duration, err error) {
	b.OutliersCount.Add(1)
	b.OutliersFlagged.Add(int64(flagged))
	if err != nil {
		b.OutliersErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FitCount:        b.FitCount.Load(),
		FitErrors:       b.FitErrors.Load(),
		FitAvgNanos:     b.getAvgFitNanos(),
		FitRestarts:     b.FitRestarts.Load(),
		PredictCount:    b.PredictCount.Load(),
		PredictErrors:   b.PredictErrors.Load(),
		PredictAvgNanos: b.getAvgPredictNanos(),
		EvaluateCount:   b.EvaluateCount.Load(),
		EvaluateErrors:  b.EvaluateErrors.Load(),
		SweepCount:      b.SweepCount.Load(),
		SweepErrors:     b.SweepErrors.Load(),
		SweepCandidates: b.SweepCandidates.Load(),
		OutliersCount:   b.OutliersCount.Load(),
		OutliersErrors:  b.OutliersErrors.Load(),
		OutliersFlagged: b.OutliersFlagged.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgFitNanos() int64 {
	count := b.FitCount.Load()
	if count == 0 {
		return 0
	}
	return b.FitTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgPredictNanos() int64 {
	count := b.PredictCount.Load()
	if count == 0 {
		return 0
	}
	return b.PredictTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FitCount        int64
	FitErrors       int64
	FitAvgNanos     int64
	FitRestarts     int64
	PredictCount    int64
	PredictErrors   int64
	PredictAvgNanos int64
	EvaluateCount   int64
	EvaluateErrors  int64
	SweepCount      int64
	SweepErrors     int64
	SweepCandidates int64
	OutliersCount   int64
	OutliersErrors  int64
	OutliersFlagged int64
}
