package fixpoint

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting solver metrics.
// Implementations must be safe for concurrent use: SolveAll reports from
// several goroutines.
type MetricsCollector interface {
	// RecordSweep is called after each sweep with the number of unions that
	// reported a change.
	RecordSweep(changes int, duration time.Duration)

	// RecordSolve is called once per problem, err is nil if it converged.
	RecordSolve(stats Stats, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSweep(int, time.Duration) {}
func (NoopMetricsCollector) RecordSolve(Stats, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	SweepCount      atomic.Int64
	SweepChanges    atomic.Int64
	SweepTotalNanos atomic.Int64
	SolveCount      atomic.Int64
	SolveErrors     atomic.Int64
	UnionCount      atomic.Int64
}

// RecordSweep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSweep(changes int, duration time.Duration) {
	b.SweepCount.Add(1)
	b.SweepChanges.Add(int64(changes))
	b.SweepTotalNanos.Add(duration.Nanoseconds())
}

// RecordSolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSolve(stats Stats, err error) {
	b.SolveCount.Add(1)
	b.UnionCount.Add(int64(stats.Unions))
	if err != nil {
		b.SolveErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SweepCount:    b.SweepCount.Load(),
		SweepChanges:  b.SweepChanges.Load(),
		SweepAvgNanos: b.getAvgSweepNanos(),
		SolveCount:    b.SolveCount.Load(),
		SolveErrors:   b.SolveErrors.Load(),
		UnionCount:    b.UnionCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSweepNanos() int64 {
	count := b.SweepCount.Load()
	if count == 0 {
		return 0
	}
	return b.SweepTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SweepCount    int64
	SweepChanges  int64
	SweepAvgNanos int64
	SolveCount    int64
	SolveErrors   int64
	UnionCount    int64
}
