// Package promcollector exports fixpoint solver metrics to Prometheus.
package promcollector

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/bitvec/fixpoint"
)

var _ fixpoint.MetricsCollector = (*Collector)(nil)

// Collector implements fixpoint.MetricsCollector with Prometheus metrics.
type Collector struct {
	sweeps        prometheus.Counter
	changes       prometheus.Counter
	unions        prometheus.Counter
	solves        *prometheus.CounterVec
	sweepDuration prometheus.Histogram
}

// New creates a Collector and registers its metrics with reg.
func New(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		sweeps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweeps_total",
			Help:      "Total sweeps over problem edges",
		}),
		changes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "changes_total",
			Help:      "Total unions that changed their target",
		}),
		unions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unions_total",
			Help:      "Total unions applied by completed solves",
		}),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Total solves by outcome",
		}, []string{"status"}),
		sweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sweep_duration_seconds",
			Help:      "Latency of a single sweep",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
	}

	for _, m := range []prometheus.Collector{c.sweeps, c.changes, c.unions, c.solves, c.sweepDuration} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordSweep implements fixpoint.MetricsCollector.
func (c *Collector) RecordSweep(changes int, duration time.Duration) {
	c.sweeps.Inc()
	c.changes.Add(float64(changes))
	c.sweepDuration.Observe(duration.Seconds())
}

// RecordSolve implements fixpoint.MetricsCollector.
func (c *Collector) RecordSolve(stats fixpoint.Stats, err error) {
	c.unions.Add(float64(stats.Unions))

	status := "converged"
	if err != nil {
		status = "error"
	}
	c.solves.WithLabelValues(status).Inc()
}
