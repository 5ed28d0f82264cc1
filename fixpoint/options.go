package fixpoint

import (
	"log/slog"
	"runtime"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	strategy         Strategy
	maxIterations    int
	parallelism      int
}

// Option configures Solve and SolveAll.
type Option func(*options)

// WithStrategy selects the iteration order. Both strategies reach the same
// fixed point; Worklist skips nodes whose value did not change in the
// previous sweep.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithMaxIterations bounds the number of sweeps. Zero means unlimited.
//
// RoundRobin needs one extra sweep beyond the last changing one to observe
// convergence.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithParallelism limits how many problems SolveAll runs at once.
// Values <= 0 use GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithMetricsCollector configures a metrics collector for sweeps and solves.
// Pass nil to disable metrics.
//
// Example:
//
//	metrics := &fixpoint.BasicMetricsCollector{}
//	_, _ = fixpoint.Solve(ctx, problem, fixpoint.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
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
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		strategy:         RoundRobin,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.parallelism <= 0 {
		o.parallelism = runtime.GOMAXPROCS(0)
	}
	return o
}
