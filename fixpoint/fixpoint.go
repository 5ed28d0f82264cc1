package fixpoint

import (
	"context"
	"fmt"
	"time"
)

// Set is a value that can absorb another value of the same type and report
// whether it grew. *bitvec.BitVector satisfies Set[*bitvec.BitVector].
//
// Union must be monotone: a value never loses what it absorbed.
type Set[T any] interface {
	Union(other T) bool
	Len() int
}

// Edge says the value at To absorbs the value at From.
type Edge struct {
	From int
	To   int
}

// Problem is a set of values and the edges that propagate between them.
// Solve mutates Values in place.
type Problem[T Set[T]] struct {
	Name   string
	Values []T
	Edges  []Edge
}

// Validate checks that every edge references existing nodes of equal length.
func (p Problem[T]) Validate() error {
	n := len(p.Values)
	for _, e := range p.Edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return &ErrInvalidEdge{Edge: e, Nodes: n}
		}
		if want, got := p.Values[e.To].Len(), p.Values[e.From].Len(); want != got {
			return &ErrLengthMismatch{Edge: e, Expected: want, Actual: got}
		}
	}
	return nil
}

// Strategy selects the order in which edges are applied.
type Strategy uint8

const (
	// RoundRobin applies every edge once per sweep and stops after the
	// first sweep in which no union reported a change.
	RoundRobin Strategy = iota
	// Worklist applies only the outgoing edges of nodes that changed in
	// the previous sweep and stops when no node changed.
	Worklist
)

// String returns the string representation of a Strategy.
func (s Strategy) String() string {
	switch s {
	case RoundRobin:
		return "round-robin"
	case Worklist:
		return "worklist"
	default:
		return "unknown"
	}
}

// Stats describes one solve.
type Stats struct {
	// Sweeps is the number of passes, including the final unchanged one.
	Sweeps int
	// Unions is the number of Union calls.
	Unions int
	// Changes is the number of Union calls that reported a change.
	Changes  int
	Duration time.Duration
}

// Solve applies the problem's edges until no union reports a change.
//
// The context is checked before every sweep. A problem that does not
// converge within WithMaxIterations sweeps fails with ErrMaxIterations; the
// values then hold a partial, still sound, result.
func Solve[T Set[T]](ctx context.Context, p Problem[T], optFns ...Option) (Stats, error) {
	return solve(ctx, p, applyOptions(optFns))
}

func solve[T Set[T]](ctx context.Context, p Problem[T], o options) (stats Stats, err error) {
	s := &solver[T]{
		p:      p,
		o:      o,
		logger: o.logger.WithProblem(p.Name).WithStrategy(o.strategy),
	}

	start := time.Now()
	defer func() {
		stats.Duration = time.Since(start)
		o.metricsCollector.RecordSolve(stats, err)
		s.logger.LogSolve(ctx, stats, err)
	}()

	if err = p.Validate(); err != nil {
		return stats, err
	}

	switch o.strategy {
	case RoundRobin:
		err = s.roundRobin(ctx, &stats)
	case Worklist:
		err = s.worklist(ctx, &stats)
	default:
		err = fmt.Errorf("fixpoint: unknown strategy %d", o.strategy)
	}

	return stats, err
}

type solver[T Set[T]] struct {
	p      Problem[T]
	o      options
	logger *Logger
}

func (s *solver[T]) roundRobin(ctx context.Context, stats *Stats) error {
	for {
		if err := s.beginSweep(ctx, stats); err != nil {
			return err
		}

		start := time.Now()
		changes := 0
		for _, e := range s.p.Edges {
			if s.p.Values[e.To].Union(s.p.Values[e.From]) {
				changes++
			}
		}
		s.endSweep(ctx, stats, len(s.p.Edges), changes, start)

		if changes == 0 {
			return nil
		}
	}
}

func (s *solver[T]) worklist(ctx context.Context, stats *Stats) error {
	n := len(s.p.Values)

	out := make([][]int, n)
	for i, e := range s.p.Edges {
		out[e.From] = append(out[e.From], i)
	}

	dirty := make([]bool, n)
	next := make([]bool, n)
	for i := range dirty {
		dirty[i] = true
	}

	for pending := n; pending > 0; {
		if err := s.beginSweep(ctx, stats); err != nil {
			return err
		}

		start := time.Now()
		unions, changes := 0, 0
		pending = 0
		for u := range dirty {
			if !dirty[u] {
				continue
			}
			dirty[u] = false
			for _, ei := range out[u] {
				to := s.p.Edges[ei].To
				unions++
				if s.p.Values[to].Union(s.p.Values[u]) {
					changes++
					if !next[to] {
						next[to] = true
						pending++
					}
				}
			}
		}
		dirty, next = next, dirty
		s.endSweep(ctx, stats, unions, changes, start)
	}

	return nil
}

func (s *solver[T]) beginSweep(ctx context.Context, stats *Stats) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.o.maxIterations > 0 && stats.Sweeps >= s.o.maxIterations {
		return fmt.Errorf("%w: no convergence after %d sweeps", ErrMaxIterations, stats.Sweeps)
	}
	return nil
}

func (s *solver[T]) endSweep(ctx context.Context, stats *Stats, unions, changes int, start time.Time) {
	stats.Sweeps++
	stats.Unions += unions
	stats.Changes += changes

	s.o.metricsCollector.RecordSweep(changes, time.Since(start))
	s.logger.LogSweep(ctx, stats.Sweeps, changes)
}
