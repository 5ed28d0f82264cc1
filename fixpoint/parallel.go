package fixpoint

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SolveAll solves independent problems concurrently, at most
// WithParallelism at a time.
//
// Each problem is owned by exactly one goroutine for the duration of the
// call. Problems must not share values: a value reachable from two problems
// would be mutated from two goroutines.
//
// The first error cancels the remaining problems and is returned; the
// returned stats hold whatever each problem reached.
func SolveAll[T Set[T]](ctx context.Context, problems []Problem[T], optFns ...Option) ([]Stats, error) {
	o := applyOptions(optFns)
	stats := make([]Stats, len(problems))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)

	for i := range problems {
		g.Go(func() error {
			s, err := solve(ctx, problems[i], o)
			stats[i] = s
			if err != nil {
				return fmt.Errorf("problem %q: %w", problems[i].Name, err)
			}
			return nil
		})
	}

	return stats, g.Wait()
}
