// Package fixpoint drives monotone union operations to a fixed point.
//
// A Problem is a slice of values and a list of edges. Each edge From -> To
// makes Values[To] absorb Values[From]. Solve repeats the unions until an
// entire sweep reports no change, which is exactly the stop condition that
// bitvec.BitVector.Union is built for:
//
//	values := make([]*bitvec.BitVector, n)
//	// ... seed values ...
//	stats, err := fixpoint.Solve(ctx, fixpoint.Problem[*bitvec.BitVector]{
//	    Name:   "reachability",
//	    Values: values,
//	    Edges:  edges,
//	}, fixpoint.WithStrategy(fixpoint.Worklist))
//
// Solving is single-threaded per problem. SolveAll fans independent
// problems out over an errgroup; every problem owns its values.
package fixpoint
