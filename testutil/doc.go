// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for packed words and boolean
// patterns, random graphs, and a BFS ground truth for reachability.
//
// # Random Words
//
//	rng := testutil.NewRNG(seed)
//	words := make([]uint32, 64)
//	rng.FillWords(words)              // uniform
//	rng.FillSparseWords(words, 0.05)  // ~5% of bits set
//
// # Reachability Ground Truth
//
//	edges := rng.RandomEdges(100, 300)
//	reach := testutil.Reachable(100, edges)
package testutil
