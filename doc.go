// Package bitvec provides a dense, fixed-length bit-vector with bulk,
// lane-oriented operations for fixed-point iteration.
//
// # Overview
//
// Dataflow and reachability analyses union large bit sets over and over and
// stop once an iteration changes nothing. BitVector makes that cheap: Union
// ORs another vector in, 128 bits per lane, and reports whether any bit
// flipped with a single test after the loop instead of a branch per word.
//
//	a := bitvec.FromElem(200, false)
//	b := bitvec.FromElem(200, true)
//
//	a.Union(b) // true: every bit of a flipped
//	a.Union(b) // false: converged
//
// UnionU32 computes the same result one 32-bit word at a time. It exists as
// a portable reference and as a baseline for the lane kernels.
//
// # Contracts
//
//   - Length is fixed at construction. There is no per-bit access and no
//     resizing.
//   - Binary operations panic with *ErrLengthMismatch when the operands have
//     different lengths. A mismatch is a caller bug, not a runtime condition.
//   - Bits beyond Len() are always zero, so padding never shows up as a change.
//   - A BitVector is owned by one caller at a time. Guard it externally when
//     sharing across goroutines, or give each goroutine its own vectors.
//
// # Kernels
//
// The lane kernel is chosen at startup from the CPU features (AVX-512,
// AVX2, NEON). Set BITVEC_SIMD=generic to force the one-lane kernel, or
// build with -tags nosimd.
//
// See package fixpoint for a solver that drives Union to convergence over
// a graph.
package bitvec
