// Package simd provides lane-oriented bit kernels for packed 32-bit words.
//
// # Layout
//
// Storage is a flat []uint32. A lane is four consecutive words (128 bits).
// OrLanes walks the storage in whole lanes; OrWords walks it one word at a
// time. Both return whether any word changed, tested once after the loop.
//
// # Supported Platforms
//
//   - x86-64: AVX-512 (4 lanes per step), AVX2 (2 lanes per step)
//   - ARM64: NEON, SVE2 (2 lanes per step)
//
// Runtime CPU feature detection selects the kernel set. Set BITVEC_SIMD to
// force an ISA the CPU supports. Build with -tags nosimd to force the
// one-lane generic kernels.
package simd
