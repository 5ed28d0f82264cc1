//go:build nosimd

package simd

// selectKernels keeps the one-lane generic kernels when built with -tags nosimd.
func selectKernels(ISA) {}
