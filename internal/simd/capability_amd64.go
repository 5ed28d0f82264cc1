//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	// Bit kernels are integer only; FMA and AVX-512BW are irrelevant here.
	hasAVX2 = cpu.X86.HasAVX2
	hasAVX512F = cpu.X86.HasAVX512F
	initCapabilities()
	selectKernels(activeISA)
}
