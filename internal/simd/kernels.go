//go:build !nosimd

package simd

// selectKernels sets the kernel pointers for the given ISA.
// It runs from the platform init after capability detection.
func selectKernels(isa ISA) {
	switch isa {
	case AVX512:
		kernelOrLanes = orLanes4
		lanesPerStep = 4
	case AVX2, NEON, SVE2:
		kernelOrLanes = orLanes2
		lanesPerStep = 2
	default:
		kernelOrLanes = orLanesGeneric
		lanesPerStep = 1
	}
}
