package simd

// LaneWords is the number of 32-bit words in one 128-bit lane.
const LaneWords = 4

// LaneBits is the number of bits in one lane.
const LaneBits = LaneWords * WordBits

// WordBits is the number of bits in one narrow word.
const WordBits = 32

// Kernel function pointers, set once at init.
// Generic implementations are the default; selectKernels overrides them
// with wider-step variants for the active ISA.
var (
	kernelOrLanes = orLanesGeneric
	kernelOrWords = orWordsGeneric
	kernelFill    = fillGeneric

	lanesPerStep = 1
)

// OrLanes performs dst[i] |= src[i] lane by lane and reports whether any
// word of dst changed.
//
// SAFETY: Assumes len(src) >= len(dst) and len(dst)%LaneWords == 0.
func OrLanes(dst, src []uint32) bool {
	return kernelOrLanes(dst, src)
}

// OrWords performs dst[i] |= src[i] one word at a time and reports whether
// any word of dst changed.
//
// SAFETY: Assumes len(src) >= len(dst).
func OrWords(dst, src []uint32) bool {
	return kernelOrWords(dst, src)
}

// Fill sets every word of dst to v.
func Fill(dst []uint32, v uint32) {
	kernelFill(dst, v)
}

// LanesPerStep returns how many 128-bit lanes the active OrLanes kernel
// processes per loop iteration.
func LanesPerStep() int {
	return lanesPerStep
}

// ==============================================================================
// Generic implementations
// ==============================================================================

func orLanesGeneric(dst, src []uint32) bool {
	var c0, c1, c2, c3 uint32

	src = src[:len(dst)]
	for len(dst) >= LaneWords {
		a := (*[LaneWords]uint32)(dst)
		b := (*[LaneWords]uint32)(src)

		w0, w1, w2, w3 := a[0]|b[0], a[1]|b[1], a[2]|b[2], a[3]|b[3]
		c0 |= a[0] ^ w0
		c1 |= a[1] ^ w1
		c2 |= a[2] ^ w2
		c3 |= a[3] ^ w3
		a[0], a[1], a[2], a[3] = w0, w1, w2, w3

		dst, src = dst[LaneWords:], src[LaneWords:]
	}

	return c0|c1|c2|c3 != 0
}

// orLanes2 handles two lanes (256 bits) per step.
func orLanes2(dst, src []uint32) bool {
	var acc [2 * LaneWords]uint32

	src = src[:len(dst)]
	for len(dst) >= len(acc) {
		a := (*[2 * LaneWords]uint32)(dst)
		b := (*[2 * LaneWords]uint32)(src)
		for j := range a {
			w := a[j] | b[j]
			acc[j] |= a[j] ^ w
			a[j] = w
		}
		dst, src = dst[len(acc):], src[len(acc):]
	}

	tail := orLanesGeneric(dst, src)

	return reduceOr(acc[:]) != 0 || tail
}

// orLanes4 handles four lanes (512 bits) per step.
func orLanes4(dst, src []uint32) bool {
	var acc [4 * LaneWords]uint32

	src = src[:len(dst)]
	for len(dst) >= len(acc) {
		a := (*[4 * LaneWords]uint32)(dst)
		b := (*[4 * LaneWords]uint32)(src)
		for j := range a {
			w := a[j] | b[j]
			acc[j] |= a[j] ^ w
			a[j] = w
		}
		dst, src = dst[len(acc):], src[len(acc):]
	}

	tail := orLanes2(dst, src)

	return reduceOr(acc[:]) != 0 || tail
}

func reduceOr(words []uint32) uint32 {
	var r uint32
	for _, w := range words {
		r |= w
	}
	return r
}

func orWordsGeneric(dst, src []uint32) bool {
	var changed uint32

	src = src[:len(dst)]
	for i, a := range dst {
		w := a | src[i]
		changed |= a ^ w
		dst[i] = w
	}

	return changed != 0
}

func fillGeneric(dst []uint32, v uint32) {
	if v == 0 {
		clear(dst)
		return
	}
	for i := range dst {
		dst[i] = v
	}
}
