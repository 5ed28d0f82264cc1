package bitvec

import "github.com/hupe1980/bitvec/internal/simd"

const (
	wordBits  = simd.WordBits
	laneWords = simd.LaneWords
	laneBits  = simd.LaneBits
	allOnes   = ^uint32(0)
)

// BitVector is a fixed-length packed set of boolean flags.
//
// Storage is a whole number of 128-bit lanes held as 32-bit words:
//
//	┌──────────────────────────┬──────────────────────────┬─────┐
//	│  Lane 0 (128 bits)       │  Lane 1 (128 bits)       │ ... │
//	│  w0   w1   w2   w3       │  w4   w5   w6   w7       │     │
//	└──────────────────────────┴──────────────────────────┴─────┘
//
// Union walks the lane view; UnionU32 and SetAll walk the narrow view,
// which is the first ceil(Len()/32) words. Bits at or beyond Len() are
// always zero, so both views agree on every result.
//
// A BitVector is not safe for concurrent use.
type BitVector struct {
	words  []uint32
	length int
}

// New returns an empty BitVector with no storage.
func New() *BitVector {
	return &BitVector{}
}

// FromElem returns a BitVector of n bits, each set to value.
// It panics if n is negative.
func FromElem(n int, value bool) *BitVector {
	if n < 0 {
		panic("bitvec: negative length")
	}

	bv := &BitVector{
		words:  make([]uint32, lanesFor(n)*laneWords),
		length: n,
	}
	if value {
		simd.Fill(bv.words, allOnes)
		bv.clearPadding()
	}

	return bv
}

// Len returns the number of bits.
func (bv *BitVector) Len() int {
	return bv.length
}

// SetAll sets every bit to 1.
func (bv *BitVector) SetAll() {
	simd.Fill(bv.narrow(), allOnes)
	bv.clearPadding()
}

// Union sets every bit of bv to bv[i] | other[i] and reports whether any
// bit of bv changed. The storage is processed in 128-bit lanes and the
// change test happens once, after the last lane.
//
// It panics with *ErrLengthMismatch if the lengths differ.
func (bv *BitVector) Union(other *BitVector) bool {
	bv.mustMatch(other)
	return simd.OrLanes(bv.words, other.words)
}

// UnionU32 has the same contract and result as Union but processes one
// 32-bit word at a time over the narrow view.
//
// It panics with *ErrLengthMismatch if the lengths differ.
func (bv *BitVector) UnionU32(other *BitVector) bool {
	bv.mustMatch(other)
	return simd.OrWords(bv.narrow(), other.narrow())
}

func (bv *BitVector) mustMatch(other *BitVector) {
	if bv.length != other.length {
		panic(&ErrLengthMismatch{Expected: bv.length, Actual: other.length})
	}
}

// narrow returns the words that hold at least one meaningful bit.
func (bv *BitVector) narrow() []uint32 {
	return bv.words[:wordsFor(bv.length)]
}

// clearPadding zeroes every bit at or beyond length.
func (bv *BitVector) clearPadding() {
	n := wordsFor(bv.length)
	if rem := bv.length % wordBits; rem != 0 {
		bv.words[n-1] &= allOnes >> (wordBits - rem)
	}
	clear(bv.words[n:])
}

func lanesFor(n int) int {
	return (n + laneBits - 1) / laneBits
}

func wordsFor(n int) int {
	return (n + wordBits - 1) / wordBits
}
