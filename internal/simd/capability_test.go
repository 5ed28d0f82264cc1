package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISA(t *testing.T) {
	tests := []struct {
		in   string
		want ISA
		ok   bool
	}{
		{"generic", Generic, true},
		{" NEON ", NEON, true},
		{"sve2", SVE2, true},
		{"AVX2", AVX2, true},
		{"avx512", AVX512, true},
		{"sse4", Generic, false},
		{"", Generic, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseISA(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestISAString(t *testing.T) {
	for _, isa := range []ISA{Generic, NEON, SVE2, AVX2, AVX512} {
		parsed, ok := ParseISA(isa.String())
		assert.True(t, ok)
		assert.Equal(t, isa, parsed)
	}

	assert.Equal(t, "unknown", ISA(200).String())
}

func TestResolveISA(t *testing.T) {
	isa, overridden := resolveISA("generic")
	assert.Equal(t, Generic, isa)
	assert.True(t, overridden)

	isa, overridden = resolveISA("not-an-isa")
	assert.Equal(t, selectBestISA(), isa)
	assert.False(t, overridden)

	isa, overridden = resolveISA("")
	assert.Equal(t, selectBestISA(), isa)
	assert.False(t, overridden)
}

func TestActiveISAIsAvailable(t *testing.T) {
	assert.True(t, isISAAvailable(ActiveISA()))
	assert.False(t, isISAAvailable(ISA(200)))
}
