package simd

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints ISA diagnostics so CI logs show which kernels ran.
func TestMain(m *testing.M) {
	fmt.Printf("=== SIMD ISA Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("%s=%q\n", EnvOverride, os.Getenv(EnvOverride))
	fmt.Printf("Active ISA: %s\n", ActiveISA())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("Lanes per step: %d\n", LanesPerStep())
	fmt.Printf("CPU Features:\n")

	switch runtime.GOARCH {
	case "arm64":
		fmt.Printf("  ASIMD (NEON): %v\n", HasASIMD())
		fmt.Printf("  SVE2: %v\n", HasSVE2())
	case "amd64":
		fmt.Printf("  AVX2: %v\n", HasAVX2())
		fmt.Printf("  AVX-512F: %v\n", HasAVX512())
	}

	fmt.Printf("============================\n\n")

	os.Exit(m.Run())
}
