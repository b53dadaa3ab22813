// Package cpuid summarizes host CPU capabilities for device descriptions.
package cpuid

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features reports the SIMD features of the current process's CPU.
type Features struct {
	HasSSE2      bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
}

// Detect reports the available CPU features for the current process.
func Detect() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// Summary renders the feature set as a short string, e.g. "amd64+avx2+sse2".
func (f Features) Summary() string {
	parts := []string{f.Architecture}
	if f.HasAVX512 {
		parts = append(parts, "avx512")
	}
	if f.HasAVX2 {
		parts = append(parts, "avx2")
	}
	if f.HasSSE2 {
		parts = append(parts, "sse2")
	}
	if f.HasNEON {
		parts = append(parts, "neon")
	}
	return strings.Join(parts, "+")
}
