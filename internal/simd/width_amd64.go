//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case cpu.X86.HasAVX512F:
		vectorBytes = 64
	case cpu.X86.HasAVX2:
		vectorBytes = 32
	default:
		// SSE2 is part of the amd64 baseline.
		vectorBytes = 16
	}
}
