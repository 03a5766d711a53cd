//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	// NEON is part of the arm64 baseline. SVE registers can be wider, but the
	// Go compiler only auto-vectorizes to fixed 128-bit NEON today, so wider
	// batch stepping buys nothing without hand-written kernels.
	if cpu.ARM64.HasASIMD {
		vectorBytes = 16
	}
}
