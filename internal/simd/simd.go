// Package simd probes the width of the widest usable vector unit so the
// linear assignment kernels can step their flat loops in full batches.
package simd

// vectorBytes is set by per-architecture init code.
var vectorBytes = 16

// VectorBytes returns the probed vector register width in bytes.
func VectorBytes() int {
	return vectorBytes
}

// Lanes returns how many elements of the given byte size fit one vector
// register, never less than 1.
func Lanes(elemSize int) int {
	n := vectorBytes / elemSize
	if n < 1 {
		return 1
	}
	return n
}
