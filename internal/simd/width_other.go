//go:build !amd64 && !arm64

package simd

func init() {
	// Unknown architecture: keep the default 16-byte batch, which degrades to
	// plain scalar stepping without changing results.
	vectorBytes = 16
}
