package shape

// Descriptor is the capability interface shared by statically- and
// dynamically-shaped operands. The broadcast resolver operates exclusively on
// this interface, so both kinds of shape go through the same evaluation rule
// and cannot diverge.
type Descriptor interface {
	// Rank returns the number of axes.
	Rank() int
	// Extent returns the size of the given axis.
	Extent(axis int) int
	// IsStatic reports whether every extent is known at compile time.
	IsStatic() bool
	// Extents returns the extent sequence as a dynamic shape.
	Extents() Shape
}

// alignedExtent returns the extent the descriptor contributes at a result
// axis after right-alignment, reading missing leading axes as 1.
func alignedExtent(d Descriptor, resultRank, axis int) int {
	j := axis - (resultRank - d.Rank())
	if j < 0 {
		return 1
	}
	return d.Extent(j)
}

// IsScalar reports whether the operand broadcasts as a scalar: rank 0, or a
// degenerate all-ones encoding holding exactly one element. Treating both
// encodings identically here is what keeps the triviality rule immune to the
// rank-0 versus rank-1-size-1 convention question.
func IsScalar(d Descriptor) bool {
	for i := 0; i < d.Rank(); i++ {
		if d.Extent(i) != 1 {
			return false
		}
	}
	return true
}
