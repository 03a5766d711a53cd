package shape

import "fmt"

// MaxStaticRank is the largest rank expressible as a static shape. It also
// bounds the inline scratch capacity of assignment plans: any destination
// whose rank fits this bound walks with stack-resident index buffers.
const MaxStaticRank = 8

// Dims is the set of extent arrays usable as static shapes. The rank of a
// static shape is the array length, fixed at compile time.
type Dims interface {
	[0]int | [1]int | [2]int | [3]int | [4]int | [5]int | [6]int | [7]int | [8]int
}

// Static is a fixed-rank shape whose rank is a compile-time constant.
// It is the counterpart of a fixed-size tensor container: the rank is carried
// in the type, so scratch buffers sized to it never need the heap.
type Static[A Dims] struct {
	dims A
}

// NewStatic creates a static shape from an extent array.
// Extents must be non-negative; extent 0 denotes an empty axis.
func NewStatic[A Dims](dims A) (Static[A], error) {
	for i := 0; i < len(dims); i++ {
		if dims[i] < 0 {
			return Static[A]{}, fmt.Errorf("invalid extent at axis %d: %d (must be >= 0)", i, dims[i])
		}
	}
	return Static[A]{dims: dims}, nil
}

// MustStatic is like NewStatic but panics on invalid extents.
func MustStatic[A Dims](dims A) Static[A] {
	s, err := NewStatic(dims)
	if err != nil {
		panic(err)
	}
	return s
}

// Rank returns the number of axes, a compile-time constant of the type.
func (s Static[A]) Rank() int {
	return len(s.dims)
}

// Extent returns the size of the given axis.
func (s Static[A]) Extent(axis int) int {
	return s.dims[axis]
}

// IsStatic reports whether every extent is known at compile time.
// Static shapes always return true.
func (s Static[A]) IsStatic() bool {
	return true
}

// Extents returns the extent sequence as a dynamic shape.
func (s Static[A]) Extents() Shape {
	out := make(Shape, len(s.dims))
	for i := 0; i < len(s.dims); i++ {
		out[i] = s.dims[i]
	}
	return out
}

// NumElements returns the total number of elements.
func (s Static[A]) NumElements() int {
	n := 1
	for i := 0; i < len(s.dims); i++ {
		n *= s.dims[i]
	}
	return n
}
