// Package shape provides tensor shape descriptors and the broadcast resolver
// for the Axon assignment engine.
package shape

import "fmt"

// Shape represents a dynamically-ranked tensor shape.
// A nil or empty Shape is a scalar (rank 0).
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// Extent returns the size of the given axis.
func (s Shape) Extent(axis int) int {
	return s[axis]
}

// IsStatic reports whether every extent is known at compile time.
// Dynamic shapes always return false.
func (s Shape) IsStatic() bool {
	return false
}

// Extents returns the extent sequence itself.
func (s Shape) Extents() Shape {
	return s
}

// NumElements returns the total number of elements.
// A scalar has 1 element; an extent of 0 makes the whole shape empty.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every extent is non-negative.
// Extent 0 is legal and denotes an empty axis.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid extent at axis %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major element strides for the shape.
// stride[i] is the product of all extents after axis i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String formats the shape as "(2, 3, 4)".
func (s Shape) String() string {
	out := "("
	for i, dim := range s {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprint(dim)
	}
	return out + ")"
}
