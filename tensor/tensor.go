// Copyright 2025 Axon ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/axon-ml/axon/internal/shape"
	"github.com/axon-ml/axon/internal/tensor"
)

// Type aliases for the public API

// DType is a constraint for supported element types:
// float32, float64, int32, int64.
type DType = tensor.DType

// DataType represents runtime type information for tensor elements.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
)

// Shape represents a dynamically-ranked tensor shape.
// Example: Shape{2, 3, 4} is a 3D shape with extents 2×3×4; Shape{} is the
// canonical scalar shape.
type Shape = shape.Shape

// Descriptor is the capability interface shared by static and dynamic
// shapes: Rank(), Extent(axis), IsStatic(), Extents().
type Descriptor = shape.Descriptor

// Dims is the set of extent arrays usable as static shapes.
type Dims = shape.Dims

// Static is a fixed-rank shape whose rank is a compile-time constant.
type Static[A Dims] = shape.Static[A]

// MaxStaticRank bounds the rank of static shapes and of stack-resident
// assignment scratch buffers.
const MaxStaticRank = shape.MaxStaticRank

// Result is the output of broadcast resolution: the result shape plus the
// trivial classification.
type Result = shape.Result

// ErrShapeMismatch is the sentinel for broadcast resolution failures.
var ErrShapeMismatch = shape.ErrShapeMismatch

// Raw is the dtype-erased dense tensor representation. Views created from a
// Raw share its reference-counted buffer and may be non-contiguous.
type Raw = tensor.Raw

// Fixed is a tensor whose shape is fixed at compile time.
type Fixed[A Dims] = tensor.Fixed[A]

// Value is the operand interface the assignment engine consumes: a shape
// descriptor plus backing storage. Implemented by *Raw and *Fixed.
type Value = tensor.Value

// Creation functions

// NewRaw creates a new zero-initialized contiguous tensor.
func NewRaw(s Shape, dtype DataType) (*Raw, error) {
	return tensor.NewRaw(s, dtype)
}

// NewStatic creates a static shape from an extent array.
//
// Example:
//
//	s, _ := tensor.NewStatic([2]int{3, 4})  // rank fixed at compile time
func NewStatic[A Dims](dims A) (Static[A], error) {
	return shape.NewStatic(dims)
}

// MustStatic is like NewStatic but panics on invalid extents.
func MustStatic[A Dims](dims A) Static[A] {
	return shape.MustStatic(dims)
}

// NewFixed creates a zero-initialized fixed-shape tensor.
func NewFixed[A Dims](dims A, dtype DataType) (*Fixed[A], error) {
	return tensor.NewFixed(dims, dtype)
}

// FixedFrom creates a fixed-shape tensor holding a copy of the given data.
func FixedFrom[T DType, A Dims](data []T, dims A) (*Fixed[A], error) {
	return tensor.FixedFrom(data, dims)
}

// Zeros creates a zero-filled contiguous tensor.
func Zeros[T DType](s Shape) (*Raw, error) {
	return tensor.Zeros[T](s)
}

// Full creates a contiguous tensor filled with a specific value.
func Full[T DType](s Shape, value T) (*Raw, error) {
	return tensor.Full(s, value)
}

// From creates a contiguous tensor holding a copy of the given data.
//
// Example:
//
//	x, err := tensor.From([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func From[T DType](data []T, s Shape) (*Raw, error) {
	return tensor.From(data, s)
}

// ScalarOf creates a rank-0 tensor holding a single value.
func ScalarOf[T DType](value T) *Raw {
	return tensor.ScalarOf(value)
}

// As interprets the tensor's reachable data as []T.
// Panics if T does not match the tensor's dtype.
func As[T DType](r *Raw) []T {
	return tensor.As[T](r)
}

// Resolve computes the broadcast combination of two shape descriptors: the
// result shape plus the trivial classification, or a shape-mismatch error.
// One evaluation function serves static and dynamic descriptors alike.
//
// Example:
//
//	res, err := tensor.Resolve(tensor.Shape{3, 1}, tensor.Shape{3, 4})
//	// res.Shape = (3, 4), res.Trivial = false
func Resolve(a, b Descriptor) (Result, error) {
	return shape.Resolve(a, b)
}
