package tensor

import (
	"github.com/axon-ml/axon/internal/shape"
)

// Fixed is a tensor whose shape is fixed at compile time: the rank is carried
// by the Dims type parameter. The assignment engine sees it through a static
// descriptor, which guarantees strided walks over it use stack-resident index
// buffers.
type Fixed[A shape.Dims] struct {
	raw  *Raw
	desc shape.Static[A]
}

// NewFixed creates a zero-initialized fixed-shape tensor.
func NewFixed[A shape.Dims](dims A, dtype DataType) (*Fixed[A], error) {
	desc, err := shape.NewStatic(dims)
	if err != nil {
		return nil, err
	}
	raw, err := NewRaw(desc.Extents(), dtype)
	if err != nil {
		return nil, err
	}
	return &Fixed[A]{raw: raw, desc: desc}, nil
}

// FixedFrom creates a fixed-shape tensor holding a copy of the given data.
func FixedFrom[T DType, A shape.Dims](data []T, dims A) (*Fixed[A], error) {
	desc, err := shape.NewStatic(dims)
	if err != nil {
		return nil, err
	}
	raw, err := From(data, desc.Extents())
	if err != nil {
		return nil, err
	}
	return &Fixed[A]{raw: raw, desc: desc}, nil
}

// Desc returns the static shape descriptor.
func (f *Fixed[A]) Desc() shape.Descriptor {
	return f.desc
}

// Buffer returns the backing storage.
func (f *Fixed[A]) Buffer() *Raw {
	return f.raw
}

// DType returns the tensor's data type.
func (f *Fixed[A]) DType() DataType {
	return f.raw.DType()
}
