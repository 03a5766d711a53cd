package assign

import (
	"fmt"

	"github.com/axon-ml/axon/internal/shape"
	"github.com/axon-ml/axon/internal/tensor"
)

// Source is one operand of an element-wise expression.
type Source interface {
	// Desc returns the operand's shape descriptor.
	Desc() shape.Descriptor
	// DType returns the operand's element type.
	DType() tensor.DataType

	// storage returns the backing buffer elements are read from.
	storage() *tensor.Raw
	// cursor returns a position cursor following the result walk order.
	cursor(result shape.Shape) cursor
}

// term wraps a dense tensor, view, or scalar operand.
type term struct {
	v tensor.Value
}

// Term adapts a tensor value into an expression operand.
func Term(v tensor.Value) Source {
	return term{v: v}
}

// Scalar creates a scalar constant operand (canonical rank-0 encoding).
func Scalar[T tensor.DType](value T) Source {
	return term{v: tensor.ScalarOf(value)}
}

func (t term) Desc() shape.Descriptor {
	return t.v.Desc()
}

func (t term) DType() tensor.DataType {
	return t.v.Buffer().DType()
}

func (t term) storage() *tensor.Raw {
	return t.v.Buffer()
}

// linear reports whether the operand supports flat lockstep access.
func (t term) linear() bool {
	return t.v.Buffer().IsContiguous()
}

func (t term) cursor(result shape.Shape) cursor {
	return newDenseCursor(t.v.Buffer(), result)
}

// gather is an index-selection view along one axis of a dense operand. It has
// no closed-form strides, so expressions containing it run on the stepper
// path.
type gather struct {
	base    *tensor.Raw
	axis    int
	indices []int
	sh      shape.Shape
}

// Take builds a gather operand selecting the given indices along axis.
func Take(v tensor.Value, axis int, indices []int) (Source, error) {
	raw := v.Buffer()
	sh := raw.Shape()
	if axis < 0 || axis >= sh.Rank() {
		return nil, fmt.Errorf("take: invalid axis %d for rank-%d operand", axis, sh.Rank())
	}
	for _, ix := range indices {
		if ix < 0 || ix >= sh.Extent(axis) {
			return nil, fmt.Errorf("take: index %d out of range for axis extent %d", ix, sh.Extent(axis))
		}
	}

	out := sh.Clone()
	out[axis] = len(indices)
	return gather{
		base:    raw,
		axis:    axis,
		indices: append([]int(nil), indices...),
		sh:      out,
	}, nil
}

func (g gather) Desc() shape.Descriptor {
	return g.sh
}

func (g gather) DType() tensor.DataType {
	return g.base.DType()
}

func (g gather) storage() *tensor.Raw {
	return g.base
}

func (g gather) cursor(result shape.Shape) cursor {
	return newGatherCursor(g, result)
}
