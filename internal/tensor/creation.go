package tensor

import (
	"fmt"

	"github.com/axon-ml/axon/internal/shape"
)

// Zeros creates a zero-filled contiguous tensor.
func Zeros[T DType](s shape.Shape) (*Raw, error) {
	var zero T
	return NewRaw(s, inferDataType(zero))
}

// Full creates a contiguous tensor filled with a specific value.
func Full[T DType](s shape.Shape, value T) (*Raw, error) {
	var zero T
	r, err := NewRaw(s, inferDataType(zero))
	if err != nil {
		return nil, err
	}
	data := As[T](r)
	for i := range data {
		data[i] = value
	}
	return r, nil
}

// From creates a contiguous tensor holding a copy of the given data.
func From[T DType](data []T, s shape.Shape) (*Raw, error) {
	if len(data) != s.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), s, s.NumElements())
	}
	var zero T
	r, err := NewRaw(s, inferDataType(zero))
	if err != nil {
		return nil, err
	}
	copy(As[T](r), data)
	return r, nil
}

// ScalarOf creates a rank-0 tensor holding a single value. Rank 0 is the
// canonical scalar encoding throughout the engine.
func ScalarOf[T DType](value T) *Raw {
	r, err := Full(shape.Shape{}, value)
	if err != nil {
		panic(err) // scalar shape is always valid
	}
	return r
}
