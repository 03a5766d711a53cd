package tensor

import "fmt"

// Narrow returns a view restricted to [start, start+length) along dim.
// The view shares the buffer; it stays contiguous only when the narrowing
// keeps the row-major walk dense (e.g. narrowing the outermost axis).
func (r *Raw) Narrow(dim, start, length int) (*Raw, error) {
	if dim < 0 || dim >= len(r.shape) {
		return nil, fmt.Errorf("narrow: invalid dim %d for rank-%d tensor", dim, len(r.shape))
	}
	if start < 0 || length < 0 || start+length > r.shape[dim] {
		return nil, fmt.Errorf("narrow: range [%d, %d) out of bounds for extent %d",
			start, start+length, r.shape[dim])
	}

	v := r.Clone()
	v.offset += start * v.stride[dim]
	v.shape[dim] = length
	return v, nil
}

// Step returns a view that keeps every step-th element along dim, starting at
// the first. The resulting view is non-contiguous for step > 1.
func (r *Raw) Step(dim, step int) (*Raw, error) {
	if dim < 0 || dim >= len(r.shape) {
		return nil, fmt.Errorf("step: invalid dim %d for rank-%d tensor", dim, len(r.shape))
	}
	if step < 1 {
		return nil, fmt.Errorf("step: step must be >= 1, got %d", step)
	}

	v := r.Clone()
	v.shape[dim] = (v.shape[dim] + step - 1) / step
	v.stride[dim] *= step
	return v, nil
}

// Squeeze returns a view with the given size-1 axis removed.
func (r *Raw) Squeeze(dim int) (*Raw, error) {
	if dim < 0 || dim >= len(r.shape) {
		return nil, fmt.Errorf("squeeze: invalid dim %d for rank-%d tensor", dim, len(r.shape))
	}
	if r.shape[dim] != 1 {
		return nil, fmt.Errorf("squeeze: axis %d has extent %d, not 1", dim, r.shape[dim])
	}

	v := r.Clone()
	v.shape = append(v.shape[:dim], v.shape[dim+1:]...)
	v.stride = append(v.stride[:dim], v.stride[dim+1:]...)
	return v, nil
}

// Permute returns a view with axes reordered according to axes.
// No data moves; only shape and strides are permuted.
func (r *Raw) Permute(axes ...int) (*Raw, error) {
	ndim := len(r.shape)
	if len(axes) != ndim {
		return nil, fmt.Errorf("permute: axes length %d != rank %d", len(axes), ndim)
	}

	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			return nil, fmt.Errorf("permute: invalid axis %d for rank-%d tensor", ax, ndim)
		}
		if seen[ax] {
			return nil, fmt.Errorf("permute: duplicate axis %d", ax)
		}
		seen[ax] = true
	}

	v := r.Clone()
	for i, ax := range axes {
		v.shape[i] = r.shape[ax]
		v.stride[i] = r.stride[ax]
	}
	return v, nil
}
