package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/axon-ml/axon/internal/shape"
)

// sharedBuffer is a reference-counted storage block. Views created from a
// tensor share its buffer instead of copying it.
type sharedBuffer struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newSharedBuffer creates a new reference-counted buffer with refCount = 1.
func newSharedBuffer(size int) *sharedBuffer {
	buf := &sharedBuffer{
		data: make([]byte, size),
	}
	buf.refCount.Store(1)
	return buf
}

func (sb *sharedBuffer) addRef() {
	sb.refCount.Add(1)
}

func (sb *sharedBuffer) release() {
	if sb.refCount.Add(-1) == 0 {
		sb.mu.Lock()
		defer sb.mu.Unlock()
		sb.data = nil
	}
}

func (sb *sharedBuffer) isUnique() bool {
	return sb.refCount.Load() == 1
}

// Value is the capability interface the assignment engine uses to consume an
// operand: a shape descriptor for resolution plus the backing storage.
// *Raw implements it with a dynamic descriptor, *Fixed with a static one.
type Value interface {
	Desc() shape.Descriptor
	Buffer() *Raw
}

// Raw is the dtype-erased dense tensor representation. Views over a Raw share
// its buffer and may be non-contiguous; strides and offset are expressed in
// elements, not bytes.
type Raw struct {
	buffer *sharedBuffer
	shape  shape.Shape
	stride []int
	dtype  DataType
	offset int
}

// NewRaw creates a new contiguous Raw with the given shape and type.
// Memory is allocated and zero-initialized.
func NewRaw(s shape.Shape, dtype DataType) (*Raw, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &Raw{
		buffer: newSharedBuffer(s.NumElements() * dtype.Size()),
		shape:  s.Clone(),
		stride: s.ComputeStrides(),
		dtype:  dtype,
		offset: 0,
	}, nil
}

// Desc returns the shape descriptor. Raw shapes are always dynamic.
func (r *Raw) Desc() shape.Descriptor {
	return r.shape
}

// Buffer returns the backing storage, the Raw itself.
func (r *Raw) Buffer() *Raw {
	return r
}

// Shape returns the tensor's shape.
func (r *Raw) Shape() shape.Shape {
	return r.shape
}

// Strides returns the tensor's element strides.
func (r *Raw) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *Raw) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of addressable elements.
func (r *Raw) NumElements() int {
	return r.shape.NumElements()
}

// IsContiguous reports whether the view walks its buffer in dense row-major
// order, i.e. its strides are exactly the row-major strides of its shape.
func (r *Raw) IsContiguous() bool {
	want := r.shape.ComputeStrides()
	for i := range want {
		if r.shape[i] > 1 && r.stride[i] != want[i] {
			return false
		}
	}
	return true
}

// span returns the number of buffer elements the view reaches past its
// origin: 1 + sum of stride*(extent-1) per axis, or 0 for empty shapes.
func (r *Raw) span() int {
	n := 1
	for i, dim := range r.shape {
		if dim == 0 {
			return 0
		}
		n += r.stride[i] * (dim - 1)
	}
	return n
}

// Index returns the element offset (relative to the view origin) of the given
// coordinates.
func (r *Raw) Index(coords ...int) int {
	if len(coords) != len(r.shape) {
		panic(fmt.Sprintf("Index: got %d coordinates for rank-%d tensor", len(coords), len(r.shape)))
	}
	off := 0
	for i, c := range coords {
		off += c * r.stride[i]
	}
	return off
}

// As interprets the data reachable from the view origin as []T.
// Panics if T does not match the tensor's dtype.
func As[T DType](r *Raw) []T {
	var zero T
	if inferDataType(zero) != r.dtype {
		panic(fmt.Sprintf("tensor dtype is %s, not %T", r.dtype, zero))
	}
	n := r.span()
	if n == 0 {
		return nil
	}
	data := r.buffer.data[r.offset*r.dtype.Size():]
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by span()
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), n)
}

// AsFloat32 interprets the data as []float32.
func (r *Raw) AsFloat32() []float32 {
	return As[float32](r)
}

// AsFloat64 interprets the data as []float64.
func (r *Raw) AsFloat64() []float64 {
	return As[float64](r)
}

// AsInt32 interprets the data as []int32.
func (r *Raw) AsInt32() []int32 {
	return As[int32](r)
}

// AsInt64 interprets the data as []int64.
func (r *Raw) AsInt64() []int64 {
	return As[int64](r)
}

// Clone creates a shallow copy sharing the buffer with reference counting.
func (r *Raw) Clone() *Raw {
	r.buffer.addRef()
	return &Raw{
		buffer: r.buffer,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
		offset: r.offset,
	}
}

// Release decrements the buffer reference count and deallocates at zero.
func (r *Raw) Release() {
	r.buffer.release()
}

// IsUnique returns true if this tensor is the only reference to the buffer.
func (r *Raw) IsUnique() bool {
	return r.buffer.isUnique()
}
