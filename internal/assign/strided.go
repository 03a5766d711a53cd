package assign

import (
	"github.com/axon-ml/axon/internal/tensor"
)

// walker tracks the odometer state of a strided walk: the current multi-index
// plus one running element offset per participant. Offsets are adjusted
// incrementally on each advance, so a coordinate visit costs O(1) amortized
// instead of a divmod chain per element.
type walker struct {
	dims      []int
	idx       []int
	dstStride []int
	aStride   []int
	bStride   []int
	dstOff    int
	aOff      int
	bOff      int
}

func (w *walker) advance() {
	for ax := len(w.dims) - 1; ax >= 0; ax-- {
		w.idx[ax]++
		w.dstOff += w.dstStride[ax]
		w.aOff += w.aStride[ax]
		w.bOff += w.bStride[ax]
		if w.idx[ax] < w.dims[ax] {
			return
		}
		w.idx[ax] = 0
		w.dstOff -= w.dstStride[ax] * w.dims[ax]
		w.aOff -= w.aStride[ax] * w.dims[ax]
		w.bOff -= w.bStride[ax] * w.dims[ax]
	}
}

// runStrided walks every coordinate of the result shape in the destination's
// row-major order. Scratch comes from the plan's index buffers; nothing is
// allocated during the walk.
func runStrided[T tensor.DType](p *Plan) {
	n := p.result.Shape.NumElements()
	rank := len(p.result.Shape)

	w := walker{
		dims:      p.result.Shape,
		idx:       p.idx.slice(rank),
		dstStride: p.dstStr.slice(rank),
		aStride:   p.aStr.slice(rank),
		bStride:   p.bStr.slice(rank),
	}
	for i := range w.idx {
		w.idx[i] = 0
	}

	d := tensor.As[T](p.dst)
	a := tensor.As[T](p.a.storage())

	if p.b == nil {
		stridedCopy(d, a, &w, n)
		return
	}

	b := tensor.As[T](p.b.storage())
	switch p.op {
	case OpAdd:
		stridedAdd(d, a, b, &w, n)
	case OpSub:
		stridedSub(d, a, b, &w, n)
	case OpMul:
		stridedMul(d, a, b, &w, n)
	case OpDiv:
		stridedDiv(d, a, b, &w, n)
	}
}

func stridedCopy[T tensor.DType](dst, a []T, w *walker, n int) {
	for i := 0; i < n; i++ {
		dst[w.dstOff] = a[w.aOff]
		w.advance()
	}
}

func stridedAdd[T tensor.DType](dst, a, b []T, w *walker, n int) {
	for i := 0; i < n; i++ {
		dst[w.dstOff] = a[w.aOff] + b[w.bOff]
		w.advance()
	}
}

func stridedSub[T tensor.DType](dst, a, b []T, w *walker, n int) {
	for i := 0; i < n; i++ {
		dst[w.dstOff] = a[w.aOff] - b[w.bOff]
		w.advance()
	}
}

func stridedMul[T tensor.DType](dst, a, b []T, w *walker, n int) {
	for i := 0; i < n; i++ {
		dst[w.dstOff] = a[w.aOff] * b[w.bOff]
		w.advance()
	}
}

func stridedDiv[T tensor.DType](dst, a, b []T, w *walker, n int) {
	for i := 0; i < n; i++ {
		dst[w.dstOff] = a[w.aOff] / b[w.bOff]
		w.advance()
	}
}
