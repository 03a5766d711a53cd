package assign

import (
	"github.com/axon-ml/axon/internal/shape"
	"github.com/axon-ml/axon/internal/tensor"
)

// cursor is the generic position abstraction of the stepper path: it yields
// the element offset of the current position in destination walk order and
// advances one position at a time.
type cursor interface {
	offset() int
	advance()
}

// denseCursor walks a dense operand along the result shape using
// broadcast-adjusted strides.
type denseCursor struct {
	dims    shape.Shape
	idx     []int
	strides []int
	off     int
}

func newDenseCursor(raw *tensor.Raw, result shape.Shape) *denseCursor {
	c := &denseCursor{
		dims:    result,
		idx:     make([]int, len(result)),
		strides: make([]int, len(result)),
	}
	broadcastStridesInto(c.strides, raw.Shape(), raw.Strides(), result)
	return c
}

func (c *denseCursor) offset() int {
	return c.off
}

func (c *denseCursor) advance() {
	for ax := len(c.dims) - 1; ax >= 0; ax-- {
		c.idx[ax]++
		c.off += c.strides[ax]
		if c.idx[ax] < c.dims[ax] {
			return
		}
		c.idx[ax] = 0
		c.off -= c.strides[ax] * c.dims[ax]
	}
}

// gatherCursor walks a gather operand: the taken axis's coordinate is routed
// through the index list, so offsets have no closed form and are recomputed
// per position.
type gatherCursor struct {
	dims        shape.Shape
	idx         []int
	g           gather
	baseStrides []int
}

func newGatherCursor(g gather, result shape.Shape) *gatherCursor {
	return &gatherCursor{
		dims:        result,
		idx:         make([]int, len(result)),
		g:           g,
		baseStrides: g.base.Strides(),
	}
}

func (c *gatherCursor) offset() int {
	pad := len(c.dims) - c.g.sh.Rank()
	off := 0
	for j := 0; j < c.g.sh.Rank(); j++ {
		coord := 0
		if pad+j >= 0 && c.g.sh[j] > 1 {
			coord = c.idx[pad+j]
		}
		if j == c.g.axis {
			coord = c.g.indices[coord]
		}
		off += coord * c.baseStrides[j]
	}
	return off
}

func (c *gatherCursor) advance() {
	for ax := len(c.dims) - 1; ax >= 0; ax-- {
		c.idx[ax]++
		if c.idx[ax] < c.dims[ax] {
			return
		}
		c.idx[ax] = 0
	}
}

// opFunc returns the element combiner for an operation.
func opFunc[T tensor.DType](op Op) func(x, y T) T {
	switch op {
	case OpAdd:
		return func(x, y T) T { return x + y }
	case OpSub:
		return func(x, y T) T { return x - y }
	case OpMul:
		return func(x, y T) T { return x * y }
	case OpDiv:
		return func(x, y T) T { return x / y }
	default:
		panic("assign: no combiner for " + op.String())
	}
}

// runStepper is the generic fallback: per-operand cursors advanced in
// lockstep with the destination walk. Cursor construction is the only
// allocation and is amortized across the whole iteration.
func runStepper[T tensor.DType](p *Plan) {
	n := p.result.Shape.NumElements()

	cd := newDenseCursor(p.dst, p.result.Shape)
	ca := p.a.cursor(p.result.Shape)
	d := tensor.As[T](p.dst)
	a := tensor.As[T](p.a.storage())

	if p.b == nil {
		for i := 0; i < n; i++ {
			d[cd.offset()] = a[ca.offset()]
			cd.advance()
			ca.advance()
		}
		return
	}

	cb := p.b.cursor(p.result.Shape)
	b := tensor.As[T](p.b.storage())
	f := opFunc[T](p.op)
	for i := 0; i < n; i++ {
		d[cd.offset()] = f(a[ca.offset()], b[cb.offset()])
		cd.advance()
		ca.advance()
		cb.advance()
	}
}
