package assign

import (
	"errors"
	"fmt"

	"github.com/axon-ml/axon/internal/shape"
	"github.com/axon-ml/axon/internal/tensor"
)

// ErrDTypeMismatch is returned when expression operands and destination do
// not share one element type.
var ErrDTypeMismatch = errors.New("dtype mismatch")

// indexBuffer is per-call scratch for the strided walk. Storage is the inline
// fixed-capacity array whenever the rank fits shape.MaxStaticRank; the heap
// slice is used only for genuinely dynamic ranks above the bound. Static
// descriptors cannot exceed the bound, so statically-ranked destinations
// never pay a heap allocation here.
type indexBuffer struct {
	fixed [shape.MaxStaticRank]int
	dyn   []int
}

func (b *indexBuffer) slice(rank int) []int {
	if rank <= shape.MaxStaticRank {
		return b.fixed[:rank]
	}
	if cap(b.dyn) < rank {
		b.dyn = make([]int, rank)
	}
	return b.dyn[:rank]
}

// Plan is one assignment call's chosen strategy plus the scratch state the
// strided walk needs. Plans hold no shared or global state, so independent
// assignments compose safely across goroutines.
type Plan struct {
	strategy Strategy
	op       Op
	dtype    tensor.DataType
	result   shape.Result

	dst  *tensor.Raw
	a, b Source

	// Strided scratch, built at most once per plan.
	idx    indexBuffer
	dstStr indexBuffer
	aStr   indexBuffer
	bStr   indexBuffer
}

// NewPlan resolves the expression against the destination and selects the
// execution strategy. All shape and dtype failures surface here, before any
// destination element is written.
func NewPlan(dst tensor.Value, e Expr) (*Plan, error) {
	if e.a == nil {
		return nil, errors.New("assign: empty expression")
	}
	if (e.op == OpIdentity) != (e.b == nil) {
		return nil, fmt.Errorf("assign: %s expression with wrong operand count", e.op)
	}

	draw := dst.Buffer()
	if e.a.DType() != draw.DType() || (e.b != nil && e.b.DType() != draw.DType()) {
		return nil, fmt.Errorf("assign: operand dtypes do not match destination %s: %w",
			draw.DType(), ErrDTypeMismatch)
	}

	// Resolve the source operands against each other, then the combined
	// result against the destination. Both steps go through the one shared
	// resolver, whether the descriptors involved are static or dynamic.
	var res shape.Result
	if e.b == nil {
		res = shape.Result{Shape: e.a.Desc().Extents().Clone(), Trivial: true}
	} else {
		var err error
		res, err = shape.Resolve(e.a.Desc(), e.b.Desc())
		if err != nil {
			return nil, err
		}
	}

	full, err := shape.Resolve(dst.Desc(), res.Shape)
	if err != nil {
		return nil, err
	}
	// The source may broadcast up into the destination, never past it.
	if full.Shape.NumElements() != draw.NumElements() || !shape.TrivialFor(dst.Desc(), full.Shape) {
		return nil, fmt.Errorf("assign: cannot broadcast result %v into destination %v: %w",
			full.Shape, draw.Shape(), shape.ErrShapeMismatch)
	}

	trivial := res.Trivial && full.Trivial

	aTerm, aIsTerm := e.a.(term)
	linear := draw.IsContiguous() && aIsTerm && aTerm.linear()
	stridedOK := aIsTerm
	if e.b != nil {
		bTerm, bIsTerm := e.b.(term)
		linear = linear && bIsTerm && bTerm.linear()
		stridedOK = stridedOK && bIsTerm
	}

	p := &Plan{
		strategy: Select(trivial, linear, stridedOK),
		op:       e.op,
		dtype:    draw.DType(),
		result:   shape.Result{Shape: full.Shape, Trivial: trivial},
		dst:      draw,
		a:        e.a,
		b:        e.b,
	}

	if p.strategy == Strided {
		rank := len(full.Shape)
		broadcastStridesInto(p.dstStr.slice(rank), draw.Shape(), draw.Strides(), full.Shape)
		araw := e.a.storage()
		broadcastStridesInto(p.aStr.slice(rank), araw.Shape(), araw.Strides(), full.Shape)
		if e.b != nil {
			braw := e.b.storage()
			broadcastStridesInto(p.bStr.slice(rank), braw.Shape(), braw.Strides(), full.Shape)
		}
		// Touch the remaining scratch now so rank overflow allocates once per
		// plan, not during the walk.
		p.idx.slice(rank)
	}

	return p, nil
}

// Strategy returns the execution path the plan selected.
func (p *Plan) Strategy() Strategy {
	return p.strategy
}

// Trivial reports the broadcast resolver's classification.
func (p *Plan) Trivial() bool {
	return p.result.Trivial
}

// ResultShape returns the broadcast result shape.
func (p *Plan) ResultShape() shape.Shape {
	return p.result.Shape
}

// IndexBufferHeapAllocated reports whether the strided walk's scratch had to
// leave the inline fixed-capacity storage. Always false for destinations
// whose rank fits shape.MaxStaticRank, in particular all static shapes.
func (p *Plan) IndexBufferHeapAllocated() bool {
	return p.strategy == Strided && len(p.result.Shape) > shape.MaxStaticRank
}

// Run executes the planned assignment. Running the same plan again over
// unchanged sources writes identical contents.
func (p *Plan) Run() {
	if p.result.Shape.NumElements() == 0 {
		return
	}
	switch p.dtype {
	case tensor.Float32:
		run[float32](p)
	case tensor.Float64:
		run[float64](p)
	case tensor.Int32:
		run[int32](p)
	case tensor.Int64:
		run[int64](p)
	default:
		panic(fmt.Sprintf("assign: unsupported dtype %v", p.dtype))
	}
}

func run[T tensor.DType](p *Plan) {
	switch p.strategy {
	case Linear:
		runLinear[T](p)
	case Strided:
		runStrided[T](p)
	case Stepper:
		runStepper[T](p)
	}
}

// broadcastStridesInto writes the element stride each result axis contributes
// for an operand with the given view extents and strides. Size-1 and missing
// axes are pinned to 0, holding that axis's index at the operand's origin.
func broadcastStridesInto(out []int, extents shape.Shape, strides []int, result shape.Shape) {
	offset := len(result) - len(extents)
	for i := range result {
		j := i - offset
		if j < 0 || extents[j] == 1 {
			out[i] = 0
		} else {
			out[i] = strides[j]
		}
	}
}
