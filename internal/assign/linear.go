package assign

import (
	"unsafe"

	"github.com/axon-ml/axon/internal/simd"
	"github.com/axon-ml/axon/internal/tensor"
)

// runLinear executes the flat, stride-free pass. Precondition: the plan is
// trivial and everything involved supports flat access; reaching here
// otherwise is a programmer error in the selector.
func runLinear[T tensor.DType](p *Plan) {
	n := p.result.Shape.NumElements()
	d := tensor.As[T](p.dst)[:n]

	araw := p.a.storage()
	aScalar := araw.NumElements() == 1

	if p.b == nil {
		if aScalar {
			linearFill(d, tensor.As[T](araw)[0])
		} else {
			copy(d, tensor.As[T](araw)[:n])
		}
		return
	}

	braw := p.b.storage()
	bScalar := braw.NumElements() == 1

	switch {
	case aScalar && bScalar:
		linearFill(d, opFunc[T](p.op)(tensor.As[T](araw)[0], tensor.As[T](braw)[0]))
	case bScalar:
		a, bv := tensor.As[T](araw)[:n], tensor.As[T](braw)[0]
		switch p.op {
		case OpAdd:
			linearAddScalar(d, a, bv)
		case OpSub:
			linearSubScalar(d, a, bv)
		case OpMul:
			linearMulScalar(d, a, bv)
		case OpDiv:
			linearDivScalar(d, a, bv)
		}
	case aScalar:
		av, b := tensor.As[T](araw)[0], tensor.As[T](braw)[:n]
		switch p.op {
		case OpAdd:
			linearAddScalar(d, b, av)
		case OpSub:
			linearSubFrom(d, av, b)
		case OpMul:
			linearMulScalar(d, b, av)
		case OpDiv:
			linearDivInto(d, av, b)
		}
	default:
		a, b := tensor.As[T](araw)[:n], tensor.As[T](braw)[:n]
		switch p.op {
		case OpAdd:
			linearAdd(d, a, b)
		case OpSub:
			linearSub(d, a, b)
		case OpMul:
			linearMul(d, a, b)
		case OpDiv:
			linearDiv(d, a, b)
		}
	}
}

// batch returns the vector-width step for the element type. The main loops
// below step one full batch at a time so the tail check stays out of the
// vectorizable body.
func batch[T tensor.DType]() int {
	var zero T
	return simd.Lanes(int(unsafe.Sizeof(zero)))
}

func linearAdd[T tensor.DType](dst, a, b []T) {
	n, w := len(dst), batch[T]()
	i := 0
	for ; i+w <= n; i += w {
		for j := 0; j < w; j++ {
			dst[i+j] = a[i+j] + b[i+j]
		}
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

func linearSub[T tensor.DType](dst, a, b []T) {
	n, w := len(dst), batch[T]()
	i := 0
	for ; i+w <= n; i += w {
		for j := 0; j < w; j++ {
			dst[i+j] = a[i+j] - b[i+j]
		}
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

func linearMul[T tensor.DType](dst, a, b []T) {
	n, w := len(dst), batch[T]()
	i := 0
	for ; i+w <= n; i += w {
		for j := 0; j < w; j++ {
			dst[i+j] = a[i+j] * b[i+j]
		}
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

func linearDiv[T tensor.DType](dst, a, b []T) {
	n, w := len(dst), batch[T]()
	i := 0
	for ; i+w <= n; i += w {
		for j := 0; j < w; j++ {
			dst[i+j] = a[i+j] / b[i+j]
		}
	}
	for ; i < n; i++ {
		dst[i] = a[i] / b[i]
	}
}

func linearAddScalar[T tensor.DType](dst, a []T, s T) {
	n, w := len(dst), batch[T]()
	i := 0
	for ; i+w <= n; i += w {
		for j := 0; j < w; j++ {
			dst[i+j] = a[i+j] + s
		}
	}
	for ; i < n; i++ {
		dst[i] = a[i] + s
	}
}

func linearSubScalar[T tensor.DType](dst, a []T, s T) {
	n, w := len(dst), batch[T]()
	i := 0
	for ; i+w <= n; i += w {
		for j := 0; j < w; j++ {
			dst[i+j] = a[i+j] - s
		}
	}
	for ; i < n; i++ {
		dst[i] = a[i] - s
	}
}

func linearMulScalar[T tensor.DType](dst, a []T, s T) {
	n, w := len(dst), batch[T]()
	i := 0
	for ; i+w <= n; i += w {
		for j := 0; j < w; j++ {
			dst[i+j] = a[i+j] * s
		}
	}
	for ; i < n; i++ {
		dst[i] = a[i] * s
	}
}

func linearDivScalar[T tensor.DType](dst, a []T, s T) {
	n, w := len(dst), batch[T]()
	i := 0
	for ; i+w <= n; i += w {
		for j := 0; j < w; j++ {
			dst[i+j] = a[i+j] / s
		}
	}
	for ; i < n; i++ {
		dst[i] = a[i] / s
	}
}

// linearSubFrom assigns dst[i] = s - b[i].
func linearSubFrom[T tensor.DType](dst []T, s T, b []T) {
	for i := range dst {
		dst[i] = s - b[i]
	}
}

// linearDivInto assigns dst[i] = s / b[i].
func linearDivInto[T tensor.DType](dst []T, s T, b []T) {
	for i := range dst {
		dst[i] = s / b[i]
	}
}

func linearFill[T tensor.DType](dst []T, s T) {
	for i := range dst {
		dst[i] = s
	}
}
