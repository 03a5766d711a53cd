package assign

// Strategy identifies which execution path an assignment takes.
type Strategy int

// Execution strategies, cheapest first.
const (
	// Linear walks source and destination as flat sequences with no index
	// remapping. Zero per-call allocation and maximal vectorization
	// opportunity; gated strictly on a trivial broadcast classification.
	Linear Strategy = iota
	// Strided walks every coordinate of the result shape, applying size-1
	// axis broadcasting by pinning that axis's stride to zero.
	Strided
	// Stepper advances a generic position cursor per operand. Used only when
	// closed-form strides are unavailable (e.g. gather views).
	Stepper
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case Linear:
		return "Linear"
	case Strided:
		return "Strided"
	case Stepper:
		return "Stepper"
	default:
		return "Unknown"
	}
}

// Op is the element-wise operation combining expression operands.
type Op int

// Supported element-wise operations.
const (
	OpIdentity Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// String returns a human-readable operation name.
func (op Op) String() string {
	switch op {
	case OpIdentity:
		return "identity"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	default:
		return "unknown"
	}
}

// Select maps the resolved classification to an execution strategy.
//
// trivial means the broadcast result allows a flat lockstep walk; linear
// means destination and every operand additionally support flat access
// (contiguous storage or a scalar); stridedOK means every operand exposes
// closed-form strides. The selection never consults anything else, so
// introspecting the chosen strategy cannot affect it.
func Select(trivial, linear, stridedOK bool) Strategy {
	switch {
	case trivial && linear:
		return Linear
	case stridedOK:
		return Strided
	default:
		return Stepper
	}
}
