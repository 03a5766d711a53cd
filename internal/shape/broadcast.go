package shape

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is the sentinel for broadcast resolution failures.
var ErrShapeMismatch = errors.New("shape mismatch")

// MismatchError reports two shapes that cannot be aligned under the
// 1-or-equal broadcasting rule.
type MismatchError struct {
	A, B Shape
	Axis int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("shapes not compatible for broadcasting: %v vs %v (axis %d: %d vs %d)",
		e.A, e.B, e.Axis, alignedExtent(e.A, max(len(e.A), len(e.B)), e.Axis),
		alignedExtent(e.B, max(len(e.A), len(e.B)), e.Axis))
}

func (e *MismatchError) Unwrap() error {
	return ErrShapeMismatch
}

// Result is the output of broadcast resolution.
type Result struct {
	// Shape is the per-axis max of the right-aligned operand extents.
	Shape Shape
	// Trivial is true iff the assignment can proceed as a flat
	// element-for-element pass without any index remapping: every operand is
	// either a scalar or flat-order identical to the result shape.
	Trivial bool
}

// Resolve computes the broadcast combination of two shapes.
//
// Rules, evaluated right-to-left with the shorter shape read as padded with
// leading 1s:
//  1. Extents are compatible iff they are equal or one of them is 1.
//  2. The result extent per axis is the max of the two.
//  3. The combination is trivial iff each operand is a scalar (rank 0 or the
//     degenerate one-element encoding) or matches the result extent on every
//     axis. Scalar into rank-N is therefore always trivial, for every N.
//
// This is the single evaluation function for both statically- and
// dynamically-shaped callers; compile-time knowledge only constant-folds it,
// it never gets a separate implementation.
func Resolve(a, b Descriptor) (Result, error) {
	rank := max(a.Rank(), b.Rank())
	out := make(Shape, rank)

	for i := 0; i < rank; i++ {
		da := alignedExtent(a, rank, i)
		db := alignedExtent(b, rank, i)

		switch {
		case da == db:
			out[i] = da
		case da == 1:
			out[i] = db
		case db == 1:
			out[i] = da
		default:
			return Result{}, &MismatchError{A: a.Extents(), B: b.Extents(), Axis: i}
		}
	}

	return Result{
		Shape:   out,
		Trivial: TrivialFor(a, out) && TrivialFor(b, out),
	}, nil
}

// TrivialFor reports whether the operand can be walked in flat lockstep with
// the given result shape: it is a scalar, or its right-aligned extents match
// the result extent on every axis.
func TrivialFor(d Descriptor, result Shape) bool {
	if IsScalar(d) {
		return true
	}
	for i := range result {
		if alignedExtent(d, len(result), i) != result[i] {
			return false
		}
	}
	return true
}
