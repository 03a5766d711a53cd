// Copyright 2025 Axon ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package assign provides the public API for the Axon assignment engine:
// element-wise expressions evaluated into a destination tensor through the
// cheapest correct execution strategy.
//
// # Overview
//
// Every assignment goes through three stages:
//  1. the broadcast resolver classifies the operand shapes (trivial or not),
//  2. the strategy selector picks Linear, Strided, or Stepper,
//  3. the chosen assigner writes each destination element exactly once.
//
// Shape and dtype errors surface before any destination write.
//
// # Basic Usage
//
//	import (
//	    "github.com/axon-ml/axon/assign"
//	    "github.com/axon-ml/axon/tensor"
//	)
//
//	func main() {
//	    dst, _ := tensor.Zeros[float64](tensor.Shape{4})
//	    src, _ := tensor.Full(tensor.Shape{4}, 1.0)
//
//	    // dst = src + 1.0
//	    err := assign.To(dst, assign.Add(assign.Term(src), assign.Scalar(1.0)))
//	    _ = err
//	}
package assign

import (
	"github.com/axon-ml/axon/internal/assign"
	"github.com/axon-ml/axon/internal/tensor"
)

// Strategy identifies which execution path an assignment takes.
type Strategy = assign.Strategy

// Execution strategies, cheapest first.
const (
	Linear  Strategy = assign.Linear
	Strided Strategy = assign.Strided
	Stepper Strategy = assign.Stepper
)

// Op is the element-wise operation combining expression operands.
type Op = assign.Op

// Supported element-wise operations.
const (
	OpIdentity Op = assign.OpIdentity
	OpAdd      Op = assign.OpAdd
	OpSub      Op = assign.OpSub
	OpMul      Op = assign.OpMul
	OpDiv      Op = assign.OpDiv
)

// Expr is a source expression evaluated lazily by the chosen assigner.
type Expr = assign.Expr

// Source is one operand of an element-wise expression.
type Source = assign.Source

// Plan is one assignment call's chosen strategy plus scratch state. Its
// introspection accessors (Strategy, Trivial, IndexBufferHeapAllocated) are
// read-only and never affect the decision logic.
type Plan = assign.Plan

// ErrDTypeMismatch is returned when operand element types disagree with the
// destination.
var ErrDTypeMismatch = assign.ErrDTypeMismatch

// To evaluates the expression into dst with the cheapest correct strategy.
//
// Example:
//
//	// dst = a * b, with b broadcast across a's rows
//	err := assign.To(dst, assign.Mul(assign.Term(a), assign.Term(b)))
func To(dst tensor.Value, e Expr) error {
	return assign.Assign(dst, e)
}

// NewPlan resolves an expression against a destination and selects the
// execution strategy without running it. Benchmarking and profiling callers
// use the returned plan to record which path was taken.
func NewPlan(dst tensor.Value, e Expr) (*Plan, error) {
	return assign.NewPlan(dst, e)
}

// Term adapts a tensor value into an expression operand.
func Term(v tensor.Value) Source {
	return assign.Term(v)
}

// Scalar creates a scalar constant operand.
func Scalar[T tensor.DType](value T) Source {
	return assign.Scalar(value)
}

// Take builds a gather operand selecting the given indices along axis.
// Expressions containing gather operands run on the stepper path.
func Take(v tensor.Value, axis int, indices []int) (Source, error) {
	return assign.Take(v, axis, indices)
}

// ValueOf wraps a tensor value as an identity expression (a plain copy).
func ValueOf(v tensor.Value) Expr {
	return assign.ValueOf(v)
}

// Ident wraps a single operand as an identity expression.
func Ident(a Source) Expr {
	return assign.Ident(a)
}

// Binary combines two operands under an element-wise operation.
func Binary(op Op, a, b Source) Expr {
	return assign.Binary(op, a, b)
}

// Add builds the element-wise sum expression a + b.
func Add(a, b Source) Expr {
	return assign.Add(a, b)
}

// Sub builds the element-wise difference expression a - b.
func Sub(a, b Source) Expr {
	return assign.Sub(a, b)
}

// Mul builds the element-wise product expression a * b.
func Mul(a, b Source) Expr {
	return assign.Mul(a, b)
}

// Div builds the element-wise quotient expression a / b.
func Div(a, b Source) Expr {
	return assign.Div(a, b)
}

// Select maps a resolved classification to an execution strategy.
// Exposed for collaborators that want to predict the path for given flags.
func Select(trivial, linear, stridedOK bool) Strategy {
	return assign.Select(trivial, linear, stridedOK)
}
