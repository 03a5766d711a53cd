// Package assign implements the assignment engine: broadcast classification
// feeding a three-way strategy selection (linear, strided, stepper) that
// executes element-wise expressions into a destination tensor.
package assign

import (
	"github.com/axon-ml/axon/internal/tensor"
)

// Assign evaluates the expression into dst with the cheapest correct
// strategy. Shape and dtype mismatches are returned before any destination
// element is written; a successful call writes every destination element
// exactly once.
func Assign(dst tensor.Value, e Expr) error {
	p, err := NewPlan(dst, e)
	if err != nil {
		return err
	}
	p.Run()
	return nil
}
