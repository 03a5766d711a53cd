package assign

import "github.com/axon-ml/axon/internal/tensor"

// Expr is a source expression: a single operand, or two operands combined by
// an element-wise operation. Expressions are evaluated lazily by the chosen
// assigner; no intermediate tensor is materialized.
type Expr struct {
	op   Op
	a, b Source
}

// ValueOf wraps a tensor value as an identity expression.
func ValueOf(v tensor.Value) Expr {
	return Expr{op: OpIdentity, a: Term(v)}
}

// Ident wraps a single operand as an identity expression.
func Ident(a Source) Expr {
	return Expr{op: OpIdentity, a: a}
}

// Binary combines two operands under an element-wise operation.
func Binary(op Op, a, b Source) Expr {
	return Expr{op: op, a: a, b: b}
}

// Add builds the element-wise sum expression a + b.
func Add(a, b Source) Expr {
	return Binary(OpAdd, a, b)
}

// Sub builds the element-wise difference expression a - b.
func Sub(a, b Source) Expr {
	return Binary(OpSub, a, b)
}

// Mul builds the element-wise product expression a * b.
func Mul(a, b Source) Expr {
	return Binary(OpMul, a, b)
}

// Div builds the element-wise quotient expression a / b.
func Div(a, b Source) Expr {
	return Binary(OpDiv, a, b)
}
