// Package main provides the Axon assignment engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/axon-ml/axon/assign"
	"github.com/axon-ml/axon/internal/simd"
	"github.com/axon-ml/axon/tensor"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Axon %s\n", version)
			return
		case "paths":
			showPaths()
			return
		}
	}

	fmt.Println("Axon - Broadcast & Assignment-Strategy Engine")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  paths      Show the strategy chosen for representative shape pairs")
}

// showPaths prints, for a few representative destination/source shape pairs,
// which execution strategy the selector picks. Useful as a quick sanity check
// that scalar broadcasts stay on the linear path.
func showPaths() {
	fmt.Printf("vector width: %d bytes\n\n", simd.VectorBytes())

	cases := []struct {
		name string
		dst  tensor.Shape
		expr func(dst *tensor.Raw) assign.Expr
	}{
		{
			name: "(1024) = (1024) + scalar",
			dst:  tensor.Shape{1024},
			expr: func(dst *tensor.Raw) assign.Expr {
				src, _ := tensor.Full(dst.Shape(), 1.0)
				return assign.Add(assign.Term(src), assign.Scalar(1.0))
			},
		},
		{
			name: "(64, 64) = (64, 64) * (64, 64)",
			dst:  tensor.Shape{64, 64},
			expr: func(dst *tensor.Raw) assign.Expr {
				a, _ := tensor.Full(dst.Shape(), 2.0)
				b, _ := tensor.Full(dst.Shape(), 3.0)
				return assign.Mul(assign.Term(a), assign.Term(b))
			},
		},
		{
			name: "(8, 16) = (8, 1) + (1, 16)",
			dst:  tensor.Shape{8, 16},
			expr: func(dst *tensor.Raw) assign.Expr {
				a, _ := tensor.Full(tensor.Shape{8, 1}, 1.0)
				b, _ := tensor.Full(tensor.Shape{1, 16}, 1.0)
				return assign.Add(assign.Term(a), assign.Term(b))
			},
		},
	}

	for _, c := range cases {
		dst, err := tensor.Zeros[float64](c.dst)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", c.name, err)
			continue
		}
		plan, err := assign.NewPlan(dst, c.expr(dst))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", c.name, err)
			continue
		}
		fmt.Printf("%-32s -> %s (trivial=%v)\n", c.name, plan.Strategy(), plan.Trivial())
	}
}
