// Copyright 2025 Axon ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides shape descriptors and dense operand containers for
// the Axon assignment engine.
//
// # Overview
//
// Two kinds of shape exist side by side:
//   - Shape: a dynamically-ranked extent sequence
//   - Static[A]: a fixed-rank shape whose rank is a compile-time constant
//
// Both implement the Descriptor interface, and the broadcast resolver only
// ever sees that interface, so static and dynamic shapes are classified by
// one shared rule.
//
// # Basic Usage
//
//	import "github.com/axon-ml/axon/tensor"
//
//	func main() {
//	    x, _ := tensor.From([]float64{1, 2, 3, 4}, tensor.Shape{4})
//	    f, _ := tensor.NewFixed([1]int{4}, tensor.Float64)
//
//	    res, _ := tensor.Resolve(x.Shape(), f.Desc())
//	    _ = res.Trivial // true: same extents
//	}
//
// # Supported Data Types
//
// Elements are float32, float64, int32, or int64 via the DType constraint.
package tensor
