// Package tensor provides the dense operand containers consumed by the Axon
// assignment engine: a dtype-erased buffer type, zero-copy views over it, and
// a fixed-shape wrapper whose rank is known at compile time.
package tensor

import "reflect"

// DType is a constraint for supported element types.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// DataType represents runtime type information for tensor elements.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T. The constraint admits
// named types, so the mapping goes through the underlying kind.
func inferDataType[T DType](dummy T) DataType {
	switch reflect.TypeOf(dummy).Kind() {
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	default:
		panic("unsupported type")
	}
}
