package assign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axon-ml/axon/internal/shape"
	"github.com/axon-ml/axon/internal/tensor"
)

func TestTakeCopy(t *testing.T) {
	src, err := tensor.From([]float64{10, 20, 30, 40, 50}, shape.Shape{5})
	require.NoError(t, err)
	g, err := Take(src, 0, []int{4, 0, 2})
	require.NoError(t, err)

	dst, err := tensor.Zeros[float64](shape.Shape{3})
	require.NoError(t, err)

	p, err := NewPlan(dst, Ident(g))
	require.NoError(t, err)
	assert.Equal(t, Stepper, p.Strategy())

	p.Run()
	assert.Equal(t, []float64{50, 10, 30}, tensor.As[float64](dst))
}

func TestTakeRows(t *testing.T) {
	src, err := tensor.From([]float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, shape.Shape{3, 3})
	require.NoError(t, err)
	g, err := Take(src, 0, []int{2, 2, 0})
	require.NoError(t, err)

	dst, err := tensor.Zeros[float64](shape.Shape{3, 3})
	require.NoError(t, err)
	require.NoError(t, Assign(dst, Ident(g)))

	assert.Equal(t, []float64{
		7, 8, 9,
		7, 8, 9,
		1, 2, 3,
	}, tensor.As[float64](dst))
}

func TestTakeWithBinaryOp(t *testing.T) {
	src, err := tensor.From([]float64{10, 20, 30, 40}, shape.Shape{4})
	require.NoError(t, err)
	g, err := Take(src, 0, []int{3, 1})
	require.NoError(t, err)
	other, err := tensor.From([]float64{1, 2}, shape.Shape{2})
	require.NoError(t, err)

	dst, err := tensor.Zeros[float64](shape.Shape{2})
	require.NoError(t, err)

	p, err := NewPlan(dst, Add(g, Term(other)))
	require.NoError(t, err)
	assert.Equal(t, Stepper, p.Strategy())

	p.Run()
	assert.Equal(t, []float64{41, 22}, tensor.As[float64](dst))
}

// TestTakeBroadcast: a single-index gather along a column axis broadcasts
// across that axis like any other extent-1 operand.
func TestTakeBroadcast(t *testing.T) {
	src, err := tensor.From([]float64{
		1, 2,
		3, 4,
	}, shape.Shape{2, 2})
	require.NoError(t, err)
	g, err := Take(src, 1, []int{1}) // second column, shape (2, 1)
	require.NoError(t, err)
	base, err := tensor.Full(shape.Shape{2, 3}, 100.0)
	require.NoError(t, err)

	dst, err := tensor.Zeros[float64](shape.Shape{2, 3})
	require.NoError(t, err)
	require.NoError(t, Assign(dst, Add(Term(base), g)))

	assert.Equal(t, []float64{102, 102, 102, 104, 104, 104}, tensor.As[float64](dst))
}

func TestTakeErrors(t *testing.T) {
	src, err := tensor.From([]float64{1, 2, 3}, shape.Shape{3})
	require.NoError(t, err)

	_, err = Take(src, 1, []int{0})
	assert.Error(t, err)

	_, err = Take(src, 0, []int{3})
	assert.Error(t, err)

	_, err = Take(src, -1, []int{0})
	assert.Error(t, err)
}

// TestTakeIsolatedFromCallerSlice: mutating the caller's index slice after
// Take must not change what the operand gathers.
func TestTakeIsolatedFromCallerSlice(t *testing.T) {
	src, err := tensor.From([]float64{10, 20, 30}, shape.Shape{3})
	require.NoError(t, err)
	indices := []int{0, 2}
	g, err := Take(src, 0, indices)
	require.NoError(t, err)
	indices[0] = 1

	dst, err := tensor.Zeros[float64](shape.Shape{2})
	require.NoError(t, err)
	require.NoError(t, Assign(dst, Ident(g)))
	assert.Equal(t, []float64{10, 30}, tensor.As[float64](dst))
}
