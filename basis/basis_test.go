package basis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadOrders(t *testing.T) {
	for _, order := range []int{0, -1, -7} {
		_, err := New(Hermite, order)
		assert.ErrorIs(t, err, ErrInvalidOrder, "order %d", order)
	}
}

func TestRowZeroIsOnes(t *testing.T) {
	xi := []float64{-2.5, -0.3, 0, 0.7, 1.9, 42}
	for _, family := range []Family{Hermite, Fourier} {
		b, err := New(family, 5)
		require.NoError(t, err)
		g, err := b.Eval(xi)
		require.NoError(t, err)
		rows, cols := g.Dims()
		assert.Equal(t, 5, rows)
		assert.Equal(t, len(xi), cols)
		for t2 := 0; t2 < cols; t2++ {
			assert.Equal(t, 1.0, g.At(0, t2), "%s row 0 at %d", family, t2)
		}
	}
}

// The Hermite recurrence must reproduce the closed forms H1 = 2ξ and
// H2 = 4ξ² − 2.
func TestHermiteClosedForm(t *testing.T) {
	xi := []float64{-1.5, -0.25, 0, 0.5, 2}
	b, err := New(Hermite, 3)
	require.NoError(t, err)
	g, err := b.Eval(xi)
	require.NoError(t, err)
	for i, x := range xi {
		assert.InDelta(t, 2*x, g.At(1, i), 1e-12)
		assert.InDelta(t, 4*x*x-2, g.At(2, i), 1e-12)
	}
}

func TestFourierHarmonics(t *testing.T) {
	xi := []float64{0, 0.4, math.Pi / 3, 2}
	b, err := New(Fourier, 5)
	require.NoError(t, err)
	g, err := b.Eval(xi)
	require.NoError(t, err)
	for i, x := range xi {
		assert.InDelta(t, math.Sin(x), g.At(1, i), 1e-12)
		assert.InDelta(t, math.Cos(x), g.At(2, i), 1e-12)
		assert.InDelta(t, math.Sin(2*x), g.At(3, i), 1e-12)
		assert.InDelta(t, math.Cos(2*x), g.At(4, i), 1e-12)
	}
}

// An even Fourier order has no partner for the last row, which is padded
// with the constant value 1 rather than left at zero.
func TestFourierEvenOrderPadsDC(t *testing.T) {
	xi := []float64{-3.2, 0.1, 1.1, 2.1}
	for _, order := range []int{2, 4, 6} {
		b, err := New(Fourier, order)
		require.NoError(t, err)
		g, err := b.Eval(xi)
		require.NoError(t, err)
		for i := range xi {
			assert.Equal(t, 1.0, g.At(order-1, i), "order %d column %d", order, i)
		}
	}
}

func TestMaskBookkeeping(t *testing.T) {
	b, err := New(Hermite, 4)
	require.NoError(t, err)

	_, err = b.WithMask([]bool{true, false})
	assert.ErrorIs(t, err, ErrMaskLength)

	_, err = b.WithMask([]bool{false, false, false, false})
	assert.ErrorIs(t, err, ErrEmptyMask)

	masked, err := b.WithMask([]bool{true, false, true, false})
	require.NoError(t, err)
	assert.Equal(t, 2, masked.Rows())

	xi := []float64{0.5, -0.5, 1.25}
	full, err := b.Eval(xi)
	require.NoError(t, err)
	g, err := masked.Eval(xi)
	require.NoError(t, err)
	rows, cols := g.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, len(xi), cols)
	for i := range xi {
		assert.Equal(t, full.At(0, i), g.At(0, i))
		assert.Equal(t, full.At(2, i), g.At(1, i))
	}
}

func TestEvalAtMatchesEval(t *testing.T) {
	b, err := New(Hermite, 3)
	require.NoError(t, err)
	g, err := b.EvalAt(0.75)
	require.NoError(t, err)
	require.Len(t, g, 3)
	assert.InDelta(t, 1.0, g[0], 1e-15)
	assert.InDelta(t, 1.5, g[1], 1e-15)
	assert.InDelta(t, 4*0.75*0.75-2, g[2], 1e-12)
}
