package univariate

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func feInt(v int64) fr.Element {
	var f fr.Element
	f.SetInt64(v)
	return f
}

func TestEvaluateHorner(t *testing.T) {
	// p(x) = 1 + 2x + 3x^2
	p := New([]fr.Element{feInt(1), feInt(2), feInt(3)})
	got := p.Evaluate(feInt(2))
	require.True(t, got.Equal(ptr(feInt(17))))
}

func ptr(f fr.Element) *fr.Element { return &f }

func TestInterpolateFibonacci(t *testing.T) {
	// Fib(1..8) = 1,1,2,3,5,8,13,21 interpolated over x = 0..7.
	fibs := []int64{1, 1, 2, 3, 5, 8, 13, 21}
	xs := make([]fr.Element, len(fibs))
	ys := make([]fr.Element, len(fibs))
	for i, v := range fibs {
		xs[i] = feInt(int64(i))
		ys[i] = feInt(v)
	}

	p := Interpolate(xs, ys)
	require.Equal(t, 7, p.Degree())

	for i, x := range xs {
		got := p.Evaluate(x)
		require.True(t, got.Equal(&ys[i]), "mismatch at x=%d", i)
	}

	got := p.Evaluate(feInt(7))
	want := feInt(8 + 13)
	require.True(t, got.Equal(&want))
}

func TestEvaluateSumOverBooleanHypercube(t *testing.T) {
	p := New([]fr.Element{feInt(3), feInt(5)}) // p(x) = 3 + 5x
	got := p.EvaluateSumOverBooleanHypercube()
	want := feInt(3 + (3 + 5))
	require.True(t, got.Equal(&want))
}

func TestScalarMulAndAdd(t *testing.T) {
	p := New([]fr.Element{feInt(1), feInt(2)})
	q := p.ScalarMul(feInt(3))
	require.True(t, q.Coeffs[0].Equal(ptr(feInt(3))))
	require.True(t, q.Coeffs[1].Equal(ptr(feInt(6))))

	r := Add(p, q)
	require.True(t, r.Coeffs[0].Equal(ptr(feInt(4))))
	require.True(t, r.Coeffs[1].Equal(ptr(feInt(8))))
}
