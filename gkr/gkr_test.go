package gkr

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/giuliop/mlgkr/circuit"
	"github.com/giuliop/mlgkr/transcript"
	"github.com/stretchr/testify/require"
)

func feInt(v int64) fr.Element {
	var f fr.Element
	f.SetInt64(v)
	return f
}

func feSlice(vs ...int64) []fr.Element {
	out := make([]fr.Element, len(vs))
	for i, v := range vs {
		out[i] = feInt(v)
	}
	return out
}

func adderCircuit() circuit.Circuit {
	return circuit.Circuit{
		Layers: [][]circuit.Gate{
			{{Left: 0, Right: 1, Output: 0, Op: circuit.ADD}},
			{{Left: 0, Right: 1, Output: 0, Op: circuit.ADD}, {Left: 2, Right: 3, Output: 1, Op: circuit.MUL}},
		},
	}
}

func pyramidCircuit() circuit.Circuit {
	return circuit.Circuit{
		Layers: [][]circuit.Gate{
			{{Left: 0, Right: 1, Output: 0, Op: circuit.ADD}},
			{{Left: 0, Right: 1, Output: 0, Op: circuit.ADD}, {Left: 2, Right: 3, Output: 1, Op: circuit.MUL}},
			{
				{Left: 0, Right: 1, Output: 0, Op: circuit.ADD},
				{Left: 2, Right: 3, Output: 1, Op: circuit.MUL},
				{Left: 4, Right: 5, Output: 2, Op: circuit.MUL},
				{Left: 6, Right: 7, Output: 3, Op: circuit.MUL},
			},
		},
	}
}

func TestGKRTwoLayerAdder(t *testing.T) {
	c := adderCircuit()
	input := feSlice(1, 2, 3, 4)

	proof := Prove(c, input, transcript.New())
	ok := Verify(c, input, proof, transcript.New())
	require.True(t, ok)
}

func TestGKRThreeLayerPyramid(t *testing.T) {
	c := pyramidCircuit()
	input := feSlice(1, 2, 3, 4, 5, 6, 7, 8)

	proof := Prove(c, input, transcript.New())
	ok := Verify(c, input, proof, transcript.New())
	require.True(t, ok)
}

func TestGKRRejectsTamperedRoundPoly(t *testing.T) {
	c := pyramidCircuit()
	input := feSlice(1, 2, 3, 4, 5, 6, 7, 8)

	proof := Prove(c, input, transcript.New())
	one := feInt(1)
	proof.SumcheckProofs[0].RoundPolys[0].Coeffs[0].Add(&proof.SumcheckProofs[0].RoundPolys[0].Coeffs[0], &one)

	ok := Verify(c, input, proof, transcript.New())
	require.False(t, ok)
}

func TestGKRRejectsTamperedWPolyEval(t *testing.T) {
	c := pyramidCircuit()
	input := feSlice(1, 2, 3, 4, 5, 6, 7, 8)

	proof := Prove(c, input, transcript.New())
	require.NotEmpty(t, proof.WPolyEvals)

	one := feInt(1)
	proof.WPolyEvals[0][0].Add(&proof.WPolyEvals[0][0], &one)

	ok := Verify(c, input, proof, transcript.New())
	require.False(t, ok)
}

func TestGKRRejectsWrongInput(t *testing.T) {
	c := adderCircuit()
	input := feSlice(1, 2, 3, 4)
	wrongInput := feSlice(1, 2, 3, 5)

	proof := Prove(c, input, transcript.New())
	ok := Verify(c, wrongInput, proof, transcript.New())
	require.False(t, ok)
}
