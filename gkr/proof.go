// Package gkr implements the Goldwasser-Kalai-Rothblum argument for
// layered arithmetic circuits: a prover and verifier that reduce a claim
// about a circuit's output layer to a claim about its input layer by
// running one sum-of-products sumcheck per layer, folding the two
// resulting evaluation claims into one with verifier-chosen randomness.
package gkr

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/giuliop/mlgkr/polynomial/multilinear"
	"github.com/giuliop/mlgkr/sumcheck"
)

// Proof is the full transcript of a GKR proving session: the output
// layer's polynomial, the folded evaluation-claim pairs for every
// non-initial, non-final layer, and one sum-of-products sumcheck proof per
// layer.
type Proof struct {
	OutputPoly     multilinear.Poly
	WPolyEvals     [][2]fr.Element
	SumcheckProofs []sumcheck.PartialProof
}

func toBytesLE(f fr.Element) []byte {
	be := f.Bytes()
	out := make([]byte, len(be))
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}

func combine(pB, pC multilinear.Poly, alpha, beta fr.Element) multilinear.Poly {
	return multilinear.Add(pB.ScalarMul(alpha), pC.ScalarMul(beta))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
