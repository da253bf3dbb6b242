// Package kzg implements a multilinear KZG polynomial commitment scheme:
// a trusted setup publishing the Lagrange basis encrypted in G1 and the
// per-variable taus encrypted in G2, a committer/prover, and a pairing-
// based verifier.
package kzg

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/giuliop/mlgkr/polynomial/multilinear"
)

// ErrLengthMismatch is returned when a polynomial's evaluation vector
// does not match the trusted setup's Lagrange basis length.
var ErrLengthMismatch = errors.New("kzg: polynomial length does not match trusted setup arity")

// ErrOpeningsLengthMismatch is returned when the number of opening
// coordinates does not match the polynomial's arity.
var ErrOpeningsLengthMismatch = errors.New("kzg: openings length does not match polynomial arity")

// TrustedSetup holds the public parameters for a fixed arity n: the
// per-variable taus encrypted in G2 (for pairing checks) and the
// multilinear Lagrange basis of length 2^n encrypted in G1 (for
// committing). The secret tau vector itself must be discarded by whoever
// runs NewTrustedSetup outside of tests.
type TrustedSetup struct {
	NVars                  int
	EncryptedTaus          []bn254.G2Affine
	EncryptedLagrangeBasis []bn254.G1Affine
}

// GenerateLagrangeBasis evaluates every multilinear Lagrange basis
// polynomial L_i(x) = prod_j (bit_j(i) ? x_j : 1-x_j) at x = taus, for
// i ranging over the full 2^len(taus) Boolean hypercube. bit_j(i) is bit
// n-1-j of i, so taus[0] pairs with the most significant index bit, the
// same variable order the multilinear package uses.
func GenerateLagrangeBasis(taus []fr.Element) []fr.Element {
	n := len(taus)
	dim := 1 << n
	basis := make([]fr.Element, dim)

	var one fr.Element
	one.SetOne()

	for i := 0; i < dim; i++ {
		product := one
		for j := 0; j < n; j++ {
			bit := (i >> (n - 1 - j)) & 1
			if bit == 1 {
				product.Mul(&product, &taus[j])
			} else {
				var oneMinus fr.Element
				oneMinus.Sub(&one, &taus[j])
				product.Mul(&product, &oneMinus)
			}
		}
		basis[i] = product
	}
	return basis
}

// NewTrustedSetup runs the (non-MPC) trusted setup for the given tau
// vector: the caller is the party who must discard taus afterward. In
// production these taus would instead be the output of a multi-party
// ceremony that no single participant can reconstruct.
func NewTrustedSetup(taus []fr.Element) *TrustedSetup {
	_, _, g1Gen, g2Gen := bn254.Generators()

	encTaus := make([]bn254.G2Affine, len(taus))
	for i := range taus {
		var tauBig big.Int
		taus[i].BigInt(&tauBig)
		encTaus[i].ScalarMultiplication(&g2Gen, &tauBig)
	}

	basis := GenerateLagrangeBasis(taus)
	encBasis := make([]bn254.G1Affine, len(basis))
	for i := range basis {
		var bBig big.Int
		basis[i].BigInt(&bBig)
		encBasis[i].ScalarMultiplication(&g1Gen, &bBig)
	}

	return &TrustedSetup{
		NVars:                  len(taus),
		EncryptedTaus:          encTaus,
		EncryptedLagrangeBasis: encBasis,
	}
}

// Commit commits to w via a multi-exponentiation over the encrypted
// Lagrange basis: C = sum_i w.Evals[i] * L_i(tau)*G1.
func Commit(ts *TrustedSetup, w multilinear.Poly) (bn254.G1Affine, error) {
	if len(w.Evals) != len(ts.EncryptedLagrangeBasis) {
		return bn254.G1Affine{}, ErrLengthMismatch
	}

	var commitment bn254.G1Affine
	if _, err := commitment.MultiExp(ts.EncryptedLagrangeBasis, w.Evals, ecc.MultiExpConfig{}); err != nil {
		return bn254.G1Affine{}, err
	}
	return commitment, nil
}
