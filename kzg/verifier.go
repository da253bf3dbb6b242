package kzg

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Verify checks an opening proof against a commitment and the trusted
// setup's encrypted taus via a single multi-pairing check:
//
//	e(C - v*G1, G2) == prod_i e(Q_i, tau_i*G2 - a_i*G2)
//
// which is tested by checking e(C-v*G1, G2) * prod_i e(-Q_i, tau_i*G2 -
// a_i*G2) == 1, so a single call to bn254.PairingCheck suffices.
func Verify(commitment bn254.G1Affine, a []fr.Element, proof Proof, encryptedTaus []bn254.G2Affine) bool {
	n := len(encryptedTaus)
	if len(a) != n || len(proof.QTaus) != n {
		return false
	}

	_, _, g1Gen, g2Gen := bn254.Generators()

	var vBig big.Int
	proof.V.BigInt(&vBig)
	var vG1 bn254.G1Affine
	vG1.ScalarMultiplication(&g1Gen, &vBig)

	var cMinusV bn254.G1Jac
	cMinusV.FromAffine(&commitment)
	var vG1Jac bn254.G1Jac
	vG1Jac.FromAffine(&vG1)
	cMinusV.SubAssign(&vG1Jac)
	var cMinusVAff bn254.G1Affine
	cMinusVAff.FromJacobian(&cMinusV)

	p := make([]bn254.G1Affine, n+1)
	q := make([]bn254.G2Affine, n+1)
	p[0] = cMinusVAff
	q[0] = g2Gen

	for i := 0; i < n; i++ {
		var negQ bn254.G1Affine
		negQ.Neg(&proof.QTaus[i])
		p[i+1] = negQ

		var aBig big.Int
		a[i].BigInt(&aBig)
		var aG2 bn254.G2Affine
		aG2.ScalarMultiplication(&g2Gen, &aBig)

		var tauMinusA bn254.G2Jac
		tauMinusA.FromAffine(&encryptedTaus[i])
		var aG2Jac bn254.G2Jac
		aG2Jac.FromAffine(&aG2)
		tauMinusA.SubAssign(&aG2Jac)

		var tauMinusAAff bn254.G2Affine
		tauMinusAAff.FromJacobian(&tauMinusA)
		q[i+1] = tauMinusAAff
	}

	ok, err := bn254.PairingCheck(p, q)
	if err != nil {
		return false
	}
	return ok
}
