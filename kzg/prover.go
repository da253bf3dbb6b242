package kzg

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/giuliop/mlgkr/polynomial/multilinear"
)

// Proof is an opening proof for a multilinear polynomial at a point a: the
// claimed evaluation v = w(a), and one quotient commitment per variable.
type Proof struct {
	V     fr.Element
	QTaus []bn254.G1Affine
}

// Prove opens w at the point a, decomposing w - v = sum_i (x_i - a_i)*Q_i
// one variable at a time (always peeling off the current polynomial's most
// significant remaining variable, matching PartialEvaluate's own ordering),
// then committing each quotient after padding it back up to full arity with
// dummy leading variables via a Left blow-up.
func Prove(ts *TrustedSetup, w multilinear.Poly, a []fr.Element) (Proof, error) {
	if len(w.Evals) != len(ts.EncryptedLagrangeBasis) {
		return Proof{}, ErrLengthMismatch
	}
	if len(a) != w.NVars {
		return Proof{}, ErrOpeningsLengthMismatch
	}

	v := w.Evaluate(a)

	wPrimeEvals := make([]fr.Element, len(w.Evals))
	for i := range w.Evals {
		wPrimeEvals[i].Sub(&w.Evals[i], &v)
	}
	cur := multilinear.Poly{NVars: w.NVars, Evals: wPrimeEvals}

	n := w.NVars
	qTaus := make([]bn254.G1Affine, n)

	for i := 0; i < n; i++ {
		quotient, remainder := cur.ComputeQuotientRemainder(a[i], cur.NVars-1)
		padded := quotient.BlowUp(multilinear.Left, i+1)

		commitment, err := Commit(ts, padded)
		if err != nil {
			return Proof{}, err
		}
		qTaus[i] = commitment
		cur = remainder
	}

	return Proof{V: v, QTaus: qTaus}, nil
}
