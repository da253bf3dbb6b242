package gkr

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/giuliop/mlgkr/circuit"
	"github.com/giuliop/mlgkr/polynomial/multilinear"
	"github.com/giuliop/mlgkr/sumcheck"
	"github.com/giuliop/mlgkr/transcript"
)

// Verify mirrors Prove's transcript flow and checks every layer's folded
// sumcheck reduction, terminating at the input layer where it evaluates
// the public input directly instead of trusting a prover-supplied claim.
func Verify(c circuit.Circuit, input []fr.Element, proof Proof, tr *transcript.Transcript) bool {
	L := c.NumLayers()
	if len(proof.SumcheckProofs) != L {
		return false
	}

	w0 := proof.OutputPoly
	tr.Absorb(w0.ToBytes())
	r0 := tr.SqueezeN(w0.NVars)
	claim := w0.Evaluate(r0)

	randomValues := r0

	for i := 0; i < L; i++ {
		addI := c.AddMulI(i, circuit.ADD)
		mulI := c.AddMulI(i, circuit.MUL)

		var addIbc, mulIbc multilinear.Poly
		if i == 0 {
			addIbc = circuit.SubstituteA(addI, randomValues)
			mulIbc = circuit.SubstituteA(mulI, randomValues)
		} else {
			m := len(randomValues) / 2
			rb, rc := randomValues[:m], randomValues[m:]

			if i-1 >= len(proof.WPolyEvals) {
				return false
			}
			wb, wc := proof.WPolyEvals[i-1][0], proof.WPolyEvals[i-1][1]

			tr.Absorb(toBytesLE(wb))
			tr.Absorb(toBytesLE(wc))
			alpha := tr.Squeeze()
			beta := tr.Squeeze()

			addB := circuit.SubstituteA(addI, rb)
			addC := circuit.SubstituteA(addI, rc)
			mulB := circuit.SubstituteA(mulI, rb)
			mulC := circuit.SubstituteA(mulI, rc)
			addIbc = combine(addB, addC, alpha, beta)
			mulIbc = combine(mulB, mulC, alpha, beta)

			var t1, t2 fr.Element
			t1.Mul(&alpha, &wb)
			t2.Mul(&beta, &wc)
			claim.Add(&t1, &t2)
		}

		if !claim.Equal(&proof.SumcheckProofs[i].ClaimedSum) {
			return false
		}

		challenges, lastClaim := sumcheck.PartialVerify(proof.SumcheckProofs[i], tr)
		if len(challenges) != addIbc.NVars {
			return false
		}

		addVal := addIbc.Evaluate(challenges)
		mulVal := mulIbc.Evaluate(challenges)

		m2 := len(challenges) / 2
		rb2, rc2 := challenges[:m2], challenges[m2:]

		var wNextB, wNextC fr.Element
		if i+1 == L {
			inputPoly := multilinear.New(input)
			wNextB = inputPoly.Evaluate(rb2)
			wNextC = inputPoly.Evaluate(rc2)
		} else {
			if i >= len(proof.WPolyEvals) {
				return false
			}
			wNextB, wNextC = proof.WPolyEvals[i][0], proof.WPolyEvals[i][1]
		}

		var sum, prod, t1, t2, fbc fr.Element
		sum.Add(&wNextB, &wNextC)
		prod.Mul(&wNextB, &wNextC)
		t1.Mul(&addVal, &sum)
		t2.Mul(&mulVal, &prod)
		fbc.Add(&t1, &t2)

		if !fbc.Equal(&lastClaim) {
			return false
		}

		randomValues = challenges
	}

	return true
}
