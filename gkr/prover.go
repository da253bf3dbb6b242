package gkr

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/giuliop/mlgkr/circuit"
	"github.com/giuliop/mlgkr/polynomial/multilinear"
	"github.com/giuliop/mlgkr/sumcheck"
	"github.com/giuliop/mlgkr/transcript"
)

// Prove runs the GKR protocol for c evaluated at input, producing a Proof
// that the prover can compute the circuit's output correctly without the
// verifier re-executing it.
func Prove(c circuit.Circuit, input []fr.Element, tr *transcript.Transcript) Proof {
	L := c.NumLayers()
	layerValues := c.Eval(input) // index 0 = input, index L = output

	layerPolys := make([]multilinear.Poly, L+1)
	for i := 0; i <= L; i++ {
		layerPolys[i] = multilinear.New(layerValues[L-i])
	}

	w0 := layerPolys[0]
	tr.Absorb(w0.ToBytes())
	r0 := tr.SqueezeN(w0.NVars)
	claim := w0.Evaluate(r0)

	randomValues := r0
	wPolyEvals := make([][2]fr.Element, 0, maxInt(L-1, 0))
	sumcheckProofs := make([]sumcheck.PartialProof, L)

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

			wb := layerPolys[i].Evaluate(rb)
			wc := layerPolys[i].Evaluate(rc)

			tr.Absorb(toBytesLE(wb))
			tr.Absorb(toBytesLE(wc))
			alpha := tr.Squeeze()
			beta := tr.Squeeze()

			wPolyEvals = append(wPolyEvals, [2]fr.Element{wb, wc})

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

		fbc := circuit.GenerateFbc(addIbc, mulIbc, layerPolys[i+1])
		proofSeg, challenges := sumcheck.PartialProve(fbc, claim, tr)
		sumcheckProofs[i] = proofSeg
		randomValues = challenges
	}

	return Proof{
		OutputPoly:     w0,
		WPolyEvals:     wPolyEvals,
		SumcheckProofs: sumcheckProofs,
	}
}
