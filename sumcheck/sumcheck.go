// Package sumcheck implements the sumcheck protocol in the two shapes this
// proving subsystem needs: a pure multilinear variant (degree 1 in each
// variable) used standalone, and a sum-of-products variant (degree up to 2)
// that the GKR protocol drives layer by layer.
package sumcheck

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/giuliop/mlgkr/polynomial/multilinear"
	"github.com/giuliop/mlgkr/transcript"
)

// Proof is the transcript of a pure-multilinear sumcheck: the claimed sum
// and one [s0, s1] pair per round.
type Proof struct {
	ClaimedSum fr.Element
	RoundPolys [][2]fr.Element
}

// Prove produces a sumcheck proof that w sums to claimedSum over the
// Boolean hypercube. claimedSum is taken as asserted, not recomputed from
// w: an honest prover passes w's true sum, but the protocol lets a
// dishonest prover assert any value, which Verify will then reject. The
// transcript is seeded with w's and the claimed sum's byte encodings
// before round 0.
func Prove(w multilinear.Poly, claimedSum fr.Element, tr *transcript.Transcript) Proof {
	tr.Absorb(w.ToBytes())
	tr.Absorb(toBytesLE(claimedSum))

	cur := w
	rounds := make([][2]fr.Element, cur.NVars)
	for k := 0; k < len(rounds); k++ {
		idx := cur.NVars - 1
		s0, s1 := splitSum(cur, idx)
		rounds[k] = [2]fr.Element{s0, s1}

		tr.Absorb(toBytesLE(s0))
		tr.Absorb(toBytesLE(s1))
		r := tr.Squeeze()

		cur = cur.PartialEvaluate(idx, r)
	}

	return Proof{ClaimedSum: claimedSum, RoundPolys: rounds}
}

// Verify replays the transcript against proof and checks the final
// reduction against w evaluated at the derived challenges.
func Verify(proof Proof, w multilinear.Poly, tr *transcript.Transcript) bool {
	tr.Absorb(w.ToBytes())
	tr.Absorb(toBytesLE(proof.ClaimedSum))

	claim := proof.ClaimedSum
	challenges := make([]fr.Element, len(proof.RoundPolys))

	for k, rp := range proof.RoundPolys {
		var sum fr.Element
		sum.Add(&rp[0], &rp[1])
		if !sum.Equal(&claim) {
			return false
		}

		tr.Absorb(toBytesLE(rp[0]))
		tr.Absorb(toBytesLE(rp[1]))
		r := tr.Squeeze()
		challenges[k] = r

		var diff, term fr.Element
		diff.Sub(&rp[1], &rp[0])
		term.Mul(&r, &diff)
		claim.Add(&rp[0], &term)
	}

	if len(challenges) != w.NVars {
		return false
	}
	final := w.Evaluate(challenges)
	return final.Equal(&claim)
}

// splitSum returns (s0, s1): the sums of w's evaluations restricted to
// x_pos = 0 and x_pos = 1 respectively.
func splitSum(w multilinear.Poly, pos int) (fr.Element, fr.Element) {
	mask := 1 << pos
	lowMask := mask - 1
	outLen := len(w.Evals) / 2

	var s0, s1 fr.Element
	for j := 0; j < outLen; j++ {
		i := ((j >> pos) << (pos + 1)) | (j & lowMask)
		pair := i | mask
		s0.Add(&s0, &w.Evals[i])
		s1.Add(&s1, &w.Evals[pair])
	}
	return s0, s1
}

func toBytesLE(f fr.Element) []byte {
	be := f.Bytes()
	out := make([]byte, len(be))
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}
