package sumcheck

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/giuliop/mlgkr/polynomial/composed"
	"github.com/giuliop/mlgkr/polynomial/univariate"
	"github.com/giuliop/mlgkr/transcript"
)

// PartialProof is the transcript of a sum-of-products (GKR) sumcheck round
// sequence. The verifier side cannot complete the check alone: it returns
// the derived challenges and the final reduced claim to its caller, which
// must compare that claim against its own evaluation of the summand.
type PartialProof struct {
	ClaimedSum fr.Element
	RoundPolys []univariate.Poly
}

// PartialProve proves a claim about the sum over {0,1}^n of poly, a sum of
// products of multilinears of degree up to 2 in each variable. Each round's
// polynomial is interpolated through three points (x=0,1,2), since a
// degree-2 univariate is uniquely determined by three samples.
func PartialProve(poly composed.SumPoly, claimedSum fr.Element, tr *transcript.Transcript) (PartialProof, []fr.Element) {
	nRounds := poly.NVars()
	roundPolys := make([]univariate.Poly, nRounds)
	challenges := make([]fr.Element, nRounds)

	var zero, one, two fr.Element
	one.SetOne()
	two.SetInt64(2)
	xs := []fr.Element{zero, one, two}

	cur := poly
	claim := claimedSum
	for k := 0; k < nRounds; k++ {
		idx := cur.NVars() - 1

		y0 := sumOverHypercube(cur.PartialEvaluate(idx, zero))
		y1 := sumOverHypercube(cur.PartialEvaluate(idx, one))
		y2 := sumOverHypercube(cur.PartialEvaluate(idx, two))

		roundPoly := univariate.Interpolate(xs, []fr.Element{y0, y1, y2})
		roundPolys[k] = roundPoly

		tr.Absorb(toBytesLE(claim))
		tr.Absorb(roundPoly.ToBytes())
		r := tr.Squeeze()
		challenges[k] = r

		cur = cur.PartialEvaluate(idx, r)
		claim = roundPoly.Evaluate(r)
	}

	return PartialProof{ClaimedSum: claimedSum, RoundPolys: roundPolys}, challenges
}

// PartialVerify replays the transcript against proof. At each round it
// requires round_poly(0)+round_poly(1) == the running claim; on the first
// mismatch it stops and returns the challenges derived so far together with
// the running claim at that point, for the caller to compare against an
// independently computed f(r).
func PartialVerify(proof PartialProof, tr *transcript.Transcript) ([]fr.Element, fr.Element) {
	claim := proof.ClaimedSum
	challenges := make([]fr.Element, 0, len(proof.RoundPolys))

	for _, rp := range proof.RoundPolys {
		sum := rp.EvaluateSumOverBooleanHypercube()
		if !sum.Equal(&claim) {
			return challenges, claim
		}

		tr.Absorb(toBytesLE(claim))
		tr.Absorb(rp.ToBytes())
		r := tr.Squeeze()
		challenges = append(challenges, r)

		claim = rp.Evaluate(r)
	}

	return challenges, claim
}

func sumOverHypercube(sp composed.SumPoly) fr.Element {
	reduced := sp.Reduce()
	return sumAllEvals(reduced.Evals)
}

func sumAllEvals(evals []fr.Element) fr.Element {
	var sum fr.Element
	for _, e := range evals {
		sum.Add(&sum, &e)
	}
	return sum
}
