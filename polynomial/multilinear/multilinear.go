// Package multilinear implements multilinear polynomials represented by
// their evaluations over the Boolean hypercube {0,1}^n, the core data
// structure consumed by the sumcheck, GKR, and multilinear-KZG protocols.
package multilinear

import (
	"fmt"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Poly is a multilinear polynomial in NVars variables, given by its
// evaluations over {0,1}^NVars. Variable ordering is most-significant-bit
// first over the evaluation-vector index: the bit at position pos (counted
// from the least-significant bit, so pos = NVars-1 is the most significant
// bit) selects variable (NVars-1-pos).
type Poly struct {
	NVars int
	Evals []fr.Element
}

// New wraps an evaluation vector as a multilinear polynomial. len(evals)
// must be a power of two; NVars is its base-2 logarithm.
func New(evals []fr.Element) Poly {
	n := len(evals)
	if n == 0 || n&(n-1) != 0 {
		panic(fmt.Sprintf("multilinear: evaluation vector length %d is not a power of two", n))
	}
	return Poly{NVars: bits.TrailingZeros(uint(n)), Evals: evals}
}

// BlowUpDirection selects which side of the variable ordering a blow-up
// inserts its dummy variables.
type BlowUpDirection int

const (
	// Left prepends a dummy most-significant variable: the evaluation
	// vector is duplicated as two whole blocks.
	Left BlowUpDirection = iota
	// Right appends a dummy least-significant variable: each evaluation
	// is duplicated in place.
	Right
)

// PartialEvaluate substitutes variable (NVars-1-pos) with v, halving the
// length. Panics if pos >= NVars. On the degenerate NVars == 0 polynomial
// (a constant), it returns the polynomial unchanged.
func (p Poly) PartialEvaluate(pos int, v fr.Element) Poly {
	if p.NVars == 0 {
		return p
	}
	if pos >= p.NVars {
		panic(fmt.Sprintf("multilinear: partial_evaluate pos %d out of range for %d variables", pos, p.NVars))
	}

	mask := 1 << pos
	lowMask := mask - 1
	outLen := len(p.Evals) / 2

	var one, oneMinusV fr.Element
	one.SetOne()
	oneMinusV.Sub(&one, &v)

	out := make([]fr.Element, outLen)
	for j := 0; j < outLen; j++ {
		i := ((j >> pos) << (pos + 1)) | (j & lowMask)
		pair := i | mask

		var t0, t1 fr.Element
		t0.Mul(&oneMinusV, &p.Evals[i])
		t1.Mul(&v, &p.Evals[pair])
		out[j].Add(&t0, &t1)
	}
	return Poly{NVars: p.NVars - 1, Evals: out}
}

// Evaluate applies partial evaluations from the most significant bit
// position inward (pos = NVars-1 down to 0, i.e. variable 0 first),
// consuming values in order, and returns
// the resulting scalar.
func (p Poly) Evaluate(values []fr.Element) fr.Element {
	if len(values) != p.NVars {
		panic(fmt.Sprintf("multilinear: evaluate expects %d values, got %d", p.NVars, len(values)))
	}
	cur := p
	for _, v := range values {
		cur = cur.PartialEvaluate(cur.NVars-1, v)
	}
	if len(cur.Evals) == 0 {
		panic("multilinear: evaluate produced an empty result")
	}
	return cur.Evals[0]
}

// ScalarMul multiplies every evaluation by s; arity is unchanged.
func (p Poly) ScalarMul(s fr.Element) Poly {
	out := make([]fr.Element, len(p.Evals))
	for i := range p.Evals {
		out[i].Mul(&p.Evals[i], &s)
	}
	return Poly{NVars: p.NVars, Evals: out}
}

// ComputeQuotientRemainder decomposes p(x_0,...,x_{n-1}) as
// (x_pos - d)*Q(remaining vars) + R(remaining vars), returning Q and R.
// Q's evaluations are W[pair] - W[i] over the same pairing PartialEvaluate
// uses; R is the partial evaluation of p at (pos, d).
func (p Poly) ComputeQuotientRemainder(d fr.Element, pos int) (quotient Poly, remainder Poly) {
	if pos >= p.NVars {
		panic(fmt.Sprintf("multilinear: compute_quotient_remainder pos %d out of range for %d variables", pos, p.NVars))
	}

	mask := 1 << pos
	lowMask := mask - 1
	outLen := len(p.Evals) / 2

	qEvals := make([]fr.Element, outLen)
	for j := 0; j < outLen; j++ {
		i := ((j >> pos) << (pos + 1)) | (j & lowMask)
		pair := i | mask
		qEvals[j].Sub(&p.Evals[pair], &p.Evals[i])
	}

	quotient = Poly{NVars: p.NVars - 1, Evals: qEvals}
	remainder = p.PartialEvaluate(pos, d)
	return quotient, remainder
}

// BlowUp extends the variable count by k dummy variables in the given
// direction, doubling the length k times.
func (p Poly) BlowUp(direction BlowUpDirection, k int) Poly {
	evals := p.Evals
	nVars := p.NVars
	for t := 0; t < k; t++ {
		doubled := make([]fr.Element, len(evals)*2)
		switch direction {
		case Left:
			copy(doubled, evals)
			copy(doubled[len(evals):], evals)
		case Right:
			for i, e := range evals {
				doubled[2*i] = e
				doubled[2*i+1] = e
			}
		default:
			panic("multilinear: unknown blow-up direction")
		}
		evals = doubled
		nVars++
	}
	return Poly{NVars: nVars, Evals: evals}
}

// Add returns the pointwise sum of two equal-arity multilinear
// polynomials. Panics on arity mismatch.
func Add(p, q Poly) Poly {
	if p.NVars != q.NVars {
		panic(fmt.Sprintf("multilinear: add arity mismatch %d != %d", p.NVars, q.NVars))
	}
	out := make([]fr.Element, len(p.Evals))
	for i := range out {
		out[i].Add(&p.Evals[i], &q.Evals[i])
	}
	return Poly{NVars: p.NVars, Evals: out}
}

// ToBytes concatenates the little-endian encoding of every evaluation, in
// index order.
func (p Poly) ToBytes() []byte {
	out := make([]byte, 0, len(p.Evals)*fr.Bytes)
	for _, e := range p.Evals {
		out = append(out, toBytesLE(e)...)
	}
	return out
}

func toBytesLE(f fr.Element) []byte {
	be := f.Bytes()
	out := make([]byte, len(be))
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}
