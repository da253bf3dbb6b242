// Package univariate implements dense univariate polynomials over the
// scalar field, used by the sum-of-products sumcheck variant to represent
// round polynomials and by Lagrange interpolation wherever a caller needs a
// closed form through a handful of sample points.
package univariate

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Poly is a dense univariate polynomial. Coefficients are stored in
// ascending order: Coeffs[i] is the coefficient of x^i.
type Poly struct {
	Coeffs []fr.Element
}

// New wraps a coefficient vector as a Poly. The slice is not copied.
func New(coeffs []fr.Element) Poly {
	return Poly{Coeffs: coeffs}
}

// Zero returns the zero polynomial.
func Zero() Poly {
	return Poly{Coeffs: []fr.Element{}}
}

// Degree returns len(Coeffs)-1. The zero polynomial has degree -1.
func (p Poly) Degree() int {
	return len(p.Coeffs) - 1
}

// Evaluate evaluates p at x using Horner's method.
func (p Poly) Evaluate(x fr.Element) fr.Element {
	var result fr.Element
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		result.Mul(&result, &x)
		result.Add(&result, &p.Coeffs[i])
	}
	return result
}

// EvaluateSumOverBooleanHypercube returns p(0)+p(1), the univariate analogue
// of summing over the Boolean hypercube.
func (p Poly) EvaluateSumOverBooleanHypercube() fr.Element {
	var zero, one fr.Element
	one.SetOne()

	atZero := p.Evaluate(zero)
	atOne := p.Evaluate(one)

	var sum fr.Element
	sum.Add(&atZero, &atOne)
	return sum
}

// ScalarMul returns a new polynomial with every coefficient multiplied by s.
func (p Poly) ScalarMul(s fr.Element) Poly {
	out := make([]fr.Element, len(p.Coeffs))
	for i := range p.Coeffs {
		out[i].Mul(&p.Coeffs[i], &s)
	}
	return Poly{Coeffs: out}
}

// Add returns the pointwise sum of p and q, padding the shorter operand
// with zeros.
func Add(p, q Poly) Poly {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		var a, b fr.Element
		if i < len(p.Coeffs) {
			a = p.Coeffs[i]
		}
		if i < len(q.Coeffs) {
			b = q.Coeffs[i]
		}
		out[i].Add(&a, &b)
	}
	return Poly{Coeffs: out}
}

// mulLinear multiplies p by the monic linear factor (x - root).
func mulLinear(p Poly, root fr.Element) Poly {
	out := make([]fr.Element, len(p.Coeffs)+1)
	var negRoot fr.Element
	negRoot.Neg(&root)
	for i, c := range p.Coeffs {
		var t fr.Element
		t.Mul(&c, &negRoot)
		out[i].Add(&out[i], &t)
		out[i+1].Add(&out[i+1], &c)
	}
	return Poly{Coeffs: out}
}

// Interpolate returns the unique polynomial of degree < len(xs) passing
// through the given points via Lagrange interpolation. xs must be pairwise
// distinct; behavior is undefined otherwise.
func Interpolate(xs, ys []fr.Element) Poly {
	if len(xs) != len(ys) {
		panic("univariate: interpolate requires equal-length xs and ys")
	}
	if len(xs) == 0 {
		return Zero()
	}

	result := Zero()
	for i := range xs {
		b := basis(i, xs)
		result = Add(result, b.ScalarMul(ys[i]))
	}
	return result
}

// basis returns the i-th Lagrange basis polynomial for the interpolating
// set xs: the unique degree len(xs)-1 polynomial that is 1 at xs[i] and 0
// at every other xs[j].
func basis(i int, xs []fr.Element) Poly {
	one := Poly{Coeffs: []fr.Element{fieldOne()}}
	num := one
	var denom fr.Element
	denom.SetOne()

	for j, xj := range xs {
		if j == i {
			continue
		}
		num = mulLinear(num, xj)

		var diff fr.Element
		diff.Sub(&xs[i], &xj)
		denom.Mul(&denom, &diff)
	}

	var invDenom fr.Element
	invDenom.Inverse(&denom)
	return num.ScalarMul(invDenom)
}

func fieldOne() fr.Element {
	var one fr.Element
	one.SetOne()
	return one
}

// ToBytes concatenates the little-endian encoding of each coefficient.
func (p Poly) ToBytes() []byte {
	out := make([]byte, 0, len(p.Coeffs)*fr.Bytes)
	for _, c := range p.Coeffs {
		out = append(out, toBytesLE(c)...)
	}
	return out
}

// toBytesLE returns the little-endian canonical encoding of a field
// element. gnark-crypto's native Bytes() is big-endian; this reverses it.
func toBytesLE(f fr.Element) []byte {
	be := f.Bytes()
	out := make([]byte, len(be))
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}
