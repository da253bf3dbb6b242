// Package composed implements the two polynomial shapes the sum-of-products
// sumcheck variant consumes: a pointwise product of multilinears, and a sum
// of such products.
package composed

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/giuliop/mlgkr/polynomial/multilinear"
)

// ProductPoly is the pointwise product of an ordered list of multilinear
// polynomials of identical arity.
type ProductPoly struct {
	Polys []multilinear.Poly
}

// NewProductPoly wraps the given factors. All factors must share the same
// NVars; panics otherwise.
func NewProductPoly(polys ...multilinear.Poly) ProductPoly {
	for i := 1; i < len(polys); i++ {
		if polys[i].NVars != polys[0].NVars {
			panic(fmt.Sprintf("composed: product factor %d has arity %d, want %d", i, polys[i].NVars, polys[0].NVars))
		}
	}
	return ProductPoly{Polys: polys}
}

// NVars returns the shared arity of the factors, or 0 for an empty product.
func (pp ProductPoly) NVars() int {
	if len(pp.Polys) == 0 {
		return 0
	}
	return pp.Polys[0].NVars
}

// Reduce multiplies the factors pointwise into a single evaluation vector.
// An empty product reduces to the all-ones vector of length 1.
func (pp ProductPoly) Reduce() multilinear.Poly {
	if len(pp.Polys) == 0 {
		one := make([]fr.Element, 1)
		one[0].SetOne()
		return multilinear.New(one)
	}
	n := len(pp.Polys[0].Evals)
	out := make([]fr.Element, n)
	for i := range out {
		out[i].SetOne()
	}
	for _, p := range pp.Polys {
		for i := range out {
			out[i].Mul(&out[i], &p.Evals[i])
		}
	}
	return multilinear.Poly{NVars: pp.NVars(), Evals: out}
}

// PartialEvaluate partial-evaluates every factor at (pos, v).
func (pp ProductPoly) PartialEvaluate(pos int, v fr.Element) ProductPoly {
	out := make([]multilinear.Poly, len(pp.Polys))
	for i, p := range pp.Polys {
		out[i] = p.PartialEvaluate(pos, v)
	}
	return ProductPoly{Polys: out}
}

// Evaluate evaluates every factor at values and returns their product. An
// empty product evaluates to one.
func (pp ProductPoly) Evaluate(values []fr.Element) fr.Element {
	var result fr.Element
	result.SetOne()
	for _, p := range pp.Polys {
		v := p.Evaluate(values)
		result.Mul(&result, &v)
	}
	return result
}

// SumPoly is a sum of ProductPoly terms of identical arity.
type SumPoly struct {
	Polys []ProductPoly
}

// NewSumPoly wraps the given product terms.
func NewSumPoly(polys ...ProductPoly) SumPoly {
	return SumPoly{Polys: polys}
}

// NVars returns log2 of the reduced vector length, 0 for an empty sum.
func (sp SumPoly) NVars() int {
	if len(sp.Polys) == 0 {
		return 0
	}
	return sp.Polys[0].NVars()
}

// Degree returns the maximum number of factors across the product terms:
// the degree of the sum-of-products summand in each variable.
func (sp SumPoly) Degree() int {
	max := 0
	for _, p := range sp.Polys {
		if len(p.Polys) > max {
			max = len(p.Polys)
		}
	}
	return max
}

// Reduce sums the reductions of every product term pointwise.
func (sp SumPoly) Reduce() multilinear.Poly {
	if len(sp.Polys) == 0 {
		return multilinear.Poly{NVars: 0, Evals: []fr.Element{{}}}
	}
	acc := sp.Polys[0].Reduce()
	for _, p := range sp.Polys[1:] {
		acc = multilinear.Add(acc, p.Reduce())
	}
	return acc
}

// PartialEvaluate partial-evaluates every term at (pos, v).
func (sp SumPoly) PartialEvaluate(pos int, v fr.Element) SumPoly {
	out := make([]ProductPoly, len(sp.Polys))
	for i, p := range sp.Polys {
		out[i] = p.PartialEvaluate(pos, v)
	}
	return SumPoly{Polys: out}
}

// Evaluate sums the per-term evaluations at values. An empty sum evaluates
// to zero.
func (sp SumPoly) Evaluate(values []fr.Element) fr.Element {
	var result fr.Element
	for _, p := range sp.Polys {
		v := p.Evaluate(values)
		result.Add(&result, &v)
	}
	return result
}
