// Package circuit implements layered arithmetic circuits of ADD/MUL gates
// and the multilinear polynomials GKR derives from them: per-layer value
// polynomials, the add_i/mul_i wiring predicates, and the f_bc summand that
// each layer's sumcheck reduction proves a claim about.
package circuit

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/giuliop/mlgkr/polynomial/composed"
	"github.com/giuliop/mlgkr/polynomial/multilinear"
)

// Op identifies a gate's operation.
type Op int

const (
	ADD Op = iota
	MUL
)

// Gate is a single wire: output = left OP right, where left/right/output
// are indices into the circuit's adjacent layers.
type Gate struct {
	Left, Right, Output int
	Op                  Op
}

// Circuit is a layered arithmetic circuit. Layers is stored output-first:
// Layers[0] is the output layer's gates, Layers[len(Layers)-1] is the
// deepest gate layer, the one that reads directly from the input vector.
// The raw input is not itself a gate layer.
type Circuit struct {
	Layers [][]Gate
}

// NumLayers returns the number of gate layers (excludes the raw input).
func (c Circuit) NumLayers() int {
	return len(c.Layers)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Eval evaluates the circuit on input, processing gate layers from the
// input side (index NumLayers()-1) toward the output (index 0). At each
// step the computed layer's length is max(prevLen/2, 2), padding unused
// output slots with the field zero value so every layer's length stays a
// power of two.
//
// Returns the per-layer value vectors in the order they were computed:
// index 0 is the raw input, the last index is the output layer.
func (c Circuit) Eval(input []fr.Element) [][]fr.Element {
	results := make([][]fr.Element, 0, len(c.Layers)+1)
	results = append(results, input)

	cur := input
	for i := len(c.Layers) - 1; i >= 0; i-- {
		nextLen := maxInt(len(cur)/2, 2)
		out := make([]fr.Element, nextLen)
		for _, g := range c.Layers[i] {
			l := cur[g.Left]
			r := cur[g.Right]
			var v fr.Element
			switch g.Op {
			case ADD:
				v.Add(&l, &r)
			case MUL:
				v.Mul(&l, &r)
			default:
				panic(fmt.Sprintf("circuit: unknown gate op %d", g.Op))
			}
			out[g.Output] = v
		}
		results = append(results, out)
		cur = out
	}
	return results
}

// GetLayerPoly evaluates the circuit on input and wraps layer i (0 =
// output, NumLayers() = raw input) as a multilinear polynomial.
func (c Circuit) GetLayerPoly(i int, input []fr.Element) multilinear.Poly {
	results := c.Eval(input)
	idx := len(results) - 1 - i
	if idx < 0 || idx >= len(results) {
		panic(fmt.Sprintf("circuit: layer index %d out of range", i))
	}
	return multilinear.New(results[idx])
}

// AddMulI returns the multilinear characteristic function over variables
// (a,b,c) that is 1 iff layer i has a gate of the given op with
// output=a, left=b, right=c. |a| = max(i,1), |b| = |c| = i+1; each gate
// contributes a 1 at the index formed by concatenating a's, b's, and c's
// bits, high to low.
func (c Circuit) AddMulI(i int, op Op) multilinear.Poly {
	if i < 0 || i >= len(c.Layers) {
		panic(fmt.Sprintf("circuit: layer index %d out of range", i))
	}
	aBits := maxInt(i, 1)
	bcBits := i + 1
	n := aBits + 2*bcBits

	evals := make([]fr.Element, 1<<n)
	for _, g := range c.Layers[i] {
		if g.Op != op {
			continue
		}
		idx := (g.Output << (2 * bcBits)) | (g.Left << bcBits) | g.Right
		evals[idx].SetOne()
	}
	return multilinear.Poly{NVars: n, Evals: evals}
}

// SubstituteA partial-evaluates the leading len(a) variables of p (the
// "a" block of an add_i/mul_i polynomial) with the given values, most
// significant variable first, returning the polynomial in the remaining
// variables.
func SubstituteA(p multilinear.Poly, a []fr.Element) multilinear.Poly {
	cur := p
	for _, v := range a {
		cur = cur.PartialEvaluate(cur.NVars-1, v)
	}
	return cur
}

// WAddMul is the tensor-style combinator r(b,c) = p(b) OP q(c); its arity
// is p.NVars + q.NVars.
func WAddMul(p, q multilinear.Poly, op Op) multilinear.Poly {
	qLen := len(q.Evals)
	evals := make([]fr.Element, len(p.Evals)*qLen)
	for b := range p.Evals {
		for c := range q.Evals {
			var v fr.Element
			switch op {
			case ADD:
				v.Add(&p.Evals[b], &q.Evals[c])
			case MUL:
				v.Mul(&p.Evals[b], &q.Evals[c])
			default:
				panic(fmt.Sprintf("circuit: unknown op %d", op))
			}
			evals[b*qLen+c] = v
		}
	}
	return multilinear.Poly{NVars: p.NVars + q.NVars, Evals: evals}
}

// GenerateFbc builds the sumcheck summand for layer i, given that layer's
// (possibly already folded) add_i/mul_i polynomials over (b,c) and the
// next layer's value polynomial W_{i+1}.
func GenerateFbc(addIbc, mulIbc, wNext multilinear.Poly) composed.SumPoly {
	wPlus := WAddMul(wNext, wNext, ADD)
	wTimes := WAddMul(wNext, wNext, MUL)
	return composed.NewSumPoly(
		composed.NewProductPoly(addIbc, wPlus),
		composed.NewProductPoly(mulIbc, wTimes),
	)
}
