package fock

import (
	"fmt"
	"strings"
)

/*
Term is a weighted product of ladder operators. Ladders are written left to
right as on paper; the rightmost one acts on the state first.
*/
type Term struct {
	Weight  float64
	Ladders []Ladder
}

// NewTerm builds a term from a weight and a product of ladders.
func NewTerm(weight float64, ladders ...Ladder) Term {
	return Term{Weight: weight, Ladders: ladders}
}

/*
Adjoint returns the hermitian conjugate of the term: the product is reversed
and every ladder is swapped. Weights are real, so they are kept.
*/
func (t Term) Adjoint() Term {
	n := len(t.Ladders)
	out := make([]Ladder, n)
	for i, l := range t.Ladders {
		out[n-1-i] = l.Adjoint()
	}
	return Term{Weight: t.Weight, Ladders: out}
}

func (t Term) String() string {
	parts := make([]string, 0, len(t.Ladders))
	for _, l := range t.Ladders {
		parts = append(parts, l.String())
	}
	return fmt.Sprintf("%+g[%s]", t.Weight, strings.Join(parts, " "))
}

func (t Term) clone() Term {
	return Term{Weight: t.Weight, Ladders: append([]Ladder(nil), t.Ladders...)}
}

/*
Operator is a sum of terms. It is read-only once built.
*/
type Operator struct {
	terms []Term
}

/*
NewOperator builds an operator from its terms.

The terms are copied so later changes to the caller's slices do not leak in.
A ladder position at or above MaxStates is rejected with a *ConstructionError.
*/
func NewOperator(terms ...Term) (*Operator, error) {
	op := &Operator{terms: make([]Term, 0, len(terms))}

	for _, t := range terms {
		for _, l := range t.Ladders {
			if l.Position >= MaxStates {
				return nil, indexOutOfRange(l.Position)
			}
		}
		op.terms = append(op.terms, t.clone())
	}

	return op, nil
}

// Identity returns the operator 1.
func Identity() *Operator {
	return &Operator{terms: []Term{{Weight: 1}}}
}

// Number returns the occupation number operator c†j cj.
func Number(j uint) (*Operator, error) {
	return NewOperator(NewTerm(1, Create(j), Annihilate(j)))
}

// Hopping returns t(c†i cj + c†j ci).
func Hopping(i, j uint, t float64) (*Operator, error) {
	return NewOperator(
		NewTerm(t, Create(i), Annihilate(j)),
		NewTerm(t, Create(j), Annihilate(i)),
	)
}

// Terms returns a copy of the operator's terms.
func (op *Operator) Terms() []Term {
	out := make([]Term, len(op.terms))
	for i, t := range op.terms {
		out[i] = t.clone()
	}
	return out
}

// Len returns the number of terms.
func (op *Operator) Len() int {
	return len(op.terms)
}

// Plus returns the sum of two operators.
func (op *Operator) Plus(other *Operator) *Operator {
	out := &Operator{terms: make([]Term, 0, len(op.terms)+len(other.terms))}
	out.terms = append(out.terms, op.terms...)
	out.terms = append(out.terms, other.terms...)
	return out
}

// Scale multiplies every weight by c.
func (op *Operator) Scale(c float64) *Operator {
	out := &Operator{terms: make([]Term, len(op.terms))}
	for i, t := range op.terms {
		out.terms[i] = Term{Weight: t.Weight * c, Ladders: t.Ladders}
	}
	return out
}

// Adjoint returns the hermitian conjugate of the operator.
func (op *Operator) Adjoint() *Operator {
	out := &Operator{terms: make([]Term, len(op.terms))}
	for i, t := range op.terms {
		out.terms[i] = t.Adjoint()
	}
	return out
}

func (op *Operator) String() string {
	parts := make([]string, 0, len(op.terms))
	for _, t := range op.terms {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, " ")
}
