package fock

import "fmt"

// LadderKind tells a creation operator apart from an annihilation operator.
type LadderKind int

const (
	Creation LadderKind = iota
	Annihilation
)

/*
Ladder is an elementary second-quantized operator acting on one
single-particle state.
*/
type Ladder struct {
	Kind     LadderKind
	Position uint
}

// Create returns the creation operator c†j.
func Create(j uint) Ladder {
	return Ladder{Kind: Creation, Position: j}
}

// Annihilate returns the annihilation operator cj.
func Annihilate(j uint) Ladder {
	return Ladder{Kind: Annihilation, Position: j}
}

// Adjoint swaps creation and annihilation at the same position.
func (l Ladder) Adjoint() Ladder {
	if l.Kind == Creation {
		return Annihilate(l.Position)
	}
	return Create(l.Position)
}

/*
Apply acts with the ladder operator on a single determinant.

When ok is false the action is a Pauli null (creating into an occupied state or
annihilating an empty one) and the determinant contributes nothing. That is a
physical result, not an error. Otherwise sign is the fermionic phase, given by
the parity of occupied states strictly below Position, and next is the
resulting determinant.
*/
func (l Ladder) Apply(d Determinant) (sign int, next Determinant, ok bool) {
	switch l.Kind {
	case Creation:
		next, ok = d.create(l.Position)
	case Annihilation:
		next, ok = d.annihilate(l.Position)
	}

	if !ok {
		return 0, d, false
	}

	return d.phase(l.Position), next, true
}

func (l Ladder) String() string {
	if l.Kind == Creation {
		return fmt.Sprintf("c†%d", l.Position)
	}
	return fmt.Sprintf("c%d", l.Position)
}
