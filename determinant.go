// determinant.go
package fock

import (
	"fmt"
	"math/bits"
)

// MaxStates is the number of single-particle states a Determinant can address.
const MaxStates = 64

/*
Determinant is a Slater determinant encoded as an occupation bit pattern.

Bit j set means single-particle state j is occupied. Determinants are plain
values: they compare structurally and are safe to use as map keys. Nothing
mutates a Determinant in place, transitions always return a new value.
*/
type Determinant uint64

/*
NewDeterminant wraps a raw bit pattern. Every pattern is a valid determinant.
*/
func NewDeterminant(index uint64) Determinant {
	return Determinant(index)
}

/*
DeterminantFromOccupied builds a determinant from an explicit list of occupied
single-particle indices.

Returns:
  - Determinant: the bit pattern with every listed index set
  - error: a *ConstructionError if an index repeats or is at or above MaxStates
*/
func DeterminantFromOccupied(occupied ...uint) (Determinant, error) {
	var index uint64

	for _, j := range occupied {
		if j >= MaxStates {
			return 0, indexOutOfRange(j)
		}

		if index&(1<<j) != 0 {
			return 0, duplicateIndex(j)
		}

		index |= 1 << j
	}

	return Determinant(index), nil
}

// Index returns the raw bit pattern.
func (d Determinant) Index() uint64 {
	return uint64(d)
}

// Occupied reports whether single-particle state j is occupied.
func (d Determinant) Occupied(j uint) bool {
	if j >= MaxStates {
		return false
	}
	return uint64(d)&(1<<j) != 0
}

// Count returns the particle number.
func (d Determinant) Count() int {
	return bits.OnesCount64(uint64(d))
}

// Orbitals lists the occupied indices in ascending order.
func (d Determinant) Orbitals() []uint {
	out := make([]uint, 0, d.Count())
	for rest := uint64(d); rest != 0; rest &= rest - 1 {
		out = append(out, uint(bits.TrailingZeros64(rest)))
	}
	return out
}

func (d Determinant) String() string {
	return fmt.Sprintf("%08b", uint64(d))
}

// create sets bit j, failing when the state is already occupied.
func (d Determinant) create(j uint) (Determinant, bool) {
	if j >= MaxStates || d.Occupied(j) {
		return d, false
	}
	return d | 1<<j, true
}

// annihilate clears bit j, failing when the state is empty.
func (d Determinant) annihilate(j uint) (Determinant, bool) {
	if j >= MaxStates || !d.Occupied(j) {
		return d, false
	}
	return d &^ (1 << j), true
}

/*
phase is the fermionic sign picked up by moving a ladder operator at position j
past the occupied states below it. The mask (1<<j)-1 is empty for j == 0.
*/
func (d Determinant) phase(j uint) int {
	below := uint64(d) & (uint64(1)<<j - 1)
	if bits.OnesCount64(below)%2 == 0 {
		return 1
	}
	return -1
}
