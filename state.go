package fock

import (
	"fmt"
	"iter"
	"math"
	"sort"
	"strings"
)

// Entry pairs a determinant with its amplitude.
type Entry struct {
	Determinant Determinant
	Amplitude   float64
}

/*
State is a sparse superposition of determinants. Entries whose amplitude is at
or below Tolerance in magnitude are never stored, and a State is never changed
after construction.
*/
type State struct {
	amplitudes map[Determinant]float64
}

/*
NewState builds a superposition from explicit entries.

A later entry for the same determinant overwrites an earlier one. Entries with
|amplitude| <= Tolerance are dropped.
*/
func NewState(entries ...Entry) *State {
	amplitudes := make(map[Determinant]float64, len(entries))

	for _, e := range entries {
		amplitudes[e.Determinant] = e.Amplitude
	}

	prune(amplitudes, Tolerance)
	return &State{amplitudes: amplitudes}
}

// Amplitude looks up the amplitude of d.
func (s *State) Amplitude(d Determinant) (float64, bool) {
	a, ok := s.amplitudes[d]
	return a, ok
}

// Len returns the number of stored determinants.
func (s *State) Len() int {
	return len(s.amplitudes)
}

// All iterates the stored entries in no particular order.
func (s *State) All() iter.Seq2[Determinant, float64] {
	return func(yield func(Determinant, float64) bool) {
		for d, a := range s.amplitudes {
			if !yield(d, a) {
				return
			}
		}
	}
}

// Entries returns the stored entries ordered by determinant index.
func (s *State) Entries() []Entry {
	out := make([]Entry, 0, len(s.amplitudes))
	for d, a := range s.amplitudes {
		out = append(out, Entry{Determinant: d, Amplitude: a})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Determinant < out[j].Determinant
	})
	return out
}

// Norm returns the Euclidean norm of the amplitudes. The state is not normalized.
func (s *State) Norm() float64 {
	return math.Sqrt(s.Inner(s))
}

// Inner returns the overlap <s|other>. Determinants are orthonormal.
func (s *State) Inner(other *State) float64 {
	small, large := s.amplitudes, other.amplitudes
	if len(small) > len(large) {
		small, large = large, small
	}

	var sum float64
	for d, a := range small {
		sum += a * large[d]
	}
	return sum
}

func (s *State) String() string {
	entries := s.Entries()
	if len(entries) == 0 {
		return "0"
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%+g|%v>", e.Amplitude, e.Determinant))
	}
	return strings.Join(parts, " ")
}

// prune deletes every entry with |a| <= tol and returns how many went.
func prune(amplitudes map[Determinant]float64, tol float64) int {
	var n int
	for d, a := range amplitudes {
		if math.Abs(a) <= tol {
			delete(amplitudes, d)
			n++
		}
	}
	return n
}
