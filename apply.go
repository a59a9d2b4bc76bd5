// apply.go
package fock

import "time"

/*
applier carries the settings and counters of one Apply call across the term
threading loops.
*/
type applier struct {
	config *Config
	tally  applyTally
}

/*
Apply acts with an operator on a state and returns the resulting state.

Every term is threaded through every source determinant on its own, starting
from that single (determinant, amplitude) pair. Contributions from all
(term, source) combinations are summed into one result, which is pruned of
entries at or below the tolerance. Neither the receiver nor op is modified.

Options configure the tolerance, a transition tracer and a metrics sink.
*/
func (s *State) Apply(op *Operator, opts ...Option) *State {
	startTime := time.Now()
	a := &applier{config: newConfig(opts)}

	result := make(map[Determinant]float64)

	for ti, term := range op.terms {
		for source, amplitude := range s.amplitudes {
			for d, v := range a.thread(ti, term, source, amplitude) {
				result[d] += term.Weight * v
				a.tally.contributions++
			}
		}
	}

	a.tally.pruned += int64(prune(result, a.config.Tolerance))

	if a.config.Metrics != nil {
		a.config.Metrics.record(startTime, a.tally)
	}

	return &State{amplitudes: result}
}

// Apply is op|s>, spelled in physics reading order.
func Apply(op *Operator, s *State, opts ...Option) *State {
	return s.Apply(op, opts...)
}

/*
thread runs one term against one source determinant. Ladders act right to
left. The frontier is pruned after every step so it stays sparse.
*/
func (a *applier) thread(
	ti int, term Term, source Determinant, amplitude float64,
) map[Determinant]float64 {
	frontier := map[Determinant]float64{source: amplitude}

	for i := len(term.Ladders) - 1; i >= 0 && len(frontier) > 0; i-- {
		frontier = a.step(ti, source, term.Ladders[i], frontier)
	}

	return frontier
}

/*
step applies one ladder to every branch of the frontier. A Pauli null drops its
branch only; the other branches carry on.
*/
func (a *applier) step(
	ti int, source Determinant, l Ladder, frontier map[Determinant]float64,
) map[Determinant]float64 {
	next := make(map[Determinant]float64, len(frontier))

	for d, v := range frontier {
		sign, nd, ok := l.Apply(d)
		a.tally.transitions++

		if !ok {
			a.tally.forbidden++
			a.trace(Event{Term: ti, Source: source, Ladder: l, From: d, To: d, Amplitude: v, Forbidden: true})
			continue
		}

		next[nd] += float64(sign) * v
		a.trace(Event{Term: ti, Source: source, Ladder: l, From: d, To: nd, Sign: sign, Amplitude: float64(sign) * v})
	}

	a.tally.pruned += int64(prune(next, a.config.Tolerance))
	return next
}

func (a *applier) trace(e Event) {
	if a.config.Tracer != nil {
		a.config.Tracer(e)
	}
}
