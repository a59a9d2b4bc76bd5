package fock

import "github.com/theapemachine/errnie"

/*
Event describes one ladder transition inside Apply.

Forbidden marks a Pauli null: the branch starting at From vanished and To is
left equal to From. Amplitude is the branch amplitude after the sign was
applied, or the amplitude that was dropped when Forbidden is set.
*/
type Event struct {
	Term      int
	Source    Determinant
	Ladder    Ladder
	From      Determinant
	To        Determinant
	Sign      int
	Amplitude float64
	Forbidden bool
}

// Tracer receives transition events. A nil Tracer disables tracing.
type Tracer func(Event)

/*
LogTracer reports every transition through errnie. Useful when checking phase
decisions by hand; too chatty for anything but small states.
*/
func LogTracer() Tracer {
	return func(e Event) {
		if e.Forbidden {
			errnie.Info(
				"term %d source %v: %v on %v is forbidden, dropping %v",
				e.Term, e.Source, e.Ladder, e.From, e.Amplitude,
			)
			return
		}

		errnie.Info(
			"term %d source %v: %v on %v -> %v sign %+d amplitude %v",
			e.Term, e.Source, e.Ladder, e.From, e.To, e.Sign, e.Amplitude,
		)
	}
}
