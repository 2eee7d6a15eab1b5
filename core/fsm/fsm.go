// Package fsm provides a Moore machine: the output depends only on the
// state reached after the transition.
package fsm

// Machine is owned by a single task; it is not safe for concurrent use.
type Machine[S comparable, I any, A any] struct {
	state S
	next  func(S, I) S
	out   func(S) A
}

// New builds a machine. next must return its input state for anything it
// does not recognise.
func New[S comparable, I any, A any](initial S, next func(S, I) S, out func(S) A) *Machine[S, I, A] {
	return &Machine[S, I, A]{state: initial, next: next, out: out}
}

// Step advances on in and returns the output of the new state.
func (m *Machine[S, I, A]) Step(in I) A {
	m.state = m.next(m.state, in)
	return m.out(m.state)
}

func (m *Machine[S, I, A]) State() S { return m.state }

// Reset forces the state without producing output.
func (m *Machine[S, I, A]) Reset(s S) { m.state = s }
