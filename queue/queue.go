// Package queue implements C2: three disjoint equation collections —
// to-simplify, processed, and solved — each backed by a slice with
// swap-and-pop removal so no deletion is ever O(n) (spec §9 design
// note). The swap-with-last-then-pop idiom is the same one the teacher
// uses in Clause.removeFromWatcher.
package queue

import "github.com/tahina-pro/z3/equation"

// Queues holds the three state-indexed equation slices.
type Queues struct {
	byState [3][]*equation.Equation
}

// New returns an empty set of queues.
func New() *Queues {
	return &Queues{}
}

// Push appends eq to the slice for state, sets eq.State and eq.Idx.
func (q *Queues) Push(state equation.State, eq *equation.Equation) {
	eq.State = state
	s := q.byState[state]
	eq.Idx = len(s)
	q.byState[state] = append(s, eq)
}

// Pop removes eq from its current queue via swap-with-last, updating the
// swapped-in equation's Idx. eq.State is left as-is — callers that move an
// equation to a different queue should call Push afterward, which
// overwrites State.
func (q *Queues) Pop(eq *equation.Equation) {
	s := q.byState[eq.State]
	last := len(s) - 1
	if eq.Idx != last {
		moved := s[last]
		moved.Idx = eq.Idx
		s[eq.Idx] = moved
	}
	q.byState[eq.State] = s[:last]
	eq.Idx = -1
}

// Move pops eq from its current queue and pushes it into newState.
func (q *Queues) Move(eq *equation.Equation, newState equation.State) {
	q.Pop(eq)
	q.Push(newState, eq)
}

// Slice returns the live backing slice for state — callers must not
// retain it across a Push/Pop/Move on the same Queues.
func (q *Queues) Slice(state equation.State) []*equation.Equation {
	return q.byState[state]
}

// Len returns the number of equations currently in state.
func (q *Queues) Len(state equation.State) int {
	return len(q.byState[state])
}

// All returns a fresh snapshot of every live equation across all three
// queues — the engine's Equations() entry point.
func (q *Queues) All() []*equation.Equation {
	out := make([]*equation.Equation, 0, len(q.byState[equation.Solved])+
		len(q.byState[equation.ToSimplify])+len(q.byState[equation.Processed]))
	out = append(out, q.byState[equation.Solved]...)
	out = append(out, q.byState[equation.ToSimplify]...)
	out = append(out, q.byState[equation.Processed]...)
	return out
}

// ReplaceAll overwrites state's backing slice with eqs, setting each
// equation's State and Idx to match its new position — used by the
// pre-pass simplifier, which filters the to-simplify set before the
// watch index exists and so has no per-equation swap-and-pop to drive.
func (q *Queues) ReplaceAll(state equation.State, eqs []*equation.Equation) {
	for i, eq := range eqs {
		eq.State = state
		eq.Idx = i
	}
	q.byState[state] = eqs
}

// Reset empties all three queues.
func (q *Queues) Reset() {
	q.byState = [3][]*equation.Equation{}
}
