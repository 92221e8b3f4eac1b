// Package equation implements C1 of the saturation engine: an equation is
// a polynomial paired with its dependency provenance, its queue
// membership state, and its position within that queue's backing slice
// (so the owning queue package can remove it in O(1) via swap-and-pop,
// the way the teacher's Clause tracks no index but its watch list entries
// are removed the same way — see queue.Queues.Pop).
package equation

import (
	"github.com/tahina-pro/z3/dep"
	"github.com/tahina-pro/z3/poly"
)

// State is the queue an Equation currently belongs to.
type State int

const (
	// ToSimplify equations are pending, watched by their leading
	// variable, and candidates for Scheduler.PickNext.
	ToSimplify State = iota
	// Processed equations have been picked, simplified, and used to
	// superpose; they are not in the watch index.
	Processed
	// Solved equations are in solved form (x*1 + r = 0) and name a head
	// variable that no to-simplify or processed equation may mention.
	// A conflict witness found during a step is also kept in Solved.
	Solved
)

func (s State) String() string {
	switch s {
	case ToSimplify:
		return "to_simplify"
	case Processed:
		return "processed"
	case Solved:
		return "solved"
	default:
		return "unknown"
	}
}

// Equation is the engine's atomic unit of work. Exclusively owned by the
// engine between Add and Reset — callers hold no references into it.
type Equation struct {
	P     poly.Poly
	Dep   dep.Token
	State State
	// Idx is this equation's position in its State's backing slice,
	// maintained by the queue package on every push/pop.
	Idx int
}

// New returns a fresh equation in the ToSimplify state (State's zero
// value) with Idx left unassigned (the queue package sets it on push).
func New(p poly.Poly, d dep.Token) *Equation {
	return &Equation{P: p, Dep: d}
}

// IsSolvedForm reports whether e's polynomial is in solved form: a
// non-constant polynomial whose Hi() is the constant 1, so it expresses
// its leading variable in terms of strictly smaller variables.
func (e *Equation) IsSolvedForm() bool {
	if e.P.IsVal() {
		return false
	}
	hi := e.P.Hi()
	return hi.IsVal() && !hi.IsZero()
}

// IsTrivial reports whether e's polynomial has become 0 = 0, meaning e
// carries no information and should be retired.
func (e *Equation) IsTrivial() bool {
	return e.P.IsZero()
}

// IsConflict reports whether e's polynomial is a nonzero constant —
// the "c = 0 with c nonzero" contradiction.
func (e *Equation) IsConflict() bool {
	return e.P.IsVal() && !e.P.IsZero()
}
