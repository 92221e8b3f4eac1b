// Package watch implements C3: an index from variable to the to-simplify
// equations whose leading variable is that variable, grounded on the
// teacher's Solver.watches map[lit.Lit][]*Clause and on
// original_source's m_watch/add_to_watch/simplify_watch. Each bucket is a
// simplicityHeap (adapted from the teacher's order.Order heap) so the
// scheduler picks the simplest watched equation in O(log n) instead of
// scanning the whole bucket.
package watch

import (
	"github.com/tahina-pro/z3/equation"
	"github.com/tahina-pro/z3/poly"
)

// Index is the watch-list map, keyed by poly.VarID.
type Index struct {
	buckets map[poly.VarID]*simplicityHeap
}

// New returns an empty watch index.
func New() *Index {
	return &Index{buckets: make(map[poly.VarID]*simplicityHeap)}
}

// Reset empties the index — used when (re)building it in init_saturate,
// and when the engine recovers from a memory-exhaustion signal by
// dropping soft references into an over-committed algebra state.
func (idx *Index) Reset() {
	idx.buckets = make(map[poly.VarID]*simplicityHeap)
}

// Empty reports whether the index currently holds no entries.
func (idx *Index) Empty() bool {
	for _, h := range idx.buckets {
		if h.len() > 0 {
			return false
		}
	}
	return true
}

// Add inserts eq into the watch list of its own leading variable. Callers
// must not re-add an equation already present — idempotent-safety is the
// caller's responsibility for new equations only (spec §4.2).
func (idx *Index) Add(eq *equation.Equation) {
	v := eq.P.Var()
	h := idx.buckets[v]
	if h == nil {
		h = newSimplicityHeap()
		idx.buckets[v] = h
	}
	h.push(eq)
}

// Remove deletes eq from the watch list of variable v.
func (idx *Index) Remove(v poly.VarID, eq *equation.Equation) {
	if h := idx.buckets[v]; h != nil {
		h.remove(eq)
	}
}

// Fix restores the heap invariant for variable v's bucket around eq,
// after eq's simplicity key changed due to an in-place reduction that
// didn't change its leading variable.
func (idx *Index) Fix(v poly.VarID, eq *equation.Equation) {
	if h := idx.buckets[v]; h != nil {
		h.fix(eq)
	}
}

// PopSimplest removes and returns the simplest to-simplify equation
// watching v, or nil if none remain.
func (idx *Index) PopSimplest(v poly.VarID) *equation.Equation {
	h := idx.buckets[v]
	if h == nil {
		return nil
	}
	return h.popMin()
}

// Len returns how many equations currently watch v.
func (idx *Index) Len(v poly.VarID) int {
	if h := idx.buckets[v]; h != nil {
		return h.len()
	}
	return 0
}

// Items returns a snapshot of the equations currently watching v, stable
// against concurrent Add/Remove calls made for v while the caller
// iterates (spec §9's watch-list migration note).
func (idx *Index) Items(v poly.VarID) []*equation.Equation {
	if h := idx.buckets[v]; h != nil {
		return h.snapshot()
	}
	return nil
}
