// Package simplify implements C5: driving reduce to a fixed point against
// one equation, and compacting a whole set against one equation in a
// single pass — grounded on original_source's two simplify_using
// overloads (the per-equation fixed point, and the scoped_update
// in-place compaction over an equation_vector).
package simplify

import (
	"github.com/tahina-pro/z3/equation"
	"github.com/tahina-pro/z3/reduce"
)

// Outcome reports what a simplification pass did to its target(s).
type Outcome struct {
	// Touched is true if at least one equation's polynomial changed.
	Touched bool
	// TooComplex is true if at least one candidate reduction was
	// abandoned by the complexity guard.
	TooComplex bool
	// ChangedLeading is true if at least one touched equation was
	// Processed and its leading term changed as a result.
	ChangedLeading bool
}

func (o *Outcome) absorb(r reduce.Result) {
	if r.Simplified {
		o.Touched = true
	}
	if r.TooComplex {
		o.TooComplex = true
	}
	if r.ChangedLeading {
		o.ChangedLeading = true
	}
}

// UsingQueue drives dst to a fixed point under repeated reduction by src,
// matching original_source's simplify_using(equation&, equation const&)
// which loops try_simplify_using until the polynomial stops changing or
// the complexity guard trips.
func UsingQueue(dst, src *equation.Equation, limits reduce.Limits) Outcome {
	var out Outcome
	for {
		r := reduce.TryReduce(dst, src, limits)
		out.absorb(r)
		if !r.Simplified {
			break
		}
	}
	return out
}

// AgainstSet drives dst to a fixed point under repeated reduction by
// every member of srcs, matching original_source's simplify_using(
// equation&, equation_vector const&): each full pass over srcs restarts
// if any reduction fired, since an earlier reduction may enable another
// one that a prior pass already walked past. The pass stops early if dst
// becomes constant (trivial or conflict) or cancel reports true.
func AgainstSet(dst *equation.Equation, srcs []*equation.Equation, limits reduce.Limits, cancel func() bool) Outcome {
	var out Outcome
	for {
		if (cancel != nil && cancel()) || dst.P.IsVal() {
			break
		}
		changed := false
		for _, src := range srcs {
			if src == dst {
				continue
			}
			r := reduce.TryReduce(dst, src, limits)
			out.absorb(r)
			if r.Simplified {
				changed = true
			}
			if dst.P.IsVal() {
				break
			}
		}
		if !changed {
			break
		}
	}
	return out
}

// QueueUsing compacts set in place, reducing every member against eq and
// dropping any member that collapses to zero (trivial, spec §4.5) —
// ported from original_source's simplify_using(equation_vector&,
// equation const&), which used a scoped_update read/write-index
// compaction idiom (no destructor equivalent in Go, so the compaction
// runs as an explicit two-index loop instead of RAII).
//
// QueueUsing never drops or reduces eq against itself, and never touches
// equations already in Solved state (spec §4.5's "solved equations are
// frozen" rule).
func QueueUsing(set []*equation.Equation, eq *equation.Equation, limits reduce.Limits) ([]*equation.Equation, Outcome) {
	var out Outcome
	w := 0
	for r := 0; r < len(set); r++ {
		cur := set[r]
		if cur == eq || cur.State == equation.Solved {
			set[w] = cur
			w++
			continue
		}
		res := UsingQueue(cur, eq, limits)
		if res.Touched {
			out.Touched = true
		}
		if res.TooComplex {
			out.TooComplex = true
		}
		if res.ChangedLeading {
			out.ChangedLeading = true
		}
		if cur.IsTrivial() {
			continue
		}
		set[w] = cur
		w++
	}
	for i := w; i < len(set); i++ {
		set[i] = nil
	}
	return set[:w], out
}
