// Package prepass implements the pre-pass simplifier entry point
// recovered from original_source/pdd_solver.cpp: solver::saturate()
// calls simplify() once, before init_saturate(), doing one non-fixed-
// point pairwise pass over the initial equation set so obviously
// redundant members never enter the watch index at all.
package prepass

import (
	"github.com/tahina-pro/z3/equation"
	"github.com/tahina-pro/z3/reduce"
	"github.com/tahina-pro/z3/simplify"
)

// Run reduces every equation in eqs against every other member once,
// dropping any that collapse to zero, and reports a conflict (a nonzero
// constant) if one was produced. It does not chase a fixed point across
// the whole set — that's Saturate's job once the watch index is built —
// it only removes the redundancy that's visible before any scheduling
// has happened. Each source gets one simplify.QueueUsing compaction pass
// over the rest of the set, which itself drives every individual target
// to its own fixed point against that one source.
func Run(eqs []*equation.Equation, limits reduce.Limits) (out []*equation.Equation, conflict *equation.Equation) {
	live := make([]*equation.Equation, len(eqs))
	copy(live, eqs)

	for i := 0; i < len(live); i++ {
		src := live[i]
		if src == nil || src.IsTrivial() || src.State == equation.Solved {
			continue
		}
		live, _ = simplify.QueueUsing(live, src, limits)
		for _, eq := range live {
			if eq.IsConflict() && conflict == nil {
				conflict = eq
			}
		}
		if conflict != nil {
			break
		}
	}

	out = make([]*equation.Equation, 0, len(live))
	for _, eq := range live {
		if eq == nil || eq.IsTrivial() {
			continue
		}
		out = append(out, eq)
	}
	return out, conflict
}
