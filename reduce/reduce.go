// Package reduce implements C4: applying reduce between one source and
// one target equation, updating the dependency join and reporting
// whether the target's leading term changed — grounded on
// original_source's try_simplify_using/simplify_using(dst,src,...) pair.
package reduce

import (
	"github.com/tahina-pro/z3/dep"
	"github.com/tahina-pro/z3/equation"
	"github.com/tahina-pro/z3/poly"
)

// Limits bounds the complexity-guard heuristic consulted by TryReduce.
// Zero fields mean "no limit on that axis" (poly.IsTooComplex's
// convention).
type Limits struct {
	MaxSize   int
	MaxDegree int
}

// Result reports what TryReduce/ForceReduce did.
type Result struct {
	Simplified     bool
	ChangedLeading bool
	// TooComplex is set when the candidate reduction was abandoned
	// because its result exceeded Limits — the target keeps its
	// previous polynomial (spec §4.3).
	TooComplex bool
}

// TryReduce reduces dst using src, consulting the complexity heuristic.
// If src is dst, it's a no-op. ChangedLeading is set only when dst was
// already in the Processed state and the reduction changed its leading
// term.
func TryReduce(dst, src *equation.Equation, limits Limits) Result {
	if src == dst {
		return Result{}
	}
	r := poly.Reduce(dst.P, src.P)
	if r.Equal(dst.P) {
		return Result{}
	}
	if poly.IsTooComplex(r, limits.MaxSize, limits.MaxDegree) {
		return Result{TooComplex: true}
	}
	changedLeading := dst.State == equation.Processed && poly.DifferentLeadingTerm(r, dst.P)
	dst.P = r
	dst.Dep = dep.Join(dst.Dep, src.Dep)
	return Result{Simplified: true, ChangedLeading: changedLeading}
}

// ForceReduce performs the same mutation as TryReduce but without
// consulting the complexity heuristic — used when reducing
// pre-committed equations (spec §4.3's second entry point).
func ForceReduce(dst, src *equation.Equation) Result {
	if src == dst {
		return Result{}
	}
	r := poly.Reduce(dst.P, src.P)
	changedLeading := dst.State == equation.Processed && poly.DifferentLeadingTerm(r, dst.P)
	if r.Equal(dst.P) {
		return Result{}
	}
	dst.P = r
	dst.Dep = dep.Join(dst.Dep, src.Dep)
	return Result{Simplified: true, ChangedLeading: changedLeading}
}
