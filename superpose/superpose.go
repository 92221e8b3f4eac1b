// Package superpose implements C6: forming S-polynomials between
// equations that share a leading variable — grounded on
// original_source's solver::superpose(eq1, eq2), whose comment reads
// "let eq1: ab+q=0, and eq2: ac+e=0, then qc-eb=0".
package superpose

import (
	"github.com/tahina-pro/z3/dep"
	"github.com/tahina-pro/z3/equation"
	"github.com/tahina-pro/z3/poly"
)

// Against forms the S-polynomial of eq and target when they share a
// leading variable, returning the new to-simplify equation and true. It
// returns (nil, false) when the two equations don't overlap on a
// leading variable (spec §4.6's precondition).
func Against(eq, target *equation.Equation) (*equation.Equation, bool) {
	if eq == target {
		return nil, false
	}
	r, ok := poly.TrySpoly(eq.P, target.P)
	if !ok {
		return nil, false
	}
	d := dep.Join(eq.Dep, target.Dep)
	return equation.New(r, d), true
}

// All forms every S-polynomial between eq and the members of processed
// that overlap it on a leading variable, skipping results that reduce
// to the zero polynomial (a vacuous consequence, spec §4.6).
func All(eq *equation.Equation, processed []*equation.Equation) []*equation.Equation {
	var out []*equation.Equation
	for _, target := range processed {
		spoly, ok := Against(eq, target)
		if !ok || spoly.P.IsZero() {
			continue
		}
		out = append(out, spoly)
	}
	return out
}
