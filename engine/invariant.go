package engine

import (
	"fmt"

	"github.com/tahina-pro/z3/equation"
	"github.com/tahina-pro/z3/poly"
)

// checkInvariants is C9: a debug-mode structural check of the queues and
// watch index, covering spec §3's five structural invariants plus the
// head-variable rule. It returns the first violation found, or nil.
// Callers that want the check to run in production would gate the call
// on e.cfg.VerboseTrace or a similar debug switch — it is deliberately
// not wired into the hot path of step(), matching spec §4.10's "when
// enabled" framing.
func (e *Engine) checkInvariants() error {
	for _, state := range []equation.State{equation.ToSimplify, equation.Processed, equation.Solved} {
		slice := e.queues.Slice(state)
		for i, eq := range slice {
			if eq.State != state {
				return fmt.Errorf("engine: equation in %s queue carries State=%s", state, eq.State)
			}
			if eq.Idx != i {
				return fmt.Errorf("engine: equation in %s queue at position %d carries Idx=%d", state, i, eq.Idx)
			}
			if state != equation.Solved && eq.P.IsVal() && !eq.P.IsZero() {
				return fmt.Errorf("engine: non-solved equation in %s carries a nonzero constant", state)
			}
		}
	}

	heads := map[poly.VarID]bool{}
	for _, eq := range e.queues.Slice(equation.Solved) {
		if !eq.IsSolvedForm() {
			continue
		}
		v := eq.P.Var()
		if heads[v] {
			return fmt.Errorf("engine: head variable %d claimed by more than one solved equation", v)
		}
		heads[v] = true
	}
	for _, state := range []equation.State{equation.ToSimplify, equation.Processed} {
		for _, eq := range e.queues.Slice(state) {
			for _, v := range eq.P.FreeVars() {
				if heads[v] {
					return fmt.Errorf("engine: %s equation mentions solved head variable %d", state, v)
				}
			}
		}
	}

	for _, eq := range e.queues.Slice(equation.ToSimplify) {
		v := eq.P.Var()
		count := 0
		for _, it := range e.watchIdx.Items(v) {
			if it == eq {
				count++
			}
		}
		if count != 1 {
			return fmt.Errorf("engine: to-simplify equation watching var %d appears %d time(s) in its watch bucket, want 1", v, count)
		}
	}

	for _, v := range e.mgr.Level2Var() {
		for _, it := range e.watchIdx.Items(v) {
			if it.State == equation.Processed {
				return fmt.Errorf("engine: processed equation found in watch bucket for var %d", v)
			}
		}
	}

	return nil
}
