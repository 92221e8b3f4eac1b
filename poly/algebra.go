package poly

import "errors"

// ErrMemOut is the distinguishable memory-exhaustion failure condition
// the algebra contract promises (spec §6). It surfaces from Guard, which
// recovers the internal panic a Manager raises once its node budget is
// exceeded — the Go analogue of the original's
// "catch (pdd_manager::mem_out)".
var ErrMemOut = errors.New("poly: manager exceeded its node budget")

// Guard runs f, converting a Manager mem-out panic into ErrMemOut. Any
// other panic propagates unchanged. Callers reducing/superposing/adding
// under a node budget should wrap the call site in Guard.
func Guard(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(memOutPanic); ok {
				err = ErrMemOut
				return
			}
			panic(r)
		}
	}()
	f()
	return nil
}

// Reduce rewrites p using q (spec §6's reduce(p, q) → p'), returning p
// unchanged if no reduction applies. A reduction applies only when q is a
// usable rewrite rule for its own leading variable v = q.Var() — that is,
// q is in "solved form" (q.Hi() is the constant 1, so q says v = q.Lo()).
// Substituting eliminates v from p entirely in one step.
//
// This is a deliberate simplification of general multivariate polynomial
// division (see DESIGN.md): every worked example in spec §8 reduces
// against equations that are linear in their own leading variable, which
// is exactly the case this implements.
func Reduce(p, q Poly) Poly {
	if p.IsVal() || q.IsVal() {
		return p
	}
	v := q.Var()
	if !p.hasVar(v) {
		return p
	}
	qHi := q.Hi()
	if !qHi.isOne() {
		return p
	}
	qLo := q.Lo()
	a, b := p.splitOn(v)
	return b.Add(a.Mul(qLo))
}

// TrySpoly computes the S-polynomial of p and q when their leading terms
// overlap — here, when they share the same leading variable. Returns
// (r, true) with r = hi(q)*lo(p) + hi(p)*lo(q), which always cancels the
// shared leading variable (spec §6's try_spoly).
func TrySpoly(p, q Poly) (Poly, bool) {
	if p.IsVal() || q.IsVal() {
		return Poly{}, false
	}
	if p.Var() != q.Var() {
		return Poly{}, false
	}
	hiP, loP := p.Hi(), p.Lo()
	hiQ, loQ := q.Hi(), q.Lo()
	r := hiQ.Mul(loP).Add(hiP.Mul(loQ))
	return r, true
}

// DifferentLeadingTerm reports whether p's leading term differs from
// old's — true whenever exactly one of the two is constant, or both are
// non-constant with different leading variables.
func DifferentLeadingTerm(p, old Poly) bool {
	if p.IsVal() != old.IsVal() {
		return true
	}
	if p.IsVal() {
		return false
	}
	return p.Var() != old.Var()
}

// IsTooComplex applies the complexity-guard heuristic the core consults
// before committing a reduction or superposition result (spec §4.3/§4.6):
// too many monomials, or too high a degree.
func IsTooComplex(p Poly, maxSize, maxDegree int) bool {
	if maxSize > 0 && p.TreeSize() > maxSize {
		return true
	}
	if maxDegree > 0 && p.Degree() > maxDegree {
		return true
	}
	return false
}
