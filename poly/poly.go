package poly

import (
	"sort"
	"strings"
)

// Poly is a polynomial value over GF(2), expressed as the set of
// monomials summing (xor-ing) to it. It is a small value type — like the
// teacher's lit.Lit — backed by its owning Manager, not a pointer into a
// mutable node graph; "mutating" an equation's polynomial means
// reassigning the Equation's Poly field to a newly computed value.
type Poly struct {
	m     *Manager
	terms []monomial
}

// IsZero reports whether p is the additive identity.
func (p Poly) IsZero() bool { return len(p.terms) == 0 }

// IsVal reports whether p is a constant (0 or 1) — the contract's is_val.
func (p Poly) IsVal() bool {
	return len(p.terms) == 0 || (len(p.terms) == 1 && len(p.terms[0]) == 0)
}

// isOne reports whether p is exactly the constant 1.
func (p Poly) isOne() bool {
	return len(p.terms) == 1 && len(p.terms[0]) == 0
}

// Var returns the leading variable of p — the variable present in p with
// the lowest level (topmost) in the Manager's ordering. Panics if
// !p.IsVal() is false (i.e. if p is constant); callers must check IsVal.
func (p Poly) Var() VarID {
	return p.m.topVar(p.terms)
}

// Hi returns the sub-polynomial of monomials containing Var(p), with that
// variable stripped out — p's "coefficient" of its own leading variable.
func (p Poly) Hi() Poly {
	v := p.Var()
	var hiTerms []monomial
	for _, t := range p.terms {
		if monomialContains(t, v) {
			hiTerms = append(hiTerms, monomialWithout(t, v))
		}
	}
	return Poly{m: p.m, terms: hiTerms}
}

// Lo returns the sub-polynomial of monomials not containing Var(p).
func (p Poly) Lo() Poly {
	v := p.Var()
	var loTerms []monomial
	for _, t := range p.terms {
		if !monomialContains(t, v) {
			loTerms = append(loTerms, t)
		}
	}
	return Poly{m: p.m, terms: loTerms}
}

// TreeSize is the number of monomials summing to p — this concrete
// algebra keeps no shared node DAG (see DESIGN.md), so the contract's
// tree_size is measured directly against the monomial representation.
func (p Poly) TreeSize() int { return len(p.terms) }

// Degree returns the maximum monomial length (total degree) in p.
func (p Poly) Degree() int {
	max := 0
	for _, t := range p.terms {
		if len(t) > max {
			max = len(t)
		}
	}
	return max
}

// FreeVars returns the distinct variables appearing anywhere in p.
func (p Poly) FreeVars() []VarID {
	seen := map[VarID]struct{}{}
	var out []VarID
	for _, t := range p.terms {
		for _, v := range t {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				out = append(out, v)
			}
		}
	}
	sortVarIDs(out)
	return out
}

// hasVar reports whether v appears in any monomial of p.
func (p Poly) hasVar(v VarID) bool {
	for _, t := range p.terms {
		if monomialContains(t, v) {
			return true
		}
	}
	return false
}

// splitOn decomposes p with respect to an arbitrary variable v (not
// necessarily p's leading variable): p = v*coeff + rest.
func (p Poly) splitOn(v VarID) (coeff, rest Poly) {
	var coeffTerms, restTerms []monomial
	for _, t := range p.terms {
		if monomialContains(t, v) {
			coeffTerms = append(coeffTerms, monomialWithout(t, v))
		} else {
			restTerms = append(restTerms, t)
		}
	}
	return Poly{m: p.m, terms: coeffTerms}, Poly{m: p.m, terms: restTerms}
}

// Add returns p+q (xor of monomial sets).
func (p Poly) Add(q Poly) Poly {
	merged := make([]monomial, 0, len(p.terms)+len(q.terms))
	merged = append(merged, p.terms...)
	merged = append(merged, q.terms...)
	out := canonicalize(merged)
	p.m.charge(len(out))
	return Poly{m: p.m, terms: out}
}

// Mul returns p*q, distributing over monomials with idempotent
// (square-free) variable union and xor-canceling the result.
func (p Poly) Mul(q Poly) Poly {
	p.m.charge(len(p.terms) * len(q.terms))
	products := make([]monomial, 0, len(p.terms)*len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			products = append(products, monomialUnion(a, b))
		}
	}
	return Poly{m: p.m, terms: canonicalize(products)}
}

// Equal reports whether p and q are the same polynomial value.
func (p Poly) Equal(q Poly) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if !monomialEqual(p.terms[i], q.terms[i]) {
			return false
		}
	}
	return true
}

// Manager returns the Poly's owning Manager.
func (p Poly) Manager() *Manager { return p.m }

// String renders p using the Manager's registered variable names, terms
// sorted by degree then by variable registration order for stable
// output.
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	terms := make([]monomial, len(p.terms))
	copy(terms, p.terms)
	sort.Slice(terms, func(i, j int) bool { return monomialLess(terms[i], terms[j]) })

	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		if len(t) == 0 {
			parts = append(parts, "1")
			continue
		}
		names := make([]string, len(t))
		for i, v := range t {
			names[i] = p.m.Name(v)
		}
		parts = append(parts, strings.Join(names, "*"))
	}
	return strings.Join(parts, " + ")
}
