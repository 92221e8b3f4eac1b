// Package poly implements the polynomial decision diagram algebra that the
// saturation engine treats as an external contract: multivariate
// polynomials over GF(2) (a Boolean ring, where x*x=x), represented as a
// sum of square-free monomials, decomposed at any variable v into
// v*hi(v) + lo(v) the way a GLOSSARY "polynomial decision diagram" node
// does.
package poly

import "sort"

// VarID identifies a polynomial variable. Dense and zero-based, assigned
// in registration order by a Manager.
type VarID int

// Manager owns the variable ordering and the node-count budget used to
// simulate the algebra's memory-exhaustion signal (see ErrMemOut).
//
// The ordering is fixed at construction and never recomputed internally —
// callers (or a model-guided weighting scheme, per spec §9, which lives
// outside this package) decide it by the order names are registered in.
type Manager struct {
	names      []string
	byName     map[string]VarID
	var2level  map[VarID]int
	level2var  []VarID
	nodeBudget int
	nodeCount  int
}

// NewManager returns a Manager whose variable ordering is exactly the
// order of varNames, highest first (varNames[0] is the topmost variable).
func NewManager(varNames ...string) *Manager {
	m := &Manager{
		byName:    make(map[string]VarID, len(varNames)),
		var2level: make(map[VarID]int, len(varNames)),
	}
	for _, n := range varNames {
		m.Var(n)
	}
	return m
}

// Var returns the VarID for name, registering a new variable at the
// bottom of the current ordering if name hasn't been seen before.
func (m *Manager) Var(name string) VarID {
	if v, ok := m.byName[name]; ok {
		return v
	}
	v := VarID(len(m.names))
	m.names = append(m.names, name)
	m.byName[name] = v
	m.var2level[v] = len(m.level2var)
	m.level2var = append(m.level2var, v)
	return v
}

// Name returns the display name registered for v.
func (m *Manager) Name(v VarID) string {
	if int(v) < 0 || int(v) >= len(m.names) {
		return "?"
	}
	return m.names[v]
}

// Level2Var returns the algebra's global variable ordering, index = level,
// value = variable id — the contract's level2var vector (spec §6).
func (m *Manager) Level2Var() []VarID {
	out := make([]VarID, len(m.level2var))
	copy(out, m.level2var)
	return out
}

// NVars returns the number of registered variables.
func (m *Manager) NVars() int { return len(m.names) }

// VarLevel returns v's position in the global ordering (0 = topmost).
func (m *Manager) VarLevel(v VarID) int { return m.var2level[v] }

// SetNodeBudget caps the total number of monomials this Manager will
// charge across Add and Mul results before those operations start
// panicking; Guard converts that panic into ErrMemOut. Zero (the
// default) means unlimited.
func (m *Manager) SetNodeBudget(n int) {
	m.nodeBudget = n
}

func (m *Manager) charge(n int) {
	m.nodeCount += n
	if m.nodeBudget > 0 && m.nodeCount > m.nodeBudget {
		panic(memOutPanic{})
	}
}

// Zero returns the additive identity (the polynomial "0").
func (m *Manager) Zero() Poly { return Poly{m: m} }

// One returns the multiplicative identity (the constant polynomial "1").
func (m *Manager) One() Poly { return Poly{m: m, terms: []monomial{{}}} }

// VarPoly returns the degree-1 polynomial consisting of the single
// variable v.
func (m *Manager) VarPoly(v VarID) Poly {
	return Poly{m: m, terms: []monomial{{v}}}
}

// topVar returns the variable with the lowest level (topmost in the
// ordering) among those appearing in terms. Panics if terms is empty or
// constant-only — callers must check IsVal first.
func (m *Manager) topVar(terms []monomial) VarID {
	best := VarID(-1)
	bestLevel := len(m.level2var) + 1
	for _, t := range terms {
		for _, v := range t {
			if lvl := m.var2level[v]; lvl < bestLevel {
				bestLevel = lvl
				best = v
			}
		}
	}
	if best < 0 {
		panic("poly: topVar called on a constant polynomial")
	}
	return best
}

// memOutPanic is the internal panic value Guard recovers into ErrMemOut.
type memOutPanic struct{}

// sortVarIDs sorts a slice of VarID ascending in place.
func sortVarIDs(vs []VarID) {
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
}
