package poly

// monomial is a square-free product of variables (GF(2) boolean ring, so
// x*x=x — no exponents above 1), stored sorted ascending by VarID. The
// empty monomial represents the constant term 1.
type monomial []VarID

func monomialLess(a, b monomial) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func monomialEqual(a, b monomial) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func monomialContains(t monomial, v VarID) bool {
	for _, x := range t {
		if x == v {
			return true
		}
	}
	return false
}

// monomialWithout returns t with v removed (t must contain v exactly once).
func monomialWithout(t monomial, v VarID) monomial {
	out := make(monomial, 0, len(t)-1)
	for _, x := range t {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// monomialUnion multiplies two monomials: the idempotent (square-free)
// union of their variables, reflecting x*x=x in the Boolean ring.
func monomialUnion(a, b monomial) monomial {
	seen := make(map[VarID]struct{}, len(a)+len(b))
	out := make(monomial, 0, len(a)+len(b))
	for _, v := range a {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	for _, v := range b {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sortVarIDs(out)
	return out
}

// canonicalize sorts terms and cancels pairs of equal monomials (XOR sum
// over GF(2): a monomial appearing an even number of times vanishes, an
// odd number of times survives once).
func canonicalize(terms []monomial) []monomial {
	sortTerms(terms)
	out := make([]monomial, 0, len(terms))
	i := 0
	for i < len(terms) {
		j := i
		for j < len(terms) && monomialEqual(terms[i], terms[j]) {
			j++
		}
		if (j-i)%2 == 1 {
			out = append(out, terms[i])
		}
		i = j
	}
	return out
}

func sortTerms(terms []monomial) {
	// insertion sort is fine: these polynomials are small (toy-sized
	// equation systems), and a stable simple sort keeps canonicalize's
	// run-length cancellation easy to reason about.
	for i := 1; i < len(terms); i++ {
		for j := i; j > 0 && monomialLess(terms[j], terms[j-1]); j-- {
			terms[j], terms[j-1] = terms[j-1], terms[j]
		}
	}
}
