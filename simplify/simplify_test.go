package simplify

import (
	"testing"

	"github.com/tahina-pro/z3/dep"
	"github.com/tahina-pro/z3/equation"
	"github.com/tahina-pro/z3/poly"
	"github.com/tahina-pro/z3/reduce"
)

func TestUsingQueueReachesFixedPoint(t *testing.T) {
	m := poly.NewManager("x", "y", "z")
	x, y, z := m.Var("x"), m.Var("y"), m.Var("z")

	// dst: x + y, then reduced by (x + z), landing on y + z, which no
	// longer contains x — a second pass against the same src must be a
	// no-op.
	dst := equation.New(m.VarPoly(x).Add(m.VarPoly(y)), dep.New())
	src := equation.New(m.VarPoly(x).Add(m.VarPoly(z)), dep.New())

	out := UsingQueue(dst, src, reduce.Limits{})
	if !out.Touched {
		t.Fatalf("expected at least one reduction")
	}
	want := m.VarPoly(y).Add(m.VarPoly(z))
	if !dst.P.Equal(want) {
		t.Fatalf("dst.P = %s, want %s", dst.P, want)
	}
}

func TestAgainstSetChainsMultipleSources(t *testing.T) {
	m := poly.NewManager("x", "y", "z")
	x, y, z := m.Var("x"), m.Var("y"), m.Var("z")

	// dst: x + y, reduced by (y + 1) to x + 1, then reduced by (x + z)
	// to z + 1 — in this source order the first pass catches both, and
	// the second pass finds nothing more and ends the loop.
	dst := equation.New(m.VarPoly(x).Add(m.VarPoly(y)), dep.New())
	srcY := equation.New(m.VarPoly(y).Add(m.One()), dep.New())
	srcX := equation.New(m.VarPoly(x).Add(m.VarPoly(z)), dep.New())

	out := AgainstSet(dst, []*equation.Equation{srcY, srcX}, reduce.Limits{}, nil)
	if !out.Touched {
		t.Fatalf("expected at least one reduction")
	}
	want := m.VarPoly(z).Add(m.One())
	if !dst.P.Equal(want) {
		t.Fatalf("dst.P = %s, want %s", dst.P, want)
	}
}

func TestAgainstSetStopsOnCancel(t *testing.T) {
	m := poly.NewManager("x", "y")
	x, y := m.Var("x"), m.Var("y")

	dst := equation.New(m.VarPoly(x).Add(m.VarPoly(y)), dep.New())
	src := equation.New(m.VarPoly(x), dep.New())
	before := dst.P

	out := AgainstSet(dst, []*equation.Equation{src}, reduce.Limits{}, func() bool { return true })
	if out.Touched {
		t.Fatalf("expected no reduction once cancel reports true")
	}
	if !dst.P.Equal(before) {
		t.Fatalf("dst.P must be untouched when cancel fires immediately")
	}
}

func TestQueueUsingDropsTrivialResults(t *testing.T) {
	m := poly.NewManager("x", "y")
	x, y := m.Var("x"), m.Var("y")

	eq := equation.New(m.VarPoly(x).Add(m.VarPoly(y)), dep.New())
	other := equation.New(m.VarPoly(x).Add(m.VarPoly(y)), dep.New())
	set := []*equation.Equation{other}

	compacted, out := QueueUsing(set, eq, reduce.Limits{})
	if !out.Touched {
		t.Fatalf("expected the identical equation to reduce to zero")
	}
	if len(compacted) != 0 {
		t.Fatalf("expected the trivial equation to be dropped, got %d remaining", len(compacted))
	}
}

func TestQueueUsingSkipsSolvedAndSelf(t *testing.T) {
	m := poly.NewManager("x", "y", "z")
	x, y, z := m.Var("x"), m.Var("y"), m.Var("z")

	eq := equation.New(m.VarPoly(x), dep.New())
	solved := equation.New(m.VarPoly(y).Add(m.One()), dep.New())
	solved.State = equation.Solved
	other := equation.New(m.VarPoly(x).Add(m.VarPoly(z)), dep.New())

	set := []*equation.Equation{eq, solved, other}
	compacted, out := QueueUsing(set, eq, reduce.Limits{})

	if len(compacted) != 3 {
		t.Fatalf("expected all three equations to survive, got %d", len(compacted))
	}
	if !solved.P.Equal(m.VarPoly(y).Add(m.One())) {
		t.Fatalf("solved equation must not be touched")
	}
	if !out.Touched {
		t.Fatalf("expected other to be reduced against eq")
	}
}

func TestQueueUsingHonorsComplexityGuard(t *testing.T) {
	m := poly.NewManager("x", "y", "z", "w")
	x, y, z, w := m.Var("x"), m.Var("y"), m.Var("z"), m.Var("w")

	eq := equation.New(m.VarPoly(x), dep.New())
	bulky := equation.New(m.VarPoly(x).Mul(m.VarPoly(y)).Add(m.VarPoly(z)).Add(m.VarPoly(w)), dep.New())
	before := bulky.P

	set := []*equation.Equation{bulky}
	_, out := QueueUsing(set, eq, reduce.Limits{MaxSize: 1, MaxDegree: 10})

	if !out.TooComplex {
		t.Fatalf("expected TooComplex under a size-1 limit")
	}
	if !bulky.P.Equal(before) {
		t.Fatalf("too-complex candidate must leave bulky untouched")
	}
}
