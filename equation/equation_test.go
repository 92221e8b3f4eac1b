package equation

import (
	"testing"

	"github.com/tahina-pro/z3/dep"
	"github.com/tahina-pro/z3/poly"
)

func TestNewStartsToSimplify(t *testing.T) {
	m := poly.NewManager("x")
	eq := New(m.VarPoly(m.Var("x")), dep.New())

	if eq.State != ToSimplify {
		t.Fatalf("State = %v, want ToSimplify", eq.State)
	}
}

func TestIsSolvedFormRequiresConstantHi(t *testing.T) {
	m := poly.NewManager("x", "y")
	x, y := m.Var("x"), m.Var("y")

	solved := New(m.VarPoly(x).Add(m.VarPoly(y)), dep.New())
	if !solved.IsSolvedForm() {
		t.Fatalf("expected x+y to be solved form (Hi=1)")
	}

	notSolved := New(m.VarPoly(x).Mul(m.VarPoly(y)).Add(m.VarPoly(y)), dep.New())
	if notSolved.IsSolvedForm() {
		t.Fatalf("expected xy+y not to be solved form (Hi=y, not constant)")
	}

	constant := New(m.One(), dep.New())
	if constant.IsSolvedForm() {
		t.Fatalf("a constant polynomial is never in solved form")
	}
}

func TestIsTrivialAndIsConflict(t *testing.T) {
	m := poly.NewManager("x")

	zero := New(m.Zero(), dep.New())
	if !zero.IsTrivial() {
		t.Fatalf("expected the zero polynomial to be trivial")
	}
	if zero.IsConflict() {
		t.Fatalf("the zero polynomial is not a conflict")
	}

	one := New(m.One(), dep.New())
	if one.IsTrivial() {
		t.Fatalf("the constant 1 is not trivial")
	}
	if !one.IsConflict() {
		t.Fatalf("expected the constant 1 to be a conflict")
	}

	x := New(m.VarPoly(m.Var("x")), dep.New())
	if x.IsTrivial() || x.IsConflict() {
		t.Fatalf("a non-constant polynomial is neither trivial nor a conflict")
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		ToSimplify: "to_simplify",
		Processed:  "processed",
		Solved:     "solved",
		State(99):  "unknown",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Fatalf("State(%d).String() = %q, want %q", s, got, want)
		}
	}
}
