package watch

import (
	"testing"

	"github.com/tahina-pro/z3/dep"
	"github.com/tahina-pro/z3/equation"
	"github.com/tahina-pro/z3/poly"
)

func TestAddBucketsByLeadingVariable(t *testing.T) {
	m := poly.NewManager("x", "y", "z")
	x, y, z := m.Var("x"), m.Var("y"), m.Var("z")

	idx := New()
	eqX := equation.New(m.VarPoly(x).Add(m.VarPoly(z)), dep.New())
	eqY := equation.New(m.VarPoly(y).Add(m.VarPoly(z)), dep.New())
	idx.Add(eqX)
	idx.Add(eqY)

	if idx.Len(x) != 1 || idx.Len(y) != 1 {
		t.Fatalf("Len(x)=%d Len(y)=%d, want 1 each", idx.Len(x), idx.Len(y))
	}
	if idx.Empty() {
		t.Fatalf("index should not report empty with two entries")
	}
}

func TestPopSimplestPrefersLowerDegreeThenSmallerTreeSize(t *testing.T) {
	m := poly.NewManager("x", "y", "z", "w")
	x, y, z, w := m.Var("x"), m.Var("y"), m.Var("z"), m.Var("w")

	idx := New()
	bulky := equation.New(m.VarPoly(x).Mul(m.VarPoly(y)).Add(m.VarPoly(z)).Add(m.VarPoly(w)), dep.New())
	simple := equation.New(m.VarPoly(x).Add(m.VarPoly(z)), dep.New())
	idx.Add(bulky)
	idx.Add(simple)

	first := idx.PopSimplest(x)
	if first != simple {
		t.Fatalf("expected the lower-degree equation to pop first")
	}
	second := idx.PopSimplest(x)
	if second != bulky {
		t.Fatalf("expected the bulkier equation to pop second")
	}
	if idx.PopSimplest(x) != nil {
		t.Fatalf("expected a nil pop once the bucket is drained")
	}
}

func TestRemoveDeletesRegardlessOfHeapPosition(t *testing.T) {
	m := poly.NewManager("x", "y", "z")
	x, y, z := m.Var("x"), m.Var("y"), m.Var("z")

	idx := New()
	a := equation.New(m.VarPoly(x).Add(m.VarPoly(y)), dep.New())
	b := equation.New(m.VarPoly(x).Add(m.VarPoly(z)), dep.New())
	idx.Add(a)
	idx.Add(b)

	idx.Remove(x, a)
	if idx.Len(x) != 1 {
		t.Fatalf("Len(x) = %d after Remove, want 1", idx.Len(x))
	}
	items := idx.Items(x)
	if len(items) != 1 || items[0] != b {
		t.Fatalf("expected only b to remain watching x")
	}
}

func TestItemsReturnsADefensiveSnapshot(t *testing.T) {
	m := poly.NewManager("x", "y")
	x, y := m.Var("x"), m.Var("y")

	idx := New()
	a := equation.New(m.VarPoly(x).Add(m.VarPoly(y)), dep.New())
	idx.Add(a)

	snap := idx.Items(x)
	idx.Remove(x, a)

	if len(snap) != 1 || snap[0] != a {
		t.Fatalf("a snapshot taken before Remove must still list a")
	}
	if idx.Len(x) != 0 {
		t.Fatalf("the live index must reflect the Remove")
	}
}

func TestFixRestoresOrderingAfterInPlaceMutation(t *testing.T) {
	m := poly.NewManager("x", "y", "z", "w")
	x, y, z, w := m.Var("x"), m.Var("y"), m.Var("z"), m.Var("w")

	idx := New()
	grows := equation.New(m.VarPoly(x).Add(m.VarPoly(y)), dep.New())
	stays := equation.New(m.VarPoly(x).Mul(m.VarPoly(z)).Add(m.VarPoly(w)), dep.New())
	idx.Add(grows)
	idx.Add(stays)

	// grows starts simpler (degree 1) than stays (degree 2); before any
	// mutation both watch x.
	if idx.Len(x) != 2 {
		t.Fatalf("expected both equations to watch x")
	}

	// Mutate grows in place to become more complex than stays, without
	// changing its leading variable, then Fix it.
	grows.P = m.VarPoly(x).Mul(m.VarPoly(y)).Mul(m.VarPoly(z)).Add(m.VarPoly(w))
	idx.Fix(x, grows)

	first := idx.PopSimplest(x)
	if first != stays {
		t.Fatalf("expected the now-simpler equation to pop first after Fix")
	}
	second := idx.PopSimplest(x)
	if second != grows {
		t.Fatalf("expected the now-bulkier equation to pop second after Fix")
	}
}

func TestResetEmptiesEveryBucket(t *testing.T) {
	m := poly.NewManager("x", "y")
	x, y := m.Var("x"), m.Var("y")

	idx := New()
	idx.Add(equation.New(m.VarPoly(x).Add(m.VarPoly(y)), dep.New()))
	idx.Reset()

	if !idx.Empty() {
		t.Fatalf("expected the index to be empty after Reset")
	}
	if idx.Len(x) != 0 {
		t.Fatalf("expected Len(x) = 0 after Reset, got %d", idx.Len(x))
	}
}
