package watch

import "github.com/tahina-pro/z3/equation"

// simplicityHeap is a binary min-heap of to-simplify equations ordered by
// "simplicity" (lower degree, then smaller tree size, wins) — adapted
// from the teacher's order.Order heap (order/order.go: up/down/swap over
// a vars/indices pair keyed by variable activity). Here the heap key is
// poly-simplicity rather than SAT variable activity, and the payload is
// *equation.Equation rather than a bare variable index, but the
// percolate-up/percolate-down shape is carried unchanged.
type simplicityHeap struct {
	items []*equation.Equation
	pos   map[*equation.Equation]int
}

func newSimplicityHeap() *simplicityHeap {
	return &simplicityHeap{pos: make(map[*equation.Equation]int)}
}

func simpler(a, b *equation.Equation) bool {
	da, db := a.P.Degree(), b.P.Degree()
	if da != db {
		return da < db
	}
	return a.P.TreeSize() < b.P.TreeSize()
}

func (h *simplicityHeap) len() int { return len(h.items) }

func (h *simplicityHeap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i]] = i
	h.pos[h.items[j]] = j
}

// up percolates the element at j up, as adopted from the teacher's
// order.Order.up (itself adapted from Go's container/heap).
func (h *simplicityHeap) up(j int) {
	for {
		i := (j - 1) / 2
		if i == j || !simpler(h.items[j], h.items[i]) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

// down percolates the element at i0 down among n live elements.
func (h *simplicityHeap) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 {
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && simpler(h.items[j2], h.items[j1]) {
			j = j2
		}
		if !simpler(h.items[j], h.items[i]) {
			break
		}
		h.swap(i, j)
		i = j
	}
}

func (h *simplicityHeap) push(eq *equation.Equation) {
	h.items = append(h.items, eq)
	h.pos[eq] = len(h.items) - 1
	h.up(len(h.items) - 1)
}

// remove deletes eq from the heap in O(log n), wherever it sits.
func (h *simplicityHeap) remove(eq *equation.Equation) {
	i, ok := h.pos[eq]
	if !ok {
		return
	}
	n := len(h.items) - 1
	if i != n {
		h.swap(i, n)
		h.items = h.items[:n]
		delete(h.pos, eq)
		h.down(i, n)
		h.up(i)
		return
	}
	h.items = h.items[:n]
	delete(h.pos, eq)
}

// fix restores the heap invariant around eq after its simplicity key
// (degree/tree size) may have changed in place — the teacher's
// order.Order exposes the equivalent operation for activity changes on
// a variable already in the heap.
func (h *simplicityHeap) fix(eq *equation.Equation) {
	i, ok := h.pos[eq]
	if !ok {
		return
	}
	h.down(i, len(h.items))
	h.up(i)
}

// popMin removes and returns the simplest equation, or nil if empty.
func (h *simplicityHeap) popMin() *equation.Equation {
	if len(h.items) == 0 {
		return nil
	}
	min := h.items[0]
	h.remove(min)
	return min
}

// snapshot returns a defensive copy of the heap's current contents, so
// callers can iterate while this heap is concurrently mutated by
// Add/Remove for the same variable (spec §9's "snapshot the iteration
// length" alternative to the v'≠v alias check).
func (h *simplicityHeap) snapshot() []*equation.Equation {
	out := make([]*equation.Equation, len(h.items))
	copy(out, h.items)
	return out
}
