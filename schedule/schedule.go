// Package schedule implements C7: the level-ascent pick-next loop that
// chooses which to-simplify equation the engine works on next, grounded
// on original_source's solver::pick_next, which scans m_levelp1
// topmost-first for the simplest to-simplify equation at that level.
package schedule

import (
	"github.com/tahina-pro/z3/equation"
	"github.com/tahina-pro/z3/poly"
	"github.com/tahina-pro/z3/watch"
)

// Scheduler tracks the high-water level (original_source's m_levelp1):
// PickNext scans levels 0 through levelPlus1-1 and never a level at or
// past it. The mark starts at the full ordering and only grows (Raise,
// Reset); PickNext does not lower it.
type Scheduler struct {
	idx        *watch.Index
	level2var  []poly.VarID
	levelPlus1 int
}

// New returns a scheduler over idx, using ordering as the level-to-var
// map (as returned by poly.Manager.Level2Var). levelPlus1 starts at
// len(ordering): every level is initially in play.
func New(idx *watch.Index, ordering []poly.VarID) *Scheduler {
	return &Scheduler{idx: idx, level2var: ordering, levelPlus1: len(ordering)}
}

// Raise grows the scheduler's high-water mark to at least level+1, used
// when a newly registered variable sits above any level seen so far.
func (s *Scheduler) Raise(level int) {
	if level+1 > s.levelPlus1 {
		s.levelPlus1 = level + 1
	}
}

// PickNext ascends from level 0 (topmost) up to levelPlus1-1, returning
// the simplest to-simplify equation watching the first non-empty
// level's variable, or nil if every watched bucket below levelPlus1 is
// empty. Level 0 is topmost (poly.Manager.Var assigns levels in
// registration order, 0 = topmost), so ascending here is what makes
// progress happen at the top of the ordering first.
func (s *Scheduler) PickNext() *equation.Equation {
	for level := 0; level < s.levelPlus1; level++ {
		if level >= len(s.level2var) {
			continue
		}
		v := s.level2var[level]
		if eq := s.idx.PopSimplest(v); eq != nil {
			return eq
		}
	}
	return nil
}

// Done reports whether no to-simplify equation remains anywhere in the
// watch index — original_source's done() predicate.
func (s *Scheduler) Done() bool {
	return s.idx.Empty()
}

// Reset restores levelPlus1 to cover the full ordering, used when
// init_saturate rebuilds the watch index from scratch.
func (s *Scheduler) Reset(ordering []poly.VarID) {
	s.level2var = ordering
	s.levelPlus1 = len(ordering)
}
