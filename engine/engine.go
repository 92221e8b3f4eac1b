// Package engine implements C8 (the saturation driver, its Config, and
// the public API) and C9 (the invariant checker), grounded on the
// teacher's Solver struct shape (config+logger+stats fields threaded
// through one owning type) and on original_source/pdd_solver.cpp's
// solver::saturate/step/scoped_process/init_saturate.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/unicode/norm"

	"github.com/tahina-pro/z3/config"
	"github.com/tahina-pro/z3/dep"
	"github.com/tahina-pro/z3/equation"
	"github.com/tahina-pro/z3/poly"
	"github.com/tahina-pro/z3/prepass"
	"github.com/tahina-pro/z3/queue"
	"github.com/tahina-pro/z3/reduce"
	"github.com/tahina-pro/z3/schedule"
	"github.com/tahina-pro/z3/simplify"
	"github.com/tahina-pro/z3/superpose"
	"github.com/tahina-pro/z3/watch"
)

// Engine is the saturation driver: the sole owner of every equation it
// holds between Add and Reset (spec §3).
type Engine struct {
	mgr      *poly.Manager
	cfg      *config.Config
	queues   *queue.Queues
	watchIdx *watch.Index
	sched    *schedule.Scheduler
	conflict *equation.Equation
	stats    Stats

	watchInit bool
}

// New returns an Engine over mgr's algebra, bounded by cfg. A nil cfg
// falls back to config.New()'s defaults.
func New(mgr *poly.Manager, cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.New()
	}
	return &Engine{
		mgr:      mgr,
		cfg:      cfg,
		queues:   queue.New(),
		watchIdx: watch.New(),
	}
}

func (e *Engine) limits() reduce.Limits {
	return reduce.Limits{MaxSize: e.cfg.ComplexityMaxSize, MaxDegree: e.cfg.ComplexityMaxDegree}
}

func (e *Engine) logf(format string, args ...any) {
	if e.cfg.VerboseTrace && e.cfg.Logger != nil {
		e.cfg.Logger.Printf(format, args...)
	}
}

// Add enqueues p=0 with provenance d (spec §4.8). A zero polynomial is a
// no-op; a nonzero constant sets the conflict witness immediately
// without ever touching the watch index.
func (e *Engine) Add(p poly.Poly, d dep.Token) *equation.Equation {
	if p.IsZero() {
		return nil
	}
	return e.enqueue(equation.New(p, d))
}

// enqueue is Add's logic minus the caller-supplied (p, d) construction,
// shared with addDerived (superposition results already carry a joined
// dependency token).
func (e *Engine) enqueue(eq *equation.Equation) *equation.Equation {
	e.stats.observe(eq.P.Degree(), eq.P.TreeSize())
	if eq.IsConflict() {
		if e.conflict == nil {
			e.conflict = eq
			e.logf("conflict set: %s", eq.P)
		}
		return eq
	}
	e.queues.Push(equation.ToSimplify, eq)
	if e.watchInit {
		e.watchIdx.Add(eq)
		e.sched.Raise(e.mgr.VarLevel(eq.P.Var()))
	}
	return eq
}

func (e *Engine) addDerived(eq *equation.Equation) {
	if eq.P.IsZero() {
		return
	}
	e.enqueue(eq)
}

// initSaturate copies the algebra's variable ordering, rebuilds the
// watch index from the current to-simplify queue, and resets the
// scheduler's high-water mark — original_source's init_saturate, called
// by every Saturate call that reaches the step loop, right after the
// pre-pass (the Open Question resolution recorded in DESIGN.md); a call
// that finds or already has a conflict returns before it.
func (e *Engine) initSaturate() {
	ordering := e.mgr.Level2Var()
	e.watchIdx.Reset()
	for _, eq := range e.queues.Slice(equation.ToSimplify) {
		e.watchIdx.Add(eq)
	}
	if e.sched == nil {
		e.sched = schedule.New(e.watchIdx, ordering)
	} else {
		e.sched.Reset(ordering)
	}
	e.watchInit = true
}

// done is the termination predicate of spec §4.9.
func (e *Engine) done() bool {
	if e.conflict != nil {
		return true
	}
	if e.cfg.EqsThreshold > 0 && e.queues.Len(equation.ToSimplify)+e.queues.Len(equation.Processed) >= e.cfg.EqsThreshold {
		return true
	}
	if e.cfg.MaxSteps > 0 && e.stats.Steps > e.cfg.MaxSteps {
		return true
	}
	return false
}

// Saturate runs the saturation loop to a fixed point or to a configured
// bound (spec §4.9). It is idempotent on repeated calls with nothing
// added in between. A memory-exhaustion signal from the algebra layer
// (poly.ErrMemOut) is recovered: the watch index is cleared and the
// error is returned, but the queues remain intact and a subsequent
// Saturate call rebuilds the watch index from scratch.
func (e *Engine) Saturate(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if e.conflict != nil {
		return nil
	}

	filtered, conflict := prepass.Run(e.queues.Slice(equation.ToSimplify), e.limits())
	e.queues.ReplaceAll(equation.ToSimplify, filtered)
	if conflict != nil {
		e.conflict = conflict
		e.logf("conflict set during pre-pass: %s", conflict.P)
		return nil
	}

	e.initSaturate()

	err := poly.Guard(func() {
		for !e.done() {
			if ctx.Err() != nil {
				return
			}
			if !e.step(ctx) {
				return
			}
		}
	})
	if err != nil {
		if errors.Is(err, poly.ErrMemOut) {
			e.watchIdx.Reset()
			e.watchInit = false
			e.logf("memory exhausted, watch index cleared: %v", err)
			return err
		}
		return err
	}
	return nil
}

// step is the driver's inner loop body (spec §4.9). Its commit decision
// is made entirely through the deferred scoped-commit guard so that
// every exit path — normal return, early return, or a panic unwinding
// out of step (e.g. poly.ErrMemOut) — leaves the picked equation in a
// well-formed queue, the Go analogue of original_source's
// scoped_process destructor.
func (e *Engine) step(ctx context.Context) bool {
	e.stats.Steps++
	if ctx.Err() != nil {
		return false
	}
	eq := e.sched.PickNext()
	if eq == nil {
		return false
	}
	e.queues.Pop(eq)

	retired := false
	commitState := equation.Processed
	defer func() {
		if !retired {
			e.queues.Push(commitState, eq)
		}
	}()

	tooComplex := false

	out := simplify.AgainstSet(eq, e.queues.Slice(equation.Processed), e.limits(), func() bool { return ctx.Err() != nil })
	if out.TooComplex {
		tooComplex = true
	}
	if out.Touched {
		e.stats.Simplified++
	}
	if eq.IsTrivial() {
		retired = true
		return true
	}
	if eq.IsConflict() {
		if e.conflict == nil {
			e.conflict = eq
			e.logf("conflict set: %s", eq.P)
		}
		commitState = equation.Solved
		return false
	}

	tooComplex = false

	e.simplifyProcessedAgainst(eq, &tooComplex)
	if e.done() {
		if !tooComplex && eq.IsSolvedForm() {
			commitState = equation.Solved
		}
		return false
	}

	e.superposeAll(eq, &tooComplex)

	e.simplifyWatch(eq, &tooComplex)
	if e.done() {
		if !tooComplex && eq.IsSolvedForm() {
			commitState = equation.Solved
		}
		return false
	}

	if tooComplex {
		e.stats.TooComplex++
		// commitState stays Processed — step 8's "otherwise let the
		// guard's default path push e to processed anyway".
	} else if eq.IsSolvedForm() {
		commitState = equation.Solved
	}
	return true
}

// simplifyProcessedAgainst is C5b specialized to set=processed (spec
// §4.5): a single pass reducing every processed equation against eq,
// retiring trivial results, recording conflicts, and migrating any
// equation whose leading term changed back to to-simplify.
func (e *Engine) simplifyProcessedAgainst(eq *equation.Equation, tooComplex *bool) {
	targets := append([]*equation.Equation(nil), e.queues.Slice(equation.Processed)...)
	for _, target := range targets {
		if target == eq {
			continue
		}
		r := reduce.TryReduce(target, eq, e.limits())
		if r.TooComplex {
			*tooComplex = true
			continue
		}
		if !r.Simplified {
			continue
		}
		switch {
		case target.IsTrivial():
			e.queues.Pop(target)
		case target.IsConflict():
			if e.conflict == nil {
				e.conflict = target
				e.logf("conflict set: %s", target.P)
			}
			e.queues.Move(target, equation.Solved)
		case r.ChangedLeading:
			e.queues.Move(target, equation.ToSimplify)
			e.watchIdx.Add(target)
			e.sched.Raise(e.mgr.VarLevel(target.P.Var()))
		}
	}
}

// simplifyWatch is spec §4.9's simplify_watch(eq): walk the watch list
// of eq's own leading variable and reduce each watching target by eq,
// migrating targets whose leading variable changed to their new bucket
// and re-heapifying targets that stayed (their simplicity key may have
// changed even though their bucket didn't).
func (e *Engine) simplifyWatch(eq *equation.Equation, tooComplex *bool) {
	v := eq.P.Var()
	targets := e.watchIdx.Items(v)
	for _, target := range targets {
		if target == eq {
			continue
		}
		r := reduce.TryReduce(target, eq, e.limits())
		if r.TooComplex {
			*tooComplex = true
			continue
		}
		if !r.Simplified {
			continue
		}
		switch {
		case target.IsTrivial():
			e.watchIdx.Remove(v, target)
			e.queues.Pop(target)
		case target.IsConflict():
			e.watchIdx.Remove(v, target)
			if e.conflict == nil {
				e.conflict = target
				e.logf("conflict set: %s", target.P)
			}
			e.queues.Move(target, equation.Solved)
		default:
			newVar := target.P.Var()
			if newVar != v {
				// A distinct bucket: migrating here can't alias the
				// list this loop is iterating, since targets is a
				// snapshot taken before any mutation (spec §9's
				// watch-list migration note).
				e.watchIdx.Remove(v, target)
				e.watchIdx.Add(target)
			} else {
				// Same bucket, but target's simplicity key may have
				// changed under reduction — restore the heap invariant.
				e.watchIdx.Fix(v, target)
			}
		}
	}
}

// superposeAll is C6's superpose(eq): forms every S-polynomial of eq
// against the processed set and enqueues the nonzero, non-too-complex
// results.
func (e *Engine) superposeAll(eq *equation.Equation, tooComplex *bool) {
	for _, r := range superpose.All(eq, e.queues.Slice(equation.Processed)) {
		if poly.IsTooComplex(r.P, e.cfg.ComplexityMaxSize, e.cfg.ComplexityMaxDegree) {
			*tooComplex = true
			e.stats.TooComplex++
			continue
		}
		e.addDerived(r)
		e.stats.Superposed++
	}
}

// Equations returns a snapshot of every live equation across all three
// queues.
func (e *Engine) Equations() []*equation.Equation {
	return e.queues.All()
}

// Conflict returns the conflict witness, or nil if none has been found.
func (e *Engine) Conflict() *equation.Equation {
	return e.conflict
}

// Reset releases every equation and resets statistics (spec §6).
func (e *Engine) Reset() {
	e.queues = queue.New()
	e.watchIdx = watch.New()
	e.sched = nil
	e.conflict = nil
	e.watchInit = false
	e.stats = Stats{}
}

// CollectStatistics returns the engine's counters (spec §6).
func (e *Engine) CollectStatistics() Stats {
	return e.stats
}

// Display writes a human-readable dump of every live equation to w,
// normalizing variable-name text through NFC so output is stable
// regardless of the Unicode normalization form caller-supplied variable
// names arrived in.
func (e *Engine) Display(w io.Writer) error {
	for _, eq := range e.queues.All() {
		if err := e.DisplayEquation(w, eq); err != nil {
			return err
		}
	}
	return nil
}

// DisplayEquation writes a single equation's human-readable form to w.
func (e *Engine) DisplayEquation(w io.Writer, eq *equation.Equation) error {
	text := fmt.Sprintf("[%s] %s = 0  (dep: %d label(s))\n", eq.State, eq.P.String(), eq.Dep.Len())
	_, err := io.WriteString(w, norm.NFC.String(text))
	return err
}
