// Package mipbackend implements cpsolver.CpBackend on top of
// github.com/nextmv-io/sdk/mip. Constraint-programming primitives (bounded
// integer domains, optional intervals, no-overlap) are translated into a
// big-M disjunctive mixed-integer encoding, the standard translation for
// branch-and-bound solvers that do not expose a native CP layer.
package mipbackend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nextmv-io/sdk/mip"

	"github.com/ankei1026/schedai-go/internal/cpsolver"
)

// intVar is encoded as one boolean indicator per value in [lo, hi], tied
// together by an exactly-one constraint. Weighted sums of the indicators
// stand in for the variable's value in linear constraints.
type intVar struct {
	name       string
	lo, hi     int
	values     []int
	indicators []mip.Bool
}

func (v *intVar) Name() string { return v.name }

type boolVar struct {
	name string
	v    mip.Bool
}

func (v *boolVar) Name() string { return v.name }

type interval struct {
	name     string
	start    *intVar
	duration int
	presence *boolVar // nil for a mandatory interval
}

func (iv *interval) Name() string { return iv.name }

// Backend is a single CP model instance. It is not safe for concurrent
// construction; build the model on one goroutine, then call Solve.
type Backend struct {
	model mip.Model

	mu        sync.Mutex
	intVars   map[string]*intVar
	boolVars  map[string]*boolVar
	intervals map[string]*interval
}

// New builds an empty backend around a fresh minimization model.
func New() *Backend {
	m := mip.NewModel()
	m.Objective().SetMinimize()
	return &Backend{
		model:     m,
		intVars:   map[string]*intVar{},
		boolVars:  map[string]*boolVar{},
		intervals: map[string]*interval{},
	}
}

var _ cpsolver.CpBackend = (*Backend)(nil)

func (b *Backend) NewIntVar(lo, hi int, name string) cpsolver.IntVar {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := hi - lo + 1
	values := make([]int, n)
	indicators := make([]mip.Bool, n)
	for i := 0; i < n; i++ {
		values[i] = lo + i
		indicators[i] = b.model.NewBool()
	}
	exactlyOne := b.model.NewConstraint(mip.Equal, 1.0)
	for _, ind := range indicators {
		exactlyOne.NewTerm(1.0, ind)
	}

	v := &intVar{name: name, lo: lo, hi: hi, values: values, indicators: indicators}
	b.intVars[name] = v
	return v
}

func (b *Backend) NewBoolVar(name string) cpsolver.BoolVar {
	b.mu.Lock()
	defer b.mu.Unlock()

	v := &boolVar{name: name, v: b.model.NewBool()}
	b.boolVars[name] = v
	return v
}

func (b *Backend) NewInterval(start cpsolver.IntVar, duration int, name string) cpsolver.Interval {
	iv := &interval{name: name, start: start.(*intVar), duration: duration}
	b.intervals[name] = iv
	return iv
}

func (b *Backend) NewOptionalInterval(start cpsolver.IntVar, duration int, presence cpsolver.BoolVar, name string) cpsolver.Interval {
	iv := &interval{name: name, start: start.(*intVar), duration: duration, presence: presence.(*boolVar)}
	b.intervals[name] = iv
	return iv
}

// weightedStart adds coef*start (expressed as a sum over the start
// variable's value indicators) to target.
func weightedStart(target interface {
	NewTerm(coefficient float64, variable mip.Bool)
}, coef float64, v *intVar) {
	for i, ind := range v.indicators {
		target.NewTerm(coef*float64(v.values[i]), ind)
	}
}

// AddNoOverlap forbids any pair of (present) intervals from overlapping in
// time, via a big-M disjunction: for each pair a big-M boolean `order`
// selects which interval runs first, and the constraint for the other
// direction is relaxed by M. Optional intervals relax further by M per
// absent side, so an absent interval never constrains its partner.
func (b *Backend) AddNoOverlap(intervals []cpsolver.Interval) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := 0; i < len(intervals); i++ {
		for j := i + 1; j < len(intervals); j++ {
			a := intervals[i].(*interval)
			c := intervals[j].(*interval)
			b.addDisjunction(a, c)
		}
	}
}

func (b *Backend) addDisjunction(a, c *interval) {
	bigM := float64(a.start.hi + a.duration + c.start.hi + c.duration + 1)
	order := b.model.NewBool() // 1 => a runs before c

	relax := 1 // the -M*(1-y) term is always present
	if a.presence != nil {
		relax++
	}
	if c.presence != nil {
		relax++
	}

	// c.start >= a.start + a.duration, relaxed when order=0, a absent, or c absent.
	forward := b.model.NewConstraint(mip.GreaterThanOrEqual, float64(a.duration)-bigM*float64(relax))
	weightedStart(forward, 1.0, c.start)
	weightedStart(forward, -1.0, a.start)
	forward.NewTerm(-bigM, order)
	if a.presence != nil {
		forward.NewTerm(-bigM, a.presence.v)
	}
	if c.presence != nil {
		forward.NewTerm(-bigM, c.presence.v)
	}

	// a.start >= c.start + c.duration, relaxed when order=1, a absent, or c absent.
	// Here the order relaxation is -M*y, which needs no constant offset.
	backward := b.model.NewConstraint(mip.GreaterThanOrEqual, float64(c.duration)-bigM*float64(relax-1))
	weightedStart(backward, 1.0, a.start)
	weightedStart(backward, -1.0, c.start)
	backward.NewTerm(bigM, order)
	if a.presence != nil {
		backward.NewTerm(-bigM, a.presence.v)
	}
	if c.presence != nil {
		backward.NewTerm(-bigM, c.presence.v)
	}
}

func (b *Backend) addLinear(sense mip.Sense, terms []cpsolver.Term, rhs int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c := b.model.NewConstraint(sense, float64(rhs))
	for _, t := range terms {
		switch v := t.Var.(type) {
		case *intVar:
			weightedStart(c, t.Coefficient, v)
		case *boolVar:
			c.NewTerm(t.Coefficient, v.v)
		default:
			panic(fmt.Sprintf("mipbackend: unsupported term variable %T", t.Var))
		}
	}
}

func (b *Backend) AddLinearEq(terms []cpsolver.Term, rhs int) {
	b.addLinear(mip.Equal, terms, rhs)
}

func (b *Backend) AddLinearLE(terms []cpsolver.Term, rhs int) {
	b.addLinear(mip.LessThanOrEqual, terms, rhs)
}

func (b *Backend) Minimize(terms []cpsolver.Term) {
	b.mu.Lock()
	defer b.mu.Unlock()

	obj := b.model.Objective()
	for _, t := range terms {
		switch v := t.Var.(type) {
		case *intVar:
			weightedStart(obj, t.Coefficient, v)
		case *boolVar:
			obj.NewTerm(t.Coefficient, v.v)
		default:
			panic(fmt.Sprintf("mipbackend: unsupported term variable %T", t.Var))
		}
	}
}

// solveAttempt is one portfolio member's outcome.
type solveAttempt struct {
	solution mip.Solution
	err      error
}

// Solve races opts.Workers independent solver attempts against the same
// model, each with its own time budget, and returns the first feasible
// solution. Workers differ only in their time budgets; once a feasible
// solution is returned, the remaining workers' results are discarded.
func (b *Backend) Solve(ctx context.Context, opts cpsolver.SolveOptions) (cpsolver.Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = 8
	}
	limit := opts.TimeLimit
	if limit <= 0 {
		limit = 10 * time.Second
	}

	attemptCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan solveAttempt, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		// Stagger each worker's budget so the portfolio explores the
		// branch-and-bound tree at different depths before bailing out.
		workerLimit := limit + time.Duration(w)*limit/time.Duration(workers+1)
		go func(budget time.Duration) {
			defer wg.Done()
			solver, err := mip.NewSolver(mip.Highs, b.model)
			if err != nil {
				select {
				case results <- solveAttempt{err: err}:
				case <-attemptCtx.Done():
				}
				return
			}
			solution, err := solver.Solve(mip.SolveOptions{Duration: budget})
			select {
			case results <- solveAttempt{solution: solution, err: err}:
			case <-attemptCtx.Done():
			}
		}(workerLimit)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var lastErr error
	for attempt := range results {
		if attempt.err != nil {
			lastErr = attempt.err
			continue
		}
		if attempt.solution == nil {
			continue
		}
		if attempt.solution.IsOptimal() || attempt.solution.IsSubOptimal() {
			cancel()
			return b.extract(attempt.solution, cpsolver.StatusOptimal), nil
		}
	}
	if lastErr != nil {
		return cpsolver.Result{Status: cpsolver.StatusUnknown}, lastErr
	}
	return cpsolver.Result{Status: cpsolver.StatusInfeasible}, nil
}

func (b *Backend) extract(solution mip.Solution, status cpsolver.Status) cpsolver.Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	result := cpsolver.Result{
		Status:    status,
		IntValue:  make(map[string]int, len(b.intVars)),
		BoolValue: make(map[string]bool, len(b.boolVars)),
	}
	for name, v := range b.intVars {
		for i, ind := range v.indicators {
			if solution.Value(ind) >= 0.5 {
				result.IntValue[name] = v.values[i]
				break
			}
		}
	}
	for name, v := range b.boolVars {
		result.BoolValue[name] = solution.Value(v.v) >= 0.5
	}
	return result
}
