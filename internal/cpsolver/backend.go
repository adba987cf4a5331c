// Package cpsolver defines the constraint-programming backend abstraction
// used by the timetable solver (C3) and the load assigner (C4). Concrete
// engines live in subpackages (mipbackend).
package cpsolver

import (
	"context"
	"time"
)

// IntVar is an integer decision variable with a bounded domain.
type IntVar interface {
	Name() string
}

// BoolVar is a 0/1 decision variable.
type BoolVar interface {
	Name() string
}

// Interval is a (possibly optional) span [start, start+duration).
type Interval interface {
	Name() string
}

// Term is one coefficient*variable addend of a linear expression.
type Term struct {
	Coefficient float64
	Var         interface{ Name() string }
}

// Status reports the outcome of a solve attempt.
type Status int

const (
	StatusUnknown Status = iota
	StatusOptimal
	StatusFeasible
	StatusInfeasible
	StatusTimeout
)

// SolveOptions bounds a solve attempt.
type SolveOptions struct {
	TimeLimit time.Duration
	Workers   int
}

// Result carries the solved variable assignment, keyed by variable name.
type Result struct {
	Status    Status
	IntValue  map[string]int
	BoolValue map[string]bool
}

// Feasible reports whether the result is usable (OPTIMAL or FEASIBLE).
func (r Result) Feasible() bool {
	return r.Status == StatusOptimal || r.Status == StatusFeasible
}

// CpBackend is the black-box constraint solver contract: integer and
// boolean variables, interval variables (optional or mandatory), a
// no-overlap global constraint, linear equality and less-than-or-equal
// constraints, and a linear minimization objective. See SPEC_FULL.md §9.
type CpBackend interface {
	NewIntVar(lo, hi int, name string) IntVar
	NewBoolVar(name string) BoolVar
	NewInterval(start IntVar, duration int, name string) Interval
	NewOptionalInterval(start IntVar, duration int, presence BoolVar, name string) Interval
	AddNoOverlap(intervals []Interval)
	AddLinearEq(terms []Term, rhs int)
	AddLinearLE(terms []Term, rhs int)
	Minimize(terms []Term)
	Solve(ctx context.Context, opts SolveOptions) (Result, error)
}
