// Package loadassign implements the load assigner (C4): it assigns each
// Course to exactly one Instructor within its department and minimizes the
// spread between the busiest and the least busy instructor, without
// exceeding any instructor's effective max load.
package loadassign

import (
	"context"
	"fmt"

	"github.com/ankei1026/schedai-go/internal/cpsolver"
	"github.com/ankei1026/schedai-go/internal/models"
	appErrors "github.com/ankei1026/schedai-go/pkg/errors"
)

// Assign builds and solves a MIP model grouping courses by department:
// for each department, one boolean x[c,i] selects the instructor assigned
// to course c; Σ_i x[c,i] = 1; load[i] = Σ_c x[c,i]*units bounded above by
// i.EffectiveMaxLoad(); the objective minimizes max_load - min_load per
// department. Departments with no instructors are skipped: their courses
// simply receive no assignment.
func Assign(ctx context.Context, courses []models.Course, instructors []models.Instructor, backend cpsolver.CpBackend, opts cpsolver.SolveOptions) ([]models.Assignment, error) {
	deduped := models.DedupeInstructors(instructors)

	byDept := map[string][]models.Instructor{}
	for _, instr := range deduped {
		byDept[instr.DeptID] = append(byDept[instr.DeptID], instr)
	}

	coursesByDept := map[string][]models.Course{}
	var deptOrder []string
	seenDept := map[string]bool{}
	for _, c := range courses {
		if !seenDept[c.DeptID] {
			seenDept[c.DeptID] = true
			deptOrder = append(deptOrder, c.DeptID)
		}
		coursesByDept[c.DeptID] = append(coursesByDept[c.DeptID], c)
	}

	type choice struct {
		course     models.Course
		instructor models.Instructor
		selected   cpsolver.BoolVar
	}

	var choices []choice
	loadVars := map[string]cpsolver.IntVar{}

	for _, deptID := range deptOrder {
		deptInstructors := byDept[deptID]
		if len(deptInstructors) == 0 {
			continue // no instructor in this department; courses left unassigned
		}
		deptCourses := coursesByDept[deptID]

		maxPossibleLoad := 0
		for _, c := range deptCourses {
			maxPossibleLoad += c.Units
		}

		loadTerms := map[string][]cpsolver.Term{}
		for _, c := range deptCourses {
			courseChoices := make([]choice, 0, len(deptInstructors))
			oneHot := make([]cpsolver.Term, 0, len(deptInstructors))
			for _, instr := range deptInstructors {
				name := fmt.Sprintf("x_%s_%s", c.ID, instr.ID)
				selected := backend.NewBoolVar(name)
				ch := choice{course: c, instructor: instr, selected: selected}
				courseChoices = append(courseChoices, ch)
				choices = append(choices, ch)
				oneHot = append(oneHot, cpsolver.Term{Coefficient: 1, Var: selected})
				loadTerms[instr.ID] = append(loadTerms[instr.ID], cpsolver.Term{Coefficient: float64(c.Units), Var: selected})
			}
			backend.AddLinearEq(oneHot, 1)
			_ = courseChoices
		}

		for _, instr := range deptInstructors {
			load := backend.NewIntVar(0, maxPossibleLoad, "load_"+instr.ID)
			loadVars[instr.ID] = load
			terms := append(loadTerms[instr.ID], cpsolver.Term{Coefficient: -1, Var: load})
			backend.AddLinearEq(terms, 0)
			backend.AddLinearLE([]cpsolver.Term{{Coefficient: 1, Var: load}}, instr.EffectiveMaxLoad())
		}

		maxLoad := backend.NewIntVar(0, maxPossibleLoad, "maxload_"+deptID)
		minLoad := backend.NewIntVar(0, maxPossibleLoad, "minload_"+deptID)
		for _, instr := range deptInstructors {
			load := loadVars[instr.ID]
			backend.AddLinearLE([]cpsolver.Term{
				{Coefficient: 1, Var: load},
				{Coefficient: -1, Var: maxLoad},
			}, 0)
			backend.AddLinearLE([]cpsolver.Term{
				{Coefficient: -1, Var: load},
				{Coefficient: 1, Var: minLoad},
			}, 0)
		}
		backend.Minimize([]cpsolver.Term{
			{Coefficient: 1, Var: maxLoad},
			{Coefficient: -1, Var: minLoad},
		})
	}

	if len(choices) == 0 {
		return nil, nil
	}

	result, err := backend.Solve(ctx, opts)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrSolverInconsistency.Code, appErrors.ErrSolverInconsistency.Status, "load assignment solver failed")
	}
	if !result.Feasible() {
		return nil, appErrors.Clone(appErrors.ErrCapacityExhausted, "no instructor load assignment satisfies every max-load bound")
	}

	var assignments []models.Assignment
	for _, ch := range choices {
		if result.BoolValue[ch.selected.Name()] {
			assignments = append(assignments, models.Assignment{CourseID: ch.course.ID, InstructorID: ch.instructor.ID})
		}
	}
	return assignments, nil
}
