package loadassign

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ankei1026/schedai-go/internal/cpsolver"
	"github.com/ankei1026/schedai-go/internal/cpsolver/mipbackend"
	"github.com/ankei1026/schedai-go/internal/models"
)

func TestAssignBalancesLoadAcrossInstructors(t *testing.T) {
	courses := []models.Course{
		{ID: "C1", Units: 3, DeptID: "CS"},
		{ID: "C2", Units: 3, DeptID: "CS"},
		{ID: "C3", Units: 3, DeptID: "CS"},
		{ID: "C4", Units: 3, DeptID: "CS"},
	}
	instructors := []models.Instructor{
		{ID: "I1", UserID: "U1", DeptID: "CS", MaxLoad: 12},
		{ID: "I2", UserID: "U2", DeptID: "CS", MaxLoad: 12},
	}

	backend := mipbackend.New()
	assignments, err := Assign(context.Background(), courses, instructors, backend, cpsolver.SolveOptions{TimeLimit: time.Second, Workers: 2})
	require.NoError(t, err)
	require.Len(t, assignments, 4)

	load := map[string]int{}
	for _, a := range assignments {
		load[a.InstructorID] += 3
	}
	require.Equal(t, 6, load["I1"])
	require.Equal(t, 6, load["I2"])
}

func TestAssignSkipsDepartmentWithNoInstructors(t *testing.T) {
	courses := []models.Course{{ID: "C1", Units: 3, DeptID: "MATH"}}
	backend := mipbackend.New()

	assignments, err := Assign(context.Background(), courses, nil, backend, cpsolver.SolveOptions{})
	require.NoError(t, err)
	require.Empty(t, assignments)
}

func TestAssignDedupesInstructorsByUserID(t *testing.T) {
	courses := []models.Course{{ID: "C1", Units: 3, DeptID: "CS"}}
	instructors := []models.Instructor{
		{ID: "I1", UserID: "U1", DeptID: "CS", MaxLoad: 12},
		{ID: "I1-dup", UserID: "U1", DeptID: "CS", MaxLoad: 12},
	}
	backend := mipbackend.New()

	assignments, err := Assign(context.Background(), courses, instructors, backend, cpsolver.SolveOptions{})
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	require.Equal(t, "I1", assignments[0].InstructorID)
}

func TestAssignInfeasibleWhenMaxLoadTooLow(t *testing.T) {
	courses := []models.Course{
		{ID: "C1", Units: 6, DeptID: "CS"},
		{ID: "C2", Units: 6, DeptID: "CS"},
	}
	instructors := []models.Instructor{{ID: "I1", UserID: "U1", DeptID: "CS", MaxLoad: 5}}

	backend := mipbackend.New()
	_, err := Assign(context.Background(), courses, instructors, backend, cpsolver.SolveOptions{})
	require.Error(t, err)
}
