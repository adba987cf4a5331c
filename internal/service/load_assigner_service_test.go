package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ankei1026/schedai-go/internal/models"
)

func TestLoadAssignerServiceAssignBalancesLoad(t *testing.T) {
	svc := NewLoadAssignerService(nil, nil, nil, nil, LoadAssignerConfig{})

	req := AssignRequest{
		Courses: []models.Course{
			{ID: "c1", Units: 3, DeptID: "CS"},
			{ID: "c2", Units: 3, DeptID: "CS"},
		},
		Instructors: []models.Instructor{
			{ID: "i1", DeptID: "CS", MaxLoad: 12},
			{ID: "i2", DeptID: "CS", MaxLoad: 12},
		},
	}

	assignments, err := svc.Assign(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, assignments, 2)
}

func TestLoadAssignerServiceAssignRejectsEmptyPayload(t *testing.T) {
	svc := NewLoadAssignerService(nil, nil, nil, nil, LoadAssignerConfig{})

	_, err := svc.Assign(context.Background(), AssignRequest{})
	require.Error(t, err)
}

func TestLoadAssignerServiceAssignInfeasible(t *testing.T) {
	svc := NewLoadAssignerService(nil, nil, nil, nil, LoadAssignerConfig{})

	req := AssignRequest{
		Courses: []models.Course{
			{ID: "c1", Units: 6, DeptID: "CS"},
			{ID: "c2", Units: 6, DeptID: "CS"},
		},
		Instructors: []models.Instructor{
			{ID: "i1", DeptID: "CS", MaxLoad: 5},
		},
	}

	_, err := svc.Assign(context.Background(), req)
	require.Error(t, err)
}
