package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ankei1026/schedai-go/internal/models"
	"github.com/ankei1026/schedai-go/internal/service"
)

type loadAssignerMock struct {
	captured service.AssignRequest
}

func (m *loadAssignerMock) Assign(ctx context.Context, req service.AssignRequest) ([]models.Assignment, error) {
	m.captured = req
	return []models.Assignment{{CourseID: "c1", InstructorID: "i1"}}, nil
}

func TestLoadAssignerHandlerAssignSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &loadAssignerMock{}
	handler := &LoadAssignerHandler{service: mockSvc}
	payload := []byte(`{"courses":[{"id":"c1","units":3,"deptId":"CS"}],"instructors":[{"id":"i1","deptId":"CS","maxLoad":12}]}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/assign-courses", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Assign(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mockSvc.captured.Courses, 1)
}

func TestLoadAssignerHandlerAssignRejectsMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := &LoadAssignerHandler{service: &loadAssignerMock{}}
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/assign-courses", bytes.NewReader([]byte(`{"courses":`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Assign(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
