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
	appErrors "github.com/ankei1026/schedai-go/pkg/errors"
)

type scheduleGeneratorMock struct {
	captured models.Configuration
	err      error
}

func (m *scheduleGeneratorMock) Generate(ctx context.Context, cfg models.Configuration) (models.Timetable, error) {
	m.captured = cfg
	if m.err != nil {
		return models.Timetable{}, m.err
	}
	return models.Timetable{Instances: []models.ScheduledInstance{{Section: "A", SubjectCode: "MATH101"}}}, nil
}

func TestScheduleHandlerSolveSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &scheduleGeneratorMock{}
	handler := &ScheduleHandler{service: mockSvc}
	payload := []byte(`{"sections":["A"],"subjects":[{"code":"MATH101","title":"Math","durationHours":1}]}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/schedule", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Solve(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"A"}, mockSvc.captured.Sections)
}

func TestScheduleHandlerSolveRejectsMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := &ScheduleHandler{service: &scheduleGeneratorMock{}}
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/schedule", bytes.NewReader([]byte(`{"sections":`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Solve(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleHandlerSolvePropagatesNoFeasibleSchedule(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &scheduleGeneratorMock{err: appErrors.Clone(appErrors.ErrNoFeasibleSchedule, "no teacher")}
	handler := &ScheduleHandler{service: mockSvc}
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/schedule", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Solve(c)

	require.Equal(t, appErrors.ErrNoFeasibleSchedule.Status, w.Code)
}
