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

type conflictCheckerMock struct {
	captured service.ConflictCheckRequest
}

func (m *conflictCheckerMock) Check(ctx context.Context, req service.ConflictCheckRequest) (models.ConflictReport, error) {
	m.captured = req
	return models.ConflictReport{Type: models.ConflictNone}, nil
}

func TestConflictHandlerCheckSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &conflictCheckerMock{}
	handler := &ConflictHandler{service: mockSvc}
	payload := []byte(`{"candidate":{"academicYearId":"2026","trimesterId":"T1","roomId":"R1","instructorId":"I1","days":["Monday"],"startTime":"09:00","endTime":"10:00"}}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/check-schedule-conflict", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Check(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "R1", mockSvc.captured.Candidate.RoomID)
}

func TestConflictHandlerCheckRejectsMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := &ConflictHandler{service: &conflictCheckerMock{}}
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/check-schedule-conflict", bytes.NewReader([]byte(`{"candidate":`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Check(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
