package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankei1026/schedai-go/internal/dto"
	"github.com/ankei1026/schedai-go/internal/models"
	"github.com/ankei1026/schedai-go/internal/service"
	appErrors "github.com/ankei1026/schedai-go/pkg/errors"
	"github.com/ankei1026/schedai-go/pkg/response"
)

type conflictChecker interface {
	Check(ctx context.Context, req service.ConflictCheckRequest) (models.ConflictReport, error)
}

// ConflictHandler exposes the schedule conflict check endpoint.
type ConflictHandler struct {
	service conflictChecker
}

// NewConflictHandler constructs the handler.
func NewConflictHandler(svc *service.ConflictService) *ConflictHandler {
	return &ConflictHandler{service: svc}
}

// Check godoc
// @Summary Check a candidate schedule record for room/instructor/policy conflicts
// @Tags Scheduler
// @Accept json
// @Produce json
// @Param payload body dto.ConflictRequest true "Candidate and existing records payload"
// @Success 200 {object} response.Envelope
// @Router /check-schedule-conflict [post]
func (h *ConflictHandler) Check(c *gin.Context) {
	var req dto.ConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid conflict check payload"))
		return
	}

	report, err := h.service.Check(c.Request.Context(), req.ToServiceRequest())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report, nil)
}
