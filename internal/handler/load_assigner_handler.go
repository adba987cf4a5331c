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

type loadAssigner interface {
	Assign(ctx context.Context, req service.AssignRequest) ([]models.Assignment, error)
}

// LoadAssignerHandler exposes the course-load assignment endpoint.
type LoadAssignerHandler struct {
	service loadAssigner
}

// NewLoadAssignerHandler constructs the handler.
func NewLoadAssignerHandler(svc *service.LoadAssignerService) *LoadAssignerHandler {
	return &LoadAssignerHandler{service: svc}
}

// Assign godoc
// @Summary Assign courses to instructors within department and load bounds
// @Tags Scheduler
// @Accept json
// @Produce json
// @Param payload body dto.AssignRequest true "Courses and instructors payload"
// @Success 200 {object} response.Envelope
// @Router /assign-courses [post]
func (h *LoadAssignerHandler) Assign(c *gin.Context) {
	var req dto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assign payload"))
		return
	}

	assignments, err := h.service.Assign(c.Request.Context(), req.ToServiceRequest())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.AssignResponse{Assignments: assignments}, nil)
}
