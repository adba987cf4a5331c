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

type scheduleGenerator interface {
	Generate(ctx context.Context, cfg models.Configuration) (models.Timetable, error)
}

// ScheduleHandler exposes the timetable generation endpoint.
type ScheduleHandler struct {
	service scheduleGenerator
}

// NewScheduleHandler constructs the handler.
func NewScheduleHandler(svc *service.ScheduleGeneratorService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// Solve godoc
// @Summary Generate a conflict-free timetable proposal
// @Tags Scheduler
// @Accept json
// @Produce json
// @Param payload body dto.ScheduleRequest true "Configuration payload"
// @Success 200 {object} response.Envelope
// @Router /schedule [post]
func (h *ScheduleHandler) Solve(c *gin.Context) {
	var req dto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule payload"))
		return
	}

	timetable, err := h.service.Generate(c.Request.Context(), req.ToConfiguration())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.FromTimetable(timetable), nil)
}
