package dto

import (
	"github.com/ankei1026/schedai-go/internal/models"
	"github.com/ankei1026/schedai-go/internal/service"
)

// ConflictRequest is the wire payload for /api/v1/check-schedule-conflict.
type ConflictRequest struct {
	Candidate models.ScheduleRecord   `json:"candidate" validate:"required"`
	Existing  []models.ScheduleRecord `json:"existing" validate:"dive"`
}

// ToServiceRequest converts the wire request into the service's request shape.
func (r ConflictRequest) ToServiceRequest() service.ConflictCheckRequest {
	return service.ConflictCheckRequest{Candidate: r.Candidate, Existing: r.Existing}
}
