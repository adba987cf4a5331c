package dto

import (
	"github.com/ankei1026/schedai-go/internal/models"
	"github.com/ankei1026/schedai-go/internal/service"
)

// AssignRequest is the wire payload for /api/v1/assign-courses.
type AssignRequest struct {
	Courses     []models.Course     `json:"courses" validate:"required,dive"`
	Instructors []models.Instructor `json:"instructors" validate:"required,dive"`
}

// ToServiceRequest converts the wire request into the service's request shape.
func (r AssignRequest) ToServiceRequest() service.AssignRequest {
	return service.AssignRequest{Courses: r.Courses, Instructors: r.Instructors}
}

// AssignResponse wraps the computed assignments returned to the caller.
type AssignResponse struct {
	Assignments []models.Assignment `json:"assignments"`
}
