package dto

import "github.com/ankei1026/schedai-go/internal/models"

// ScheduleRequest is the wire payload for /api/v1/schedule. Every field is
// optional; omitted fields fall back to the compiled-in defaults resolved by
// models.Configuration.Resolve.
type ScheduleRequest struct {
	Sections      []string         `json:"sections"`
	Subjects      []models.Subject `json:"subjects" validate:"dive"`
	Rooms         []string         `json:"rooms"`
	ComlabIndices []int            `json:"comlabIndices"`
	Days          []string         `json:"days"`
	Teachers      []models.Teacher `json:"teachers" validate:"dive"`
	HoursPerDay   int              `json:"hoursPerDay"`
	StartHour     int              `json:"startHour"`
}

// ToConfiguration converts the wire request into the domain model.
func (r ScheduleRequest) ToConfiguration() models.Configuration {
	return models.Configuration{
		Sections:      r.Sections,
		Subjects:      r.Subjects,
		Rooms:         r.Rooms,
		ComlabIndices: r.ComlabIndices,
		Days:          r.Days,
		Teachers:      r.Teachers,
		HoursPerDay:   r.HoursPerDay,
		StartHour:     r.StartHour,
	}
}

// ScheduleResponse wraps the solved timetable returned to the caller.
type ScheduleResponse struct {
	Instances []models.ScheduledInstance `json:"instances"`
}

// FromTimetable adapts a solved Timetable into the wire response shape.
func FromTimetable(t models.Timetable) ScheduleResponse {
	return ScheduleResponse{Instances: t.Instances}
}
