package models

// Subject is an academic subject that must be placed on the timetable for
// every section that offers it.
type Subject struct {
	Code          string `json:"code" validate:"required"`
	Title         string `json:"title" validate:"required"`
	DurationHours int    `json:"durationHours" validate:"required,min=1"`
	NeedsLab      bool   `json:"needsLab"`
}

// RoomKind distinguishes ordinary classrooms from lab-capable rooms.
type RoomKind string

const (
	RoomKindClassroom RoomKind = "classroom"
	RoomKindLab       RoomKind = "lab"
)

// Room is a physical resource that hosts at most one instance at a time.
type Room struct {
	ID   string   `json:"id" validate:"required"`
	Name string   `json:"name" validate:"required"`
	Kind RoomKind `json:"kind" validate:"required,oneof=classroom lab"`
	// Capacity is carried for forward compatibility with an enrollment-count
	// constraint; the solver does not yet bound instance placement on it.
	Capacity int `json:"capacity,omitempty"`
}

// IsLab reports whether the room may host lab-needing subjects.
func (r Room) IsLab() bool {
	return r.Kind == RoomKindLab
}

// Teacher can teach any subject whose code appears in Teachable.
type Teacher struct {
	ID         string   `json:"id" validate:"required"`
	Name       string   `json:"name" validate:"required"`
	Department string   `json:"department"`
	Teachable  []string `json:"teachable"`
	// MaxWeeklyHours, when > 0, bounds the teacher's total assigned hours.
	// Not enforced by the timetable solver today; modeled so the constraint
	// can be switched on without a wire-format change.
	MaxWeeklyHours int `json:"maxWeeklyHours,omitempty"`
}

// CanTeach reports whether the teacher lists the given subject code.
func (t Teacher) CanTeach(subjectCode string) bool {
	for _, code := range t.Teachable {
		if code == subjectCode {
			return true
		}
	}
	return false
}
