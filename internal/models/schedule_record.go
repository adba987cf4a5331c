package models

// ScheduleRecord is an existing schedule entry checked for conflicts against
// a candidate placement.
type ScheduleRecord struct {
	AcademicYearID string   `json:"academicYearId" validate:"required"`
	TrimesterID    string   `json:"trimesterId" validate:"required"`
	RoomID         string   `json:"roomId" validate:"required"`
	InstructorID   string   `json:"instructorId" validate:"required"`
	Days           []string `json:"days" validate:"required,min=1"`
	StartTime      string   `json:"startTime" validate:"required"`
	EndTime        string   `json:"endTime" validate:"required"`
	// Section is an optional display label carried through for operator
	// readability; it never participates in conflict logic.
	Section string `json:"section,omitempty"`
}

// ConflictType tags the kind of conflict a ConflictReport describes.
type ConflictType string

const (
	ConflictNone        ConflictType = "none"
	ConflictRoom        ConflictType = "room"
	ConflictInstructor  ConflictType = "instructor"
	ConflictLunchBreak  ConflictType = "lunch_break"
	ConflictSchoolHours ConflictType = "school_hours"
)

// Interval is a half-open clock-time window, [Start, End).
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ConflictReport is the outcome of checking a candidate ScheduleRecord
// against a corpus of existing ones.
type ConflictReport struct {
	Type ConflictType `json:"type"`
	// Section echoes the candidate's Section, carried through purely for
	// operator readability; it never participates in conflict logic.
	Section string `json:"section,omitempty"`
	// Days and Time are populated for room/instructor conflicts, echoing the
	// offending day(s) and a human-readable time range.
	Days []string `json:"days,omitempty"`
	Time string   `json:"time,omitempty"`
	// VacantSlots maps day name to the vacant intervals on that day for the
	// conflicting resource, omitting days with no gaps.
	VacantSlots map[string][]Interval `json:"vacantSlots,omitempty"`
}
