package models

// Configuration describes everything the pre-checker and solver need to
// build a timetable. Every field is optional on the wire; Resolve() fills
// in the compiled-in fallbacks field-by-field so callers may submit a
// partial payload.
type Configuration struct {
	Sections      []string  `json:"sections"`
	Subjects      []Subject `json:"subjects" validate:"dive"`
	Rooms         []string  `json:"rooms"`
	ComlabIndices []int     `json:"comlabIndices"`
	Days          []string  `json:"days"`
	Teachers      []Teacher `json:"teachers" validate:"dive"`
	HoursPerDay   int       `json:"hoursPerDay"`
	StartHour     int       `json:"startHour"`
}

// Default compiled-in fallbacks, matching the source's module-level
// defaults. Treated as immutable constants — never mutated at runtime.
var (
	DefaultSections    = []string{"A"}
	DefaultSubjects    = []Subject{{Code: "GEN101", Title: "General Education", DurationHours: 3, NeedsLab: false}}
	DefaultRoomNames   = []string{"R101", "R102", "R103"}
	DefaultComlabIdx   = []int{2}
	DefaultDays        = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	DefaultHoursPerDay = 8
	DefaultStartHour   = 8
)

// Resolved is a Configuration with every optional field filled in and rooms
// materialized from names + comlab indices.
type Resolved struct {
	Sections    []string
	Subjects    []Subject
	Rooms       []Room
	Days        []string
	Teachers    []Teacher
	HoursPerDay int
	StartHour   int
}

// Resolve merges the caller's Configuration over compiled-in defaults,
// field-by-field, and materializes Rooms from Rooms+ComlabIndices.
func (c Configuration) Resolve() Resolved {
	r := Resolved{
		Sections:    c.Sections,
		Subjects:    c.Subjects,
		Days:        c.Days,
		Teachers:    c.Teachers,
		HoursPerDay: c.HoursPerDay,
		StartHour:   c.StartHour,
	}
	if len(r.Sections) == 0 {
		r.Sections = append([]string(nil), DefaultSections...)
	}
	if len(r.Subjects) == 0 {
		r.Subjects = append([]Subject(nil), DefaultSubjects...)
	}
	if len(r.Days) == 0 {
		r.Days = append([]string(nil), DefaultDays...)
	}
	if r.HoursPerDay <= 0 {
		r.HoursPerDay = DefaultHoursPerDay
	}
	if r.StartHour <= 0 {
		r.StartHour = DefaultStartHour
	}

	roomNames := c.Rooms
	if len(roomNames) == 0 {
		roomNames = DefaultRoomNames
	}
	comlab := c.ComlabIndices
	if comlab == nil && len(c.Rooms) == 0 {
		comlab = DefaultComlabIdx
	}
	labSet := make(map[int]bool, len(comlab))
	for _, idx := range comlab {
		labSet[idx] = true
	}
	r.Rooms = make([]Room, len(roomNames))
	for i, name := range roomNames {
		kind := RoomKindClassroom
		if labSet[i] {
			kind = RoomKindLab
		}
		r.Rooms[i] = Room{ID: name, Name: name, Kind: kind}
	}
	return r
}

// Labs returns the subset of rooms usable by lab-needing subjects.
func (r Resolved) Labs() []Room {
	var labs []Room
	for _, room := range r.Rooms {
		if room.IsLab() {
			labs = append(labs, room)
		}
	}
	return labs
}

// Classrooms returns the rooms of kind RoomKindClassroom. Used by the
// pre-checker's classroom-capacity bound (spec.md §4.2); the solver itself
// allows non-lab subjects into any room, lab included (spec.md §4.3).
func (r Resolved) Classrooms() []Room {
	var rooms []Room
	for _, room := range r.Rooms {
		if room.Kind == RoomKindClassroom {
			rooms = append(rooms, room)
		}
	}
	return rooms
}

// AllowedRooms returns the rooms eligible to host the given subject.
func (r Resolved) AllowedRooms(subj Subject) []Room {
	if subj.NeedsLab {
		return r.Labs()
	}
	return r.Rooms
}

// EligibleTeachers returns the teachers who list the given subject code.
func (r Resolved) EligibleTeachers(subjectCode string) []Teacher {
	var out []Teacher
	for _, t := range r.Teachers {
		if t.CanTeach(subjectCode) {
			out = append(out, t)
		}
	}
	return out
}

// SlotsPerWeek returns the total number of one-hour weekly slots.
func (r Resolved) SlotsPerWeek() int {
	return len(r.Days) * r.HoursPerDay
}
