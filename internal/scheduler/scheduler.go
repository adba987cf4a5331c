// Package scheduler implements the timetable solver (C3): it compiles a
// resolved Configuration into a constraint model, solves it via a
// cpsolver.CpBackend, and decodes the solution into a models.Timetable.
package scheduler

import (
	"context"
	"fmt"

	"github.com/ankei1026/schedai-go/internal/cpsolver"
	"github.com/ankei1026/schedai-go/internal/models"
	"github.com/ankei1026/schedai-go/internal/timeutil"
	appErrors "github.com/ankei1026/schedai-go/pkg/errors"
)

// candidate is one fully-resolved placement choice for a single (section,
// subject) instance: a specific day, hour-of-day offset, room and teacher.
// Exactly one candidate per instance is selected by the solver.
type candidate struct {
	instance string
	day      int
	hour     int
	duration int
	room     models.Room
	teacher  models.Teacher
	presence cpsolver.BoolVar
	interval cpsolver.Interval
}

// Solve builds the CP model for cfg against backend and returns the
// resulting Timetable. Callers must run precheck.Check first; Solve itself
// rejects only a subject longer than one day or an instance with no allowed
// room or eligible teacher before building the model, and otherwise detects
// infeasibility by exhausting the search.
func Solve(ctx context.Context, cfg models.Resolved, backend cpsolver.CpBackend, opts cpsolver.SolveOptions) (models.Timetable, error) {
	window := timeutil.Window{Days: cfg.Days, HoursPerDay: cfg.HoursPerDay, StartHour: cfg.StartHour}

	var allCandidates []*candidate
	byRoom := map[string][]*candidate{}
	byTeacher := map[string][]*candidate{}
	bySection := map[string][]*candidate{}
	byInstance := map[string][]*candidate{}
	var instanceOrder []string
	instanceSubject := map[string]models.Subject{}
	instanceSection := map[string]string{}

	for _, section := range cfg.Sections {
		for _, subj := range cfg.Subjects {
			if subj.DurationHours > cfg.HoursPerDay {
				return models.Timetable{}, appErrors.Clone(appErrors.ErrNoFeasibleSchedule,
					fmt.Sprintf("subject %s requires %d contiguous hours but the day only has %d", subj.Code, subj.DurationHours, cfg.HoursPerDay))
			}

			instName := fmt.Sprintf("%s/%s", section, subj.Code)
			instanceOrder = append(instanceOrder, instName)
			instanceSubject[instName] = subj
			instanceSection[instName] = section

			rooms := cfg.AllowedRooms(subj)
			teachers := cfg.EligibleTeachers(subj.Code)
			if len(rooms) == 0 || len(teachers) == 0 {
				return models.Timetable{}, appErrors.Clone(appErrors.ErrNoFeasibleSchedule,
					fmt.Sprintf("no room/teacher combination can host %s for section %s", subj.Code, section))
			}

			for day := 0; day < len(cfg.Days); day++ {
				for hour := 0; hour+subj.DurationHours <= cfg.HoursPerDay; hour++ {
					if window.CrossesDayBoundary(window.Slot(day, cfg.StartHour+hour), subj.DurationHours) {
						continue
					}
					for _, room := range rooms {
						for _, teacher := range teachers {
							c := &candidate{
								instance: instName,
								day:      day,
								hour:     hour,
								duration: subj.DurationHours,
								room:     room,
								teacher:  teacher,
							}
							start := window.Slot(day, cfg.StartHour+hour)
							name := fmt.Sprintf("%s@d%dh%d@%s@%s", instName, day, hour, room.ID, teacher.ID)
							startVar := backend.NewIntVar(start, start, name+"_start")
							c.presence = backend.NewBoolVar(name + "_presence")
							c.interval = backend.NewOptionalInterval(startVar, subj.DurationHours, c.presence, name+"_ivl")

							allCandidates = append(allCandidates, c)
							byRoom[room.ID] = append(byRoom[room.ID], c)
							byTeacher[teacher.ID] = append(byTeacher[teacher.ID], c)
							bySection[section] = append(bySection[section], c)
							byInstance[instName] = append(byInstance[instName], c)
						}
					}
				}
			}
		}
	}

	if len(allCandidates) == 0 {
		return models.Timetable{}, appErrors.Clone(appErrors.ErrNoFeasibleSchedule, "configuration admits no candidate placements")
	}

	// Exactly one candidate wins per instance.
	for _, instName := range instanceOrder {
		terms := make([]cpsolver.Term, 0, len(byInstance[instName]))
		for _, c := range byInstance[instName] {
			terms = append(terms, cpsolver.Term{Coefficient: 1, Var: c.presence})
		}
		backend.AddLinearEq(terms, 1)
	}

	// No resource (room, teacher, section) hosts two present intervals at once.
	addNoOverlapGroups(backend, byRoom)
	addNoOverlapGroups(backend, byTeacher)
	addNoOverlapGroups(backend, bySection)

	result, err := backend.Solve(ctx, opts)
	if err != nil {
		return models.Timetable{}, appErrors.Wrap(err, appErrors.ErrSolverInconsistency.Code, appErrors.ErrSolverInconsistency.Status, "constraint solver failed")
	}
	if !result.Feasible() {
		return models.Timetable{}, appErrors.Clone(appErrors.ErrNoFeasibleSchedule, "no feasible schedule exists for the given configuration")
	}

	timetable := models.Timetable{}
	for _, instName := range instanceOrder {
		var chosen *candidate
		for _, c := range byInstance[instName] {
			name := fmt.Sprintf("%s@d%dh%d@%s@%s_presence", instName, c.day, c.hour, c.room.ID, c.teacher.ID)
			if result.BoolValue[name] {
				chosen = c
				break
			}
		}
		if chosen == nil {
			return models.Timetable{}, appErrors.Clone(appErrors.ErrSolverInconsistency,
				fmt.Sprintf("solver reported feasible but selected no placement for %s", instName))
		}
		subj := instanceSubject[instName]
		timetable.Instances = append(timetable.Instances, models.ScheduledInstance{
			Section:     instanceSection[instName],
			SubjectCode: subj.Code,
			StartSlot:   window.Slot(chosen.day, cfg.StartHour+chosen.hour),
			Duration:    chosen.duration,
			Room:        chosen.room.Name,
			Teacher:     chosen.teacher.Name,
			StartDay:    cfg.Days[chosen.day],
			StartHour:   cfg.StartHour + chosen.hour,
		})
	}
	return timetable, nil
}

func addNoOverlapGroups(backend cpsolver.CpBackend, groups map[string][]*candidate) {
	for _, candidates := range groups {
		if len(candidates) < 2 {
			continue
		}
		intervals := make([]cpsolver.Interval, len(candidates))
		for i, c := range candidates {
			intervals[i] = c.interval
		}
		backend.AddNoOverlap(intervals)
	}
}
