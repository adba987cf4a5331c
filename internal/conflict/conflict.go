// Package conflict implements the conflict analyzer (C5): given a candidate
// ScheduleRecord and a corpus of existing ones, it reports whether the
// candidate falls outside school hours, inside the lunch break, or overlaps
// an existing booking on its room or instructor — and when it does, the
// vacant slots available on the conflicting resource.
package conflict

import (
	"fmt"

	"github.com/ankei1026/schedai-go/internal/models"
	"github.com/ankei1026/schedai-go/internal/timeutil"
)

var (
	schoolStart = timeutil.MustParseClock("06:00")
	schoolEnd   = timeutil.MustParseClock("21:00")
	lunchStart  = timeutil.MustParseClock("12:00")
	lunchEnd    = timeutil.MustParseClock("13:00")
)

// Check evaluates the candidate in this fixed, short-circuiting order:
// malformed times, school-hours bounds, the lunch break, then room and
// instructor overlap against existing in the order given — the first
// existing record that conflicts determines the report. Returns
// ConflictNone when nothing matches.
func Check(candidate models.ScheduleRecord, existing []models.ScheduleRecord) (models.ConflictReport, error) {
	start, err := timeutil.ParseClock(candidate.StartTime)
	if err != nil {
		return models.ConflictReport{}, err
	}
	end, err := timeutil.ParseClock(candidate.EndTime)
	if err != nil {
		return models.ConflictReport{}, err
	}

	if start < schoolStart || end > schoolEnd || !(start < end) {
		return models.ConflictReport{
			Type:    models.ConflictSchoolHours,
			Section: candidate.Section,
			Days:    candidate.Days,
			Time:    rangeString(start, end),
		}, nil
	}

	if overlapsClock(start, end, lunchStart, lunchEnd) {
		return models.ConflictReport{
			Type:    models.ConflictLunchBreak,
			Section: candidate.Section,
			Days:    candidate.Days,
			Time:    rangeString(start, end),
		}, nil
	}

	for _, ex := range existing {
		exStart, err := timeutil.ParseClock(ex.StartTime)
		if err != nil {
			return models.ConflictReport{}, err
		}
		exEnd, err := timeutil.ParseClock(ex.EndTime)
		if err != nil {
			return models.ConflictReport{}, err
		}

		sameTerm := ex.AcademicYearID == candidate.AcademicYearID && ex.TrimesterID == candidate.TrimesterID
		sharedDays := intersectDays(candidate.Days, ex.Days)
		if !sameTerm || len(sharedDays) == 0 || !overlapsClock(start, end, exStart, exEnd) {
			continue
		}

		switch {
		case ex.RoomID == candidate.RoomID:
			return models.ConflictReport{
				Type:    models.ConflictRoom,
				Section: candidate.Section,
				Days:    sharedDays,
				Time:    rangeString(start, end),
				VacantSlots: vacancies(existing, sharedDays, func(r models.ScheduleRecord) bool {
					return r.RoomID == candidate.RoomID && r.AcademicYearID == candidate.AcademicYearID && r.TrimesterID == candidate.TrimesterID
				}),
			}, nil
		case ex.InstructorID == candidate.InstructorID:
			return models.ConflictReport{
				Type:    models.ConflictInstructor,
				Section: candidate.Section,
				Days:    sharedDays,
				Time:    rangeString(start, end),
				VacantSlots: vacancies(existing, sharedDays, func(r models.ScheduleRecord) bool {
					return r.InstructorID == candidate.InstructorID && r.AcademicYearID == candidate.AcademicYearID && r.TrimesterID == candidate.TrimesterID
				}),
			}, nil
		}
	}

	return models.ConflictReport{Type: models.ConflictNone, Section: candidate.Section}, nil
}

func rangeString(start, end timeutil.Clock) string {
	return fmt.Sprintf("%s-%s", start.Format12Hour(), end.Format12Hour())
}

func overlapsClock(aStart, aEnd, bStart, bEnd timeutil.Clock) bool {
	return aStart < bEnd && bStart < aEnd
}

func intersectDays(a, b []string) []string {
	bSet := make(map[string]bool, len(b))
	for _, d := range b {
		bSet[d] = true
	}
	var out []string
	for _, d := range a {
		if bSet[d] {
			out = append(out, d)
		}
	}
	return out
}

// vacancies computes, for each day in days, the gaps in the conflicting
// resource's bookings (filtered by match) within [schoolStart, schoolEnd)
// minus [lunchStart, lunchEnd). Days with no gap are omitted.
func vacancies(existing []models.ScheduleRecord, days []string, match func(models.ScheduleRecord) bool) map[string][]models.Interval {
	out := map[string][]models.Interval{}
	for _, day := range days {
		var busy []timeutil.Span
		busy = append(busy, timeutil.Span{Start: lunchStart, End: lunchEnd})
		for _, ex := range existing {
			if !match(ex) || !containsDay(ex.Days, day) {
				continue
			}
			s, err1 := timeutil.ParseClock(ex.StartTime)
			e, err2 := timeutil.ParseClock(ex.EndTime)
			if err1 != nil || err2 != nil {
				continue
			}
			busy = append(busy, timeutil.Span{Start: s, End: e})
		}
		gaps := timeutil.Gaps(schoolStart, schoolEnd, busy)
		if len(gaps) == 0 {
			continue
		}
		intervals := make([]models.Interval, len(gaps))
		for i, g := range gaps {
			intervals[i] = models.Interval{Start: g.Start.String(), End: g.End.String()}
		}
		out[day] = intervals
	}
	return out
}

func containsDay(days []string, day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
