// Package timeutil converts between absolute clock-time strings, half-open
// intervals, and integer weekly slot indices.
package timeutil

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Clock is a time-of-day expressed in minutes since midnight.
type Clock int

// MalformedTimeError is returned when a string matches neither HH:MM nor
// HH:MM:SS.
type MalformedTimeError struct {
	Raw string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time %q: expected HH:MM or HH:MM:SS", e.Raw)
}

// ParseClock parses "HH:MM" or "HH:MM:SS" (24-hour) into minutes since
// midnight. ParseClock("9:30") == ParseClock("9:30:00") for every valid
// input (spec.md P3).
func ParseClock(raw string) (Clock, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, &MalformedTimeError{Raw: raw}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &MalformedTimeError{Raw: raw}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &MalformedTimeError{Raw: raw}
	}
	if len(parts) == 3 {
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return 0, &MalformedTimeError{Raw: raw}
		}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, &MalformedTimeError{Raw: raw}
	}
	return Clock(hour*60 + minute), nil
}

// MustParseClock panics on malformed input; reserved for compiled-in
// constants, never for request-derived data.
func MustParseClock(raw string) Clock {
	c, err := ParseClock(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// Hour returns the hour-of-day component (0-23).
func (c Clock) Hour() int {
	return int(c) / 60
}

// Minute returns the minute-of-hour component (0-59).
func (c Clock) Minute() int {
	return int(c) % 60
}

// String renders the clock as 24-hour "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Format12Hour renders the clock in 12-hour form, stripping a leading zero
// and rendering midnight as "12:00 AM" and noon as "12:00 PM".
func (c Clock) Format12Hour() string {
	hour := c.Hour()
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, c.Minute(), suffix)
}

// Before reports whether c is strictly before other.
func (c Clock) Before(other Clock) bool { return c < other }

// After reports whether c is strictly after other.
func (c Clock) After(other Clock) bool { return c > other }

// Window is the weekly operating window: Days, starting at StartHour for
// HoursPerDay one-hour slots each day.
type Window struct {
	Days        []string
	HoursPerDay int
	StartHour   int
}

// SlotsPerWeek is len(Days) * HoursPerDay.
func (w Window) SlotsPerWeek() int {
	return len(w.Days) * w.HoursPerDay
}

// Decompose maps a weekly slot index to its day name and clock hour.
func (w Window) Decompose(slot int) (day string, hour int) {
	dayIdx := slot / w.HoursPerDay
	hourOffset := slot % w.HoursPerDay
	if dayIdx < 0 || dayIdx >= len(w.Days) {
		return "", 0
	}
	return w.Days[dayIdx], w.StartHour + hourOffset
}

// Slot maps a (day index, hour-of-day) pair back to a weekly slot index.
// hour must be in [StartHour, StartHour+HoursPerDay).
func (w Window) Slot(dayIdx, hour int) int {
	return dayIdx*w.HoursPerDay + (hour - w.StartHour)
}

// CrossesDayBoundary reports whether an instance starting at the given
// weekly slot with the given duration would spill past the end of its day.
// spec.md §4.1 forbids this: start mod hoursPerDay + duration must be <=
// hoursPerDay.
func (w Window) CrossesDayBoundary(slot, duration int) bool {
	offset := slot % w.HoursPerDay
	return offset+duration > w.HoursPerDay
}

// Span is a half-open clock-time interval [Start, End).
type Span struct {
	Start Clock
	End   Clock
}

// Gaps returns the portions of [windowStart, windowEnd) not covered by any
// span in busy, merging overlapping busy spans first. Spans outside the
// window are clipped; spans wholly outside it are ignored.
func Gaps(windowStart, windowEnd Clock, busy []Span) []Span {
	spans := make([]Span, 0, len(busy))
	for _, s := range busy {
		start, end := s.Start, s.End
		if start < windowStart {
			start = windowStart
		}
		if end > windowEnd {
			end = windowEnd
		}
		if start < end {
			spans = append(spans, Span{Start: start, End: end})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

	var merged []Span
	for _, s := range spans {
		if len(merged) > 0 && s.Start <= merged[len(merged)-1].End {
			if s.End > merged[len(merged)-1].End {
				merged[len(merged)-1].End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}

	var gaps []Span
	cursor := windowStart
	for _, s := range merged {
		if cursor < s.Start {
			gaps = append(gaps, Span{Start: cursor, End: s.Start})
		}
		if s.End > cursor {
			cursor = s.End
		}
	}
	if cursor < windowEnd {
		gaps = append(gaps, Span{Start: cursor, End: windowEnd})
	}
	return gaps
}
