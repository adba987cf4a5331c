// Package precheck detects closed-form infeasibility in a Configuration
// before any search is attempted.
package precheck

import (
	"fmt"

	"github.com/ankei1026/schedai-go/internal/models"
)

// Check returns a (possibly empty) list of human-readable infeasibility
// reasons for the resolved configuration. If the list is non-empty, the
// solver must not be invoked (spec.md P2).
func Check(cfg models.Resolved) []string {
	var errs []string

	slotsPerWeek := cfg.SlotsPerWeek()

	totalLoad := 0
	labLoad := 0
	classroomLoad := 0
	for _, subj := range cfg.Subjects {
		totalLoad += subj.DurationHours
		if subj.NeedsLab {
			labLoad += subj.DurationHours
		} else {
			classroomLoad += subj.DurationHours
		}
	}
	if totalLoad > slotsPerWeek {
		errs = append(errs, fmt.Sprintf(
			"Total weekly hours required per section = %d but only %d slots are available per week",
			totalLoad, slotsPerWeek))
	}

	sections := len(cfg.Sections)
	if sections == 0 {
		sections = 1
	}
	labCapacity := len(cfg.Labs()) * slotsPerWeek
	requiredLabHours := labLoad * sections
	if requiredLabHours > labCapacity {
		errs = append(errs, fmt.Sprintf(
			"Total lab hours required = %d but lab capacity = %d",
			requiredLabHours, labCapacity))
	}

	classroomCapacity := len(cfg.Classrooms()) * slotsPerWeek
	requiredClassroomHours := classroomLoad * sections
	if requiredClassroomHours > classroomCapacity {
		errs = append(errs, fmt.Sprintf(
			"Total classroom hours required = %d but classroom capacity = %d",
			requiredClassroomHours, classroomCapacity))
	}

	for _, subj := range cfg.Subjects {
		if len(cfg.EligibleTeachers(subj.Code)) == 0 {
			errs = append(errs, fmt.Sprintf(
				"No teacher listed can teach subject %s", subj.Code))
		}
	}

	return errs
}
