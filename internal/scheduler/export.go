package scheduler

import (
	"fmt"
	"sort"

	"github.com/ankei1026/schedai-go/internal/models"
	"github.com/ankei1026/schedai-go/pkg/export"
)

// TimetableDataset adapts a Timetable into the domain-agnostic tabular shape
// pkg/export renders to CSV or PDF, one row per scheduled instance ordered
// by section then start slot.
func TimetableDataset(t models.Timetable) export.Dataset {
	dataset := export.Dataset{
		Headers: []string{"section", "subject", "day", "startHour", "duration", "room", "teacher"},
	}
	sections := t.BySection()

	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, inst := range sections[name] {
			dataset.Rows = append(dataset.Rows, map[string]string{
				"section":   inst.Section,
				"subject":   inst.SubjectCode,
				"day":       inst.StartDay,
				"startHour": fmt.Sprintf("%d", inst.StartHour),
				"duration":  fmt.Sprintf("%d", inst.Duration),
				"room":      inst.Room,
				"teacher":   inst.Teacher,
			})
		}
	}
	return dataset
}
