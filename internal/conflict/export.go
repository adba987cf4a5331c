package conflict

import (
	"sort"

	"github.com/ankei1026/schedai-go/internal/models"
	"github.com/ankei1026/schedai-go/pkg/export"
)

// ConflictDataset adapts a ConflictReport's vacant slots into the
// domain-agnostic tabular shape pkg/export renders to CSV or PDF, one row
// per (day, vacant interval), days sorted for stable output.
func ConflictDataset(report models.ConflictReport) export.Dataset {
	dataset := export.Dataset{Headers: []string{"type", "day", "start", "end"}}

	days := make([]string, 0, len(report.VacantSlots))
	for day := range report.VacantSlots {
		days = append(days, day)
	}
	sort.Strings(days)

	for _, day := range days {
		for _, interval := range report.VacantSlots[day] {
			dataset.Rows = append(dataset.Rows, map[string]string{
				"type":  string(report.Type),
				"day":   day,
				"start": interval.Start,
				"end":   interval.End,
			})
		}
	}
	return dataset
}
