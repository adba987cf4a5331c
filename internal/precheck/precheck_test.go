package precheck

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ankei1026/schedai-go/internal/models"
)

func minimalConfig() models.Configuration {
	return models.Configuration{
		Sections: []string{"A"},
		Subjects: []models.Subject{{Code: "X", Title: "Xt", DurationHours: 2, NeedsLab: false}},
		Rooms:    []string{"R1"},
		Days:     []string{"Mon"},
		Teachers: []models.Teacher{{ID: "T0", Name: "Teacher Zero", Teachable: []string{"X"}}},
		HoursPerDay: 3,
	}
}

func TestMinimalFeasibleHasNoErrors(t *testing.T) {
	errs := Check(minimalConfig().Resolve())
	require.Empty(t, errs)
}

func TestLabRequiredButNoLab(t *testing.T) {
	cfg := minimalConfig()
	cfg.Subjects = []models.Subject{{Code: "X", Title: "Xt", DurationHours: 2, NeedsLab: true}}
	cfg.ComlabIndices = []int{}
	errs := Check(cfg.Resolve())
	require.Contains(t, errs, "Total lab hours required = 2 but lab capacity = 0")
}

func TestUncoveredSubject(t *testing.T) {
	cfg := minimalConfig()
	cfg.Subjects = []models.Subject{{Code: "Z", Title: "Zed", DurationHours: 2, NeedsLab: false}}
	errs := Check(cfg.Resolve())
	require.Contains(t, errs, "No teacher listed can teach subject Z")
}

func TestOverallLoadExceedsWeek(t *testing.T) {
	cfg := minimalConfig()
	cfg.Subjects = []models.Subject{{Code: "X", Title: "Xt", DurationHours: 10, NeedsLab: false}}
	cfg.HoursPerDay = 3
	cfg.Days = []string{"Mon"}
	errs := Check(cfg.Resolve())
	require.NotEmpty(t, errs)
}
