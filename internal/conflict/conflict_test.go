package conflict

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ankei1026/schedai-go/internal/models"
)

func record(days []string, start, end, room, instructor string) models.ScheduleRecord {
	return models.ScheduleRecord{
		AcademicYearID: "2026",
		TrimesterID:    "T1",
		RoomID:         room,
		InstructorID:   instructor,
		Days:           days,
		StartTime:      start,
		EndTime:        end,
	}
}

func TestCheckNoConflict(t *testing.T) {
	candidate := record([]string{"Monday"}, "09:00", "10:00", "R1", "I1")
	existing := []models.ScheduleRecord{record([]string{"Monday"}, "10:00", "11:00", "R1", "I1")}

	report, err := Check(candidate, existing)
	require.NoError(t, err)
	require.Equal(t, models.ConflictNone, report.Type)
}

func TestCheckOutsideSchoolHours(t *testing.T) {
	candidate := record([]string{"Monday"}, "05:00", "06:30", "R1", "I1")

	report, err := Check(candidate, nil)
	require.NoError(t, err)
	require.Equal(t, models.ConflictSchoolHours, report.Type)
}

func TestCheckLunchBreak(t *testing.T) {
	candidate := record([]string{"Monday"}, "11:30", "12:30", "R1", "I1")

	report, err := Check(candidate, nil)
	require.NoError(t, err)
	require.Equal(t, models.ConflictLunchBreak, report.Type)
}

func TestCheckRoomConflictReportsVacancies(t *testing.T) {
	candidate := record([]string{"Monday"}, "09:00", "10:00", "R1", "I2")
	existing := []models.ScheduleRecord{
		record([]string{"Monday"}, "09:30", "11:00", "R1", "I1"),
	}

	report, err := Check(candidate, existing)
	require.NoError(t, err)
	require.Equal(t, models.ConflictRoom, report.Type)
	require.Contains(t, report.Days, "Monday")
	require.NotEmpty(t, report.VacantSlots["Monday"])
}

func TestCheckInstructorConflictTakesPrecedenceOverLaterRoomMatch(t *testing.T) {
	candidate := record([]string{"Monday"}, "09:00", "10:00", "R1", "I1")
	existing := []models.ScheduleRecord{
		record([]string{"Monday"}, "09:30", "10:30", "R2", "I1"), // instructor conflict, checked first
		record([]string{"Monday"}, "09:30", "10:30", "R1", "I3"), // room conflict, never reached
	}

	report, err := Check(candidate, existing)
	require.NoError(t, err)
	require.Equal(t, models.ConflictInstructor, report.Type)
}

func TestCheckDifferentDaysNoConflict(t *testing.T) {
	candidate := record([]string{"Monday"}, "09:00", "10:00", "R1", "I1")
	existing := []models.ScheduleRecord{record([]string{"Tuesday"}, "09:00", "10:00", "R1", "I1")}

	report, err := Check(candidate, existing)
	require.NoError(t, err)
	require.Equal(t, models.ConflictNone, report.Type)
}

func TestCheckDifferentTermNoConflict(t *testing.T) {
	candidate := record([]string{"Monday"}, "09:00", "10:00", "R1", "I1")
	other := record([]string{"Monday"}, "09:00", "10:00", "R1", "I1")
	other.AcademicYearID = "2025"
	other.TrimesterID = "T3"
	existing := []models.ScheduleRecord{other}

	report, err := Check(candidate, existing)
	require.NoError(t, err)
	require.Equal(t, models.ConflictNone, report.Type)
}

func TestCheckSectionEchoedOnConflict(t *testing.T) {
	candidate := record([]string{"Monday"}, "09:00", "10:00", "R1", "I2")
	candidate.Section = "Grade 7-A"
	existing := []models.ScheduleRecord{
		record([]string{"Monday"}, "09:30", "11:00", "R1", "I1"),
	}

	report, err := Check(candidate, existing)
	require.NoError(t, err)
	require.Equal(t, models.ConflictRoom, report.Type)
	require.Equal(t, "Grade 7-A", report.Section)
}

func TestConflictDatasetOmitsEmptyDays(t *testing.T) {
	report := models.ConflictReport{
		Type: models.ConflictRoom,
		VacantSlots: map[string][]models.Interval{
			"Monday":  {{Start: "06:00", End: "09:00"}},
			"Tuesday": {},
		},
	}
	dataset := ConflictDataset(report)
	require.Len(t, dataset.Rows, 1)
	require.Equal(t, "Monday", dataset.Rows[0]["day"])
}
