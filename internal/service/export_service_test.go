package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ankei1026/schedai-go/internal/models"
)

func TestExportServiceRenderTimetableCSV(t *testing.T) {
	svc := NewExportService(nil, nil, nil)

	timetable := models.Timetable{
		Instances: []models.ScheduledInstance{
			{Section: "A", SubjectCode: "MATH101", Teacher: "T1", Room: "R1", StartDay: "Monday", StartHour: 8, StartSlot: 0, Duration: 1},
		},
	}

	payload, contentType, err := svc.RenderTimetable(timetable, ExportFormatCSV)
	require.NoError(t, err)
	require.Equal(t, "text/csv", contentType)
	require.Contains(t, string(payload), "MATH101")
}

func TestExportServiceRenderTimetableCSVOrdersSectionsDeterministically(t *testing.T) {
	svc := NewExportService(nil, nil, nil)

	timetable := models.Timetable{
		Instances: []models.ScheduledInstance{
			{Section: "C", SubjectCode: "HIST301", Teacher: "T3", Room: "R3", StartDay: "Monday", StartHour: 10, StartSlot: 2, Duration: 1},
			{Section: "A", SubjectCode: "MATH101", Teacher: "T1", Room: "R1", StartDay: "Monday", StartHour: 8, StartSlot: 0, Duration: 1},
			{Section: "B", SubjectCode: "SCI201", Teacher: "T2", Room: "R2", StartDay: "Monday", StartHour: 9, StartSlot: 1, Duration: 1},
		},
	}

	var first string
	for i := 0; i < 5; i++ {
		payload, _, err := svc.RenderTimetable(timetable, ExportFormatCSV)
		require.NoError(t, err)
		if i == 0 {
			first = string(payload)
			continue
		}
		require.Equal(t, first, string(payload))
	}

	aIdx := strings.Index(first, "MATH101")
	bIdx := strings.Index(first, "SCI201")
	cIdx := strings.Index(first, "HIST301")
	require.True(t, aIdx < bIdx && bIdx < cIdx, "expected rows ordered by section: A, B, C")
}

func TestExportServiceRenderConflictReportPDF(t *testing.T) {
	svc := NewExportService(nil, nil, nil)

	report := models.ConflictReport{
		Type: models.ConflictRoom,
		VacantSlots: map[string][]models.Interval{
			"Monday": {{Start: "09:00", End: "10:00"}},
		},
	}

	payload, contentType, err := svc.RenderConflictReport(report, ExportFormatPDF)
	require.NoError(t, err)
	require.Equal(t, "application/pdf", contentType)
	require.NotEmpty(t, payload)
}

func TestExportServiceRenderRejectsUnknownFormat(t *testing.T) {
	svc := NewExportService(nil, nil, nil)

	_, _, err := svc.RenderTimetable(models.Timetable{}, ExportFormat("xml"))
	require.Error(t, err)
}
