package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ankei1026/schedai-go/internal/conflict"
	"github.com/ankei1026/schedai-go/internal/models"
	"github.com/ankei1026/schedai-go/internal/scheduler"
	"github.com/ankei1026/schedai-go/pkg/export"
)

// ExportFormat names a supported rendering of a generated dataset.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportService renders a Timetable or ConflictReport into a downloadable
// byte stream. Unlike a persisted-report pipeline, rendering is synchronous:
// the solver/conflict result is already in memory by the time a caller asks
// to export it, so there is nothing to poll for.
type ExportService struct {
	csv    csvRenderer
	pdf    pdfRenderer
	logger *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{csv: csv, pdf: pdf, logger: logger}
}

// RenderTimetable renders a solved Timetable in the requested format.
func (s *ExportService) RenderTimetable(t models.Timetable, format ExportFormat) ([]byte, string, error) {
	dataset := scheduler.TimetableDataset(t)
	payload, err := s.render(dataset, "Timetable", format)
	if err != nil {
		return nil, "", err
	}
	return payload, s.contentType(format), nil
}

// RenderConflictReport renders a ConflictReport's vacant-slot suggestions in
// the requested format.
func (s *ExportService) RenderConflictReport(report models.ConflictReport, format ExportFormat) ([]byte, string, error) {
	dataset := conflict.ConflictDataset(report)
	payload, err := s.render(dataset, "Conflict Report", format)
	if err != nil {
		return nil, "", err
	}
	return payload, s.contentType(format), nil
}

func (s *ExportService) render(dataset export.Dataset, title string, format ExportFormat) ([]byte, error) {
	switch format {
	case ExportFormatCSV, "":
		return s.csv.Render(dataset)
	case ExportFormatPDF:
		return s.pdf.Render(dataset, title)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

func (s *ExportService) contentType(format ExportFormat) string {
	if strings.EqualFold(string(format), string(ExportFormatPDF)) {
		return "application/pdf"
	}
	return "text/csv"
}
