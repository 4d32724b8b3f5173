package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/student-database/internal/models"
	appErrors "github.com/noah-isme/student-database/pkg/errors"
	"github.com/noah-isme/student-database/pkg/export"
)

// ExportFormat names a roster encoding.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportService renders student rosters.
type ExportService struct {
	title     string
	logger    *zap.Logger
	renderers map[ExportFormat]export.Renderer
}

// NewExportService wires the CSV and PDF renderers.
func NewExportService(title string, logger *zap.Logger, csv *export.CSVExporter, pdf *export.PDFExporter) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		title:  title,
		logger: logger,
		renderers: map[ExportFormat]export.Renderer{
			ExportFormatCSV: csv,
			ExportFormatPDF: pdf,
		},
	}
}

// Dataset builds the tabular view of the given students.
func (s *ExportService) Dataset(students []*models.Student) export.Dataset {
	rows := make([]map[string]string, 0, len(students))
	for _, student := range students {
		if student == nil {
			continue
		}
		rows = append(rows, student.Fields())
	}
	return export.Dataset{Title: s.title, Headers: models.StudentColumns, Rows: rows}
}

// Render encodes the roster in the requested format.
func (s *ExportService) Render(ctx context.Context, students []*models.Student, format ExportFormat) ([]byte, error) {
	renderer, ok := s.renderers[ExportFormat(strings.ToLower(string(format)))]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, "unsupported export format: "+string(format))
	}
	out, err := renderer.Render(s.Dataset(students))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "", "failed to render roster")
	}
	s.logger.Debug("roster_rendered",
		zap.String("format", string(format)),
		zap.String("content_type", renderer.ContentType()),
		zap.Int("students", len(students)),
		zap.Int("bytes", len(out)),
	)
	return out, nil
}
