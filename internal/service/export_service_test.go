package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/student-database/internal/models"
	appErrors "github.com/noah-isme/student-database/pkg/errors"
	"github.com/noah-isme/student-database/pkg/export"
)

func roster() []*models.Student {
	return []*models.Student{
		models.MustNewStudent("Juan", "Dela Cruz", 2009, 420, models.GenderMale, 136512090001, 136512, models.GradeLevelGrade11, 92),
		models.MustNewStudent("Ana", "Reyes", 2020, 1225, models.GenderFemale, 136512200002, 136512, models.GradeLevelKindergarten, 0),
	}
}

func newExportServiceForTest() *ExportService {
	return NewExportService("Student Roster", zap.NewNop(), export.NewCSVExporter(), export.NewPDFExporter())
}

func TestExportServiceRenderCSV(t *testing.T) {
	svc := newExportServiceForTest()

	out, err := svc.Render(context.Background(), roster(), ExportFormatCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(models.StudentColumns, ","), lines[0])
	assert.Equal(t, "Juan,Dela Cruz,2009,0420,Male,136512090001,136512,Grade 11,92", lines[1])
	assert.Equal(t, "Ana,Reyes,2020,1225,Female,136512200002,136512,Kindergarten,0", lines[2])
}

func TestExportServiceRenderPDF(t *testing.T) {
	svc := newExportServiceForTest()

	out, err := svc.Render(context.Background(), roster(), "PDF")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := NewExportService("", nil, nil, nil)

	_, err := svc.Render(context.Background(), roster(), "xlsx")
	assert.ErrorIs(t, err, appErrors.ErrUnsupportedFormat)
}

func TestExportServiceDatasetSkipsNil(t *testing.T) {
	svc := newExportServiceForTest()
	data := svc.Dataset([]*models.Student{nil, roster()[0]})
	assert.Equal(t, "Student Roster", data.Title)
	require.Len(t, data.Rows, 1)
	assert.Equal(t, "Juan", data.Rows[0]["First Name"])
}
