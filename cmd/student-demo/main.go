package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/noah-isme/student-database/internal/models"
	"github.com/noah-isme/student-database/internal/service"
	"github.com/noah-isme/student-database/pkg/config"
	appErrors "github.com/noah-isme/student-database/pkg/errors"
	"github.com/noah-isme/student-database/pkg/export"
	"github.com/noah-isme/student-database/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync(logr) //nolint:errcheck

	ctx := context.Background()
	students := service.NewStudentService(nil, logr)
	exports := service.NewExportService(cfg.Export.Title, logr, export.NewCSVExporter(), export.NewPDFExporter())

	student, err := students.Create(ctx, requestFromConfig(cfg.Student))
	if err != nil {
		appErr := appErrors.FromError(err)
		logr.Fatal("student record rejected",
			zap.String("code", appErr.Code),
			zap.String("field", appErr.Field),
			zap.String("reason", appErr.Error()),
		)
	}

	roster := []*models.Student{student}
	out, err := exports.Render(ctx, roster, service.ExportFormatCSV)
	if err != nil {
		logr.Fatal("render roster failed", zap.Error(err))
	}
	if _, err := os.Stdout.Write(out); err != nil {
		logr.Fatal("write roster failed", zap.Error(err))
	}

	if cfg.Export.PDFPath != "" {
		pdf, err := exports.Render(ctx, roster, service.ExportFormatPDF)
		if err != nil {
			logr.Fatal("render roster pdf failed", zap.Error(err))
		}
		if err := os.WriteFile(cfg.Export.PDFPath, pdf, 0o644); err != nil {
			logr.Fatal("write roster pdf failed", zap.String("path", cfg.Export.PDFPath), zap.Error(err))
		}
		logr.Info("roster pdf written", zap.String("path", cfg.Export.PDFPath))
	}
}

func requestFromConfig(c config.StudentConfig) service.CreateStudentRequest {
	return service.CreateStudentRequest{
		FirstName:          c.FirstName,
		LastName:           c.LastName,
		YearOfBirth:        c.YearOfBirth,
		MonthAndDayOfBirth: c.MonthAndDayOfBirth,
		Gender:             c.Gender,
		LRN:                c.LRN,
		SchoolID:           c.SchoolID,
		GradeLevel:         c.GradeLevel,
		LastGradeAverage:   c.LastGradeAverage,
	}
}
