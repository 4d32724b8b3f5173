package service

import (
	"context"
	"errors"
	"math"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/student-database/internal/models"
	appErrors "github.com/noah-isme/student-database/pkg/errors"
)

// CreateStudentRequest holds payload for registering a student. Enum fields
// carry display labels or identifiers, e.g. "Non-binary" or "Grade11".
//
// Missing names are reported first. Everything else follows the NewStudent
// order: the range checks, then an unknown gender label, then an unknown
// grade level label.
type CreateStudentRequest struct {
	FirstName          string `json:"first_name" validate:"required"`
	LastName           string `json:"last_name" validate:"required"`
	YearOfBirth        uint16 `json:"year_of_birth"`
	MonthAndDayOfBirth uint16 `json:"month_and_day_of_birth"`
	Gender             string `json:"gender"`
	LRN                uint64 `json:"lrn"`
	SchoolID           uint32 `json:"school_id"`
	GradeLevel         string `json:"grade_level"`
	LastGradeAverage   uint8  `json:"last_grade_average"`
}

// Rejection describes a batch entry that could not be registered.
type Rejection struct {
	Index   int
	Request CreateStudentRequest
	Err     error
}

// BatchResult aggregates the outcome of CreateMany. Err is set only when
// the batch stopped early.
type BatchResult struct {
	Students []*models.Student
	Rejected []Rejection
	Err      error
}

// StudentService handles student registration use-cases.
type StudentService struct {
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{validator: validate, logger: logger}
}

// Create validates the payload and builds the student record.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	student, err := s.build(req)
	if err != nil {
		appErr := appErrors.FromError(err)
		s.logger.Warn("student_rejected",
			zap.String("code", appErr.Code),
			zap.String("field", appErr.Field),
			zap.Error(err),
		)
		return nil, err
	}
	s.logger.Info("student_registered",
		zap.String("last_name", student.LastName()),
		zap.Uint64("lrn", student.LRN()),
		zap.Uint32("school_id", student.SchoolID()),
		zap.Stringer("grade_level", student.GradeLevel()),
	)
	return student, nil
}

// CreateMany registers each request in order. Invalid entries are collected
// in Rejected and do not stop the batch; a cancelled context does.
func (s *StudentService) CreateMany(ctx context.Context, reqs []CreateStudentRequest) BatchResult {
	result := BatchResult{Students: make([]*models.Student, 0, len(reqs))}
	for i, req := range reqs {
		if err := ctx.Err(); err != nil {
			result.Err = err
			break
		}
		student, err := s.Create(ctx, req)
		if err != nil {
			result.Rejected = append(result.Rejected, Rejection{Index: i, Request: req, Err: err})
			continue
		}
		result.Students = append(result.Students, student)
	}
	s.logger.Info("student_batch_processed",
		zap.Int("requested", len(reqs)),
		zap.Int("registered", len(result.Students)),
		zap.Int("rejected", len(result.Rejected)),
	)
	return result
}

func (s *StudentService) build(req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, requestError(err)
	}
	// Unparseable labels become undeclared values so NewStudent reports them
	// after the range checks.
	gender, genderErr := models.ParseGender(req.Gender)
	if genderErr != nil {
		gender = models.Gender(math.MaxUint8)
	}
	level, levelErr := models.ParseGradeLevel(req.GradeLevel)
	if levelErr != nil {
		level = models.GradeLevel(math.MaxUint8)
	}
	student, err := models.NewStudent(
		req.FirstName,
		req.LastName,
		req.YearOfBirth,
		req.MonthAndDayOfBirth,
		gender,
		req.LRN,
		req.SchoolID,
		level,
		req.LastGradeAverage,
	)
	switch {
	case err == nil:
		return student, nil
	case genderErr != nil && errors.Is(err, appErrors.ErrInvalidGender):
		return nil, genderErr
	case levelErr != nil && errors.Is(err, appErrors.ErrInvalidGradeLevel):
		return nil, levelErr
	}
	return nil, err
}

func requestError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, "", "invalid student payload")
	}
	first := fieldErrs[0]
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, jsonField(first.StructField()), "invalid student payload")
}

func jsonField(structField string) string {
	switch structField {
	case "FirstName":
		return "first_name"
	case "LastName":
		return "last_name"
	}
	return structField
}
