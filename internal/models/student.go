package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/noah-isme/student-database/pkg/errors"
)

// Student is an immutable learner record. Obtain one through NewStudent;
// the zero value does not satisfy the field bounds.
type Student struct {
	firstName          string
	lastName           string
	yearOfBirth        uint16
	monthAndDayOfBirth uint16
	gender             Gender
	lrn                uint64
	schoolID           uint32
	gradeLevel         GradeLevel
	lastGradeAverage   uint8
}

// studentBounds carries the numeric inputs through the validator. Field
// order and tag order define which violation is reported first.
type studentBounds struct {
	YearOfBirth        uint16     `validate:"max=9999"`
	MonthAndDayOfBirth uint16     `validate:"max=1231,min=101"`
	LRN                uint64     `validate:"max=999999999999"`
	SchoolID           uint32     `validate:"max=999999"`
	LastGradeAverage   uint8      `validate:"max=100"`
	Gender             Gender     `validate:"gender"`
	GradeLevel         GradeLevel `validate:"grade_level"`
}

var boundsValidator = newBoundsValidator()

func newBoundsValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		g, ok := fl.Field().Interface().(Gender)
		return ok && g.IsValid()
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("grade_level", func(fl validator.FieldLevel) bool {
		l, ok := fl.Field().Interface().(GradeLevel)
		return ok && l.IsValid()
	}); err != nil {
		panic(err)
	}
	return v
}

// NewStudent validates the inputs and returns the record holding exactly
// those values. Checks run in this order and the first failure is returned:
// year of birth, month/day upper bound, month/day lower bound, LRN, school
// ID, last grade average, gender, grade level.
//
// Month and day are only range checked; 0230 is accepted.
func NewStudent(firstName, lastName string, yearOfBirth, monthAndDayOfBirth uint16, gender Gender,
	lrn uint64, schoolID uint32, gradeLevel GradeLevel, lastGradeAverage uint8) (*Student, error) {
	err := boundsValidator.Struct(studentBounds{
		YearOfBirth:        yearOfBirth,
		MonthAndDayOfBirth: monthAndDayOfBirth,
		LRN:                lrn,
		SchoolID:           schoolID,
		LastGradeAverage:   lastGradeAverage,
		Gender:             gender,
		GradeLevel:         gradeLevel,
	})
	if err != nil {
		return nil, boundsError(err)
	}
	return &Student{
		firstName:          firstName,
		lastName:           lastName,
		yearOfBirth:        yearOfBirth,
		monthAndDayOfBirth: monthAndDayOfBirth,
		gender:             gender,
		lrn:                lrn,
		schoolID:           schoolID,
		gradeLevel:         gradeLevel,
		lastGradeAverage:   lastGradeAverage,
	}, nil
}

// MustNewStudent is like NewStudent but panics on invalid input. Use it for
// fixtures whose values are known to be in range.
func MustNewStudent(firstName, lastName string, yearOfBirth, monthAndDayOfBirth uint16, gender Gender,
	lrn uint64, schoolID uint32, gradeLevel GradeLevel, lastGradeAverage uint8) *Student {
	s, err := NewStudent(firstName, lastName, yearOfBirth, monthAndDayOfBirth, gender, lrn, schoolID, gradeLevel, lastGradeAverage)
	if err != nil {
		panic(err)
	}
	return s
}

// boundsError maps the first field violation onto a copy of its catalogue
// entry so callers cannot mutate the shared sentinels.
func boundsError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "", "failed to validate student")
	}
	first := fieldErrs[0]
	switch first.StructField() {
	case "YearOfBirth":
		return appErrors.Clone(appErrors.ErrYearOfBirthRange, "")
	case "MonthAndDayOfBirth":
		if first.Tag() == "min" {
			return appErrors.Clone(appErrors.ErrBirthDateBeforeJan1, "")
		}
		return appErrors.Clone(appErrors.ErrBirthDateAfterDec31, "")
	case "LRN":
		return appErrors.Clone(appErrors.ErrLRNRange, "")
	case "SchoolID":
		return appErrors.Clone(appErrors.ErrSchoolIDRange, "")
	case "LastGradeAverage":
		return appErrors.Clone(appErrors.ErrLastGradeAverageRange, "")
	case "Gender":
		return appErrors.Clone(appErrors.ErrInvalidGender, fmt.Sprintf("invalid gender: %v", first.Value()))
	case "GradeLevel":
		return appErrors.Clone(appErrors.ErrInvalidGradeLevel, fmt.Sprintf("invalid grade level: %v", first.Value()))
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, first.Field(), appErrors.ErrValidation.Message)
}

// FirstName as written on the birth certificate.
func (s *Student) FirstName() string { return s.firstName }

// LastName as written on the birth certificate.
func (s *Student) LastName() string { return s.lastName }

// YearOfBirth in YYYY form.
func (s *Student) YearOfBirth() uint16 { return s.yearOfBirth }

// MonthAndDayOfBirth packed as MMDD, e.g. 420 for April 20.
func (s *Student) MonthAndDayOfBirth() uint16 { return s.monthAndDayOfBirth }

func (s *Student) Gender() Gender { return s.gender }

// LRN is the twelve-digit Learner's Reference Number. Its first six digits
// are the school ID of the school that first registered the learner.
func (s *Student) LRN() uint64 { return s.lrn }

// SchoolID of the current school.
func (s *Student) SchoolID() uint32 { return s.schoolID }

func (s *Student) GradeLevel() GradeLevel { return s.gradeLevel }

// LastGradeAverage from the previous grade level; zero when not applicable.
func (s *Student) LastGradeAverage() uint8 { return s.lastGradeAverage }

// StudentColumns is the header order used by Fields consumers.
var StudentColumns = []string{
	"First Name",
	"Last Name",
	"Year of Birth",
	"Month and Day of Birth",
	"Gender",
	"LRN",
	"School ID",
	"Grade Level",
	"Last Grade Average",
}

// Fields returns the display row keyed by StudentColumns.
func (s *Student) Fields() map[string]string {
	return map[string]string{
		"First Name":             s.firstName,
		"Last Name":              s.lastName,
		"Year of Birth":          fmt.Sprintf("%04d", s.yearOfBirth),
		"Month and Day of Birth": fmt.Sprintf("%04d", s.monthAndDayOfBirth),
		"Gender":                 s.gender.String(),
		"LRN":                    fmt.Sprintf("%012d", s.lrn),
		"School ID":              fmt.Sprintf("%06d", s.schoolID),
		"Grade Level":            s.gradeLevel.String(),
		"Last Grade Average":     fmt.Sprintf("%d", s.lastGradeAverage),
	}
}

type studentJSON struct {
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	YearOfBirth        uint16     `json:"year_of_birth"`
	MonthAndDayOfBirth uint16     `json:"month_and_day_of_birth"`
	Gender             Gender     `json:"gender"`
	LRN                uint64     `json:"lrn"`
	SchoolID           uint32     `json:"school_id"`
	GradeLevel         GradeLevel `json:"grade_level"`
	LastGradeAverage   uint8      `json:"last_grade_average"`
}

// MarshalJSON emits the record with snake_case keys and enum labels.
func (s *Student) MarshalJSON() ([]byte, error) {
	return json.Marshal(studentJSON{
		FirstName:          s.firstName,
		LastName:           s.lastName,
		YearOfBirth:        s.yearOfBirth,
		MonthAndDayOfBirth: s.monthAndDayOfBirth,
		Gender:             s.gender,
		LRN:                s.lrn,
		SchoolID:           s.schoolID,
		GradeLevel:         s.gradeLevel,
		LastGradeAverage:   s.lastGradeAverage,
	})
}
