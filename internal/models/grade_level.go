package models

import (
	"strconv"
	"strings"

	appErrors "github.com/noah-isme/student-database/pkg/errors"
)

// GradeLevel is a position in the Philippine K-12 and tertiary sequence,
// from nursery to doctorate.
type GradeLevel uint8

const (
	GradeLevelNursery GradeLevel = iota
	GradeLevelKindergarten
	GradeLevelPreparatory
	GradeLevelGrade1
	GradeLevelGrade2
	GradeLevelGrade3
	GradeLevelGrade4
	GradeLevelGrade5
	GradeLevelGrade6
	GradeLevelGrade7
	GradeLevelGrade8
	GradeLevelGrade9
	GradeLevelGrade10
	GradeLevelGrade11
	GradeLevelGrade12
	GradeLevelCollegeFirstYear
	GradeLevelCollegeSecondYear
	GradeLevelCollegeThirdYear
	GradeLevelCollegeFourthYear
	GradeLevelMasteral
	GradeLevelDoctorate
)

var gradeLevelNames = [...]struct {
	ident string
	label string
}{
	GradeLevelNursery:           {"Nursery", "Nursery"},
	GradeLevelKindergarten:      {"Kindergarten", "Kindergarten"},
	GradeLevelPreparatory:       {"Preparatory", "Preparatory"},
	GradeLevelGrade1:            {"Grade1", "Grade 1"},
	GradeLevelGrade2:            {"Grade2", "Grade 2"},
	GradeLevelGrade3:            {"Grade3", "Grade 3"},
	GradeLevelGrade4:            {"Grade4", "Grade 4"},
	GradeLevelGrade5:            {"Grade5", "Grade 5"},
	GradeLevelGrade6:            {"Grade6", "Grade 6"},
	GradeLevelGrade7:            {"Grade7", "Grade 7"},
	GradeLevelGrade8:            {"Grade8", "Grade 8"},
	GradeLevelGrade9:            {"Grade9", "Grade 9"},
	GradeLevelGrade10:           {"Grade10", "Grade 10"},
	GradeLevelGrade11:           {"Grade11", "Grade 11"},
	GradeLevelGrade12:           {"Grade12", "Grade 12"},
	GradeLevelCollegeFirstYear:  {"CollegeFirstYear", "First Year College"},
	GradeLevelCollegeSecondYear: {"CollegeSecondYear", "Second Year College"},
	GradeLevelCollegeThirdYear:  {"CollegeThirdYear", "Third Year College"},
	GradeLevelCollegeFourthYear: {"CollegeFourthYear", "Fourth Year College"},
	GradeLevelMasteral:          {"Masteral", "Masteral"},
	GradeLevelDoctorate:         {"Doctorate", "Doctorate"},
}

// GradeLevels lists every grade level from nursery to doctorate.
func GradeLevels() []GradeLevel {
	out := make([]GradeLevel, len(gradeLevelNames))
	for i := range gradeLevelNames {
		out[i] = GradeLevel(i)
	}
	return out
}

// IsValid reports whether l is one of the declared grade levels.
func (l GradeLevel) IsValid() bool {
	return int(l) < len(gradeLevelNames)
}

// String returns the display label, e.g. "Grade 11" or "First Year College".
func (l GradeLevel) String() string {
	if !l.IsValid() {
		return "GradeLevel(" + strconv.Itoa(int(l)) + ")"
	}
	return gradeLevelNames[l].label
}

// ParseGradeLevel resolves a display label or identifier, ignoring case.
func ParseGradeLevel(raw string) (GradeLevel, error) {
	value := strings.TrimSpace(raw)
	for i, name := range gradeLevelNames {
		if strings.EqualFold(value, name.label) || strings.EqualFold(value, name.ident) {
			return GradeLevel(i), nil
		}
	}
	return 0, appErrors.Clone(appErrors.ErrInvalidGradeLevel, "invalid grade level: "+strconv.Quote(raw))
}

// MarshalText encodes the display label.
func (l GradeLevel) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, appErrors.Clone(appErrors.ErrInvalidGradeLevel, "invalid grade level: "+l.String())
	}
	return []byte(l.String()), nil
}

// UnmarshalText accepts anything ParseGradeLevel does.
func (l *GradeLevel) UnmarshalText(text []byte) error {
	parsed, err := ParseGradeLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
