package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/student-database/pkg/errors"
)

func TestGenderLabels(t *testing.T) {
	expected := map[Gender]string{
		GenderMale:      "Male",
		GenderFemale:    "Female",
		GenderNonBinary: "Non-binary",
	}
	all := Genders()
	require.Len(t, all, len(expected))

	seen := make(map[string]bool)
	for _, g := range all {
		assert.True(t, g.IsValid())
		label := g.String()
		assert.NotEmpty(t, label)
		assert.Equal(t, expected[g], label)
		assert.False(t, seen[label], "duplicate label %q", label)
		seen[label] = true
	}
	assert.False(t, Gender(3).IsValid())
	assert.Equal(t, "Gender(3)", Gender(3).String())
}

func TestGradeLevelLabels(t *testing.T) {
	expected := []string{
		"Nursery", "Kindergarten", "Preparatory",
		"Grade 1", "Grade 2", "Grade 3", "Grade 4", "Grade 5", "Grade 6",
		"Grade 7", "Grade 8", "Grade 9", "Grade 10", "Grade 11", "Grade 12",
		"First Year College", "Second Year College", "Third Year College", "Fourth Year College",
		"Masteral", "Doctorate",
	}
	all := GradeLevels()
	require.Len(t, all, 21)

	seen := make(map[string]bool)
	for i, l := range all {
		assert.True(t, l.IsValid())
		assert.Equal(t, expected[i], l.String())
		assert.False(t, seen[l.String()], "duplicate label %q", l.String())
		seen[l.String()] = true
	}
	assert.Equal(t, "Grade 11", GradeLevelGrade11.String())
	assert.Equal(t, "First Year College", GradeLevelCollegeFirstYear.String())
	assert.False(t, GradeLevel(21).IsValid())
	assert.Equal(t, "GradeLevel(21)", GradeLevel(21).String())
}

func TestParseGender(t *testing.T) {
	cases := map[string]Gender{
		"Male":       GenderMale,
		"female":     GenderFemale,
		"Non-binary": GenderNonBinary,
		"NONBINARY":  GenderNonBinary,
		"  male ":    GenderMale,
	}
	for raw, want := range cases {
		got, err := ParseGender(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseGender("other")
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrInvalidGender)
}

func TestParseGradeLevel(t *testing.T) {
	for _, l := range GradeLevels() {
		got, err := ParseGradeLevel(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	got, err := ParseGradeLevel("grade11")
	require.NoError(t, err)
	assert.Equal(t, GradeLevelGrade11, got)

	got, err = ParseGradeLevel("collegefourthyear")
	require.NoError(t, err)
	assert.Equal(t, GradeLevelCollegeFourthYear, got)

	_, err = ParseGradeLevel("Grade 13")
	assert.ErrorIs(t, err, appErrors.ErrInvalidGradeLevel)
}

func TestEnumTextEncoding(t *testing.T) {
	var payload struct {
		Gender Gender     `json:"gender"`
		Level  GradeLevel `json:"level"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"gender":"Non-binary","level":"Masteral"}`), &payload))
	assert.Equal(t, GenderNonBinary, payload.Gender)
	assert.Equal(t, GradeLevelMasteral, payload.Level)

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"gender":"Non-binary","level":"Masteral"}`, string(raw))

	_, err = Gender(7).MarshalText()
	assert.ErrorIs(t, err, appErrors.ErrInvalidGender)
	_, err = GradeLevel(40).MarshalText()
	assert.ErrorIs(t, err, appErrors.ErrInvalidGradeLevel)
}
