package models

import (
	"strconv"
	"strings"

	appErrors "github.com/noah-isme/student-database/pkg/errors"
)

// Gender represents the gender recorded for a student.
type Gender uint8

const (
	GenderMale Gender = iota
	GenderFemale
	GenderNonBinary
)

var genderNames = [...]struct {
	ident string
	label string
}{
	GenderMale:      {"Male", "Male"},
	GenderFemale:    {"Female", "Female"},
	GenderNonBinary: {"NonBinary", "Non-binary"},
}

// Genders lists every gender in declaration order.
func Genders() []Gender {
	out := make([]Gender, len(genderNames))
	for i := range genderNames {
		out[i] = Gender(i)
	}
	return out
}

// IsValid reports whether g is one of the declared genders.
func (g Gender) IsValid() bool {
	return int(g) < len(genderNames)
}

// String returns the display label.
func (g Gender) String() string {
	if !g.IsValid() {
		return "Gender(" + strconv.Itoa(int(g)) + ")"
	}
	return genderNames[g].label
}

// ParseGender resolves a display label or identifier, ignoring case.
func ParseGender(raw string) (Gender, error) {
	value := strings.TrimSpace(raw)
	for i, name := range genderNames {
		if strings.EqualFold(value, name.label) || strings.EqualFold(value, name.ident) {
			return Gender(i), nil
		}
	}
	return 0, appErrors.Clone(appErrors.ErrInvalidGender, "invalid gender: "+strconv.Quote(raw))
}

// MarshalText encodes the display label.
func (g Gender) MarshalText() ([]byte, error) {
	if !g.IsValid() {
		return nil, appErrors.Clone(appErrors.ErrInvalidGender, "invalid gender: "+g.String())
	}
	return []byte(g.String()), nil
}

// UnmarshalText accepts anything ParseGender does.
func (g *Gender) UnmarshalText(text []byte) error {
	parsed, err := ParseGender(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
