package errors

import (
	"errors"
	"fmt"
)

// Error represents a typed domain error naming the offending field.
type Error struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target carries the same code, so clones with custom
// messages still match the catalogue entries below.
func (e *Error) Is(target error) bool {
	var t *Error
	if e == nil || !errors.As(target, &t) || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code, field, message string) *Error {
	return &Error{Code: code, Field: field, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code, field, message string) *Error {
	return &Error{Code: code, Field: field, Message: message, Err: err}
}

// Range violations reported by the student constructor, in check order.
var (
	ErrYearOfBirthRange      = New("YEAR_OF_BIRTH_OUT_OF_RANGE", "year_of_birth", "invalid year of birth: exceeds 4 digits")
	ErrBirthDateAfterDec31   = New("BIRTH_DATE_AFTER_DECEMBER_31", "month_and_day_of_birth", "invalid month and/or day of birth: date exceeds December 31 (1231)")
	ErrBirthDateBeforeJan1   = New("BIRTH_DATE_BEFORE_JANUARY_1", "month_and_day_of_birth", "invalid month and/or day of birth: date is earlier than January 1 (0101)")
	ErrLRNRange              = New("LRN_OUT_OF_RANGE", "lrn", "invalid LRN: exceeds 12 digits")
	ErrSchoolIDRange         = New("SCHOOL_ID_OUT_OF_RANGE", "school_id", "invalid school ID: exceeds 6 digits")
	ErrLastGradeAverageRange = New("LAST_GRADE_AVERAGE_OUT_OF_RANGE", "last_grade_average", "invalid last grade average: exceeds 100")
)

// Predefined errors for common scenarios.
var (
	ErrInvalidGender     = New("INVALID_GENDER", "gender", "invalid gender")
	ErrInvalidGradeLevel = New("INVALID_GRADE_LEVEL", "grade_level", "invalid grade level")
	ErrValidation        = New("VALIDATION_ERROR", "", "validation failed")
	ErrUnsupportedFormat = New("UNSUPPORTED_FORMAT", "format", "unsupported export format")
	ErrInternal          = New("INTERNAL_ERROR", "", "internal error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Field, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
