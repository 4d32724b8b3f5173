package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByCode(t *testing.T) {
	clone := Clone(ErrLRNRange, "lrn 1000000000000 has 13 digits")
	assert.True(t, errors.Is(clone, ErrLRNRange))
	assert.False(t, errors.Is(clone, ErrSchoolIDRange))
	assert.Equal(t, "lrn", clone.Field)

	wrapped := fmt.Errorf("register: %w", clone)
	assert.True(t, errors.Is(wrapped, ErrLRNRange))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, ErrValidation.Code, "first_name", "invalid student payload")
	assert.Equal(t, "invalid student payload: boom", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))
	assert.Same(t, ErrYearOfBirthRange, FromError(fmt.Errorf("ctx: %w", ErrYearOfBirthRange)))

	normalised := FromError(errors.New("disk on fire"))
	assert.Equal(t, ErrInternal.Code, normalised.Code)
	assert.Contains(t, normalised.Error(), "disk on fire")
}

func TestNilError(t *testing.T) {
	var e *Error
	assert.Equal(t, "<nil>", e.Error())
	assert.Nil(t, e.Unwrap())
	assert.Nil(t, Clone(nil, "x"))
}
