package app_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KasumiMercury/meditrack/internal/app"
	"github.com/KasumiMercury/meditrack/internal/domain"
)

func TestNewValidationErrorSuccess(t *testing.T) {
	tests := []struct {
		name            string
		field           string
		message         string
		expectedError   string
		expectedField   string
		expectedMessage string
	}{
		{
			name:            "user_id validation error",
			field:           "user_id",
			message:         "invalid user ID: must be a non-nil UUID",
			expectedError:   "validation error: user_id - invalid user ID: must be a non-nil UUID",
			expectedField:   "user_id",
			expectedMessage: "invalid user ID: must be a non-nil UUID",
		},
		{
			name:            "schedule time validation error with index",
			field:           "times[1].time_of_day",
			message:         "invalid time of day",
			expectedError:   "validation error: times[1].time_of_day - invalid time of day",
			expectedField:   "times[1].time_of_day",
			expectedMessage: "invalid time of day",
		},
		{
			name:            "frequency validation error",
			field:           "frequency_type",
			message:         "unsupported frequency type: Monthly",
			expectedError:   "validation error: frequency_type - unsupported frequency type: Monthly",
			expectedField:   "frequency_type",
			expectedMessage: "unsupported frequency type: Monthly",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := app.NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedField, err.Field)
			assert.Equal(t, tt.expectedMessage, err.Message)
			assert.Equal(t, tt.expectedError, err.Error())
			assert.ErrorIs(t, err, app.ErrValidation)
		})
	}
}

func TestIsValidationErrorSuccess(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "is ValidationError",
			err:      app.NewValidationError("field", "message"),
			expected: true,
		},
		{
			name:     "wrapped ValidationError",
			err:      fmt.Errorf("wrapped: %w", app.NewValidationError("field", "message")),
			expected: true,
		},
		{
			name:     "not ValidationError - generic error",
			err:      errors.New("generic error"),
			expected: false,
		},
		{
			name:     "not ValidationError - nil",
			err:      nil,
			expected: false,
		},
		{
			name:     "not ValidationError - not found",
			err:      fmt.Errorf("%w: %v", app.ErrNotFound, errors.New("schedule not found")),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := app.IsValidationError(tt.err)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestValidationErrorTypeAssertionSuccess(t *testing.T) {
	err := fmt.Errorf("outer: %w", app.NewValidationError("days_of_week", "required"))

	var validationErr *app.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "days_of_week", validationErr.Field)
	assert.Equal(t, "required", validationErr.Message)
}

func TestNewFieldErrorKeepsCause(t *testing.T) {
	tests := []struct {
		name          string
		field         string
		cause         error
		expectedError string
	}{
		{
			name:          "domain sentinel",
			field:         "name",
			cause:         domain.ErrEmptyMedicineName,
			expectedError: "validation error: name - " + domain.ErrEmptyMedicineName.Error(),
		},
		{
			name:          "wrapped domain error",
			field:         "times[0].time_of_day",
			cause:         fmt.Errorf("parse 25:00: %w", domain.ErrInvalidTimeOfDay),
			expectedError: "validation error: times[0].time_of_day - parse 25:00: " + domain.ErrInvalidTimeOfDay.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fmt.Errorf("outer: %w", app.NewFieldError(tt.field, tt.cause))

			assert.ErrorIs(t, err, app.ErrValidation)
			assert.ErrorIs(t, err, tt.cause)
			assert.True(t, app.IsValidationError(err))
			assert.Equal(t, "outer: "+tt.expectedError, err.Error())

			var validationErr *app.ValidationError
			assert.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestValidationErrorWithoutCause(t *testing.T) {
	err := app.NewValidationError("look_ahead", "must be positive")

	assert.ErrorIs(t, err, app.ErrValidation)
	assert.NotErrorIs(t, err, domain.ErrEmptyMedicineName)
	assert.Nil(t, err.Cause)
}
