package domain

import "errors"

var (
	ErrScheduleNotFound     = errors.New("schedule not found")
	ErrMedicineNotFound     = errors.New("medicine not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrInvalidScheduleID     = errors.New("invalid schedule ID")
	ErrInvalidScheduleTimeID = errors.New("invalid schedule time ID")
	ErrInvalidMedicineID     = errors.New("invalid medicine ID")
	ErrInvalidNotificationID = errors.New("invalid notification ID")

	ErrUnsupportedFrequency = errors.New("unsupported frequency type")
	ErrInvalidWeekday       = errors.New("invalid weekday name")
	ErrDaysOfWeekRequired   = errors.New("days of week are required for this frequency")
	ErrInvalidTimeOfDay     = errors.New("invalid time of day: expected HH:MM or HH:MM:SS")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrNoScheduleTimes      = errors.New("at least one schedule time is required")
	ErrInvalidDateRange     = errors.New("invalid date range: end date must not be before start date")

	ErrEmptyMedicineName   = errors.New("medicine name cannot be empty")
	ErrEmptyMedicineDosage = errors.New("medicine dosage cannot be empty")

	ErrAlreadyRead = errors.New("notification is already read")
)
