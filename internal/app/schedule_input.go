package app

import "time"

type ScheduleTimeInput struct {
	TimeOfDay string
	Quantity  int
}

type CreateScheduleInput struct {
	UserID        string
	MedicineID    string
	StartDate     time.Time
	EndDate       *time.Time
	FrequencyType string
	DaysOfWeek    []string
	Notes         string
	Times         []ScheduleTimeInput
}

type GetScheduleInput struct {
	UserID string
	ID     string
}

type ListSchedulesInput struct {
	UserID string
	// MedicineID narrows the list to one medicine when set.
	MedicineID string
}

type UpdateScheduleInput struct {
	UserID        string
	ID            string
	StartDate     time.Time
	EndDate       *time.Time
	FrequencyType string
	DaysOfWeek    []string
	Notes         string
	Times         []ScheduleTimeInput
}

type DeleteScheduleInput struct {
	UserID string
	ID     string
}
