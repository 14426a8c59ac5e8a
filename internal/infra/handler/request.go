package handler

import "time"

const dateLayout = "2006-01-02"

type ListNotificationsRequest struct {
	IncludeRead bool `form:"include_read"`
}

type ScheduleTimeRequest struct {
	TimeOfDay string `json:"time_of_day" binding:"required"`
	// Quantity defaults to 1 when omitted.
	Quantity *int `json:"quantity"`
}

type ScheduleRequest struct {
	StartDate     string                `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate       *string               `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	FrequencyType string                `json:"frequency_type" binding:"required"`
	DaysOfWeek    []string              `json:"days_of_week"`
	Notes         string                `json:"notes"`
	Times         []ScheduleTimeRequest `json:"times" binding:"required,min=1,dive"`
}

type CreateScheduleRequest struct {
	MedicineID string `json:"medicine_id" binding:"required,uuid"`
	ScheduleRequest
}

type UpdateScheduleRequest struct {
	ScheduleRequest
}

type ListSchedulesRequest struct {
	MedicineID string `form:"medicine_id" binding:"omitempty,uuid"`
}

type MedicineRequest struct {
	Name   string  `json:"name" binding:"required"`
	Dosage string  `json:"dosage" binding:"required"`
	UnitID *string `json:"unit_id" binding:"omitempty,uuid"`
	Notes  string  `json:"notes"`
}

type CreateMedicineRequest struct {
	MedicineRequest
}

type UpdateMedicineRequest struct {
	MedicineRequest
}

// dates parses the start and optional end date as UTC calendar dates.
func (r ScheduleRequest) dates() (time.Time, *time.Time, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return time.Time{}, nil, err
	}

	if r.EndDate == nil {
		return start, nil, nil
	}

	end, err := time.Parse(dateLayout, *r.EndDate)
	if err != nil {
		return time.Time{}, nil, err
	}

	return start, &end, nil
}
