package handler

import (
	"time"

	"github.com/KasumiMercury/meditrack/internal/app"
)

type NotificationResponse struct {
	ID             string     `json:"id"`
	ScheduleTimeID string     `json:"schedule_time_id"`
	ScheduledTime  time.Time  `json:"scheduled_time"`
	Message        string     `json:"message"`
	IsRead         bool       `json:"is_read"`
	SentTime       *time.Time `json:"sent_time"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type NotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Count         int32                  `json:"count"`
}

type ScheduleTimeResponse struct {
	ID        string `json:"id"`
	TimeOfDay string `json:"time_of_day"`
	Quantity  int    `json:"quantity"`
}

type ScheduleResponse struct {
	ID            string                 `json:"id"`
	MedicineID    string                 `json:"medicine_id"`
	MedicineName  string                 `json:"medicine_name,omitempty"`
	StartDate     string                 `json:"start_date"`
	EndDate       *string                `json:"end_date"`
	FrequencyType string                 `json:"frequency_type"`
	DaysOfWeek    []string               `json:"days_of_week"`
	Notes         string                 `json:"notes"`
	Times         []ScheduleTimeResponse `json:"times"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type SchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Count     int32              `json:"count"`
}

type MedicineResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	UnitID    *string   `json:"unit_id"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MedicinesResponse struct {
	Medicines []MedicineResponse `json:"medicines"`
	Count     int32              `json:"count"`
}

func FromNotificationDTO(output app.NotificationOutput) NotificationResponse {
	return NotificationResponse{
		ID:             output.ID,
		ScheduleTimeID: output.ScheduleTimeID,
		ScheduledTime:  output.ScheduledTime,
		Message:        output.Message,
		IsRead:         output.IsRead,
		SentTime:       output.SentTime,
		CreatedAt:      output.CreatedAt,
		UpdatedAt:      output.UpdatedAt,
	}
}

func FromNotificationDTOs(output app.NotificationsOutput) NotificationsResponse {
	notifications := make([]NotificationResponse, 0, len(output.Notifications))
	for _, n := range output.Notifications {
		notifications = append(notifications, FromNotificationDTO(n))
	}

	return NotificationsResponse{
		Notifications: notifications,
		Count:         output.Count,
	}
}

func FromScheduleDTO(output app.ScheduleOutput) ScheduleResponse {
	times := make([]ScheduleTimeResponse, 0, len(output.Times))
	for _, t := range output.Times {
		times = append(times, ScheduleTimeResponse{
			ID:        t.ID,
			TimeOfDay: t.TimeOfDay,
			Quantity:  t.Quantity,
		})
	}

	var endDate *string

	if output.EndDate != nil {
		s := output.EndDate.Format(dateLayout)
		endDate = &s
	}

	days := output.DaysOfWeek
	if days == nil {
		days = []string{}
	}

	return ScheduleResponse{
		ID:            output.ID,
		MedicineID:    output.MedicineID,
		MedicineName:  output.MedicineName,
		StartDate:     output.StartDate.Format(dateLayout),
		EndDate:       endDate,
		FrequencyType: output.FrequencyType,
		DaysOfWeek:    days,
		Notes:         output.Notes,
		Times:         times,
		CreatedAt:     output.CreatedAt,
		UpdatedAt:     output.UpdatedAt,
	}
}

func FromScheduleDTOs(output app.SchedulesOutput) SchedulesResponse {
	schedules := make([]ScheduleResponse, 0, len(output.Schedules))
	for _, s := range output.Schedules {
		schedules = append(schedules, FromScheduleDTO(s))
	}

	return SchedulesResponse{
		Schedules: schedules,
		Count:     output.Count,
	}
}

func FromMedicineDTO(output app.MedicineOutput) MedicineResponse {
	return MedicineResponse{
		ID:        output.ID,
		Name:      output.Name,
		Dosage:    output.Dosage,
		UnitID:    output.UnitID,
		Notes:     output.Notes,
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
}

func FromMedicineDTOs(output app.MedicinesOutput) MedicinesResponse {
	medicines := make([]MedicineResponse, 0, len(output.Medicines))
	for _, m := range output.Medicines {
		medicines = append(medicines, FromMedicineDTO(m))
	}

	return MedicinesResponse{
		Medicines: medicines,
		Count:     output.Count,
	}
}
