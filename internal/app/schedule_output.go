package app

import (
	"time"

	"github.com/KasumiMercury/meditrack/internal/domain"
)

type ScheduleOutput struct {
	ID            string
	UserID        string
	MedicineID    string
	MedicineName  string
	StartDate     time.Time
	EndDate       *time.Time
	FrequencyType string
	DaysOfWeek    []string
	Notes         string
	Times         []ScheduleTimeOutput
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ScheduleTimeOutput struct {
	ID        string
	TimeOfDay string
	Quantity  int
}

type SchedulesOutput struct {
	Schedules []ScheduleOutput
	Count     int32
}

func FromSchedule(s *domain.Schedule) ScheduleOutput {
	times := make([]ScheduleTimeOutput, 0, len(s.Times()))
	for _, t := range s.Times() {
		times = append(times, ScheduleTimeOutput{
			ID:        t.ID().String(),
			TimeOfDay: t.TimeOfDay().String(),
			Quantity:  t.Quantity(),
		})
	}

	medicineName := ""
	if s.Medicine() != nil {
		medicineName = s.Medicine().Name()
	}

	return ScheduleOutput{
		ID:            s.ID().String(),
		UserID:        s.UserID().String(),
		MedicineID:    s.MedicineID().String(),
		MedicineName:  medicineName,
		StartDate:     s.StartDate(),
		EndDate:       s.EndDate(),
		FrequencyType: s.Frequency().String(),
		DaysOfWeek:    s.DaysOfWeek().Names(),
		Notes:         s.Notes(),
		Times:         times,
		CreatedAt:     s.CreatedAt(),
		UpdatedAt:     s.UpdatedAt(),
	}
}

func FromSchedules(schedules []*domain.Schedule) SchedulesOutput {
	outputs := make([]ScheduleOutput, 0, len(schedules))
	for _, s := range schedules {
		outputs = append(outputs, FromSchedule(s))
	}

	return SchedulesOutput{
		Schedules: outputs,
		Count:     int32(len(outputs)), //nolint:gosec
	}
}
