package repository

import (
	"time"

	"gorm.io/datatypes"

	"github.com/KasumiMercury/meditrack/internal/domain"
)

type ScheduleModel struct {
	ID            string                      `gorm:"column:id;type:uuid;primaryKey"`
	UserID        string                      `gorm:"column:user_id;type:uuid;not null;index:idx_schedules_user_id"`
	MedicineID    string                      `gorm:"column:medicine_id;type:uuid;not null;index:idx_schedules_medicine_id"`
	Medicine      *MedicineModel              `gorm:"foreignKey:MedicineID;references:ID"`
	StartDate     time.Time                   `gorm:"column:start_date;type:timestamptz;not null;index:idx_schedules_active_range"`
	EndDate       *time.Time                  `gorm:"column:end_date;type:timestamptz;index:idx_schedules_active_range"`
	FrequencyType string                      `gorm:"column:frequency_type;type:varchar(32);not null"`
	DaysOfWeek    datatypes.JSONSlice[string] `gorm:"column:days_of_week;type:jsonb"`
	Notes         string                      `gorm:"column:notes;type:text;not null;default:''"`
	Times         []ScheduleTimeModel         `gorm:"foreignKey:ScheduleID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time                   `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt     time.Time                   `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}

type ScheduleTimeModel struct {
	ID         string         `gorm:"column:id;type:uuid;primaryKey"`
	ScheduleID string         `gorm:"column:schedule_id;type:uuid;not null;index:idx_schedule_times_schedule_id"`
	TimeOfDay  datatypes.Time `gorm:"column:time_of_day;type:time;not null"`
	Quantity   int            `gorm:"column:quantity;type:integer;not null;default:1"`
}

func (ScheduleTimeModel) TableName() string {
	return "schedule_times"
}

// ToEntity converts the row into a schedule. The medicine is attached only
// when it was preloaded.
func (m *ScheduleModel) ToEntity() (*domain.Schedule, error) {
	id, err := domain.ScheduleIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	userID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	medicineID, err := domain.MedicineIDFromString(m.MedicineID)
	if err != nil {
		return nil, err
	}

	var medicine *domain.Medicine

	if m.Medicine != nil {
		medicine, err = m.Medicine.ToEntity()
		if err != nil {
			return nil, err
		}
	}

	// An unknown value is kept as-is so the generator can skip the schedule.
	frequency := domain.Frequency(m.FrequencyType)

	days, err := domain.ParseWeekdays(m.DaysOfWeek)
	if err != nil {
		return nil, err
	}

	times := make([]domain.ScheduleTime, 0, len(m.Times))
	for _, tm := range m.Times {
		st, err := tm.ToEntity()
		if err != nil {
			return nil, err
		}

		times = append(times, st)
	}

	var endDate *time.Time

	if m.EndDate != nil {
		e := m.EndDate.UTC()
		endDate = &e
	}

	return domain.ReconstituteSchedule(
		id,
		userID,
		medicineID,
		medicine,
		m.StartDate.UTC(),
		endDate,
		frequency,
		days,
		m.Notes,
		times,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func (m *ScheduleTimeModel) ToEntity() (domain.ScheduleTime, error) {
	id, err := domain.ScheduleTimeIDFromString(m.ID)
	if err != nil {
		return domain.ScheduleTime{}, err
	}

	scheduleID, err := domain.ScheduleIDFromString(m.ScheduleID)
	if err != nil {
		return domain.ScheduleTime{}, err
	}

	tod, err := domain.TimeOfDayFromDuration(time.Duration(m.TimeOfDay))
	if err != nil {
		return domain.ScheduleTime{}, err
	}

	return domain.ReconstituteScheduleTime(id, scheduleID, tod, m.Quantity), nil
}

func ScheduleFromEntity(e *domain.Schedule) *ScheduleModel {
	return &ScheduleModel{
		ID:            e.ID().String(),
		UserID:        e.UserID().String(),
		MedicineID:    e.MedicineID().String(),
		StartDate:     e.StartDate(),
		EndDate:       e.EndDate(),
		FrequencyType: e.Frequency().String(),
		DaysOfWeek:    datatypes.NewJSONSlice(e.DaysOfWeek().Names()),
		Notes:         e.Notes(),
		Times:         ScheduleTimesFromEntity(e.Times()),
		CreatedAt:     e.CreatedAt(),
		UpdatedAt:     e.UpdatedAt(),
	}
}

func ScheduleTimesFromEntity(times []domain.ScheduleTime) []ScheduleTimeModel {
	models := make([]ScheduleTimeModel, 0, len(times))
	for _, t := range times {
		tod := t.TimeOfDay()
		models = append(models, ScheduleTimeModel{
			ID:         t.ID().String(),
			ScheduleID: t.ScheduleID().String(),
			TimeOfDay:  datatypes.NewTime(tod.Hour(), tod.Minute(), tod.Second(), 0),
			Quantity:   t.Quantity(),
		})
	}

	return models
}
