package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KasumiMercury/meditrack/internal/domain"
)

type scheduleRepositoryImpl struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) domain.ScheduleRepository {
	return &scheduleRepositoryImpl{
		db: db,
	}
}

func orderedTimes(db *gorm.DB) *gorm.DB {
	return db.Order("time_of_day ASC")
}

func (r *scheduleRepositoryImpl) Save(ctx context.Context, schedule *domain.Schedule) error {
	slog.Debug("saving schedule to database",
		"schedule_id", schedule.ID().String(),
	)

	m := ScheduleFromEntity(schedule)

	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		slog.Error("failed to save schedule to database",
			"schedule_id", schedule.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	slog.Debug("schedule saved to database",
		"schedule_id", schedule.ID().String(),
		"times_count", len(m.Times),
	)

	return nil
}

func (r *scheduleRepositoryImpl) FindByID(ctx context.Context, id domain.ScheduleID) (*domain.Schedule, error) {
	slog.Debug("finding schedule by ID",
		"schedule_id", id.String(),
	)

	var m ScheduleModel

	result := r.db.WithContext(ctx).
		Preload("Times", orderedTimes).
		Preload("Medicine").
		Where("id = ?", id.String()).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Debug("schedule not found",
				"schedule_id", id.String(),
			)

			return nil, domain.ErrScheduleNotFound
		}

		slog.Error("failed to find schedule by ID",
			"schedule_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *scheduleRepositoryImpl) FindByUserID(ctx context.Context, userID domain.UserID) ([]*domain.Schedule, error) {
	slog.Debug("finding schedules by user ID",
		"user_id", userID.String(),
	)

	var models []ScheduleModel

	result := r.db.WithContext(ctx).
		Joins("Medicine").
		Preload("Times", orderedTimes).
		Where("schedules.user_id = ?", userID.String()).
		Order("schedules.start_date ASC").
		Order(`"Medicine"."name" ASC`).
		Find(&models)
	if result.Error != nil {
		slog.Error("failed to find schedules by user ID",
			"user_id", userID.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	schedules := make([]*domain.Schedule, 0, len(models))
	for _, m := range models {
		s, err := m.ToEntity()
		if err != nil {
			slog.Error("failed to convert model to entity",
				"schedule_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		schedules = append(schedules, s)
	}

	slog.Debug("schedules found by user ID",
		"user_id", userID.String(),
		"count", len(schedules),
	)

	return schedules, nil
}

// FindActive skips rows that cannot be converted so one corrupt schedule
// does not block generation for everyone else.
func (r *scheduleRepositoryImpl) FindActive(ctx context.Context, from, until time.Time) ([]*domain.Schedule, error) {
	slog.Debug("finding active schedules",
		"from", from,
		"until", until,
	)

	var models []ScheduleModel

	result := r.db.WithContext(ctx).
		Preload("Times", orderedTimes).
		Preload("Medicine").
		Where("start_date <= ? AND (end_date IS NULL OR end_date >= ?)", until.UTC(), from.UTC()).
		Order("start_date ASC").
		Find(&models)
	if result.Error != nil {
		slog.Error("failed to find active schedules",
			"from", from,
			"until", until,
			"error", result.Error,
		)

		return nil, result.Error
	}

	schedules := make([]*domain.Schedule, 0, len(models))
	for _, m := range models {
		s, err := m.ToEntity()
		if err != nil {
			slog.Warn("skipping unreadable schedule",
				"schedule_id", m.ID,
				"error", err,
			)

			continue
		}

		schedules = append(schedules, s)
	}

	slog.Debug("active schedules found",
		"count", len(schedules),
	)

	return schedules, nil
}

func (r *scheduleRepositoryImpl) Update(ctx context.Context, schedule *domain.Schedule) error {
	slog.Debug("updating schedule in database",
		"schedule_id", schedule.ID().String(),
	)

	m := ScheduleFromEntity(schedule)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&ScheduleModel{}).
			Omit(clause.Associations).
			Where("id = ?", m.ID).
			Select("start_date", "end_date", "frequency_type", "days_of_week", "notes", "updated_at").
			Updates(m)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return domain.ErrScheduleNotFound
		}

		if err := tx.Where("schedule_id = ?", m.ID).Delete(&ScheduleTimeModel{}).Error; err != nil {
			return err
		}

		if len(m.Times) == 0 {
			return nil
		}

		return tx.Create(&m.Times).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrScheduleNotFound) {
			slog.Debug("schedule not found for update",
				"schedule_id", schedule.ID().String(),
			)

			return err
		}

		slog.Error("failed to update schedule in database",
			"schedule_id", schedule.ID().String(),
			"error", err,
		)

		return err
	}

	slog.Debug("schedule updated in database",
		"schedule_id", schedule.ID().String(),
		"times_count", len(m.Times),
	)

	return nil
}

func (r *scheduleRepositoryImpl) Delete(ctx context.Context, id domain.ScheduleID) error {
	slog.Debug("deleting schedule from database",
		"schedule_id", id.String(),
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_id = ?", id.String()).Delete(&ScheduleTimeModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id.String()).Delete(&ScheduleModel{})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return domain.ErrScheduleNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrScheduleNotFound) {
			slog.Debug("schedule not found for deletion",
				"schedule_id", id.String(),
			)

			return err
		}

		slog.Error("failed to delete schedule from database",
			"schedule_id", id.String(),
			"error", err,
		)

		return err
	}

	slog.Debug("schedule deleted from database",
		"schedule_id", id.String(),
	)

	return nil
}

func (r *scheduleRepositoryImpl) WithTx(ctx context.Context, fn func(repo domain.ScheduleRepository) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		slog.Error("failed to begin transaction",
			"error", tx.Error,
		)

		return tx.Error
	}

	txRepo := &scheduleRepositoryImpl{db: tx}

	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			slog.Error("failed to rollback transaction",
				"error", rbErr,
				"original_error", err,
			)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		slog.Error("failed to commit transaction",
			"error", err,
		)

		return err
	}

	return nil
}
