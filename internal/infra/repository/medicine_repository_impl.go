package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/meditrack/internal/domain"
)

type medicineRepositoryImpl struct {
	db *gorm.DB
}

func NewMedicineRepository(db *gorm.DB) domain.MedicineRepository {
	return &medicineRepositoryImpl{
		db: db,
	}
}

func (r *medicineRepositoryImpl) Save(ctx context.Context, medicine *domain.Medicine) error {
	slog.Debug("saving medicine to database",
		"medicine_id", medicine.ID().String(),
	)

	result := r.db.WithContext(ctx).Create(MedicineFromEntity(medicine))
	if result.Error != nil {
		slog.Error("failed to save medicine to database",
			"medicine_id", medicine.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}

func (r *medicineRepositoryImpl) FindByID(ctx context.Context, id domain.MedicineID) (*domain.Medicine, error) {
	slog.Debug("finding medicine by ID",
		"medicine_id", id.String(),
	)

	var m MedicineModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Debug("medicine not found",
				"medicine_id", id.String(),
			)

			return nil, domain.ErrMedicineNotFound
		}

		slog.Error("failed to find medicine by ID",
			"medicine_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *medicineRepositoryImpl) FindByUserID(ctx context.Context, userID domain.UserID) ([]*domain.Medicine, error) {
	slog.Debug("finding medicines by user ID",
		"user_id", userID.String(),
	)

	var models []MedicineModel

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("name ASC").
		Find(&models)
	if result.Error != nil {
		slog.Error("failed to find medicines by user ID",
			"user_id", userID.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	medicines := make([]*domain.Medicine, 0, len(models))
	for _, m := range models {
		medicine, err := m.ToEntity()
		if err != nil {
			slog.Error("failed to convert model to entity",
				"medicine_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		medicines = append(medicines, medicine)
	}

	return medicines, nil
}

func (r *medicineRepositoryImpl) Update(ctx context.Context, medicine *domain.Medicine) error {
	slog.Debug("updating medicine in database",
		"medicine_id", medicine.ID().String(),
	)

	m := MedicineFromEntity(medicine)

	result := r.db.WithContext(ctx).
		Model(&MedicineModel{}).
		Where("id = ?", m.ID).
		Select("name", "dosage", "unit_id", "notes", "updated_at").
		Updates(m)
	if result.Error != nil {
		slog.Error("failed to update medicine in database",
			"medicine_id", m.ID,
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		slog.Debug("medicine not found for update",
			"medicine_id", m.ID,
		)

		return domain.ErrMedicineNotFound
	}

	slog.Debug("medicine updated in database",
		"medicine_id", m.ID,
	)

	return nil
}

func (r *medicineRepositoryImpl) Delete(ctx context.Context, id domain.MedicineID) error {
	slog.Debug("deleting medicine from database",
		"medicine_id", id.String(),
	)

	var schedulesDeleted int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scheduleIDs := tx.Model(&ScheduleModel{}).Select("id").Where("medicine_id = ?", id.String())

		if err := tx.Where("schedule_id IN (?)", scheduleIDs).Delete(&ScheduleTimeModel{}).Error; err != nil {
			return err
		}

		schedules := tx.Where("medicine_id = ?", id.String()).Delete(&ScheduleModel{})
		if schedules.Error != nil {
			return schedules.Error
		}

		schedulesDeleted = schedules.RowsAffected

		result := tx.Where("id = ?", id.String()).Delete(&MedicineModel{})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return domain.ErrMedicineNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrMedicineNotFound) {
			slog.Debug("medicine not found for deletion",
				"medicine_id", id.String(),
			)

			return err
		}

		slog.Error("failed to delete medicine from database",
			"medicine_id", id.String(),
			"error", err,
		)

		return err
	}

	slog.Debug("medicine deleted from database",
		"medicine_id", id.String(),
		"schedules_deleted", schedulesDeleted,
	)

	return nil
}
