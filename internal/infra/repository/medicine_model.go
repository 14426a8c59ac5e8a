package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/meditrack/internal/domain"
)

type MedicineModel struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey"`
	UserID    string    `gorm:"column:user_id;type:uuid;not null;index:idx_medicines_user_id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	Dosage    string    `gorm:"column:dosage;type:varchar(255);not null"`
	UnitID    *string   `gorm:"column:unit_id;type:uuid"`
	Notes     string    `gorm:"column:notes;type:text;not null;default:''"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (MedicineModel) TableName() string {
	return "medicines"
}

func (m *MedicineModel) ToEntity() (*domain.Medicine, error) {
	id, err := domain.MedicineIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	userID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	var unitID *uuid.UUID

	if m.UnitID != nil {
		parsed, err := uuid.Parse(*m.UnitID)
		if err != nil {
			return nil, err
		}

		unitID = &parsed
	}

	return domain.ReconstituteMedicine(
		id,
		userID,
		m.Name,
		m.Dosage,
		unitID,
		m.Notes,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func MedicineFromEntity(e *domain.Medicine) *MedicineModel {
	var unitID *string

	if e.UnitID() != nil {
		s := e.UnitID().String()
		unitID = &s
	}

	return &MedicineModel{
		ID:        e.ID().String(),
		UserID:    e.UserID().String(),
		Name:      e.Name(),
		Dosage:    e.Dosage(),
		UnitID:    unitID,
		Notes:     e.Notes(),
		CreatedAt: e.CreatedAt(),
		UpdatedAt: e.UpdatedAt(),
	}
}
