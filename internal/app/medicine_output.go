package app

import (
	"time"

	"github.com/KasumiMercury/meditrack/internal/domain"
)

type MedicineOutput struct {
	ID        string
	UserID    string
	Name      string
	Dosage    string
	UnitID    *string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type MedicinesOutput struct {
	Medicines []MedicineOutput
	Count     int32
}

func FromMedicine(m *domain.Medicine) MedicineOutput {
	var unitID *string
	if m.UnitID() != nil {
		s := m.UnitID().String()
		unitID = &s
	}

	return MedicineOutput{
		ID:        m.ID().String(),
		UserID:    m.UserID().String(),
		Name:      m.Name(),
		Dosage:    m.Dosage(),
		UnitID:    unitID,
		Notes:     m.Notes(),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

func FromMedicines(medicines []*domain.Medicine) MedicinesOutput {
	outputs := make([]MedicineOutput, 0, len(medicines))
	for _, m := range medicines {
		outputs = append(outputs, FromMedicine(m))
	}

	return MedicinesOutput{
		Medicines: outputs,
		Count:     int32(len(outputs)), //nolint:gosec
	}
}
