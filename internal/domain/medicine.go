package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Medicine struct {
	id        MedicineID
	userID    UserID
	name      string
	dosage    string
	unitID    *uuid.UUID
	notes     string
	createdAt time.Time
	updatedAt time.Time
}

func NewMedicine(
	userID UserID,
	name string,
	dosage string,
	unitID *uuid.UUID,
	notes string,
) (*Medicine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyMedicineName
	}

	dosage = strings.TrimSpace(dosage)
	if dosage == "" {
		return nil, ErrEmptyMedicineDosage
	}

	now := time.Now().UTC()

	return &Medicine{
		id:        NewMedicineID(),
		userID:    userID,
		name:      name,
		dosage:    dosage,
		unitID:    unitID,
		notes:     notes,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstituteMedicine(
	id MedicineID,
	userID UserID,
	name string,
	dosage string,
	unitID *uuid.UUID,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
) *Medicine {
	return &Medicine{
		id:        id,
		userID:    userID,
		name:      name,
		dosage:    dosage,
		unitID:    unitID,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update replaces the editable fields. The medicine is left unchanged on error.
func (m *Medicine) Update(name, dosage string, unitID *uuid.UUID, notes string, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyMedicineName
	}

	dosage = strings.TrimSpace(dosage)
	if dosage == "" {
		return ErrEmptyMedicineDosage
	}

	m.name = name
	m.dosage = dosage
	m.unitID = unitID
	m.notes = notes
	m.updatedAt = now

	return nil
}

func (m *Medicine) IsOwnedBy(userID UserID) bool {
	return m.userID.Equals(userID)
}

func (m *Medicine) ID() MedicineID {
	return m.id
}

func (m *Medicine) UserID() UserID {
	return m.userID
}

func (m *Medicine) Name() string {
	return m.name
}

func (m *Medicine) Dosage() string {
	return m.dosage
}

func (m *Medicine) UnitID() *uuid.UUID {
	return m.unitID
}

func (m *Medicine) Notes() string {
	return m.notes
}

func (m *Medicine) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Medicine) UpdatedAt() time.Time {
	return m.updatedAt
}
