package domain

import (
	"github.com/google/uuid"
)

type MedicineID struct {
	value uuid.UUID
}

func NewMedicineID() MedicineID {
	return MedicineID{value: uuid.Must(uuid.NewV7())}
}

func MedicineIDFromString(s string) (MedicineID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return MedicineID{}, ErrInvalidMedicineID
	}

	return MedicineID{value: id}, nil
}

func MedicineIDFromUUID(id uuid.UUID) MedicineID {
	return MedicineID{value: id}
}

func (m MedicineID) String() string {
	return m.value.String()
}

func (m MedicineID) UUID() uuid.UUID {
	return m.value
}

func (m MedicineID) IsZero() bool {
	return m.value == uuid.Nil
}

func (m MedicineID) Equals(other MedicineID) bool {
	return m.value == other.value
}
