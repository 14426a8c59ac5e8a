package domain

import (
	"github.com/google/uuid"
)

type ScheduleID struct {
	value uuid.UUID
}

func NewScheduleID() ScheduleID {
	return ScheduleID{value: uuid.Must(uuid.NewV7())}
}

func ScheduleIDFromString(s string) (ScheduleID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ScheduleID{}, ErrInvalidScheduleID
	}

	return ScheduleID{value: id}, nil
}

func ScheduleIDFromUUID(id uuid.UUID) ScheduleID {
	return ScheduleID{value: id}
}

func (s ScheduleID) String() string {
	return s.value.String()
}

func (s ScheduleID) UUID() uuid.UUID {
	return s.value
}

func (s ScheduleID) IsZero() bool {
	return s.value == uuid.Nil
}

func (s ScheduleID) Equals(other ScheduleID) bool {
	return s.value == other.value
}

// ScheduleTimeID identifies one time-of-day entry of a schedule. Generated
// notifications reference it rather than the schedule.
type ScheduleTimeID struct {
	value uuid.UUID
}

func NewScheduleTimeID() ScheduleTimeID {
	return ScheduleTimeID{value: uuid.Must(uuid.NewV7())}
}

func ScheduleTimeIDFromString(s string) (ScheduleTimeID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ScheduleTimeID{}, ErrInvalidScheduleTimeID
	}

	return ScheduleTimeID{value: id}, nil
}

func ScheduleTimeIDFromUUID(id uuid.UUID) ScheduleTimeID {
	return ScheduleTimeID{value: id}
}

func (s ScheduleTimeID) String() string {
	return s.value.String()
}

func (s ScheduleTimeID) UUID() uuid.UUID {
	return s.value
}

func (s ScheduleTimeID) IsZero() bool {
	return s.value == uuid.Nil
}

func (s ScheduleTimeID) Equals(other ScheduleTimeID) bool {
	return s.value == other.value
}
