package domain

import (
	"time"
)

type Schedule struct {
	id         ScheduleID
	userID     UserID
	medicineID MedicineID
	medicine   *Medicine
	startDate  time.Time
	endDate    *time.Time
	frequency  Frequency
	daysOfWeek Weekdays
	notes      string
	times      []ScheduleTime
	createdAt  time.Time
	updatedAt  time.Time
}

func NewSchedule(
	userID UserID,
	medicine *Medicine,
	startDate time.Time,
	endDate *time.Time,
	frequency Frequency,
	daysOfWeek Weekdays,
	notes string,
	times []ScheduleTimeSpec,
) (*Schedule, error) {
	now := time.Now().UTC()

	s := &Schedule{
		id:         NewScheduleID(),
		userID:     userID,
		medicineID: medicine.ID(),
		medicine:   medicine,
		createdAt:  now,
	}

	if err := s.apply(startDate, endDate, frequency, daysOfWeek, notes, times, now); err != nil {
		return nil, err
	}

	return s, nil
}

func ReconstituteSchedule(
	id ScheduleID,
	userID UserID,
	medicineID MedicineID,
	medicine *Medicine,
	startDate time.Time,
	endDate *time.Time,
	frequency Frequency,
	daysOfWeek Weekdays,
	notes string,
	times []ScheduleTime,
	createdAt time.Time,
	updatedAt time.Time,
) *Schedule {
	return &Schedule{
		id:         id,
		userID:     userID,
		medicineID: medicineID,
		medicine:   medicine,
		startDate:  startDate,
		endDate:    endDate,
		frequency:  frequency,
		daysOfWeek: daysOfWeek,
		notes:      notes,
		times:      times,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Reschedule replaces the recurrence rule and the whole set of times. Every
// new time receives a fresh ID.
func (s *Schedule) Reschedule(
	startDate time.Time,
	endDate *time.Time,
	frequency Frequency,
	daysOfWeek Weekdays,
	notes string,
	times []ScheduleTimeSpec,
) error {
	return s.apply(startDate, endDate, frequency, daysOfWeek, notes, times, time.Now().UTC())
}

func (s *Schedule) apply(
	startDate time.Time,
	endDate *time.Time,
	frequency Frequency,
	daysOfWeek Weekdays,
	notes string,
	specs []ScheduleTimeSpec,
	now time.Time,
) error {
	if _, err := NewFrequency(string(frequency)); err != nil {
		return err
	}

	if frequency.RequiresDaysOfWeek() {
		if daysOfWeek.IsEmpty() {
			return ErrDaysOfWeekRequired
		}
	} else {
		daysOfWeek = 0
	}

	start := startDate.UTC()

	var end *time.Time
	if endDate != nil {
		e := endDate.UTC()
		if e.Before(start) {
			return ErrInvalidDateRange
		}

		end = &e
	}

	if len(specs) == 0 {
		return ErrNoScheduleTimes
	}

	times := make([]ScheduleTime, 0, len(specs))
	for _, spec := range specs {
		st, err := NewScheduleTime(s.id, spec.TimeOfDay, spec.Quantity)
		if err != nil {
			return err
		}

		times = append(times, st)
	}

	s.startDate = start
	s.endDate = end
	s.frequency = frequency
	s.daysOfWeek = daysOfWeek
	s.notes = notes
	s.times = times
	s.updatedAt = now

	return nil
}

// IsActiveBetween reports whether the schedule's active interval intersects
// [from, until].
func (s *Schedule) IsActiveBetween(from, until time.Time) bool {
	if s.startDate.After(until) {
		return false
	}

	return s.endDate == nil || !s.endDate.Before(from)
}

func (s *Schedule) IsOwnedBy(userID UserID) bool {
	return s.userID.Equals(userID)
}

func (s *Schedule) ID() ScheduleID {
	return s.id
}

func (s *Schedule) UserID() UserID {
	return s.userID
}

func (s *Schedule) MedicineID() MedicineID {
	return s.medicineID
}

// Medicine is nil unless the schedule was loaded together with its medicine.
func (s *Schedule) Medicine() *Medicine {
	return s.medicine
}

func (s *Schedule) StartDate() time.Time {
	return s.startDate
}

func (s *Schedule) EndDate() *time.Time {
	return s.endDate
}

func (s *Schedule) Frequency() Frequency {
	return s.frequency
}

func (s *Schedule) DaysOfWeek() Weekdays {
	return s.daysOfWeek
}

func (s *Schedule) Notes() string {
	return s.notes
}

func (s *Schedule) Times() []ScheduleTime {
	return s.times
}

func (s *Schedule) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Schedule) UpdatedAt() time.Time {
	return s.updatedAt
}
