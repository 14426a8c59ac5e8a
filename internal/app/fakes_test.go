package app_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/meditrack/internal/domain"
)

type memoryNotificationRepository struct {
	mu   sync.Mutex
	rows map[string]*domain.Notification
}

func newMemoryNotificationRepository() *memoryNotificationRepository {
	return &memoryNotificationRepository{rows: make(map[string]*domain.Notification)}
}

func rowKey(key domain.NotificationKey) string {
	return fmt.Sprintf("%s|%s|%d", key.UserID, key.ScheduleTimeID, key.ScheduledTime.UnixNano())
}

func (r *memoryNotificationRepository) ExistsExact(_ context.Context, key domain.NotificationKey) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.rows[rowKey(key)]

	return ok, nil
}

func (r *memoryNotificationRepository) InsertMany(_ context.Context, notifications []*domain.Notification) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inserted := 0

	for _, n := range notifications {
		k := rowKey(n.Key())
		if _, ok := r.rows[k]; ok {
			continue
		}

		r.rows[k] = n
		inserted++
	}

	return inserted, nil
}

func (r *memoryNotificationRepository) FindByID(context.Context, domain.UserID, domain.NotificationID) (*domain.Notification, error) {
	return nil, domain.ErrNotificationNotFound
}

func (r *memoryNotificationRepository) ListByUser(_ context.Context, userID domain.UserID, _ bool) ([]*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Notification

	for _, n := range r.rows {
		if n.UserID().Equals(userID) {
			out = append(out, n)
		}
	}

	return out, nil
}

func (r *memoryNotificationRepository) MarkRead(context.Context, domain.UserID, domain.NotificationID, time.Time) (bool, error) {
	return false, nil
}

func (r *memoryNotificationRepository) Delete(context.Context, domain.UserID, domain.NotificationID) (bool, error) {
	return false, nil
}

func (r *memoryNotificationRepository) DeleteReadBefore(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (r *memoryNotificationRepository) all() []*domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Notification, 0, len(r.rows))
	for _, n := range r.rows {
		out = append(out, n)
	}

	return out
}

type staticScheduleRepository struct {
	schedules []*domain.Schedule
}

func (r *staticScheduleRepository) Save(context.Context, *domain.Schedule) error {
	return nil
}

func (r *staticScheduleRepository) FindByID(context.Context, domain.ScheduleID) (*domain.Schedule, error) {
	return nil, domain.ErrScheduleNotFound
}

func (r *staticScheduleRepository) FindByUserID(context.Context, domain.UserID) ([]*domain.Schedule, error) {
	return nil, nil
}

func (r *staticScheduleRepository) FindActive(_ context.Context, from, until time.Time) ([]*domain.Schedule, error) {
	var out []*domain.Schedule

	for _, s := range r.schedules {
		if s.IsActiveBetween(from, until) {
			out = append(out, s)
		}
	}

	return out, nil
}

func (r *staticScheduleRepository) Update(context.Context, *domain.Schedule) error {
	return nil
}

func (r *staticScheduleRepository) Delete(context.Context, domain.ScheduleID) error {
	return nil
}

func (r *staticScheduleRepository) WithTx(_ context.Context, fn func(repo domain.ScheduleRepository) error) error {
	return fn(r)
}

type scheduleFixture struct {
	userID    domain.UserID
	frequency domain.Frequency
	days      domain.Weekdays
	startDate time.Time
	endDate   *time.Time
	timeOfDay domain.TimeOfDay
	quantity  int
}

func newFixtureSchedule(t *testing.T, f scheduleFixture) *domain.Schedule {
	t.Helper()

	if f.userID.IsZero() {
		userID, err := domain.UserIDFromUUID(uuid.New())
		require.NoError(t, err)

		f.userID = userID
	}

	if f.quantity == 0 {
		f.quantity = 1
	}

	medicine := domain.ReconstituteMedicine(
		domain.NewMedicineID(), f.userID, "Aspirin", "100mg", nil, "", f.startDate, f.startDate,
	)

	scheduleID := domain.NewScheduleID()
	st := domain.ReconstituteScheduleTime(domain.NewScheduleTimeID(), scheduleID, f.timeOfDay, f.quantity)

	return domain.ReconstituteSchedule(
		scheduleID,
		f.userID,
		medicine.ID(),
		medicine,
		f.startDate,
		f.endDate,
		f.frequency,
		f.days,
		"",
		[]domain.ScheduleTime{st},
		f.startDate,
		f.startDate,
	)
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)

	return parsed
}
