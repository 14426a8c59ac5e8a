package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=schedule_repository.go -destination=schedule_repository_mock.go -package=domain

type ScheduleRepository interface {
	Save(ctx context.Context, schedule *Schedule) error
	FindByID(ctx context.Context, id ScheduleID) (*Schedule, error)
	FindByUserID(ctx context.Context, userID UserID) ([]*Schedule, error)
	// FindActive returns schedules whose active interval intersects
	// [from, until], with times and medicine loaded. Implementations may
	// over-select; callers filter with Schedule.IsActiveBetween.
	FindActive(ctx context.Context, from, until time.Time) ([]*Schedule, error)
	// Update persists the schedule and replaces its times with the given set.
	Update(ctx context.Context, schedule *Schedule) error
	Delete(ctx context.Context, id ScheduleID) error
	WithTx(ctx context.Context, fn func(repo ScheduleRepository) error) error
}
