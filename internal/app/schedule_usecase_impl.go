package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/meditrack/internal/domain"
)

type scheduleUseCaseImpl struct {
	repo      domain.ScheduleRepository
	medicines domain.MedicineRepository
}

func NewScheduleUseCase(repo domain.ScheduleRepository, medicines domain.MedicineRepository) ScheduleUseCase {
	return &scheduleUseCaseImpl{
		repo:      repo,
		medicines: medicines,
	}
}

// recurrence is the validated, parsed part of a create or update request.
type recurrence struct {
	frequency domain.Frequency
	days      domain.Weekdays
	times     []domain.ScheduleTimeSpec
}

func parseRecurrence(frequencyType string, daysOfWeek []string, times []ScheduleTimeInput) (recurrence, error) {
	frequency, err := domain.NewFrequency(frequencyType)
	if err != nil {
		return recurrence{}, NewFieldError("frequency_type", err)
	}

	days, err := domain.ParseWeekdays(daysOfWeek)
	if err != nil {
		return recurrence{}, NewFieldError("days_of_week", err)
	}

	specs := make([]domain.ScheduleTimeSpec, 0, len(times))
	for i, t := range times {
		tod, err := domain.ParseTimeOfDay(t.TimeOfDay)
		if err != nil {
			return recurrence{}, NewFieldError(fmt.Sprintf("times[%d].time_of_day", i), err)
		}

		specs = append(specs, domain.ScheduleTimeSpec{TimeOfDay: tod, Quantity: t.Quantity})
	}

	return recurrence{frequency: frequency, days: days, times: specs}, nil
}

func scheduleValidationError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFrequency):
		return NewFieldError("frequency_type", err)
	case errors.Is(err, domain.ErrDaysOfWeekRequired):
		return NewFieldError("days_of_week", err)
	case errors.Is(err, domain.ErrInvalidDateRange):
		return NewFieldError("end_date", err)
	case errors.Is(err, domain.ErrNoScheduleTimes), errors.Is(err, domain.ErrInvalidQuantity):
		return NewFieldError("times", err)
	default:
		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}
}

func (uc *scheduleUseCaseImpl) CreateSchedule(ctx context.Context, input CreateScheduleInput) (ScheduleOutput, error) {
	slog.DebugContext(ctx, "creating schedule",
		"user_id", input.UserID,
		"medicine_id", input.MedicineID,
		"frequency_type", input.FrequencyType,
		"times_count", len(input.Times),
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return ScheduleOutput{}, NewFieldError("user_id", err)
	}

	medicineID, err := domain.MedicineIDFromString(input.MedicineID)
	if err != nil {
		return ScheduleOutput{}, NewFieldError("medicine_id", err)
	}

	rec, err := parseRecurrence(input.FrequencyType, input.DaysOfWeek, input.Times)
	if err != nil {
		return ScheduleOutput{}, err
	}

	medicine, err := uc.medicines.FindByID(ctx, medicineID)
	if err != nil {
		if errors.Is(err, domain.ErrMedicineNotFound) {
			return ScheduleOutput{}, NewFieldError("medicine_id", err)
		}

		slog.ErrorContext(ctx, "failed to load medicine",
			"error", err,
			"medicine_id", input.MedicineID,
		)

		return ScheduleOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if !medicine.IsOwnedBy(userID) {
		return ScheduleOutput{}, NewFieldError("medicine_id", domain.ErrMedicineNotFound)
	}

	schedule, err := domain.NewSchedule(
		userID,
		medicine,
		input.StartDate,
		input.EndDate,
		rec.frequency,
		rec.days,
		input.Notes,
		rec.times,
	)
	if err != nil {
		return ScheduleOutput{}, scheduleValidationError(err)
	}

	if err := uc.repo.Save(ctx, schedule); err != nil {
		slog.ErrorContext(ctx, "failed to save schedule",
			"error", err,
			"schedule_id", schedule.ID().String(),
		)

		return ScheduleOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "schedule created",
		"schedule_id", schedule.ID().String(),
	)

	return FromSchedule(schedule), nil
}

func (uc *scheduleUseCaseImpl) GetSchedule(ctx context.Context, input GetScheduleInput) (ScheduleOutput, error) {
	slog.DebugContext(ctx, "getting schedule",
		"user_id", input.UserID,
		"schedule_id", input.ID,
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return ScheduleOutput{}, NewFieldError("user_id", err)
	}

	id, err := domain.ScheduleIDFromString(input.ID)
	if err != nil {
		return ScheduleOutput{}, NewFieldError("id", err)
	}

	schedule, err := uc.loadOwned(ctx, uc.repo, userID, id)
	if err != nil {
		return ScheduleOutput{}, err
	}

	return FromSchedule(schedule), nil
}

func (uc *scheduleUseCaseImpl) ListSchedules(ctx context.Context, input ListSchedulesInput) (SchedulesOutput, error) {
	slog.DebugContext(ctx, "listing schedules",
		"user_id", input.UserID,
		"medicine_id", input.MedicineID,
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return SchedulesOutput{}, NewFieldError("user_id", err)
	}

	var medicineID *domain.MedicineID

	if input.MedicineID != "" {
		id, err := domain.MedicineIDFromString(input.MedicineID)
		if err != nil {
			return SchedulesOutput{}, NewFieldError("medicine_id", err)
		}

		medicineID = &id
	}

	schedules, err := uc.repo.FindByUserID(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list schedules",
			"error", err,
			"user_id", input.UserID,
		)

		return SchedulesOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if medicineID != nil {
		filtered := make([]*domain.Schedule, 0, len(schedules))
		for _, s := range schedules {
			if s.MedicineID().Equals(*medicineID) {
				filtered = append(filtered, s)
			}
		}

		schedules = filtered
	}

	return FromSchedules(schedules), nil
}

func (uc *scheduleUseCaseImpl) UpdateSchedule(ctx context.Context, input UpdateScheduleInput) (ScheduleOutput, error) {
	slog.DebugContext(ctx, "updating schedule",
		"user_id", input.UserID,
		"schedule_id", input.ID,
		"frequency_type", input.FrequencyType,
		"times_count", len(input.Times),
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return ScheduleOutput{}, NewFieldError("user_id", err)
	}

	id, err := domain.ScheduleIDFromString(input.ID)
	if err != nil {
		return ScheduleOutput{}, NewFieldError("id", err)
	}

	rec, err := parseRecurrence(input.FrequencyType, input.DaysOfWeek, input.Times)
	if err != nil {
		return ScheduleOutput{}, err
	}

	var updated *domain.Schedule

	if err := uc.repo.WithTx(ctx, func(txRepo domain.ScheduleRepository) error {
		schedule, err := uc.loadOwned(ctx, txRepo, userID, id)
		if err != nil {
			return err
		}

		if err := schedule.Reschedule(
			input.StartDate,
			input.EndDate,
			rec.frequency,
			rec.days,
			input.Notes,
			rec.times,
		); err != nil {
			return scheduleValidationError(err)
		}

		if err := txRepo.Update(ctx, schedule); err != nil {
			slog.ErrorContext(ctx, "failed to update schedule",
				"error", err,
				"schedule_id", input.ID,
			)

			return fmt.Errorf("%w: %v", ErrInternalError, err)
		}

		updated = schedule

		return nil
	}); err != nil {
		if IsValidationError(err) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrInternalError) {
			return ScheduleOutput{}, err
		}

		return ScheduleOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "schedule updated",
		"schedule_id", input.ID,
		"times_count", len(updated.Times()),
	)

	return FromSchedule(updated), nil
}

func (uc *scheduleUseCaseImpl) DeleteSchedule(ctx context.Context, input DeleteScheduleInput) error {
	slog.DebugContext(ctx, "deleting schedule",
		"user_id", input.UserID,
		"schedule_id", input.ID,
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return NewFieldError("user_id", err)
	}

	id, err := domain.ScheduleIDFromString(input.ID)
	if err != nil {
		return NewFieldError("id", err)
	}

	if _, err := uc.loadOwned(ctx, uc.repo, userID, id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrScheduleNotFound) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to delete schedule",
			"error", err,
			"schedule_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "schedule deleted",
		"schedule_id", input.ID,
	)

	return nil
}

// loadOwned hides schedules of other users behind ErrNotFound.
func (uc *scheduleUseCaseImpl) loadOwned(
	ctx context.Context,
	repo domain.ScheduleRepository,
	userID domain.UserID,
	id domain.ScheduleID,
) (*domain.Schedule, error) {
	schedule, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrScheduleNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to load schedule",
			"error", err,
			"schedule_id", id.String(),
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if !schedule.IsOwnedBy(userID) {
		slog.WarnContext(ctx, "schedule belongs to another user",
			"schedule_id", id.String(),
			"user_id", userID.String(),
		)

		return nil, fmt.Errorf("%w: %v", ErrNotFound, domain.ErrScheduleNotFound)
	}

	return schedule, nil
}
