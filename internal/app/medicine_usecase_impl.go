package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/meditrack/internal/domain"
)

type medicineUseCaseImpl struct {
	repo domain.MedicineRepository
}

func NewMedicineUseCase(repo domain.MedicineRepository) MedicineUseCase {
	return &medicineUseCaseImpl{
		repo: repo,
	}
}

func (uc *medicineUseCaseImpl) CreateMedicine(ctx context.Context, input CreateMedicineInput) (MedicineOutput, error) {
	slog.DebugContext(ctx, "creating medicine",
		"user_id", input.UserID,
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return MedicineOutput{}, NewFieldError("user_id", err)
	}

	unitID, err := parseUnitID(input.UnitID)
	if err != nil {
		return MedicineOutput{}, err
	}

	medicine, err := domain.NewMedicine(userID, input.Name, input.Dosage, unitID, input.Notes)
	if err != nil {
		return MedicineOutput{}, medicineFieldError(err)
	}

	if err := uc.repo.Save(ctx, medicine); err != nil {
		slog.ErrorContext(ctx, "failed to save medicine",
			"error", err,
			"medicine_id", medicine.ID().String(),
		)

		return MedicineOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "medicine created",
		"medicine_id", medicine.ID().String(),
	)

	return FromMedicine(medicine), nil
}

func (uc *medicineUseCaseImpl) GetMedicine(ctx context.Context, input GetMedicineInput) (MedicineOutput, error) {
	slog.DebugContext(ctx, "getting medicine",
		"user_id", input.UserID,
		"medicine_id", input.ID,
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return MedicineOutput{}, NewFieldError("user_id", err)
	}

	id, err := domain.MedicineIDFromString(input.ID)
	if err != nil {
		return MedicineOutput{}, NewFieldError("id", err)
	}

	medicine, err := uc.loadOwned(ctx, userID, id)
	if err != nil {
		return MedicineOutput{}, err
	}

	return FromMedicine(medicine), nil
}

func (uc *medicineUseCaseImpl) ListMedicines(ctx context.Context, input ListMedicinesInput) (MedicinesOutput, error) {
	slog.DebugContext(ctx, "listing medicines",
		"user_id", input.UserID,
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return MedicinesOutput{}, NewFieldError("user_id", err)
	}

	medicines, err := uc.repo.FindByUserID(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list medicines",
			"error", err,
			"user_id", input.UserID,
		)

		return MedicinesOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromMedicines(medicines), nil
}

func (uc *medicineUseCaseImpl) UpdateMedicine(ctx context.Context, input UpdateMedicineInput) (MedicineOutput, error) {
	slog.DebugContext(ctx, "updating medicine",
		"user_id", input.UserID,
		"medicine_id", input.ID,
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return MedicineOutput{}, NewFieldError("user_id", err)
	}

	id, err := domain.MedicineIDFromString(input.ID)
	if err != nil {
		return MedicineOutput{}, NewFieldError("id", err)
	}

	unitID, err := parseUnitID(input.UnitID)
	if err != nil {
		return MedicineOutput{}, err
	}

	medicine, err := uc.loadOwned(ctx, userID, id)
	if err != nil {
		return MedicineOutput{}, err
	}

	if err := medicine.Update(input.Name, input.Dosage, unitID, input.Notes, time.Now().UTC()); err != nil {
		return MedicineOutput{}, medicineFieldError(err)
	}

	if err := uc.repo.Update(ctx, medicine); err != nil {
		if errors.Is(err, domain.ErrMedicineNotFound) {
			return MedicineOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to update medicine",
			"error", err,
			"medicine_id", input.ID,
		)

		return MedicineOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "medicine updated",
		"medicine_id", input.ID,
	)

	return FromMedicine(medicine), nil
}

func (uc *medicineUseCaseImpl) DeleteMedicine(ctx context.Context, input DeleteMedicineInput) error {
	slog.DebugContext(ctx, "deleting medicine",
		"user_id", input.UserID,
		"medicine_id", input.ID,
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return NewFieldError("user_id", err)
	}

	id, err := domain.MedicineIDFromString(input.ID)
	if err != nil {
		return NewFieldError("id", err)
	}

	if _, err := uc.loadOwned(ctx, userID, id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrMedicineNotFound) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to delete medicine",
			"error", err,
			"medicine_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "medicine deleted",
		"medicine_id", input.ID,
	)

	return nil
}

// loadOwned hides medicines of other users behind ErrNotFound.
func (uc *medicineUseCaseImpl) loadOwned(ctx context.Context, userID domain.UserID, id domain.MedicineID) (*domain.Medicine, error) {
	medicine, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrMedicineNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to load medicine",
			"error", err,
			"medicine_id", id.String(),
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if !medicine.IsOwnedBy(userID) {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, domain.ErrMedicineNotFound)
	}

	return medicine, nil
}

func parseUnitID(raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	parsed, err := uuid.Parse(*raw)
	if err != nil {
		return nil, NewFieldError("unit_id", err)
	}

	return &parsed, nil
}

func medicineFieldError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyMedicineName):
		return NewFieldError("name", err)
	case errors.Is(err, domain.ErrEmptyMedicineDosage):
		return NewFieldError("dosage", err)
	default:
		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}
}
