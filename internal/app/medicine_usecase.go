package app

import "context"

//go:generate mockgen -source=medicine_usecase.go -destination=medicine_usecase_mock.go -package=app

type MedicineUseCase interface {
	CreateMedicine(ctx context.Context, input CreateMedicineInput) (MedicineOutput, error)
	GetMedicine(ctx context.Context, input GetMedicineInput) (MedicineOutput, error)
	ListMedicines(ctx context.Context, input ListMedicinesInput) (MedicinesOutput, error)
	UpdateMedicine(ctx context.Context, input UpdateMedicineInput) (MedicineOutput, error)
	DeleteMedicine(ctx context.Context, input DeleteMedicineInput) error
}
