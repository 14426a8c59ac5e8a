package domain

import "context"

//go:generate mockgen -source=medicine_repository.go -destination=medicine_repository_mock.go -package=domain

type MedicineRepository interface {
	Save(ctx context.Context, medicine *Medicine) error
	FindByID(ctx context.Context, id MedicineID) (*Medicine, error)
	FindByUserID(ctx context.Context, userID UserID) ([]*Medicine, error)
	Update(ctx context.Context, medicine *Medicine) error
	// Delete removes the medicine together with its schedules and their
	// times. Notifications already generated are kept.
	Delete(ctx context.Context, id MedicineID) error
}
