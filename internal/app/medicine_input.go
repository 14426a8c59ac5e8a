package app

type CreateMedicineInput struct {
	UserID string
	Name   string
	Dosage string
	UnitID *string
	Notes  string
}

type GetMedicineInput struct {
	UserID string
	ID     string
}

type ListMedicinesInput struct {
	UserID string
}

type UpdateMedicineInput struct {
	UserID string
	ID     string
	Name   string
	Dosage string
	UnitID *string
	Notes  string
}

type DeleteMedicineInput struct {
	UserID string
	ID     string
}
