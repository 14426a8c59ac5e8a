package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/meditrack/internal/app"
)

type MedicineHandler struct {
	useCase app.MedicineUseCase
}

func NewMedicineHandler(useCase app.MedicineUseCase) *MedicineHandler {
	return &MedicineHandler{
		useCase: useCase,
	}
}

func (h *MedicineHandler) CreateMedicine(c *gin.Context) {
	slog.Info("handling create medicine request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req CreateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)

		return
	}

	output, err := h.useCase.CreateMedicine(c.Request.Context(), app.CreateMedicineInput{
		UserID: userID(c),
		Name:   req.Name,
		Dosage: req.Dosage,
		UnitID: req.UnitID,
		Notes:  req.Notes,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.Info("medicine created successfully",
		"medicine_id", output.ID,
	)
	c.JSON(http.StatusCreated, FromMedicineDTO(output))
}

func (h *MedicineHandler) GetMedicine(c *gin.Context) {
	id := c.Param("id")

	output, err := h.useCase.GetMedicine(c.Request.Context(), app.GetMedicineInput{
		UserID: userID(c),
		ID:     id,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromMedicineDTO(output))
}

func (h *MedicineHandler) ListMedicines(c *gin.Context) {
	output, err := h.useCase.ListMedicines(c.Request.Context(), app.ListMedicinesInput{
		UserID: userID(c),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromMedicineDTOs(output))
}

func (h *MedicineHandler) UpdateMedicine(c *gin.Context) {
	id := c.Param("id")

	slog.Info("handling update medicine request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"medicine_id", id,
	)

	var req UpdateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)

		return
	}

	output, err := h.useCase.UpdateMedicine(c.Request.Context(), app.UpdateMedicineInput{
		UserID: userID(c),
		ID:     id,
		Name:   req.Name,
		Dosage: req.Dosage,
		UnitID: req.UnitID,
		Notes:  req.Notes,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.Info("medicine updated successfully",
		"medicine_id", output.ID,
	)
	c.JSON(http.StatusOK, FromMedicineDTO(output))
}

func (h *MedicineHandler) DeleteMedicine(c *gin.Context) {
	id := c.Param("id")

	slog.Info("handling delete medicine request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"medicine_id", id,
	)

	if err := h.useCase.DeleteMedicine(c.Request.Context(), app.DeleteMedicineInput{
		UserID: userID(c),
		ID:     id,
	}); err != nil {
		handleError(c, err)

		return
	}

	slog.Info("medicine deleted successfully",
		"medicine_id", id,
	)
	c.Status(http.StatusNoContent)
}

func (h *MedicineHandler) RegisterRoutes(router *gin.RouterGroup) {
	medicines := router.Group("/medicines", RequireUser())
	{
		medicines.POST("", h.CreateMedicine)
		medicines.GET("", h.ListMedicines)
		medicines.GET("/:id", h.GetMedicine)
		medicines.PUT("/:id", h.UpdateMedicine)
		medicines.DELETE("/:id", h.DeleteMedicine)
	}
}
