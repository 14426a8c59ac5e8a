package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/meditrack/internal/app"
)

type ScheduleHandler struct {
	useCase app.ScheduleUseCase
}

func NewScheduleHandler(useCase app.ScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{
		useCase: useCase,
	}
}

func toTimeInputs(reqs []ScheduleTimeRequest) []app.ScheduleTimeInput {
	inputs := make([]app.ScheduleTimeInput, 0, len(reqs))
	for _, r := range reqs {
		quantity := 1
		if r.Quantity != nil {
			quantity = *r.Quantity
		}

		inputs = append(inputs, app.ScheduleTimeInput{
			TimeOfDay: r.TimeOfDay,
			Quantity:  quantity,
		})
	}

	return inputs
}

func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	slog.Info("handling create schedule request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)

		return
	}

	start, end, err := req.dates()
	if err != nil {
		handleBindError(c, err)

		return
	}

	output, err := h.useCase.CreateSchedule(c.Request.Context(), app.CreateScheduleInput{
		UserID:        userID(c),
		MedicineID:    req.MedicineID,
		StartDate:     start,
		EndDate:       end,
		FrequencyType: req.FrequencyType,
		DaysOfWeek:    req.DaysOfWeek,
		Notes:         req.Notes,
		Times:         toTimeInputs(req.Times),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.Info("schedule created successfully",
		"schedule_id", output.ID,
		"times_count", len(output.Times),
	)
	c.JSON(http.StatusCreated, FromScheduleDTO(output))
}

func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id := c.Param("id")

	slog.Info("handling get schedule request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"schedule_id", id,
	)

	output, err := h.useCase.GetSchedule(c.Request.Context(), app.GetScheduleInput{
		UserID: userID(c),
		ID:     id,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromScheduleDTO(output))
}

func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	slog.Info("handling list schedules request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req ListSchedulesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		handleBindError(c, err)

		return
	}

	output, err := h.useCase.ListSchedules(c.Request.Context(), app.ListSchedulesInput{
		UserID:     userID(c),
		MedicineID: req.MedicineID,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromScheduleDTOs(output))
}

func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	id := c.Param("id")

	slog.Info("handling update schedule request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"schedule_id", id,
	)

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)

		return
	}

	start, end, err := req.dates()
	if err != nil {
		handleBindError(c, err)

		return
	}

	output, err := h.useCase.UpdateSchedule(c.Request.Context(), app.UpdateScheduleInput{
		UserID:        userID(c),
		ID:            id,
		StartDate:     start,
		EndDate:       end,
		FrequencyType: req.FrequencyType,
		DaysOfWeek:    req.DaysOfWeek,
		Notes:         req.Notes,
		Times:         toTimeInputs(req.Times),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.Info("schedule updated successfully",
		"schedule_id", output.ID,
	)
	c.JSON(http.StatusOK, FromScheduleDTO(output))
}

func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id := c.Param("id")

	slog.Info("handling delete schedule request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"schedule_id", id,
	)

	err := h.useCase.DeleteSchedule(c.Request.Context(), app.DeleteScheduleInput{
		UserID: userID(c),
		ID:     id,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.Info("schedule deleted successfully",
		"schedule_id", id,
	)
	c.Status(http.StatusNoContent)
}

func (h *ScheduleHandler) RegisterRoutes(router *gin.RouterGroup) {
	schedules := router.Group("/schedules", RequireUser())
	{
		schedules.POST("", h.CreateSchedule)
		schedules.GET("", h.ListSchedules)
		schedules.GET("/:id", h.GetSchedule)
		schedules.PUT("/:id", h.UpdateSchedule)
		schedules.DELETE("/:id", h.DeleteSchedule)
	}
}
