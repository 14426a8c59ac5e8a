package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/meditrack/internal/app"
)

type NotificationHandler struct {
	useCase app.NotificationUseCase
}

func NewNotificationHandler(useCase app.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		useCase: useCase,
	}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	slog.Info("handling list notifications request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req ListNotificationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		handleBindError(c, err)

		return
	}

	output, err := h.useCase.ListNotifications(c.Request.Context(), app.ListNotificationsInput{
		UserID:      userID(c),
		IncludeRead: req.IncludeRead,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromNotificationDTOs(output))
}

func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	id := c.Param("id")

	slog.Info("handling mark notification read request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"notification_id", id,
	)

	err := h.useCase.MarkNotificationRead(c.Request.Context(), app.MarkNotificationReadInput{
		UserID: userID(c),
		ID:     id,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id := c.Param("id")

	slog.Info("handling delete notification request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"notification_id", id,
	)

	err := h.useCase.DeleteNotification(c.Request.Context(), app.DeleteNotificationInput{
		UserID: userID(c),
		ID:     id,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.Info("notification deleted successfully",
		"notification_id", id,
	)
	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications", RequireUser())
	{
		notifications.GET("", h.ListNotifications)
		notifications.PUT("/:id/read", h.MarkNotificationRead)
		notifications.DELETE("/:id", h.DeleteNotification)
	}
}
