package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vaxtrack/internal/delivery/http/middleware"
	"vaxtrack/internal/delivery/http/response"
	"vaxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler exposes the per-user notification inbox.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

type notificationResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Body      string `json:"body,omitempty"`
	DriveID   string `json:"drive_id,omitempty"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

// ListNotifications returns the caller's inbox, newest first.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	notifications, err := h.uc.ListNotifications(c.Request().Context(), scope)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]notificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		item := notificationResponse{
			ID:        notification.ID.String(),
			Kind:      string(notification.Kind),
			Title:     notification.Title,
			Body:      notification.Body,
			Read:      notification.ReadAt != nil,
			CreatedAt: notification.CreatedAt.Format(time.RFC3339),
		}
		if notification.DriveID != nil {
			item.DriveID = notification.DriveID.String()
		}
		resp = append(resp, item)
	}

	return response.Success(c, http.StatusOK, resp, "Notifications retrieved successfully")
}

// MarkRead marks one notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification id")
	}

	if err := h.uc.MarkRead(c.Request().Context(), scope, notificationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification marked as read"}, "Notification updated successfully")
}
