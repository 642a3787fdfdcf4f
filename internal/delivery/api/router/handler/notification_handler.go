package handler

import (
	"log/slog"
	"net/http"

	"equiptrack/internal/delivery/api/response"
	"equiptrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the acting user's mailbox
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// ListNotifications handles listing the actor's notifications with the unread count
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	feed, err := h.notificationUC.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, feed)
}

// MarkRead handles marking one of the actor's notifications read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	notificationID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), notificationID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// MarkAllRead handles marking all of the actor's notifications read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	marked, err := h.notificationUC.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"marked": marked})
}
