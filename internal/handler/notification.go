package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sumire/commerce/internal/provider"
	"github.com/sumire/commerce/internal/service"
)

// NotificationHandler handles notification endpoints.
type NotificationHandler struct {
	notifications *service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type createNotificationRequest struct {
	UserID           int64  `json:"user_id" validate:"required"`
	Title            string `json:"title" validate:"required"`
	Message          string `json:"message"`
	NotificationType string `json:"notification_type"`

	// SendMessage controls immediate delivery; omitted means true.
	SendMessage *bool `json:"send_message"`
}

// Create persists a new notification and, unless disabled, delivers it
// immediately through the configured provider.
func (h *NotificationHandler) Create(c echo.Context) error {
	var req createNotificationRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sendNow := req.SendMessage == nil || *req.SendMessage

	notification, _, err := h.notifications.Create(c.Request().Context(), service.CreateNotificationParams{
		UserID:           req.UserID,
		Title:            req.Title,
		Message:          req.Message,
		NotificationType: req.NotificationType,
	}, sendNow)
	if err != nil {
		return err
	}
	return JSON(c, http.StatusCreated, notification)
}

// Get returns a notification by ID.
func (h *NotificationHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	notification, err := h.notifications.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return JSON(c, http.StatusOK, notification)
}

// ListByUser returns all notifications for a user, newest first.
func (h *NotificationHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	notifications, err := h.notifications.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return JSON(c, http.StatusOK, notifications)
}

// MarkAsRead transitions a notification to "read".
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	notification, err := h.notifications.MarkAsRead(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return JSON(c, http.StatusOK, notification)
}

type resendResponse struct {
	Message string                   `json:"message"`
	Result  provider.DeliveryReceipt `json:"result"`
}

// Resend delivers an existing notification's message again.
func (h *NotificationHandler) Resend(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	notification, err := h.notifications.Get(ctx, id)
	if err != nil {
		return err
	}

	receipt, err := h.notifications.Send(ctx, notification)
	if err != nil {
		return err
	}
	return JSON(c, http.StatusOK, resendResponse{
		Message: "Notification resent successfully",
		Result:  receipt,
	})
}
