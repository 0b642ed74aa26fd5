package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sumire/commerce/internal/domain"
	"github.com/sumire/commerce/internal/provider"
)

// NotificationStore defines the notification data access interface
// consumed by NotificationService.
type NotificationStore interface {
	Create(ctx context.Context, userID int64, title, message, notificationType string) (*domain.Notification, error)
	FindByID(ctx context.Context, id int64) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	UpdateStatus(ctx context.Context, id int64, status domain.NotificationStatus) (*domain.Notification, error)
}

// CreateNotificationParams carries the caller-supplied fields of a new
// notification. NotificationType defaults to "info" when empty.
type CreateNotificationParams struct {
	UserID           int64
	Title            string
	Message          string
	NotificationType string
}

// NotificationService orchestrates notification creation, retrieval,
// read-state transitions and message delivery. It holds no state of its
// own; all collaborators are injected at construction.
type NotificationService struct {
	notifications NotificationStore
	users         UserFinder
	provider      provider.MessageProvider
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notifications NotificationStore, users UserFinder, p provider.MessageProvider) *NotificationService {
	return &NotificationService{notifications: notifications, users: users, provider: p}
}

// Create persists a new notification for an existing user. The user
// check happens before persistence, so nothing is stored for an unknown
// user. When sendNow is set the message is delivered synchronously and
// the receipt returned; a failed receipt does not roll back the stored
// record. The receipt is nil when sendNow is false.
func (s *NotificationService) Create(ctx context.Context, p CreateNotificationParams, sendNow bool) (*domain.Notification, *provider.DeliveryReceipt, error) {
	if _, err := s.users.FindByID(ctx, p.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, &domain.UserNotFoundError{UserID: p.UserID}
		}
		return nil, nil, fmt.Errorf("validate notification user: %w", err)
	}

	notificationType := p.NotificationType
	if notificationType == "" {
		notificationType = domain.DefaultNotificationType
	}

	n, err := s.notifications.Create(ctx, p.UserID, p.Title, p.Message, notificationType)
	if err != nil {
		return nil, nil, err
	}

	if !sendNow {
		return n, nil, nil
	}

	receipt, err := s.Send(ctx, n)
	if err != nil {
		return nil, nil, err
	}
	if !receipt.Success {
		// Persisted but undelivered is a representable, non-fatal state.
		slog.Warn("notification delivery failed",
			"notification_id", n.ID,
			"provider", receipt.Provider,
			"reason", receipt.Reason,
		)
	}
	return n, &receipt, nil
}

// Get retrieves a notification by ID.
func (s *NotificationService) Get(ctx context.Context, id int64) (*domain.Notification, error) {
	return s.notifications.FindByID(ctx, id)
}

// ListByUser retrieves all notifications for the given user, newest first.
func (s *NotificationService) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return s.notifications.ListByUser(ctx, userID)
}

// MarkAsRead transitions a notification to "read" and returns the
// updated record. The transition is one-way and idempotent: re-marking
// an already-read notification returns it unchanged.
func (s *NotificationService) MarkAsRead(ctx context.Context, id int64) (*domain.Notification, error) {
	return s.notifications.UpdateStatus(ctx, id, domain.NotificationStatusRead)
}

// Send delivers the notification's content through the configured
// provider and returns its receipt verbatim. The owning user is looked
// up again here: a notification created for a since-deleted user can no
// longer be sent, even though it remains fetchable.
func (s *NotificationService) Send(ctx context.Context, n *domain.Notification) (provider.DeliveryReceipt, error) {
	user, err := s.users.FindByID(ctx, n.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return provider.DeliveryReceipt{}, &domain.UserNotFoundError{UserID: n.UserID}
		}
		return provider.DeliveryReceipt{}, fmt.Errorf("resolve notification recipient: %w", err)
	}

	return s.provider.Send(ctx, provider.Message{
		Recipient: user.Email,
		Title:     n.Title,
		Body:      n.Message,
		Kind:      n.NotificationType,
	}), nil
}
