package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sumire/commerce/internal/domain"
)

// NotificationRepository handles notification data access operations.
type NotificationRepository struct {
	db *sqlx.DB
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create persists a new notification with status "unread". The ID and
// creation timestamp are assigned here; the timestamp keeps nanosecond
// precision so sequential creates stay ordered.
func (r *NotificationRepository) Create(ctx context.Context, userID int64, title, message, notificationType string) (*domain.Notification, error) {
	var n domain.Notification
	err := r.db.QueryRowxContext(ctx,
		r.db.Rebind(`INSERT INTO notifications (user_id, title, message, notification_type, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING id, user_id, title, message, notification_type, status, created_at`),
		userID, title, message, notificationType, domain.NotificationStatusUnread, time.Now().UTC(),
	).StructScan(&n)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return &n, nil
}

// FindByID retrieves a notification by its ID.
func (r *NotificationRepository) FindByID(ctx context.Context, id int64) (*domain.Notification, error) {
	var n domain.Notification
	err := r.db.GetContext(ctx, &n,
		r.db.Rebind(`SELECT id, user_id, title, message, notification_type, status, created_at
		 FROM notifications WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find notification by id %d: %w", id, err)
	}
	return &n, nil
}

// ListByUser retrieves all notifications for the given user, newest first.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	notifications := []domain.Notification{}
	err := r.db.SelectContext(ctx, &notifications,
		r.db.Rebind(`SELECT id, user_id, title, message, notification_type, status, created_at
		 FROM notifications WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC`), userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications for user %d: %w", userID, err)
	}
	return notifications, nil
}

// UpdateStatus sets the status of a notification and returns the updated
// record, or domain.ErrNotFound when the ID is unknown. Transition
// legality is not checked here.
func (r *NotificationRepository) UpdateStatus(ctx context.Context, id int64, status domain.NotificationStatus) (*domain.Notification, error) {
	var n domain.Notification
	err := r.db.QueryRowxContext(ctx,
		r.db.Rebind(`UPDATE notifications SET status = ? WHERE id = ?
		 RETURNING id, user_id, title, message, notification_type, status, created_at`),
		status, id,
	).StructScan(&n)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update notification %d status: %w", id, err)
	}
	return &n, nil
}

// Delete removes a notification. Returns whether a record existed.
func (r *NotificationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM notifications WHERE id = ?`), id)
	if err != nil {
		return false, fmt.Errorf("delete notification %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete notification %d: %w", id, err)
	}
	return n > 0, nil
}
