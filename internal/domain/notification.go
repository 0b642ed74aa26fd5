package domain

import "time"

// NotificationStatus represents the read state of a notification.
type NotificationStatus string

const (
	NotificationStatusUnread NotificationStatus = "unread"
	NotificationStatusRead   NotificationStatus = "read"
)

// DefaultNotificationType is applied when a notification is created
// without an explicit type.
const DefaultNotificationType = "info"

// Notification represents a persisted message addressed to a user.
// Title, message and type are immutable after creation; only the
// status transitions (unread -> read, one way).
type Notification struct {
	ID               int64              `json:"id" db:"id"`
	UserID           int64              `json:"user_id" db:"user_id"`
	Title            string             `json:"title" db:"title"`
	Message          string             `json:"message" db:"message"`
	NotificationType string             `json:"notification_type" db:"notification_type"`
	Status           NotificationStatus `json:"status" db:"status"`
	CreatedAt        time.Time          `json:"created_at" db:"created_at"`
}
