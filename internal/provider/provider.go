// Package provider implements the pluggable message delivery channels
// used by the notification service. Each provider attempts delivery of
// a message to a recipient and reports the outcome as a DeliveryReceipt;
// a failed attempt is data, not an error.
package provider

import (
	"context"
	"crypto/sha256"
	"fmt"
)

// Message carries the content of one delivery attempt.
type Message struct {
	Recipient string
	Title     string
	Body      string
	Kind      string
}

// DeliveryReceipt is the transient result of a delivery attempt. It is
// returned to the caller for observability and never persisted.
type DeliveryReceipt struct {
	Success   bool   `json:"success"`
	Provider  string `json:"provider"`
	Recipient string `json:"recipient"`
	MessageID string `json:"message_id"`
	Reason    string `json:"reason,omitempty"`
}

// MessageProvider is a delivery channel capable of attempting delivery
// of a message. Implementations report failure through the receipt's
// Success flag rather than an error.
type MessageProvider interface {
	Send(ctx context.Context, msg Message) DeliveryReceipt

	// Name identifies the channel in receipts ("email", "sms", "console").
	Name() string
}

// messageID derives a delivery-attempt identifier from the message
// content. Identical content yields identical IDs; the value is opaque
// diagnostic data and must not be used for deduplication.
func messageID(name string, msg Message) string {
	sum := sha256.Sum256([]byte(msg.Recipient + msg.Title + msg.Body))
	return fmt.Sprintf("%s_%x", name, sum[:8])
}
