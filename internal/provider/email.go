package provider

import "context"

// EmailProvider delivers notification messages by email. No external
// mail service is wired in; every attempt succeeds.
type EmailProvider struct {
	sender string
}

// NewEmailProvider creates an email provider sending from the given address.
func NewEmailProvider(sender string) *EmailProvider {
	return &EmailProvider{sender: sender}
}

// Name implements MessageProvider.
func (p *EmailProvider) Name() string { return "email" }

// Send implements MessageProvider.
func (p *EmailProvider) Send(_ context.Context, msg Message) DeliveryReceipt {
	return DeliveryReceipt{
		Success:   true,
		Provider:  p.Name(),
		Recipient: msg.Recipient,
		MessageID: messageID(p.Name(), msg),
	}
}
