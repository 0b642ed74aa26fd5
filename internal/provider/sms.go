package provider

import "context"

// SMSProvider delivers notification messages by SMS. No external
// gateway is wired in; every attempt succeeds.
type SMSProvider struct {
	sender string
}

// NewSMSProvider creates an SMS provider sending from the given number.
func NewSMSProvider(sender string) *SMSProvider {
	return &SMSProvider{sender: sender}
}

// Name implements MessageProvider.
func (p *SMSProvider) Name() string { return "sms" }

// Send implements MessageProvider.
func (p *SMSProvider) Send(_ context.Context, msg Message) DeliveryReceipt {
	return DeliveryReceipt{
		Success:   true,
		Provider:  p.Name(),
		Recipient: msg.Recipient,
		MessageID: messageID(p.Name(), msg),
	}
}
