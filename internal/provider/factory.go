package provider

import "fmt"

// Config holds provider construction settings.
type Config struct {
	// Channel selects the provider variant: "email", "sms" or "console".
	Channel     string
	SenderEmail string
	SenderPhone string
}

// New constructs the message provider named by cfg.Channel. The choice
// is made once at startup; services hold a single fixed provider.
func New(cfg Config) (MessageProvider, error) {
	switch cfg.Channel {
	case "email":
		return NewEmailProvider(cfg.SenderEmail), nil
	case "sms":
		return NewSMSProvider(cfg.SenderPhone), nil
	case "console":
		return NewConsoleProvider(nil), nil
	default:
		return nil, fmt.Errorf("unknown message provider %q", cfg.Channel)
	}
}
