package provider

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// ConsoleProvider writes a human-readable record of each delivery
// attempt to an output stream. Useful for local development; the
// output is diagnostic only and never affects the receipt.
type ConsoleProvider struct {
	out io.Writer
}

// NewConsoleProvider creates a console provider writing to w.
// A nil writer defaults to stdout.
func NewConsoleProvider(w io.Writer) *ConsoleProvider {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleProvider{out: w}
}

// Name implements MessageProvider.
func (p *ConsoleProvider) Name() string { return "console" }

// Send implements MessageProvider.
func (p *ConsoleProvider) Send(_ context.Context, msg Message) DeliveryReceipt {
	fmt.Fprintf(p.out, "[%s] To: %s\n", strings.ToUpper(msg.Kind), msg.Recipient)
	fmt.Fprintf(p.out, "Title: %s\n", msg.Title)
	fmt.Fprintf(p.out, "Message: %s\n", msg.Body)
	fmt.Fprintln(p.out, strings.Repeat("-", 50))

	return DeliveryReceipt{
		Success:   true,
		Provider:  p.Name(),
		Recipient: msg.Recipient,
		MessageID: messageID(p.Name(), msg),
	}
}
