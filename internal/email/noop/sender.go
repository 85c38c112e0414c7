package noop

import (
	"context"
	"log"

	"hotelpride/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendInvoiceEmail(_ context.Context, toEmail, toName, invoiceNumber, _, _ string) error {
	log.Printf("[NOOP EMAIL] Invoice %s for %s (%s)", invoiceNumber, toName, toEmail)
	return nil
}
