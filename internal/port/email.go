package port

import "context"

// EmailSender defines the contract for sending guest-facing mail.
type EmailSender interface {
	// SendInvoiceEmail delivers a rendered invoice to the guest.
	SendInvoiceEmail(ctx context.Context, toEmail, toName, invoiceNumber, htmlBody, textBody string) error
}
