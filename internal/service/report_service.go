package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"hotelpride/internal/domain"
	"hotelpride/internal/export"
	"hotelpride/internal/port"
)

// ReportService produces the GST invoice register export.
type ReportService interface {
	// InvoiceRegister writes the register workbook for invoices dated in
	// [from, to] and returns a suggested filename.
	InvoiceRegister(ctx context.Context, w io.Writer, from, to time.Time) (string, error)
}

type reportService struct {
	invoiceRepo  port.InvoiceRepository
	customerRepo port.CustomerRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(invoiceRepo port.InvoiceRepository, customerRepo port.CustomerRepository) ReportService {
	return &reportService{invoiceRepo: invoiceRepo, customerRepo: customerRepo}
}

func (s *reportService) InvoiceRegister(ctx context.Context, w io.Writer, from, to time.Time) (string, error) {
	if to.Before(from) {
		return "", domain.NewValidationError("to date must not be before from date")
	}

	invoices, itemsByInvoice, err := s.invoiceRepo.ListBetween(ctx, from, to)
	if err != nil {
		return "", fmt.Errorf("loading invoices: %w", err)
	}

	// One small property, so the customer set per export is tiny. Cache
	// lookups within the request anyway.
	customers := make(map[string]*domain.Customer)
	rows := make([]export.RegisterRow, 0, len(invoices))
	for _, inv := range invoices {
		key := inv.CustomerID.String()
		customer, ok := customers[key]
		if !ok {
			customer, err = s.customerRepo.GetByID(ctx, inv.CustomerID)
			if err != nil {
				return "", fmt.Errorf("loading customer for invoice %s: %w", inv.InvoiceNumber, err)
			}
			customers[key] = customer
		}
		rows = append(rows, export.RegisterRow{
			Invoice:       inv,
			CustomerName:  customer.FullName,
			CustomerGSTIN: customer.GSTIN,
			Items:         itemsByInvoice[inv.ID],
		})
	}

	if err := export.WriteRegister(w, rows); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("invoice-register-%s-to-%s.xlsx",
		from.Format("2006-01-02"), to.Format("2006-01-02"))
	return filename, nil
}
