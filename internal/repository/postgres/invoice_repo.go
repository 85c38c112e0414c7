package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"hotelpride/internal/domain"
	"hotelpride/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

// Create writes the invoice header and its line items in one transaction.
func (r *invoiceRepo) Create(ctx context.Context, invoice *domain.Invoice, items []domain.InvoiceLineItem) error {
	invoice.ID = uuid.New()
	now := time.Now().UTC()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	headerQuery := `INSERT INTO invoices (id, invoice_number, booking_id, customer_id, invoice_date,
		due_date, status, subtotal, total_tax, total_discount, total_amount, amount_in_words,
		notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err = tx.ExecContext(ctx, headerQuery,
		invoice.ID, invoice.InvoiceNumber, invoice.BookingID, invoice.CustomerID,
		invoice.InvoiceDate, invoice.DueDate, invoice.Status,
		invoice.Subtotal, invoice.TotalTax, invoice.TotalDiscount, invoice.TotalAmount,
		invoice.AmountInWords, invoice.Notes, invoice.CreatedBy, invoice.CreatedAt, invoice.UpdatedAt)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create header: %w", err)
	}

	itemQuery := `INSERT INTO invoice_line_items (id, invoice_id, description, item_type, item_date,
		sort_order, quantity, unit_price, tax_rate, tax_inclusive, discount_rate,
		discount_amount, tax_amount, line_total, final_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	for i := range items {
		item := &items[i]
		item.ID = uuid.New()
		item.InvoiceID = invoice.ID
		item.CreatedAt = now
		_, err = tx.ExecContext(ctx, itemQuery,
			item.ID, item.InvoiceID, item.Description, item.ItemType, item.ItemDate,
			item.SortOrder, item.Quantity, item.UnitPrice, item.TaxRate, item.TaxInclusive,
			item.DiscountRate, item.DiscountAmount, item.TaxAmount, item.LineTotal,
			item.FinalAmount, item.CreatedAt)
		if err != nil {
			return fmt.Errorf("invoiceRepo.Create item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Create commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, []domain.InvoiceLineItem, error) {
	var invoice domain.Invoice
	err := r.db.GetContext(ctx, &invoice, "SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}

	var items []domain.InvoiceLineItem
	err = r.db.SelectContext(ctx, &items,
		"SELECT * FROM invoice_line_items WHERE invoice_id = $1 ORDER BY sort_order, created_at", id)
	if err != nil {
		return nil, nil, fmt.Errorf("invoiceRepo.GetByID items: %w", err)
	}
	return &invoice, items, nil
}

func (r *invoiceRepo) List(ctx context.Context, filter port.InvoiceFilter, offset, limit int) ([]domain.Invoice, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	idx := 1
	if filter.CustomerID != uuid.Nil {
		where += fmt.Sprintf(" AND customer_id = $%d", idx)
		args = append(args, filter.CustomerID)
		idx++
	}
	if filter.BookingID != uuid.Nil {
		where += fmt.Sprintf(" AND booking_id = $%d", idx)
		args = append(args, filter.BookingID)
		idx++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, filter.Status)
		idx++
	}
	if !filter.From.IsZero() {
		where += fmt.Sprintf(" AND invoice_date >= $%d", idx)
		args = append(args, filter.From)
		idx++
	}
	if !filter.To.IsZero() {
		where += fmt.Sprintf(" AND invoice_date <= $%d", idx)
		args = append(args, filter.To)
		idx++
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM invoices %s ORDER BY invoice_date DESC, invoice_number DESC LIMIT $%d OFFSET $%d", where, idx, idx+1)
	args = append(args, limit, offset)

	var invoices []domain.Invoice
	if err := r.db.SelectContext(ctx, &invoices, query, args...); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE invoices SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invoiceRepo) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Invoice, map[uuid.UUID][]domain.InvoiceLineItem, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices WHERE invoice_date >= $1 AND invoice_date <= $2 ORDER BY invoice_date, invoice_number",
		from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("invoiceRepo.ListBetween: %w", err)
	}
	if len(invoices) == 0 {
		return invoices, map[uuid.UUID][]domain.InvoiceLineItem{}, nil
	}

	ids := make([]uuid.UUID, 0, len(invoices))
	for i := range invoices {
		ids = append(ids, invoices[i].ID)
	}

	query, args, err := sqlx.In(
		"SELECT * FROM invoice_line_items WHERE invoice_id IN (?) ORDER BY sort_order, created_at", ids)
	if err != nil {
		return nil, nil, fmt.Errorf("invoiceRepo.ListBetween in: %w", err)
	}
	query = r.db.Rebind(query)

	var items []domain.InvoiceLineItem
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, nil, fmt.Errorf("invoiceRepo.ListBetween items: %w", err)
	}

	byInvoice := make(map[uuid.UUID][]domain.InvoiceLineItem, len(invoices))
	for _, item := range items {
		byInvoice[item.InvoiceID] = append(byInvoice[item.InvoiceID], item)
	}
	return invoices, byInvoice, nil
}
