package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"hotelpride/internal/domain"
	"hotelpride/internal/port"
)

type settingsRepo struct {
	db *sqlx.DB
}

// NewSettingsRepo creates a new PostgreSQL-backed SettingsRepository.
// The hotel_settings table holds exactly one row, seeded by migration.
func NewSettingsRepo(db *sqlx.DB) port.SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get(ctx context.Context) (*domain.HotelSettings, error) {
	var settings domain.HotelSettings
	err := r.db.GetContext(ctx, &settings, "SELECT * FROM hotel_settings LIMIT 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("settingsRepo.Get: %w", err)
	}
	return &settings, nil
}

func (r *settingsRepo) Update(ctx context.Context, settings *domain.HotelSettings) error {
	settings.UpdatedAt = time.Now().UTC()
	query := `UPDATE hotel_settings SET hotel_name = $1, address_line1 = $2, address_line2 = $3,
		city = $4, state = $5, pincode = $6, phone = $7, email = $8, gstin = $9,
		check_in_time = $10, check_out_time = $11, currency_code = $12, invoice_prefix = $13,
		updated_at = $14 WHERE id = $15`
	result, err := r.db.ExecContext(ctx, query,
		settings.HotelName, settings.AddressLine1, settings.AddressLine2,
		settings.City, settings.State, settings.Pincode, settings.Phone, settings.Email,
		settings.GSTIN, settings.CheckInTime, settings.CheckOutTime, settings.CurrencyCode,
		settings.InvoicePrefix, settings.UpdatedAt, settings.ID)
	if err != nil {
		return fmt.Errorf("settingsRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NextInvoiceNumber increments the sequence atomically so concurrent invoice
// creation never hands out the same number.
func (r *settingsRepo) NextInvoiceNumber(ctx context.Context) (string, error) {
	var row struct {
		InvoicePrefix string `db:"invoice_prefix"`
		Seq           int64  `db:"seq"`
	}
	query := `UPDATE hotel_settings
		SET next_invoice_seq = next_invoice_seq + 1, updated_at = $1
		RETURNING invoice_prefix, next_invoice_seq - 1 AS seq`
	if err := r.db.GetContext(ctx, &row, query, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("settingsRepo.NextInvoiceNumber: %w", err)
	}
	return fmt.Sprintf("%s-%06d", row.InvoicePrefix, row.Seq), nil
}
