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

type bookingRepo struct {
	db *sqlx.DB
}

// NewBookingRepo creates a new PostgreSQL-backed BookingRepository.
func NewBookingRepo(db *sqlx.DB) port.BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	booking.ID = uuid.New()
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	query := `INSERT INTO bookings (id, room_id, customer_id, check_in, check_out, adults, children,
		status, rate_per_night, advance_amount, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		booking.ID, booking.RoomID, booking.CustomerID, booking.CheckIn, booking.CheckOut,
		booking.Adults, booking.Children, booking.Status, booking.RatePerNight,
		booking.AdvanceAmount, booking.Notes, booking.CreatedBy, booking.CreatedAt, booking.UpdatedAt)
	if err != nil {
		return fmt.Errorf("bookingRepo.Create: %w", err)
	}
	return nil
}

func (r *bookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.GetContext(ctx, &booking, "SELECT * FROM bookings WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("bookingRepo.GetByID: %w", err)
	}
	return &booking, nil
}

func (r *bookingRepo) List(ctx context.Context, filter port.BookingFilter, offset, limit int) ([]domain.Booking, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	idx := 1
	if filter.RoomID != uuid.Nil {
		where += fmt.Sprintf(" AND room_id = $%d", idx)
		args = append(args, filter.RoomID)
		idx++
	}
	if filter.CustomerID != uuid.Nil {
		where += fmt.Sprintf(" AND customer_id = $%d", idx)
		args = append(args, filter.CustomerID)
		idx++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, filter.Status)
		idx++
	}
	if !filter.From.IsZero() {
		where += fmt.Sprintf(" AND check_out > $%d", idx)
		args = append(args, filter.From)
		idx++
	}
	if !filter.To.IsZero() {
		where += fmt.Sprintf(" AND check_in < $%d", idx)
		args = append(args, filter.To)
		idx++
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM bookings "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("bookingRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM bookings %s ORDER BY check_in DESC LIMIT $%d OFFSET $%d", where, idx, idx+1)
	args = append(args, limit, offset)

	var bookings []domain.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, 0, fmt.Errorf("bookingRepo.List: %w", err)
	}
	return bookings, total, nil
}

func (r *bookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	booking.UpdatedAt = time.Now().UTC()
	query := `UPDATE bookings SET room_id = $1, customer_id = $2, check_in = $3, check_out = $4,
		adults = $5, children = $6, status = $7, rate_per_night = $8, advance_amount = $9,
		notes = $10, updated_at = $11 WHERE id = $12`
	result, err := r.db.ExecContext(ctx, query,
		booking.RoomID, booking.CustomerID, booking.CheckIn, booking.CheckOut,
		booking.Adults, booking.Children, booking.Status, booking.RatePerNight,
		booking.AdvanceAmount, booking.Notes, booking.UpdatedAt, booking.ID)
	if err != nil {
		return fmt.Errorf("bookingRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountOverlapping uses half-open interval logic: an existing stay
// [check_in, check_out) conflicts when check_in < $3 AND check_out > $2.
func (r *bookingRepo) CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, exclude uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM bookings
		WHERE room_id = $1
		  AND status IN ('reserved', 'checked_in')
		  AND check_in < $3 AND check_out > $2
		  AND id != $4`

	var count int
	if err := r.db.GetContext(ctx, &count, query, roomID, checkIn, checkOut, exclude); err != nil {
		return 0, fmt.Errorf("bookingRepo.CountOverlapping: %w", err)
	}
	return count, nil
}
