package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"hotelpride/internal/domain"
	"hotelpride/internal/port"
)

type roomRepo struct {
	db *sqlx.DB
}

// NewRoomRepo creates a new PostgreSQL-backed RoomRepository.
func NewRoomRepo(db *sqlx.DB) port.RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) Create(ctx context.Context, room *domain.Room) error {
	room.ID = uuid.New()
	now := time.Now().UTC()
	room.CreatedAt = now
	room.UpdatedAt = now

	query := `INSERT INTO rooms (id, number, type, floor, base_rate, max_occupancy, status, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		room.ID, room.Number, room.Type, room.Floor, room.BaseRate,
		room.MaxOccupancy, room.Status, room.Description, room.CreatedAt, room.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "number") {
			return domain.ErrDuplicateRoomNumber
		}
		return fmt.Errorf("roomRepo.Create: %w", err)
	}
	return nil
}

func (r *roomRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	var room domain.Room
	err := r.db.GetContext(ctx, &room, "SELECT * FROM rooms WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("roomRepo.GetByID: %w", err)
	}
	return &room, nil
}

func (r *roomRepo) List(ctx context.Context, filter port.RoomFilter, offset, limit int) ([]domain.Room, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	idx := 1
	if filter.Type != "" {
		where += fmt.Sprintf(" AND type = $%d", idx)
		args = append(args, filter.Type)
		idx++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, filter.Status)
		idx++
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM rooms "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("roomRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM rooms %s ORDER BY number LIMIT $%d OFFSET $%d", where, idx, idx+1)
	args = append(args, limit, offset)

	var rooms []domain.Room
	if err := r.db.SelectContext(ctx, &rooms, query, args...); err != nil {
		return nil, 0, fmt.Errorf("roomRepo.List: %w", err)
	}
	return rooms, total, nil
}

func (r *roomRepo) Update(ctx context.Context, room *domain.Room) error {
	room.UpdatedAt = time.Now().UTC()
	query := `UPDATE rooms SET number = $1, type = $2, floor = $3, base_rate = $4,
		max_occupancy = $5, status = $6, description = $7, updated_at = $8 WHERE id = $9`
	result, err := r.db.ExecContext(ctx, query,
		room.Number, room.Type, room.Floor, room.BaseRate,
		room.MaxOccupancy, room.Status, room.Description, room.UpdatedAt, room.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "number") {
			return domain.ErrDuplicateRoomNumber
		}
		return fmt.Errorf("roomRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *roomRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RoomStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE rooms SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("roomRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *roomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM rooms WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("roomRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
