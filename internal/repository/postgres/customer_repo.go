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

type customerRepo struct {
	db *sqlx.DB
}

// NewCustomerRepo creates a new PostgreSQL-backed CustomerRepository.
func NewCustomerRepo(db *sqlx.DB) port.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	customer.ID = uuid.New()
	now := time.Now().UTC()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	query := `INSERT INTO customers (id, full_name, email, phone, address, city, state, pincode,
		gstin, id_proof_type, id_proof_number, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		customer.ID, customer.FullName, customer.Email, customer.Phone,
		customer.Address, customer.City, customer.State, customer.Pincode,
		customer.GSTIN, customer.IDProofType, customer.IDProofNumber,
		customer.CreatedBy, customer.CreatedAt, customer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("customerRepo.Create: %w", err)
	}
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.GetContext(ctx, &customer, "SELECT * FROM customers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("customerRepo.GetByID: %w", err)
	}
	return &customer, nil
}

// Search matches name, phone or email case-insensitively. An empty query
// lists all customers, newest first.
func (r *customerRepo) Search(ctx context.Context, query string, offset, limit int) ([]domain.Customer, int, error) {
	where := ""
	args := []interface{}{}
	idx := 1
	if query != "" {
		where = fmt.Sprintf("WHERE full_name ILIKE $%d OR phone ILIKE $%d OR email ILIKE $%d", idx, idx, idx)
		args = append(args, "%"+query+"%")
		idx++
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM customers "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("customerRepo.Search count: %w", err)
	}

	q := fmt.Sprintf("SELECT * FROM customers %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d", where, idx, idx+1)
	args = append(args, limit, offset)

	var customers []domain.Customer
	if err := r.db.SelectContext(ctx, &customers, q, args...); err != nil {
		return nil, 0, fmt.Errorf("customerRepo.Search: %w", err)
	}
	return customers, total, nil
}

func (r *customerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	customer.UpdatedAt = time.Now().UTC()
	query := `UPDATE customers SET full_name = $1, email = $2, phone = $3, address = $4,
		city = $5, state = $6, pincode = $7, gstin = $8, id_proof_type = $9,
		id_proof_number = $10, updated_at = $11 WHERE id = $12`
	result, err := r.db.ExecContext(ctx, query,
		customer.FullName, customer.Email, customer.Phone, customer.Address,
		customer.City, customer.State, customer.Pincode, customer.GSTIN,
		customer.IDProofType, customer.IDProofNumber, customer.UpdatedAt, customer.ID)
	if err != nil {
		return fmt.Errorf("customerRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *customerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("customerRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
