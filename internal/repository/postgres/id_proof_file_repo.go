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

type idProofFileRepo struct {
	db *sqlx.DB
}

// NewIDProofFileRepo creates a new PostgreSQL-backed IDProofFileRepository.
func NewIDProofFileRepo(db *sqlx.DB) port.IDProofFileRepository {
	return &idProofFileRepo{db: db}
}

func (r *idProofFileRepo) Create(ctx context.Context, meta *domain.IDProofFile) error {
	now := time.Now().UTC()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	query := `INSERT INTO id_proof_files (id, customer_id, uploaded_by, file_name, original_name,
		file_type, file_size, s3_bucket, s3_key, content_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		meta.ID, meta.CustomerID, meta.UploadedBy, meta.FileName, meta.OriginalName,
		meta.FileType, meta.FileSize, meta.S3Bucket, meta.S3Key, meta.ContentType,
		meta.Status, meta.CreatedAt, meta.UpdatedAt)
	if err != nil {
		return fmt.Errorf("idProofFileRepo.Create: %w", err)
	}
	return nil
}

func (r *idProofFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.IDProofFile, error) {
	var meta domain.IDProofFile
	err := r.db.GetContext(ctx, &meta, "SELECT * FROM id_proof_files WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("idProofFileRepo.GetByID: %w", err)
	}
	return &meta, nil
}

func (r *idProofFileRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.IDProofFile, error) {
	var files []domain.IDProofFile
	err := r.db.SelectContext(ctx, &files,
		"SELECT * FROM id_proof_files WHERE customer_id = $1 AND status != 'deleted' ORDER BY created_at DESC",
		customerID)
	if err != nil {
		return nil, fmt.Errorf("idProofFileRepo.ListByCustomer: %w", err)
	}
	return files, nil
}

func (r *idProofFileRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FileStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE id_proof_files SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("idProofFileRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *idProofFileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM id_proof_files WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("idProofFileRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
