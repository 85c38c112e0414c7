package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"hotelpride/internal/config"
	"hotelpride/internal/domain"
	"hotelpride/internal/port"
)

// IDProofUploadInput is the DTO for guest ID document uploads.
type IDProofUploadInput struct {
	CustomerID uuid.UUID
	UploadedBy uuid.UUID
	File       multipart.File
	Header     *multipart.FileHeader
}

// FileService defines guest ID document management.
type FileService interface {
	Upload(ctx context.Context, input IDProofUploadInput) (*domain.IDProofFile, error)
	GetByID(ctx context.Context, fileID uuid.UUID) (*domain.IDProofFile, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.IDProofFile, error)
	GetDownloadURL(ctx context.Context, fileID uuid.UUID) (string, error)
	Delete(ctx context.Context, fileID uuid.UUID) error
}

type fileService struct {
	fileRepo     port.IDProofFileRepository
	customerRepo port.CustomerRepository
	storage      port.ObjectStorage
	cfg          *config.S3Config
}

// NewFileService creates a new FileService implementation.
func NewFileService(
	fileRepo port.IDProofFileRepository,
	customerRepo port.CustomerRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) FileService {
	return &fileService{
		fileRepo:     fileRepo,
		customerRepo: customerRepo,
		storage:      storage,
		cfg:          cfg,
	}
}

func (s *fileService) Upload(ctx context.Context, input IDProofUploadInput) (*domain.IDProofFile, error) {
	if _, err := s.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Read first 512 bytes for magic-byte content type detection
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	detectedType := http.DetectContentType(buf[:n])

	if _, validContent := domain.AllowedContentTypes[detectedType]; !validContent {
		return nil, domain.ErrUnsupportedFileType
	}

	// Seek back to beginning for upload
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	fileID := uuid.New()
	s3Key := fmt.Sprintf("customers/%s/id-proofs/%s/%s", input.CustomerID, fileID, input.Header.Filename)
	contentType := domain.AllowedFileTypes[fileType]

	meta := &domain.IDProofFile{
		ID:           fileID,
		CustomerID:   input.CustomerID,
		UploadedBy:   input.UploadedBy,
		FileName:     fileID.String() + "." + ext,
		OriginalName: input.Header.Filename,
		FileType:     fileType,
		FileSize:     input.Header.Size,
		S3Bucket:     s.cfg.Bucket,
		S3Key:        s3Key,
		ContentType:  contentType,
		Status:       domain.FileStatusPending,
	}

	log.Printf("fileService.Upload: uploading %s (%s, %d bytes) for customer %s by user %s",
		input.Header.Filename, contentType, input.Header.Size, input.CustomerID, input.UploadedBy)

	// Persist metadata with pending status
	if err := s.fileRepo.Create(ctx, meta); err != nil {
		log.Printf("fileService.Upload: failed to create file metadata: %v", err)
		return nil, fmt.Errorf("creating file metadata: %w", err)
	}

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("fileService.Upload: S3 upload failed for file %s: %v", meta.ID, err)
		_ = s.fileRepo.UpdateStatus(ctx, meta.ID, domain.FileStatusFailed)
		return nil, domain.ErrUploadFailed
	}

	if err := s.fileRepo.UpdateStatus(ctx, meta.ID, domain.FileStatusUploaded); err != nil {
		return nil, fmt.Errorf("updating file status: %w", err)
	}
	meta.Status = domain.FileStatusUploaded

	return meta, nil
}

func (s *fileService) GetByID(ctx context.Context, fileID uuid.UUID) (*domain.IDProofFile, error) {
	return s.fileRepo.GetByID(ctx, fileID)
}

func (s *fileService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.IDProofFile, error) {
	return s.fileRepo.ListByCustomer(ctx, customerID)
}

func (s *fileService) GetDownloadURL(ctx context.Context, fileID uuid.UUID) (string, error) {
	meta, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, meta.S3Bucket, meta.S3Key, s.cfg.PresignExpiry)
}

func (s *fileService) Delete(ctx context.Context, fileID uuid.UUID) error {
	meta, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, meta.S3Bucket, meta.S3Key); err != nil {
		log.Printf("fileService.Delete: S3 delete failed for file %s: %v", meta.ID, err)
		return fmt.Errorf("deleting object: %w", err)
	}
	return s.fileRepo.UpdateStatus(ctx, fileID, domain.FileStatusDeleted)
}
