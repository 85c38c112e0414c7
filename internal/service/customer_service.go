package service

import (
	"context"

	"github.com/google/uuid"

	"hotelpride/internal/domain"
	"hotelpride/internal/port"
)

// CreateCustomerInput is the DTO for registering a guest.
type CreateCustomerInput struct {
	FullName      string             `json:"full_name" binding:"required"`
	Email         string             `json:"email" binding:"omitempty,email"`
	Phone         string             `json:"phone" binding:"required"`
	Address       string             `json:"address"`
	City          string             `json:"city"`
	State         string             `json:"state"`
	Pincode       string             `json:"pincode"`
	GSTIN         string             `json:"gstin"`
	IDProofType   domain.IDProofType `json:"id_proof_type" binding:"omitempty,oneof=passport aadhaar driving_licence voter_id other"`
	IDProofNumber string             `json:"id_proof_number"`
}

// UpdateCustomerInput is the DTO for updating a guest record. Nil fields are
// left unchanged.
type UpdateCustomerInput struct {
	FullName      *string             `json:"full_name"`
	Email         *string             `json:"email" binding:"omitempty,email"`
	Phone         *string             `json:"phone"`
	Address       *string             `json:"address"`
	City          *string             `json:"city"`
	State         *string             `json:"state"`
	Pincode       *string             `json:"pincode"`
	GSTIN         *string             `json:"gstin"`
	IDProofType   *domain.IDProofType `json:"id_proof_type" binding:"omitempty,oneof=passport aadhaar driving_licence voter_id other"`
	IDProofNumber *string             `json:"id_proof_number"`
}

// CustomerService defines guest record operations.
type CustomerService interface {
	Create(ctx context.Context, input CreateCustomerInput, createdBy uuid.UUID) (*domain.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	Search(ctx context.Context, query string, offset, limit int) ([]domain.Customer, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	customerRepo port.CustomerRepository
}

// NewCustomerService creates a new CustomerService implementation.
func NewCustomerService(customerRepo port.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) Create(ctx context.Context, input CreateCustomerInput, createdBy uuid.UUID) (*domain.Customer, error) {
	customer := &domain.Customer{
		ID:            uuid.New(),
		FullName:      input.FullName,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		City:          input.City,
		State:         input.State,
		Pincode:       input.Pincode,
		GSTIN:         input.GSTIN,
		IDProofType:   input.IDProofType,
		IDProofNumber: input.IDProofNumber,
		CreatedBy:     createdBy,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) Search(ctx context.Context, query string, offset, limit int) ([]domain.Customer, int, error) {
	return s.customerRepo.Search(ctx, query, offset, limit)
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		customer.FullName = *input.FullName
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.City != nil {
		customer.City = *input.City
	}
	if input.State != nil {
		customer.State = *input.State
	}
	if input.Pincode != nil {
		customer.Pincode = *input.Pincode
	}
	if input.GSTIN != nil {
		customer.GSTIN = *input.GSTIN
	}
	if input.IDProofType != nil {
		customer.IDProofType = *input.IDProofType
	}
	if input.IDProofNumber != nil {
		customer.IDProofNumber = *input.IDProofNumber
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.customerRepo.Delete(ctx, id)
}
