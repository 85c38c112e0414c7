package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"hotelpride/internal/domain"
)

// MockIDProofFileRepo is a mock implementation of port.IDProofFileRepository.
type MockIDProofFileRepo struct {
	mock.Mock
}

func (m *MockIDProofFileRepo) Create(ctx context.Context, meta *domain.IDProofFile) error {
	args := m.Called(ctx, meta)
	return args.Error(0)
}

func (m *MockIDProofFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.IDProofFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IDProofFile), args.Error(1)
}

func (m *MockIDProofFileRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.IDProofFile, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IDProofFile), args.Error(1)
}

func (m *MockIDProofFileRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FileStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockIDProofFileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
