package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"hotelpride/internal/domain"
	"hotelpride/internal/port"
)

// MockInvoiceRepo is a mock implementation of port.InvoiceRepository.
type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) Create(ctx context.Context, invoice *domain.Invoice, items []domain.InvoiceLineItem) error {
	args := m.Called(ctx, invoice, items)
	return args.Error(0)
}

func (m *MockInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, []domain.InvoiceLineItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var items []domain.InvoiceLineItem
	if args.Get(1) != nil {
		items = args.Get(1).([]domain.InvoiceLineItem)
	}
	return args.Get(0).(*domain.Invoice), items, args.Error(2)
}

func (m *MockInvoiceRepo) List(ctx context.Context, filter port.InvoiceFilter, offset, limit int) ([]domain.Invoice, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Int(1), args.Error(2)
}

func (m *MockInvoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockInvoiceRepo) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Invoice, map[uuid.UUID][]domain.InvoiceLineItem, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var items map[uuid.UUID][]domain.InvoiceLineItem
	if args.Get(1) != nil {
		items = args.Get(1).(map[uuid.UUID][]domain.InvoiceLineItem)
	}
	return args.Get(0).([]domain.Invoice), items, args.Error(2)
}
