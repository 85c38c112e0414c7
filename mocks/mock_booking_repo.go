package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"hotelpride/internal/domain"
	"hotelpride/internal/port"
)

// MockBookingRepo is a mock implementation of port.BookingRepository.
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) List(ctx context.Context, filter port.BookingFilter, offset, limit int) ([]domain.Booking, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Booking), args.Int(1), args.Error(2)
}

func (m *MockBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, exclude uuid.UUID) (int, error) {
	args := m.Called(ctx, roomID, checkIn, checkOut, exclude)
	return args.Int(0), args.Error(1)
}
