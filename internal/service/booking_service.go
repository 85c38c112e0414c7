package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hotelpride/internal/domain"
	"hotelpride/internal/port"
)

// CreateBookingInput is the DTO for reserving a room.
type CreateBookingInput struct {
	RoomID        uuid.UUID `json:"room_id" binding:"required"`
	CustomerID    uuid.UUID `json:"customer_id" binding:"required"`
	CheckIn       time.Time `json:"check_in" binding:"required"`
	CheckOut      time.Time `json:"check_out" binding:"required"`
	Adults        int       `json:"adults" binding:"required,gt=0"`
	Children      int       `json:"children" binding:"gte=0"`
	RatePerNight  float64   `json:"rate_per_night" binding:"omitempty,gt=0"`
	AdvanceAmount float64   `json:"advance_amount" binding:"gte=0"`
	Notes         string    `json:"notes"`
}

// UpdateBookingInput is the DTO for amending a reservation. Nil fields are
// left unchanged. Date changes re-run the availability check.
type UpdateBookingInput struct {
	CheckIn       *time.Time `json:"check_in"`
	CheckOut      *time.Time `json:"check_out"`
	Adults        *int       `json:"adults" binding:"omitempty,gt=0"`
	Children      *int       `json:"children" binding:"omitempty,gte=0"`
	RatePerNight  *float64   `json:"rate_per_night" binding:"omitempty,gt=0"`
	AdvanceAmount *float64   `json:"advance_amount" binding:"omitempty,gte=0"`
	Notes         *string    `json:"notes"`
}

// BookingService defines reservation lifecycle operations.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput, createdBy uuid.UUID) (*domain.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, filter port.BookingFilter, offset, limit int) ([]domain.Booking, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateBookingInput) (*domain.Booking, error)
	CheckIn(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	CheckOut(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	MarkNoShow(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
}

type bookingService struct {
	bookingRepo port.BookingRepository
	roomRepo    port.RoomRepository
}

// NewBookingService creates a new BookingService implementation.
func NewBookingService(bookingRepo port.BookingRepository, roomRepo port.RoomRepository) BookingService {
	return &bookingService{bookingRepo: bookingRepo, roomRepo: roomRepo}
}

func (s *bookingService) Create(ctx context.Context, input CreateBookingInput, createdBy uuid.UUID) (*domain.Booking, error) {
	if !input.CheckOut.After(input.CheckIn) {
		return nil, domain.ErrInvalidStayDates
	}

	room, err := s.roomRepo.GetByID(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}
	if room.Status == domain.RoomStatusMaintenance {
		return nil, domain.ErrRoomUnavailable
	}

	overlapping, err := s.bookingRepo.CountOverlapping(ctx, input.RoomID, input.CheckIn, input.CheckOut, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, domain.ErrRoomUnavailable
	}

	rate := input.RatePerNight
	if rate == 0 {
		rate = room.BaseRate
	}

	booking := &domain.Booking{
		ID:            uuid.New(),
		RoomID:        input.RoomID,
		CustomerID:    input.CustomerID,
		CheckIn:       input.CheckIn,
		CheckOut:      input.CheckOut,
		Adults:        input.Adults,
		Children:      input.Children,
		Status:        domain.BookingStatusReserved,
		RatePerNight:  rate,
		AdvanceAmount: input.AdvanceAmount,
		Notes:         input.Notes,
		CreatedBy:     createdBy,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *bookingService) List(ctx context.Context, filter port.BookingFilter, offset, limit int) ([]domain.Booking, int, error) {
	return s.bookingRepo.List(ctx, filter, offset, limit)
}

func (s *bookingService) Update(ctx context.Context, id uuid.UUID, input UpdateBookingInput) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusReserved && booking.Status != domain.BookingStatusCheckedIn {
		return nil, domain.ErrInvalidTransition
	}

	datesChanged := false
	if input.CheckIn != nil {
		booking.CheckIn = *input.CheckIn
		datesChanged = true
	}
	if input.CheckOut != nil {
		booking.CheckOut = *input.CheckOut
		datesChanged = true
	}
	if datesChanged {
		if !booking.CheckOut.After(booking.CheckIn) {
			return nil, domain.ErrInvalidStayDates
		}
		overlapping, err := s.bookingRepo.CountOverlapping(ctx, booking.RoomID, booking.CheckIn, booking.CheckOut, booking.ID)
		if err != nil {
			return nil, err
		}
		if overlapping > 0 {
			return nil, domain.ErrRoomUnavailable
		}
	}

	if input.Adults != nil {
		booking.Adults = *input.Adults
	}
	if input.Children != nil {
		booking.Children = *input.Children
	}
	if input.RatePerNight != nil {
		booking.RatePerNight = *input.RatePerNight
	}
	if input.AdvanceAmount != nil {
		booking.AdvanceAmount = *input.AdvanceAmount
	}
	if input.Notes != nil {
		booking.Notes = *input.Notes
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) CheckIn(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return s.transition(ctx, id, domain.BookingStatusReserved, domain.BookingStatusCheckedIn, domain.RoomStatusOccupied)
}

func (s *bookingService) CheckOut(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return s.transition(ctx, id, domain.BookingStatusCheckedIn, domain.BookingStatusCheckedOut, domain.RoomStatusAvailable)
}

func (s *bookingService) Cancel(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return s.transition(ctx, id, domain.BookingStatusReserved, domain.BookingStatusCancelled, "")
}

func (s *bookingService) MarkNoShow(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return s.transition(ctx, id, domain.BookingStatusReserved, domain.BookingStatusNoShow, "")
}

// transition moves a booking from one status to another. A non-empty
// roomStatus also updates the room as a side effect.
func (s *bookingService) transition(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus, roomStatus domain.RoomStatus) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != from {
		return nil, domain.ErrInvalidTransition
	}

	booking.Status = to
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	if roomStatus != "" {
		if err := s.roomRepo.UpdateStatus(ctx, booking.RoomID, roomStatus); err != nil {
			return nil, err
		}
	}
	return booking, nil
}
