package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hotelpride/internal/domain"
	"hotelpride/internal/service"
	"hotelpride/mocks"
)

func testRoom() *domain.Room {
	return &domain.Room{
		ID:           uuid.New(),
		Number:       "101",
		Type:         domain.RoomTypeDeluxe,
		BaseRate:     3500,
		MaxOccupancy: 3,
		Status:       domain.RoomStatusAvailable,
	}
}

func stayDates() (time.Time, time.Time) {
	checkIn := time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)
	return checkIn, checkIn.AddDate(0, 0, 2)
}

func TestBookingService_Create_Success(t *testing.T) {
	bookingRepo := new(mocks.MockBookingRepo)
	roomRepo := new(mocks.MockRoomRepo)
	svc := service.NewBookingService(bookingRepo, roomRepo)

	room := testRoom()
	checkIn, checkOut := stayDates()

	roomRepo.On("GetByID", mock.Anything, room.ID).Return(room, nil)
	bookingRepo.On("CountOverlapping", mock.Anything, room.ID, checkIn, checkOut, uuid.Nil).Return(0, nil)
	bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	booking, err := svc.Create(context.Background(), service.CreateBookingInput{
		RoomID:     room.ID,
		CustomerID: uuid.New(),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Adults:     2,
	}, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusReserved, booking.Status)
	// Rate defaults to the room's base rate when not given.
	assert.Equal(t, 3500.0, booking.RatePerNight)
	assert.Equal(t, 2, booking.Nights())
	bookingRepo.AssertExpectations(t)
}

func TestBookingService_Create_InvalidDates(t *testing.T) {
	bookingRepo := new(mocks.MockBookingRepo)
	roomRepo := new(mocks.MockRoomRepo)
	svc := service.NewBookingService(bookingRepo, roomRepo)

	checkIn, _ := stayDates()

	_, err := svc.Create(context.Background(), service.CreateBookingInput{
		RoomID:     uuid.New(),
		CustomerID: uuid.New(),
		CheckIn:    checkIn,
		CheckOut:   checkIn, // zero-night stay
		Adults:     1,
	}, uuid.New())

	assert.ErrorIs(t, err, domain.ErrInvalidStayDates)
	roomRepo.AssertNotCalled(t, "GetByID")
}

func TestBookingService_Create_OverlappingBooking(t *testing.T) {
	bookingRepo := new(mocks.MockBookingRepo)
	roomRepo := new(mocks.MockRoomRepo)
	svc := service.NewBookingService(bookingRepo, roomRepo)

	room := testRoom()
	checkIn, checkOut := stayDates()

	roomRepo.On("GetByID", mock.Anything, room.ID).Return(room, nil)
	bookingRepo.On("CountOverlapping", mock.Anything, room.ID, checkIn, checkOut, uuid.Nil).Return(1, nil)

	_, err := svc.Create(context.Background(), service.CreateBookingInput{
		RoomID:     room.ID,
		CustomerID: uuid.New(),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Adults:     2,
	}, uuid.New())

	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
	bookingRepo.AssertNotCalled(t, "Create")
}

func TestBookingService_Create_RoomUnderMaintenance(t *testing.T) {
	bookingRepo := new(mocks.MockBookingRepo)
	roomRepo := new(mocks.MockRoomRepo)
	svc := service.NewBookingService(bookingRepo, roomRepo)

	room := testRoom()
	room.Status = domain.RoomStatusMaintenance
	checkIn, checkOut := stayDates()

	roomRepo.On("GetByID", mock.Anything, room.ID).Return(room, nil)

	_, err := svc.Create(context.Background(), service.CreateBookingInput{
		RoomID:     room.ID,
		CustomerID: uuid.New(),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Adults:     1,
	}, uuid.New())

	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
}

func TestBookingService_CheckIn_Success(t *testing.T) {
	bookingRepo := new(mocks.MockBookingRepo)
	roomRepo := new(mocks.MockRoomRepo)
	svc := service.NewBookingService(bookingRepo, roomRepo)

	booking := &domain.Booking{
		ID:     uuid.New(),
		RoomID: uuid.New(),
		Status: domain.BookingStatusReserved,
	}

	bookingRepo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	bookingRepo.On("Update", mock.Anything, booking).Return(nil)
	roomRepo.On("UpdateStatus", mock.Anything, booking.RoomID, domain.RoomStatusOccupied).Return(nil)

	updated, err := svc.CheckIn(context.Background(), booking.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCheckedIn, updated.Status)
	roomRepo.AssertExpectations(t)
}

func TestBookingService_CheckIn_AlreadyCheckedIn(t *testing.T) {
	bookingRepo := new(mocks.MockBookingRepo)
	roomRepo := new(mocks.MockRoomRepo)
	svc := service.NewBookingService(bookingRepo, roomRepo)

	booking := &domain.Booking{
		ID:     uuid.New(),
		RoomID: uuid.New(),
		Status: domain.BookingStatusCheckedIn,
	}

	bookingRepo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

	_, err := svc.CheckIn(context.Background(), booking.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	bookingRepo.AssertNotCalled(t, "Update")
}

func TestBookingService_CheckOut_FreesRoom(t *testing.T) {
	bookingRepo := new(mocks.MockBookingRepo)
	roomRepo := new(mocks.MockRoomRepo)
	svc := service.NewBookingService(bookingRepo, roomRepo)

	booking := &domain.Booking{
		ID:     uuid.New(),
		RoomID: uuid.New(),
		Status: domain.BookingStatusCheckedIn,
	}

	bookingRepo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	bookingRepo.On("Update", mock.Anything, booking).Return(nil)
	roomRepo.On("UpdateStatus", mock.Anything, booking.RoomID, domain.RoomStatusAvailable).Return(nil)

	updated, err := svc.CheckOut(context.Background(), booking.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCheckedOut, updated.Status)
	roomRepo.AssertExpectations(t)
}

func TestBookingService_Cancel_DoesNotTouchRoom(t *testing.T) {
	bookingRepo := new(mocks.MockBookingRepo)
	roomRepo := new(mocks.MockRoomRepo)
	svc := service.NewBookingService(bookingRepo, roomRepo)

	booking := &domain.Booking{
		ID:     uuid.New(),
		RoomID: uuid.New(),
		Status: domain.BookingStatusReserved,
	}

	bookingRepo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	bookingRepo.On("Update", mock.Anything, booking).Return(nil)

	updated, err := svc.Cancel(context.Background(), booking.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, updated.Status)
	roomRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestBookingService_Update_DateChangeRechecksAvailability(t *testing.T) {
	bookingRepo := new(mocks.MockBookingRepo)
	roomRepo := new(mocks.MockRoomRepo)
	svc := service.NewBookingService(bookingRepo, roomRepo)

	checkIn, checkOut := stayDates()
	booking := &domain.Booking{
		ID:       uuid.New(),
		RoomID:   uuid.New(),
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   domain.BookingStatusReserved,
	}
	newCheckOut := checkOut.AddDate(0, 0, 3)

	bookingRepo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	bookingRepo.On("CountOverlapping", mock.Anything, booking.RoomID, checkIn, newCheckOut, booking.ID).Return(1, nil)

	_, err := svc.Update(context.Background(), booking.ID, service.UpdateBookingInput{
		CheckOut: &newCheckOut,
	})

	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
	bookingRepo.AssertNotCalled(t, "Update")
}
