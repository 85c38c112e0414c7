package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hotelpride/internal/domain"
)

// UserRepository defines the contract for staff account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RoomRepository defines the contract for room persistence.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	List(ctx context.Context, filter RoomFilter, offset, limit int) ([]domain.Room, int, error)
	Update(ctx context.Context, room *domain.Room) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RoomStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RoomFilter narrows room listings.
type RoomFilter struct {
	Type   domain.RoomType
	Status domain.RoomStatus
}

// CustomerRepository defines the contract for guest record persistence.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	Search(ctx context.Context, query string, offset, limit int) ([]domain.Customer, int, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookingRepository defines the contract for booking persistence.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, filter BookingFilter, offset, limit int) ([]domain.Booking, int, error)
	Update(ctx context.Context, booking *domain.Booking) error
	// CountOverlapping counts active bookings for the room whose stay range
	// intersects [checkIn, checkOut). exclude skips one booking, for updates.
	CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, exclude uuid.UUID) (int, error)
}

// BookingFilter narrows booking listings.
type BookingFilter struct {
	RoomID     uuid.UUID
	CustomerID uuid.UUID
	Status     domain.BookingStatus
	From       time.Time
	To         time.Time
}

// InvoiceRepository defines the contract for invoice persistence. Creation
// writes the header and its line items atomically.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice, items []domain.InvoiceLineItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, []domain.InvoiceLineItem, error)
	List(ctx context.Context, filter InvoiceFilter, offset, limit int) ([]domain.Invoice, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error
	// ListBetween returns invoices dated in [from, to] with their line
	// items, ordered by invoice date, for register exports.
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.Invoice, map[uuid.UUID][]domain.InvoiceLineItem, error)
}

// InvoiceFilter narrows invoice listings.
type InvoiceFilter struct {
	CustomerID uuid.UUID
	BookingID  uuid.UUID
	Status     domain.InvoiceStatus
	From       time.Time
	To         time.Time
}

// SettingsRepository defines the contract for the single-row hotel settings.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.HotelSettings, error)
	Update(ctx context.Context, settings *domain.HotelSettings) error
	// NextInvoiceNumber atomically increments the invoice sequence and
	// returns the formatted number, e.g. "PRIDE-000042".
	NextInvoiceNumber(ctx context.Context) (string, error)
}

// IDProofFileRepository defines the contract for ID document metadata.
type IDProofFileRepository interface {
	Create(ctx context.Context, meta *domain.IDProofFile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.IDProofFile, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.IDProofFile, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FileStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}
