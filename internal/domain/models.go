package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a front-desk staff account.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Room represents a sellable room in the property.
type Room struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Number       string     `db:"number" json:"number"`
	Type         RoomType   `db:"type" json:"type"`
	Floor        int        `db:"floor" json:"floor"`
	BaseRate     float64    `db:"base_rate" json:"base_rate"`
	MaxOccupancy int        `db:"max_occupancy" json:"max_occupancy"`
	Status       RoomStatus `db:"status" json:"status"`
	Description  string     `db:"description" json:"description"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// Customer represents a guest record.
type Customer struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	FullName      string      `db:"full_name" json:"full_name"`
	Email         string      `db:"email" json:"email"`
	Phone         string      `db:"phone" json:"phone"`
	Address       string      `db:"address" json:"address"`
	City          string      `db:"city" json:"city"`
	State         string      `db:"state" json:"state"`
	Pincode       string      `db:"pincode" json:"pincode"`
	GSTIN         string      `db:"gstin" json:"gstin"`
	IDProofType   IDProofType `db:"id_proof_type" json:"id_proof_type"`
	IDProofNumber string      `db:"id_proof_number" json:"id_proof_number"`
	CreatedBy     uuid.UUID   `db:"created_by" json:"created_by"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at" json:"updated_at"`
}

// IDProofFile stores metadata about an uploaded guest ID document.
type IDProofFile struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	CustomerID   uuid.UUID  `db:"customer_id" json:"customer_id"`
	UploadedBy   uuid.UUID  `db:"uploaded_by" json:"uploaded_by"`
	FileName     string     `db:"file_name" json:"file_name"`
	OriginalName string     `db:"original_name" json:"original_name"`
	FileType     FileType   `db:"file_type" json:"file_type"`
	FileSize     int64      `db:"file_size" json:"file_size"`
	S3Bucket     string     `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string     `db:"s3_key" json:"s3_key"`
	ContentType  string     `db:"content_type" json:"content_type"`
	Status       FileStatus `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// Booking represents a room reservation for a guest.
type Booking struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	RoomID        uuid.UUID     `db:"room_id" json:"room_id"`
	CustomerID    uuid.UUID     `db:"customer_id" json:"customer_id"`
	CheckIn       time.Time     `db:"check_in" json:"check_in"`
	CheckOut      time.Time     `db:"check_out" json:"check_out"`
	Adults        int           `db:"adults" json:"adults"`
	Children      int           `db:"children" json:"children"`
	Status        BookingStatus `db:"status" json:"status"`
	RatePerNight  float64       `db:"rate_per_night" json:"rate_per_night"`
	AdvanceAmount float64       `db:"advance_amount" json:"advance_amount"`
	Notes         string        `db:"notes" json:"notes"`
	CreatedBy     uuid.UUID     `db:"created_by" json:"created_by"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// Nights returns the number of nights covered by the booking.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// Invoice represents a GST invoice header. The stored totals are the output
// of the billing engine at the time the invoice was created.
type Invoice struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	InvoiceNumber string        `db:"invoice_number" json:"invoice_number"`
	BookingID     *uuid.UUID    `db:"booking_id" json:"booking_id"`
	CustomerID    uuid.UUID     `db:"customer_id" json:"customer_id"`
	InvoiceDate   time.Time     `db:"invoice_date" json:"invoice_date"`
	DueDate       *time.Time    `db:"due_date" json:"due_date"`
	Status        InvoiceStatus `db:"status" json:"status"`
	Subtotal      float64       `db:"subtotal" json:"subtotal"`
	TotalTax      float64       `db:"total_tax" json:"total_tax"`
	TotalDiscount float64       `db:"total_discount" json:"total_discount"`
	TotalAmount   float64       `db:"total_amount" json:"total_amount"`
	AmountInWords string        `db:"amount_in_words" json:"amount_in_words"`
	Notes         string        `db:"notes" json:"notes"`
	CreatedBy     uuid.UUID     `db:"created_by" json:"created_by"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// InvoiceLineItem represents one billable row on an invoice. Quantity, rates
// and the tax-inclusive flag are the calculation inputs; the amount columns
// are the per-line calculation outputs persisted alongside them.
type InvoiceLineItem struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	InvoiceID      uuid.UUID  `db:"invoice_id" json:"invoice_id"`
	Description    string     `db:"description" json:"description"`
	ItemType       ItemType   `db:"item_type" json:"item_type"`
	ItemDate       *time.Time `db:"item_date" json:"item_date"`
	SortOrder      int        `db:"sort_order" json:"sort_order"`
	Quantity       float64    `db:"quantity" json:"quantity"`
	UnitPrice      float64    `db:"unit_price" json:"unit_price"`
	TaxRate        float64    `db:"tax_rate" json:"tax_rate"`
	TaxInclusive   bool       `db:"tax_inclusive" json:"tax_inclusive"`
	DiscountRate   float64    `db:"discount_rate" json:"discount_rate"`
	DiscountAmount float64    `db:"discount_amount" json:"discount_amount"`
	TaxAmount      float64    `db:"tax_amount" json:"tax_amount"`
	LineTotal      float64    `db:"line_total" json:"line_total"`
	FinalAmount    float64    `db:"final_amount" json:"final_amount"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// HotelSettings holds the single-row property configuration used on
// invoices and booking documents.
type HotelSettings struct {
	ID             uuid.UUID `db:"id" json:"id"`
	HotelName      string    `db:"hotel_name" json:"hotel_name"`
	AddressLine1   string    `db:"address_line1" json:"address_line1"`
	AddressLine2   string    `db:"address_line2" json:"address_line2"`
	City           string    `db:"city" json:"city"`
	State          string    `db:"state" json:"state"`
	Pincode        string    `db:"pincode" json:"pincode"`
	Phone          string    `db:"phone" json:"phone"`
	Email          string    `db:"email" json:"email"`
	GSTIN          string    `db:"gstin" json:"gstin"`
	CheckInTime    string    `db:"check_in_time" json:"check_in_time"`
	CheckOutTime   string    `db:"check_out_time" json:"check_out_time"`
	CurrencyCode   string    `db:"currency_code" json:"currency_code"`
	InvoicePrefix  string    `db:"invoice_prefix" json:"invoice_prefix"`
	NextInvoiceSeq int64     `db:"next_invoice_seq" json:"next_invoice_seq"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
