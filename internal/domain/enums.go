package domain

// UserRole defines the staff role hierarchy.
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleManager   UserRole = "manager"
	RoleFrontDesk UserRole = "frontdesk"
)

// RoomType classifies rooms for rate and occupancy purposes.
type RoomType string

const (
	RoomTypeStandard  RoomType = "standard"
	RoomTypeDeluxe    RoomType = "deluxe"
	RoomTypeSuite     RoomType = "suite"
	RoomTypeExecutive RoomType = "executive"
)

// RoomStatus represents the operational state of a room.
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// BookingStatus represents the lifecycle of a booking.
type BookingStatus string

const (
	BookingStatusReserved   BookingStatus = "reserved"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusNoShow     BookingStatus = "no_show"
)

// ActiveBookingStatuses are the statuses that hold a room against new
// bookings for the same dates.
var ActiveBookingStatuses = []BookingStatus{
	BookingStatusReserved,
	BookingStatusCheckedIn,
}

// InvoiceStatus represents the lifecycle of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusIssued    InvoiceStatus = "issued"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// ItemType classifies invoice line items.
type ItemType string

const (
	ItemTypeRoom     ItemType = "room"
	ItemTypeFood     ItemType = "food"
	ItemTypeService  ItemType = "service"
	ItemTypeExtra    ItemType = "extra"
	ItemTypeDiscount ItemType = "discount"
	ItemTypeOther    ItemType = "other"
	ItemTypeCustom   ItemType = "custom"
)

// IDProofType lists the accepted guest identity documents.
type IDProofType string

const (
	IDProofPassport       IDProofType = "passport"
	IDProofAadhaar        IDProofType = "aadhaar"
	IDProofDrivingLicence IDProofType = "driving_licence"
	IDProofVoterID        IDProofType = "voter_id"
	IDProofOther          IDProofType = "other"
)

// FileType represents the allowed file types for ID proof upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// FileStatus represents the lifecycle of an uploaded file.
type FileStatus string

const (
	FileStatusPending  FileStatus = "pending"
	FileStatusUploaded FileStatus = "uploaded"
	FileStatusFailed   FileStatus = "failed"
	FileStatusDeleted  FileStatus = "deleted"
)
