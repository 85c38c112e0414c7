package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserInactive        = errors.New("user is inactive")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrDuplicateRoomNumber = errors.New("room number already exists")
	ErrRoomUnavailable     = errors.New("room is not available for the requested dates")
	ErrInvalidStayDates    = errors.New("check-out must be after check-in")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvoiceNotDraft     = errors.New("invoice is not in draft status")
	ErrInvoiceCancelled    = errors.New("invoice is cancelled")
	ErrCustomerHasNoEmail  = errors.New("customer has no email address")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
)

// ValidationError carries the advisory validator's human-readable violations
// for an invoice payload. The billing calculators themselves never reject
// input; this is raised by the service layer before persisting.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// NewValidationError wraps a non-empty list of violation messages.
func NewValidationError(messages ...string) error {
	return &ValidationError{Messages: messages}
}
