package service

import (
	"context"

	"hotelpride/internal/domain"
	"hotelpride/internal/port"
)

// UpdateSettingsInput is the DTO for updating the property configuration.
// Nil fields are left unchanged. The invoice sequence is not updatable; it
// only moves through number allocation.
type UpdateSettingsInput struct {
	HotelName     *string `json:"hotel_name"`
	AddressLine1  *string `json:"address_line1"`
	AddressLine2  *string `json:"address_line2"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	Pincode       *string `json:"pincode"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" binding:"omitempty,email"`
	GSTIN         *string `json:"gstin"`
	CheckInTime   *string `json:"check_in_time"`
	CheckOutTime  *string `json:"check_out_time"`
	CurrencyCode  *string `json:"currency_code" binding:"omitempty,len=3"`
	InvoicePrefix *string `json:"invoice_prefix"`
}

// SettingsService defines property configuration operations.
type SettingsService interface {
	Get(ctx context.Context) (*domain.HotelSettings, error)
	Update(ctx context.Context, input UpdateSettingsInput) (*domain.HotelSettings, error)
}

type settingsService struct {
	settingsRepo port.SettingsRepository
}

// NewSettingsService creates a new SettingsService implementation.
func NewSettingsService(settingsRepo port.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) Get(ctx context.Context) (*domain.HotelSettings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, input UpdateSettingsInput) (*domain.HotelSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.HotelName != nil {
		settings.HotelName = *input.HotelName
	}
	if input.AddressLine1 != nil {
		settings.AddressLine1 = *input.AddressLine1
	}
	if input.AddressLine2 != nil {
		settings.AddressLine2 = *input.AddressLine2
	}
	if input.City != nil {
		settings.City = *input.City
	}
	if input.State != nil {
		settings.State = *input.State
	}
	if input.Pincode != nil {
		settings.Pincode = *input.Pincode
	}
	if input.Phone != nil {
		settings.Phone = *input.Phone
	}
	if input.Email != nil {
		settings.Email = *input.Email
	}
	if input.GSTIN != nil {
		settings.GSTIN = *input.GSTIN
	}
	if input.CheckInTime != nil {
		settings.CheckInTime = *input.CheckInTime
	}
	if input.CheckOutTime != nil {
		settings.CheckOutTime = *input.CheckOutTime
	}
	if input.CurrencyCode != nil {
		settings.CurrencyCode = *input.CurrencyCode
	}
	if input.InvoicePrefix != nil {
		settings.InvoicePrefix = *input.InvoicePrefix
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
