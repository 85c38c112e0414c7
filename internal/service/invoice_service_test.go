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

func testCustomer() *domain.Customer {
	return &domain.Customer{
		ID:       uuid.New(),
		FullName: "Ramesh Gupta",
		Email:    "ramesh@example.com",
		Phone:    "+91 98765 43210",
	}
}

func invoiceDate() time.Time {
	return time.Date(2025, 11, 12, 0, 0, 0, 0, time.UTC)
}

func newInvoiceService(invoiceRepo *mocks.MockInvoiceRepo, customerRepo *mocks.MockCustomerRepo, settingsRepo *mocks.MockSettingsRepo, sender *mocks.MockEmailSender) service.InvoiceService {
	return service.NewInvoiceService(invoiceRepo, customerRepo, settingsRepo, sender)
}

func TestInvoiceService_Preview(t *testing.T) {
	svc := newInvoiceService(new(mocks.MockInvoiceRepo), new(mocks.MockCustomerRepo), new(mocks.MockSettingsRepo), new(mocks.MockEmailSender))

	preview, err := svc.Preview(context.Background(), service.PreviewInvoiceInput{
		LineItems: []service.LineItemInput{
			{Description: "Deluxe Room", ItemType: domain.ItemTypeRoom, Quantity: 2, UnitPrice: 2000, TaxRate: 12},
			{Description: "Restaurant", ItemType: domain.ItemTypeFood, Quantity: 1, UnitPrice: 500, TaxRate: 5},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 5005.0, preview.Calculation.Subtotal)
	assert.Equal(t, 505.0, preview.Calculation.TotalTax)
	assert.Equal(t, 5005.0, preview.Calculation.TotalAmount)
	require.Len(t, preview.GSTBreakdown, 2)
	assert.Equal(t, 5.0, preview.GSTBreakdown[0].Rate)
	assert.Equal(t, 25.0, preview.GSTBreakdown[0].TaxAmount)
	assert.Equal(t, 12.0, preview.GSTBreakdown[1].Rate)
	assert.Equal(t, 480.0, preview.GSTBreakdown[1].TaxAmount)
	assert.Equal(t, "Five Thousand Five Rupees Only", preview.AmountInWords)
}

func TestInvoiceService_Create_Success(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	settingsRepo := new(mocks.MockSettingsRepo)
	svc := newInvoiceService(invoiceRepo, customerRepo, settingsRepo, new(mocks.MockEmailSender))

	customer := testCustomer()
	customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)
	settingsRepo.On("NextInvoiceNumber", mock.Anything).Return("PRIDE-000042", nil)
	invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice"), mock.AnythingOfType("[]domain.InvoiceLineItem")).Return(nil)

	detail, err := svc.Create(context.Background(), service.CreateInvoiceInput{
		CustomerID:  customer.ID,
		InvoiceDate: invoiceDate(),
		LineItems: []service.LineItemInput{
			{Description: "Deluxe Room", ItemType: domain.ItemTypeRoom, Quantity: 2, UnitPrice: 2000, TaxRate: 12},
		},
	}, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, "PRIDE-000042", detail.Invoice.InvoiceNumber)
	assert.Equal(t, domain.InvoiceStatusDraft, detail.Invoice.Status)
	assert.Equal(t, 4480.0, detail.Invoice.TotalAmount)
	assert.Equal(t, 480.0, detail.Invoice.TotalTax)
	assert.Equal(t, "Four Thousand Four Hundred Eighty Rupees Only", detail.Invoice.AmountInWords)

	require.Len(t, detail.LineItems, 1)
	line := detail.LineItems[0]
	assert.Equal(t, detail.Invoice.ID, line.InvoiceID)
	assert.Equal(t, 480.0, line.TaxAmount)
	assert.Equal(t, 4480.0, line.FinalAmount)

	invoiceRepo.AssertExpectations(t)
	settingsRepo.AssertExpectations(t)
}

func TestInvoiceService_Create_ValidationFailure(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	settingsRepo := new(mocks.MockSettingsRepo)
	svc := newInvoiceService(invoiceRepo, customerRepo, settingsRepo, new(mocks.MockEmailSender))

	customer := testCustomer()
	customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)

	_, err := svc.Create(context.Background(), service.CreateInvoiceInput{
		CustomerID:  customer.ID,
		InvoiceDate: invoiceDate(),
		LineItems: []service.LineItemInput{
			{Description: "", ItemType: domain.ItemTypeRoom, Quantity: 0, UnitPrice: 2000, TaxRate: 12},
		},
	}, uuid.New())

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Messages, "line 1: description is required")
	assert.Contains(t, ve.Messages, "line 1: quantity must be greater than zero")

	// No invoice number is consumed on a rejected payload.
	settingsRepo.AssertNotCalled(t, "NextInvoiceNumber")
	invoiceRepo.AssertNotCalled(t, "Create")
}

func TestInvoiceService_Create_CustomerNotFound(t *testing.T) {
	customerRepo := new(mocks.MockCustomerRepo)
	svc := newInvoiceService(new(mocks.MockInvoiceRepo), customerRepo, new(mocks.MockSettingsRepo), new(mocks.MockEmailSender))

	customerID := uuid.New()
	customerRepo.On("GetByID", mock.Anything, customerID).Return(nil, domain.ErrNotFound)

	_, err := svc.Create(context.Background(), service.CreateInvoiceInput{
		CustomerID:  customerID,
		InvoiceDate: invoiceDate(),
		LineItems: []service.LineItemInput{
			{Description: "Deluxe Room", ItemType: domain.ItemTypeRoom, Quantity: 1, UnitPrice: 2000},
		},
	}, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceService_Issue_FromDraft(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(invoiceRepo, new(mocks.MockCustomerRepo), new(mocks.MockSettingsRepo), new(mocks.MockEmailSender))

	invoice := &domain.Invoice{ID: uuid.New(), Status: domain.InvoiceStatusDraft}
	invoiceRepo.On("GetByID", mock.Anything, invoice.ID).Return(invoice, nil, nil)
	invoiceRepo.On("UpdateStatus", mock.Anything, invoice.ID, domain.InvoiceStatusIssued).Return(nil)

	updated, err := svc.Issue(context.Background(), invoice.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusIssued, updated.Status)
}

func TestInvoiceService_Issue_AlreadyIssued(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(invoiceRepo, new(mocks.MockCustomerRepo), new(mocks.MockSettingsRepo), new(mocks.MockEmailSender))

	invoice := &domain.Invoice{ID: uuid.New(), Status: domain.InvoiceStatusIssued}
	invoiceRepo.On("GetByID", mock.Anything, invoice.ID).Return(invoice, nil, nil)

	_, err := svc.Issue(context.Background(), invoice.ID)

	assert.ErrorIs(t, err, domain.ErrInvoiceNotDraft)
}

func TestInvoiceService_MarkPaid_RequiresIssued(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(invoiceRepo, new(mocks.MockCustomerRepo), new(mocks.MockSettingsRepo), new(mocks.MockEmailSender))

	invoice := &domain.Invoice{ID: uuid.New(), Status: domain.InvoiceStatusDraft}
	invoiceRepo.On("GetByID", mock.Anything, invoice.ID).Return(invoice, nil, nil)

	_, err := svc.MarkPaid(context.Background(), invoice.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestInvoiceService_Cancel_CancelledStays(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(invoiceRepo, new(mocks.MockCustomerRepo), new(mocks.MockSettingsRepo), new(mocks.MockEmailSender))

	invoice := &domain.Invoice{ID: uuid.New(), Status: domain.InvoiceStatusCancelled}
	invoiceRepo.On("GetByID", mock.Anything, invoice.ID).Return(invoice, nil, nil)

	_, err := svc.Cancel(context.Background(), invoice.ID)

	assert.ErrorIs(t, err, domain.ErrInvoiceCancelled)
}

func TestInvoiceService_Email_Success(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	settingsRepo := new(mocks.MockSettingsRepo)
	sender := new(mocks.MockEmailSender)
	svc := newInvoiceService(invoiceRepo, customerRepo, settingsRepo, sender)

	customer := testCustomer()
	invoice := &domain.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "PRIDE-000042",
		CustomerID:    customer.ID,
		InvoiceDate:   invoiceDate(),
		Status:        domain.InvoiceStatusIssued,
		Subtotal:      4000,
		TotalTax:      480,
		TotalAmount:   4480,
		AmountInWords: "Four Thousand Four Hundred Eighty Rupees Only",
	}
	items := []domain.InvoiceLineItem{
		{InvoiceID: invoice.ID, Description: "Deluxe Room", Quantity: 2, UnitPrice: 2000, TaxRate: 12, TaxAmount: 480, FinalAmount: 4480},
	}
	settings := &domain.HotelSettings{HotelName: "Hotel Pride", CurrencyCode: "INR", GSTIN: "27AAAAA0000A1Z5"}

	invoiceRepo.On("GetByID", mock.Anything, invoice.ID).Return(invoice, items, nil)
	customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)
	settingsRepo.On("Get", mock.Anything).Return(settings, nil)
	sender.On("SendInvoiceEmail", mock.Anything, customer.Email, customer.FullName, "PRIDE-000042",
		mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil)

	err := svc.Email(context.Background(), invoice.ID)

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestInvoiceService_Email_CustomerWithoutEmail(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	sender := new(mocks.MockEmailSender)
	svc := newInvoiceService(invoiceRepo, customerRepo, new(mocks.MockSettingsRepo), sender)

	customer := testCustomer()
	customer.Email = ""
	invoice := &domain.Invoice{ID: uuid.New(), CustomerID: customer.ID, Status: domain.InvoiceStatusIssued}

	invoiceRepo.On("GetByID", mock.Anything, invoice.ID).Return(invoice, nil, nil)
	customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)

	err := svc.Email(context.Background(), invoice.ID)

	assert.ErrorIs(t, err, domain.ErrCustomerHasNoEmail)
	sender.AssertNotCalled(t, "SendInvoiceEmail")
}

func TestInvoiceService_GetByID_RecomputesBreakdown(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(invoiceRepo, new(mocks.MockCustomerRepo), new(mocks.MockSettingsRepo), new(mocks.MockEmailSender))

	invoice := &domain.Invoice{ID: uuid.New(), Status: domain.InvoiceStatusIssued}
	items := []domain.InvoiceLineItem{
		{InvoiceID: invoice.ID, Description: "Deluxe Room", Quantity: 2, UnitPrice: 2000, TaxRate: 12},
		{InvoiceID: invoice.ID, Description: "Laundry", Quantity: 1, UnitPrice: 300, TaxRate: 0},
	}
	invoiceRepo.On("GetByID", mock.Anything, invoice.ID).Return(invoice, items, nil)

	detail, err := svc.GetByID(context.Background(), invoice.ID)

	require.NoError(t, err)
	require.Len(t, detail.GSTBreakdown, 1)
	assert.Equal(t, 12.0, detail.GSTBreakdown[0].Rate)
	assert.Equal(t, 4000.0, detail.GSTBreakdown[0].TaxableAmount)
	assert.Equal(t, 480.0, detail.GSTBreakdown[0].TaxAmount)
}
