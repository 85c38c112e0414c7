package service

import (
	"context"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"hotelpride/internal/billing"
	"hotelpride/internal/domain"
	"hotelpride/internal/port"
)

// LineItemInput is the DTO for one invoice line.
type LineItemInput struct {
	Description  string          `json:"description" binding:"required"`
	ItemType     domain.ItemType `json:"item_type" binding:"required,oneof=room food service extra discount other custom"`
	ItemDate     *time.Time      `json:"item_date"`
	Quantity     float64         `json:"quantity" binding:"required"`
	UnitPrice    float64         `json:"unit_price"`
	TaxRate      float64         `json:"tax_rate"`
	TaxInclusive bool            `json:"tax_inclusive"`
	DiscountRate float64         `json:"discount_rate"`
}

// CreateInvoiceInput is the DTO for creating an invoice.
type CreateInvoiceInput struct {
	CustomerID  uuid.UUID       `json:"customer_id" binding:"required"`
	BookingID   *uuid.UUID      `json:"booking_id"`
	InvoiceDate time.Time       `json:"invoice_date" binding:"required"`
	DueDate     *time.Time      `json:"due_date"`
	Notes       string          `json:"notes"`
	LineItems   []LineItemInput `json:"line_items" binding:"required,dive"`
}

// PreviewInvoiceInput is the DTO for a compute-only preview. Nothing is
// validated or persisted; the calculators run on whatever the form holds.
type PreviewInvoiceInput struct {
	LineItems []LineItemInput `json:"line_items" binding:"required"`
}

// GSTBreakdownRow is one tax-rate bucket of the statutory breakdown,
// flattened for JSON. Rows are ordered by ascending rate.
type GSTBreakdownRow struct {
	Rate          float64 `json:"rate"`
	TaxableAmount float64 `json:"taxable_amount"`
	TaxAmount     float64 `json:"tax_amount"`
}

// InvoicePreview is the calculated view returned without persisting.
type InvoicePreview struct {
	Calculation   billing.InvoiceCalculation `json:"calculation"`
	GSTBreakdown  []GSTBreakdownRow          `json:"gst_breakdown"`
	AmountInWords string                     `json:"amount_in_words"`
}

// InvoiceDetail is an invoice header with its line items and the recomputed
// GST breakdown.
type InvoiceDetail struct {
	Invoice      domain.Invoice           `json:"invoice"`
	LineItems    []domain.InvoiceLineItem `json:"line_items"`
	GSTBreakdown []GSTBreakdownRow        `json:"gst_breakdown"`
}

// InvoiceService defines invoice lifecycle and calculation operations.
type InvoiceService interface {
	Preview(ctx context.Context, input PreviewInvoiceInput) (*InvoicePreview, error)
	Create(ctx context.Context, input CreateInvoiceInput, createdBy uuid.UUID) (*InvoiceDetail, error)
	GetByID(ctx context.Context, id uuid.UUID) (*InvoiceDetail, error)
	List(ctx context.Context, filter port.InvoiceFilter, offset, limit int) ([]domain.Invoice, int, error)
	Issue(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	MarkPaid(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	Cancel(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	Email(ctx context.Context, id uuid.UUID) error
}

type invoiceService struct {
	invoiceRepo  port.InvoiceRepository
	customerRepo port.CustomerRepository
	settingsRepo port.SettingsRepository
	emailSender  port.EmailSender
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invoiceRepo port.InvoiceRepository,
	customerRepo port.CustomerRepository,
	settingsRepo port.SettingsRepository,
	emailSender port.EmailSender,
) InvoiceService {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
		emailSender:  emailSender,
	}
}

func (s *invoiceService) Preview(_ context.Context, input PreviewInvoiceInput) (*InvoicePreview, error) {
	items := toBillingItems(input.LineItems)
	calc := billing.CalculateInvoiceTotal(items)
	return &InvoicePreview{
		Calculation:   calc,
		GSTBreakdown:  breakdownRows(billing.CalculateGSTBreakdown(items)),
		AmountInWords: billing.AmountInWords(calc.TotalAmount),
	}, nil
}

func (s *invoiceService) Create(ctx context.Context, input CreateInvoiceInput, createdBy uuid.UUID) (*InvoiceDetail, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	items := toBillingItems(input.LineItems)
	violations := billing.ValidateInvoice(billing.InvoiceInput{
		CustomerName: customer.FullName,
		InvoiceDate:  input.InvoiceDate,
		LineItems:    items,
	})
	if len(violations) > 0 {
		return nil, domain.NewValidationError(violations...)
	}

	number, err := s.settingsRepo.NextInvoiceNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocating invoice number: %w", err)
	}

	calc := billing.CalculateInvoiceTotal(items)

	invoice := &domain.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: number,
		BookingID:     input.BookingID,
		CustomerID:    input.CustomerID,
		InvoiceDate:   input.InvoiceDate,
		DueDate:       input.DueDate,
		Status:        domain.InvoiceStatusDraft,
		Subtotal:      calc.Subtotal,
		TotalTax:      calc.TotalTax,
		TotalDiscount: calc.TotalDiscount,
		TotalAmount:   calc.TotalAmount,
		AmountInWords: billing.AmountInWords(calc.TotalAmount),
		Notes:         input.Notes,
		CreatedBy:     createdBy,
	}

	lineItems := make([]domain.InvoiceLineItem, 0, len(input.LineItems))
	for i, in := range input.LineItems {
		lc := calc.LineItems[i]
		lineItems = append(lineItems, domain.InvoiceLineItem{
			ID:             uuid.New(),
			InvoiceID:      invoice.ID,
			Description:    in.Description,
			ItemType:       in.ItemType,
			ItemDate:       in.ItemDate,
			SortOrder:      i,
			Quantity:       in.Quantity,
			UnitPrice:      in.UnitPrice,
			TaxRate:        in.TaxRate,
			TaxInclusive:   in.TaxInclusive,
			DiscountRate:   in.DiscountRate,
			DiscountAmount: lc.DiscountAmount,
			TaxAmount:      lc.TaxAmount,
			LineTotal:      lc.LineTotal,
			FinalAmount:    lc.FinalAmount,
		})
	}

	if err := s.invoiceRepo.Create(ctx, invoice, lineItems); err != nil {
		return nil, err
	}

	return &InvoiceDetail{
		Invoice:      *invoice,
		LineItems:    lineItems,
		GSTBreakdown: breakdownRows(billing.CalculateGSTBreakdown(items)),
	}, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceDetail, error) {
	invoice, lineItems, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &InvoiceDetail{
		Invoice:      *invoice,
		LineItems:    lineItems,
		GSTBreakdown: breakdownRows(billing.CalculateGSTBreakdown(storedBillingItems(lineItems))),
	}, nil
}

func (s *invoiceService) List(ctx context.Context, filter port.InvoiceFilter, offset, limit int) ([]domain.Invoice, int, error) {
	return s.invoiceRepo.List(ctx, filter, offset, limit)
}

func (s *invoiceService) Issue(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.setStatus(ctx, id, domain.InvoiceStatusIssued, domain.InvoiceStatusDraft)
}

func (s *invoiceService) MarkPaid(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.setStatus(ctx, id, domain.InvoiceStatusPaid, domain.InvoiceStatusIssued)
}

func (s *invoiceService) Cancel(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.setStatus(ctx, id, domain.InvoiceStatusCancelled, domain.InvoiceStatusDraft, domain.InvoiceStatusIssued)
}

func (s *invoiceService) setStatus(ctx context.Context, id uuid.UUID, to domain.InvoiceStatus, from ...domain.InvoiceStatus) (*domain.Invoice, error) {
	invoice, _, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status == domain.InvoiceStatusCancelled {
		return nil, domain.ErrInvoiceCancelled
	}

	allowed := false
	for _, f := range from {
		if invoice.Status == f {
			allowed = true
			break
		}
	}
	if !allowed {
		if to == domain.InvoiceStatusIssued {
			return nil, domain.ErrInvoiceNotDraft
		}
		return nil, domain.ErrInvalidTransition
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}
	invoice.Status = to
	return invoice, nil
}

func (s *invoiceService) Email(ctx context.Context, id uuid.UUID) error {
	invoice, lineItems, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice.Status == domain.InvoiceStatusCancelled {
		return domain.ErrInvoiceCancelled
	}

	customer, err := s.customerRepo.GetByID(ctx, invoice.CustomerID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(customer.Email) == "" {
		return domain.ErrCustomerHasNoEmail
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return err
	}

	htmlBody, textBody, err := renderInvoiceEmail(settings, customer, invoice, lineItems)
	if err != nil {
		return fmt.Errorf("rendering invoice email: %w", err)
	}

	return s.emailSender.SendInvoiceEmail(ctx, customer.Email, customer.FullName, invoice.InvoiceNumber, htmlBody, textBody)
}

// breakdownRows flattens a rate-keyed breakdown into rows sorted by
// ascending rate.
func breakdownRows(breakdown map[float64]billing.GSTBucket) []GSTBreakdownRow {
	rates := make([]float64, 0, len(breakdown))
	for rate := range breakdown {
		rates = append(rates, rate)
	}
	sort.Float64s(rates)

	rows := make([]GSTBreakdownRow, 0, len(rates))
	for _, rate := range rates {
		bucket := breakdown[rate]
		rows = append(rows, GSTBreakdownRow{
			Rate:          rate,
			TaxableAmount: bucket.TaxableAmount,
			TaxAmount:     bucket.TaxAmount,
		})
	}
	return rows
}

// toBillingItems maps request DTOs onto calculator inputs.
func toBillingItems(items []LineItemInput) []billing.LineItem {
	out := make([]billing.LineItem, 0, len(items))
	for _, in := range items {
		out = append(out, billing.LineItem{
			Description:  in.Description,
			Quantity:     in.Quantity,
			UnitPrice:    in.UnitPrice,
			TaxRate:      in.TaxRate,
			TaxInclusive: in.TaxInclusive,
			DiscountRate: in.DiscountRate,
		})
	}
	return out
}

// storedBillingItems maps persisted line items back onto calculator inputs,
// so the GST breakdown can be recomputed from the stored rates.
func storedBillingItems(items []domain.InvoiceLineItem) []billing.LineItem {
	out := make([]billing.LineItem, 0, len(items))
	for _, in := range items {
		out = append(out, billing.LineItem{
			Description:  in.Description,
			Quantity:     in.Quantity,
			UnitPrice:    in.UnitPrice,
			TaxRate:      in.TaxRate,
			TaxInclusive: in.TaxInclusive,
			DiscountRate: in.DiscountRate,
		})
	}
	return out
}

var invoiceEmailTmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>{{.HotelName}}</h2>
  <p>{{.HotelAddress}}<br>GSTIN: {{.HotelGSTIN}}</p>
  <hr>
  <p>Dear {{.CustomerName}},</p>
  <p>Please find below your tax invoice <strong>{{.InvoiceNumber}}</strong> dated {{.InvoiceDate}}.</p>
  <table width="100%" cellpadding="6" cellspacing="0" border="1" style="border-collapse: collapse;">
    <tr style="background: #f5f5f5;">
      <th align="left">Description</th>
      <th align="right">Qty</th>
      <th align="right">Rate</th>
      <th align="right">GST %</th>
      <th align="right">Amount</th>
    </tr>
    {{range .Lines}}
    <tr>
      <td>{{.Description}}</td>
      <td align="right">{{.Quantity}}</td>
      <td align="right">{{.UnitPrice}}</td>
      <td align="right">{{.TaxRate}}</td>
      <td align="right">{{.Amount}}</td>
    </tr>
    {{end}}
  </table>
  <table width="100%" cellpadding="4" cellspacing="0">
    <tr><td align="right">Subtotal:</td><td align="right" width="120">{{.Subtotal}}</td></tr>
    {{range .GSTRows}}
    <tr><td align="right">GST @ {{.Rate}}%:</td><td align="right">{{.Tax}}</td></tr>
    {{end}}
    {{if .TotalDiscount}}<tr><td align="right">Discount:</td><td align="right">{{.TotalDiscount}}</td></tr>{{end}}
    <tr><td align="right"><strong>Total:</strong></td><td align="right"><strong>{{.Total}}</strong></td></tr>
  </table>
  <p><em>{{.AmountInWords}}</em></p>
  <p>Thank you for staying with us.</p>
</body>
</html>`))

type invoiceEmailLine struct {
	Description string
	Quantity    float64
	UnitPrice   string
	TaxRate     float64
	Amount      string
}

type invoiceEmailGSTRow struct {
	Rate float64
	Tax  string
}

type invoiceEmailData struct {
	HotelName     string
	HotelAddress  string
	HotelGSTIN    string
	CustomerName  string
	InvoiceNumber string
	InvoiceDate   string
	Lines         []invoiceEmailLine
	Subtotal      string
	GSTRows       []invoiceEmailGSTRow
	TotalDiscount string
	Total         string
	AmountInWords string
}

func renderInvoiceEmail(
	settings *domain.HotelSettings,
	customer *domain.Customer,
	invoice *domain.Invoice,
	lineItems []domain.InvoiceLineItem,
) (htmlBody, textBody string, err error) {
	currency := settings.CurrencyCode
	if currency == "" {
		currency = "INR"
	}

	data := invoiceEmailData{
		HotelName:     settings.HotelName,
		HotelAddress:  joinNonEmpty(", ", settings.AddressLine1, settings.AddressLine2, settings.City, settings.State, settings.Pincode),
		HotelGSTIN:    settings.GSTIN,
		CustomerName:  customer.FullName,
		InvoiceNumber: invoice.InvoiceNumber,
		InvoiceDate:   invoice.InvoiceDate.Format("02 Jan 2006"),
		Subtotal:      billing.FormatCurrency(invoice.Subtotal, currency),
		Total:         billing.FormatCurrency(invoice.TotalAmount, currency),
		AmountInWords: invoice.AmountInWords,
	}
	if invoice.TotalDiscount > 0 {
		data.TotalDiscount = billing.FormatCurrency(invoice.TotalDiscount, currency)
	}

	for _, li := range lineItems {
		data.Lines = append(data.Lines, invoiceEmailLine{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   billing.FormatCurrency(li.UnitPrice, currency),
			TaxRate:     li.TaxRate,
			Amount:      billing.FormatCurrency(li.FinalAmount, currency),
		})
	}

	breakdown := billing.CalculateGSTBreakdown(storedBillingItems(lineItems))
	rates := make([]float64, 0, len(breakdown))
	for rate := range breakdown {
		rates = append(rates, rate)
	}
	sort.Float64s(rates)
	for _, rate := range rates {
		data.GSTRows = append(data.GSTRows, invoiceEmailGSTRow{
			Rate: rate,
			Tax:  billing.FormatCurrency(breakdown[rate].TaxAmount, currency),
		})
	}

	var sb strings.Builder
	if err := invoiceEmailTmpl.Execute(&sb, data); err != nil {
		return "", "", err
	}

	var txt strings.Builder
	fmt.Fprintf(&txt, "%s\nTax Invoice %s dated %s\n\n", settings.HotelName, invoice.InvoiceNumber, data.InvoiceDate)
	for _, li := range lineItems {
		fmt.Fprintf(&txt, "%s  x%g  %s\n", li.Description, li.Quantity, billing.FormatCurrency(li.FinalAmount, currency))
	}
	fmt.Fprintf(&txt, "\nSubtotal: %s\n", data.Subtotal)
	for _, row := range data.GSTRows {
		fmt.Fprintf(&txt, "GST @ %g%%: %s\n", row.Rate, row.Tax)
	}
	fmt.Fprintf(&txt, "Total: %s\n%s\n", data.Total, invoice.AmountInWords)

	return sb.String(), txt.String(), nil
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
