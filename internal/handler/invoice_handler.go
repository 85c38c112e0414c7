package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotelpride/internal/domain"
	"hotelpride/internal/port"
	"hotelpride/internal/service"
)

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Preview handles POST /api/v1/invoices/preview
// @Summary Preview invoice totals
// @Description Run the GST calculators over a set of line items without validating or persisting anything. Used by the invoice form for live totals.
// @Tags invoices
// @Accept json
// @Produce json
// @Param input body service.PreviewInvoiceInput true "Line items to calculate"
// @Success 200 {object} Response{data=service.InvoicePreview} "Calculated totals, GST breakdown and amount in words"
// @Failure 400 {object} ErrorResponseBody "Malformed request body"
// @Security BearerAuth
// @Router /invoices/preview [post]
func (h *InvoiceHandler) Preview(c *gin.Context) {
	var input service.PreviewInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	preview, err := h.invoiceService.Preview(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, preview)
}

// Create handles POST /api/v1/invoices
// @Summary Create an invoice
// @Description Validate the payload, allocate the next invoice number, calculate all amounts and persist the invoice as a draft.
// @Tags invoices
// @Accept json
// @Produce json
// @Param input body service.CreateInvoiceInput true "Invoice to create"
// @Success 201 {object} Response{data=service.InvoiceDetail} "Created invoice with line items and GST breakdown"
// @Failure 400 {object} ErrorResponseBody "Validation failed"
// @Failure 404 {object} ErrorResponseBody "Customer not found"
// @Security BearerAuth
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var input service.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	detail, err := h.invoiceService.Create(c.Request.Context(), input, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, detail)
}

// Get handles GET /api/v1/invoices/:id
// @Summary Get an invoice
// @Description Fetch an invoice with its line items and the GST breakdown recomputed from the stored rates.
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} Response{data=service.InvoiceDetail} "Invoice detail"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice id")
		return
	}

	detail, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// List handles GET /api/v1/invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	filter := port.InvoiceFilter{
		Status: domain.InvoiceStatus(c.Query("status")),
	}
	if customerID, err := uuid.Parse(c.Query("customer_id")); err == nil {
		filter.CustomerID = customerID
	}
	if bookingID, err := uuid.Parse(c.Query("booking_id")); err == nil {
		filter.BookingID = bookingID
	}
	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		filter.From = from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		filter.To = to
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, invoices, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Issue handles POST /api/v1/invoices/:id/issue
func (h *InvoiceHandler) Issue(c *gin.Context) {
	h.transition(c, h.invoiceService.Issue)
}

// MarkPaid handles POST /api/v1/invoices/:id/pay
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	h.transition(c, h.invoiceService.MarkPaid)
}

// Cancel handles POST /api/v1/invoices/:id/cancel
func (h *InvoiceHandler) Cancel(c *gin.Context) {
	h.transition(c, h.invoiceService.Cancel)
}

// Email handles POST /api/v1/invoices/:id/email
// @Summary Email an invoice
// @Description Render the invoice and send it to the customer's email address on record.
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} Response{data=MessageResponse} "Invoice sent"
// @Failure 400 {object} ErrorResponseBody "Customer has no email address"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Failure 409 {object} ErrorResponseBody "Invoice is cancelled"
// @Security BearerAuth
// @Router /invoices/{id}/email [post]
func (h *InvoiceHandler) Email(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice id")
		return
	}

	if err := h.invoiceService.Email(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "invoice sent"})
}

func (h *InvoiceHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice id")
		return
	}

	invoice, err := fn(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoice)
}
