package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hotelpride/internal/domain"
	"hotelpride/internal/handler"
	"hotelpride/internal/middleware"
	"hotelpride/internal/service"
	"hotelpride/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newInvoiceHandler(invoiceRepo *mocks.MockInvoiceRepo, customerRepo *mocks.MockCustomerRepo, settingsRepo *mocks.MockSettingsRepo) *handler.InvoiceHandler {
	svc := service.NewInvoiceService(invoiceRepo, customerRepo, settingsRepo, new(mocks.MockEmailSender))
	return handler.NewInvoiceHandler(svc)
}

func jsonRequest(t *testing.T, method, path string, payload interface{}) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, err = http.NewRequest(method, path, bytes.NewReader(body))
	require.NoError(t, err)
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestInvoiceHandler_Preview_Success(t *testing.T) {
	h := newInvoiceHandler(new(mocks.MockInvoiceRepo), new(mocks.MockCustomerRepo), new(mocks.MockSettingsRepo))

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/invoices/preview", gin.H{
		"line_items": []gin.H{
			{"description": "Deluxe Room", "item_type": "room", "quantity": 2, "unit_price": 2000, "tax_rate": 12},
		},
	})

	h.Preview(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                   `json:"success"`
		Data    service.InvoicePreview `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 4480.0, resp.Data.Calculation.TotalAmount)
	assert.Equal(t, "Four Thousand Four Hundred Eighty Rupees Only", resp.Data.AmountInWords)
}

func TestInvoiceHandler_Preview_MalformedBody(t *testing.T) {
	h := newInvoiceHandler(new(mocks.MockInvoiceRepo), new(mocks.MockCustomerRepo), new(mocks.MockSettingsRepo))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, "/api/v1/invoices/preview", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	h.Preview(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceHandler_Create_ValidationDetails(t *testing.T) {
	customerRepo := new(mocks.MockCustomerRepo)
	settingsRepo := new(mocks.MockSettingsRepo)
	h := newInvoiceHandler(new(mocks.MockInvoiceRepo), customerRepo, settingsRepo)

	customer := &domain.Customer{ID: uuid.New(), FullName: "Ramesh Gupta"}
	customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/invoices", gin.H{
		"customer_id":  customer.ID,
		"invoice_date": "2025-11-12T00:00:00Z",
		"line_items": []gin.H{
			{"description": "Deluxe Room", "item_type": "room", "quantity": -1, "unit_price": 2000, "tax_rate": 12},
		},
	})
	c.Set(middleware.ContextKeyUserID, uuid.New())

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "line 1: quantity must be greater than zero")
	settingsRepo.AssertNotCalled(t, "NextInvoiceNumber")
}

func TestInvoiceHandler_Get_NotFound(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	h := newInvoiceHandler(invoiceRepo, new(mocks.MockCustomerRepo), new(mocks.MockSettingsRepo))

	id := uuid.New()
	invoiceRepo.On("GetByID", mock.Anything, id).Return(nil, nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/invoices/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
