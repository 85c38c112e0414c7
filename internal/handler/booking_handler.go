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

// BookingHandler handles reservation endpoints.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create handles POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var input service.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, booking)
}

// Get handles GET /api/v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid booking id")
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, booking)
}

// List handles GET /api/v1/bookings
func (h *BookingHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	filter := port.BookingFilter{
		Status: domain.BookingStatus(c.Query("status")),
	}
	if roomID, err := uuid.Parse(c.Query("room_id")); err == nil {
		filter.RoomID = roomID
	}
	if customerID, err := uuid.Parse(c.Query("customer_id")); err == nil {
		filter.CustomerID = customerID
	}
	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		filter.From = from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		filter.To = to
	}

	bookings, total, err := h.bookingService.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, bookings, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PATCH /api/v1/bookings/:id
func (h *BookingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid booking id")
		return
	}

	var input service.UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	booking, err := h.bookingService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, booking)
}

// CheckIn handles POST /api/v1/bookings/:id/check-in
func (h *BookingHandler) CheckIn(c *gin.Context) {
	h.transition(c, h.bookingService.CheckIn)
}

// CheckOut handles POST /api/v1/bookings/:id/check-out
func (h *BookingHandler) CheckOut(c *gin.Context) {
	h.transition(c, h.bookingService.CheckOut)
}

// Cancel handles POST /api/v1/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.bookingService.Cancel)
}

// MarkNoShow handles POST /api/v1/bookings/:id/no-show
func (h *BookingHandler) MarkNoShow(c *gin.Context) {
	h.transition(c, h.bookingService.MarkNoShow)
}

func (h *BookingHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*domain.Booking, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid booking id")
		return
	}

	booking, err := fn(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, booking)
}
