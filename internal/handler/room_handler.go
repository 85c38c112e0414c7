package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotelpride/internal/domain"
	"hotelpride/internal/port"
	"hotelpride/internal/service"
)

// RoomHandler handles room management endpoints.
type RoomHandler struct {
	roomService service.RoomService
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(roomService service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// Create handles POST /api/v1/rooms
func (h *RoomHandler) Create(c *gin.Context) {
	var input service.CreateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	room, err := h.roomService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, room)
}

// Get handles GET /api/v1/rooms/:id
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid room id")
		return
	}

	room, err := h.roomService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, room)
}

// List handles GET /api/v1/rooms
func (h *RoomHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	filter := port.RoomFilter{
		Type:   domain.RoomType(c.Query("type")),
		Status: domain.RoomStatus(c.Query("status")),
	}

	rooms, total, err := h.roomService.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, rooms, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PATCH /api/v1/rooms/:id
func (h *RoomHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid room id")
		return
	}

	var input service.UpdateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	room, err := h.roomService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, room)
}

// Delete handles DELETE /api/v1/rooms/:id
func (h *RoomHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid room id")
		return
	}

	if err := h.roomService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "room deleted"})
}
