package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotelpride/internal/service"
)

// FileHandler handles guest ID document endpoints.
type FileHandler struct {
	fileService service.FileService
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(fileService service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// Upload handles POST /api/v1/customers/:id/id-proofs
// @Summary Upload a guest ID document
// @Description Upload an ID proof (PDF, JPG or PNG) for a customer. The file is content-sniffed before storage.
// @Tags id-proofs
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Customer ID"
// @Param file formData file true "ID document (PDF, JPG, or PNG)"
// @Success 201 {object} Response{data=domain.IDProofFile} "File uploaded"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 404 {object} ErrorResponseBody "Customer not found"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Security BearerAuth
// @Router /customers/{id}/id-proofs [post]
func (h *FileHandler) Upload(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid customer id")
		return
	}

	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	meta, err := h.fileService.Upload(c.Request.Context(), service.IDProofUploadInput{
		CustomerID: customerID,
		UploadedBy: userID,
		File:       file,
		Header:     header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, meta)
}

// ListByCustomer handles GET /api/v1/customers/:id/id-proofs
func (h *FileHandler) ListByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid customer id")
		return
	}

	files, err := h.fileService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, files)
}

// GetDownloadURL handles GET /api/v1/id-proofs/:id/download
// @Summary Get a download URL for an ID document
// @Description Returns a time-limited presigned URL for the stored object.
// @Tags id-proofs
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} Response{data=FileWithDownloadURL} "File with download URL"
// @Failure 404 {object} ErrorResponseBody "File not found"
// @Security BearerAuth
// @Router /id-proofs/{id}/download [get]
func (h *FileHandler) GetDownloadURL(c *gin.Context) {
	fileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid file id")
		return
	}

	meta, err := h.fileService.GetByID(c.Request.Context(), fileID)
	if err != nil {
		HandleError(c, err)
		return
	}

	url, err := h.fileService.GetDownloadURL(c.Request.Context(), fileID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, FileWithDownloadURL{File: *meta, DownloadURL: url})
}

// Delete handles DELETE /api/v1/id-proofs/:id
func (h *FileHandler) Delete(c *gin.Context) {
	fileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid file id")
		return
	}

	if err := h.fileService.Delete(c.Request.Context(), fileID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "file deleted"})
}
