package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotelpride/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles export endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// InvoiceRegister handles GET /api/v1/reports/invoice-register
// @Summary Export the GST invoice register
// @Description Download the invoice register for a date range as an Excel workbook, with taxable and tax columns per GST rate.
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {file} binary "Invoice register workbook"
// @Failure 400 {object} ErrorResponseBody "Missing or malformed dates"
// @Security BearerAuth
// @Router /reports/invoice-register [get]
func (h *ReportHandler) InvoiceRegister(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", "from must be a YYYY-MM-DD date")
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", "to must be a YYYY-MM-DD date")
		return
	}

	var buf bytes.Buffer
	filename, err := h.reportService.InvoiceRegister(c.Request.Context(), &buf, from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
