package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"corrispettivi/internal/service"
)

// ExportHandler handles register download, archive and email endpoints.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Export handles GET /api/v1/register/export
// @Summary Download the register
// @Description Render the monthly register as a spreadsheet download.
// @Tags register
// @Produce application/octet-stream
// @Param month query string false "Month as YYYY-MM; defaults to the current month"
// @Param zero_days query string false "Pass 1 to include days without activity"
// @Param statuses query string false "Comma-separated order statuses"
// @Param format query string false "xlsx (default) or csv"
// @Success 200 {file} file "Register file"
// @Failure 400 {object} ErrorResponseBody "Unknown format"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /register/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	file, err := h.exportService.Export(c.Request.Context(), registerOptions(c), c.Query("format"))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// Archive handles POST /api/v1/register/archive
// @Summary Archive the register
// @Description Upload the monthly register to object storage and return a presigned link.
// @Tags register
// @Produce json
// @Param month query string false "Month as YYYY-MM; defaults to the current month"
// @Success 200 {object} Response{data=service.ArchiveResult} "Archive location"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 409 {object} ErrorResponseBody "Archival not configured"
// @Security BearerAuth
// @Router /register/archive [post]
func (h *ExportHandler) Archive(c *gin.Context) {
	result, err := h.exportService.Archive(c.Request.Context(), registerOptions(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Email handles POST /api/v1/register/email
// @Summary Email the register
// @Description Send the monthly register as an attachment to the given address.
// @Tags register
// @Accept json
// @Produce json
// @Param request body EmailRequest true "Recipient"
// @Success 200 {object} Response{data=MessageResponse} "Delivery accepted"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 409 {object} ErrorResponseBody "Email not configured"
// @Security BearerAuth
// @Router /register/email [post]
func (h *ExportHandler) Email(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.exportService.Email(c.Request.Context(), registerOptions(c), req.To); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "register sent"})
}
