package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corrispettivi/internal/service"
)

// SettingsHandler handles plugin settings endpoints.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetStatuses handles GET /api/v1/settings/statuses
// @Summary Get the order-status selection
// @Description Get the statuses currently included in the register and the allowed set.
// @Tags settings
// @Produce json
// @Success 200 {object} Response{data=service.StatusSelection} "Status selection"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /settings/statuses [get]
func (h *SettingsHandler) GetStatuses(c *gin.Context) {
	selection, err := h.settingsService.Statuses(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, selection)
}

// PutStatuses handles PUT /api/v1/settings/statuses
// @Summary Update the order-status selection
// @Description Replace the status selection. Unknown statuses are dropped and the completed status is always kept.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body StatusesRequest true "Requested statuses"
// @Success 200 {object} Response{data=service.StatusSelection} "Stored selection"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /settings/statuses [put]
func (h *SettingsHandler) PutStatuses(c *gin.Context) {
	var req StatusesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	selection, err := h.settingsService.SaveStatuses(c.Request.Context(), req.Statuses)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, selection)
}

// GetNonce handles GET /api/v1/settings/nonce
// @Summary Get the dismiss-notice action token
// @Tags settings
// @Produce json
// @Success 200 {object} Response{data=NonceResponse} "Action token"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /settings/nonce [get]
func (h *SettingsHandler) GetNonce(c *gin.Context) {
	dismissed, err := h.settingsService.NoticeDismissed(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, NonceResponse{
		Nonce:     h.settingsService.DismissNonce(),
		Dismissed: dismissed,
	})
}

// DismissNotice handles POST /api/v1/settings/notice/dismiss
// @Summary Dismiss the admin notice
// @Description Permanently dismiss the admin notice. Requires a valid action token.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body DismissRequest true "Action token"
// @Success 200 {object} Response{data=MessageResponse} "Dismissed"
// @Failure 403 {object} ErrorResponseBody "Invalid action token"
// @Security BearerAuth
// @Router /settings/notice/dismiss [post]
func (h *SettingsHandler) DismissNotice(c *gin.Context) {
	var req DismissRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.settingsService.DismissNotice(c.Request.Context(), req.Nonce); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "notice dismissed"})
}
