package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"corrispettivi/internal/domain"
	"corrispettivi/internal/service"
)

// RegisterHandler handles register computation endpoints.
type RegisterHandler struct {
	registerService service.RegisterService
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(registerService service.RegisterService) *RegisterHandler {
	return &RegisterHandler{registerService: registerService}
}

// registerOptions builds compute options from query parameters. An invalid
// month silently falls back to the current one inside the service.
func registerOptions(c *gin.Context) domain.RegisterOptions {
	opts := domain.RegisterOptions{
		Month:        c.Query("month"),
		ShowZeroDays: c.Query("zero_days") == "1",
	}
	if raw := c.Query("statuses"); raw != "" {
		opts.Statuses = strings.Split(raw, ",")
	}
	return opts
}

// Get handles GET /api/v1/register
// @Summary Compute the monthly register
// @Description Compute the daily payments register for a month: one row per day with per-rate totals and the invoice number range, plus a totals row.
// @Tags register
// @Produce json
// @Param month query string false "Month as YYYY-MM; defaults to the current month"
// @Param zero_days query string false "Pass 1 to include days without activity"
// @Param statuses query string false "Comma-separated order statuses"
// @Success 200 {object} Response{data=domain.ReportTable} "Register table"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /register [get]
func (h *RegisterHandler) Get(c *gin.Context) {
	table, err := h.registerService.Compute(c.Request.Context(), registerOptions(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, table)
}

// Months handles GET /api/v1/register/months
// @Summary List months with activity
// @Description List the year/month pairs that have at least one matching order, newest first.
// @Tags register
// @Produce json
// @Success 200 {object} Response{data=[]domain.MonthOption} "Month options"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /register/months [get]
func (h *RegisterHandler) Months(c *gin.Context) {
	months, err := h.registerService.Months(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, months)
}
