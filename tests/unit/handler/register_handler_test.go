package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"corrispettivi/internal/domain"
	"corrispettivi/internal/handler"
	"corrispettivi/mocks"
)

func registerTable() *domain.ReportTable {
	return &domain.ReportTable{
		Month: "2025-03",
		Columns: []domain.Column{
			{Key: "date", Label: "Date", Type: domain.ColumnDate},
			{Key: "total", Label: "Total daily payments", Type: domain.ColumnNumber},
		},
		Rows:      []domain.Row{{"date": "2025-03-05", "total": 122.0}},
		Totals:    domain.Row{"date": "", "total": 122.0},
		FileBase:  "corrispettivi-2025-03",
		SheetName: "Corrispettivi",
	}
}

func TestRegisterHandler_Get_Success(t *testing.T) {
	mockRegister := new(mocks.MockRegisterService)
	h := handler.NewRegisterHandler(mockRegister)

	mockRegister.On("Compute", mock.Anything, domain.RegisterOptions{
		Month:        "2025-03",
		ShowZeroDays: true,
		Statuses:     []string{"wc-completed", "wc-processing"},
	}).Return(registerTable(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet,
		"/api/v1/register?month=2025-03&zero_days=1&statuses=wc-completed,wc-processing", nil)

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "2025-03", data["month"])
	mockRegister.AssertExpectations(t)
}

func TestRegisterHandler_Get_NoQueryDefaults(t *testing.T) {
	mockRegister := new(mocks.MockRegisterService)
	h := handler.NewRegisterHandler(mockRegister)

	mockRegister.On("Compute", mock.Anything, domain.RegisterOptions{}).
		Return(registerTable(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/register", nil)

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRegister.AssertExpectations(t)
}

func TestRegisterHandler_Get_InternalError(t *testing.T) {
	mockRegister := new(mocks.MockRegisterService)
	h := handler.NewRegisterHandler(mockRegister)

	mockRegister.On("Compute", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/register", nil)

	h.Get(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
}

func TestRegisterHandler_Months_Success(t *testing.T) {
	mockRegister := new(mocks.MockRegisterService)
	h := handler.NewRegisterHandler(mockRegister)

	mockRegister.On("Months", mock.Anything).
		Return([]domain.MonthOption{{Year: 2025, Month: 3}, {Year: 2025, Month: 2}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/register/months", nil)

	h.Months(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data.([]interface{}), 2)
	mockRegister.AssertExpectations(t)
}
