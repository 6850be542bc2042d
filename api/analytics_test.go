package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsHandler_Overview(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	paid := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .* FROM `bills`").
		WillReturnRows(billRows().
			AddRow(1, nil, "房租", 100.0, due, paid, "PAID", "Housing", "", 4, 2026, time.Now(), time.Now(), nil).
			AddRow(2, nil, "电费", 50.0, due, nil, "UNPAID", "Utilities", "", 4, 2026, time.Now(), time.Now(), nil))
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(incomeRows().
			AddRow(1, "工资", "", 500.0, 100.0, 400.0, due, 4, 2026, "Salary", "", time.Now(), time.Now(), nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/analytics/overview", NewAnalyticsHandler().Overview)

	req := httptest.NewRequest("GET", "/analytics/overview?month=4&year=2026", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(150), data["total_bills"])
	assert.Equal(t, float64(400), data["total_income"])
	assert.Equal(t, float64(100), data["paid_amount"])
	assert.Equal(t, float64(50), data["unpaid_amount"])
	assert.Equal(t, float64(1), data["paid_count"])
	assert.Equal(t, float64(1), data["unpaid_count"])
	assert.Equal(t, float64(250), data["net_amount"])
	assert.InDelta(t, 266.67, data["coverage_ratio"].(float64), 0.01)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsHandler_Trends(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	prevDue := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	// 查询顺序：本月账单、上月账单、本月收入、上月收入
	mock.ExpectQuery("SELECT .* FROM `bills`").
		WillReturnRows(billRows().
			AddRow(1, nil, "房租", 200.0, due, nil, "UNPAID", "Housing", "", 4, 2026, time.Now(), time.Now(), nil))
	mock.ExpectQuery("SELECT .* FROM `bills`").
		WillReturnRows(billRows().
			AddRow(2, nil, "房租", 100.0, prevDue, nil, "UNPAID", "Housing", "", 3, 2026, time.Now(), time.Now(), nil))
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(incomeRows().
			AddRow(1, "工资", "", 300.0, 0.0, 300.0, due, 4, 2026, "Salary", "", time.Now(), time.Now(), nil))
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(incomeRows())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/analytics/trends", NewAnalyticsHandler().Trends)

	req := httptest.NewRequest("GET", "/analytics/trends?month=4&year=2026", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(200), data["total_bills"])
	assert.Equal(t, float64(100), data["previous_total_bills"])
	assert.Equal(t, float64(100), data["bills_change"])
	// 上月收入为 0 时变化率约定为 0
	assert.Equal(t, float64(0), data["income_change"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsHandler_Categories(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .* FROM `bills`").
		WillReturnRows(billRows().
			AddRow(1, nil, "房租", 75.0, due, nil, "UNPAID", "Housing", "", 4, 2026, time.Now(), time.Now(), nil).
			AddRow(2, nil, "电费", 25.0, due, nil, "UNPAID", "Utilities", "", 4, 2026, time.Now(), time.Now(), nil))
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(incomeRows())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/analytics/categories", NewAnalyticsHandler().Categories)

	req := httptest.NewRequest("GET", "/analytics/categories?month=4&year=2026", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	bills := data["bills"].([]interface{})
	require.Len(t, bills, 2)
	housing := bills[0].(map[string]interface{})
	assert.Equal(t, "Housing", housing["category"])
	assert.Equal(t, float64(75), housing["amount"])
	assert.Equal(t, float64(75), housing["percentage"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsHandler_InvalidMonth(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/analytics/overview", NewAnalyticsHandler().Overview)

	req := httptest.NewRequest("GET", "/analytics/overview?month=13&year=2026", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}
