package api

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportHandler_JSON(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .* FROM `bills`").
		WillReturnRows(billRows().
			AddRow(1, nil, "房租", 1200.0, due, nil, "UNPAID", "Housing", "", 4, 2026, time.Now(), time.Now(), nil))
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(incomeRows().
			AddRow(1, "工资", "", 5000.0, 1000.0, 4000.0, due, 4, 2026, "Salary", "", time.Now(), time.Now(), nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/export/json", NewExportHandler().ExportJSON)

	req := httptest.NewRequest("GET", "/export/json?month=4&year=2026", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["bill_count"])
	assert.Equal(t, float64(1), data["income_count"])
	assert.Equal(t, float64(1200), data["total_bills"])
	// 收入合计按净额
	assert.Equal(t, float64(4000), data["total_income"])
	assert.NotEmpty(t, data["exported_at"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_CSV(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	paid := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .* FROM `bills`").
		WillReturnRows(billRows().
			AddRow(1, nil, "房租", 1200.0, due, paid, "PAID", "Housing", "四月", 4, 2026, time.Now(), time.Now(), nil))
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(incomeRows().
			AddRow(2, "工资", "", 5000.0, 1000.0, 4000.0, due, 4, 2026, "Salary", "", time.Now(), time.Now(), nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/export/csv", NewExportHandler().ExportCSV)

	req := httptest.NewRequest("GET", "/export/csv", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	body := w.Body.String()
	// BOM 前缀，便于 Excel 识别 UTF-8
	assert.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"))
	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(body, "\xEF\xBB\xBF")), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "record_type,id,name,amount,tax_deduction,net_amount,category,status,date,paid_date,month,year,remarks", lines[0])
	assert.Contains(t, lines[1], "bill,1,房租,1200.00")
	assert.Contains(t, lines[1], "2026-04-10")
	assert.Contains(t, lines[2], "income,2,工资,5000.00,1000.00,4000.00")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_Excel(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .* FROM `bills`").
		WillReturnRows(billRows().
			AddRow(1, nil, "房租", 1200.0, due, nil, "UNPAID", "Housing", "", 4, 2026, time.Now(), time.Now(), nil))
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(incomeRows())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/export/excel", NewExportHandler().ExportExcel)

	req := httptest.NewRequest("GET", "/export/excel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	// xlsx 是 zip 容器，以 PK 开头
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_InvalidMonth(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/export/csv", NewExportHandler().ExportCSV)

	req := httptest.NewRequest("GET", "/export/csv?month=13&year=2026", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}
