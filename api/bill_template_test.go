package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func templateRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "description", "amount", "due_day", "category",
		"is_active", "created_at", "updated_at", "deleted_at",
	})
}

func TestBillTemplateHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `bill_templates`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bill-templates", NewBillTemplateHandler().Create)

	body := `{"name":"Rent","amount":1200,"dueDay":1,"category":"Housing"}`
	req := httptest.NewRequest("POST", "/bill-templates", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	// isActive 缺省为 true
	assert.Equal(t, true, data["is_active"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBillTemplateHandler_Create_InvalidDueDay(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bill-templates", NewBillTemplateHandler().Create)

	body := `{"name":"Rent","amount":1200,"dueDay":32,"category":"Housing"}`
	req := httptest.NewRequest("POST", "/bill-templates", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestBillTemplateHandler_Generate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	// 一个启用（到期日 31，4 月应截断到 30），一个停用（应跳过）
	mock.ExpectQuery("SELECT .* FROM `bill_templates`").
		WillReturnRows(templateRows().
			AddRow(1, "Rent", "Monthly rent", 1200.0, 31, "Housing", true, time.Now(), time.Now(), nil).
			AddRow(2, "Gym", "", 50.0, 5, "Entertainment", false, time.Now(), time.Now(), nil))
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))
	mock.ExpectExec("INSERT INTO `bills`").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bill-templates/generate", NewBillTemplateHandler().Generate)

	body := `{"month":4,"year":2026}`
	req := httptest.NewRequest("POST", "/bill-templates/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "生成成功", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["generated"])
	assert.Equal(t, float64(3), data["existing_count"])

	bills := data["bills"].([]interface{})
	require.Len(t, bills, 1)
	bill := bills[0].(map[string]interface{})
	assert.Equal(t, "Rent", bill["name"])
	assert.Equal(t, "UNPAID", bill["status"])
	assert.Contains(t, bill["due_date"], "2026-04-30")
	assert.Equal(t, "Auto-generated from template: Monthly rent", bill["remarks"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBillTemplateHandler_Generate_NoActiveTemplates(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `bill_templates`").
		WillReturnRows(templateRows())
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bill-templates/generate", NewBillTemplateHandler().Generate)

	body := `{"month":4,"year":2026}`
	req := httptest.NewRequest("POST", "/bill-templates/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["generated"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBillTemplateHandler_Update(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `bill_templates`").
		WillReturnRows(templateRows().
			AddRow(1, "Rent", "", 1200.0, 1, "Housing", true, time.Now(), time.Now(), nil))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `bill_templates`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT .* FROM `bill_templates`").
		WillReturnRows(templateRows().
			AddRow(1, "Rent", "", 1350.0, 1, "Housing", true, time.Now(), time.Now(), nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/bill-templates/:id", NewBillTemplateHandler().Update)

	body := `{"amount":1350}`
	req := httptest.NewRequest("PUT", "/bill-templates/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "更新成功", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1350), data["amount"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBillTemplateHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `bill_templates`").
		WillReturnRows(templateRows().
			AddRow(1, "Rent", "", 1200.0, 1, "Housing", true, time.Now(), time.Now(), nil))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `bill_templates`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/bill-templates/:id", NewBillTemplateHandler().Delete)

	req := httptest.NewRequest("DELETE", "/bill-templates/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
