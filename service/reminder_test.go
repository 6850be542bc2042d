package service

import (
	"testing"
	"time"

	"fintrack/config"
	"fintrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReminderService() *ReminderService {
	return NewReminderService(&config.EmailConfig{})
}

func TestGenerateReminderBody(t *testing.T) {
	s := newTestReminderService()
	bills := []models.Bill{
		{Name: "Rent", Category: models.BillCategoryHousing, Amount: 1200, DueDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)},
		{Name: "Internet", Category: models.BillCategoryUtilities, Amount: 60, DueDate: time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local)},
	}

	body := s.generateReminderBody(bills, 7)
	assert.Contains(t, body, "Rent")
	assert.Contains(t, body, "Internet")
	assert.Contains(t, body, "2024-05-01")
	assert.Contains(t, body, "1260.00") // 合计
	assert.Contains(t, body, "账单到期提醒")
}

func TestSendUpcomingBillsDisabled(t *testing.T) {
	s := newTestReminderService()
	err := s.SendUpcomingBills(nil, 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "未启用")
}

func TestFilterUpcomingUnpaid(t *testing.T) {
	now := time.Date(2024, 4, 15, 0, 0, 0, 0, time.Local)
	bills := []models.Bill{
		{Name: "Due soon", Status: models.StatusUnpaid, DueDate: now.AddDate(0, 0, 3)},
		{Name: "Already paid", Status: models.StatusPaid, DueDate: now.AddDate(0, 0, 3)},
		{Name: "Far away", Status: models.StatusUnpaid, DueDate: now.AddDate(0, 0, 30)},
		{Name: "Overdue", Status: models.StatusUnpaid, DueDate: now.AddDate(0, 0, -2)},
	}

	upcoming := FilterUpcomingUnpaid(bills, now, 7)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "Due soon", upcoming[0].Name)
	assert.Equal(t, "Overdue", upcoming[1].Name) // 已逾期的未付账单也提醒
}
