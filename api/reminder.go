package api

import (
	"time"

	"fintrack/config"
	"fintrack/database"
	"fintrack/models"
	"fintrack/service"

	"github.com/gin-gonic/gin"
)

// ReminderHandler 账单提醒处理器
type ReminderHandler struct{}

func NewReminderHandler() *ReminderHandler {
	return &ReminderHandler{}
}

type UpcomingBillsRequest struct {
	Days int `json:"days" example:"7"` // 提前提醒天数，默认 7
}

// SendUpcomingBills 发送未付账单提醒邮件
// @Summary 发送账单到期提醒
// @Description 筛选未来 N 天内到期（含已逾期）的未付账单并发送提醒邮件
// @Tags 提醒
// @Accept json
// @Produce json
// @Param request body UpcomingBillsRequest false "提醒参数"
// @Success 200 {object} Response "发送成功"
// @Failure 500 {object} Response "发送失败"
// @Router /api/v1/reminders/upcoming-bills [post]
func (h *ReminderHandler) SendUpcomingBills(c *gin.Context) {
	var req UpcomingBillsRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	if req.Days <= 0 {
		req.Days = 7
	}

	var bills []models.Bill
	if err := database.DB.Where("status != ?", models.StatusPaid).
		Order("due_date ASC").Find(&bills).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询账单失败"))
		return
	}

	upcoming := service.FilterUpcomingUnpaid(bills, time.Now(), req.Days)
	if len(upcoming) == 0 {
		SuccessWithMessage(c, "没有即将到期的未付账单", gin.H{"count": 0})
		return
	}

	reminder := service.NewReminderService(&config.GetConfig().Email)
	if err := reminder.SendUpcomingBills(upcoming, req.Days); err != nil {
		InternalError(c, SafeErrorMessage(err, "发送提醒邮件失败"))
		return
	}

	SuccessWithMessage(c, "提醒邮件发送成功", gin.H{
		"count": len(upcoming),
		"days":  req.Days,
	})
}
