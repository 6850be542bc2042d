package api

import (
	"strconv"
	"time"

	"fintrack/database"
	"fintrack/models"
	"fintrack/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BillHandler 账单处理器
type BillHandler struct{}

func NewBillHandler() *BillHandler {
	return &BillHandler{}
}

type CreateBillRequest struct {
	Name      string `json:"name" binding:"required" example:"Electricity Bill"`
	Amount    Amount `json:"amount" binding:"required" example:"150.00"`
	DueDate   string `json:"dueDate" binding:"required" example:"2024-04-15"`
	Status    string `json:"status" example:"UNPAID"`
	Category  string `json:"category" binding:"required" example:"Utilities"`
	Remarks   string `json:"remarks"`
	Month     int    `json:"month" example:"4"`
	Year      int    `json:"year" example:"2024"`
	Recurring bool   `json:"recurring"` // 勾选后同步创建/更新周期模板
}

type UpdateBillRequest struct {
	Name      string  `json:"name"`
	Amount    Amount  `json:"amount"`
	DueDate   string  `json:"dueDate"`
	Status    string  `json:"status"`
	Category  string  `json:"category"`
	Remarks   *string `json:"remarks"`
	PaidDate  *string `json:"paidDate"`
	Month     int     `json:"month"`
	Year      int     `json:"year"`
	Recurring bool    `json:"recurring"`
}

type BillListRequest struct {
	Month int `form:"month" example:"4"`
	Year  int `form:"year" example:"2024"`
}

// BillWithTemplate 账单创建/更新响应，Recurring 时附带同步处理的模板
type BillWithTemplate struct {
	models.Bill
	Template *models.BillTemplate `json:"template,omitempty"`
}

// Create 创建账单
// @Summary 创建账单
// @Description 创建一条账单记录。month/year 缺省为当前月份；status 缺省为 UNPAID；recurring=true 时按(名称,金额,到期日,类别)对账并同步创建/更新周期模板
// @Tags 账单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBillRequest true "账单信息"
// @Success 201 {object} Response{data=BillWithTemplate} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "创建失败"
// @Router /api/v1/bills [post]
func (h *BillHandler) Create(c *gin.Context) {
	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		BadRequest(c, "日期格式错误，应为 ISO-8601 (2006-01-02)")
		return
	}
	if req.Amount < 0 {
		BadRequest(c, "金额不能为负数")
		return
	}
	status := req.Status
	if status == "" {
		status = models.StatusUnpaid
	}
	if !models.IsValidBillStatus(status) {
		BadRequest(c, "无效的账单状态: "+status)
		return
	}

	now := time.Now()
	bill := models.Bill{
		Name:     req.Name,
		Amount:   float64(req.Amount),
		DueDate:  dueDate,
		Status:   status,
		Category: req.Category,
		Remarks:  req.Remarks,
		Month:    req.Month,
		Year:     req.Year,
	}
	// month/year 缺省取当前月份
	if bill.Month == 0 {
		bill.Month = int(now.Month())
	}
	if bill.Year == 0 {
		bill.Year = now.Year()
	}
	if status == models.StatusPaid {
		bill.PaidDate = &now
	}

	var template *models.BillTemplate
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if req.Recurring {
			tpl, err := reconcileTemplateTx(tx, service.TemplateCandidate{
				Name:        req.Name,
				Description: req.Remarks,
				Amount:      float64(req.Amount),
				DueDay:      dueDate.Day(),
				Category:    req.Category,
			})
			if err != nil {
				return err
			}
			template = tpl
			bill.TemplateID = &tpl.ID
		}
		return tx.Create(&bill).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "创建账单失败"))
		return
	}

	Created(c, BillWithTemplate{Bill: bill, Template: template})
}

// List 获取账单列表
// @Summary 获取账单列表
// @Description 按月份查询账单，缺省为当前月份，按到期日升序。响应中的 status 为读取时投影：未付且已过期的账单显示为 OVERDUE
// @Tags 账单
// @Produce json
// @Security BearerAuth
// @Param month query int false "月份 1-12，缺省当前月"
// @Param year query int false "年份，缺省当前年"
// @Success 200 {object} Response{data=[]models.Bill} "获取成功"
// @Failure 500 {object} Response "查询失败"
// @Router /api/v1/bills [get]
func (h *BillHandler) List(c *gin.Context) {
	var req BillListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	now := time.Now()
	if req.Month == 0 {
		req.Month = int(now.Month())
	}
	if req.Year == 0 {
		req.Year = now.Year()
	}

	var bills []models.Bill
	if err := database.DB.
		Where("month = ? AND year = ?", req.Month, req.Year).
		Order("due_date ASC").
		Find(&bills).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询账单失败"))
		return
	}

	// 过期投影只影响响应，不回写存储
	for i := range bills {
		bills[i].Status = service.EffectiveStatus(&bills[i], now)
	}
	Success(c, bills)
}

// Get 获取单条账单
// @Summary 获取单条账单
// @Description 根据ID获取账单详情，status 为读取时投影
// @Tags 账单
// @Produce json
// @Security BearerAuth
// @Param id path int true "账单ID"
// @Success 200 {object} Response{data=models.Bill} "获取成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/bills/{id} [get]
func (h *BillHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var bill models.Bill
	if err := database.DB.First(&bill, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}
	bill.Status = service.EffectiveStatus(&bill, time.Now())
	Success(c, bill)
}

// Update 更新账单
// @Summary 更新账单
// @Description 更新指定账单。status=PAID 且未提供 paidDate 时自动记为当前时间；status=UNPAID 且 paidDate 为空时清除已存的支付时间；recurring=true 时同步对账周期模板
// @Tags 账单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "账单ID"
// @Param request body UpdateBillRequest true "账单信息"
// @Success 200 {object} Response{data=BillWithTemplate} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Failure 500 {object} Response "更新失败"
// @Router /api/v1/bills/{id} [put]
func (h *BillHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var bill models.Bill
	if err := database.DB.First(&bill, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}
	var req UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Amount > 0 {
		updates["amount"] = float64(req.Amount)
	}
	var dueDate time.Time
	if req.DueDate != "" {
		dueDate, err = parseDate(req.DueDate)
		if err != nil {
			BadRequest(c, "日期格式错误，应为 ISO-8601 (2006-01-02)")
			return
		}
		updates["due_date"] = dueDate
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Remarks != nil {
		updates["remarks"] = *req.Remarks
	}
	if req.Month > 0 {
		updates["month"] = req.Month
	}
	if req.Year > 0 {
		updates["year"] = req.Year
	}
	if req.Status != "" {
		if !models.IsValidBillStatus(req.Status) {
			BadRequest(c, "无效的账单状态: "+req.Status)
			return
		}
		updates["status"] = req.Status
	}

	// 支付时间：显式传入优先；标记已付且未传时记为当前时间；
	// 标记未付且未传/传空时清除
	switch {
	case req.PaidDate != nil && *req.PaidDate != "":
		paidAt, err := parseDate(*req.PaidDate)
		if err != nil {
			BadRequest(c, "支付时间格式错误，应为 ISO-8601 (2006-01-02)")
			return
		}
		updates["paid_date"] = paidAt
	case req.Status == models.StatusPaid && bill.PaidDate == nil:
		updates["paid_date"] = time.Now()
	case req.Status == models.StatusUnpaid:
		updates["paid_date"] = nil
	}

	var template *models.BillTemplate
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if req.Recurring {
			name := bill.Name
			if req.Name != "" {
				name = req.Name
			}
			amount := bill.Amount
			if req.Amount > 0 {
				amount = float64(req.Amount)
			}
			category := bill.Category
			if req.Category != "" {
				category = req.Category
			}
			dueDay := bill.DueDate.Day()
			if req.DueDate != "" {
				dueDay = dueDate.Day()
			}
			description := bill.Remarks
			if req.Remarks != nil {
				description = *req.Remarks
			}
			tpl, err := reconcileTemplateTx(tx, service.TemplateCandidate{
				Name:        name,
				Description: description,
				Amount:      amount,
				DueDay:      dueDay,
				Category:    category,
			})
			if err != nil {
				return err
			}
			template = tpl
			updates["template_id"] = tpl.ID
		}
		return tx.Model(&bill).Updates(updates).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "更新账单失败"))
		return
	}

	database.DB.First(&bill, bill.ID)
	SuccessWithMessage(c, "更新成功", BillWithTemplate{Bill: bill, Template: template})
}

// Delete 删除账单
// @Summary 删除账单
// @Description 删除指定的账单记录（软删除）
// @Tags 账单
// @Produce json
// @Security BearerAuth
// @Param id path int true "账单ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/bills/{id} [delete]
func (h *BillHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var bill models.Bill
	if err := database.DB.First(&bill, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}
	if err := database.DB.Delete(&bill).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除账单失败"))
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}

// reconcileTemplateTx 按结构匹配对账周期模板并落库
// 命中既有模板则更新（顺带重新启用），否则新建；两个调用点
//（创建账单、编辑账单）共用。
func reconcileTemplateTx(tx *gorm.DB, candidate service.TemplateCandidate) (*models.BillTemplate, error) {
	var existing []models.BillTemplate
	if err := tx.Order("created_at DESC").Find(&existing).Error; err != nil {
		return nil, err
	}

	result := service.ReconcileTemplate(candidate, existing)
	if result.Action == service.ReconcileUpdate {
		tpl := result.Target
		if err := tx.Model(tpl).Updates(map[string]interface{}{
			"description": candidate.Description,
			"is_active":   true,
		}).Error; err != nil {
			return nil, err
		}
		tpl.Description = candidate.Description
		tpl.IsActive = true
		return tpl, nil
	}

	tpl := models.BillTemplate{
		Name:        candidate.Name,
		Description: candidate.Description,
		Amount:      candidate.Amount,
		DueDay:      candidate.DueDay,
		Category:    candidate.Category,
		IsActive:    true,
	}
	if err := tx.Create(&tpl).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}
