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

// BillTemplateHandler 周期账单模板处理器
type BillTemplateHandler struct{}

func NewBillTemplateHandler() *BillTemplateHandler {
	return &BillTemplateHandler{}
}

type CreateTemplateRequest struct {
	Name        string `json:"name" binding:"required" example:"Rent"`
	Description string `json:"description" example:"Monthly rent"`
	Amount      Amount `json:"amount" binding:"required" example:"1200.00"`
	DueDay      int    `json:"dueDay" binding:"required,min=1,max=31" example:"1"`
	Category    string `json:"category" binding:"required" example:"Housing"`
	IsActive    *bool  `json:"isActive"` // 缺省为 true
}

type UpdateTemplateRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Amount      Amount  `json:"amount"`
	DueDay      int     `json:"dueDay" binding:"omitempty,min=1,max=31"`
	Category    string  `json:"category"`
	IsActive    *bool   `json:"isActive"`
}

type GenerateBillsRequest struct {
	Month int `json:"month" binding:"omitempty,min=1,max=12" example:"5"`
	Year  int `json:"year" example:"2024"`
}

// GenerateBillsResponse 批量生成结果
// ExistingCount 为目标月份生成前已有的账单数，便于客户端提示重复生成
type GenerateBillsResponse struct {
	Month         int           `json:"month"`
	Year          int           `json:"year"`
	Generated     int           `json:"generated"`
	ExistingCount int64         `json:"existing_count"`
	Bills         []models.Bill `json:"bills"`
}

// List 获取模板列表
// @Summary 获取周期账单模板列表
// @Description 获取全部模板，按创建时间倒序
// @Tags 周期模板
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.BillTemplate} "获取成功"
// @Failure 500 {object} Response "查询失败"
// @Router /api/v1/bill-templates [get]
func (h *BillTemplateHandler) List(c *gin.Context) {
	var templates []models.BillTemplate
	if err := database.DB.Order("created_at DESC").Find(&templates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询模板失败"))
		return
	}
	Success(c, templates)
}

// Create 创建模板
// @Summary 创建周期账单模板
// @Description 创建一个周期账单模板，isActive 缺省为 true
// @Tags 周期模板
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTemplateRequest true "模板信息"
// @Success 201 {object} Response{data=models.BillTemplate} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "创建失败"
// @Router /api/v1/bill-templates [post]
func (h *BillTemplateHandler) Create(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	if req.Amount < 0 {
		BadRequest(c, "金额不能为负数")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	tpl := models.BillTemplate{
		Name:        req.Name,
		Description: req.Description,
		Amount:      float64(req.Amount),
		DueDay:      req.DueDay,
		Category:    req.Category,
		IsActive:    isActive,
	}
	if err := database.DB.Create(&tpl).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建模板失败"))
		return
	}
	Created(c, tpl)
}

// Update 更新模板
// @Summary 更新周期账单模板
// @Description 更新指定模板，编辑不影响已生成的历史账单
// @Tags 周期模板
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "模板ID"
// @Param request body UpdateTemplateRequest true "模板信息"
// @Success 200 {object} Response{data=models.BillTemplate} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/bill-templates/{id} [put]
func (h *BillTemplateHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var tpl models.BillTemplate
	if err := database.DB.First(&tpl, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}
	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Amount > 0 {
		updates["amount"] = float64(req.Amount)
	}
	if req.DueDay > 0 {
		updates["due_day"] = req.DueDay
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if err := database.DB.Model(&tpl).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新模板失败"))
		return
	}
	database.DB.First(&tpl, tpl.ID)
	SuccessWithMessage(c, "更新成功", tpl)
}

// Delete 删除模板
// @Summary 删除周期账单模板
// @Description 删除指定模板。已生成账单保留其 template_id 引用（允许悬空），不做级联删除
// @Tags 周期模板
// @Produce json
// @Security BearerAuth
// @Param id path int true "模板ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/bill-templates/{id} [delete]
func (h *BillTemplateHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var tpl models.BillTemplate
	if err := database.DB.First(&tpl, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}
	if err := database.DB.Delete(&tpl).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除模板失败"))
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}

// Generate 按模板批量生成账单
// @Summary 按模板批量生成账单
// @Description 为所有启用的模板生成目标月份的账单，month/year 缺省为下个月。不做去重：重复调用会再生成一批，响应中的 existing_count 供客户端提示
// @Tags 周期模板
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateBillsRequest false "目标月份"
// @Success 200 {object} Response{data=GenerateBillsResponse} "生成成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "生成失败"
// @Router /api/v1/bill-templates/generate [post]
func (h *BillTemplateHandler) Generate(c *gin.Context) {
	var req GenerateBillsRequest
	// 空请求体等同于使用缺省月份
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	month, year := req.Month, req.Year
	if month == 0 || year == 0 {
		now := time.Now()
		month, year = service.NextMonth(int(now.Month()), now.Year())
	}

	var bills []models.Bill
	var existingCount int64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var templates []models.BillTemplate
		if err := tx.Order("created_at DESC").Find(&templates).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Bill{}).
			Where("month = ? AND year = ?", month, year).
			Count(&existingCount).Error; err != nil {
			return err
		}
		bills = service.GenerateBills(templates, month, year)
		if len(bills) == 0 {
			return nil
		}
		return tx.Create(&bills).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成账单失败"))
		return
	}

	SuccessWithMessage(c, "生成成功", GenerateBillsResponse{
		Month:         month,
		Year:          year,
		Generated:     len(bills),
		ExistingCount: existingCount,
		Bills:         bills,
	})
}
