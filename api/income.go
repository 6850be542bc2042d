package api

import (
	"strconv"

	"fintrack/database"
	"fintrack/models"

	"github.com/gin-gonic/gin"
)

// IncomeHandler 收入处理器
type IncomeHandler struct{}

func NewIncomeHandler() *IncomeHandler {
	return &IncomeHandler{}
}

type CreateIncomeRequest struct {
	Source       string `json:"source" binding:"required" example:"TechCorp Inc."`
	Description  string `json:"description"`
	Amount       Amount `json:"amount" binding:"required" example:"5000.00"`
	TaxDeduction Amount `json:"taxDeduction" example:"1000.00"`
	Date         string `json:"date" binding:"required" example:"2024-04-01"`
	Category     string `json:"category" example:"Salary"`
	Remarks      string `json:"remarks"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
}

type UpdateIncomeRequest struct {
	Source       string  `json:"source"`
	Description  *string `json:"description"`
	Amount       *Amount `json:"amount"`
	TaxDeduction *Amount `json:"taxDeduction"`
	Date         string  `json:"date"`
	Category     string  `json:"category"`
	Remarks      *string `json:"remarks"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
}

type IncomeListRequest struct {
	Month int `form:"month"`
	Year  int `form:"year"`
}

// Create 创建收入
// @Summary 创建收入
// @Description 创建一条收入记录。净额 = 总额 - 扣税，写入时计算；month/year 缺省从 date 推导
// @Tags 收入
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateIncomeRequest true "收入信息"
// @Success 201 {object} Response{data=models.Income} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "创建失败"
// @Router /api/v1/income [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		BadRequest(c, "日期格式错误，应为 ISO-8601 (2006-01-02)")
		return
	}
	if req.Amount < 0 || req.TaxDeduction < 0 {
		BadRequest(c, "金额不能为负数")
		return
	}

	income := models.Income{
		Source:       req.Source,
		Description:  req.Description,
		Amount:       float64(req.Amount),
		TaxDeduction: float64(req.TaxDeduction),
		NetAmount:    float64(req.Amount) - float64(req.TaxDeduction),
		Date:         date,
		Category:     req.Category,
		Remarks:      req.Remarks,
		Month:        req.Month,
		Year:         req.Year,
	}
	if income.Month == 0 {
		income.Month = int(date.Month())
	}
	if income.Year == 0 {
		income.Year = date.Year()
	}

	if err := database.DB.Create(&income).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建收入失败"))
		return
	}
	Created(c, income)
}

// List 获取收入列表
// @Summary 获取收入列表
// @Description 查询收入记录，可按月份过滤，按日期倒序。不传 month/year 时返回全部
// @Tags 收入
// @Produce json
// @Security BearerAuth
// @Param month query int false "月份 1-12"
// @Param year query int false "年份"
// @Success 200 {object} Response{data=[]models.Income} "获取成功"
// @Failure 500 {object} Response "查询失败"
// @Router /api/v1/income [get]
func (h *IncomeHandler) List(c *gin.Context) {
	var req IncomeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	query := database.DB.Model(&models.Income{})
	// 月份过滤需要同时给出 month 和 year
	if req.Month > 0 && req.Year > 0 {
		query = query.Where("month = ? AND year = ?", req.Month, req.Year)
	}

	var incomes []models.Income
	if err := query.Order("date DESC").Find(&incomes).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询收入失败"))
		return
	}
	Success(c, incomes)
}

// Update 更新收入
// @Summary 更新收入
// @Description 更新指定收入记录，净额按最终的总额与扣税重算；改动 date 且未显式传 month/year 时重新推导
// @Tags 收入
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "收入ID"
// @Param request body UpdateIncomeRequest true "收入信息"
// @Success 200 {object} Response{data=models.Income} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/income/{id} [put]
func (h *IncomeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var income models.Income
	if err := database.DB.First(&income, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}
	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Source != "" {
		updates["source"] = req.Source
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Remarks != nil {
		updates["remarks"] = *req.Remarks
	}

	// 净额按最终值重算，保持 net = amount - tax 不变式
	amount := income.Amount
	if req.Amount != nil {
		if *req.Amount < 0 {
			BadRequest(c, "金额不能为负数")
			return
		}
		amount = float64(*req.Amount)
		updates["amount"] = amount
	}
	tax := income.TaxDeduction
	if req.TaxDeduction != nil {
		if *req.TaxDeduction < 0 {
			BadRequest(c, "金额不能为负数")
			return
		}
		tax = float64(*req.TaxDeduction)
		updates["tax_deduction"] = tax
	}
	if req.Amount != nil || req.TaxDeduction != nil {
		updates["net_amount"] = amount - tax
	}

	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			BadRequest(c, "日期格式错误，应为 ISO-8601 (2006-01-02)")
			return
		}
		updates["date"] = date
		// month/year 未显式给出时跟随新日期
		if req.Month == 0 {
			updates["month"] = int(date.Month())
		}
		if req.Year == 0 {
			updates["year"] = date.Year()
		}
	}
	if req.Month > 0 {
		updates["month"] = req.Month
	}
	if req.Year > 0 {
		updates["year"] = req.Year
	}

	if err := database.DB.Model(&income).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新收入失败"))
		return
	}
	database.DB.First(&income, income.ID)
	SuccessWithMessage(c, "更新成功", income)
}

// Delete 删除收入
// @Summary 删除收入
// @Description 删除指定的收入记录（软删除）。兼容两种路由：路径参数 /income/{id} 或查询参数 /income?id=
// @Tags 收入
// @Produce json
// @Security BearerAuth
// @Param id path int false "收入ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "缺少ID"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/income/{id} [delete]
func (h *IncomeHandler) Delete(c *gin.Context) {
	idStr := c.Param("id")
	if idStr == "" {
		idStr = c.Query("id")
	}
	if idStr == "" {
		BadRequest(c, "缺少收入ID")
		return
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var income models.Income
	if err := database.DB.First(&income, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}
	if err := database.DB.Delete(&income).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除收入失败"))
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
