package api

import (
	"time"

	"fintrack/database"
	"fintrack/models"
	"fintrack/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler 统计分析处理器
type AnalyticsHandler struct{}

func NewAnalyticsHandler() *AnalyticsHandler {
	return &AnalyticsHandler{}
}

type analyticsQuery struct {
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  int `form:"year"`
}

// OverviewResponse 月度汇总
type OverviewResponse struct {
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	TotalBills    float64 `json:"total_bills"`
	TotalIncome   float64 `json:"total_income"`
	PaidAmount    float64 `json:"paid_amount"`
	UnpaidAmount  float64 `json:"unpaid_amount"`
	PaidCount     int     `json:"paid_count"`
	UnpaidCount   int     `json:"unpaid_count"`
	NetAmount     float64 `json:"net_amount"`     // 收入净额 - 账单总额
	CoverageRatio float64 `json:"coverage_ratio"` // 收入 / 账单 × 100，账单为 0 时为 0
}

// TrendsResponse 环比趋势
type TrendsResponse struct {
	Month               int     `json:"month"`
	Year                int     `json:"year"`
	TotalBills          float64 `json:"total_bills"`
	TotalIncome         float64 `json:"total_income"`
	PreviousTotalBills  float64 `json:"previous_total_bills"`
	PreviousTotalIncome float64 `json:"previous_total_income"`
	BillsChange         float64 `json:"bills_change"`  // 百分比，上月为 0 时为 0
	IncomeChange        float64 `json:"income_change"` // 百分比，上月为 0 时为 0
}

// CategoriesResponse 类别占比
type CategoriesResponse struct {
	Month  int                     `json:"month"`
	Year   int                     `json:"year"`
	Bills  []service.CategoryTotal `json:"bills"`
	Income []service.CategoryTotal `json:"income"`
}

func (h *AnalyticsHandler) parseMonthYear(c *gin.Context) (int, int, bool) {
	var q analyticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return 0, 0, false
	}
	now := time.Now()
	if q.Month == 0 {
		q.Month = int(now.Month())
	}
	if q.Year == 0 {
		q.Year = now.Year()
	}
	return q.Month, q.Year, true
}

func fetchMonthBills(month, year int) ([]models.Bill, error) {
	var bills []models.Bill
	err := database.DB.
		Where("month = ? AND year = ?", month, year).
		Order("due_date ASC").
		Find(&bills).Error
	return bills, err
}

func fetchMonthIncomes(month, year int) ([]models.Income, error) {
	var incomes []models.Income
	err := database.DB.
		Where("month = ? AND year = ?", month, year).
		Order("date DESC").
		Find(&incomes).Error
	return incomes, err
}

// Overview 月度汇总
// @Summary 获取月度汇总
// @Description 统计指定月份（缺省当前月）的账单总额、收入净额、已付/未付划分、结余与收入覆盖率
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Param month query int false "月份 1-12，缺省当前月"
// @Param year query int false "年份，缺省当前年"
// @Success 200 {object} Response{data=OverviewResponse} "获取成功"
// @Failure 500 {object} Response "查询失败"
// @Router /api/v1/analytics/overview [get]
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	month, year, ok := h.parseMonthYear(c)
	if !ok {
		return
	}

	bills, err := fetchMonthBills(month, year)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询账单失败"))
		return
	}
	incomes, err := fetchMonthIncomes(month, year)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询收入失败"))
		return
	}

	totalBills := service.TotalBillAmount(bills)
	totalIncome := service.TotalNetIncome(incomes)
	paidAmount, unpaidAmount, paidCount, unpaidCount := service.PartitionBills(bills)

	Success(c, OverviewResponse{
		Month:         month,
		Year:          year,
		TotalBills:    totalBills,
		TotalIncome:   totalIncome,
		PaidAmount:    paidAmount,
		UnpaidAmount:  unpaidAmount,
		PaidCount:     paidCount,
		UnpaidCount:   unpaidCount,
		NetAmount:     totalIncome - totalBills,
		CoverageRatio: service.CoverageRatio(totalIncome, totalBills),
	})
}

// Trends 环比趋势
// @Summary 获取环比趋势
// @Description 对比指定月份与上个月的账单总额和收入净额，返回变化百分比；上月为 0 时约定变化率为 0
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Param month query int false "月份 1-12，缺省当前月"
// @Param year query int false "年份，缺省当前年"
// @Success 200 {object} Response{data=TrendsResponse} "获取成功"
// @Failure 500 {object} Response "查询失败"
// @Router /api/v1/analytics/trends [get]
func (h *AnalyticsHandler) Trends(c *gin.Context) {
	month, year, ok := h.parseMonthYear(c)
	if !ok {
		return
	}
	prevMonth, prevYear := service.PreviousMonth(month, year)

	bills, err := fetchMonthBills(month, year)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询账单失败"))
		return
	}
	prevBills, err := fetchMonthBills(prevMonth, prevYear)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询账单失败"))
		return
	}
	incomes, err := fetchMonthIncomes(month, year)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询收入失败"))
		return
	}
	prevIncomes, err := fetchMonthIncomes(prevMonth, prevYear)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询收入失败"))
		return
	}

	totalBills := service.TotalBillAmount(bills)
	prevTotalBills := service.TotalBillAmount(prevBills)
	totalIncome := service.TotalNetIncome(incomes)
	prevTotalIncome := service.TotalNetIncome(prevIncomes)

	Success(c, TrendsResponse{
		Month:               month,
		Year:                year,
		TotalBills:          totalBills,
		TotalIncome:         totalIncome,
		PreviousTotalBills:  prevTotalBills,
		PreviousTotalIncome: prevTotalIncome,
		BillsChange:         service.PercentChange(totalBills, prevTotalBills),
		IncomeChange:        service.PercentChange(totalIncome, prevTotalIncome),
	})
}

// Categories 类别占比
// @Summary 获取类别占比
// @Description 指定月份的账单/收入按类别分组汇总，附带占比百分比
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Param month query int false "月份 1-12，缺省当前月"
// @Param year query int false "年份，缺省当前年"
// @Success 200 {object} Response{data=CategoriesResponse} "获取成功"
// @Failure 500 {object} Response "查询失败"
// @Router /api/v1/analytics/categories [get]
func (h *AnalyticsHandler) Categories(c *gin.Context) {
	month, year, ok := h.parseMonthYear(c)
	if !ok {
		return
	}

	bills, err := fetchMonthBills(month, year)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询账单失败"))
		return
	}
	incomes, err := fetchMonthIncomes(month, year)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询收入失败"))
		return
	}

	Success(c, CategoriesResponse{
		Month:  month,
		Year:   year,
		Bills:  service.BillCategoryBreakdown(bills),
		Income: service.IncomeCategoryBreakdown(incomes),
	})
}
