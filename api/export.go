package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"fintrack/database"
	"fintrack/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

type exportQuery struct {
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  int `form:"year"`
}

// fetchExportData 查询导出数据，month/year 都给出时按月过滤，否则全量
func fetchExportData(q exportQuery) ([]models.Bill, []models.Income, error) {
	billQuery := database.DB.Model(&models.Bill{})
	incomeQuery := database.DB.Model(&models.Income{})
	if q.Month > 0 && q.Year > 0 {
		billQuery = billQuery.Where("month = ? AND year = ?", q.Month, q.Year)
		incomeQuery = incomeQuery.Where("month = ? AND year = ?", q.Month, q.Year)
	}

	var bills []models.Bill
	if err := billQuery.Order("due_date ASC").Find(&bills).Error; err != nil {
		return nil, nil, err
	}
	var incomes []models.Income
	if err := incomeQuery.Order("date DESC").Find(&incomes).Error; err != nil {
		return nil, nil, err
	}
	return bills, incomes, nil
}

// ExportJSON 导出为 JSON
// @Summary 导出为 JSON
// @Description 导出账单与收入记录（按实体嵌套的完整结构），可选按月过滤
// @Tags 导出
// @Produce json
// @Security BearerAuth
// @Param month query int false "月份 1-12"
// @Param year query int false "年份"
// @Success 200 {object} Response "导出成功"
// @Failure 500 {object} Response "查询失败"
// @Router /api/v1/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	var q exportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	bills, incomes, err := fetchExportData(q)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	var totalBills, totalIncome float64
	for _, b := range bills {
		totalBills += b.Amount
	}
	for _, in := range incomes {
		totalIncome += in.NetAmount
	}

	Success(c, gin.H{
		"exported_at":  time.Now().Format(time.RFC3339),
		"bill_count":   len(bills),
		"income_count": len(incomes),
		"total_bills":  totalBills,
		"total_income": totalIncome,
		"bills":        bills,
		"income":       incomes,
	})
}

// ExportCSV 导出为 CSV
// @Summary 导出为 CSV
// @Description 导出账单与收入记录为扁平表格：每条记录一行，record_type 区分实体，两类记录列不完全相同
// @Tags 导出
// @Produce text/csv
// @Security BearerAuth
// @Param month query int false "月份 1-12"
// @Param year query int false "年份"
// @Success 200 {file} file "CSV 文件"
// @Failure 500 {object} Response "查询失败"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	var q exportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	bills, incomes, err := fetchExportData(q)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 正确识别编码
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{
		"record_type", "id", "name", "amount", "tax_deduction", "net_amount",
		"category", "status", "date", "paid_date", "month", "year", "remarks",
	}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	for _, b := range bills {
		paidDate := ""
		if b.PaidDate != nil {
			paidDate = b.PaidDate.Format("2006-01-02")
		}
		row := []string{
			"bill",
			fmt.Sprintf("%d", b.ID),
			b.Name,
			fmt.Sprintf("%.2f", b.Amount),
			"", // 账单无扣税
			"", // 账单无净额
			b.Category,
			b.Status,
			b.DueDate.Format("2006-01-02"),
			paidDate,
			fmt.Sprintf("%d", b.Month),
			fmt.Sprintf("%d", b.Year),
			b.Remarks,
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}
	for _, in := range incomes {
		row := []string{
			"income",
			fmt.Sprintf("%d", in.ID),
			in.Source,
			fmt.Sprintf("%.2f", in.Amount),
			fmt.Sprintf("%.2f", in.TaxDeduction),
			fmt.Sprintf("%.2f", in.NetAmount),
			in.Category,
			"", // 收入无状态
			in.Date.Format("2006-01-02"),
			"",
			fmt.Sprintf("%d", in.Month),
			fmt.Sprintf("%d", in.Year),
			in.Remarks,
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("fintrack_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出为 Excel
// @Summary 导出为 Excel
// @Description 导出账单与收入记录为 xlsx 工作簿，账单与收入各一个工作表，末行为合计
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param month query int false "月份 1-12"
// @Param year query int false "年份"
// @Success 200 {file} file "Excel 文件"
// @Failure 500 {object} Response "查询失败"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	var q exportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	bills, incomes, err := fetchExportData(q)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 账单工作表
	billSheet := "Bills"
	f.SetSheetName("Sheet1", billSheet)
	f.SetColWidth(billSheet, "A", "A", 8)
	f.SetColWidth(billSheet, "B", "B", 25)
	f.SetColWidth(billSheet, "C", "C", 12)
	f.SetColWidth(billSheet, "D", "D", 16)
	f.SetColWidth(billSheet, "E", "E", 12)
	f.SetColWidth(billSheet, "F", "F", 14)
	f.SetColWidth(billSheet, "G", "G", 14)
	f.SetColWidth(billSheet, "H", "H", 30)

	billHeaders := []string{"ID", "账单", "金额", "类别", "状态", "到期日", "支付日", "备注"}
	for i, header := range billHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(billSheet, cell, header)
		f.SetCellStyle(billSheet, cell, cell, headerStyle)
	}

	var totalBills float64
	for i, b := range bills {
		row := i + 2
		paidDate := ""
		if b.PaidDate != nil {
			paidDate = b.PaidDate.Format("2006-01-02")
		}
		f.SetCellValue(billSheet, fmt.Sprintf("A%d", row), b.ID)
		f.SetCellValue(billSheet, fmt.Sprintf("B%d", row), b.Name)
		f.SetCellValue(billSheet, fmt.Sprintf("C%d", row), b.Amount)
		f.SetCellValue(billSheet, fmt.Sprintf("D%d", row), b.Category)
		f.SetCellValue(billSheet, fmt.Sprintf("E%d", row), b.Status)
		f.SetCellValue(billSheet, fmt.Sprintf("F%d", row), b.DueDate.Format("2006-01-02"))
		f.SetCellValue(billSheet, fmt.Sprintf("G%d", row), paidDate)
		f.SetCellValue(billSheet, fmt.Sprintf("H%d", row), b.Remarks)
		f.SetCellStyle(billSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), dataStyle)
		totalBills += b.Amount
	}

	billSummaryRow := len(bills) + 2
	f.SetCellValue(billSheet, fmt.Sprintf("A%d", billSummaryRow), "合计")
	f.MergeCell(billSheet, fmt.Sprintf("A%d", billSummaryRow), fmt.Sprintf("B%d", billSummaryRow))
	f.SetCellValue(billSheet, fmt.Sprintf("C%d", billSummaryRow), totalBills)
	f.SetCellValue(billSheet, fmt.Sprintf("D%d", billSummaryRow), fmt.Sprintf("共 %d 条记录", len(bills)))
	f.MergeCell(billSheet, fmt.Sprintf("D%d", billSummaryRow), fmt.Sprintf("H%d", billSummaryRow))
	f.SetCellStyle(billSheet, fmt.Sprintf("A%d", billSummaryRow), fmt.Sprintf("H%d", billSummaryRow), summaryStyle)

	// 收入工作表
	incomeSheet := "Income"
	f.NewSheet(incomeSheet)
	f.SetColWidth(incomeSheet, "A", "A", 8)
	f.SetColWidth(incomeSheet, "B", "B", 25)
	f.SetColWidth(incomeSheet, "C", "E", 12)
	f.SetColWidth(incomeSheet, "F", "F", 16)
	f.SetColWidth(incomeSheet, "G", "G", 14)
	f.SetColWidth(incomeSheet, "H", "H", 30)

	incomeHeaders := []string{"ID", "来源", "总额", "扣税", "净额", "类别", "日期", "备注"}
	for i, header := range incomeHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(incomeSheet, cell, header)
		f.SetCellStyle(incomeSheet, cell, cell, headerStyle)
	}

	var totalIncome float64
	for i, in := range incomes {
		row := i + 2
		f.SetCellValue(incomeSheet, fmt.Sprintf("A%d", row), in.ID)
		f.SetCellValue(incomeSheet, fmt.Sprintf("B%d", row), in.Source)
		f.SetCellValue(incomeSheet, fmt.Sprintf("C%d", row), in.Amount)
		f.SetCellValue(incomeSheet, fmt.Sprintf("D%d", row), in.TaxDeduction)
		f.SetCellValue(incomeSheet, fmt.Sprintf("E%d", row), in.NetAmount)
		f.SetCellValue(incomeSheet, fmt.Sprintf("F%d", row), in.Category)
		f.SetCellValue(incomeSheet, fmt.Sprintf("G%d", row), in.Date.Format("2006-01-02"))
		f.SetCellValue(incomeSheet, fmt.Sprintf("H%d", row), in.Remarks)
		f.SetCellStyle(incomeSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), dataStyle)
		totalIncome += in.NetAmount
	}

	incomeSummaryRow := len(incomes) + 2
	f.SetCellValue(incomeSheet, fmt.Sprintf("A%d", incomeSummaryRow), "合计")
	f.MergeCell(incomeSheet, fmt.Sprintf("A%d", incomeSummaryRow), fmt.Sprintf("B%d", incomeSummaryRow))
	f.SetCellValue(incomeSheet, fmt.Sprintf("E%d", incomeSummaryRow), totalIncome)
	f.SetCellValue(incomeSheet, fmt.Sprintf("F%d", incomeSummaryRow), fmt.Sprintf("共 %d 条记录", len(incomes)))
	f.MergeCell(incomeSheet, fmt.Sprintf("F%d", incomeSummaryRow), fmt.Sprintf("H%d", incomeSummaryRow))
	f.SetCellStyle(incomeSheet, fmt.Sprintf("A%d", incomeSummaryRow), fmt.Sprintf("H%d", incomeSummaryRow), summaryStyle)

	filename := fmt.Sprintf("fintrack_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
}
