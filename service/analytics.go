package service

import "fintrack/models"

// 月度统计辅助函数：对内存中的账单/收入列表做单遍聚合，
// 全部为无状态纯函数，数据由调用方按月查询后传入。

// TotalBillAmount 账单总额
func TotalBillAmount(bills []models.Bill) float64 {
	var total float64
	for _, b := range bills {
		total += b.Amount
	}
	return total
}

// PartitionBills 按支付状态划分账单金额与条数
// 只有 PAID 计入已付，PARTIAL 视同未结清
func PartitionBills(bills []models.Bill) (paidAmount, unpaidAmount float64, paidCount, unpaidCount int) {
	for _, b := range bills {
		if b.Status == models.StatusPaid {
			paidAmount += b.Amount
			paidCount++
		} else {
			unpaidAmount += b.Amount
			unpaidCount++
		}
	}
	return
}

// TotalNetIncome 收入净额总和（净额在写入时已算好）
func TotalNetIncome(incomes []models.Income) float64 {
	var total float64
	for _, in := range incomes {
		total += in.NetAmount
	}
	return total
}

// CategoryTotal 单个类别的汇总
type CategoryTotal struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// BillCategoryBreakdown 账单按类别分组汇总，附带占比
// 结果按类别首次出现的顺序排列
func BillCategoryBreakdown(bills []models.Bill) []CategoryTotal {
	total := TotalBillAmount(bills)
	var order []string
	sums := make(map[string]float64)
	for _, b := range bills {
		if _, ok := sums[b.Category]; !ok {
			order = append(order, b.Category)
		}
		sums[b.Category] += b.Amount
	}
	result := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		result = append(result, CategoryTotal{
			Category:   cat,
			Amount:     sums[cat],
			Percentage: Percentage(sums[cat], total),
		})
	}
	return result
}

// IncomeCategoryBreakdown 收入按类别分组汇总（按净额）
func IncomeCategoryBreakdown(incomes []models.Income) []CategoryTotal {
	total := TotalNetIncome(incomes)
	var order []string
	sums := make(map[string]float64)
	for _, in := range incomes {
		if _, ok := sums[in.Category]; !ok {
			order = append(order, in.Category)
		}
		sums[in.Category] += in.NetAmount
	}
	result := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		result = append(result, CategoryTotal{
			Category:   cat,
			Amount:     sums[cat],
			Percentage: Percentage(sums[cat], total),
		})
	}
	return result
}

// PercentChange 环比变化率
// previous 为 0 时约定返回 0，不产生 NaN/Inf
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// Percentage 占比
// total 为 0 时约定返回 0，不产生 NaN/Inf
func Percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// CoverageRatio 收入对账单的覆盖率（收入 / 账单 × 100）
// 账单总额为 0 时返回 0
func CoverageRatio(totalIncome, totalBills float64) float64 {
	return Percentage(totalIncome, totalBills)
}
