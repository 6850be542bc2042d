package service

import (
	"fmt"
	"time"

	"fintrack/models"
)

// ResolveDueDate 计算模板在目标月份的实际到期日
// dueDay 超过当月天数时截断到月末（如 2 月 31 日 → 2 月 28/29 日），
// 输入只做截断，从不报错。
func ResolveDueDate(dueDay, month, year int) time.Time {
	// time.Date 的 day 0 表示上个月最后一天，借此拿到当月天数
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.Local).Day()
	if dueDay > lastDay {
		dueDay = lastDay
	}
	if dueDay < 1 {
		dueDay = 1
	}
	return time.Date(year, time.Month(month), dueDay, 0, 0, 0, 0, time.Local)
}

// GenerateBills 根据模板批量生成目标月份的账单草稿
// 只处理 IsActive 的模板，保持输入顺序，每个模板恰好生成一条 UNPAID 草稿；
// 纯函数，不落库，重复调用会产生重复草稿，由调用方决定是否持久化。
func GenerateBills(templates []models.BillTemplate, month, year int) []models.Bill {
	bills := make([]models.Bill, 0, len(templates))
	for _, tpl := range templates {
		if !tpl.IsActive {
			continue
		}
		templateID := tpl.ID
		bills = append(bills, models.Bill{
			TemplateID: &templateID,
			Name:       tpl.Name,
			Amount:     tpl.Amount,
			DueDate:    ResolveDueDate(tpl.DueDay, month, year),
			Status:     models.StatusUnpaid,
			Category:   tpl.Category,
			Remarks:    fmt.Sprintf("Auto-generated from template: %s", tpl.Description),
			Month:      month,
			Year:       year,
		})
	}
	return bills
}

// NextMonth 返回下一个月份
func NextMonth(month, year int) (int, int) {
	if month == 12 {
		return 1, year + 1
	}
	return month + 1, year
}

// PreviousMonth 返回上一个月份
func PreviousMonth(month, year int) (int, int) {
	if month == 1 {
		return 12, year - 1
	}
	return month - 1, year
}

// ReconcileAction 模板对账结果动作
type ReconcileAction string

const (
	ReconcileUpdate ReconcileAction = "update"
	ReconcileCreate ReconcileAction = "create"
)

// TemplateCandidate 待对账的模板候选（来自勾选"每月重复"的账单）
type TemplateCandidate struct {
	Name        string
	Description string
	Amount      float64
	DueDay      int
	Category    string
}

// ReconcileResult 模板对账结果
// Action 为 update 时 Target 指向匹配到的既有模板
type ReconcileResult struct {
	Action ReconcileAction
	Target *models.BillTemplate
}

// ReconcileTemplate 在既有模板中查找与候选等价的模板
// 等价判定：name、amount、dueDay、category 四元组精确相等。
// 这是结构匹配而非外键——字段完全相同的两个模板会被视为同一个。
// 命中返回 update（应用时顺带置 IsActive=true），未命中返回 create。
func ReconcileTemplate(candidate TemplateCandidate, existing []models.BillTemplate) ReconcileResult {
	for i := range existing {
		tpl := &existing[i]
		if tpl.Name == candidate.Name &&
			tpl.Amount == candidate.Amount &&
			tpl.DueDay == candidate.DueDay &&
			tpl.Category == candidate.Category {
			return ReconcileResult{Action: ReconcileUpdate, Target: tpl}
		}
	}
	return ReconcileResult{Action: ReconcileCreate}
}

// EffectiveStatus 读取时投影的账单状态
// UNPAID 且已过期的账单显示为 OVERDUE，不回写存储，避免状态过期。
func EffectiveStatus(bill *models.Bill, now time.Time) string {
	if bill.Status == models.StatusUnpaid && bill.DueDate.Before(now) {
		return models.StatusOverdue
	}
	return bill.Status
}
