package models

import (
	"time"

	"gorm.io/gorm"
)

// Bill 单月账单记录
type Bill struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	TemplateID *uint          `json:"template_id" gorm:"index"` // 来源模板（弱引用，可悬空）
	Name       string         `json:"name" gorm:"size:100;not null"`
	Amount     float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	DueDate    time.Time      `json:"due_date" gorm:"not null;index"`
	PaidDate   *time.Time     `json:"paid_date"`
	Status     string         `json:"status" gorm:"size:20;not null;default:UNPAID"`
	Category   string         `json:"category" gorm:"size:50;not null"`
	Remarks    string         `json:"remarks" gorm:"size:255"`
	Month      int            `json:"month" gorm:"not null;index:idx_bills_month_year"`
	Year       int            `json:"year" gorm:"not null;index:idx_bills_month_year"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Bill) TableName() string {
	return "bills"
}

// BillStatus 账单状态常量
const (
	StatusPaid    = "PAID"
	StatusUnpaid  = "UNPAID"
	StatusOverdue = "OVERDUE"
	StatusPartial = "PARTIAL"
)

// GetBillStatuses 获取所有账单状态
func GetBillStatuses() []string {
	return []string{StatusPaid, StatusUnpaid, StatusOverdue, StatusPartial}
}

// IsValidBillStatus 校验账单状态取值
func IsValidBillStatus(status string) bool {
	switch status {
	case StatusPaid, StatusUnpaid, StatusOverdue, StatusPartial:
		return true
	}
	return false
}
