package models

import (
	"time"

	"gorm.io/gorm"
)

// Income 收入记录模型
// NetAmount 在写入时计算（= Amount - TaxDeduction），读取时不重算
type Income struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Source       string         `json:"source" gorm:"size:100;not null"`
	Description  string         `json:"description" gorm:"size:255"`
	Amount       float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	TaxDeduction float64        `json:"tax_deduction" gorm:"type:decimal(10,2);default:0"`
	NetAmount    float64        `json:"net_amount" gorm:"type:decimal(10,2);not null"`
	Date         time.Time      `json:"date" gorm:"not null;index"`
	Month        int            `json:"month" gorm:"not null;index:idx_incomes_month_year"`
	Year         int            `json:"year" gorm:"not null;index:idx_incomes_month_year"`
	Category     string         `json:"category" gorm:"size:50"`
	Remarks      string         `json:"remarks" gorm:"size:255"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Income) TableName() string {
	return "incomes"
}
