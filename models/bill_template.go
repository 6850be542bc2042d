package models

import (
	"time"

	"gorm.io/gorm"
)

// BillTemplate 周期账单模板（每月自动生成账单的依据）
type BillTemplate struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"size:100;not null"`
	Description string         `json:"description" gorm:"size:255"`
	Amount      float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	DueDay      int            `json:"due_day" gorm:"not null"` // 名义到期日 1-31，短月自动截断
	Category    string         `json:"category" gorm:"size:50;not null"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (BillTemplate) TableName() string {
	return "bill_templates"
}
