package api

import (
	"fintrack/models"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 分类处理器
type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List 获取分类与状态枚举
// @Summary 获取分类列表
// @Description 返回账单分类、收入分类和账单状态枚举
// @Tags 分类
// @Produce json
// @Success 200 {object} Response "获取成功"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	Success(c, gin.H{
		"bill_categories":   models.GetBillCategories(),
		"income_categories": models.GetIncomeCategories(),
		"bill_statuses":     models.GetBillStatuses(),
	})
}
