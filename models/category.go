package models

// 账单类别常量
const (
	BillCategoryHousing        = "Housing"
	BillCategoryUtilities      = "Utilities"
	BillCategoryTransportation = "Transportation"
	BillCategoryFood           = "Food"
	BillCategoryHealthcare     = "Healthcare"
	BillCategoryInsurance      = "Insurance"
	BillCategoryEntertainment  = "Entertainment"
	BillCategorySubscriptions  = "Subscriptions"
	BillCategoryOther          = "Other"
)

// GetBillCategories 获取所有账单类别
func GetBillCategories() []string {
	return []string{
		BillCategoryHousing,
		BillCategoryUtilities,
		BillCategoryTransportation,
		BillCategoryFood,
		BillCategoryHealthcare,
		BillCategoryInsurance,
		BillCategoryEntertainment,
		BillCategorySubscriptions,
		BillCategoryOther,
	}
}

// 收入类别常量
const (
	IncomeCategorySalary     = "Salary"
	IncomeCategoryFreelance  = "Freelance"
	IncomeCategoryBusiness   = "Business"
	IncomeCategoryInvestment = "Investment"
	IncomeCategoryRental     = "Rental"
	IncomeCategoryOther      = "Other"
)

// GetIncomeCategories 获取所有收入类别
func GetIncomeCategories() []string {
	return []string{
		IncomeCategorySalary,
		IncomeCategoryFreelance,
		IncomeCategoryBusiness,
		IncomeCategoryInvestment,
		IncomeCategoryRental,
		IncomeCategoryOther,
	}
}

// IsValidBillCategory 校验账单类别取值
func IsValidBillCategory(name string) bool {
	for _, c := range GetBillCategories() {
		if c == name {
			return true
		}
	}
	return false
}
