package model

// CategoryTotal is one row of a month's expense breakdown.
type CategoryTotal struct {
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Amount       float64 `json:"amount"`
	Color        string  `json:"color"`
	Percentage   float64 `json:"percentage"`
}

// MonthlyStats holds income, expense and per-category totals for one month.
type MonthlyStats struct {
	Month             Month           `json:"month"`
	TotalIncome       float64         `json:"totalIncome"`
	TotalExpenses     float64         `json:"totalExpenses"`
	Balance           float64         `json:"balance"`
	CategoryBreakdown []CategoryTotal `json:"categoryBreakdown"`
	TransactionCount  int             `json:"transactionCount"`
}

// BudgetLine compares one budgeted category's spend against its budget.
// PercentageCapped never exceeds 100; Remaining goes negative when over.
type BudgetLine struct {
	Category         Category `json:"category"`
	Spent            float64  `json:"spent"`
	Budget           float64  `json:"budget"`
	PercentageCapped float64  `json:"percentage"`
	Remaining        float64  `json:"remaining"`
	IsOverBudget     bool     `json:"isOverBudget"`
}
