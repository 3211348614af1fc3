package model

// Display fallbacks for transactions whose category no longer resolves.
const (
	UnknownCategoryName = "Unknown"
	FallbackColor       = "#64748b"
)

// Category is a user-visible label for transactions, scoped to one
// transaction type. BudgetAmount is only meaningful for expense
// categories; nil or zero means no budget.
type Category struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         TransactionType `json:"type"`
	Color        string          `json:"color"`
	Icon         string          `json:"icon"`
	BudgetAmount *float64        `json:"budgetAmount,omitempty"`
}

// HasBudget reports whether a positive monthly budget is set.
func (c Category) HasBudget() bool {
	return c.BudgetAmount != nil && *c.BudgetAmount > 0
}

// Budget returns the budget amount, or 0 when unset.
func (c Category) Budget() float64 {
	if c.BudgetAmount == nil {
		return 0
	}
	return *c.BudgetAmount
}
