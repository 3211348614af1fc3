package pipeline

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/model"
)

// ComputeBudgetStatus reports month's spend against every category with a
// positive budget, in catalog order. Categories without a budget are
// skipped; the result is empty, never nil, when none qualify.
func ComputeBudgetStatus(txns []model.Transaction, cats []model.Category, month model.Month) []model.BudgetLine {
	spent := make(map[string]decimal.Decimal)
	for _, t := range FilterByMonth(txns, month) {
		if t.Type != model.Expense {
			continue
		}
		spent[t.CategoryID] = spent[t.CategoryID].Add(decimal.NewFromFloat(t.Amount))
	}

	lines := make([]model.BudgetLine, 0)
	for _, c := range cats {
		if !c.HasBudget() {
			continue
		}
		budget := *c.BudgetAmount
		s := spent[c.ID]

		pct := s.Div(decimal.NewFromFloat(budget)).Mul(hundred)
		if pct.GreaterThan(hundred) {
			pct = hundred
		}

		sf := s.InexactFloat64()
		lines = append(lines, model.BudgetLine{
			Category:         c,
			Spent:            sf,
			Budget:           budget,
			PercentageCapped: pct.InexactFloat64(),
			Remaining:        budget - sf,
			IsOverBudget:     sf > budget,
		})
	}
	return lines
}

// OverBudget filters lines to those whose spend exceeds the budget.
func OverBudget(lines []model.BudgetLine) []model.BudgetLine {
	var out []model.BudgetLine
	for _, l := range lines {
		if l.IsOverBudget {
			out = append(out, l)
		}
	}
	return out
}
