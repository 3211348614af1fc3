package pipeline

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/catalog"
	"github.com/theirongolddev/fintrack/internal/model"
)

var hundred = decimal.NewFromInt(100)

// ComputeMonthlyStats totals income and expenses for month and breaks
// expenses down by category. Sums are accumulated in decimal so the
// breakdown adds up to TotalExpenses exactly.
func ComputeMonthlyStats(txns []model.Transaction, cats []model.Category, month model.Month) model.MonthlyStats {
	inMonth := FilterByMonth(txns, month)
	idx := catalog.NewIndex(cats)

	var income, expenses decimal.Decimal
	perCategory := make(map[string]decimal.Decimal)
	var order []string

	for _, t := range inMonth {
		amt := decimal.NewFromFloat(t.Amount)
		switch t.Type {
		case model.Income:
			income = income.Add(amt)
		case model.Expense:
			expenses = expenses.Add(amt)
			if _, ok := perCategory[t.CategoryID]; !ok {
				order = append(order, t.CategoryID)
			}
			perCategory[t.CategoryID] = perCategory[t.CategoryID].Add(amt)
		}
	}

	breakdown := make([]model.CategoryTotal, 0, len(order))
	for _, id := range order {
		amt := perCategory[id]
		if !amt.IsPositive() {
			continue
		}
		name, color := idx.Display(id)
		ct := model.CategoryTotal{
			CategoryID:   id,
			CategoryName: name,
			Amount:       amt.InexactFloat64(),
			Color:        color,
		}
		if expenses.IsPositive() {
			ct.Percentage = amt.Div(expenses).Mul(hundred).InexactFloat64()
		}
		breakdown = append(breakdown, ct)
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount > breakdown[j].Amount
	})

	stats := model.MonthlyStats{
		Month:             month,
		TotalIncome:       income.InexactFloat64(),
		TotalExpenses:     expenses.InexactFloat64(),
		CategoryBreakdown: breakdown,
		TransactionCount:  len(inMonth),
	}
	// Balance derives from the reported totals so the subtraction holds
	// exactly in float64.
	stats.Balance = stats.TotalIncome - stats.TotalExpenses
	return stats
}

// DailyExpenses returns one expense total per calendar day of month,
// index 0 being the 1st.
func DailyExpenses(txns []model.Transaction, month model.Month) []float64 {
	days := month.Next().FirstDay().Time().AddDate(0, 0, -1).Day()
	sums := make([]decimal.Decimal, days)
	for _, t := range FilterByMonth(txns, month) {
		if t.Type != model.Expense || t.Date.Day < 1 || t.Date.Day > days {
			continue
		}
		sums[t.Date.Day-1] = sums[t.Date.Day-1].Add(decimal.NewFromFloat(t.Amount))
	}

	out := make([]float64, days)
	for i, s := range sums {
		out[i] = s.InexactFloat64()
	}
	return out
}

// CompareMonths returns stats for month and the month before it.
func CompareMonths(txns []model.Transaction, cats []model.Category, month model.Month) (current, previous model.MonthlyStats) {
	return ComputeMonthlyStats(txns, cats, month), ComputeMonthlyStats(txns, cats, month.Prev())
}
