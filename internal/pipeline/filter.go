// Package pipeline derives monthly statistics and budget status from a
// ledger and catalog. Every function is pure.
package pipeline

import (
	"sort"

	"github.com/theirongolddev/fintrack/internal/model"
)

// FilterByMonth returns the transactions dated within month, in input order.
func FilterByMonth(txns []model.Transaction, month model.Month) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if month.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// FilterByType keeps transactions of one type.
func FilterByType(txns []model.Transaction, kind model.TransactionType) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if t.Type == kind {
			out = append(out, t)
		}
	}
	return out
}

// FilterByCategory keeps transactions referencing categoryID.
func FilterByCategory(txns []model.Transaction, categoryID string) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if t.CategoryID == categoryID {
			out = append(out, t)
		}
	}
	return out
}

// TransactionsForMonth returns month's transactions sorted by date,
// newest first. Same-day entries keep their ledger order.
func TransactionsForMonth(txns []model.Transaction, month model.Month) []model.Transaction {
	out := FilterByMonth(txns, month)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// ActiveMonths lists every month with at least one transaction, newest first.
func ActiveMonths(txns []model.Transaction) []model.Month {
	seen := make(map[model.Month]struct{})
	var months []model.Month
	for _, t := range txns {
		m := t.Date.YearMonth()
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].FirstDay().After(months[j].FirstDay())
	})
	return months
}
