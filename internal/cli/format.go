// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/fintrack/internal/model"
)

// FormatMoney formats an amount with a currency symbol, thousands
// separators and two decimals. e.g., 1234.5 -> "₹1,234.50"
func FormatMoney(amount float64, symbol string) string {
	if amount < 0 {
		return "-" + FormatMoney(-amount, symbol)
	}
	cents := int64(math.Round(amount * 100))
	return fmt.Sprintf("%s%s.%02d", symbol, FormatNumber(cents/100), cents%100)
}

// FormatCompactMoney drops the decimals for whole amounts and shortens
// large ones. e.g., 1500 -> "₹1,500", 2500000 -> "₹2.5M"
func FormatCompactMoney(amount float64, symbol string) string {
	if amount < 0 {
		return "-" + FormatCompactMoney(-amount, symbol)
	}
	switch {
	case amount >= 1_000_000:
		return fmt.Sprintf("%s%.1fM", symbol, amount/1_000_000)
	case amount == math.Trunc(amount):
		return symbol + FormatNumber(int64(amount))
	default:
		return FormatMoney(amount, symbol)
	}
}

// FormatSigned renders an amount with "+" for income and "-" for expenses.
func FormatSigned(t model.Transaction, symbol string) string {
	if t.Type == model.Expense {
		return "-" + FormatMoney(t.Amount, symbol)
	}
	return "+" + FormatMoney(t.Amount, symbol)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 value with one decimal.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDate renders d with a time layout, falling back to ISO form.
func FormatDate(d model.Date, layout string) string {
	if layout == "" {
		return d.String()
	}
	return d.Format(layout)
}

// FormatDelta formats the change from previous to current with a sign.
func FormatDelta(current, previous float64, symbol string) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatMoney(delta, symbol)
	}
	return "-" + FormatMoney(-delta, symbol)
}

// Truncate shortens s to n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
