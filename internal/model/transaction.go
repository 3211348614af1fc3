// Package model defines domain types for fintrack transactions and categories.
package model

import "strings"

// TransactionType classifies an entry as money coming in or going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Valid reports whether t is one of the two known kinds.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Label is the capitalized display form.
func (t TransactionType) Label() string {
	switch t {
	case Income:
		return "Income"
	case Expense:
		return "Expense"
	default:
		return string(t)
	}
}

// ParseTransactionType accepts "income" or "expense" in any case.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch TransactionType(strings.ToLower(strings.TrimSpace(s))) {
	case Income:
		return Income, true
	case Expense:
		return Expense, true
	default:
		return "", false
	}
}

// Transaction is one ledger entry. Amount is always positive; the sign
// comes from Type.
type Transaction struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"categoryId"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Date        Date            `json:"date"`
}

// Signed returns the amount with expenses negated.
func (t Transaction) Signed() float64 {
	if t.Type == Expense {
		return -t.Amount
	}
	return t.Amount
}

