// Package ledger implements the add/remove operations over the
// transaction collection. Every operation returns a new Ledger and leaves
// its input untouched.
package ledger

import (
	"math"
	"strings"

	"github.com/theirongolddev/fintrack/internal/catalog"
	"github.com/theirongolddev/fintrack/internal/ids"
	"github.com/theirongolddev/fintrack/internal/model"
)

// maxIDAttempts bounds regeneration when a generated id already exists.
const maxIDAttempts = 8

// Ledger is the unordered set of recorded transactions.
type Ledger []model.Transaction

// Draft is a transaction that has not been assigned an id yet.
type Draft struct {
	CategoryID  string
	Amount      float64
	Type        model.TransactionType
	Description string
	Date        model.Date
}

// Validate checks the draft against the catalog. The category must exist
// and share the draft's type.
func (d Draft) Validate(cats []model.Category) error {
	if !d.Type.Valid() {
		return invalid("type", ErrInvalidType)
	}
	if math.IsNaN(d.Amount) || math.IsInf(d.Amount, 0) || d.Amount <= 0 {
		return invalid("amount", ErrInvalidAmount)
	}
	if strings.TrimSpace(d.Description) == "" {
		return invalid("description", ErrEmptyDescription)
	}
	if d.Date.IsZero() {
		return invalid("date", ErrInvalidDate)
	}
	if strings.TrimSpace(d.CategoryID) == "" {
		return invalid("category", ErrMissingCategory)
	}
	c, ok := catalog.Find(cats, d.CategoryID)
	if !ok {
		return invalid("category", ErrUnknownCategory)
	}
	if c.Type != d.Type {
		return invalid("category", ErrTypeMismatch)
	}
	return nil
}

// Add validates d, assigns it an id not already present in l, and returns
// the extended ledger with the new record. On error l is returned as-is.
func Add(l Ledger, cats []model.Category, d Draft, gen ids.Generator) (Ledger, model.Transaction, error) {
	if err := d.Validate(cats); err != nil {
		return l, model.Transaction{}, err
	}

	id := gen.New(ids.TransactionPrefix)
	for i := 1; i < maxIDAttempts && l.Contains(id); i++ {
		id = gen.New(ids.TransactionPrefix)
	}

	t := model.Transaction{
		ID:          id,
		CategoryID:  d.CategoryID,
		Amount:      d.Amount,
		Type:        d.Type,
		Description: strings.TrimSpace(d.Description),
		Date:        d.Date,
	}

	out := make(Ledger, len(l), len(l)+1)
	copy(out, l)
	return append(out, t), t, nil
}

// Remove drops the transaction with id. Removing an absent id is a no-op
// that returns l itself and false.
func Remove(l Ledger, id string) (Ledger, bool) {
	idx := -1
	for i, t := range l {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return l, false
	}

	out := make(Ledger, 0, len(l)-1)
	out = append(out, l[:idx]...)
	return append(out, l[idx+1:]...), true
}

// Contains reports whether a transaction with id exists.
func (l Ledger) Contains(id string) bool {
	_, ok := l.Find(id)
	return ok
}

// Find returns the transaction with id.
func (l Ledger) Find(id string) (model.Transaction, bool) {
	for _, t := range l {
		if t.ID == id {
			return t, true
		}
	}
	return model.Transaction{}, false
}
