// Package app holds the session state a presentation layer drives: the
// loaded ledger and catalog, the viewed month, and the commands that
// mutate and persist them.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/theirongolddev/fintrack/internal/catalog"
	"github.com/theirongolddev/fintrack/internal/ids"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/log"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/pipeline"
	"github.com/theirongolddev/fintrack/internal/store"
)

// Store is the persistence a Session needs.
type Store interface {
	LoadTransactions(ctx context.Context) ([]model.Transaction, error)
	SaveTransactions(ctx context.Context, txns []model.Transaction) error
	LoadCategories(ctx context.Context) ([]model.Category, error)
	SaveCategories(ctx context.Context, cats []model.Category) error
}

var _ Store = (*store.Adapter)(nil)

// Options configures a Session. Zero values pick defaults.
type Options struct {
	IDs    ids.Generator
	Logger *log.Logger
	Now    func() time.Time
}

// Session owns the in-memory state for one user session. It is not safe
// for concurrent use.
type Session struct {
	store  Store
	ids    ids.Generator
	log    *log.Logger
	now    func() time.Time
	ledger ledger.Ledger
	cats   []model.Category
	month  model.Month
	seeded bool
}

// Open loads the ledger and catalog, seeding and persisting the default
// categories when the store has none. The viewed month starts at the
// current month.
func Open(ctx context.Context, st Store, opts Options) (*Session, error) {
	s := &Session{
		store: st,
		ids:   opts.IDs,
		log:   opts.Logger,
		now:   opts.Now,
	}
	if s.ids == nil {
		s.ids = ids.UUID{}
	}
	if s.log == nil {
		s.log = log.Discard()
	}
	s.log = s.log.WithComponent(log.ComponentSession)
	if s.now == nil {
		s.now = time.Now
	}

	txns, err := st.LoadTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}
	cats, err := st.LoadCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}

	cats, seeded := catalog.Seed(cats, s.ids)
	if seeded {
		if err := st.SaveCategories(ctx, cats); err != nil {
			return nil, fmt.Errorf("saving default categories: %w", err)
		}
		s.log.Op(ctx, "seed_categories", log.FieldCount, len(cats))
	}

	s.ledger = ledger.Ledger(txns)
	s.cats = cats
	s.seeded = seeded
	s.month = model.CurrentMonth(s.now())

	s.log.Op(ctx, "open", log.FieldCount, len(txns), log.FieldMonth, s.month.String())
	return s, nil
}

// Seeded reports whether Open wrote the default categories.
func (s *Session) Seeded() bool { return s.seeded }

// AddTransaction validates and records d, then persists the whole ledger.
// The in-memory ledger only changes once the write succeeds.
func (s *Session) AddTransaction(ctx context.Context, d ledger.Draft) (model.Transaction, error) {
	next, txn, err := ledger.Add(s.ledger, s.cats, d, s.ids)
	if err != nil {
		return model.Transaction{}, err
	}
	if err := s.store.SaveTransactions(ctx, next); err != nil {
		s.log.Failed(ctx, "add", err)
		return model.Transaction{}, fmt.Errorf("saving transactions: %w", err)
	}
	s.ledger = next

	s.log.Op(ctx, "add",
		log.FieldTransactionID, txn.ID,
		log.FieldCategoryID, txn.CategoryID,
		log.FieldAmount, txn.Amount,
	)
	return txn, nil
}

// DeleteTransaction removes the transaction with id and persists the
// ledger. An unknown id is a no-op that returns false and writes nothing.
func (s *Session) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	next, removed := ledger.Remove(s.ledger, id)
	if !removed {
		return false, nil
	}
	if err := s.store.SaveTransactions(ctx, next); err != nil {
		s.log.Failed(ctx, "delete", err, log.FieldTransactionID, id)
		return false, fmt.Errorf("saving transactions: %w", err)
	}
	s.ledger = next

	s.log.Op(ctx, "delete", log.FieldTransactionID, id)
	return true, nil
}

// SetViewedMonth changes the month the presentation layer is looking at.
func (s *Session) SetViewedMonth(m model.Month) { s.month = m }

// ViewedMonth returns the month being viewed.
func (s *Session) ViewedMonth() model.Month { return s.month }

// NextMonth advances the viewed month by one.
func (s *Session) NextMonth() { s.month = s.month.Next() }

// PrevMonth moves the viewed month back by one.
func (s *Session) PrevMonth() { s.month = s.month.Prev() }

// ResetMonth returns the view to the current month.
func (s *Session) ResetMonth() { s.month = model.CurrentMonth(s.now()) }

// Today is the local date according to the session clock.
func (s *Session) Today() model.Date { return model.Today(s.now()) }

// MonthlyStats computes totals and breakdown for m.
func (s *Session) MonthlyStats(m model.Month) model.MonthlyStats {
	return pipeline.ComputeMonthlyStats(s.ledger, s.cats, m)
}

// BudgetStatus computes budget lines for m.
func (s *Session) BudgetStatus(m model.Month) []model.BudgetLine {
	return pipeline.ComputeBudgetStatus(s.ledger, s.cats, m)
}

// TransactionsForMonth lists m's transactions, newest first.
func (s *Session) TransactionsForMonth(m model.Month) []model.Transaction {
	return pipeline.TransactionsForMonth(s.ledger, m)
}

// DailyExpenses returns per-day expense totals for m.
func (s *Session) DailyExpenses(m model.Month) []float64 {
	return pipeline.DailyExpenses(s.ledger, m)
}

// Transactions returns a copy of the full ledger.
func (s *Session) Transactions() []model.Transaction {
	return append([]model.Transaction(nil), s.ledger...)
}

// Categories returns a copy of the catalog.
func (s *Session) Categories() []model.Category {
	return append([]model.Category(nil), s.cats...)
}

// CategoryIndex returns an id lookup over the catalog.
func (s *Session) CategoryIndex() catalog.Index {
	return catalog.NewIndex(s.cats)
}
