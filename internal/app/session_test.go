package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/fintrack/internal/catalog"
	"github.com/theirongolddev/fintrack/internal/ids"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/store"
)

var fixedNow = func() time.Time { return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local) }

func openTest(t *testing.T, st Store) *Session {
	t.Helper()
	s, err := Open(context.Background(), st, Options{IDs: &ids.Sequence{}, Now: fixedNow})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func categoryID(t *testing.T, s *Session, name string) string {
	t.Helper()
	c, ok := catalog.FindByName(s.Categories(), name)
	if !ok {
		t.Fatalf("no category %q", name)
	}
	return c.ID
}

func TestOpenSeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	a := store.NewAdapter(store.NewMemory())
	s := openTest(t, a)

	if !s.Seeded() {
		t.Error("Seeded() = false on empty store")
	}
	if len(s.Categories()) != 13 {
		t.Fatalf("categories = %d, want 13", len(s.Categories()))
	}
	persisted, err := a.LoadCategories(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(persisted) != 13 {
		t.Errorf("persisted categories = %d, want 13", len(persisted))
	}
	if got := s.ViewedMonth().String(); got != "2024-03" {
		t.Errorf("ViewedMonth = %s, want 2024-03", got)
	}

	again := openTest(t, a)
	if again.Seeded() {
		t.Error("second Open seeded again")
	}
	if again.Categories()[0].ID != s.Categories()[0].ID {
		t.Error("second Open replaced stored categories")
	}
}

func TestOpenCorruptStore(t *testing.T) {
	mem := store.NewMemory()
	_ = mem.Set(context.Background(), store.KeyTransactions, "not json")

	_, err := Open(context.Background(), store.NewAdapter(mem), Options{})
	if !errors.Is(err, store.ErrCorruptState) {
		t.Fatalf("err = %v, want ErrCorruptState", err)
	}
}

func TestAddPersists(t *testing.T) {
	ctx := context.Background()
	a := store.NewAdapter(store.NewMemory())
	s := openTest(t, a)

	txn, err := s.AddTransaction(ctx, ledger.Draft{
		CategoryID:  categoryID(t, s, "Groceries"),
		Amount:      300,
		Type:        model.Expense,
		Description: "weekly shop",
		Date:        model.NewDate(2024, time.March, 10),
	})
	if err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}

	persisted, err := a.LoadTransactions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(persisted) != 1 || persisted[0] != txn {
		t.Fatalf("persisted = %+v, want [%+v]", persisted, txn)
	}

	stats := s.MonthlyStats(s.ViewedMonth())
	if stats.TotalExpenses != 300 || stats.Balance != -300 {
		t.Errorf("stats = %+v", stats)
	}
	for _, l := range s.BudgetStatus(s.ViewedMonth()) {
		if l.Category.Name == "Groceries" && l.Remaining != 200 {
			t.Errorf("Groceries remaining = %v, want 200", l.Remaining)
		}
	}
}

func TestAddInvalidIsNoop(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	s := openTest(t, store.NewAdapter(mem))

	_, err := s.AddTransaction(ctx, ledger.Draft{
		CategoryID: categoryID(t, s, "Groceries"),
		Amount:     0,
		Type:       model.Expense,
		Date:       model.NewDate(2024, time.March, 10),
	})
	var verr *ledger.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if len(s.Transactions()) != 0 {
		t.Error("invalid draft reached the ledger")
	}
	if _, ok, _ := mem.Get(ctx, store.KeyTransactions); ok {
		t.Error("invalid draft was persisted")
	}
}

type failingStore struct {
	Store
	err error
}

func (f failingStore) SaveTransactions(context.Context, []model.Transaction) error { return f.err }

func TestAddKeepsStateOnWriteFailure(t *testing.T) {
	ctx := context.Background()
	base := store.NewAdapter(store.NewMemory())
	boom := errors.New("disk full")
	s := openTest(t, failingStore{Store: base, err: boom})

	_, err := s.AddTransaction(ctx, ledger.Draft{
		CategoryID:  categoryID(t, s, "Salary"),
		Amount:      1000,
		Type:        model.Income,
		Description: "pay",
		Date:        model.NewDate(2024, time.March, 1),
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if len(s.Transactions()) != 0 {
		t.Error("ledger changed although the write failed")
	}
}

func TestDeleteAndIdempotence(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	a := store.NewAdapter(mem)
	s := openTest(t, a)

	var added []model.Transaction
	for i, amt := range []float64{10, 20, 30} {
		txn, err := s.AddTransaction(ctx, ledger.Draft{
			CategoryID:  categoryID(t, s, "Dining Out"),
			Amount:      amt,
			Type:        model.Expense,
			Description: "meal",
			Date:        model.NewDate(2024, time.March, 1+i),
		})
		if err != nil {
			t.Fatal(err)
		}
		added = append(added, txn)
	}

	ok, err := s.DeleteTransaction(ctx, added[1].ID)
	if err != nil || !ok {
		t.Fatalf("DeleteTransaction = %v, %v", ok, err)
	}
	before, _, _ := mem.Get(ctx, store.KeyTransactions)

	ok, err = s.DeleteTransaction(ctx, "txn-missing")
	if err != nil || ok {
		t.Fatalf("delete of missing id = %v, %v; want false, nil", ok, err)
	}
	after, _, _ := mem.Get(ctx, store.KeyTransactions)
	if before != after {
		t.Errorf("persisted state changed on no-op delete:\n%s\n%s", before, after)
	}
	if len(s.Transactions()) != 2 {
		t.Errorf("ledger len = %d, want 2", len(s.Transactions()))
	}
}

func TestRoundTripAsSet(t *testing.T) {
	ctx := context.Background()
	a := store.NewAdapter(store.NewMemory())
	s := openTest(t, a)

	ops := []struct {
		add    float64
		delete int // index into added, -1 for none
	}{{10, -1}, {20, -1}, {30, 0}, {40, -1}, {0, 2}, {50, -1}}
	var added []model.Transaction
	for _, op := range ops {
		if op.add > 0 {
			txn, err := s.AddTransaction(ctx, ledger.Draft{
				CategoryID:  categoryID(t, s, "Shopping"),
				Amount:      op.add,
				Type:        model.Expense,
				Description: "thing",
				Date:        model.NewDate(2024, time.February, 3),
			})
			if err != nil {
				t.Fatal(err)
			}
			added = append(added, txn)
		}
		if op.delete >= 0 {
			if _, err := s.DeleteTransaction(ctx, added[op.delete].ID); err != nil {
				t.Fatal(err)
			}
		}
	}

	reloaded := openTest(t, a)
	want := make(map[model.Transaction]bool)
	for _, txn := range s.Transactions() {
		want[txn] = true
	}
	got := reloaded.Transactions()
	if len(got) != len(want) {
		t.Fatalf("reloaded %d transactions, want %d", len(got), len(want))
	}
	for _, txn := range got {
		if !want[txn] {
			t.Errorf("unexpected transaction after reload: %+v", txn)
		}
	}
}

func TestMonthNavigation(t *testing.T) {
	s := openTest(t, store.NewAdapter(store.NewMemory()))

	s.PrevMonth()
	s.PrevMonth()
	s.PrevMonth()
	if got := s.ViewedMonth().String(); got != "2023-12" {
		t.Errorf("after 3x prev = %s, want 2023-12", got)
	}
	s.NextMonth()
	if got := s.ViewedMonth().String(); got != "2024-01" {
		t.Errorf("after next = %s, want 2024-01", got)
	}
	s.SetViewedMonth(model.Month{Year: 2030, Month: time.July})
	if got := s.ViewedMonth().String(); got != "2030-07" {
		t.Errorf("SetViewedMonth = %s", got)
	}
	s.ResetMonth()
	if got := s.ViewedMonth().String(); got != "2024-03" {
		t.Errorf("ResetMonth = %s, want 2024-03", got)
	}
}

func TestCopiesAreDetached(t *testing.T) {
	s := openTest(t, store.NewAdapter(store.NewMemory()))
	cats := s.Categories()
	cats[0].Name = "Changed"
	if s.Categories()[0].Name == "Changed" {
		t.Error("Categories() exposes internal slice")
	}
}
