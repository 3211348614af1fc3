package pipeline

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/theirongolddev/fintrack/internal/model"
)

var (
	march    = model.Month{Year: 2024, Month: time.March}
	february = model.Month{Year: 2024, Month: time.February}
)

func budget(v float64) *float64 { return &v }

func testCategories() []model.Category {
	return []model.Category{
		{ID: "salary", Name: "Salary", Type: model.Income, Color: "#10b981"},
		{ID: "groceries", Name: "Groceries", Type: model.Expense, Color: "#f59e0b", BudgetAmount: budget(500)},
		{ID: "dining", Name: "Dining Out", Type: model.Expense, Color: "#d97706", BudgetAmount: budget(200)},
		{ID: "other", Name: "Other Expenses", Type: model.Expense, Color: "#64748b"},
	}
}

func txn(id, cat string, kind model.TransactionType, amount float64, y int, m time.Month, d int) model.Transaction {
	return model.Transaction{
		ID:          id,
		CategoryID:  cat,
		Amount:      amount,
		Type:        kind,
		Description: id,
		Date:        model.NewDate(y, m, d),
	}
}

func TestComputeMonthlyStatsScenario(t *testing.T) {
	txns := []model.Transaction{
		txn("t1", "salary", model.Income, 1000, 2024, time.March, 5),
		txn("t2", "groceries", model.Expense, 300, 2024, time.March, 10),
		txn("t3", "groceries", model.Expense, 250, 2024, time.February, 20),
	}

	stats := ComputeMonthlyStats(txns, testCategories(), march)

	if stats.TotalIncome != 1000 {
		t.Errorf("TotalIncome = %v, want 1000", stats.TotalIncome)
	}
	if stats.TotalExpenses != 300 {
		t.Errorf("TotalExpenses = %v, want 300", stats.TotalExpenses)
	}
	if stats.Balance != 700 {
		t.Errorf("Balance = %v, want 700", stats.Balance)
	}
	if stats.TransactionCount != 2 {
		t.Errorf("TransactionCount = %d, want 2", stats.TransactionCount)
	}
	if len(stats.CategoryBreakdown) != 1 {
		t.Fatalf("breakdown len = %d, want 1", len(stats.CategoryBreakdown))
	}
	got := stats.CategoryBreakdown[0]
	want := model.CategoryTotal{CategoryID: "groceries", CategoryName: "Groceries", Amount: 300, Color: "#f59e0b", Percentage: 100}
	if got != want {
		t.Errorf("breakdown[0] = %+v, want %+v", got, want)
	}
}

func TestComputeMonthlyStatsEmpty(t *testing.T) {
	stats := ComputeMonthlyStats(nil, testCategories(), march)
	if stats.TotalIncome != 0 || stats.TotalExpenses != 0 || stats.Balance != 0 {
		t.Errorf("stats = %+v, want zero totals", stats)
	}
	if stats.CategoryBreakdown == nil || len(stats.CategoryBreakdown) != 0 {
		t.Errorf("breakdown = %#v, want empty non-nil", stats.CategoryBreakdown)
	}
}

func TestComputeMonthlyStatsUnknownCategory(t *testing.T) {
	txns := []model.Transaction{txn("t1", "deleted", model.Expense, 40, 2024, time.March, 1)}
	stats := ComputeMonthlyStats(txns, testCategories(), march)

	if len(stats.CategoryBreakdown) != 1 {
		t.Fatalf("breakdown len = %d, want 1", len(stats.CategoryBreakdown))
	}
	got := stats.CategoryBreakdown[0]
	if got.CategoryName != "Unknown" || got.Color != model.FallbackColor {
		t.Errorf("got %q %q, want Unknown fallback", got.CategoryName, got.Color)
	}
}

func TestBreakdownSortedStable(t *testing.T) {
	txns := []model.Transaction{
		txn("t1", "dining", model.Expense, 50, 2024, time.March, 1),
		txn("t2", "other", model.Expense, 80, 2024, time.March, 2),
		txn("t3", "groceries", model.Expense, 50, 2024, time.March, 3),
		txn("t4", "salary", model.Income, 999, 2024, time.March, 3),
	}
	stats := ComputeMonthlyStats(txns, testCategories(), march)

	var order []string
	for _, ct := range stats.CategoryBreakdown {
		order = append(order, ct.CategoryID)
	}
	want := []string{"other", "dining", "groceries"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestMonthBoundary(t *testing.T) {
	lastOfMarch := []model.Transaction{txn("t1", "groceries", model.Expense, 10, 2024, time.March, 31)}
	if got := ComputeMonthlyStats(lastOfMarch, nil, march).TotalExpenses; got != 10 {
		t.Errorf("March 31 in March = %v, want 10", got)
	}
	if got := ComputeMonthlyStats(lastOfMarch, nil, march.Next()).TotalExpenses; got != 0 {
		t.Errorf("March 31 in April = %v, want 0", got)
	}

	firstOfApril := []model.Transaction{txn("t2", "groceries", model.Expense, 10, 2024, time.April, 1)}
	if got := ComputeMonthlyStats(firstOfApril, nil, march).TotalExpenses; got != 0 {
		t.Errorf("April 1 in March = %v, want 0", got)
	}

	newYear := []model.Transaction{txn("t3", "groceries", model.Expense, 10, 2024, time.December, 31)}
	jan := model.Month{Year: 2025, Month: time.January}
	if got := ComputeMonthlyStats(newYear, nil, jan).TotalExpenses; got != 0 {
		t.Errorf("Dec 31 in next January = %v, want 0", got)
	}
}

func TestSameMonthOtherYearExcluded(t *testing.T) {
	txns := []model.Transaction{txn("t1", "groceries", model.Expense, 10, 2023, time.March, 15)}
	if got := ComputeMonthlyStats(txns, nil, march).TotalExpenses; got != 0 {
		t.Errorf("March 2023 in March 2024 = %v, want 0", got)
	}
}

func randomLedger(r *rand.Rand, n int) []model.Transaction {
	cats := []string{"salary", "groceries", "dining", "other", "gone"}
	txns := make([]model.Transaction, n)
	for i := range txns {
		kind := model.Expense
		if r.Intn(4) == 0 {
			kind = model.Income
		}
		txns[i] = model.Transaction{
			ID:         "t",
			CategoryID: cats[r.Intn(len(cats))],
			Amount:     float64(1+r.Intn(500000)) / 100,
			Type:       kind,
			Date:       model.NewDate(2024, time.Month(1+r.Intn(4)), 1+r.Intn(28)),
		}
	}
	return txns
}

func TestMonthlyStatsProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		txns := randomLedger(r, r.Intn(60))
		stats := ComputeMonthlyStats(txns, testCategories(), march)

		if stats.TotalIncome-stats.TotalExpenses != stats.Balance {
			t.Fatalf("round %d: %v - %v != %v", round, stats.TotalIncome, stats.TotalExpenses, stats.Balance)
		}

		var sum, pct float64
		for _, ct := range stats.CategoryBreakdown {
			if ct.Amount <= 0 {
				t.Fatalf("round %d: non-positive breakdown amount %+v", round, ct)
			}
			sum += ct.Amount
			pct += ct.Percentage
		}
		if stats.TotalExpenses > 0 {
			if math.Abs(sum-stats.TotalExpenses) > 1e-6 {
				t.Fatalf("round %d: breakdown sum %v != total %v", round, sum, stats.TotalExpenses)
			}
			if math.Abs(pct-100) > 1e-6 {
				t.Fatalf("round %d: percentages sum to %v", round, pct)
			}
		}

		for i := 1; i < len(stats.CategoryBreakdown); i++ {
			if stats.CategoryBreakdown[i-1].Amount < stats.CategoryBreakdown[i].Amount {
				t.Fatalf("round %d: breakdown not descending at %d", round, i)
			}
		}
	}
}

func TestMonthlyStatsDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	txns := randomLedger(r, 40)
	a := ComputeMonthlyStats(txns, testCategories(), march)
	b := ComputeMonthlyStats(txns, testCategories(), march)
	if a.Balance != b.Balance || len(a.CategoryBreakdown) != len(b.CategoryBreakdown) {
		t.Fatal("two runs over the same input differ")
	}
	for i := range a.CategoryBreakdown {
		if a.CategoryBreakdown[i] != b.CategoryBreakdown[i] {
			t.Fatalf("breakdown[%d] differs: %+v vs %+v", i, a.CategoryBreakdown[i], b.CategoryBreakdown[i])
		}
	}
}

func TestDecimalSummation(t *testing.T) {
	txns := []model.Transaction{
		txn("t1", "groceries", model.Expense, 0.1, 2024, time.March, 1),
		txn("t2", "groceries", model.Expense, 0.2, 2024, time.March, 2),
	}
	stats := ComputeMonthlyStats(txns, testCategories(), march)
	if stats.TotalExpenses != 0.3 {
		t.Errorf("TotalExpenses = %v, want 0.3", stats.TotalExpenses)
	}
}

func TestDailyExpenses(t *testing.T) {
	txns := []model.Transaction{
		txn("t1", "groceries", model.Expense, 10, 2024, time.February, 1),
		txn("t2", "groceries", model.Expense, 5, 2024, time.February, 29),
		txn("t3", "groceries", model.Expense, 7, 2024, time.February, 29),
		txn("t4", "salary", model.Income, 100, 2024, time.February, 2),
	}
	days := DailyExpenses(txns, february)
	if len(days) != 29 {
		t.Fatalf("len = %d, want 29 for leap February", len(days))
	}
	if days[0] != 10 || days[1] != 0 || days[28] != 12 {
		t.Errorf("days = %v", days)
	}
}

func TestTransactionsForMonthSorted(t *testing.T) {
	txns := []model.Transaction{
		txn("a", "groceries", model.Expense, 1, 2024, time.March, 3),
		txn("b", "groceries", model.Expense, 1, 2024, time.March, 20),
		txn("c", "groceries", model.Expense, 1, 2024, time.February, 28),
		txn("d", "salary", model.Income, 1, 2024, time.March, 3),
	}
	got := TransactionsForMonth(txns, march)
	want := []string{"b", "a", "d"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("got[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestActiveMonths(t *testing.T) {
	txns := []model.Transaction{
		txn("a", "groceries", model.Expense, 1, 2024, time.February, 3),
		txn("b", "groceries", model.Expense, 1, 2024, time.March, 20),
		txn("c", "groceries", model.Expense, 1, 2023, time.December, 28),
		txn("d", "salary", model.Income, 1, 2024, time.March, 3),
	}
	got := ActiveMonths(txns)
	want := []string{"2024-03", "2024-02", "2023-12"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("got[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func newRand() *rand.Rand { return rand.New(rand.NewSource(3)) }
