package ledger

import (
	"errors"
	"math"
	"testing"

	"github.com/theirongolddev/fintrack/internal/ids"
	"github.com/theirongolddev/fintrack/internal/model"
)

func testCatalog() []model.Category {
	budget := 500.0
	return []model.Category{
		{ID: "cat-salary", Name: "Salary", Type: model.Income},
		{ID: "cat-groceries", Name: "Groceries", Type: model.Expense, BudgetAmount: &budget},
	}
}

func validDraft() Draft {
	return Draft{
		CategoryID:  "cat-groceries",
		Amount:      42.5,
		Type:        model.Expense,
		Description: "weekly shop",
		Date:        model.NewDate(2024, 3, 10),
	}
}

func TestAddAssignsID(t *testing.T) {
	gen := &ids.Sequence{}
	l, txn, err := Add(nil, testCatalog(), validDraft(), gen)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if txn.ID != "txn-1" {
		t.Errorf("ID = %q, want txn-1", txn.ID)
	}
	if len(l) != 1 || l[0] != txn {
		t.Fatalf("ledger = %+v, want [%+v]", l, txn)
	}
}

func TestAddDoesNotAliasInput(t *testing.T) {
	gen := &ids.Sequence{}
	base := make(Ledger, 0, 10)
	base, _, _ = Add(base, testCatalog(), validDraft(), gen)

	a, _, _ := Add(base, testCatalog(), validDraft(), gen)
	b, _, _ := Add(base, testCatalog(), validDraft(), gen)
	if a[1].ID == b[1].ID {
		t.Fatalf("two adds on the same base shared storage: %q", a[1].ID)
	}
	if len(base) != 1 {
		t.Fatalf("base mutated: len %d", len(base))
	}
}

type fixedGen struct {
	ids []string
	i   int
}

func (g *fixedGen) New(string) string {
	id := g.ids[g.i]
	if g.i < len(g.ids)-1 {
		g.i++
	}
	return id
}

func TestAddRegeneratesCollidingID(t *testing.T) {
	l := Ledger{{ID: "txn-dup"}}
	gen := &fixedGen{ids: []string{"txn-dup", "txn-dup", "txn-fresh"}}
	_, txn, err := Add(l, testCatalog(), validDraft(), gen)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if txn.ID != "txn-fresh" {
		t.Errorf("ID = %q, want txn-fresh", txn.ID)
	}
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Draft)
		field string
		want  error
	}{
		{"zero amount", func(d *Draft) { d.Amount = 0 }, "amount", ErrInvalidAmount},
		{"negative amount", func(d *Draft) { d.Amount = -5 }, "amount", ErrInvalidAmount},
		{"NaN amount", func(d *Draft) { d.Amount = math.NaN() }, "amount", ErrInvalidAmount},
		{"blank description", func(d *Draft) { d.Description = "   " }, "description", ErrEmptyDescription},
		{"no category", func(d *Draft) { d.CategoryID = "" }, "category", ErrMissingCategory},
		{"unknown category", func(d *Draft) { d.CategoryID = "cat-gone" }, "category", ErrUnknownCategory},
		{"type mismatch", func(d *Draft) { d.CategoryID = "cat-salary" }, "category", ErrTypeMismatch},
		{"bad type", func(d *Draft) { d.Type = "transfer" }, "type", ErrInvalidType},
		{"no date", func(d *Draft) { d.Date = model.Date{} }, "date", ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.edit(&d)
			base := Ledger{{ID: "existing"}}

			got, _, err := Add(base, testCatalog(), d, &ids.Sequence{})
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Field != tt.field {
				t.Fatalf("err = %#v, want ValidationError on %q", err, tt.field)
			}
			if len(got) != 1 {
				t.Errorf("ledger changed on invalid add: %+v", got)
			}
		})
	}
}

func TestAddTrimsDescription(t *testing.T) {
	d := validDraft()
	d.Description = "  rent  "
	_, txn, err := Add(nil, testCatalog(), d, &ids.Sequence{})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if txn.Description != "rent" {
		t.Errorf("Description = %q, want %q", txn.Description, "rent")
	}
}

func TestRemove(t *testing.T) {
	l := Ledger{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	got, ok := Remove(l, "b")
	if !ok {
		t.Fatal("Remove(b) = false")
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("got %+v", got)
	}
	if len(l) != 3 || l[1].ID != "b" {
		t.Fatalf("input mutated: %+v", l)
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	l := Ledger{{ID: "a"}}
	got, ok := Remove(l, "missing")
	if ok {
		t.Fatal("Remove(missing) = true")
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("got %+v, want unchanged", got)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"12.50", 12.5, false},
		{"12,50", 12.5, false},
		{" 300 ", 300, false},
		{".5", 0.5, false},
		{"1.005", 1.01, false},
		{"", 0, true},
		{"0", 0, true},
		{"0.001", 0, true},
		{"-5", 0, true},
		{"+5", 0, true},
		{"1e3", 0, true},
		{"1.2.3", 0, true},
		{"abc", 0, true},
		{".", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAmount(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
