package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2024-03-15", NewDate(2024, time.March, 15)},
		{" 2024-02-29 ", NewDate(2024, time.February, 29)},
		// Timestamps keep the date as written, whatever the offset.
		{"2024-03-31T23:30:00-05:00", NewDate(2024, time.March, 31)},
		{"2024-04-01T00:15:00+09:00", NewDate(2024, time.April, 1)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "2024-13-01", "2023-02-29", "15/03/2024", "yesterday"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", bad, err)
		}
	}
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("2024-03")
	if err != nil {
		t.Fatalf("ParseMonth: %v", err)
	}
	if got != (Month{Year: 2024, Month: time.March}) {
		t.Errorf("ParseMonth = %v", got)
	}

	for _, bad := range []string{"", "2024", "2024-00", "2024-13", "24-03", "2024-ab", "2024/03"} {
		if _, err := ParseMonth(bad); !errors.Is(err, ErrInvalidMonth) {
			t.Errorf("ParseMonth(%q) error = %v, want ErrInvalidMonth", bad, err)
		}
	}
}

func TestMonthNavigation(t *testing.T) {
	dec := Month{Year: 2023, Month: time.December}
	jan := Month{Year: 2024, Month: time.January}

	if got := dec.Next(); got != jan {
		t.Errorf("Dec.Next() = %v, want %v", got, jan)
	}
	if got := jan.Prev(); got != dec {
		t.Errorf("Jan.Prev() = %v, want %v", got, dec)
	}
	if got := jan.Label(); got != "January 2024" {
		t.Errorf("Label() = %q", got)
	}
	if got := jan.String(); got != "2024-01" {
		t.Errorf("String() = %q", got)
	}
}

func TestMonthContains(t *testing.T) {
	m := Month{Year: 2024, Month: time.March}

	tests := []struct {
		d    Date
		want bool
	}{
		{NewDate(2024, time.March, 1), true},
		{NewDate(2024, time.March, 31), true},
		{NewDate(2024, time.February, 29), false},
		{NewDate(2024, time.April, 1), false},
		{NewDate(2023, time.March, 15), false},
	}
	for _, tt := range tests {
		if got := m.Contains(tt.d); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestDateCompare(t *testing.T) {
	a := NewDate(2024, time.March, 9)
	b := NewDate(2024, time.March, 10)

	if !a.Before(b) || b.Before(a) || !b.After(a) {
		t.Error("Before/After disagree with calendar order")
	}
	if a.Compare(a) != 0 {
		t.Error("Compare(self) != 0")
	}
	if NewDate(2023, time.December, 31).Compare(NewDate(2024, time.January, 1)) != -1 {
		t.Error("year boundary ordered wrong")
	}
}

func TestTransactionJSON(t *testing.T) {
	txn := Transaction{
		ID:          "txn-1",
		CategoryID:  "cat-5",
		Amount:      42.5,
		Type:        Expense,
		Description: "Groceries",
		Date:        NewDate(2024, time.March, 10),
	}
	b, err := json.Marshal(txn)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":"txn-1","categoryId":"cat-5","amount":42.5,"type":"expense","description":"Groceries","date":"2024-03-10"}`
	if string(b) != want {
		t.Errorf("Marshal = %s\nwant      %s", b, want)
	}
}

func TestCategoryBudget(t *testing.T) {
	budget := 500.0
	c := Category{Name: "Groceries", BudgetAmount: &budget}
	if !c.HasBudget() || c.Budget() != 500 {
		t.Errorf("HasBudget = %v, Budget = %v", c.HasBudget(), c.Budget())
	}

	zero := 0.0
	for _, c := range []Category{{Name: "none"}, {Name: "zero", BudgetAmount: &zero}} {
		if c.HasBudget() {
			t.Errorf("%s: HasBudget = true", c.Name)
		}
	}
}

func TestParseTransactionType(t *testing.T) {
	if got, ok := ParseTransactionType(" Income "); !ok || got != Income {
		t.Errorf("ParseTransactionType(Income) = %v, %v", got, ok)
	}
	if _, ok := ParseTransactionType("transfer"); ok {
		t.Error("accepted transfer")
	}
}
