package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/fintrack/internal/catalog"
	"github.com/theirongolddev/fintrack/internal/ids"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
)

func TestResolveCategory(t *testing.T) {
	cats := catalog.Defaults(&ids.Sequence{})

	byName, err := resolveCategory(cats, "  dining out ")
	if err != nil || byName.Name != "Dining Out" {
		t.Fatalf("by name = %+v, %v", byName, err)
	}
	byID, err := resolveCategory(cats, byName.ID)
	if err != nil || byID.ID != byName.ID {
		t.Errorf("by id = %+v, %v", byID, err)
	}
	if _, err := resolveCategory(cats, "Pets"); err == nil {
		t.Error("resolved unknown category")
	}
}

func TestDraftFromFlags(t *testing.T) {
	cats := catalog.Defaults(&ids.Sequence{})
	addType, addCategory, addAmount, addDescription, addDate = "Expense", "groceries", "12,50", "Weekly shop", "2024-03-10"
	t.Cleanup(func() { addType, addCategory, addAmount, addDescription, addDate = "expense", "", "", "", "" })

	d, err := draftFromFlags(cats)
	if err != nil {
		t.Fatalf("draftFromFlags: %v", err)
	}
	groceries, _ := catalog.FindByName(cats, "Groceries")
	want := ledger.Draft{
		CategoryID:  groceries.ID,
		Amount:      12.5,
		Type:        model.Expense,
		Description: "Weekly shop",
		Date:        model.NewDate(2024, time.March, 10),
	}
	if d != want {
		t.Errorf("draft = %+v, want %+v", d, want)
	}

	addAmount = "-3"
	if _, err := draftFromFlags(cats); !errors.Is(err, ledger.ErrInvalidAmount) {
		t.Errorf("negative amount error = %v, want ErrInvalidAmount", err)
	}
}
