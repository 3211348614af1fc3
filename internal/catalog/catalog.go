// Package catalog holds the default category set and lookups over a
// category list.
package catalog

import (
	"strings"

	"github.com/theirongolddev/fintrack/internal/ids"
	"github.com/theirongolddev/fintrack/internal/model"
)

type seedRow struct {
	name   string
	kind   model.TransactionType
	color  string
	icon   string
	budget float64
}

// defaults is the first-run category set, in display order.
var defaults = []seedRow{
	{"Salary", model.Income, "#10b981", "briefcase", 0},
	{"Freelance", model.Income, "#059669", "laptop", 0},
	{"Investments", model.Income, "#34d399", "trending-up", 0},
	{"Other Income", model.Income, "#6ee7b7", "plus-circle", 0},
	{"Groceries", model.Expense, "#f59e0b", "shopping-cart", 500},
	{"Dining Out", model.Expense, "#d97706", "utensils", 200},
	{"Transportation", model.Expense, "#3b82f6", "car", 150},
	{"Entertainment", model.Expense, "#8b5cf6", "film", 100},
	{"Shopping", model.Expense, "#ec4899", "shopping-bag", 300},
	{"Bills & Utilities", model.Expense, "#ef4444", "file-text", 400},
	{"Healthcare", model.Expense, "#06b6d4", "heart", 150},
	{"Education", model.Expense, "#14b8a6", "book", 200},
	{"Other Expenses", model.Expense, "#64748b", "more-horizontal", 0},
}

// Defaults returns the default categories, each with a fresh id from gen.
func Defaults(gen ids.Generator) []model.Category {
	cats := make([]model.Category, 0, len(defaults))
	for _, row := range defaults {
		c := model.Category{
			ID:    gen.New(ids.CategoryPrefix),
			Name:  row.name,
			Type:  row.kind,
			Color: row.color,
			Icon:  row.icon,
		}
		if row.budget > 0 {
			b := row.budget
			c.BudgetAmount = &b
		}
		cats = append(cats, c)
	}
	return cats
}

// Seed returns existing unchanged when it is non-empty. Otherwise it
// returns a fresh default set and reports that seeding happened.
func Seed(existing []model.Category, gen ids.Generator) ([]model.Category, bool) {
	if len(existing) > 0 {
		return existing, false
	}
	return Defaults(gen), true
}

// Index maps category id to category for display lookups.
type Index map[string]model.Category

// NewIndex builds an Index. Later duplicates of an id win.
func NewIndex(cats []model.Category) Index {
	idx := make(Index, len(cats))
	for _, c := range cats {
		idx[c.ID] = c
	}
	return idx
}

// Lookup returns the category for id.
func (idx Index) Lookup(id string) (model.Category, bool) {
	c, ok := idx[id]
	return c, ok
}

// Display returns the name and color to show for id, falling back to
// "Unknown" and a neutral gray when the category does not resolve.
func (idx Index) Display(id string) (name, color string) {
	if c, ok := idx[id]; ok {
		return c.Name, c.Color
	}
	return model.UnknownCategoryName, model.FallbackColor
}

// Find returns the category with the given id.
func Find(cats []model.Category, id string) (model.Category, bool) {
	for _, c := range cats {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// FindByName matches a category name case-insensitively, ignoring
// surrounding whitespace.
func FindByName(cats []model.Category, name string) (model.Category, bool) {
	name = strings.TrimSpace(name)
	for _, c := range cats {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return model.Category{}, false
}

// ByType filters to categories of one transaction type, keeping order.
func ByType(cats []model.Category, t model.TransactionType) []model.Category {
	var out []model.Category
	for _, c := range cats {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}
