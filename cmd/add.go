package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/catalog"
	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
)

var (
	addType        string
	addCategory    string
	addAmount      string
	addDescription string
	addDate        string
	addInteractive bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an income or expense transaction",
	Example: `  fintrack add --type expense --category Groceries --amount 12.50 --description "Weekly shop"
  fintrack add -i`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addType, "type", "t", "expense", "income or expense")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category id or name")
	addCmd.Flags().StringVarP(&addAmount, "amount", "a", "", "Positive amount, e.g. 12.50 or 12,50")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "What it was for")
	addCmd.Flags().StringVar(&addDate, "date", "", "Date as YYYY-MM-DD (default today)")
	addCmd.Flags().BoolVarP(&addInteractive, "interactive", "i", false, "Fill the transaction in a form")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	e, err := openEnv(ctx, nil)
	if err != nil {
		return err
	}
	defer e.Close()

	if addDate == "" {
		addDate = e.session.Today().String()
	}
	if addInteractive {
		if err := runAddForm(e.session.Categories()); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("  Cancelled.")
				return nil
			}
			return err
		}
	}

	d, err := draftFromFlags(e.session.Categories())
	if err != nil {
		return err
	}
	txn, err := e.session.AddTransaction(ctx, d)
	if err != nil {
		return fmt.Errorf("adding transaction: %w", err)
	}

	if flagJSON {
		return printJSON(txn)
	}
	name, _ := e.session.CategoryIndex().Display(txn.CategoryID)
	fmt.Printf("  Added %s  %s  %s  %s\n",
		cli.FormatSigned(txn, e.cfg.Display.CurrencySymbol),
		txn.Description,
		cli.Muted(name+" · "+cli.FormatDate(txn.Date, e.cfg.Display.DateFormat)),
		cli.Muted(txn.ID),
	)
	return nil
}

func draftFromFlags(cats []model.Category) (ledger.Draft, error) {
	kind, ok := model.ParseTransactionType(addType)
	if !ok {
		return ledger.Draft{}, fmt.Errorf("--type %q: want income or expense", addType)
	}
	if addCategory == "" {
		return ledger.Draft{}, errors.New("--category is required")
	}
	cat, err := resolveCategory(cats, addCategory)
	if err != nil {
		return ledger.Draft{}, err
	}
	amount, err := ledger.ParseAmount(addAmount)
	if err != nil {
		return ledger.Draft{}, fmt.Errorf("--amount %q: %w", addAmount, err)
	}
	date, err := model.ParseDate(strings.TrimSpace(addDate))
	if err != nil {
		return ledger.Draft{}, fmt.Errorf("--date: %w", err)
	}
	return ledger.Draft{
		CategoryID:  cat.ID,
		Amount:      amount,
		Type:        kind,
		Description: addDescription,
		Date:        date,
	}, nil
}

// runAddForm fills the add flags from an interactive form, using the
// current flag values as defaults.
func runAddForm(cats []model.Category) error {
	kind, ok := model.ParseTransactionType(addType)
	if !ok {
		kind = model.Expense
	}
	var categoryID string
	if c, err := resolveCategory(cats, addCategory); err == nil {
		categoryID = c.ID
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[model.TransactionType]().
				Title("Type").
				Options(
					huh.NewOption(model.Expense.Label(), model.Expense),
					huh.NewOption(model.Income.Label(), model.Income),
				).
				Value(&kind),
			huh.NewSelect[string]().
				Title("Category").
				OptionsFunc(func() []huh.Option[string] {
					var opts []huh.Option[string]
					for _, c := range catalog.ByType(cats, kind) {
						opts = append(opts, huh.NewOption(c.Name, c.ID))
					}
					return opts
				}, &kind).
				Value(&categoryID),
			huh.NewInput().
				Title("Amount").
				Value(&addAmount).
				Validate(func(s string) error {
					_, err := ledger.ParseAmount(s)
					return err
				}),
			huh.NewInput().
				Title("Description").
				Value(&addDescription).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return ledger.ErrEmptyDescription
					}
					return nil
				}),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&addDate).
				Validate(func(s string) error {
					_, err := model.ParseDate(strings.TrimSpace(s))
					return err
				}),
		).Title("Add Transaction"),
	)
	if err := form.Run(); err != nil {
		return err
	}

	addType = string(kind)
	addCategory = categoryID
	return nil
}
