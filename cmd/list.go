package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/catalog"
	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/pipeline"
)

var (
	listType     string
	listCategory string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the month's transactions, newest first",
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "Only income or expense")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only this category (id or name)")
	rootCmd.AddCommand(listCmd)
}

// listRow is the JSON shape of one listed transaction.
type listRow struct {
	model.Transaction
	CategoryName  string `json:"categoryName"`
	CategoryColor string `json:"categoryColor"`
}

func runList(_ *cobra.Command, _ []string) error {
	e, err := openEnv(context.Background(), nil)
	if err != nil {
		return err
	}
	defer e.Close()

	month := e.session.ViewedMonth()
	txns := e.session.TransactionsForMonth(month)

	if listType != "" {
		kind, ok := model.ParseTransactionType(listType)
		if !ok {
			return fmt.Errorf("--type %q: want income or expense", listType)
		}
		txns = pipeline.FilterByType(txns, kind)
	}
	if listCategory != "" {
		cat, err := resolveCategory(e.session.Categories(), listCategory)
		if err != nil {
			return err
		}
		txns = pipeline.FilterByCategory(txns, cat.ID)
	}

	idx := e.session.CategoryIndex()
	if flagJSON {
		rows := make([]listRow, 0, len(txns))
		for _, t := range txns {
			name, color := idx.Display(t.CategoryID)
			rows = append(rows, listRow{Transaction: t, CategoryName: name, CategoryColor: color})
		}
		return printJSON(rows)
	}

	if len(txns) == 0 {
		fmt.Printf("\n  No transactions in %s.\n", month.Label())
		return nil
	}

	sym := e.cfg.Display.CurrencySymbol
	var rows [][]string
	for _, t := range txns {
		name, _ := idx.Display(t.CategoryID)
		amount := cli.Income(cli.FormatSigned(t, sym))
		if t.Type == model.Expense {
			amount = cli.Expense(cli.FormatSigned(t, sym))
		}
		rows = append(rows, []string{
			cli.FormatDate(t.Date, e.cfg.Display.DateFormat),
			cli.Truncate(t.Description, 36),
			name,
			cli.Muted(t.ID),
			amount,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:    fmt.Sprintf("Transactions  %s (%d)", month.Label(), len(txns)),
		Headers:  []string{"Date", "Description", "Category", "ID", "Amount"},
		Rows:     rows,
		TextCols: 4,
	}))
	return nil
}

// resolveCategory accepts a category id or a case-insensitive name.
func resolveCategory(cats []model.Category, ref string) (model.Category, error) {
	if c, ok := catalog.Find(cats, ref); ok {
		return c, nil
	}
	if c, ok := catalog.FindByName(cats, ref); ok {
		return c, nil
	}
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	return model.Category{}, fmt.Errorf("unknown category %q (have: %s)", ref, strings.Join(names, ", "))
}
