package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/cli"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly totals and spending by category",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	e, err := openEnv(context.Background(), nil)
	if err != nil {
		return err
	}
	defer e.Close()

	month := e.session.ViewedMonth()
	stats := e.session.MonthlyStats(month)
	if flagJSON {
		return printJSON(stats)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("FINTRACK  " + strings.ToUpper(month.Label())))
	fmt.Println()

	if stats.TransactionCount == 0 {
		fmt.Printf("  No transactions in %s.\n", month.Label())
		fmt.Println("  Record one with `fintrack add` or open `fintrack tui`.")
		return nil
	}

	prev := e.session.MonthlyStats(month.Prev())
	sym := e.cfg.Display.CurrencySymbol
	vs := func(cur, old float64) string {
		if prev.TransactionCount == 0 {
			return ""
		}
		return cli.Muted(fmt.Sprintf("%s vs %s", cli.FormatDelta(cur, old, sym), month.Prev().Month.String()[:3]))
	}

	balance := cli.Income(e.money(stats.Balance))
	if stats.Balance < 0 {
		balance = cli.Expense(e.money(stats.Balance))
	}

	rows := [][]string{
		{"Income", cli.Income(e.money(stats.TotalIncome)), vs(stats.TotalIncome, prev.TotalIncome)},
		{"Expenses", cli.Expense(e.money(stats.TotalExpenses)), vs(stats.TotalExpenses, prev.TotalExpenses)},
		{"---"},
		{"Balance", balance, vs(stats.Balance, prev.Balance)},
		{"Transactions", cli.FormatNumber(int64(stats.TransactionCount)), ""},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Amount", "Change"},
		Rows:    rows,
	}))

	if len(stats.CategoryBreakdown) == 0 {
		return nil
	}

	fmt.Println()
	maxAmt := stats.CategoryBreakdown[0].Amount
	var catRows [][]string
	for _, ct := range stats.CategoryBreakdown {
		catRows = append(catRows, []string{
			ct.CategoryName,
			e.money(ct.Amount),
			cli.FormatPercent(ct.Percentage),
			cli.RenderShareBar(ct.Amount, maxAmt, 20, ct.Color),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Spending by Category",
		Headers: []string{"Category", "Amount", "Share", ""},
		Rows:    catRows,
	}))

	fmt.Println()
	fmt.Printf("  Daily spend  %s\n", cli.RenderSparkline(e.session.DailyExpenses(month)))

	if over := overBudgetNames(e); len(over) > 0 {
		fmt.Println()
		fmt.Println("  " + cli.Warn("Over budget: "+strings.Join(over, ", ")))
	}
	return nil
}

func overBudgetNames(e *env) []string {
	var names []string
	for _, l := range e.session.BudgetStatus(e.session.ViewedMonth()) {
		if l.IsOverBudget {
			names = append(names, l.Category.Name)
		}
	}
	return names
}
