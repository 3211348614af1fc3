package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/cli"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Spending against each category budget",
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	e, err := openEnv(context.Background(), nil)
	if err != nil {
		return err
	}
	defer e.Close()

	month := e.session.ViewedMonth()
	lines := e.session.BudgetStatus(month)
	if flagJSON {
		return printJSON(lines)
	}

	if len(lines) == 0 {
		fmt.Println("\n  No budgets set. Give an expense category a budgetAmount to track it.")
		return nil
	}

	var rows [][]string
	var spent, budget float64
	for _, l := range lines {
		spent += l.Spent
		budget += l.Budget

		left := e.money(l.Remaining)
		if l.IsOverBudget {
			left = cli.Expense("-" + e.money(-l.Remaining))
		}
		rows = append(rows, []string{
			l.Category.Name,
			e.money(l.Spent),
			e.money(l.Budget),
			cli.RenderBudgetBar(l.PercentageCapped, l.IsOverBudget, 20) + " " + fmt.Sprintf("%3.0f%%", l.PercentageCapped),
			left,
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", e.money(spent), e.money(budget), "", e.money(budget - spent)})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Budgets  " + month.Label(),
		Headers: []string{"Category", "Spent", "Budget", "Used", "Left"},
		Rows:    rows,
	}))
	return nil
}
