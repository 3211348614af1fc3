package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/cli"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "List the category catalog",
	RunE:    runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	e, err := openEnv(context.Background(), nil)
	if err != nil {
		return err
	}
	defer e.Close()

	cats := e.session.Categories()
	if flagJSON {
		return printJSON(cats)
	}

	var rows [][]string
	for _, c := range cats {
		budget := cli.Muted("-")
		if c.HasBudget() {
			budget = e.money(c.Budget())
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("●")
		rows = append(rows, []string{
			swatch + " " + c.Name,
			c.Type.Label(),
			c.Icon,
			cli.Muted(c.ID),
			budget,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:    fmt.Sprintf("Categories (%d)", len(cats)),
		Headers:  []string{"Name", "Type", "Icon", "ID", "Budget"},
		Rows:     rows,
		TextCols: 4,
	}))
	return nil
}
