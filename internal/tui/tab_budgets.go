package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/pipeline"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"
)

func (a App) renderBudgetsTab(cw int) string {
	t := theme.Active
	month := a.session.ViewedMonth()
	lines := a.session.BudgetStatus(month)

	mutedStyle := lipgloss.NewStyle().Foreground(t.Muted).Background(t.Surface)
	if len(lines) == 0 {
		return components.ContentCard("Budgets · "+month.Label(),
			mutedStyle.Render("No budgets set yet. Add a budgetAmount to an expense category."), cw)
	}

	var spent, budget float64
	for _, l := range lines {
		spent += l.Spent
		budget += l.Budget
	}
	over := pipeline.OverBudget(lines)
	overColor := t.Income
	if len(over) > 0 {
		overColor = t.Over
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Budgeted", Value: a.money(budget)},
		{Label: "Spent", Value: a.money(spent), Color: t.Expense},
		{Label: "Over Budget", Value: fmt.Sprintf("%d of %d", len(over), len(lines)), Color: overColor},
	}, cw))
	b.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	const (
		nameW   = 18
		figureW = 26
		leftW   = 20
	)
	barW := innerW - nameW - figureW - leftW
	if barW < 12 {
		barW = 12
	}

	textStyle := lipgloss.NewStyle().Foreground(t.Text).Background(t.Surface)
	var body strings.Builder
	for i, l := range lines {
		if i > 0 {
			body.WriteString("\n")
		}
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(l.Category.Color)).Background(t.Surface).Render("● ")
		body.WriteString(dot)
		body.WriteString(textStyle.Render(fmt.Sprintf("%-*s", nameW-2, cli.Truncate(l.Category.Name, nameW-3))))
		body.WriteString(mutedStyle.Render(fmt.Sprintf("%-*s", figureW, a.money(l.Spent)+" / "+a.money(l.Budget))))
		body.WriteString(components.BudgetBar(l.PercentageCapped, l.IsOverBudget, barW))

		left := "  Left " + a.money(l.Remaining)
		leftStyle := mutedStyle
		if l.IsOverBudget {
			left = "  Over by " + a.money(-l.Remaining)
			leftStyle = leftStyle.Foreground(t.Over).Bold(true)
		}
		body.WriteString(leftStyle.Render(fmt.Sprintf("%-*s", leftW, left)))
	}
	b.WriteString(components.ContentCard("Budgets · "+month.Label(), body.String(), cw))
	return b.String()
}
