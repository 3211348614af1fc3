package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"
)

func (a App) renderBreakdownTab(cw int) string {
	t := theme.Active
	month := a.session.ViewedMonth()
	stats := a.session.MonthlyStats(month)

	var b strings.Builder
	b.WriteString(a.renderStatCards(cw))
	b.WriteString("\n")

	mutedStyle := lipgloss.NewStyle().Foreground(t.Muted).Background(t.Surface)
	if len(stats.CategoryBreakdown) == 0 {
		b.WriteString(components.ContentCard("Spending by Category",
			mutedStyle.Render("No expense data for "+month.Label()), cw))
		return b.String()
	}

	innerW := components.CardInnerWidth(cw)
	const (
		nameW   = 20
		pctW    = 7
		amountW = 14
	)
	barW := innerW - nameW - pctW - amountW - 2
	if barW < 10 {
		barW = 10
	}

	textStyle := lipgloss.NewStyle().Foreground(t.Text).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)
	var body strings.Builder
	for i, ct := range stats.CategoryBreakdown {
		if i > 0 {
			body.WriteString("\n")
		}
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(ct.Color)).Background(t.Surface).Render("● ")
		body.WriteString(dot)
		body.WriteString(textStyle.Render(fmt.Sprintf("%-*s", nameW-2, cli.Truncate(ct.CategoryName, nameW-3))))
		body.WriteString(components.ShareBar(ct.Percentage, ct.Color, barW))
		body.WriteString(spaceStyle.Render(" "))
		body.WriteString(mutedStyle.Render(fmt.Sprintf("%*s", pctW, cli.FormatPercent(ct.Percentage))))
		body.WriteString(textStyle.Bold(true).Render(fmt.Sprintf("%*s", amountW, a.money(ct.Amount))))
	}
	b.WriteString(components.ContentCard("Spending by Category", body.String(), cw))
	b.WriteString("\n")

	daily := a.session.DailyExpenses(month)
	peak, peakDay := 0.0, 0
	for i, v := range daily {
		if v > peak {
			peak, peakDay = v, i+1
		}
	}
	spark := components.Sparkline(daily, t.Expense)
	summary := mutedStyle.Render(fmt.Sprintf("Peak %s on day %d", a.money(peak), peakDay))
	b.WriteString(components.ContentCard("Daily Spend", spark+"\n"+summary, cw))

	return b.String()
}
