package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"
)

func (a App) renderTransactionsTab(cw, h int) string {
	t := theme.Active
	month := a.session.ViewedMonth()
	txns := a.monthTransactions()

	cards := a.renderStatCards(cw)
	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n")

	title := "Transactions · " + month.Label()
	if len(txns) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.Muted).Background(t.Surface).
			Render(fmt.Sprintf("No transactions for %s. Press a to add one.", month.Label()))
		b.WriteString(components.ContentCard(title, empty, cw))
		return b.String()
	}

	// Card border, title and column header take 4 rows.
	visible := h - lipgloss.Height(cards) - 4
	if visible < 1 {
		visible = 1
	}
	offset := 0
	if a.cursor >= visible {
		offset = a.cursor - visible + 1
	}
	end := offset + visible
	if end > len(txns) {
		end = len(txns)
	}

	innerW := components.CardInnerWidth(cw)
	idx := a.session.CategoryIndex()
	sym := a.cfg.Display.CurrencySymbol

	const (
		dateW   = 13
		catW    = 18
		amountW = 14
	)
	descW := innerW - dateW - catW - amountW - 4
	if descW < 10 {
		descW = 10
	}

	headStyle := lipgloss.NewStyle().Foreground(t.Dim).Background(t.Surface)
	var body strings.Builder
	body.WriteString(headStyle.Render(fmt.Sprintf("  %-*s%-*s%-*s%*s",
		dateW, "Date", descW, "Description", catW, "Category", amountW, "Amount")))

	for i := offset; i < end; i++ {
		txn := txns[i]
		bg := t.Surface
		marker := "  "
		if i == a.cursor {
			bg = t.Selected
			marker = "▸ "
		}
		name, color := idx.Display(txn.CategoryID)
		amountColor := t.Income
		if txn.Type == model.Expense {
			amountColor = t.Expense
		}

		base := lipgloss.NewStyle().Background(bg)
		row := base.Foreground(t.Accent).Render(marker) +
			base.Foreground(t.Muted).Render(fmt.Sprintf("%-*s", dateW, cli.FormatDate(txn.Date, a.cfg.Display.DateFormat))) +
			base.Foreground(t.Text).Render(fmt.Sprintf("%-*s", descW, cli.Truncate(txn.Description, descW-1))) +
			base.Foreground(lipgloss.Color(color)).Render("● ") +
			base.Foreground(t.Muted).Render(fmt.Sprintf("%-*s", catW-2, cli.Truncate(name, catW-3))) +
			base.Foreground(amountColor).Bold(true).Render(fmt.Sprintf("%*s", amountW, cli.FormatSigned(txn, sym)))

		body.WriteString("\n")
		body.WriteString(lipgloss.PlaceHorizontal(innerW, lipgloss.Left, row,
			lipgloss.WithWhitespaceBackground(bg)))
	}

	if len(txns) > visible {
		title += fmt.Sprintf("  (%d-%d of %d)", offset+1, end, len(txns))
	}
	b.WriteString(components.ContentCard(title, body.String(), cw))
	return b.String()
}
