// Package tui implements the interactive fintrack dashboard.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/fintrack/internal/app"
	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/config"
	"github.com/theirongolddev/fintrack/internal/log"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"
)

const (
	tabTransactions = iota
	tabBreakdown
	tabBudgets
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5
)

// Options configures NewApp.
type Options struct {
	Config   config.Config
	Logger   *log.Logger
	FirstRun bool // show the setup form before the dashboard
}

// App is the root bubbletea model.
type App struct {
	ctx     context.Context
	session *app.Session
	cfg     config.Config
	log     *log.Logger

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	cursor    int // selected row on the transactions tab

	// Add-transaction form (huh)
	addForm *huh.Form
	draft   *draftValues

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues

	pendingDelete string
	status        string
	statusErr     bool
}

// NewApp builds the dashboard over an open session.
func NewApp(ctx context.Context, sess *app.Session, opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	a := App{
		ctx:     ctx,
		session: sess,
		cfg:     opts.Config,
		log:     logger.WithComponent(log.ComponentTUI),
	}
	if a.cfg.Display.CurrencySymbol == "" {
		a.cfg.Display = config.DefaultConfig().Display
	}
	if opts.FirstRun {
		a.setupVals = newSetupValues(a.cfg)
		a.setupForm = newSetupForm(a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(a.formWidth())
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.addForm != nil || a.setupForm != nil {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := components.TabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return a, tea.Quit
		}
		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		if a.addForm != nil {
			if key == "esc" {
				a.closeAddForm("Add cancelled", false)
				return a, nil
			}
			return a.updateAddForm(msg)
		}
		return a.handleKey(key)
	}

	// Forward unhandled messages (cursor blinks, etc.) to an open form
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}
	return a, nil
}

func (a App) handleKey(key string) (tea.Model, tea.Cmd) {
	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	confirming := a.pendingDelete
	a.pendingDelete = ""

	switch key {
	case "q":
		return a, tea.Quit

	case "left", "shift+tab":
		a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)

	case "h", "[":
		a.session.PrevMonth()
		a.monthChanged()
	case "l", "]":
		a.session.NextMonth()
		a.monthChanged()
	case "c":
		a.session.ResetMonth()
		a.monthChanged()

	case "j", "down":
		if a.activeTab == tabTransactions && a.cursor < len(a.monthTransactions())-1 {
			a.cursor++
		}
	case "k", "up":
		if a.activeTab == tabTransactions && a.cursor > 0 {
			a.cursor--
		}
	case "home":
		a.cursor = 0
	case "end", "G":
		if n := len(a.monthTransactions()); n > 0 {
			a.cursor = n - 1
		}

	case "a":
		return a.openAddForm()

	case "d", "x":
		if a.activeTab != tabTransactions {
			return a, nil
		}
		txns := a.monthTransactions()
		if a.cursor >= len(txns) {
			return a, nil
		}
		sel := txns[a.cursor]
		if confirming != sel.ID {
			a.pendingDelete = sel.ID
			a.setStatus(fmt.Sprintf("Delete %q? Press %s again to confirm", cli.Truncate(sel.Description, 24), key), false)
			return a, nil
		}
		if _, err := a.session.DeleteTransaction(a.ctx, sel.ID); err != nil {
			a.setStatus(err.Error(), true)
			return a, nil
		}
		a.setStatus("Deleted "+cli.Truncate(sel.Description, 30), false)
		a.clampCursor()

	default:
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

func (a *App) monthChanged() {
	a.cursor = 0
	a.status = ""
}

func (a *App) clampCursor() {
	n := len(a.monthTransactions())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

func (a App) monthTransactions() []model.Transaction {
	return a.session.TransactionsForMonth(a.session.ViewedMonth())
}

func (a App) money(v float64) string {
	return cli.FormatMoney(v, a.cfg.Display.CurrencySymbol)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) formWidth() int {
	w := a.contentWidth() - 10
	if w > 70 {
		w = 70
	}
	return w
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.setupForm != nil {
		return a.viewSetup()
	}
	if a.addForm != nil {
		return a.viewAddForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  fintrack needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Text).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Blue).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.Muted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.Dim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings [][2]string
	}{
		{"Navigation", [][2]string{
			{"t b g", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"h l  [ ]", "Previous / Next month"},
			{"c", "Back to current month"},
			{"j k", "Move through transactions"},
		}},
		{"Actions", [][2]string{
			{"a", "Add a transaction"},
			{"d d", "Delete selected transaction"},
			{"Esc", "Cancel the add form"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(s.title))
		b.WriteString("\n")
		for _, bind := range s.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind[0])),
				descStyle.Render(bind[1]))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHeader() string {
	t := theme.Active
	m := a.session.ViewedMonth()

	rowStyle := lipgloss.NewStyle().Background(t.Surface).Width(a.width)
	arrowStyle := lipgloss.NewStyle().Foreground(t.Dim).Background(t.Surface)
	monthStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.Muted).Background(t.Surface)

	count := len(a.monthTransactions())
	noun := "transactions"
	if count == 1 {
		noun = "transaction"
	}
	label := arrowStyle.Render(" ◀ ") + monthStyle.Render(m.Label()) + arrowStyle.Render(" ▶") +
		mutedStyle.Render(fmt.Sprintf("   %d %s", count, noun))
	if m != a.session.Today().YearMonth() {
		label += mutedStyle.Render("   [c] current month")
	}

	return components.RenderTabBar(a.activeTab, a.width) + "\n" + rowStyle.Render(label)
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := a.viewHeader()
	statusBar := components.RenderStatusBar(w, a.status, a.statusErr)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabTransactions:
		content = a.renderTransactionsTab(cw, contentH)
	case tabBreakdown:
		content = a.renderBreakdownTab(cw)
	case tabBudgets:
		content = a.renderBudgetsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// renderStatCards renders income, expenses and balance with a change
// against the previous month.
func (a App) renderStatCards(cw int) string {
	t := theme.Active
	m := a.session.ViewedMonth()
	cur := a.session.MonthlyStats(m)
	prev := a.session.MonthlyStats(m.Prev())
	sym := a.cfg.Display.CurrencySymbol
	vs := "vs " + m.Prev().Month.String()[:3]

	balanceColor := t.Income
	if cur.Balance < 0 {
		balanceColor = t.Expense
	}

	return components.MetricCardRow([]components.Metric{
		{Label: "Income", Value: a.money(cur.TotalIncome), Delta: cli.FormatDelta(cur.TotalIncome, prev.TotalIncome, sym) + " " + vs, Color: t.Income},
		{Label: "Expenses", Value: a.money(cur.TotalExpenses), Delta: cli.FormatDelta(cur.TotalExpenses, prev.TotalExpenses, sym) + " " + vs, Color: t.Expense},
		{Label: "Balance", Value: a.money(cur.Balance), Delta: cli.FormatDelta(cur.Balance, prev.Balance, sym) + " " + vs, Color: balanceColor},
	}, cw)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
