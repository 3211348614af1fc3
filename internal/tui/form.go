package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/fintrack/internal/catalog"
	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/tui/theme"
)

// draftValues holds the raw field values bound to the add form.
type draftValues struct {
	kind        model.TransactionType
	categoryID  string
	amount      string
	description string
	date        string
}

// toDraft converts the form values. Each field was validated by the form,
// so errors here only surface if validation and parsing disagree.
func (v *draftValues) toDraft() (ledger.Draft, error) {
	amount, err := ledger.ParseAmount(v.amount)
	if err != nil {
		return ledger.Draft{}, err
	}
	date, err := model.ParseDate(strings.TrimSpace(v.date))
	if err != nil {
		return ledger.Draft{}, err
	}
	return ledger.Draft{
		CategoryID:  v.categoryID,
		Amount:      amount,
		Type:        v.kind,
		Description: v.description,
		Date:        date,
	}, nil
}

func newAddForm(cats []model.Category, today model.Date, v *draftValues) *huh.Form {
	v.kind = model.Expense
	v.date = today.String()

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[model.TransactionType]().
				Title("Type").
				Options(
					huh.NewOption(model.Expense.Label(), model.Expense),
					huh.NewOption(model.Income.Label(), model.Income),
				).
				Value(&v.kind),

			huh.NewSelect[string]().
				Title("Category").
				OptionsFunc(func() []huh.Option[string] {
					var opts []huh.Option[string]
					for _, c := range catalog.ByType(cats, v.kind) {
						opts = append(opts, huh.NewOption(c.Name, c.ID))
					}
					return opts
				}, &v.kind).
				Value(&v.categoryID).
				Validate(func(id string) error {
					if id == "" {
						return ledger.ErrMissingCategory
					}
					return nil
				}),

			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Value(&v.amount).
				Validate(func(s string) error {
					_, err := ledger.ParseAmount(s)
					return err
				}),

			huh.NewInput().
				Title("Description").
				Value(&v.description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return ledger.ErrEmptyDescription
					}
					return nil
				}),

			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&v.date).
				Validate(func(s string) error {
					_, err := model.ParseDate(strings.TrimSpace(s))
					return err
				}),
		).Title("Add Transaction"),
	).WithShowHelp(true)
}

func (a App) openAddForm() (tea.Model, tea.Cmd) {
	a.draft = &draftValues{}
	a.addForm = newAddForm(a.session.Categories(), a.session.Today(), a.draft).WithWidth(a.formWidth())
	a.status = ""
	return a, a.addForm.Init()
}

func (a *App) closeAddForm(msg string, isErr bool) {
	a.addForm = nil
	a.draft = nil
	a.setStatus(msg, isErr)
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	switch a.addForm.State {
	case huh.StateAborted:
		a.closeAddForm("Add cancelled", false)
		return a, nil
	case huh.StateCompleted:
		return a.submitDraft()
	}
	return a, cmd
}

func (a App) submitDraft() (tea.Model, tea.Cmd) {
	d, err := a.draft.toDraft()
	if err != nil {
		a.closeAddForm(err.Error(), true)
		return a, nil
	}
	txn, err := a.session.AddTransaction(a.ctx, d)
	if err != nil {
		a.closeAddForm(err.Error(), true)
		return a, nil
	}

	// Follow the new transaction if it landed in another month.
	if m := txn.Date.YearMonth(); m != a.session.ViewedMonth() {
		a.session.SetViewedMonth(m)
	}
	a.activeTab = tabTransactions
	a.cursor = 0
	for i, t := range a.monthTransactions() {
		if t.ID == txn.ID {
			a.cursor = i
			break
		}
	}
	a.closeAddForm("Added "+cli.FormatSigned(txn, a.cfg.Display.CurrencySymbol)+" "+cli.Truncate(txn.Description, 24), false)
	return a, nil
}

func (a App) viewAddForm() string {
	t := theme.Active
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 2)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(a.addForm.View()),
		lipgloss.WithWhitespaceBackground(t.Background))
}
