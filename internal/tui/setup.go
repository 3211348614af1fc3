package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/fintrack/internal/config"
	"github.com/theirongolddev/fintrack/internal/tui/theme"
)

// setupValues holds the values bound to the first-run form.
type setupValues struct {
	currency   string
	dateFormat string
	theme      string
}

func newSetupValues(cfg config.Config) *setupValues {
	return &setupValues{
		currency:   cfg.Display.CurrencySymbol,
		dateFormat: cfg.Display.DateFormat,
		theme:      cfg.Appearance.Theme,
	}
}

func newSetupForm(v *setupValues) *huh.Form {
	var themeOpts []huh.Option[string]
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to fintrack!").
				Description("Let's set up your dashboard. Everything here can be changed later in config.toml."),

			huh.NewSelect[string]().
				Title("Currency symbol").
				Options(
					huh.NewOption("₹  Indian rupee", "₹"),
					huh.NewOption("$  Dollar", "$"),
					huh.NewOption("€  Euro", "€"),
					huh.NewOption("£  Pound", "£"),
					huh.NewOption("¥  Yen", "¥"),
				).
				Value(&v.currency),

			huh.NewSelect[string]().
				Title("Date format").
				Options(
					huh.NewOption("Mar 15, 2024", "Jan 2, 2006"),
					huh.NewOption("15 Mar 2024", "2 Jan 2006"),
					huh.NewOption("2024-03-15", "2006-01-02"),
					huh.NewOption("15/03/2024", "02/01/2006"),
					huh.NewOption("03/15/2024", "01/02/2006"),
				).
				Value(&v.dateFormat),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.theme),
		),
	).WithShowHelp(false)
}

// apply copies the chosen values onto cfg and activates the theme.
func (v *setupValues) apply(cfg *config.Config) {
	cfg.Display.CurrencySymbol = v.currency
	cfg.Display.DateFormat = v.dateFormat
	cfg.Appearance.Theme = v.theme
	theme.SetActive(v.theme)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.setupVals.apply(&a.cfg)
		if err := config.Save(a.cfg); err != nil {
			a.log.Failed(a.ctx, "save config", err)
			a.setStatus("Could not save config: "+err.Error(), true)
		} else {
			a.setStatus("Saved "+config.Path(), false)
		}
		a.setupForm = nil
		a.setupVals = nil
		return a, nil
	case huh.StateAborted:
		a.setupForm = nil
		a.setupVals = nil
		a.setStatus("Setup skipped, using defaults", false)
		return a, nil
	}
	return a, cmd
}

func (a App) viewSetup() string {
	t := theme.Active
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 3)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(a.setupForm.View()),
		lipgloss.WithWhitespaceBackground(t.Background))
}
