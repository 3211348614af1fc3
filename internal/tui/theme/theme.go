// Package theme defines color themes for the fintrack TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette holds the raw colors a theme is built from.
type Palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Highlight  lipgloss.Color
	Border     lipgloss.Color
	Dim        lipgloss.Color
	Muted      lipgloss.Color
	Text       lipgloss.Color
	Accent     lipgloss.Color
	Green      lipgloss.Color
	Yellow     lipgloss.Color
	Orange     lipgloss.Color
	Red        lipgloss.Color
	Blue       lipgloss.Color
}

// Theme maps palette colors onto the roles the dashboard renders.
type Theme struct {
	Name string
	Palette

	Income   lipgloss.Color // positive amounts, healthy budgets
	Expense  lipgloss.Color // negative amounts
	Warning  lipgloss.Color // budgets nearing the limit
	Over     lipgloss.Color // budgets exceeded
	Selected lipgloss.Color // background of the cursor row
}

func build(name string, p Palette) Theme {
	return Theme{
		Name:     name,
		Palette:  p,
		Income:   p.Green,
		Expense:  p.Red,
		Warning:  p.Orange,
		Over:     p.Red,
		Selected: p.Highlight,
	}
}

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = build("flexoki-dark", Palette{
	Background: "#100F0F",
	Surface:    "#1C1B1A",
	Highlight:  "#282726",
	Border:     "#403E3C",
	Dim:        "#575653",
	Muted:      "#878580",
	Text:       "#FFFCF0",
	Accent:     "#3AA99F",
	Green:      "#879A39",
	Yellow:     "#D0A215",
	Orange:     "#DA702C",
	Red:        "#D14D41",
	Blue:       "#4385BE",
})

// CatppuccinMocha is a warm pastel theme.
var CatppuccinMocha = build("catppuccin-mocha", Palette{
	Background: "#1E1E2E",
	Surface:    "#313244",
	Highlight:  "#45475A",
	Border:     "#585B70",
	Dim:        "#6C7086",
	Muted:      "#A6ADC8",
	Text:       "#CDD6F4",
	Accent:     "#89B4FA",
	Green:      "#A6E3A1",
	Yellow:     "#F9E2AF",
	Orange:     "#FAB387",
	Red:        "#F38BA8",
	Blue:       "#89B4FA",
})

// TokyoNight is a cool blue/purple theme.
var TokyoNight = build("tokyo-night", Palette{
	Background: "#1A1B26",
	Surface:    "#24283B",
	Highlight:  "#343A52",
	Border:     "#565F89",
	Dim:        "#565F89",
	Muted:      "#A9B1D6",
	Text:       "#C0CAF5",
	Accent:     "#7AA2F7",
	Green:      "#9ECE6A",
	Yellow:     "#E0AF68",
	Orange:     "#FF9E64",
	Red:        "#F7768E",
	Blue:       "#7AA2F7",
})

// Terminal uses ANSI 16 colors only.
var Terminal = build("terminal", Palette{
	Background: "0",
	Surface:    "0",
	Highlight:  "8",
	Border:     "8",
	Dim:        "8",
	Muted:      "7",
	Text:       "15",
	Accent:     "6",
	Green:      "2",
	Yellow:     "3",
	Orange:     "3",
	Red:        "1",
	Blue:       "4",
})

// Active is the currently selected theme.
var Active = FlexokiDark

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// BudgetColor picks the bar color for a budget at pct (0-100).
func (t Theme) BudgetColor(pct float64, over bool) lipgloss.Color {
	switch {
	case over:
		return t.Over
	case pct >= 80:
		return t.Warning
	case pct >= 50:
		return t.Yellow
	default:
		return t.Income
	}
}
