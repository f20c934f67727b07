package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the gallery chrome. Switch colors come from the
// presets, not the theme, so a theme change never recolors the switches
// themselves.
type Theme struct {
	Name string

	Background string
	Surface    string
	Selection  string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		LabelSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color(t.Selection)).
			Bold(true),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		OnBadge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Success)).
			Padding(0, 1),

		OffBadge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		PendingText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		VetoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Title         lipgloss.Style
	Label         lipgloss.Style
	LabelSelected lipgloss.Style
	MutedText     lipgloss.Style
	FaintText     lipgloss.Style
	OnBadge       lipgloss.Style
	OffBadge      lipgloss.Style
	PendingText   lipgloss.Style
	VetoText      lipgloss.Style
	Footer        lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		Selection:  "#2b3b51", // sel0

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#0f172a", // slate-900
		Surface:    "#1e293b", // slate-800
		Selection:  "#334155", // slate-700

		Text:    "#e2e8f0", // slate-200
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#4ade80", // green-400
		Warning: "#facc15", // yellow-400
		Danger:  "#f87171", // red-400
	}
}
