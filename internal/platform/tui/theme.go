package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy/internal/core"
)

// Theme contains every lipgloss style the frontend uses.
type Theme struct {
	// Cell colors for the game screen, indexed by core.Color
	Palette [core.NumColors]lipgloss.Style

	// Menu
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	// Scoreboard
	Border        lipgloss.Style
	TableHeader   lipgloss.Style
	TableSelected lipgloss.Style
	Empty         lipgloss.Style

	// Footer
	Help lipgloss.Style
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// DefaultTheme returns the 256-color theme.
func DefaultTheme() Theme {
	t := Theme{
		MenuTitle:       fg("51").Bold(true),
		MenuItemNormal:  fg("252"),
		MenuItemActive:  fg("226").Bold(true),
		MenuDescription: fg("245"),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		TableHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true),
		TableSelected: fg("229").Background(lipgloss.Color("57")),
		Empty:         fg("241").Italic(true).Padding(2, 4),

		Help: fg("241"),
	}

	codes := map[core.Color]string{
		core.ColorRed:           "1",
		core.ColorGreen:         "2",
		core.ColorYellow:        "3",
		core.ColorBlue:          "4",
		core.ColorMagenta:       "5",
		core.ColorCyan:          "6",
		core.ColorWhite:         "7",
		core.ColorBrightRed:     "9",
		core.ColorBrightGreen:   "10",
		core.ColorBrightYellow:  "11",
		core.ColorBrightBlue:    "12",
		core.ColorBrightMagenta: "13",
		core.ColorBrightCyan:    "14",
		core.ColorBrightWhite:   "15",
		core.ColorOrange:        "208",
		core.ColorGray:          "245",
	}
	t.Palette[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range codes {
		t.Palette[c] = fg(code)
	}
	return t
}

// MonochromeTheme drops all cell colors, for terminals without color support.
func MonochromeTheme() Theme {
	t := DefaultTheme()
	for i := range t.Palette {
		t.Palette[i] = lipgloss.NewStyle()
	}
	t.MenuItemActive = lipgloss.NewStyle().Bold(true).Reverse(true)
	t.TableSelected = lipgloss.NewStyle().Reverse(true)
	return t
}

// ThemeByName returns a theme by its CLI name ("default" or "mono").
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "mono", "monochrome":
		return MonochromeTheme(), true
	default:
		return Theme{}, false
	}
}

// style returns the cell style for a color, falling back to the default.
func (t Theme) style(c core.Color) lipgloss.Style {
	if int(c) < len(t.Palette) {
		return t.Palette[c]
	}
	return t.Palette[core.ColorDefault]
}
