package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the live terminal view.
type Theme struct {
	Name   string
	Arm    lipgloss.Color
	Bob    lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
}

var (
	// ThemeSky mirrors the desktop window's pale blue look.
	ThemeSky = Theme{
		Name:   "sky",
		Arm:    lipgloss.Color("250"),
		Bob:    lipgloss.Color("117"),
		Accent: lipgloss.Color("39"),
		Text:   lipgloss.Color("255"),
		Muted:  lipgloss.Color("245"),
	}

	ThemeNight = Theme{
		Name:   "night",
		Arm:    lipgloss.Color("240"),
		Bob:    lipgloss.Color("141"),
		Accent: lipgloss.Color("205"),
		Text:   lipgloss.Color("252"),
		Muted:  lipgloss.Color("238"),
	}

	ThemePhosphor = Theme{
		Name:   "phosphor",
		Arm:    lipgloss.Color("28"),
		Bob:    lipgloss.Color("46"),
		Accent: lipgloss.Color("82"),
		Text:   lipgloss.Color("46"),
		Muted:  lipgloss.Color("22"),
	}

	Themes = []Theme{ThemeSky, ThemeNight, ThemePhosphor}
)

func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSky
}

// NextTheme cycles to the theme after the named one.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
