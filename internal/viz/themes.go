package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the wheel and panel colours.
type Theme struct {
	Name      string
	Spoke     lipgloss.Color
	Highlight lipgloss.Color
	Ring      lipgloss.Color
	Center    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color
	Warning   lipgloss.Color
}

var (
	ThemeMatrix = Theme{
		Name:      "matrix",
		Spoke:     lipgloss.Color("#00ff00"),
		Highlight: lipgloss.Color("#ffff00"),
		Ring:      lipgloss.Color("#005000"),
		Center:    lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#008000"),
		Accent:    lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ff8800"),
	}

	ThemeAmber = Theme{
		Name:      "amber",
		Spoke:     lipgloss.Color("#ffb000"), // Amber phosphor
		Highlight: lipgloss.Color("#ffffff"),
		Ring:      lipgloss.Color("#664400"),
		Center:    lipgloss.Color("#ffd27f"),
		Text:      lipgloss.Color("#ffb000"),
		Muted:     lipgloss.Color("#996600"),
		Accent:    lipgloss.Color("#ffcc66"),
		Warning:   lipgloss.Color("#ff4444"),
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Spoke:     lipgloss.Color("#00ffff"),
		Highlight: lipgloss.Color("#ff00ff"),
		Ring:      lipgloss.Color("#444466"),
		Center:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Accent:    lipgloss.Color("#ff00ff"),
		Warning:   lipgloss.Color("#ff8800"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Spoke:     lipgloss.Color("#888888"),
		Highlight: lipgloss.Color("#ffffff"),
		Ring:      lipgloss.Color("#444444"),
		Center:    lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#cccccc"),
		Muted:     lipgloss.Color("#666666"),
		Accent:    lipgloss.Color("#ffffff"),
		Warning:   lipgloss.Color("#ffffff"),
	}

	// All available themes, in cycling order
	Themes = []Theme{
		ThemeMatrix,
		ThemeAmber,
		ThemeCyberpunk,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to matrix.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMatrix
}

// TerminalTheme returns name's theme, or mono when the terminal cannot
// show colour (NO_COLOR, dumb terminals, pipes).
func TerminalTheme(name string) Theme {
	if termenv.EnvColorProfile() == termenv.Ascii {
		return GetTheme("mono")
	}
	return GetTheme(name)
}

// NextTheme returns the theme after name in cycling order.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Paint returns a painter for Canvas.Render using the theme's colours.
func (t Theme) Paint() func(Ink, string) string {
	styles := map[Ink]lipgloss.Style{
		InkRing:      lipgloss.NewStyle().Foreground(t.Ring),
		InkSpoke:     lipgloss.NewStyle().Foreground(t.Spoke),
		InkLabel:     lipgloss.NewStyle().Foreground(t.Spoke),
		InkHighlight: lipgloss.NewStyle().Foreground(t.Highlight).Bold(true),
		InkCenter:    lipgloss.NewStyle().Foreground(t.Center).Bold(true),
	}
	return func(ink Ink, s string) string {
		st, ok := styles[ink]
		if !ok {
			return s
		}
		return st.Render(s)
	}
}
