package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel styles derived from a theme.
type styles struct {
	header  lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	warn    lipgloss.Style
	accent  lipgloss.Style
	panel   lipgloss.Style
	help    lipgloss.Style
	overlay lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Ring),
		label:  lipgloss.NewStyle().Foreground(t.Muted).Width(11),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		muted:  lipgloss.NewStyle().Foreground(t.Muted),
		warn:   lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		accent: lipgloss.NewStyle().Foreground(t.Highlight).Bold(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Ring).
			Padding(1, 2).
			Width(44),
		help: lipgloss.NewStyle().Foreground(t.Muted).Italic(true).MarginTop(1),
		overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Accent).
			Padding(0, 2),
	}
}

// ProgressBar renders fraction in [0,1] as a bar of width cells.
func ProgressBar(fraction float64, width int, t Theme) string {
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	done := lipgloss.NewStyle().Foreground(t.Highlight).Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(t.Ring).Render(strings.Repeat("░", width-filled))
	return done + rest
}

// Sparkline renders the last width values with block characters scaled
// between 0 and max.
func Sparkline(values []float64, max float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	if max <= 0 {
		max = 1
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	var b strings.Builder
	for _, v := range values {
		idx := int(v / max * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(chars[idx])
	}
	return b.String()
}

// Separator draws a muted rule with a centre mark.
func Separator(width int, t Theme) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return lipgloss.NewStyle().Foreground(t.Muted).Render(left + " ◆ " + right)
}

// Ellipsize shortens s to n runes, marking the cut in the middle. Used for
// long hex coordinates.
func Ellipsize(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 5 {
		return s
	}
	head := (n - 1) / 2
	tail := n - 1 - head
	return string(r[:head]) + "…" + string(r[len(r)-tail:])
}
