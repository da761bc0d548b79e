// Package tui holds the interactive run picker shown when rodopios starts
// without a command.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/rodopios/internal/storage"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// visibleRows caps how many runs are listed around the cursor.
const visibleRows = 12

type keyMap struct {
	Choose key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Choose: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "animate")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

type model struct {
	runs     []storage.RunMetadata
	table    table.Model
	selected string
	quit     bool
}

func newPicker(runs []storage.RunMetadata) model {
	rows := make([]table.Row, len(runs))
	for i, run := range runs {
		rows[i] = table.Row{
			run.Name,
			fmt.Sprintf("%d", run.Steps),
			run.LastSymbol,
			run.Timestamp.Format("2006-01-02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 24},
			{Title: "Steps", Width: 6},
			{Title: "Last", Width: 4},
			{Title: "Stored", Width: 16},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(visibleRows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Foreground(lipgloss.Color("242")).Bold(false)
	s.Selected = s.Selected.Foreground(lipgloss.Color("86")).Bold(true)
	t.SetStyles(s)

	return model{runs: runs, table: t}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(k, keys.Choose):
			if len(m.runs) > 0 {
				m.selected = m.runs[m.table.Cursor()].ID
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("          " + cyan.Render("r o d o p i o s") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	if len(m.runs) == 0 {
		b.WriteString("      " + dim.Render("no runs stored, import one first") + "\n")
	} else {
		b.WriteString(m.table.View() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render(fmt.Sprintf("      ↑↓ select   %s %s   %s %s",
		keys.Choose.Help().Key, keys.Choose.Help().Desc,
		keys.Quit.Help().Key, keys.Quit.Help().Desc)) + "\n")

	return b.String()
}

// Pick shows runs and returns the chosen run id, or "" when the user quit.
func Pick(runs []storage.RunMetadata) (string, error) {
	p := tea.NewProgram(newPicker(runs), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	return final.(model).selected, nil
}
