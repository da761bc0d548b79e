package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/rodopios/internal/storage"
)

func press(m model, keys ...string) (model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(model)
	}
	return m, cmd
}

func sampleRuns(n int) []storage.RunMetadata {
	runs := make([]storage.RunMetadata, n)
	for i := range runs {
		runs[i] = storage.RunMetadata{
			ID:        "run_" + string(rune('a'+i)),
			Name:      "wallet " + string(rune('a'+i)),
			Timestamp: time.Date(2024, 1, 1, 0, i, 0, 0, time.UTC),
			Steps:     i + 1,
		}
	}
	return runs
}

func TestPickerSelect(t *testing.T) {
	m, cmd := press(newPicker(sampleRuns(3)), "down", "down", "down", "up", "enter")
	if m.selected != "run_b" {
		t.Errorf("expected run_b, got %q", m.selected)
	}
	if cmd == nil {
		t.Fatal("expected quit after selection")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestPickerQuit(t *testing.T) {
	m, cmd := press(newPicker(sampleRuns(2)), "q")
	if !m.quit || m.selected != "" {
		t.Errorf("unexpected state %+v", m)
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestPickerEmpty(t *testing.T) {
	m, cmd := press(newPicker(nil), "enter")
	if cmd != nil || m.selected != "" {
		t.Error("enter on an empty list should do nothing")
	}
	if !strings.Contains(m.View(), "no runs stored") {
		t.Error("expected empty hint")
	}
}

func TestPickerScrolls(t *testing.T) {
	m, _ := press(newPicker(sampleRuns(20)), "G")
	view := m.View()
	if !strings.Contains(view, "wallet t") {
		t.Error("expected the last run to be visible")
	}
	if strings.Contains(view, "wallet a") {
		t.Error("expected the first run to scroll out of view")
	}
}
