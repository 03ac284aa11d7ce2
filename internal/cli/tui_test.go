package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/labelplot/labelplot/pkg/dataset"
)

func pickerFixture() ColumnPickerModel {
	header := []string{"name", "speed_ms", "quality_tier"}
	detected := dataset.DetectColumns(header)
	return NewColumnPickerModel(header, detected)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m ColumnPickerModel, keys ...string) ColumnPickerModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(ColumnPickerModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestColumnPickerAcceptsDetectedMapping(t *testing.T) {
	m := update(t, pickerFixture(), "enter", "enter", "enter")

	if !m.Done {
		t.Fatal("picker should be done after three selections")
	}
	ov := m.Overrides()
	want := dataset.Overrides{Label: "name", X: "speed_ms", Y: "quality_tier"}
	if ov != want {
		t.Errorf("Overrides = %+v, want %+v", ov, want)
	}
}

func TestColumnPickerRemapsColumns(t *testing.T) {
	// Assign label to the second column instead of the detected first.
	m := update(t, pickerFixture(), "down", "enter", "enter", "enter")

	if !m.Done {
		t.Fatal("picker should be done")
	}
	if got := m.Overrides().Label; got != "speed_ms" {
		t.Errorf("Label = %q, want speed_ms", got)
	}
}

func TestColumnPickerCancel(t *testing.T) {
	m := update(t, pickerFixture(), "esc")

	if !m.Cancelled {
		t.Error("esc should cancel the picker")
	}
	if m.Done {
		t.Error("cancelled picker should not be done")
	}
}

func TestColumnPickerCursorBounds(t *testing.T) {
	m := update(t, pickerFixture(), "up", "up", "up")
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0 after moving past the top", m.Cursor)
	}

	m = update(t, m, "down", "down", "down", "down", "down")
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2 after moving past the bottom", m.Cursor)
	}
}

func TestColumnPickerViewShowsAssignedRoles(t *testing.T) {
	m := update(t, pickerFixture(), "enter")

	view := m.View()
	if !strings.Contains(view, "x axis") {
		t.Errorf("view should prompt for the x axis column:\n%s", view)
	}
	if !strings.Contains(view, "label") {
		t.Errorf("view should annotate the assigned label column:\n%s", view)
	}
}
