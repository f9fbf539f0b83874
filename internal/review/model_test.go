package review

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"sweeper/internal/suggest"
)

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func apply(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func sampleSuggestions() []suggest.Suggestion {
	return []suggest.Suggestion{
		{Label: "Aged temp files", TotalSize: 100},
		{Label: "Cache files", TotalSize: 200},
		{Label: "Large downloads", TotalSize: 300},
	}
}

func TestNothingPreselected(t *testing.T) {
	m := New(sampleSuggestions())
	m = apply(m, "enter")
	if m.Confirmed() {
		t.Fatal("enter with nothing selected must not confirm")
	}
	if got := m.Selected(); got != nil {
		t.Fatalf("Selected() = %v, want nil", got)
	}
}

func TestToggleAndConfirm(t *testing.T) {
	m := New(sampleSuggestions())
	m = apply(m, " ", "j", "j", " ", "enter")
	if !m.Confirmed() {
		t.Fatal("expected confirmation")
	}
	sel := m.Selected()
	if len(sel) != 2 {
		t.Fatalf("len(Selected()) = %d, want 2", len(sel))
	}
	if sel[0].Label != "Aged temp files" || sel[1].Label != "Large downloads" {
		t.Fatalf("wrong selection order: %q, %q", sel[0].Label, sel[1].Label)
	}
}

func TestToggleTwiceDeselects(t *testing.T) {
	m := New(sampleSuggestions())
	m = apply(m, " ", " ", "enter")
	if m.Confirmed() {
		t.Fatal("double toggle should leave nothing selected")
	}
}

func TestToggleAll(t *testing.T) {
	m := New(sampleSuggestions())
	m = apply(m, "a")
	for i := range sampleSuggestions() {
		if !m.selected[i] {
			t.Fatalf("suggestion %d not selected after toggle-all", i)
		}
	}
	m = apply(m, "a")
	for i := range sampleSuggestions() {
		if m.selected[i] {
			t.Fatalf("suggestion %d still selected after second toggle-all", i)
		}
	}
}

func TestCursorBounds(t *testing.T) {
	m := New(sampleSuggestions())
	m = apply(m, "k", "k")
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0 at top", m.cursor)
	}
	m = apply(m, "j", "j", "j", "j", "j")
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want 2 at bottom", m.cursor)
	}
}

func TestQuitWithoutConfirm(t *testing.T) {
	m := New(sampleSuggestions())
	m = apply(m, " ", "q")
	if m.Confirmed() {
		t.Fatal("quit must not confirm even with a selection")
	}
}
