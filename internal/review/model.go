// Package review is the interactive confirmation step between the
// suggestion engine and deletion. It is pure presentation: the engine
// knows nothing about it, it only reads suggestions and reports which
// ones the user accepted.
package review

import (
	tea "github.com/charmbracelet/bubbletea"

	"sweeper/internal/suggest"
)

// Model is the bubbletea Model for the suggestion review screen.
type Model struct {
	suggestions []suggest.Suggestion
	selected    map[int]bool
	cursor      int
	expanded    map[int]bool // show member files for a suggestion
	width       int
	height      int
	confirmed   bool
	quitting    bool
}

// New creates a review Model. Nothing is pre-selected: deletion is
// always an explicit choice.
func New(suggestions []suggest.Suggestion) Model {
	return Model{
		suggestions: suggestions,
		selected:    map[int]bool{},
		expanded:    map[int]bool{},
		width:       80,
		height:      24,
	}
}

// Confirmed reports whether the user accepted the selection.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Selected returns the accepted suggestions in display order.
func (m Model) Selected() []suggest.Suggestion {
	if !m.confirmed {
		return nil
	}
	var out []suggest.Suggestion
	for i, s := range m.suggestions {
		if m.selected[i] {
			out = append(out, s)
		}
	}
	return out
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.suggestions)-1 {
				m.cursor++
			}

		case " ":
			m.selected[m.cursor] = !m.selected[m.cursor]

		case "a":
			// Toggle all: select everything unless everything is selected.
			all := true
			for i := range m.suggestions {
				if !m.selected[i] {
					all = false
					break
				}
			}
			for i := range m.suggestions {
				m.selected[i] = !all
			}

		case "tab", "right", "l":
			m.expanded[m.cursor] = !m.expanded[m.cursor]

		case "enter":
			for i := range m.suggestions {
				if m.selected[i] {
					m.confirmed = true
					break
				}
			}
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// View delegates to view.go renderView.
func (m Model) View() string {
	return m.renderView()
}
