package review

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sweeper/internal/ui"
)

// scanDoneMsg signals that the background walk has finished.
type scanDoneMsg struct{}

// Progress is the spinner shown while the walker runs in the background.
// It re-renders the live entry count on every spinner tick and quits
// itself when the done channel closes.
type Progress struct {
	spin    spinner.Model
	label   string
	scanned func() int64
	done    <-chan struct{}
}

// NewProgress creates a Progress view. scanned is polled on every frame;
// done must be closed by the caller when the work completes.
func NewProgress(label string, scanned func() int64, done <-chan struct{}) Progress {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(ui.ColorPrimary)
	return Progress{spin: s, label: label, scanned: scanned, done: done}
}

func (p Progress) Init() tea.Cmd {
	return tea.Batch(p.spin.Tick, p.waitDone())
}

func (p Progress) waitDone() tea.Cmd {
	return func() tea.Msg {
		<-p.done
		return scanDoneMsg{}
	}
}

func (p Progress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case scanDoneMsg:
		return p, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return p, tea.Quit
		}
		return p, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p Progress) View() string {
	return fmt.Sprintf("  %s %s… %d entries\n", p.spin.View(), p.label, p.scanned())
}
