package review

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sweeper/internal/suggest"
	"sweeper/internal/ui"
)

// ─── Top-level view ──────────────────────────────────────────────────────────

func (m Model) renderView() string {
	if m.quitting {
		return ""
	}
	w := m.width
	if w < 40 {
		w = 40
	}

	var s strings.Builder
	s.WriteString(m.renderHeader(w))
	s.WriteString("\n")
	s.WriteString(m.renderBody(w))
	s.WriteString("\n")
	s.WriteString(m.renderFooter(w))
	return s.String()
}

// ─── Header ──────────────────────────────────────────────────────────────────

func (m Model) renderHeader(w int) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		Render("  " + ui.IconDiamond + " Cleanup Suggestions")

	var total, selectedSize int64
	for i, s := range m.suggestions {
		total += s.TotalSize
		if m.selected[i] {
			selectedSize += s.TotalSize
		}
	}
	summary := lipgloss.NewStyle().
		Foreground(ui.ColorTextDim).
		Render(fmt.Sprintf("  reclaimable %s    selected %s",
			ui.FormatSize(total), ui.FormatSize(selectedSize)))

	inner := lipgloss.JoinVertical(lipgloss.Left, title, summary)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Width(w - 2).
		Render(inner)
}

// ─── Body ────────────────────────────────────────────────────────────────────

func (m Model) renderBody(w int) string {
	if len(m.suggestions) == 0 {
		return lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Render("  Nothing to clean up — disk looks tidy.")
	}

	var lines []string
	for i, s := range m.suggestions {
		lines = append(lines, m.renderSuggestion(i, s, w))
		if m.expanded[i] {
			lines = append(lines, m.renderMembers(s, w)...)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSuggestion(i int, s suggest.Suggestion, w int) string {
	check := "[ ]"
	if m.selected[i] {
		check = "[" + ui.IconCheck + "]"
	}

	line := fmt.Sprintf("  %s %-24s %4d files  %10s  %s",
		check, s.Label, len(s.Records), ui.FormatSize(s.TotalSize),
		ui.SafetyBadge(s.SafetyName))

	style := lipgloss.NewStyle().Foreground(ui.ColorText)
	if i == m.cursor {
		style = style.Foreground(ui.ColorPrimary).Bold(true)
	}
	return style.Render(line) + "  " +
		lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(s.Rationale)
}

// renderMembers lists the files inside an expanded suggestion,
// truncated to keep the screen usable on big groups.
func (m Model) renderMembers(s suggest.Suggestion, w int) []string {
	const maxShow = 8
	dim := lipgloss.NewStyle().Foreground(ui.ColorTextDim)

	var lines []string
	for j, rec := range s.Records {
		if j == maxShow {
			lines = append(lines, dim.Render(fmt.Sprintf(
				"        … and %d more", len(s.Records)-maxShow)))
			break
		}
		lines = append(lines, dim.Render(fmt.Sprintf(
			"        %s %10s  %s", ui.IconDot,
			ui.FormatSize(rec.Record.Size), truncatePath(rec.Record.Path, w-24))))
	}
	return lines
}

// ─── Footer ──────────────────────────────────────────────────────────────────

func (m Model) renderFooter(w int) string {
	help := "  ↑/↓ move   space select   a all   tab details   enter clean   q quit"
	return lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Render(help)
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// truncatePath shortens long paths from the left, keeping the tail.
func truncatePath(p string, max int) string {
	if max < 10 {
		max = 10
	}
	if len(p) <= max {
		return p
	}
	return "…" + p[len(p)-max+1:]
}
