// Package ui holds the shared terminal styling tokens and formatting
// helpers used by all commands.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ─── Color tokens ────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.Color("#7C6FF0")
	ColorText    = lipgloss.Color("#E6E6E6")
	ColorTextDim = lipgloss.Color("#9A9A9A")
	ColorMuted   = lipgloss.Color("#6B6B6B")
	ColorSafe    = lipgloss.Color("#4CAF7D")
	ColorUser    = lipgloss.Color("#5FA8E0")
	ColorWarning = lipgloss.Color("#E0B45F")
	ColorDanger  = lipgloss.Color("#E05F5F")
)

// ─── Icons ───────────────────────────────────────────────────────────────────

const (
	IconDiamond = "◆"
	IconChevron = "›"
	IconCheck   = "✓"
	IconCross   = "✗"
	IconDot     = "•"
)

// ─── Formatting ──────────────────────────────────────────────────────────────

// FormatSize renders a byte count in the largest unit that keeps the
// value under 1024.
func FormatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

// SafetyColor maps a safety level name to its display color.
func SafetyColor(safety string) lipgloss.Color {
	switch safety {
	case "safe":
		return ColorSafe
	case "user":
		return ColorUser
	case "unknown":
		return ColorWarning
	case "critical":
		return ColorDanger
	}
	return ColorMuted
}

// SafetyBadge renders a colored safety label.
func SafetyBadge(safety string) string {
	return lipgloss.NewStyle().
		Foreground(SafetyColor(safety)).
		Render(safety)
}
