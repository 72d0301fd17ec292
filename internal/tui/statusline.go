package tui

import (
	"strings"

	"github.com/tinytelemetry/cloudguard/internal/section"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusLine renders the bottom bar: active section, key hints and
// branding. Hints shrink with the available width.
func (c *Composer) renderStatusLine(width int) string {
	base := lipgloss.NewStyle().Background(ColorNavy).Foreground(ColorWhite)

	res := c.router.Current()
	left := "[" + res.Section.Label + "]"
	if res.Fallback {
		left = "[" + res.Section.Label + "*]"
	}

	var hints []string
	switch {
	case c.HasModal():
		hints = []string{"Esc: Close"}
	case c.nav.menuVisible():
		hints = []string{"↑↓: Move", "Enter: Open", "Esc: Close menu"}
	case width < 60:
		hints = []string{"1-9", "←→", "?", "q"}
	case width < 100:
		hints = []string{"?: Help", "1-9: Section", "←→: Cycle", "q: Quit"}
	default:
		hints = []string{"?: Help", "1-9: Section", "←→: Cycle", "↑↓: Scroll", "m: Menu", "q: Quit"}
		switch c.mounted.ID() {
		case section.RendererAlerts:
			hints = append(hints, "a/s/e/p: Toggle")
		case section.RendererRegional:
			hints = append(hints, "r/R: Region")
		}
	}
	center := strings.Join(hints, " • ")

	right := ""
	if width >= 40 {
		right = gradientText("CloudGuard", ColorNavy)
	}

	leftWidth := lipgloss.Width(left) + 2
	rightWidth := lipgloss.Width(right) + 2
	if leftWidth+rightWidth >= width {
		return base.Width(max(width, 1)).Render(truncate(left, width))
	}
	centerWidth := width - leftWidth - rightWidth

	return lipgloss.JoinHorizontal(lipgloss.Top,
		base.Align(lipgloss.Left).Width(leftWidth).Render(left),
		base.Align(lipgloss.Center).Width(centerWidth).Render(truncate(center, centerWidth)),
		base.Align(lipgloss.Right).Width(rightWidth).Render(right),
	)
}
