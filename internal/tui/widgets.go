package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// card renders a bordered block with a title line. width is the outer width.
func card(title, body string, width int) string {
	inner := max(width-4, 1)
	parts := make([]string, 0, 2)
	if title != "" {
		parts = append(parts, cardTitleStyle.Render(truncate(title, inner)))
	}
	parts = append(parts, body)
	return sectionStyle.
		Width(max(width-2, 1)).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func badge(text string, bg lipgloss.Color) string {
	return lipgloss.NewStyle().
		Foreground(ColorWhite).
		Background(bg).
		Bold(true).
		Padding(0, 1).
		Render(text)
}

// button renders an inert action label.
func button(label string) string {
	return lipgloss.NewStyle().
		Foreground(ColorGray).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Padding(0, 1).
		Render(label)
}

// toggle renders an on/off switch. Disabled switches are drawn faint.
func toggle(on, disabled bool) string {
	label, color := "○ OFF", ColorGray
	if on {
		label, color = "● ON ", ColorGreen
	}
	style := lipgloss.NewStyle().Foreground(color).Bold(on)
	if disabled {
		style = style.Faint(true)
	}
	return style.Render("[" + label + "]")
}

// grid lays cells out in rows of cols columns.
func grid(cells []string, cols int) string {
	if len(cells) == 0 {
		return ""
	}
	cols = max(cols, 1)
	rows := make([]string, 0, (len(cells)+cols-1)/cols)
	for i := 0; i < len(cells); i += cols {
		end := min(i+cols, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// columnsFor returns how many cells of at least minCell width fit in width,
// capped at most.
func columnsFor(width, minCell, most int) int {
	if minCell <= 0 {
		return 1
	}
	return max(1, min(most, width/minCell))
}

func bar(percent float64, width int, from, to lipgloss.Color) string {
	p := progress.New(
		progress.WithGradient(string(from), string(to)),
		progress.WithWidth(max(width, 4)),
		progress.WithoutPercentage(),
	)
	return p.ViewAs(clampUnit(percent / 100))
}

func clampUnit(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// formatThousands renders n with comma separators: 1247 -> "1,247".
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 && !(neg && b.Len() == 1) {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// formatNumber drops a trailing ".0": 4.2 -> "4.2", 6.0 -> "6".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
