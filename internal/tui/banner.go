package tui

import (
	"github.com/tinytelemetry/cloudguard/internal/model"
	"github.com/tinytelemetry/cloudguard/internal/section"

	"github.com/charmbracelet/lipgloss"
)

var iconGlyphs = map[string]string{
	string(section.IconCloud):         "☁",
	string(section.IconTrendingUp):    "↗",
	string(section.IconAlertTriangle): "⚠",
	string(section.IconMapPin):        "⌖",
	"brain":                           "◉",
	"zap":                             "ϟ",
	"activity":                        "∿",
}

func glyph(icon string) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return "•"
}

// gradientText colors each rune of s along a fixed sky-to-green ramp.
func gradientText(s string, bg lipgloss.Color) string {
	ramp := []string{"#38BDF8", "#22B8E8", "#0EA5E9", "#14B8A6", "#10B981", "#22C55E"}
	runes := []rune(s)
	out := ""
	for i, r := range runes {
		c := ramp[i*len(ramp)/max(len(runes), 1)]
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Bold(true)
		if bg != "" {
			style = style.Background(bg)
		}
		out += style.Render(string(r))
	}
	return out
}

// renderBanner renders the product intro shown above the default section.
func renderBanner(p model.Product, width int) string {
	title := lipgloss.PlaceHorizontal(width, lipgloss.Center, gradientText(p.Title, ""))
	tagline := lipgloss.NewStyle().
		Width(max(width-4, 10)).
		Align(lipgloss.Center).
		Foreground(ColorGray).
		Render(p.Tagline)
	tagline = lipgloss.PlaceHorizontal(width, lipgloss.Center, tagline)

	cols := columnsFor(width, 30, len(p.Features))
	cellWidth := width / cols
	cells := make([]string, 0, len(p.Features))
	for _, f := range p.Features {
		head := glyph(f.Icon) + " " + f.Title
		cells = append(cells, card(head, mutedStyle.Render(f.Description), cellWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left, "", title, tagline, "", grid(cells, cols), "")
}
