package tui

import (
	"fmt"

	"github.com/tinytelemetry/cloudguard/internal/model"
	"github.com/tinytelemetry/cloudguard/internal/sample"
	"github.com/tinytelemetry/cloudguard/internal/section"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type regionalRenderer struct {
	data     model.Regional
	selected int
}

func newRegionalRenderer(data *sample.Dataset) *regionalRenderer {
	r := &regionalRenderer{data: data.Regional}
	for i, reg := range r.data.Regions {
		if reg.ID == r.data.Default {
			r.selected = i
		}
	}
	return r
}

func (r *regionalRenderer) ID() string    { return section.RendererRegional }
func (r *regionalRenderer) Title() string { return "Regional Weather" }

func (r *regionalRenderer) HandleKey(msg tea.KeyMsg, keys KeyMap) bool {
	switch {
	case key.Matches(msg, keys.NextRegion):
		r.cycle(1)
	case key.Matches(msg, keys.PrevRegion):
		r.cycle(-1)
	default:
		return false
	}
	return true
}

func (r *regionalRenderer) cycle(delta int) {
	n := len(r.data.Regions)
	if n == 0 {
		return
	}
	r.selected = ((r.selected+delta)%n + n) % n
}

// Region returns the selected region id.
func (r *regionalRenderer) Region() string {
	if len(r.data.Regions) == 0 {
		return r.data.Default
	}
	return r.data.Regions[r.selected].ID
}

func (r *regionalRenderer) Render(ctx ViewContext) string {
	w := ctx.ContentWidth

	tabs := make([]string, 0, len(r.data.Regions))
	for i, reg := range r.data.Regions {
		label := fmt.Sprintf("%s (%d)", reg.Name, reg.Zones)
		if i == r.selected {
			tabs = append(tabs, activeSectionStyle.Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Padding(0, 1).Render(label))
		}
	}
	selector := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render("⌖ Regional Weather")+"  "+helpStyle.Render("(r/R: change region)"),
		lipgloss.NewStyle().Width(w).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...)),
	)

	zones, from := r.data.ZonesFor(r.Region())
	var note string
	if from != r.Region() {
		note = mutedStyle.Render(fmt.Sprintf("No zone data for this region yet. Showing %s.", r.regionName(from)))
	}

	sum := model.SummarizeZones(zones)
	counters := []struct {
		label string
		value int
		color lipgloss.Color
	}{
		{"Total Zones", sum.Total, ColorBlue},
		{"High Risk", sum.HighRisk, ColorRed},
		{"Medium Risk", sum.MediumRisk, ColorYellow},
		{"Normal", sum.Normal, ColorGreen},
	}
	cols := columnsFor(w, 20, 4)
	cells := make([]string, 0, len(counters))
	for _, c := range counters {
		v := lipgloss.NewStyle().Foreground(c.color).Bold(true).Render(fmt.Sprintf("%d", c.value))
		cells = append(cells, card(c.label, v, w/cols))
	}

	zoneCols := columnsFor(w, 40, 2)
	zoneCards := make([]string, 0, len(zones))
	for _, z := range zones {
		zoneCards = append(zoneCards, renderZone(z, w/zoneCols))
	}

	parts := []string{selector}
	if note != "" {
		parts = append(parts, note)
	}
	parts = append(parts, "", grid(cells, cols), grid(zoneCards, zoneCols), button("View Map"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *regionalRenderer) regionName(id string) string {
	for _, reg := range r.data.Regions {
		if reg.ID == id {
			return reg.Name
		}
	}
	return id
}

func renderZone(z model.Zone, width int) string {
	inner := max(width-4, 10)
	head := lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Render(truncate(z.Name, inner-lipgloss.Width(z.Status)-3)), " ",
		badge(z.Status, zoneColor(z.Status)),
	)
	readings := mutedStyle.Render(fmt.Sprintf("%d°C  %d%% humidity  %d km/h  %d mm/h",
		z.Temperature, z.Humidity, z.WindSpeed, z.Rainfall))
	confidence := fmt.Sprintf("%s %d%%", bar(float64(z.Confidence), inner-6, ColorSky, ColorBlue), z.Confidence)
	return card("", lipgloss.JoinVertical(lipgloss.Left, head, readings, z.Prediction, confidence), width)
}

func zoneColor(status string) lipgloss.Color {
	switch status {
	case model.ZoneHighRisk:
		return ColorRed
	case model.ZoneMediumRisk:
		return ColorYellow
	case model.ZoneLowRisk:
		return ColorBlue
	case model.ZoneNormal:
		return ColorGreen
	default:
		return ColorGray
	}
}
