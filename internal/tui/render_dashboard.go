package tui

import (
	"fmt"
	"strings"

	"github.com/tinytelemetry/cloudguard/internal/model"
	"github.com/tinytelemetry/cloudguard/internal/sample"
	"github.com/tinytelemetry/cloudguard/internal/section"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

type dashboardRenderer struct {
	weather model.Weather
}

func newDashboardRenderer(data *sample.Dataset) *dashboardRenderer {
	return &dashboardRenderer{weather: data.Weather}
}

func (d *dashboardRenderer) ID() string    { return section.RendererDashboard }
func (d *dashboardRenderer) Title() string { return "Weather Dashboard" }

func (d *dashboardRenderer) Render(ctx ViewContext) string {
	w := ctx.ContentWidth
	cur := d.weather.Current

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		cardTitleStyle.Render("⌖ "+cur.Location),
		mutedStyle.Render("  ·  "+cur.Conditions+"  ·  "),
		lipgloss.NewStyle().Foreground(ColorOrange).Bold(true).Render(fmt.Sprintf("%d°C", cur.Temperature)),
	)

	metrics := []struct {
		label, value string
	}{
		{"Temperature", fmt.Sprintf("%d°C", cur.Temperature)},
		{"Humidity", fmt.Sprintf("%d%%", cur.Humidity)},
		{"Wind Speed", fmt.Sprintf("%d km/h", cur.WindSpeed)},
		{"Visibility", formatNumber(cur.Visibility) + " km"},
		{"Pressure", fmt.Sprintf("%d hPa", cur.Pressure)},
		{"Cloud Cover", fmt.Sprintf("%d%%", cur.CloudCover)},
	}
	cols := columnsFor(w, 22, 6)
	cells := make([]string, 0, len(metrics))
	for _, m := range metrics {
		value := lipgloss.NewStyle().Foreground(ColorWhite).Bold(true).Render(m.value)
		cells = append(cells, card(m.label, value, w/cols))
	}

	forecast := card("Hourly Forecast", d.renderForecast(w-4), w)

	half := w / 2
	if w < 60 {
		half = w
	}
	status := card("System Status", renderStatusRows(d.weather.Status, half-4, ColorGreen), half)
	sources := card("Data Sources", renderStatusRows(d.weather.Sources, half-4, ColorSky), half)
	var footer string
	if half == w {
		footer = lipgloss.JoinVertical(lipgloss.Left, status, sources)
	} else {
		footer = lipgloss.JoinHorizontal(lipgloss.Top, status, sources)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", grid(cells, cols), forecast, footer)
}

// renderForecast draws rain probability bars above a per-hour table.
func (d *dashboardRenderer) renderForecast(width int) string {
	hourly := d.weather.Hourly
	if len(hourly) == 0 {
		return mutedStyle.Render("No forecast data")
	}

	barWidth := max(1, min(5, (width-len(hourly))/len(hourly)-1))
	chartWidth := min(width, len(hourly)*(barWidth+1))
	bc := barchart.New(chartWidth, 8,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(barWidth),
		barchart.WithNoAxis(),
	)
	for _, h := range hourly {
		bc.Push(barchart.BarData{
			Label: h.Time,
			Values: []barchart.BarValue{
				{Name: "rain", Value: float64(h.Rain), Style: rainStyle(h.Rain)},
			},
		})
	}
	bc.Draw()

	rows := make([]string, 0, len(hourly))
	for _, h := range hourly {
		rows = append(rows, fmt.Sprintf("%s  %3d°C  %s %3d%%",
			h.Time,
			h.Temperature,
			bar(float64(h.Rain), max(width-24, 6), ColorSky, ColorBlue),
			h.Rain,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		mutedStyle.Render("Rain probability"),
		bc.View(),
		"",
		strings.Join(rows, "\n"),
	)
}

func rainStyle(pct int) lipgloss.Style {
	c := ColorSky
	switch {
	case pct >= 80:
		c = ColorRed
	case pct >= 50:
		c = ColorOrange
	}
	return lipgloss.NewStyle().Foreground(c).Background(c)
}

func renderStatusRows(items []model.StatusItem, width int, valueColor lipgloss.Color) string {
	rows := make([]string, 0, len(items))
	valueStyle := lipgloss.NewStyle().Foreground(valueColor)
	for _, it := range items {
		gap := max(width-lipgloss.Width(it.Label)-lipgloss.Width(it.Value), 1)
		rows = append(rows, it.Label+strings.Repeat(" ", gap)+valueStyle.Render(it.Value))
	}
	return strings.Join(rows, "\n")
}
