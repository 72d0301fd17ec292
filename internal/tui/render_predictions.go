package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/tinytelemetry/cloudguard/internal/model"
	"github.com/tinytelemetry/cloudguard/internal/sample"
	"github.com/tinytelemetry/cloudguard/internal/section"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

type predictionsRenderer struct {
	data model.Predictions
}

func newPredictionsRenderer(data *sample.Dataset) *predictionsRenderer {
	return &predictionsRenderer{data: data.Predictions}
}

func (p *predictionsRenderer) ID() string    { return section.RendererPredictions }
func (p *predictionsRenderer) Title() string { return "AI Prediction Models" }

func (p *predictionsRenderer) Render(ctx ViewContext) string {
	w := ctx.ContentWidth

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		cardTitleStyle.Render("◉ AI Prediction Models"), "  ",
		mutedStyle.Render(fmt.Sprintf("average accuracy %d%%", int(math.Round(p.data.AverageAccuracy())))), "  ",
		button("Refresh Models"),
	)

	cols := columnsFor(w, 44, 2)
	cards := make([]string, 0, len(p.data.Models))
	for _, m := range p.data.Models {
		cards = append(cards, renderModel(m, w/cols))
	}

	chart := card("Accuracy by Model", p.renderAccuracyChart(w-4), w)
	metrics := card("Performance Metrics", p.renderMetrics(w-4), w)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", grid(cards, cols), chart, metrics)
}

func renderModel(m model.PredictionModel, width int) string {
	inner := max(width-4, 16)
	head := lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Render(glyph(m.Icon)+" "+truncate(m.Name, inner-lipgloss.Width(m.Status)-5)), " ",
		badge(m.Status, modelStatusColor(m.Status)),
	)
	barWidth := max(inner-18, 6)
	rows := []string{
		head,
		mutedStyle.Render(m.Description),
		fmt.Sprintf("Accuracy   %s %3d%%", bar(float64(m.Accuracy), barWidth, ColorSky, ColorGreen), m.Accuracy),
		fmt.Sprintf("Confidence %s %3d%%", bar(float64(m.Confidence), barWidth, ColorSky, ColorBlue), m.Confidence),
		mutedStyle.Render(fmt.Sprintf("Predictions: %s   Updated %s", formatThousands(m.Predictions), m.LastUpdate)),
	}
	return card("", strings.Join(rows, "\n"), width)
}

func (p *predictionsRenderer) renderAccuracyChart(width int) string {
	models := p.data.Models
	if len(models) == 0 {
		return mutedStyle.Render("No models")
	}
	barWidth := max(1, min(8, width/len(models)-2))
	bc := barchart.New(min(width, len(models)*(barWidth+2)), 6,
		barchart.WithBarGap(2),
		barchart.WithBarWidth(barWidth),
		barchart.WithNoAxis(),
	)
	legend := make([]string, 0, len(models))
	for i, m := range models {
		style := lipgloss.NewStyle().Foreground(modelStatusColor(m.Status)).Background(modelStatusColor(m.Status))
		bc.Push(barchart.BarData{
			Label:  fmt.Sprintf("%d", i+1),
			Values: []barchart.BarValue{{Name: m.Name, Value: float64(m.Accuracy), Style: style}},
		})
		legend = append(legend, fmt.Sprintf("%d %s %d%%", i+1, truncate(m.Name, 30), m.Accuracy))
	}
	bc.Draw()
	return lipgloss.JoinVertical(lipgloss.Left, bc.View(), mutedStyle.Render(strings.Join(legend, "   ")))
}

func (p *predictionsRenderer) renderMetrics(width int) string {
	rows := make([]string, 0, len(p.data.Metrics))
	for _, m := range p.data.Metrics {
		verdict := lipgloss.NewStyle().Foreground(ColorGreen).Render("On Target")
		if !m.OnTarget() {
			verdict = lipgloss.NewStyle().Foreground(ColorOrange).Render("Below Target")
		}
		unit := m.Unit()
		line := fmt.Sprintf("%-26s %s%s / %s%s  %s",
			m.Label,
			formatNumber(m.Value), unit,
			formatNumber(m.Target), unit,
			verdict,
		)
		rows = append(rows, line, bar(m.Progress(), max(width-2, 6), ColorSky, ColorGreen))
	}
	return strings.Join(rows, "\n")
}

func modelStatusColor(status string) lipgloss.Color {
	switch status {
	case "Running", "Active":
		return ColorGreen
	case "Processing":
		return ColorSky
	case "Training":
		return ColorOrange
	default:
		return ColorGray
	}
}
