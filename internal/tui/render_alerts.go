package tui

import (
	"fmt"
	"strings"

	"github.com/tinytelemetry/cloudguard/internal/model"
	"github.com/tinytelemetry/cloudguard/internal/sample"
	"github.com/tinytelemetry/cloudguard/internal/section"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// alertsRenderer shows the alert configuration, active alerts and activity.
// The switches are local view state and trigger nothing.
type alertsRenderer struct {
	enabled  bool
	channels []model.AlertChannel
	active   []model.Alert
	history  []model.AlertEvent
}

func newAlertsRenderer(data *sample.Dataset) *alertsRenderer {
	a := data.Alerts
	return &alertsRenderer{
		enabled:  a.Enabled,
		channels: append([]model.AlertChannel(nil), a.Channels...),
		active:   a.Active,
		history:  a.History,
	}
}

func (a *alertsRenderer) ID() string    { return section.RendererAlerts }
func (a *alertsRenderer) Title() string { return "Alert System" }

func (a *alertsRenderer) HandleKey(msg tea.KeyMsg, keys KeyMap) bool {
	switch {
	case key.Matches(msg, keys.ToggleAlerts):
		a.ToggleMaster()
	case key.Matches(msg, keys.ToggleSMS):
		a.ToggleChannel("sms")
	case key.Matches(msg, keys.ToggleEmail):
		a.ToggleChannel("email")
	case key.Matches(msg, keys.TogglePush):
		a.ToggleChannel("push")
	default:
		return false
	}
	return true
}

func (a *alertsRenderer) ToggleMaster() { a.enabled = !a.enabled }

// ToggleChannel flips a channel switch. Channel switches are disabled while
// the master switch is off; it returns false when nothing changed.
func (a *alertsRenderer) ToggleChannel(id string) bool {
	if !a.enabled {
		return false
	}
	for i := range a.channels {
		if a.channels[i].ID == id {
			a.channels[i].Enabled = !a.channels[i].Enabled
			return true
		}
	}
	return false
}

func (a *alertsRenderer) Enabled() bool { return a.enabled }

func (a *alertsRenderer) ChannelEnabled(id string) bool {
	for _, c := range a.channels {
		if c.ID == id {
			return c.Enabled
		}
	}
	return false
}

func (a *alertsRenderer) Render(ctx ViewContext) string {
	w := ctx.ContentWidth

	status := badge("System Active", ColorGreen)
	if !a.enabled {
		status = badge("System Disabled", ColorGray)
	}
	header := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render("⚠ Alert System"),
		mutedStyle.Render(fmt.Sprintf("%d active alerts", len(a.active)))+"  "+status,
	)

	side := w
	main := w
	if w >= 100 {
		side = w / 3
		main = w - side
	}
	config := card("Alert Configuration", a.renderConfig(ctx.Keys, side-4), side)

	alertCards := make([]string, 0, len(a.active))
	for _, al := range a.active {
		alertCards = append(alertCards, renderAlert(al, main))
	}
	activeBlock := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{cardTitleStyle.Render("Active Alerts")}, alertCards...)...)

	var body string
	if side == w {
		body = lipgloss.JoinVertical(lipgloss.Left, config, activeBlock)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, config, activeBlock)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, a.renderHistory(w))
}

func (a *alertsRenderer) renderConfig(keys KeyMap, width int) string {
	hint := func(b key.Binding) string {
		return helpStyle.Render("(" + b.Help().Key + ")")
	}
	rows := []string{
		fmt.Sprintf("%s Enable Alerts %s", toggle(a.enabled, false), hint(keys.ToggleAlerts)),
		"",
	}
	channelKeys := map[string]key.Binding{
		"sms":   keys.ToggleSMS,
		"email": keys.ToggleEmail,
		"push":  keys.TogglePush,
	}
	for _, c := range a.channels {
		label := c.Label
		if b, ok := channelKeys[c.ID]; ok {
			label += " " + hint(b)
		}
		desc := mutedStyle.Render("  " + truncate(c.Description, width-2))
		rows = append(rows, toggle(c.Enabled, !a.enabled)+" "+label, desc)
	}
	return strings.Join(rows, "\n")
}

func renderAlert(al model.Alert, width int) string {
	head := lipgloss.JoinHorizontal(lipgloss.Center,
		badge(al.Level, levelColor(al.Level)), " ",
		lipgloss.NewStyle().Bold(true).Render(al.Type),
	)
	meta := mutedStyle.Render(fmt.Sprintf("⌖ %s   ◷ in %s   %d%% confidence", al.Location, al.LeadTime, al.Confidence))
	actions := lipgloss.JoinHorizontal(lipgloss.Top, button("View Details"), " ", button("Send Alert"))
	body := lipgloss.JoinVertical(lipgloss.Left,
		head,
		meta,
		al.Description,
		mutedStyle.Render(al.Coordinates),
		actions,
	)
	return card("", body, width)
}

func (a *alertsRenderer) renderHistory(width int) string {
	rows := make([]string, 0, len(a.history))
	for _, ev := range a.history {
		kind := lipgloss.NewStyle().Foreground(eventColor(ev.Type)).Bold(true).Render(ev.Type)
		rows = append(rows, fmt.Sprintf("%s  %s  %s  %s",
			mutedStyle.Render(ev.Time), kind, ev.Location, mutedStyle.Render(ev.Description)))
	}
	return card("Recent Activity", strings.Join(rows, "\n"), width)
}

func levelColor(level string) lipgloss.Color {
	switch level {
	case "High":
		return ColorRed
	case "Medium":
		return ColorYellow
	case "Low":
		return ColorBlue
	default:
		return ColorGray
	}
}

func eventColor(kind string) lipgloss.Color {
	switch {
	case strings.Contains(kind, "Resolved"):
		return ColorGreen
	case strings.Contains(kind, "Issued"):
		return ColorRed
	default:
		return ColorYellow
	}
}
