package tui

import (
	"strings"
	"testing"

	"github.com/tinytelemetry/cloudguard/internal/sample"
	"github.com/tinytelemetry/cloudguard/internal/section"
)

func TestNewRenderer_UnknownIDMountsDashboard(t *testing.T) {
	t.Parallel()

	data := sample.Default()
	tests := map[string]string{
		section.RendererDashboard:   section.RendererDashboard,
		section.RendererAlerts:      section.RendererAlerts,
		section.RendererRegional:    section.RendererRegional,
		section.RendererPredictions: section.RendererPredictions,
		"bogus":                     section.RendererDashboard,
	}
	for in, want := range tests {
		if got := newRenderer(in, data).ID(); got != want {
			t.Fatalf("newRenderer(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAlertsRenderer_ChannelsDisabledWhileMasterOff(t *testing.T) {
	t.Parallel()

	a := newAlertsRenderer(sample.Default())
	a.ToggleMaster()

	if a.ToggleChannel("email") {
		t.Fatal("channel toggled while master off")
	}
	if !a.ChannelEnabled("email") {
		t.Fatal("email changed while master off")
	}

	out := a.Render(ViewContext{ContentWidth: 120, Keys: DefaultKeyMap()})
	if !strings.Contains(out, "System Disabled") {
		t.Fatal("render missing disabled status")
	}

	a.ToggleMaster()
	if !a.ToggleChannel("email") || a.ChannelEnabled("email") {
		t.Fatal("email not toggled while master on")
	}
	if a.ToggleChannel("pager") {
		t.Fatal("unknown channel reported as toggled")
	}
}

func TestAlertsRenderer_DoesNotMutateDataset(t *testing.T) {
	t.Parallel()

	data := sample.Default()
	a := newAlertsRenderer(data)
	a.ToggleChannel("push")

	for _, c := range data.Alerts.Channels {
		if !c.Enabled {
			t.Fatalf("dataset channel %q changed", c.ID)
		}
	}
}

func TestAlertsRenderer_Render(t *testing.T) {
	t.Parallel()

	out := newAlertsRenderer(sample.Default()).Render(ViewContext{ContentWidth: 120, Keys: DefaultKeyMap()})
	for _, want := range []string{"3 active alerts", "System Active", "Cloudburst Warning", "Mumbai Central", "Send Alert", "Navi Mumbai"} {
		if !strings.Contains(out, want) {
			t.Fatalf("alerts render missing %q", want)
		}
	}
}

func TestRegionalRenderer_FallbackAndCounts(t *testing.T) {
	t.Parallel()

	r := newRegionalRenderer(sample.Default())
	if got := r.Region(); got != "maharashtra" {
		t.Fatalf("initial region = %q, want maharashtra", got)
	}

	out := r.Render(ViewContext{ContentWidth: 120})
	if strings.Contains(out, "No zone data") {
		t.Fatal("fallback note shown for maharashtra")
	}
	for _, want := range []string{"Mumbai Metropolitan", "Aurangabad Zone", "View Map"} {
		if !strings.Contains(out, want) {
			t.Fatalf("regional render missing %q", want)
		}
	}

	r.cycle(1)
	if got := r.Region(); got != "kerala" {
		t.Fatalf("next region = %q, want kerala", got)
	}
	out = r.Render(ViewContext{ContentWidth: 120})
	if !strings.Contains(out, "Showing Maharashtra") {
		t.Fatal("kerala render missing fallback note")
	}
	if !strings.Contains(out, "Mumbai Metropolitan") {
		t.Fatal("kerala render missing fallback zones")
	}

	r.cycle(-2)
	if got := r.Region(); got != "gujarat" {
		t.Fatalf("wrapped region = %q, want gujarat", got)
	}
}

func TestPredictionsRenderer_Render(t *testing.T) {
	t.Parallel()

	out := newPredictionsRenderer(sample.Default()).Render(ViewContext{ContentWidth: 120})
	for _, want := range []string{
		"1,247",
		"2,103",
		"average accuracy 89%",
		"89% / 90%",
		"37% / 35%",
		"4.2 / 6",
		"1 / 1",
		"On Target",
		"Below Target",
		"Refresh Models",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("predictions render missing %q", want)
		}
	}
}

func TestFormatThousands(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		1247:    "1,247",
		123456:  "123,456",
		1234567: "1,234,567",
		-1247:   "-1,247",
		-123456: "-123,456",
	}
	for in, want := range tests {
		if got := formatThousands(in); got != want {
			t.Fatalf("formatThousands(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	if got := formatNumber(4.2); got != "4.2" {
		t.Fatalf("formatNumber(4.2) = %q", got)
	}
	if got := formatNumber(6.0); got != "6" {
		t.Fatalf("formatNumber(6.0) = %q", got)
	}
}
