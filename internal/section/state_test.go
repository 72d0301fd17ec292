package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestRouter_InitialState(t *testing.T) {
	t.Parallel()

	r := NewRouter(DefaultRegistry())
	assert.Equal(t, State{Active: "dashboard"}, r.State())
	assert.True(t, r.ShowBanner())
	assert.Equal(t, RendererDashboard, r.Current().Renderer)
	assert.False(t, r.Current().Fallback)
}

func TestRouter_SelectKnownSection(t *testing.T) {
	t.Parallel()

	r := NewRouter(DefaultRegistry())
	r.Select("alerts")

	res := r.Current()
	assert.Equal(t, "alerts", r.Active())
	assert.Equal(t, RendererAlerts, res.Renderer)
	assert.False(t, res.Fallback)
	assert.False(t, r.ShowBanner())
}

func TestRouter_ForecastingSharesDashboardRendererWithoutBanner(t *testing.T) {
	t.Parallel()

	r := NewRouter(DefaultRegistry())
	r.Select("forecasting")

	assert.Equal(t, RendererDashboard, r.Current().Renderer)
	assert.False(t, r.Current().Fallback)
	assert.False(t, r.ShowBanner())
}

func TestRouter_UnknownFallsBackWithoutBanner(t *testing.T) {
	t.Parallel()

	r := NewRouter(DefaultRegistry())
	r.Select("nonexistent")

	res := r.Current()
	assert.Equal(t, "nonexistent", r.Active())
	assert.Equal(t, "nonexistent", res.Requested)
	assert.Equal(t, RendererDashboard, res.Renderer)
	assert.Equal(t, "dashboard", res.Section.ID)
	assert.True(t, res.Fallback)
	assert.False(t, r.ShowBanner())
}

func TestRouter_CompactMenuDoesNotTouchActive(t *testing.T) {
	t.Parallel()

	r := NewRouter(DefaultRegistry())
	r.Select("regional")

	assert.True(t, r.ToggleCompactMenu())
	assert.Equal(t, "regional", r.Active())
	r.CloseCompactMenu()
	assert.False(t, r.State().CompactMenuOpen)
	assert.Equal(t, "regional", r.Active())
}

func TestRouter_ResolveAlwaysYieldsRenderer(t *testing.T) {
	reg := DefaultRegistry()
	known := map[string]bool{}
	for _, s := range reg.Sections() {
		known[s.ID] = true
	}

	rapid.Check(t, func(t *rapid.T) {
		id := rapid.OneOf(
			rapid.SampledFrom([]string{"dashboard", "forecasting", "predictions", "alerts", "regional"}),
			rapid.String(),
		).Draw(t, "id")

		r := NewRouter(reg)
		r.Select(id)
		res := r.Current()

		if res.Renderer == "" {
			t.Fatalf("empty renderer for %q", id)
		}
		if res.Fallback == known[id] {
			t.Fatalf("fallback = %v for %q", res.Fallback, id)
		}
		if r.ShowBanner() != (id == "dashboard") {
			t.Fatalf("banner = %v for %q", r.ShowBanner(), id)
		}
	})
}

func TestRouter_CompactToggleIsInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := NewRouter(DefaultRegistry())
		id := rapid.SampledFrom([]string{"dashboard", "alerts", "regional"}).Draw(t, "id")
		r.Select(id)
		n := rapid.IntRange(0, 20).Draw(t, "toggles")

		for i := 0; i < n; i++ {
			r.ToggleCompactMenu()
		}
		if got, want := r.State().CompactMenuOpen, n%2 == 1; got != want {
			t.Fatalf("open = %v after %d toggles, want %v", got, n, want)
		}
		if r.Active() != id {
			t.Fatalf("active = %q, want %q", r.Active(), id)
		}
	})
}
