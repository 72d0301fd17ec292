package tui

import (
	"github.com/tinytelemetry/cloudguard/internal/sample"
	"github.com/tinytelemetry/cloudguard/internal/section"

	tea "github.com/charmbracelet/bubbletea"
)

// Renderer draws one content area from the sample dataset.
type Renderer interface {
	ID() string
	Title() string
	Render(ctx ViewContext) string
}

// Interactive is implemented by renderers that hold local toggles.
type Interactive interface {
	// HandleKey returns true when the key was consumed.
	HandleKey(msg tea.KeyMsg, keys KeyMap) bool
}

// newRenderer mounts the renderer for a renderer id. Unknown ids mount the
// dashboard.
func newRenderer(id string, data *sample.Dataset) Renderer {
	switch id {
	case section.RendererAlerts:
		return newAlertsRenderer(data)
	case section.RendererRegional:
		return newRegionalRenderer(data)
	case section.RendererPredictions:
		return newPredictionsRenderer(data)
	default:
		return newDashboardRenderer(data)
	}
}
