// Package section holds the navigation sections of the dashboard and the
// state that decides which content renderer is mounted.
package section

import (
	"errors"
	"fmt"

	"github.com/tinytelemetry/cloudguard/internal/model"
)

// Icon is a symbolic icon reference. The TUI maps it to a glyph.
type Icon string

const (
	IconCloud         Icon = "cloud"
	IconTrendingUp    Icon = "trending-up"
	IconAlertTriangle Icon = "alert-triangle"
	IconMapPin        Icon = "map-pin"
)

// Renderer identifiers.
const (
	RendererDashboard   = "dashboard"
	RendererAlerts      = "alerts"
	RendererRegional    = "regional"
	RendererPredictions = "predictions"
)

// Section is one entry of the navigation bar.
type Section struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Icon     Icon   `json:"icon"`
	Renderer string `json:"renderer"`
}

// Registry is an ordered, read-only set of sections.
type Registry struct {
	sections  []Section
	index     map[string]int
	defaultID string
}

// NewRegistry builds a registry. defaultID must name one of the sections.
func NewRegistry(defaultID string, sections ...Section) (*Registry, error) {
	if len(sections) == 0 {
		return nil, errors.New("section: registry needs at least one section")
	}
	r := &Registry{
		sections:  make([]Section, 0, len(sections)),
		index:     make(map[string]int, len(sections)),
		defaultID: defaultID,
	}
	for _, s := range sections {
		if s.ID == "" {
			return nil, errors.New("section: empty section id")
		}
		if s.Renderer == "" {
			return nil, fmt.Errorf("section: %q has no renderer", s.ID)
		}
		if _, dup := r.index[s.ID]; dup {
			return nil, fmt.Errorf("section: duplicate section id %q", s.ID)
		}
		r.index[s.ID] = len(r.sections)
		r.sections = append(r.sections, s)
	}
	if _, ok := r.index[defaultID]; !ok {
		return nil, fmt.Errorf("section: default %q is not registered", defaultID)
	}
	return r, nil
}

// DefaultRegistry returns the CloudGuard navigation.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(model.DefaultSection,
		Section{ID: "dashboard", Label: "Dashboard", Icon: IconCloud, Renderer: RendererDashboard},
		Section{ID: "forecasting", Label: "Forecasting", Icon: IconTrendingUp, Renderer: RendererDashboard},
		Section{ID: "predictions", Label: "Predictions", Icon: IconTrendingUp, Renderer: RendererPredictions},
		Section{ID: "alerts", Label: "Alert System", Icon: IconAlertTriangle, Renderer: RendererAlerts},
		Section{ID: "regional", Label: "Regional Weather", Icon: IconMapPin, Renderer: RendererRegional},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Sections returns a copy of the sections in display order.
func (r *Registry) Sections() []Section {
	out := make([]Section, len(r.sections))
	copy(out, r.sections)
	return out
}

// Len returns the number of sections.
func (r *Registry) Len() int { return len(r.sections) }

// At returns the section at position i.
func (r *Registry) At(i int) Section { return r.sections[i] }

func (r *Registry) Lookup(id string) (Section, bool) {
	i, ok := r.index[id]
	if !ok {
		return Section{}, false
	}
	return r.sections[i], true
}

func (r *Registry) Contains(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Index returns the display position of id, or -1.
func (r *Registry) Index(id string) int {
	if i, ok := r.index[id]; ok {
		return i
	}
	return -1
}

// Default returns the section used when an id does not resolve.
func (r *Registry) Default() Section {
	return r.sections[r.index[r.defaultID]]
}
