package section

// State is the navigation state owned by the composing view.
// Active is changed only through Router.Select and CompactMenuOpen only
// through Router.ToggleCompactMenu / CloseCompactMenu.
type State struct {
	Active          string
	CompactMenuOpen bool
}

// Resolution is the outcome of resolving a section id.
type Resolution struct {
	Requested string  `json:"requested"`
	Section   Section `json:"section"`
	Renderer  string  `json:"resolved"`
	Fallback  bool    `json:"fallback"`
}

// Router owns the navigation state and maps ids to renderers.
type Router struct {
	reg   *Registry
	state State
}

// NewRouter returns a router with the default section active and the
// compact menu closed.
func NewRouter(reg *Registry) *Router {
	return &Router{
		reg:   reg,
		state: State{Active: reg.Default().ID},
	}
}

func (r *Router) Registry() *Registry { return r.reg }

// State returns a snapshot of the navigation state.
func (r *Router) State() State { return r.state }

func (r *Router) Active() string { return r.state.Active }

// Select stores id as the active section. The id is not validated;
// unknown ids resolve to the default renderer.
func (r *Router) Select(id string) {
	r.state.Active = id
}

// ToggleCompactMenu flips the compact menu flag and returns the new value.
func (r *Router) ToggleCompactMenu() bool {
	r.state.CompactMenuOpen = !r.state.CompactMenuOpen
	return r.state.CompactMenuOpen
}

func (r *Router) CloseCompactMenu() {
	r.state.CompactMenuOpen = false
}

// Resolve maps id to a renderer, falling back to the default section's
// renderer for unknown ids.
func (r *Router) Resolve(id string) Resolution {
	if s, ok := r.reg.Lookup(id); ok {
		return Resolution{Requested: id, Section: s, Renderer: s.Renderer}
	}
	def := r.reg.Default()
	return Resolution{Requested: id, Section: def, Renderer: def.Renderer, Fallback: true}
}

// Current resolves the active section.
func (r *Router) Current() Resolution {
	return r.Resolve(r.state.Active)
}

// ShowBanner reports whether the intro banner is composed above the
// renderer. Only the default id shows it, not ids that fall back to it.
func (r *Router) ShowBanner() bool {
	return r.state.Active == r.reg.Default().ID
}
