package tui

import (
	"github.com/tinytelemetry/cloudguard/internal/model"
	"github.com/tinytelemetry/cloudguard/internal/sample"
	"github.com/tinytelemetry/cloudguard/internal/section"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Options configures a Composer.
type Options struct {
	CompactWidth       int
	ReverseScrollWheel bool
	Zones              *zone.Manager // nil disables mouse support

	// OnSelect, when set, observes every selection after it is applied.
	OnSelect func(id string)
}

// Composer is the main page. It owns the navigation state, mounts the
// renderer for the active section and stacks the intro banner above it
// when the default section is active.
type Composer struct {
	ModalStackState

	router  *section.Router
	data    *sample.Dataset
	keys    KeyMap
	opts    Options
	nav     *NavBar
	body    viewport.Model
	mounted Renderer

	width  int
	height int
}

func NewComposer(reg *section.Registry, data *sample.Dataset, opts Options) *Composer {
	if opts.CompactWidth <= 0 {
		opts.CompactWidth = model.DefaultCompactWidth
	}
	c := &Composer{
		router: section.NewRouter(reg),
		data:   data,
		keys:   DefaultKeyMap(),
		opts:   opts,
		body:   viewport.New(0, 0),
	}
	c.nav = NewNavBar(c.router, c.Select, c.keys, opts.Zones, opts.CompactWidth)
	c.mounted = newRenderer(c.router.Current().Renderer, data)
	return c
}

func (c *Composer) ID() string { return "composer" }

func (c *Composer) Init() tea.Cmd { return nil }

// Select is the setter handed to the navigation bar. It stores id as the
// active section and remounts the renderer when the resolved renderer
// changes.
func (c *Composer) Select(id string) {
	c.router.Select(id)
	res := c.router.Current()
	if c.mounted == nil || c.mounted.ID() != res.Renderer {
		c.mounted = newRenderer(res.Renderer, c.data)
	}
	c.body.GotoTop()
	if c.opts.OnSelect != nil {
		c.opts.OnSelect(id)
	}
}

func (c *Composer) State() section.State { return c.router.State() }

func (c *Composer) Resolution() section.Resolution { return c.router.Current() }

func (c *Composer) Mounted() Renderer { return c.mounted }

func (c *Composer) ShowBanner() bool { return c.router.ShowBanner() }

func (c *Composer) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width, c.height = msg.Width, msg.Height
		c.nav.SetWidth(msg.Width)
		return nil, nil

	case tea.KeyMsg:
		return c.handleKey(msg), nil

	case tea.MouseMsg:
		return c.handleMouse(msg), nil
	}
	return nil, nil
}

func (c *Composer) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, c.keys.ForceQuit) {
		return tea.Quit
	}

	if modal := c.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			c.PopModal()
		}
		return cmd
	}

	if c.nav.HandleKey(msg) {
		return nil
	}

	if ia, ok := c.mounted.(Interactive); ok && ia.HandleKey(msg, c.keys) {
		return nil
	}

	switch {
	case key.Matches(msg, c.keys.Quit):
		return tea.Quit
	case key.Matches(msg, c.keys.Help):
		c.PushModal(NewHelpModal(ModalContext{ReverseScrollWheel: c.opts.ReverseScrollWheel}, c.keys, c.router.Registry()))
	case key.Matches(msg, c.keys.Up):
		c.body.ScrollUp(1)
	case key.Matches(msg, c.keys.Down):
		c.body.ScrollDown(1)
	case key.Matches(msg, c.keys.PageUp):
		c.body.HalfPageUp()
	case key.Matches(msg, c.keys.PageDown):
		c.body.HalfPageDown()
	case key.Matches(msg, c.keys.Home):
		c.body.GotoTop()
	case key.Matches(msg, c.keys.End):
		c.body.GotoBottom()
	}
	return nil
}

func (c *Composer) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if modal := c.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			c.PopModal()
		}
		return cmd
	}

	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			scrollWheel(&c.body, -1, c.opts.ReverseScrollWheel)
			return nil
		case tea.MouseButtonWheelDown:
			scrollWheel(&c.body, 1, c.opts.ReverseScrollWheel)
			return nil
		}
	}

	c.nav.HandleMouse(msg)
	return nil
}

// composeBody stacks the banner (default section only) above the mounted
// renderer.
func (c *Composer) composeBody(width int) string {
	ctx := ViewContext{ContentWidth: width, Keys: c.keys, Zones: c.opts.Zones}
	content := c.mounted.Render(ctx)
	if c.ShowBanner() {
		return lipgloss.JoinVertical(lipgloss.Left, renderBanner(c.data.Product, width), content)
	}
	return content
}

func (c *Composer) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return "Initializing..."
	}
	if width < 40 || height < 12 {
		return "Terminal too small. Resize to at least 40x12."
	}

	if modal := c.TopModal(); modal != nil {
		return modal.View(width, height)
	}

	c.nav.SetWidth(width)
	navView := c.nav.View()
	statusLine := c.renderStatusLine(width)

	c.body.Width = width
	c.body.Height = max(height-lipgloss.Height(navView)-lipgloss.Height(statusLine), 1)
	c.body.SetContent(c.composeBody(width - 1))

	out := lipgloss.JoinVertical(lipgloss.Left, navView, c.body.View(), statusLine)
	if c.opts.Zones != nil {
		return c.opts.Zones.Scan(out)
	}
	return out
}

// RenderSection composes the view for id at the given width without the
// navigation chrome. Each call uses a fresh composer.
func RenderSection(reg *section.Registry, data *sample.Dataset, id string, width int) string {
	c := NewComposer(reg, data, Options{})
	c.Select(id)
	return c.composeBody(width)
}
