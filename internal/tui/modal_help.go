package tui

import (
	"fmt"
	"strings"

	"github.com/tinytelemetry/cloudguard/internal/section"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// HelpModal shows the key bindings and sections as rendered markdown.
type HelpModal struct {
	ctx      ModalContext
	keys     KeyMap
	viewport viewport.Model
	markdown string

	renderedWidth int
}

func NewHelpModal(ctx ModalContext, keys KeyMap, reg *section.Registry) *HelpModal {
	return &HelpModal{
		ctx:      ctx,
		keys:     keys,
		viewport: viewport.New(80, 20),
		markdown: helpMarkdown(keys, reg),
	}
}

func (h *HelpModal) ID() string { return "help" }

func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, h.keys.Up):
			h.viewport.ScrollUp(1)
		case key.Matches(msg, h.keys.Down):
			h.viewport.ScrollDown(1)
		case key.Matches(msg, h.keys.PageUp):
			h.viewport.HalfPageUp()
		case key.Matches(msg, h.keys.PageDown):
			h.viewport.HalfPageDown()
		case key.Matches(msg, h.keys.Home):
			h.viewport.GotoTop()
		case key.Matches(msg, h.keys.End):
			h.viewport.GotoBottom()
		case key.Matches(msg, h.keys.Help), key.Matches(msg, h.keys.Escape), key.Matches(msg, h.keys.Quit):
			return true, nil
		}
		return false, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return false, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			scrollWheel(&h.viewport, -1, h.ctx.ReverseScrollWheel)
		case tea.MouseButtonWheelDown:
			scrollWheel(&h.viewport, 1, h.ctx.ReverseScrollWheel)
		}
	}
	return false, nil
}

func (h *HelpModal) View(width, height int) string {
	contentWidth := max(width-12, 16)
	if contentWidth != h.renderedWidth {
		h.viewport.SetContent(renderMarkdown(h.markdown, contentWidth))
		h.renderedWidth = contentWidth
	}
	return renderModalFrame(&h.viewport, "Help", "↑/↓ Wheel: Scroll • PgUp/PgDn: Page • ?/Esc: Close", width, height)
}

// scrollWheel scrolls one line; dir is -1 for up.
func scrollWheel(vp *viewport.Model, dir int, reverse bool) {
	if reverse {
		dir = -dir
	}
	if dir < 0 {
		vp.ScrollUp(1)
	} else {
		vp.ScrollDown(1)
	}
}

func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func helpMarkdown(keys KeyMap, reg *section.Registry) string {
	var b strings.Builder
	b.WriteString("# CloudGuard AI\n\n")
	b.WriteString("Cloudburst prediction dashboard. All figures are sample data.\n\n")

	b.WriteString("## Sections\n\n")
	for i, s := range reg.Sections() {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, s.Label)
	}

	groups := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Navigation", []key.Binding{keys.Select, keys.Left, keys.Right, keys.Menu, keys.Up, keys.Down, keys.Enter, keys.PageUp, keys.PageDown, keys.Home, keys.End}},
		{"Alert System", []key.Binding{keys.ToggleAlerts, keys.ToggleSMS, keys.ToggleEmail, keys.TogglePush}},
		{"Regional Weather", []key.Binding{keys.NextRegion, keys.PrevRegion}},
		{"General", []key.Binding{keys.Help, keys.Escape, keys.Quit, keys.ForceQuit}},
	}
	for _, g := range groups {
		fmt.Fprintf(&b, "\n## %s\n\n| Key | Action |\n|---|---|\n", g.title)
		for _, kb := range g.bindings {
			h := kb.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}
	return b.String()
}
