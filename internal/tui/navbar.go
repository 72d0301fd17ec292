package tui

import (
	"fmt"
	"strconv"

	"github.com/tinytelemetry/cloudguard/internal/section"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	zoneMenuButton = "nav-menu"
	zoneNavPrefix  = "nav-"
	zoneMenuPrefix = "menu-"
)

// NavBar renders the sections and reports selections through onSelect.
// It never changes the active section itself; it only owns the compact
// menu flag and its cursor.
type NavBar struct {
	router       *section.Router
	onSelect     func(id string)
	keys         KeyMap
	zones        *zone.Manager
	compactWidth int

	width  int
	cursor int
}

func NewNavBar(router *section.Router, onSelect func(id string), keys KeyMap, zones *zone.Manager, compactWidth int) *NavBar {
	return &NavBar{
		router:       router,
		onSelect:     onSelect,
		keys:         keys,
		zones:        zones,
		compactWidth: compactWidth,
	}
}

func (n *NavBar) SetWidth(w int) { n.width = w }

// Compact reports whether the bar is collapsed behind a menu button.
func (n *NavBar) Compact() bool { return n.width < n.compactWidth }

func (n *NavBar) MenuOpen() bool { return n.router.State().CompactMenuOpen }

func (n *NavBar) menuVisible() bool { return n.Compact() && n.MenuOpen() }

// ToggleMenu flips the compact menu. Opening it puts the cursor on the
// active section.
func (n *NavBar) ToggleMenu() {
	if n.router.ToggleCompactMenu() {
		n.cursor = max(n.router.Registry().Index(n.router.Active()), 0)
	}
}

func (n *NavBar) Cursor() int { return n.cursor }

func (n *NavBar) choose(i int, fromMenu bool) {
	reg := n.router.Registry()
	if i < 0 || i >= reg.Len() {
		return
	}
	if fromMenu {
		n.router.CloseCompactMenu()
	}
	n.onSelect(reg.At(i).ID)
}

// HandleKey returns true when the key was consumed by navigation.
func (n *NavBar) HandleKey(msg tea.KeyMsg) bool {
	reg := n.router.Registry()

	if n.menuVisible() {
		switch {
		case key.Matches(msg, n.keys.Up):
			n.cursor = max(n.cursor-1, 0)
			return true
		case key.Matches(msg, n.keys.Down):
			n.cursor = min(n.cursor+1, reg.Len()-1)
			return true
		case key.Matches(msg, n.keys.Enter):
			n.choose(n.cursor, true)
			return true
		case key.Matches(msg, n.keys.Escape):
			n.router.CloseCompactMenu()
			return true
		}
	}

	switch {
	case key.Matches(msg, n.keys.Select):
		i, err := strconv.Atoi(msg.String())
		if err != nil {
			return false
		}
		n.choose(i-1, n.menuVisible())
		return true
	case key.Matches(msg, n.keys.Right):
		n.choose(n.step(1), false)
		return true
	case key.Matches(msg, n.keys.Left):
		n.choose(n.step(-1), false)
		return true
	case key.Matches(msg, n.keys.Menu):
		n.ToggleMenu()
		return true
	}
	return false
}

// step returns the index delta positions away from the active section,
// wrapping around. An unknown active id starts from the ends.
func (n *NavBar) step(delta int) int {
	reg := n.router.Registry()
	cur := reg.Index(n.router.Active())
	if cur < 0 {
		if delta > 0 {
			return 0
		}
		return reg.Len() - 1
	}
	return ((cur+delta)%reg.Len() + reg.Len()) % reg.Len()
}

// HandleMouse resolves a left click against the nav zones.
func (n *NavBar) HandleMouse(msg tea.MouseMsg) bool {
	if n.zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return false
	}
	if n.inZone(zoneMenuButton, msg) {
		n.ToggleMenu()
		return true
	}
	for i, s := range n.router.Registry().Sections() {
		if n.inZone(zoneNavPrefix+s.ID, msg) {
			n.choose(i, false)
			return true
		}
		if n.menuVisible() && n.inZone(zoneMenuPrefix+s.ID, msg) {
			n.choose(i, true)
			return true
		}
	}
	return false
}

func (n *NavBar) inZone(id string, msg tea.MouseMsg) bool {
	z := n.zones.Get(id)
	return z != nil && z.InBounds(msg)
}

func (n *NavBar) View() string {
	bar := lipgloss.NewStyle().
		Width(max(n.width, 1)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorGray)

	brand := gradientText("☁ CloudGuard AI", "")
	if n.Compact() {
		label := "☰ Menu"
		if n.MenuOpen() {
			label = "✕ Close"
		}
		btn := mark(n.zones, zoneMenuButton, lipgloss.NewStyle().Foreground(ColorBlue).Bold(true).Render(label))
		gap := max(n.width-lipgloss.Width(brand)-lipgloss.Width(btn), 1)
		row := brand + lipgloss.NewStyle().Width(gap).Render("") + btn
		if !n.MenuOpen() {
			return bar.Render(row)
		}
		return bar.Render(lipgloss.JoinVertical(lipgloss.Left, row, n.menuLines()))
	}

	sections := n.router.Registry().Sections()
	avail := (n.width - lipgloss.Width(brand) - 2) / max(len(sections), 1)
	items := make([]string, 0, len(sections))
	for i, s := range sections {
		label := truncate(fmt.Sprintf("%d %s %s", i+1, glyph(string(s.Icon)), s.Label), max(avail-2, 3))
		var item string
		if s.ID == n.router.Active() {
			item = activeSectionStyle.Render(label)
		} else {
			item = lipgloss.NewStyle().Foreground(ColorGray).Padding(0, 1).Render(label)
		}
		items = append(items, mark(n.zones, zoneNavPrefix+s.ID, item))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, append([]string{brand, "  "}, items...)...)
	return bar.Render(row)
}

func (n *NavBar) menuLines() string {
	sections := n.router.Registry().Sections()
	lines := make([]string, 0, len(sections))
	for i, s := range sections {
		label := fmt.Sprintf("  %s %s", glyph(string(s.Icon)), s.Label)
		if s.ID == n.router.Active() {
			label = fmt.Sprintf("> %s %s", glyph(string(s.Icon)), s.Label)
		}
		label = truncate(label, max(n.width-1, 4))
		if i == n.cursor {
			label = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true).Render(label)
		}
		lines = append(lines, mark(n.zones, zoneMenuPrefix+s.ID, label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
