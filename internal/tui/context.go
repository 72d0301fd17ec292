package tui

import zone "github.com/lrstanley/bubblezone"

// ViewContext provides read-only context to renderers.
type ViewContext struct {
	ContentWidth int
	Keys         KeyMap
	Zones        *zone.Manager // nil disables mouse zones
}

// ModalContext provides read-only context to modals.
type ModalContext struct {
	ReverseScrollWheel bool
}

// mark wraps s in a mouse zone when zones are enabled.
func mark(z *zone.Manager, id, s string) string {
	if z == nil {
		return s
	}
	return z.Mark(id, s)
}
