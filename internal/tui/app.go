package tui

import tea "github.com/charmbracelet/bubbletea"

// Page is a top-level screen hosted by App.
type Page interface {
	ID() string
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, *PageNav)
	View(width, height int) string
}

// PageNav is returned from Page.Update to switch pages.
type PageNav struct {
	PageID string
}

// App is the Bubble Tea model. It tracks the terminal size and forwards
// every message to the active page.
type App struct {
	pages  []Page
	active int
	width  int
	height int
}

// NewApp hosts the given pages; the first one starts active.
func NewApp(pages ...Page) *App {
	return &App{pages: pages}
}

func (a *App) Init() tea.Cmd {
	if p := a.activePage(); p != nil {
		return p.Init()
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Every page tracks the terminal size, not only the active one.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width, a.height = wsm.Width, wsm.Height
		for i, p := range a.pages {
			if i != a.active {
				p.Update(wsm)
			}
		}
	}

	p := a.activePage()
	if p == nil {
		return a, tea.Quit
	}

	cmd, nav := p.Update(msg)
	if nav == nil {
		return a, cmd
	}
	for i, candidate := range a.pages {
		if candidate.ID() == nav.PageID && i != a.active {
			a.active = i
			return a, tea.Batch(cmd, candidate.Init())
		}
	}
	return a, cmd
}

func (a *App) View() string {
	if p := a.activePage(); p != nil {
		return p.View(a.width, a.height)
	}
	return ""
}

func (a *App) activePage() Page {
	if a.active < 0 || a.active >= len(a.pages) {
		return nil
	}
	return a.pages[a.active]
}
