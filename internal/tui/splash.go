package tui

import (
	"time"

	"github.com/tinytelemetry/cloudguard/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 120 * time.Millisecond

type spinnerTickMsg struct{}

// SplashPage shows a short loading screen, then hands over to next.
// Any key skips it.
type SplashPage struct {
	product  model.Product
	next     string
	duration time.Duration
	frame    int
	elapsed  time.Duration
}

func NewSplashPage(product model.Product, next string, duration time.Duration) *SplashPage {
	return &SplashPage{product: product, next: next, duration: duration}
}

func (s *SplashPage) ID() string { return "splash" }

func (s *SplashPage) Init() tea.Cmd {
	return spinnerTick()
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg { return spinnerTickMsg{} })
}

func (s *SplashPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		s.frame = (s.frame + 1) % len(spinnerFrames)
		s.elapsed += spinnerInterval
		if s.elapsed >= s.duration {
			return nil, &PageNav{PageID: s.next}
		}
		return spinnerTick(), nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return tea.Quit, nil
		}
		return nil, &PageNav{PageID: s.next}
	}
	return nil, nil
}

func (s *SplashPage) View(width, height int) string {
	text := lipgloss.JoinVertical(lipgloss.Center,
		gradientText(s.product.Title, ""),
		"",
		lipgloss.NewStyle().Foreground(ColorGray).Italic(true).
			Render(spinnerFrames[s.frame]+" Loading prediction models..."),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}
