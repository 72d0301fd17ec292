package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is a self-contained overlay. The topmost modal on the stack
// receives all input and renders full-screen.
type Modal interface {
	// ID returns a unique identifier used to deduplicate pushes.
	ID() string
	// Update processes a message. Return pop=true to close the modal.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	View(width, height int) string
}

// ModalStackState holds the open modals, topmost last.
type ModalStackState struct {
	modalStack []Modal
}

// PushModal pushes a modal onto the stack. Deduplicates by ID.
func (s *ModalStackState) PushModal(modal Modal) {
	for _, existing := range s.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	s.modalStack = append(s.modalStack, modal)
}

func (s *ModalStackState) PopModal() {
	if len(s.modalStack) > 0 {
		s.modalStack = s.modalStack[:len(s.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (s *ModalStackState) TopModal() Modal {
	if len(s.modalStack) == 0 {
		return nil
	}
	return s.modalStack[len(s.modalStack)-1]
}

func (s *ModalStackState) HasModal() bool {
	return len(s.modalStack) > 0
}

// renderModalFrame draws a titled, scrollable frame centered on screen.
func renderModalFrame(vp *viewport.Model, title, status string, width, height int) string {
	modalWidth := max(width-8, 20)
	modalHeight := max(height-4, 8)
	contentWidth := modalWidth - 4
	contentHeight := modalHeight - 4

	vp.Width = contentWidth
	vp.Height = contentHeight

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorBlue).
		Bold(true).
		Render(title)

	pane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Render(vp.View())

	modal := lipgloss.JoinVertical(lipgloss.Left, header, pane, helpStyle.Render(status))

	framed := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, framed)
}
