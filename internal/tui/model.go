// Package tui provides the Bubble Tea hangman interface.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/hangman/internal/console"
	"github.com/verte-zerg/hangman/internal/game"
)

// Model implements the Bubble Tea game UI.
type Model struct {
	session *game.Session
	title   string

	width  int
	height int

	exitConfirmed bool
}

var (
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	dangerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	warningStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FADB14"))
	warningAltStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	debugStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#1677FF"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// NewModel constructs a game TUI model and plays the first turn.
func NewModel(session *game.Session, title string) *Model {
	m := &Model{
		session: session,
		title:   title,
	}
	m.session.Begin()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.session.Status() {
		case game.Victory, game.Loss:
			return m, tea.Quit
		case game.ExitConfirm:
			if isYes(msg) {
				m.exitConfirmed = true
				return m, tea.Quit
			}
			m.session.Decline()
			return m, nil
		}
		m.session.Turn(keyInput(msg))
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	screen, err := m.session.Screen()
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	content := console.Layout(m.title, screen, paint)
	if m.width == 0 || m.height == 0 {
		return content
	}
	// Pad every line to the block width so the art keeps its shape when centered.
	width := blockWidth(console.Layout(m.title, screen, nil))
	block := lipgloss.NewStyle().Width(width).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}

// Status returns the status of the last turn.
func (m *Model) Status() game.Status {
	return m.session.Status()
}

// ExitConfirmed reports whether the player left through the exit prompt.
func (m *Model) ExitConfirmed() bool {
	return m.exitConfirmed
}

func keyInput(msg tea.KeyMsg) game.Input {
	switch msg.Type {
	case tea.KeyEsc:
		return game.ExitInput
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return game.KeyInput(msg.Runes[0])
		}
	}
	return game.Input{Kind: game.InputInvalid}
}

func isYes(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && (msg.Runes[0] == 'y' || msg.Runes[0] == 'Y')
}

func paint(color game.Color, text string) string {
	switch color {
	case game.ColorSuccess:
		return successStyle.Render(text)
	case game.ColorDanger:
		return dangerStyle.Render(text)
	case game.ColorWarning:
		return warningStyle.Render(text)
	case game.ColorWarningAlt:
		return warningAltStyle.Render(text)
	case game.ColorDebug:
		return debugStyle.Render(text)
	default:
		return text
	}
}

func blockWidth(text string) int {
	width := 0
	for _, line := range strings.Split(text, "\n") {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	return width
}
