package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))

// WordPrompt asks for a secret word without echoing it.
type WordPrompt struct {
	input     textinput.Model
	validate  func(string) bool
	word      string
	errMsg    string
	cancelled bool
}

// NewWordPrompt builds a prompt that accepts words passing validate.
func NewWordPrompt(validate func(string) bool) *WordPrompt {
	input := textinput.New()
	input.Prompt = "Word: "
	input.Placeholder = "word"
	input.CharLimit = 0
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Cursor.SetMode(cursor.CursorBlink)
	input.Focus()
	return &WordPrompt{input: input, validate: validate}
}

// Init implements tea.Model.
func (p *WordPrompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (p *WordPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			p.cancelled = true
			return p, tea.Quit
		case tea.KeyEnter:
			value := p.input.Value()
			if !p.validate(value) {
				p.errMsg = "The word must contain letters only."
				p.input.Reset()
				return p, nil
			}
			p.word = value
			return p, tea.Quit
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View implements tea.Model.
func (p *WordPrompt) View() string {
	lines := []string{
		"Enter the word to guess. It will not be shown.",
		"",
		p.input.View(),
		"",
	}
	if p.errMsg != "" {
		lines = append(lines, errorStyle.Render(p.errMsg))
	}
	lines = append(lines, hintStyle.Render("[enter] to start, [esc] to cancel"))
	return strings.Join(lines, "\n")
}

// Word returns the accepted word and false when the prompt was cancelled.
func (p *WordPrompt) Word() (string, bool) {
	if p.cancelled || p.word == "" {
		return "", false
	}
	return p.word, true
}
