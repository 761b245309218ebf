package console

import (
	"bufio"
	"fmt"
	"io"
	"unicode"

	"github.com/verte-zerg/hangman/internal/game"
)

const escape = '\x1b'

// Input reads one key per rune from a line-oriented reader. Line breaks and
// other whitespace are skipped; ESC requests exit.
type Input struct {
	r *bufio.Reader
}

// NewInput wraps r.
func NewInput(r io.Reader) *Input {
	return &Input{r: bufio.NewReader(r)}
}

// Next implements game.InputSource. It returns io.EOF when r is exhausted.
func (in *Input) Next() (game.Input, error) {
	for {
		r, _, err := in.r.ReadRune()
		if err != nil {
			return game.Input{}, err
		}
		switch {
		case r == escape:
			return game.ExitInput, nil
		case unicode.IsSpace(r):
			continue
		default:
			return game.KeyInput(r), nil
		}
	}
}

// ReadLine returns the next line without its terminator.
func (in *Input) ReadLine() (string, error) {
	line, err := in.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return trimNewline(line), nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

// Renderer writes uncolored screens to w, one after another.
type Renderer struct {
	w     io.Writer
	title string
}

// NewRenderer returns a Renderer writing to w.
func NewRenderer(w io.Writer, title string) *Renderer {
	return &Renderer{w: w, title: title}
}

// Render implements game.Renderer.
func (r *Renderer) Render(screen game.Screen) error {
	if _, err := fmt.Fprintf(r.w, "%s\n\n", Layout(r.title, screen, nil)); err != nil {
		return fmt.Errorf("failed to write screen: %w", err)
	}
	return nil
}
