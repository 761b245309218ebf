// Package console renders hangman screens and reads keys in line mode.
package console

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/hangman/internal/game"
)

const minRuleWidth = 16

// Painter colors a status message for its color class.
type Painter func(color game.Color, text string) string

// Layout renders a screen in the classic console arrangement: title, frame,
// masked word, guessed letters, error count, status message and prompt.
func Layout(title string, screen game.Screen, paint Painter) string {
	rule := strings.Repeat("_", ruleWidth(screen.Mask))
	message := screen.Status.Message()
	if paint != nil {
		message = paint(screen.Status.Color(), message)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", title)
	fmt.Fprintf(&b, "%s\n\n", strings.TrimSuffix(screen.Frame, "\n"))
	fmt.Fprintln(&b, screen.Mask)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "Guessed Letters:")
	fmt.Fprintln(&b, screen.Guessed)
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Errors Made: %d\n\n", screen.Errors)
	fmt.Fprintf(&b, "%s\n\n", message)
	b.WriteString(screen.Status.Prompt())
	return b.String()
}

// Title returns the header line for the given version.
func Title(version string) string {
	return fmt.Sprintf("Console Hangman v%s ([ESC] to exit)", version)
}

func ruleWidth(mask string) int {
	if w := runewidth.StringWidth(mask); w > minRuleWidth {
		return w
	}
	return minRuleWidth
}
