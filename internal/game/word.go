// Package game implements the hangman rules and turn loop.
package game

import (
	"sort"
	"strings"
	"unicode"
)

const placeholder = '_'

// Word tracks a secret word and the letters guessed against it.
type Word struct {
	secret  []rune
	guessed map[rune]struct{}
	errors  int
	victory bool
}

// NewWord starts tracking secret. Callers validate that secret is a
// non-empty, letters-only string.
func NewWord(secret string) *Word {
	return &Word{
		secret:  []rune(secret),
		guessed: map[rune]struct{}{},
	}
}

// Guess records letter and returns the updated mask. A letter missing from
// the secret counts as an error. Repeat guesses are not rejected here.
func (w *Word) Guess(letter rune) string {
	if !w.contains(letter) {
		w.errors++
	}
	w.guessed[unicode.ToUpper(letter)] = struct{}{}
	mask := w.Mask()
	if !strings.ContainsRune(mask, placeholder) {
		w.victory = true
	}
	return mask
}

// Mask renders the secret with every position preceded by a space and
// unrevealed letters shown as '_'.
func (w *Word) Mask() string {
	var b strings.Builder
	for _, r := range w.secret {
		b.WriteByte(' ')
		if w.Guessed(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(placeholder)
		}
	}
	return b.String()
}

// Guessed reports whether letter was guessed, ignoring case.
func (w *Word) Guessed(letter rune) bool {
	_, ok := w.guessed[unicode.ToUpper(letter)]
	return ok
}

// GuessedLetters returns the guessed letters upper-cased in letter order.
func (w *Word) GuessedLetters() []rune {
	letters := make([]rune, 0, len(w.guessed))
	for r := range w.guessed {
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

// Errors returns the number of incorrect guesses.
func (w *Word) Errors() int {
	return w.errors
}

// Victory reports whether every letter of the secret has been guessed.
func (w *Word) Victory() bool {
	return w.victory
}

func (w *Word) contains(letter rune) bool {
	upper := unicode.ToUpper(letter)
	for _, r := range w.secret {
		if unicode.ToUpper(r) == upper {
			return true
		}
	}
	return false
}
