// Package dictionary loads word lists and picks secret words from them.
package dictionary

import (
	_ "embed"
	"errors"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/verte-zerg/hangman/internal/asset"
)

// ErrEmpty is returned when no line of a word list survives filtering.
var ErrEmpty = errors.New("no words were found in the dictionary")

//go:embed words.txt
var embeddedWords string

// Dictionary is an immutable list of letters-only words.
type Dictionary struct {
	words []string
}

// Load reads one candidate word per line from path and keeps the lines that
// consist only of letters.
func Load(path string) (*Dictionary, error) {
	lines, err := asset.ReadLines(path)
	if err != nil {
		return nil, err
	}
	return fromLines(lines)
}

// Default returns the dictionary bundled with the binary.
func Default() *Dictionary {
	d, err := fromLines(strings.Split(embeddedWords, "\n"))
	if err != nil {
		panic("dictionary: embedded word list is empty")
	}
	return d
}

func fromLines(lines []string) (*Dictionary, error) {
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		if IsLettersOnly(line) {
			words = append(words, line)
		}
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return &Dictionary{words: words}, nil
}

// IsLettersOnly reports whether s is non-empty and every rune is a letter.
func IsLettersOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// RandomWord returns a uniformly chosen word. A fresh source is seeded on
// every call.
func (d *Dictionary) RandomWord() string {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	return d.words[rnd.Intn(len(d.words))]
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns a copy of the word list in file order.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}
