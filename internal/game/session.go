package game

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// ErrTooFewFrames is returned when a frame set cannot hold a progression
// frame, a final loss frame and a victory frame.
var ErrTooFewFrames = errors.New("frame set needs at least 3 frames")

const minFrames = 3

// Frames supplies the images drawn for each error count. The last frame is
// shown on victory.
type Frames interface {
	Count() int
	Frame(index int) (string, error)
	VictoryFrame() (string, error)
}

// WordPicker supplies secret words for dictionary games.
type WordPicker interface {
	RandomWord() string
}

// InputKind classifies a single key from the player.
type InputKind int

const (
	InputInvalid InputKind = iota
	InputLetter
	InputExit
)

// Input is one key from the player.
type Input struct {
	Kind   InputKind
	Letter rune
}

// KeyInput classifies r as a letter or invalid input.
func KeyInput(r rune) Input {
	if unicode.IsLetter(r) {
		return Input{Kind: InputLetter, Letter: r}
	}
	return Input{Kind: InputInvalid}
}

// ExitInput is the exit request.
var ExitInput = Input{Kind: InputExit}

// InputSource blocks until the player presses a key.
type InputSource interface {
	Next() (Input, error)
}

// Screen is everything a renderer draws after a turn.
type Screen struct {
	Status  Status
	Frame   string
	Mask    string
	Guessed string
	Errors  int
}

// Renderer draws a Screen.
type Renderer interface {
	Render(Screen) error
}

// Session runs the turns of one hangman game.
type Session struct {
	frames    Frames
	picker    WordPicker
	word      *Word
	firstTurn bool
	status    Status
}

// NewSession starts a game for an explicit secret word. Declining the exit
// prompt resumes the same word.
func NewSession(secret string, frames Frames) (*Session, error) {
	if err := checkFrames(frames); err != nil {
		return nil, err
	}
	return &Session{
		frames:    frames,
		word:      NewWord(secret),
		firstTurn: true,
	}, nil
}

// NewDictionarySession starts a game with a word from picker. Declining the
// exit prompt starts over with a new word.
func NewDictionarySession(picker WordPicker, frames Frames) (*Session, error) {
	if err := checkFrames(frames); err != nil {
		return nil, err
	}
	return &Session{
		frames:    frames,
		picker:    picker,
		word:      NewWord(picker.RandomWord()),
		firstTurn: true,
	}, nil
}

func checkFrames(frames Frames) error {
	if frames.Count() < minFrames {
		return fmt.Errorf("%w: got %d", ErrTooFewFrames, frames.Count())
	}
	return nil
}

// Begin emits the status of the first turn.
func (s *Session) Begin() Status {
	s.firstTurn = false
	s.status = AwaitingFirstGuess
	return s.status
}

// Next plays one turn. The first turn reports AwaitingFirstGuess without
// reading from src.
func (s *Session) Next(src InputSource) (Status, error) {
	if s.firstTurn {
		return s.Begin(), nil
	}
	in, err := src.Next()
	if err != nil {
		return s.status, err
	}
	return s.Turn(in), nil
}

// Turn evaluates one input. A finished game ignores further input.
func (s *Session) Turn(in Input) Status {
	if s.status == Victory || s.status == Loss {
		return s.status
	}
	s.firstTurn = false
	switch {
	case in.Kind == InputExit:
		s.firstTurn = true
		s.status = ExitConfirm
	case in.Kind == InputLetter && unicode.IsLetter(in.Letter):
		s.status = s.guess(in.Letter)
	default:
		s.status = InvalidInput
	}
	return s.status
}

func (s *Session) guess(letter rune) Status {
	if s.word.Guessed(letter) {
		return AlreadyGuessed
	}
	before := s.word.Errors()
	s.word.Guess(letter)
	if s.word.Errors() == before {
		if s.word.Victory() {
			return Victory
		}
		return CorrectRepeat
	}
	// The second-to-last frame is the final loss frame.
	if s.word.Errors() == s.frames.Count()-2 {
		return Loss
	}
	return Incorrect
}

// Decline answers "no" to the exit prompt and reports the status of the
// restarted turn sequence.
func (s *Session) Decline() Status {
	s.restart()
	return s.Begin()
}

func (s *Session) restart() {
	if s.picker != nil {
		s.word = NewWord(s.picker.RandomWord())
	}
	s.status = AwaitingFirstGuess
	s.firstTurn = true
}

// Status returns the most recent status.
func (s *Session) Status() Status {
	return s.status
}

// Word returns the word being guessed.
func (s *Session) Word() *Word {
	return s.word
}

// Screen builds the view of the current turn.
func (s *Session) Screen() (Screen, error) {
	var frame string
	var err error
	if s.status == Victory {
		frame, err = s.frames.VictoryFrame()
	} else {
		frame, err = s.frames.Frame(s.word.Errors())
	}
	if err != nil {
		return Screen{}, fmt.Errorf("failed to load frame: %w", err)
	}
	letters := s.word.GuessedLetters()
	guessed := make([]string, len(letters))
	for i, r := range letters {
		guessed[i] = string(r)
	}
	return Screen{
		Status:  s.status,
		Frame:   frame,
		Mask:    s.word.Mask(),
		Guessed: strings.Join(guessed, " "),
		Errors:  s.word.Errors(),
	}, nil
}

// Run plays turns until the game is won, lost, or the player confirms the
// exit prompt, rendering after every turn. A won or lost game waits for one
// more key. After an exit prompt a 'y' key confirms; any other key declines.
// Run returns the final status.
func (s *Session) Run(src InputSource, r Renderer) (Status, error) {
	for {
		status, err := s.Next(src)
		if err != nil {
			return status, err
		}
		if err := s.render(r); err != nil {
			return status, err
		}
		if !status.Terminal() {
			continue
		}
		if status != ExitConfirm {
			// The finished screen stays up until one more key; closed input ends it too.
			if _, err := src.Next(); err != nil && !errors.Is(err, io.EOF) {
				return status, err
			}
			return status, nil
		}
		in, err := src.Next()
		if err != nil {
			return status, err
		}
		if in.Kind == InputLetter && unicode.ToUpper(in.Letter) == 'Y' {
			return status, nil
		}
		s.restart()
	}
}

func (s *Session) render(r Renderer) error {
	screen, err := s.Screen()
	if err != nil {
		return err
	}
	return r.Render(screen)
}
