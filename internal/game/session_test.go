package game

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

type testFrames []string

func newTestFrames(count int) testFrames {
	frames := make(testFrames, count)
	for i := range frames {
		frames[i] = fmt.Sprintf("frame%d\n", i)
	}
	frames[count-1] = "victory\n"
	return frames
}

func (f testFrames) Count() int { return len(f) }

func (f testFrames) Frame(index int) (string, error) {
	if index < 0 || index >= len(f) {
		return "", fmt.Errorf("index %d out of range", index)
	}
	return f[index], nil
}

func (f testFrames) VictoryFrame() (string, error) { return f.Frame(len(f) - 1) }

type scriptedInput struct {
	inputs []Input
	reads  int
	eof    bool
}

var errScriptDone = errors.New("script exhausted")

func keys(s string) *scriptedInput {
	src := &scriptedInput{}
	for _, r := range s {
		switch r {
		case '*':
			src.inputs = append(src.inputs, ExitInput)
		default:
			src.inputs = append(src.inputs, KeyInput(r))
		}
	}
	return src
}

func (s *scriptedInput) Next() (Input, error) {
	if s.reads >= len(s.inputs) {
		if s.eof {
			return Input{}, io.EOF
		}
		return Input{}, errScriptDone
	}
	in := s.inputs[s.reads]
	s.reads++
	return in, nil
}

type recorder struct {
	screens []Screen
}

func (r *recorder) Render(screen Screen) error {
	r.screens = append(r.screens, screen)
	return nil
}

func (r *recorder) statuses() []Status {
	out := make([]Status, len(r.screens))
	for i, s := range r.screens {
		out[i] = s.Status
	}
	return out
}

type sequencePicker struct {
	words []string
	next  int
}

func (p *sequencePicker) RandomWord() string {
	w := p.words[p.next%len(p.words)]
	p.next++
	return w
}

func mustSession(t *testing.T, secret string, count int) *Session {
	t.Helper()
	s, err := NewSession(secret, newTestFrames(count))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

func TestSessionRejectsSmallFrameSets(t *testing.T) {
	for _, count := range []int{0, 1, 2} {
		frames := make(testFrames, count)
		if _, err := NewSession("go", frames); !errors.Is(err, ErrTooFewFrames) {
			t.Fatalf("count %d: expected ErrTooFewFrames, got %v", count, err)
		}
		if _, err := NewDictionarySession(&sequencePicker{words: []string{"go"}}, frames); !errors.Is(err, ErrTooFewFrames) {
			t.Fatalf("count %d: expected ErrTooFewFrames, got %v", count, err)
		}
	}
}

func TestSessionFirstTurnDoesNotReadInput(t *testing.T) {
	s := mustSession(t, "go", 4)
	src := keys("g")
	status, err := s.Next(src)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if status != AwaitingFirstGuess {
		t.Fatalf("expected AwaitingFirstGuess, got %v", status)
	}
	if src.reads != 0 {
		t.Fatalf("first turn consumed %d inputs", src.reads)
	}
}

func TestSessionVictoryEndToEnd(t *testing.T) {
	s := mustSession(t, "go", 4)
	rec := &recorder{}
	src := keys("go!")
	final, err := s.Run(src, rec)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if final != Victory {
		t.Fatalf("expected Victory, got %v", final)
	}
	if src.reads != 3 {
		t.Fatalf("expected the finished screen to wait for a key, read %d inputs", src.reads)
	}
	want := []Status{AwaitingFirstGuess, CorrectRepeat, Victory}
	got := rec.statuses()
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("statuses %v, want %v", got, want)
	}
	last := rec.screens[len(rec.screens)-1]
	if last.Errors != 0 {
		t.Fatalf("expected zero errors, got %d", last.Errors)
	}
	if last.Frame != "victory\n" {
		t.Fatalf("expected victory frame, got %q", last.Frame)
	}
	if last.Mask != " g o" || last.Guessed != "G O" {
		t.Fatalf("unexpected screen %+v", last)
	}
}

func TestSessionLossThreshold(t *testing.T) {
	s := mustSession(t, "go", 7)
	s.Begin()
	for i, letter := range []rune{'a', 'b', 'c', 'd'} {
		if status := s.Turn(KeyInput(letter)); status != Incorrect {
			t.Fatalf("wrong guess %d: expected Incorrect, got %v", i+1, status)
		}
	}
	if status := s.Turn(KeyInput('e')); status != Loss {
		t.Fatalf("5th wrong guess: expected Loss, got %v", status)
	}
	if s.Word().Errors() != 5 {
		t.Fatalf("expected 5 errors, got %d", s.Word().Errors())
	}
	screen, err := s.Screen()
	if err != nil {
		t.Fatalf("Screen failed: %v", err)
	}
	if screen.Frame != "frame5\n" {
		t.Fatalf("expected last loss frame, got %q", screen.Frame)
	}
	if status := s.Turn(KeyInput('g')); status != Loss {
		t.Fatalf("finished game must ignore input, got %v", status)
	}
}

func TestSessionAlreadyGuessed(t *testing.T) {
	s := mustSession(t, "cat", 8)
	s.Begin()
	if status := s.Turn(KeyInput('x')); status != Incorrect {
		t.Fatalf("expected Incorrect, got %v", status)
	}
	if status := s.Turn(KeyInput('X')); status != AlreadyGuessed {
		t.Fatalf("expected AlreadyGuessed, got %v", status)
	}
	if s.Word().Errors() != 1 {
		t.Fatalf("duplicate guess mutated errors: %d", s.Word().Errors())
	}
	if status := s.Turn(KeyInput('c')); status != CorrectRepeat {
		t.Fatalf("expected CorrectRepeat, got %v", status)
	}
	if status := s.Turn(KeyInput('c')); status != AlreadyGuessed {
		t.Fatalf("expected AlreadyGuessed, got %v", status)
	}
}

func TestSessionInvalidInput(t *testing.T) {
	s := mustSession(t, "cat", 8)
	s.Begin()
	for _, in := range []Input{KeyInput('1'), KeyInput(' '), {Kind: InputLetter, Letter: '?'}, {}} {
		if status := s.Turn(in); status != InvalidInput {
			t.Fatalf("input %+v: expected InvalidInput, got %v", in, status)
		}
	}
	if s.Word().Errors() != 0 || len(s.Word().GuessedLetters()) != 0 {
		t.Fatalf("invalid input mutated the word")
	}
}

func TestRunExitConfirmed(t *testing.T) {
	s := mustSession(t, "cat", 8)
	rec := &recorder{}
	final, err := s.Run(keys("c*y"), rec)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if final != ExitConfirm {
		t.Fatalf("expected ExitConfirm, got %v", final)
	}
	want := []Status{AwaitingFirstGuess, CorrectRepeat, ExitConfirm}
	if fmt.Sprint(rec.statuses()) != fmt.Sprint(want) {
		t.Fatalf("statuses %v, want %v", rec.statuses(), want)
	}
}

func TestRunExitDeclinedResumesExplicitWord(t *testing.T) {
	s := mustSession(t, "cat", 8)
	rec := &recorder{}
	final, err := s.Run(keys("cx*nat "), rec)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if final != Victory {
		t.Fatalf("expected Victory, got %v", final)
	}
	want := []Status{AwaitingFirstGuess, CorrectRepeat, Incorrect, ExitConfirm, AwaitingFirstGuess, CorrectRepeat, Victory}
	if fmt.Sprint(rec.statuses()) != fmt.Sprint(want) {
		t.Fatalf("statuses %v, want %v", rec.statuses(), want)
	}
	resumed := rec.screens[4]
	if resumed.Errors != 1 || resumed.Guessed != "C X" {
		t.Fatalf("expected progress to survive the exit prompt, got %+v", resumed)
	}
}

func TestRunExitDeclinedRestartsDictionaryGame(t *testing.T) {
	picker := &sequencePicker{words: []string{"cat", "dog"}}
	s, err := NewDictionarySession(picker, newTestFrames(8))
	if err != nil {
		t.Fatalf("NewDictionarySession failed: %v", err)
	}
	rec := &recorder{}
	final, err := s.Run(keys("cx*ndog "), rec)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if final != Victory {
		t.Fatalf("expected Victory, got %v", final)
	}
	restarted := rec.screens[4]
	if restarted.Status != AwaitingFirstGuess {
		t.Fatalf("expected AwaitingFirstGuess after decline, got %v", restarted.Status)
	}
	if restarted.Errors != 0 || restarted.Guessed != "" || restarted.Mask != " _ _ _" {
		t.Fatalf("expected a fresh word after decline, got %+v", restarted)
	}
	if picker.next != 2 {
		t.Fatalf("expected a second word to be picked, got %d picks", picker.next)
	}
}

func TestDeclineForTerminalUI(t *testing.T) {
	s := mustSession(t, "cat", 8)
	s.Begin()
	s.Turn(KeyInput('c'))
	if status := s.Turn(ExitInput); status != ExitConfirm {
		t.Fatalf("expected ExitConfirm, got %v", status)
	}
	if status := s.Decline(); status != AwaitingFirstGuess {
		t.Fatalf("expected AwaitingFirstGuess, got %v", status)
	}
	if !s.Word().Guessed('c') {
		t.Fatalf("explicit word progress lost on decline")
	}
}

func TestRunPropagatesInputErrors(t *testing.T) {
	s := mustSession(t, "cat", 8)
	_, err := s.Run(keys("c"), &recorder{})
	if !errors.Is(err, errScriptDone) {
		t.Fatalf("expected script error, got %v", err)
	}
}

func TestScreenFrameFollowsErrors(t *testing.T) {
	s := mustSession(t, "cat", 8)
	s.Begin()
	s.Turn(KeyInput('q'))
	s.Turn(KeyInput('w'))
	screen, err := s.Screen()
	if err != nil {
		t.Fatalf("Screen failed: %v", err)
	}
	if screen.Frame != "frame2\n" {
		t.Fatalf("expected frame2, got %q", screen.Frame)
	}
	if !strings.Contains(screen.Status.Message(), "incorrect") {
		t.Fatalf("unexpected status %v", screen.Status)
	}
}

func TestRunLossWaitsForKey(t *testing.T) {
	s := mustSession(t, "go", 3)
	src := keys("zq")
	final, err := s.Run(src, &recorder{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if final != Loss {
		t.Fatalf("expected Loss, got %v", final)
	}
	if src.reads != 2 {
		t.Fatalf("expected the key after the loss to be consumed, read %d inputs", src.reads)
	}
}

func TestRunFinishedGameAcceptsClosedInput(t *testing.T) {
	s := mustSession(t, "go", 4)
	src := keys("go")
	src.eof = true
	final, err := s.Run(src, &recorder{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if final != Victory {
		t.Fatalf("expected Victory, got %v", final)
	}
}

func TestRunFinishedGamePropagatesReadErrors(t *testing.T) {
	s := mustSession(t, "go", 4)
	final, err := s.Run(keys("go"), &recorder{})
	if !errors.Is(err, errScriptDone) {
		t.Fatalf("expected script error, got %v", err)
	}
	if final != Victory {
		t.Fatalf("expected Victory with the error, got %v", final)
	}
}
