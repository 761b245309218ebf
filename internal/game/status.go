package game

// Status is the outcome of the most recent turn.
type Status int

const (
	AwaitingFirstGuess Status = iota
	CorrectRepeat
	Incorrect
	InvalidInput
	AlreadyGuessed
	Victory
	Loss
	ExitConfirm
)

// Color is the display class of a status message.
type Color int

const (
	ColorNeutral Color = iota
	ColorSuccess
	ColorDanger
	ColorWarning
	ColorWarningAlt
	ColorDebug
)

type statusEntry struct {
	name    string
	message string
	color   Color
}

var statusTable = map[Status]statusEntry{
	AwaitingFirstGuess: {"awaiting-first-guess", "Awaiting Guess...", ColorNeutral},
	CorrectRepeat:      {"correct", "Correct! Guess again.", ColorSuccess},
	Incorrect:          {"incorrect", "Nope, That's incorrect. Try Again.", ColorDanger},
	InvalidInput:       {"invalid-input", "Is that even a letter? Try Again.", ColorWarning},
	AlreadyGuessed:     {"already-guessed", "That letter seems familiar... Try again.", ColorWarning},
	Victory:            {"victory", "You Win! You should buy a lottery ticket.", ColorSuccess},
	Loss:               {"loss", "You lose. Better luck next time loser!", ColorDanger},
	ExitConfirm:        {"exit-confirm", "Are you sure you want to exit? Y/N", ColorWarningAlt},
}

// Message returns the text shown for the status.
func (s Status) Message() string {
	if e, ok := statusTable[s]; ok {
		return e.message
	}
	return "(default)"
}

// Color returns the display class for the status message.
func (s Status) Color() Color {
	if e, ok := statusTable[s]; ok {
		return e.color
	}
	return ColorDebug
}

// Terminal reports whether the loop stops requesting turns after s.
func (s Status) Terminal() bool {
	switch s {
	case Victory, Loss, ExitConfirm:
		return true
	default:
		return false
	}
}

// Prompt returns the idle line shown under the status message.
func (s Status) Prompt() string {
	switch s {
	case ExitConfirm:
		return ""
	case Victory, Loss:
		return "Press Any Key to Continue. . ."
	default:
		return "Type a Letter to guess. . ."
	}
}

func (s Status) String() string {
	if e, ok := statusTable[s]; ok {
		return e.name
	}
	return "unknown"
}
