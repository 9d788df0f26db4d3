// internal/game/types.go
//
// Core type definitions for the guessing game.
// Defines:
//   - Mark: per-letter classification of a guess (correct/present/absent).
//   - LetterResult / Attempt: one submitted row and its feedback.
//   - Status: playing → won | lost.
//   - Game: state for a single game instance.

package game

import "errors"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter equals the target letter at the same index.
//   - "present": letter occurs somewhere else in the target.
//   - "absent":  letter does not occur in the target at all.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// LetterResult pairs one guessed character with its Mark.
type LetterResult struct {
	Char string `json:"char"`
	Mark Mark   `json:"mark"`
}

// Attempt is the feedback for one played row. A nil Attempt is an unplayed row.
type Attempt []LetterResult

// Status is the coarse state of a game.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusLost }

var (
	ErrLengthMismatch = errors.New("guess length does not match target")
	ErrGameFinished   = errors.New("game finished")
	ErrRowOutOfRange  = errors.New("row out of range")
	ErrEmptyTarget    = errors.New("target word is empty")
)

// Game holds the state of a single game.
// Fields are exported so stores can serialize the whole value.
type Game struct {
	ID           string    `json:"id"`           // Stable identifier, kept across Reset.
	Answer       string    `json:"answer"`       // The target word.
	MaxAttempts  int       `json:"maxAttempts"`  // Number of rows (typically 6).
	Attempts     []Attempt `json:"attempts"`     // len == MaxAttempts; nil entries are unplayed.
	ActiveRow    int       `json:"activeRow"`    // Row currently accepting input.
	CurrentGuess string    `json:"currentGuess"` // In-progress input, at most Len() runes.
	Status       Status    `json:"status"`
}
