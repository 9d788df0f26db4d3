// internal/game/engine.go
//
// Core game engine for a single game instance.
// Responsibilities:
//   - Create games with a fixed target and a fixed number of rows.
//   - Score guesses letter by letter (Evaluate).
//   - Apply the row operations: submit, select, type, reset.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Lengths are measured in runes; the target is usually not ASCII.
//   - Evaluate does no letter-count bookkeeping: every guessed letter that occurs
//     anywhere in the target is marked present, however many times it repeats.

package game

import "unicode/utf8"

const defaultMaxAttempts = 6

// New constructs a game with all rows empty.
// maxAttempts <= 0 falls back to the default of 6 rows.
func New(id, answer string, maxAttempts int) (*Game, error) {
	if answer == "" {
		return nil, ErrEmptyTarget
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &Game{
		ID:          id,
		Answer:      answer,
		MaxAttempts: maxAttempts,
		Attempts:    make([]Attempt, maxAttempts),
		Status:      StatusPlaying,
	}, nil
}

// Len is the target length L in runes.
func (g *Game) Len() int { return utf8.RuneCountInString(g.Answer) }

// Evaluate classifies every rune of guess against target.
// Callers must pass equal-length inputs; guess runes past the end of the
// target can never be correct, but Evaluate does not panic on them.
func Evaluate(guess, target string) Attempt {
	tr := []rune(target)
	gr := []rune(guess)

	present := make(map[rune]struct{}, len(tr))
	for _, r := range tr {
		present[r] = struct{}{}
	}

	out := make(Attempt, len(gr))
	for i, r := range gr {
		mark := MarkAbsent
		switch {
		case i < len(tr) && r == tr[i]:
			mark = MarkCorrect
		default:
			if _, ok := present[r]; ok {
				mark = MarkPresent
			}
		}
		out[i] = LetterResult{Char: string(r), Mark: mark}
	}
	return out
}

// SubmitGuess scores guess into the active row.
// Returns the row's feedback, the resulting status, or an error.
//
// Validation rules:
//   - Game must still be playing (ErrGameFinished).
//   - Guess must be exactly Len() runes (ErrLengthMismatch).
//
// On error the game is left untouched.
func (g *Game) SubmitGuess(guess string) (Attempt, Status, error) {
	if g.Status.Terminal() {
		return nil, g.Status, ErrGameFinished
	}
	if utf8.RuneCountInString(guess) != g.Len() {
		return nil, g.Status, ErrLengthMismatch
	}

	feedback := Evaluate(guess, g.Answer)
	g.Attempts[g.ActiveRow] = feedback
	g.CurrentGuess = ""

	switch {
	case guess == g.Answer:
		g.Status = StatusWon
	case g.ActiveRow+1 >= g.MaxAttempts:
		g.Status = StatusLost
	default:
		g.ActiveRow++
	}
	return feedback, g.Status, nil
}

// SelectRow re-targets input at row and clears the current guess.
// A previously played row may be selected; its stored attempt stays
// until the next submit overwrites it.
func (g *Game) SelectRow(row int) error {
	if g.Status.Terminal() {
		return ErrGameFinished
	}
	if row < 0 || row >= g.MaxAttempts {
		return ErrRowOutOfRange
	}
	g.ActiveRow = row
	g.CurrentGuess = ""
	return nil
}

// UpdateCurrentGuess replaces the in-progress input, keeping at most Len() runes.
func (g *Game) UpdateCurrentGuess(text string) {
	g.CurrentGuess = truncateRunes(text, g.Len())
}

// Reset returns a fresh game with the same ID, target and row count.
// The receiver is not modified.
func (g *Game) Reset() *Game {
	fresh, _ := New(g.ID, g.Answer, g.MaxAttempts)
	return fresh
}

// Target reveals the answer.
func (g *Game) Target() string { return g.Answer }

// Played counts the rows holding an attempt.
func (g *Game) Played() int {
	n := 0
	for _, a := range g.Attempts {
		if a != nil {
			n++
		}
	}
	return n
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
