// internal/session/controller.go
//
// Controller owns one game and turns input events into state transitions.
// Responsibilities:
//   - Dispatch type/submit/select/reset events to the engine.
//   - Emit user-facing notices (length mismatch, win, loss, focus requests).
//   - Replace the game wholesale on reset.
//
// A Controller has exactly one writer: the surface that feeds it events.
// It is not safe for concurrent use; stores serialize access per game.

package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hads/internal/game"
	"github.com/robalobadob/hads/internal/words"
)

// Kind names an input event.
type Kind string

const (
	KindType   Kind = "type"
	KindSubmit Kind = "submit"
	KindSelect Kind = "select"
	KindReset  Kind = "reset"
)

// Event is one user action.
type Event struct {
	Kind Kind
	Text string // type: new buffer; submit: optional explicit guess
	Row  int    // select
}

var ErrUnknownEvent = errors.New("unknown event")

// Controller drives a single game.
type Controller struct {
	game    *game.Game
	refocus time.Duration
}

// New wraps g. refocus is the delay attached to the focus request emitted after reset.
func New(g *game.Game, refocus time.Duration) *Controller {
	return &Controller{game: g, refocus: refocus}
}

// Game returns the current game value. After a reset this is a new pointer.
func (c *Controller) Game() *game.Game { return c.game }

// Dispatch applies ev and returns the notices the surface should show.
// Engine errors are returned as-is (wrapped) so callers can match them
// with errors.Is; a length mismatch also yields its notice.
func (c *Controller) Dispatch(ev Event) ([]Notice, error) {
	log.Debug().Str("game", c.game.ID).Str("event", string(ev.Kind)).Int("row", c.game.ActiveRow).Msg("dispatch")

	switch ev.Kind {
	case KindType:
		c.game.UpdateCurrentGuess(words.Normalize(ev.Text))
		return nil, nil

	case KindSubmit:
		return c.submit(ev.Text)

	case KindSelect:
		if err := c.game.SelectRow(ev.Row); err != nil {
			return nil, fmt.Errorf("select row %d: %w", ev.Row, err)
		}
		return []Notice{requestFocus(0)}, nil

	case KindReset:
		c.game = c.game.Reset()
		return []Notice{requestFocus(c.refocus)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Kind)
}

func (c *Controller) submit(text string) ([]Notice, error) {
	guess := c.game.CurrentGuess
	if text != "" {
		guess = text
	}
	guess = words.Normalize(guess)

	_, status, err := c.game.SubmitGuess(guess)
	switch {
	case errors.Is(err, game.ErrLengthMismatch):
		return []Notice{lengthMismatch(c.game.Len())}, fmt.Errorf("submit: %w", err)
	case err != nil:
		return nil, fmt.Errorf("submit: %w", err)
	}

	switch status {
	case game.StatusWon:
		log.Info().Str("game", c.game.ID).Int("row", c.game.ActiveRow).Msg("game won")
		return []Notice{won()}, nil
	case game.StatusLost:
		log.Info().Str("game", c.game.ID).Msg("game lost")
		return []Notice{lost(c.game.Target())}, nil
	}
	return nil, nil
}
