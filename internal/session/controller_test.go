package session

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/robalobadob/hads/internal/game"
)

func newController(t *testing.T, target string) *Controller {
	t.Helper()
	g, err := game.New("s1", target, 6)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return New(g, 100*time.Millisecond)
}

func TestTypeThenSubmitWins(t *testing.T) {
	c := newController(t, "CAT")
	if _, err := c.Dispatch(Event{Kind: KindType, Text: "CATS"}); err != nil {
		t.Fatalf("type: %v", err)
	}
	if c.Game().CurrentGuess != "CAT" {
		t.Fatalf("buffer = %q", c.Game().CurrentGuess)
	}
	notices, err := c.Dispatch(Event{Kind: KindSubmit})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(notices) != 1 || notices[0].Kind != NoticeWon {
		t.Fatalf("notices = %+v", notices)
	}
	if c.Game().Status != game.StatusWon {
		t.Fatalf("status = %s", c.Game().Status)
	}
}

func TestSubmitLengthMismatch(t *testing.T) {
	c := newController(t, "گربه ماهی")
	_, _ = c.Dispatch(Event{Kind: KindType, Text: "گربه"})
	before := *c.Game()

	notices, err := c.Dispatch(Event{Kind: KindSubmit})
	if !errors.Is(err, game.ErrLengthMismatch) {
		t.Fatalf("err = %v", err)
	}
	if len(notices) != 1 || notices[0].Kind != NoticeLengthMismatch || notices[0].Expected != 9 {
		t.Fatalf("notices = %+v", notices)
	}
	if notices[0].Message != "کلمه باید 9 حرفی باشد!" {
		t.Fatalf("message = %q", notices[0].Message)
	}
	after := *c.Game()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("state changed on mismatch")
	}
}

func TestExplicitSubmitTextOverridesBuffer(t *testing.T) {
	c := newController(t, "CAT")
	_, _ = c.Dispatch(Event{Kind: KindType, Text: "DO"})
	if _, err := c.Dispatch(Event{Kind: KindSubmit, Text: "DOG"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if c.Game().Attempts[0] == nil || c.Game().ActiveRow != 1 {
		t.Fatalf("explicit guess not applied: %+v", c.Game())
	}
}

func TestLossRevealsTarget(t *testing.T) {
	c := newController(t, "CAT")
	var notices []Notice
	for i := 0; i < 6; i++ {
		var err error
		notices, err = c.Dispatch(Event{Kind: KindSubmit, Text: "DOG"})
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	if len(notices) != 1 || notices[0].Kind != NoticeLost || notices[0].Target != "CAT" {
		t.Fatalf("notices = %+v", notices)
	}
	if _, err := c.Dispatch(Event{Kind: KindSubmit, Text: "CAT"}); !errors.Is(err, game.ErrGameFinished) {
		t.Fatalf("expected ErrGameFinished, got %v", err)
	}
}

func TestSelectRequestsFocus(t *testing.T) {
	c := newController(t, "CAT")
	notices, err := c.Dispatch(Event{Kind: KindSelect, Row: 3})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(notices) != 1 || notices[0].Kind != NoticeRequestFocus || notices[0].Delay != 0 {
		t.Fatalf("notices = %+v", notices)
	}
	if c.Game().ActiveRow != 3 {
		t.Fatalf("active row = %d", c.Game().ActiveRow)
	}
	if _, err := c.Dispatch(Event{Kind: KindSelect, Row: 9}); !errors.Is(err, game.ErrRowOutOfRange) {
		t.Fatalf("expected ErrRowOutOfRange, got %v", err)
	}
}

func TestResetReplacesGame(t *testing.T) {
	c := newController(t, "CAT")
	_, _ = c.Dispatch(Event{Kind: KindSubmit, Text: "CAT"})
	old := c.Game()

	notices, err := c.Dispatch(Event{Kind: KindReset})
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if c.Game() == old {
		t.Fatalf("reset must produce a new value")
	}
	fresh, _ := game.New("s1", "CAT", 6)
	if !reflect.DeepEqual(c.Game(), fresh) {
		t.Fatalf("reset state = %+v", c.Game())
	}
	if len(notices) != 1 || notices[0].Kind != NoticeRequestFocus || notices[0].DelayMs != 100 {
		t.Fatalf("notices = %+v", notices)
	}
}

func TestUnknownEvent(t *testing.T) {
	c := newController(t, "CAT")
	if _, err := c.Dispatch(Event{Kind: "jump"}); !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("err = %v", err)
	}
}
