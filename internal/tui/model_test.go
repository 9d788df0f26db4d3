package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/robalobadob/hads/internal/game"
	"github.com/robalobadob/hads/internal/session"
)

func newModel(t *testing.T, target string) Model {
	t.Helper()
	g, err := game.New("tui", target, 6)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return NewModel(session.New(g, time.Millisecond))
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return mm, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// drain runs cmd and feeds every resulting message back into m.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(t, m, c)
		}
	case nil:
	default:
		m, cmd = send(t, m, msg)
		m = drain(t, m, cmd)
	}
	return m
}

func TestTypingAndSubmit(t *testing.T) {
	m := newModel(t, "CAT")
	m = typeText(t, m, "DOGS")
	if m.Game().CurrentGuess != "DOG" {
		t.Fatalf("buffer = %q", m.Game().CurrentGuess)
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.Game().CurrentGuess != "DO" {
		t.Fatalf("after backspace = %q", m.Game().CurrentGuess)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.Status(), "3") {
		t.Fatalf("expected length warning, got %q", m.Status())
	}
	if m.Game().ActiveRow != 0 {
		t.Fatalf("mismatch must not advance")
	}

	m = typeText(t, m, "G")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Game().ActiveRow != 1 || m.Status() != "" {
		t.Fatalf("row=%d status=%q", m.Game().ActiveRow, m.Status())
	}

	m = typeText(t, m, "CAT")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Game().Status != game.StatusWon || !strings.Contains(m.Status(), "تبریک") {
		t.Fatalf("status = %s / %q", m.Game().Status, m.Status())
	}
}

func TestSelectRowKeys(t *testing.T) {
	m := newModel(t, "CAT")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Game().ActiveRow != 0 {
		t.Fatalf("up from row 0 should stay, got %d", m.Game().ActiveRow)
	}
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Game().ActiveRow != 1 {
		t.Fatalf("down = %d", m.Game().ActiveRow)
	}
	m = drain(t, m, cmd)
	if !m.Focused() {
		t.Fatalf("select should keep focus")
	}
}

func TestResetRefocusesAfterTick(t *testing.T) {
	m := newModel(t, "CAT")
	m = typeText(t, m, "DOG")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.Game().Played() != 0 || m.Game().ActiveRow != 0 {
		t.Fatalf("reset did not clear the game")
	}
	if m.Focused() {
		t.Fatalf("input should wait for the focus tick")
	}
	m = typeText(t, m, "X")
	if m.Game().CurrentGuess != "" {
		t.Fatalf("typing before refocus should be ignored")
	}

	m = drain(t, m, cmd)
	if !m.Focused() {
		t.Fatalf("focus tick not applied")
	}
	m = typeText(t, m, "X")
	if m.Game().CurrentGuess != "X" {
		t.Fatalf("typing after refocus = %q", m.Game().CurrentGuess)
	}
}

func TestViewDrawsRightToLeft(t *testing.T) {
	m := newModel(t, "گرب")
	m = typeText(t, m, "گرب")
	out := m.View()
	if !strings.Contains(out, title) {
		t.Fatalf("missing title")
	}
	grid := out[strings.Index(out, "\n\n")+2 : strings.LastIndex(out, "Enter")]
	ib, ig := strings.Index(grid, "ب"), strings.Index(grid, "گ")
	if ib < 0 || ig < 0 || ib > ig {
		t.Fatalf("expected last letter painted first (left), got view:\n%s", out)
	}
}

func TestQuit(t *testing.T) {
	m := newModel(t, "CAT")
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
	if m.View() != "" {
		t.Fatalf("view should be empty after quit")
	}
}
