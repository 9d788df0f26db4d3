// internal/tui/model.go
//
// Terminal front end.
// Responsibilities:
//   - Translate key presses into session events (type, submit, select, reset).
//   - Draw the grid right-to-left with lipgloss colors.
//   - Show the latest notice in a status line.
//   - Honor focus requests: after reset a delayed tick re-activates input on row 0.
//
// bubbletea delivers messages one at a time, so the controller has one writer.

package tui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hads/internal/game"
	"github.com/robalobadob/hads/internal/render"
	"github.com/robalobadob/hads/internal/session"
)

const title = "بازی حدس کلمه"

// focusMsg is delivered when a delayed focus request fires.
type focusMsg struct{}

// Model is the bubbletea model wrapping a session controller.
type Model struct {
	ctrl    *session.Controller
	theme   Theme
	status  string
	focused bool
	quit    bool
}

// NewModel builds a model around ctrl.
func NewModel(ctrl *session.Controller) Model {
	return Model{ctrl: ctrl, theme: DefaultTheme(), focused: true}
}

// Game exposes the current game (used by tests and the entry point).
func (m Model) Game() *game.Game { return m.ctrl.Game() }

// Focused reports whether input is currently routed to the active row.
func (m Model) Focused() bool { return m.focused }

// Status returns the status line text.
func (m Model) Status() string { return m.status }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case focusMsg:
		m.focused = true
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := m.ctrl.Game()
	switch k.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quit = true
		return m, tea.Quit
	case tea.KeyCtrlR:
		m.focused = false
		return m.apply(session.Event{Kind: session.KindReset})
	case tea.KeyUp:
		return m.apply(session.Event{Kind: session.KindSelect, Row: g.ActiveRow - 1})
	case tea.KeyDown:
		return m.apply(session.Event{Kind: session.KindSelect, Row: g.ActiveRow + 1})
	case tea.KeyEnter:
		return m.apply(session.Event{Kind: session.KindSubmit})
	case tea.KeyBackspace:
		if !m.focused {
			return m, nil
		}
		r := []rune(g.CurrentGuess)
		if len(r) == 0 {
			return m, nil
		}
		return m.apply(session.Event{Kind: session.KindType, Text: string(r[:len(r)-1])})
	case tea.KeyRunes, tea.KeySpace:
		if !m.focused {
			return m, nil
		}
		typed := string(k.Runes)
		if k.Type == tea.KeySpace {
			typed = " "
		}
		return m.apply(session.Event{Kind: session.KindType, Text: g.CurrentGuess + typed})
	}
	return m, nil
}

// apply dispatches ev and turns its notices into status text and commands.
func (m Model) apply(ev session.Event) (tea.Model, tea.Cmd) {
	notices, err := m.ctrl.Dispatch(ev)
	var cmds []tea.Cmd
	for _, n := range notices {
		switch n.Kind {
		case session.NoticeRequestFocus:
			cmds = append(cmds, focusAfter(n.Delay))
		default:
			m.status = noticeText(n)
		}
	}
	switch {
	case err == nil:
		if ev.Kind != session.KindType && len(notices) == 0 {
			m.status = ""
		}
	case errors.Is(err, game.ErrLengthMismatch):
		// notice already shown
	case errors.Is(err, game.ErrRowOutOfRange):
		// top or bottom edge
	case errors.Is(err, game.ErrGameFinished):
		m.status = "بازی تمام شد. Ctrl+R برای شروع مجدد"
	default:
		log.Error().Err(err).Msg("dispatch")
		m.status = err.Error()
	}
	return m, tea.Batch(cmds...)
}

// focusAfter schedules a fire-and-forget focus message.
func focusAfter(d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return focusMsg{} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return focusMsg{} })
}

func noticeText(n session.Notice) string {
	if n.Title == "" {
		return n.Message
	}
	return n.Title + " " + n.Message
}

func (m Model) View() string {
	if m.quit {
		return ""
	}
	g := m.ctrl.Game()
	board := render.Grid(g)

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("\n\n")
	for _, row := range board.Rows {
		b.WriteString(m.drawRow(row))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("Enter: ثبت · ↑/↓: ردیف · Ctrl+R: 🔄 شروع مجدد · Esc: خروج"))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Status.Render(m.status))
	}
	return b.String()
}

// drawRow paints a row for a left-to-right terminal: highest column first.
func (m Model) drawRow(row render.Row) string {
	cells := row.LTR()
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = m.theme.Cell(c.Color).Render(c.Char)
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if row.Active {
		return m.theme.ActiveRow.Render(line)
	}
	return m.theme.Row.Render(line)
}
