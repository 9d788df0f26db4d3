// internal/render/board.go
//
// View model for the guess grid.
// Turns a *game.Game into rows of colored cells that any surface (JSON, terminal)
// can draw without knowing the game rules.
//
// Direction:
//   - The grid is right-to-left. Cell.Column 0 is the rightmost glyph and holds
//     the first character of the word.
//   - Row.Cells is in logical (column) order; Row.LTR gives the order a
//     left-to-right surface must paint them in.

package render

import (
	"github.com/robalobadob/hads/internal/game"
)

// Color names used by every surface.
type Color string

const (
	ColorCorrect Color = "green"
	ColorPresent Color = "yellow"
	ColorAbsent  Color = "red"
	ColorNeutral Color = "black"
)

const blank = " "

type Cell struct {
	Column int    `json:"column"`
	Char   string `json:"char"`
	Color  Color  `json:"color"`
}

type Row struct {
	Index  int    `json:"index"`
	Active bool   `json:"active"`
	Played bool   `json:"played"`
	Cells  []Cell `json:"cells"`
}

// Board is the full grid plus its text direction.
type Board struct {
	Direction string `json:"direction"`
	Width     int    `json:"width"`
	Rows      []Row  `json:"rows"`
}

// ColorOf maps a mark to its display color.
func ColorOf(m game.Mark) Color {
	switch m {
	case game.MarkCorrect:
		return ColorCorrect
	case game.MarkPresent:
		return ColorPresent
	case game.MarkAbsent:
		return ColorAbsent
	}
	return ColorNeutral
}

// Grid builds the board for g.
//
// The active row always shows the in-progress guess in the neutral color,
// even when it already holds an attempt (a re-selected row). Other rows show
// their attempt, or blanks when unplayed.
func Grid(g *game.Game) Board {
	width := g.Len()
	b := Board{Direction: "rtl", Width: width, Rows: make([]Row, g.MaxAttempts)}
	for i := 0; i < g.MaxAttempts; i++ {
		active := i == g.ActiveRow
		attempt := g.Attempts[i]
		row := Row{Index: i, Active: active, Played: attempt != nil, Cells: make([]Cell, width)}

		var guess []rune
		if active {
			guess = []rune(g.CurrentGuess)
		}
		for col := 0; col < width; col++ {
			c := Cell{Column: col, Char: blank, Color: ColorNeutral}
			switch {
			case active:
				if col < len(guess) {
					c.Char = string(guess[col])
				}
			case col < len(attempt):
				c.Char = attempt[col].Char
				c.Color = ColorOf(attempt[col].Mark)
			}
			row.Cells[col] = c
		}
		b.Rows[i] = row
	}
	return b
}

// LTR returns the cells in left-to-right paint order (highest column first).
func (r Row) LTR() []Cell {
	out := make([]Cell, len(r.Cells))
	for i, c := range r.Cells {
		out[len(r.Cells)-1-i] = c
	}
	return out
}
