package render

import (
	"testing"

	"github.com/robalobadob/hads/internal/game"
)

func TestGridFreshGame(t *testing.T) {
	g, _ := game.New("id", "CAT", 6)
	b := Grid(g)
	if b.Direction != "rtl" || b.Width != 3 || len(b.Rows) != 6 {
		t.Fatalf("unexpected board shape: %+v", b)
	}
	if !b.Rows[0].Active {
		t.Fatalf("row 0 should be active")
	}
	for _, row := range b.Rows {
		for _, c := range row.Cells {
			if c.Char != " " || c.Color != ColorNeutral {
				t.Fatalf("row %d col %d not blank: %+v", row.Index, c.Column, c)
			}
		}
	}
}

func TestGridColorsAndActiveRow(t *testing.T) {
	g, _ := game.New("id", "CAT", 6)
	_, _, _ = g.SubmitGuess("TAC")
	g.UpdateCurrentGuess("CA")

	b := Grid(g)
	played := b.Rows[0]
	if !played.Played || played.Active {
		t.Fatalf("row 0 flags wrong: %+v", played)
	}
	want := []Color{ColorPresent, ColorCorrect, ColorPresent}
	for i, c := range played.Cells {
		if c.Color != want[i] {
			t.Fatalf("col %d color = %s, want %s", i, c.Color, want[i])
		}
	}

	active := b.Rows[1]
	if !active.Active {
		t.Fatalf("row 1 should be active")
	}
	if active.Cells[0].Char != "C" || active.Cells[1].Char != "A" || active.Cells[2].Char != " " {
		t.Fatalf("active row cells = %+v", active.Cells)
	}
	for _, c := range active.Cells {
		if c.Color != ColorNeutral {
			t.Fatalf("active row must be neutral, got %s", c.Color)
		}
	}
}

func TestGridReselectedRowShowsInput(t *testing.T) {
	g, _ := game.New("id", "CAT", 6)
	_, _, _ = g.SubmitGuess("DOG")
	_ = g.SelectRow(0)

	row := Grid(g).Rows[0]
	if !row.Active || !row.Played {
		t.Fatalf("flags = %+v", row)
	}
	if row.Cells[0].Char != " " || row.Cells[0].Color != ColorNeutral {
		t.Fatalf("re-selected row should show the (empty) input, got %+v", row.Cells[0])
	}
}

func TestRowLTR(t *testing.T) {
	g, _ := game.New("id", "گرب", 6)
	g.UpdateCurrentGuess("گرب")
	ltr := Grid(g).Rows[0].LTR()
	got := ltr[0].Char + ltr[1].Char + ltr[2].Char
	if got != "برگ" {
		t.Fatalf("LTR paint order = %q", got)
	}
	if ltr[0].Column != 2 || ltr[2].Column != 0 {
		t.Fatalf("columns = %d..%d", ltr[0].Column, ltr[2].Column)
	}
}

func TestColorOfUnknown(t *testing.T) {
	if ColorOf(game.Mark("")) != ColorNeutral {
		t.Fatalf("unknown mark should be neutral")
	}
}
