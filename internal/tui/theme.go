package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/hads/internal/render"
)

// Theme holds the lipgloss styles used by the view.
type Theme struct {
	Title     lipgloss.Style
	Row       lipgloss.Style
	ActiveRow lipgloss.Style
	Help      lipgloss.Style
	Status    lipgloss.Style
	cells     map[render.Color]lipgloss.Style
}

func DefaultTheme() Theme {
	cell := lipgloss.NewStyle().Bold(true).Padding(0, 1).Underline(true)
	return Theme{
		Title:     lipgloss.NewStyle().Bold(true),
		Row:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#CCCCCC")),
		ActiveRow: lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("#0000FF")),
		Help:      lipgloss.NewStyle().Faint(true),
		Status:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F2D16B")),
		cells: map[render.Color]lipgloss.Style{
			render.ColorCorrect: cell.Foreground(lipgloss.Color("#2EA043")),
			render.ColorPresent: cell.Foreground(lipgloss.Color("#D29922")),
			render.ColorAbsent:  cell.Foreground(lipgloss.Color("#DA3633")),
			render.ColorNeutral: cell,
		},
	}
}

// Cell returns the style for a cell color.
func (t Theme) Cell(c render.Color) lipgloss.Style {
	if s, ok := t.cells[c]; ok {
		return s
	}
	return t.cells[render.ColorNeutral]
}
