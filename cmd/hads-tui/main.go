// Command hads-tui plays the game in a terminal.
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hads/internal/config"
	"github.com/robalobadob/hads/internal/game"
	"github.com/robalobadob/hads/internal/session"
	"github.com/robalobadob/hads/internal/tui"
	"github.com/robalobadob/hads/internal/words"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hads-tui:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal is owned by the UI; logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(cfg.LogLevel)

	target, err := words.Target(cfg.TargetWord, cfg.TargetFile)
	if err != nil {
		return err
	}
	g, err := game.New(uuid.NewString(), target, cfg.MaxAttempts)
	if err != nil {
		return err
	}

	m := tui.NewModel(session.New(g, cfg.RefocusDelay))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
