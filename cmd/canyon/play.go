package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/canyon-runner/internal/games/canyon"
	"github.com/vovakirdan/canyon-runner/internal/platform/tui"
	"github.com/vovakirdan/canyon-runner/internal/storage"
)

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start a session right away",
		Long: `Start a Canyon Runner session with the configured player name.

Controls:
  A/D, Left/Right  - Run
  W/Up             - Jump (again in the air to double jump)
  S/Down           - Drop
  Space            - Throw
  P/Esc            - Pause
  R                - Restart
  B                - Summon a boss
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  canyon play
  canyon play --name amy --seed 42`,
		Args: cobra.NoArgs,
		RunE: a.runPlay,
	}
}

func (a *app) runPlay(_ *cobra.Command, _ []string) error {
	logger, closer, err := newFileLogger(a.cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	board := a.openBoard(logger)
	if board != nil {
		defer closeQuietly(logger, "leaderboard", board)
	}

	width, height := terminalSize()
	return tui.Run(canyon.New(), board, logger, a.runtime(width, height))
}

// openBoard opens the leaderboard. A failure is logged and play continues
// without saving.
func (a *app) openBoard(logger *log.Logger) storage.Leaderboard {
	board, err := storage.Open(a.cfg.Storage.Backend, a.cfg.Storage.Path)
	if err != nil {
		logger.Warn("scores disabled", "backend", a.cfg.Storage.Backend, "path", a.cfg.Storage.Path, "err", err)
		return nil
	}
	return board
}

// closeQuietly closes c and logs a failure.
func closeQuietly(logger *log.Logger, what string, c io.Closer) {
	if err := c.Close(); err != nil {
		logger.Warn("close failed", "what", what, "err", err)
	}
}
