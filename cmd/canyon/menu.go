package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/canyon-runner/internal/games/canyon"
	"github.com/vovakirdan/canyon-runner/internal/platform/tui"
)

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive main menu",
		Long: `Start Canyon Runner in menu mode.

Pick Play to enter your name and start a session. After the session
ends you return to the menu. High Scores shows the top five runs.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  canyon menu
  canyon menu --fps 30
  canyon menu --backend sqlite --scores ./scores.db`,
		Args: cobra.NoArgs,
		RunE: a.runMenu,
	}
}

func (a *app) runMenu(_ *cobra.Command, _ []string) error {
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
	rt := a.runtime(width, height)

	for {
		res, err := tui.RunMenu(rt)
		if err != nil {
			return err
		}
		rt.ScreenW, rt.ScreenH = res.Config.ScreenW, res.Config.ScreenH

		switch res.Choice {
		case tui.ChoicePlay:
			name, ok, err := tui.RunNameEntry(rt.PlayerName, rt.ScreenW)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			rt.PlayerName = name
			if err := tui.Run(canyon.New(), board, logger, rt); err != nil {
				return err
			}

		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(board, rt.ScreenW)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
