package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canyon-runner/internal/storage"
)

func newScoresCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Print the leaderboard",
		Long: `Print the top five scores and a summary of every recorded run.

Examples:
  canyon scores
  canyon scores --all
  canyon scores --backend sqlite --scores ~/.canyon/scores.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runScores(cmd.OutOrStdout(), all)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "List every run instead of the top five")
	return cmd
}

func (a *app) runScores(out io.Writer, all bool) error {
	board, err := storage.Open(a.cfg.Storage.Backend, a.cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer board.Close()

	entries, err := board.All()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores - Canyon Runner")
	fmt.Fprintln(out)

	if len(entries) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'canyon play' to set the first high score!")
		return nil
	}

	shown := entries
	if !all && len(shown) > storage.TopN {
		shown = shown[:storage.TopN]
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Name", "Score")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "----", "-----")
	for i, e := range shown {
		fmt.Fprintf(out, "  %-4d  %-10s  %d\n", i+1, e.Name, e.Score)
	}

	st := storage.Summarize(entries)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs: %d  Best: %d  Mean: %.1f  StdDev: %.1f\n", st.Count, st.Best, st.Mean, st.StdDev)
	return nil
}
