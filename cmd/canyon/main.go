// canyon runs Canyon Runner, a side-scrolling action game for the terminal.
//
// Usage:
//
//	canyon                 - Start the main menu
//	canyon menu            - Start the main menu
//	canyon play            - Start a session right away
//	canyon scores          - Print the leaderboard
//
// Global flags:
//
//	--config <path>   - Config file (default search: ~/.canyon/config.yaml, ./configs/canyon.yaml)
//	--fps <rate>      - Tick rate (default: 20)
//	--seed <value>    - RNG seed for reproducible sessions (0 = clock)
//	--name <name>     - Player name attached to scores
//	--scores <path>   - Leaderboard location
//	--backend <kind>  - Leaderboard backend: file or sqlite
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canyon-runner/internal/config"
	"github.com/vovakirdan/canyon-runner/internal/core"
)

func main() {
	root, _ := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app holds flag values and the resolved configuration for one invocation.
type app struct {
	configPath string
	fps        int
	seed       int64
	name       string
	scores     string
	backend    string

	cfg config.Config
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:   "canyon",
		Short: "Canyon Runner - a side-scrolling action game for your terminal",
		Long: `Canyon Runner puts you on procedurally generated canyon terrain.
Dodge cacti, shoot bats and demons, collect powerups and survive the
werewolf and ogre bosses for as long as you can.

Available commands:
  menu     - Interactive main menu (default)
  play     - Start a session right away
  scores   - Print the leaderboard

Examples:
  canyon
  canyon play --name amy
  canyon play --seed 42 --fps 30
  canyon scores --backend sqlite --scores ~/.canyon/scores.db`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
		RunE:              a.runMenu,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to config YAML")
	flags.IntVar(&a.fps, "fps", 0, "Tick rate (ticks per second)")
	flags.Int64Var(&a.seed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&a.name, "name", "", "Player name for the leaderboard")
	flags.StringVar(&a.scores, "scores", "", "Path to the leaderboard")
	flags.StringVar(&a.backend, "backend", "", "Leaderboard backend: file or sqlite")

	root.AddCommand(newPlayCmd(a), newMenuCmd(a), newScoresCmd(a))
	return root, a
}

// loadConfig resolves the config file and applies flag overrides.
func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Runtime.TickRate = a.fps
	}
	if flags.Changed("seed") {
		cfg.Runtime.Seed = a.seed
	}
	if flags.Changed("name") {
		cfg.Player.Name = a.name
	}
	if flags.Changed("scores") {
		cfg.Storage.Path = a.scores
	}
	if flags.Changed("backend") {
		cfg.Storage.Backend = a.backend
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	return nil
}

// runtime builds the simulation settings for a terminal of the given size.
func (a *app) runtime(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   a.cfg.Runtime.TickRate,
		Seed:       a.cfg.Runtime.Seed,
		PlayerName: a.cfg.Player.Name,
	}
}
