package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RohitDatta06/gamehub/internal/client"
	"github.com/RohitDatta06/gamehub/internal/config"
	"github.com/RohitDatta06/gamehub/internal/host"
	"github.com/RohitDatta06/gamehub/internal/platform/tui"
	"github.com/RohitDatta06/gamehub/internal/registry"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move
  Space        - Flap / rotate / serve
  Mouse        - Click (Minesweeper: left opens, right flags)
  R            - Restart
  S            - Submit score (after game over)
  Tab          - Toggle leaderboard
  Q/Ctrl+C     - Quit

Scores are saved to the local database under --player, or to a score API
with --api after 'gamehub login'.

Difficulty options (Tetris):
  easy, normal, hard - Starting speed, then progresses with lines cleared
  fixed              - No progression

Examples:
  gamehub play snake
  gamehub play tetris --difficulty hard
  gamehub play pong --config ./my-games.yaml
  gamehub play flappy-bird --api http://localhost:4000`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game and Tab for the
scoreboard. Leaving a game returns to the menu.

Examples:
  gamehub menu
  gamehub menu --fps 30 --player alice`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runSession("")
	},
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'gamehub list' to see available games)", gameID)
	}
	return runSession(gameID)
}

// runSession runs a local session; an empty gameID starts at the menu.
func runSession(gameID string) error {
	tuning, err := config.LoadGames(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyTetrisPreset(&tuning.Tetris, preset)
	}

	cfg := tui.Config{
		RuntimeConfig: runtimeConfig(),
		Tuning:        &tuning,
	}

	closeStore := attachCollaborators(&cfg)
	defer closeStore()

	return tui.Run(cfg, gameID)
}

// attachCollaborators wires score submission and the leaderboard into cfg:
// the remote API when --api is set, otherwise the local database. A missing
// database or login leaves the arcade playable without scores.
func attachCollaborators(cfg *tui.Config) func() {
	if flagAPI != "" {
		creds, err := client.LoadCredentials(flagAPI)
		if err != nil {
			if errors.Is(err, client.ErrNoCredentials) {
				logger.Warn("not logged in, scores will not be submitted", "api", flagAPI)
			} else {
				logger.Warn("cannot read stored session", "err", err)
			}
			cfg.Board = client.New(flagAPI)
			return func() {}
		}
		c := client.New(flagAPI, client.WithRefreshToken(creds.RefreshToken))
		cfg.Player = creds.Username
		cfg.Submitter = c
		cfg.Board = c
		return func() {}
	}

	store, err := openSeededStore(context.Background(), dbPath())
	if err != nil {
		logger.Warn("scores disabled", "err", err)
		return func() {}
	}
	cfg.Player = playerName()
	local := host.NewLocal(store, cfg.Player)
	cfg.Submitter = local
	cfg.Board = local
	return func() { store.Close() }
}
