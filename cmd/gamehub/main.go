// gamehub is a terminal arcade with six classic games, a local scoreboard, an
// SSH arcade and an HTTP score API.
//
// Usage:
//
//	gamehub list               - List available games
//	gamehub play <game>        - Play a game
//	gamehub menu               - Pick games interactively
//	gamehub scores <game>      - Show the leaderboard for a game
//	gamehub stats              - Show a player's best scores
//	gamehub serve              - Start the SSH arcade
//	gamehub api                - Start the HTTP score API
//	gamehub register|login|logout
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.gamehub/gamehub.db)
//	--config <path>  - Game tuning YAML
//	--player <name>  - Player name for local scores
//	--api <url>      - Submit scores to a remote API instead of the local database
package main

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/RohitDatta06/gamehub/internal/config"
	"github.com/RohitDatta06/gamehub/internal/core"
	"github.com/RohitDatta06/gamehub/internal/registry"
	"github.com/RohitDatta06/gamehub/internal/storage"

	// Import games to register them
	_ "github.com/RohitDatta06/gamehub/internal/games/crossroad"
	_ "github.com/RohitDatta06/gamehub/internal/games/flappy"
	_ "github.com/RohitDatta06/gamehub/internal/games/minesweeper"
	_ "github.com/RohitDatta06/gamehub/internal/games/pong"
	_ "github.com/RohitDatta06/gamehub/internal/games/snake"
	_ "github.com/RohitDatta06/gamehub/internal/games/tetris"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagPlayer string
	flagAPI    string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "gamehub",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gamehub",
	Short: "GameHub - classic arcade games in your terminal",
	Long: `GameHub is a terminal arcade with Snake, Tetris, Flappy Bird,
Minesweeper, Cross the Road and Pong.

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Interactive game picker menu
  scores    - View a game's leaderboard
  stats     - View a player's best scores
  serve     - Start the SSH arcade
  api       - Start the HTTP score API
  register  - Create an account on a score API
  login     - Sign in to a score API
  logout    - Forget the stored session

Examples:
  gamehub list
  gamehub play snake
  gamehub menu --player alice
  gamehub serve
  gamehub api
  gamehub play tetris --api http://localhost:4000`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the database (default ~/.gamehub/gamehub.db)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a game tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name for local scores (default: OS user)")
	rootCmd.PersistentFlags().StringVar(&flagAPI, "api", "", "Score API base URL (e.g. http://localhost:4000)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

// runtimeConfig reads the terminal size and the timing flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// dbPath resolves --db, then GAMEHUB_DB, then the default location.
func dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	if v := os.Getenv("GAMEHUB_DB"); v != "" {
		return v
	}
	return config.DefaultDBPath()
}

func openStore() (*storage.Store, error) {
	store, err := storage.Open(dbPath())
	if err != nil {
		return nil, fmt.Errorf("opening scores database: %w", err)
	}
	return store, nil
}

// playerName returns --player or the OS user name.
func playerName() string {
	if name := strings.TrimSpace(flagPlayer); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

// catalog describes the registered games for the games table.
func catalog() []storage.Game {
	games := registry.List()
	out := make([]storage.Game, len(games))
	for i, g := range games {
		out[i] = storage.Game{Slug: g.ID, Title: g.Title, Description: g.Description}
	}
	return out
}

// loadServer reads server.yaml; --db wins over the file and GAMEHUB_DB.
func loadServer(path string) (config.Server, error) {
	cfg, err := config.LoadServer(path)
	if err != nil {
		return cfg, err
	}
	switch {
	case flagDBPath != "":
		cfg.DBPath = flagDBPath
	case cfg.DBPath == "":
		cfg.DBPath = config.DefaultDBPath()
	}
	return cfg, nil
}

// openSeededStore opens path and makes sure every registered game is in the
// catalog.
func openSeededStore(ctx context.Context, path string) (*storage.Store, error) {
	store, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	added, err := store.SeedGames(ctx, catalog())
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("seeding games: %w", err)
	}
	if added > 0 {
		logger.Info("catalog seeded", "added", added)
	}
	return store, nil
}
