package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/RohitDatta06/gamehub/internal/api"
	"github.com/RohitDatta06/gamehub/internal/client"
	"github.com/RohitDatta06/gamehub/internal/host"
	"github.com/RohitDatta06/gamehub/internal/platform/tui"
	"github.com/RohitDatta06/gamehub/internal/registry"
	"github.com/RohitDatta06/gamehub/internal/storage"
)

var (
	flagClear       bool
	flagLimit       int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the leaderboard for a game",
	Long: `Display the top scores for the specified game, from the local database
or from the score API given with --api.

Examples:
  gamehub scores snake
  gamehub scores tetris --limit 25
  gamehub scores pong -i
  gamehub scores snake --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a player's best score and play count per game",
	Long: `Display per-game statistics for --player in the local database, or for
the logged-in account when --api is set.

Examples:
  gamehub stats --player alice
  gamehub stats --api http://localhost:4000`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every local score for the game")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of entries to show (max 100)")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse all leaderboards in the terminal UI")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	desc, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q (run 'gamehub list' to see available games)", gameID)
	}

	var (
		reader host.LeaderboardReader
		store  *storage.Store
	)
	if flagAPI != "" {
		if flagClear {
			return errors.New("--clear only applies to the local database")
		}
		reader = client.New(flagAPI)
	} else {
		var err error
		if store, err = openStore(); err != nil {
			return err
		}
		defer store.Close()
		reader = host.NewLocal(store, "")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if flagClear {
		if err := store.ClearScores(ctx, gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", desc.Title)
		return nil
	}

	if flagInteractive {
		return tui.RunScoreboard(reader, runtimeConfig(), gameID)
	}

	standings, err := reader.Leaderboard(ctx, gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", desc.Title)
	fmt.Println()

	if len(standings) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'gamehub play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")
	for _, s := range standings {
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", s.Rank, s.Player, s.Value, s.At.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func runStats(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		who   string
		stats []api.StatDTO
	)
	if flagAPI != "" {
		creds, err := client.LoadCredentials(flagAPI)
		if err != nil {
			return fmt.Errorf("run 'gamehub login --api %s' first: %w", flagAPI, err)
		}
		who = creds.Username
		if stats, err = client.New(flagAPI, client.WithRefreshToken(creds.RefreshToken)).Stats(ctx); err != nil {
			return err
		}
	} else {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		who = playerName()
		u, err := store.UserByName(ctx, who)
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Printf("No games played by %s yet.\n", who)
			return nil
		}
		if err != nil {
			return err
		}
		rows, err := store.UserStats(ctx, u.ID)
		if err != nil {
			return err
		}
		for _, r := range rows {
			stats = append(stats, api.StatDTO{GameSlug: r.GameSlug, BestScore: r.BestScore, TotalPlays: r.TotalPlays})
		}
	}

	fmt.Printf("Stats - %s\n", who)
	fmt.Println()
	if len(stats) == 0 {
		fmt.Println("No games played yet.")
		return nil
	}
	fmt.Printf("  %-16s  %-10s  %s\n", "Game", "Best", "Plays")
	fmt.Printf("  %-16s  %-10s  %s\n", "----", "----", "-----")
	for _, s := range stats {
		fmt.Printf("  %-16s  %-10d  %d\n", s.GameSlug, s.BestScore, s.TotalPlays)
	}
	return nil
}
