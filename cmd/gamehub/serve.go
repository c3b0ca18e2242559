package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/RohitDatta06/gamehub/internal/config"
	"github.com/RohitDatta06/gamehub/internal/platform/tui"
)

var (
	flagServerConfig string
	flagSSHAddr      string
	flagHostKey      string
	flagIdleTimeout  time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the game picker menu. The SSH
user name is the player: scores are saved under it in the server's database
and everyone shares the same leaderboards.

Settings come from server.yaml (see --server-config); flags override it.

Examples:
  gamehub serve                           # Listen on the configured address
  gamehub serve --ssh :2222               # Listen on port 2222
  gamehub serve --host-key ./my_host_key  # Use a specific host key
  gamehub serve --db ./gamehub.db         # Use a specific database

Users can connect with:
  ssh alice@localhost -p 2222`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServerConfig, "server-config", "", "Path to server.yaml")
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if missing)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Disconnect idle sessions after this long")
}

func runServe(_ *cobra.Command, _ []string) error {
	srvCfg, err := loadServer(flagServerConfig)
	if err != nil {
		return err
	}
	if flagSSHAddr != "" {
		srvCfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.SSH.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.SSH.IdleTimeout = flagIdleTimeout
	}

	tuning, err := config.LoadGames(flagConfig)
	if err != nil {
		return err
	}

	store, err := openSeededStore(context.Background(), srvCfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	rt := runtimeConfig()
	server, err := tui.NewSSHServer(srvCfg.SSH, store, rt, &tuning)
	if err != nil {
		return err
	}

	fmt.Printf("Starting GameHub SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
