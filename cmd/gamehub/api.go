package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/RohitDatta06/gamehub/internal/api"
	"github.com/RohitDatta06/gamehub/internal/auth"
)

var flagHTTPAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP score API",
	Long: `Start the HTTP API for accounts, the game catalog and leaderboards.
Routes are served under /api/v1.

Settings come from server.yaml (see --server-config). A JWT signing secret
is required: set api.jwt_secret there or GAMEHUB_JWT_SECRET. The database
can also be set with GAMEHUB_DB.

Examples:
  GAMEHUB_JWT_SECRET=$(openssl rand -hex 32) gamehub api
  gamehub api --addr :8080 --db ./gamehub.db`,
	Args: cobra.NoArgs,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagServerConfig, "server-config", "", "Path to server.yaml")
	apiCmd.Flags().StringVar(&flagHTTPAddr, "addr", "", "HTTP listen address (host:port)")
}

func runAPI(_ *cobra.Command, _ []string) error {
	srvCfg, err := loadServer(flagServerConfig)
	if err != nil {
		return err
	}
	if flagHTTPAddr != "" {
		srvCfg.API.Address = flagHTTPAddr
	}

	issuer, err := auth.NewIssuer(srvCfg.API.JWTSecret, srvCfg.API.AccessTTL, srvCfg.API.RefreshTTL)
	if errors.Is(err, auth.ErrNoSecret) {
		return fmt.Errorf("%w: set GAMEHUB_JWT_SECRET or api.jwt_secret in server.yaml", err)
	}
	if err != nil {
		return err
	}

	store, err := openSeededStore(context.Background(), srvCfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	apiLogger := logger.WithPrefix("gamehub-api")
	server := api.NewServer(store, issuer, srvCfg.API, catalog(), apiLogger)
	httpServer := &http.Server{
		Addr:              srvCfg.API.Address,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		apiLogger.Info("listening", "address", httpServer.Addr, "db", srvCfg.DBPath)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		apiLogger.Info("shutting down...")
	case err := <-errc:
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(ctx)
}
