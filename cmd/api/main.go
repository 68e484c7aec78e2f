package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/01moynul/juegosdunz-vr/internal/config"
	"github.com/01moynul/juegosdunz-vr/internal/database"
	"github.com/01moynul/juegosdunz-vr/internal/handlers"
	"github.com/01moynul/juegosdunz-vr/internal/logging"
	"github.com/01moynul/juegosdunz-vr/internal/routes"
	"github.com/01moynul/juegosdunz-vr/internal/store"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// storeOpener builds the store a one-shot command runs against, plus the
// closer that releases its connection.
type storeOpener func() (*store.Store, io.Closer)

func openStore() (*store.Store, io.Closer) {
	_, provider, st := bootstrap()
	return st, provider
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(openStore)
}

func newRootCmdWith(open storeOpener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "api",
		Short:        "JuegosDunz VR storefront API",
		SilenceUsage: true,
		RunE:         runServe,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (default)",
		RunE:  runServe,
	})
	rootCmd.AddCommand(newDiscountCmd(open))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "juegosdunz-vr %s (commit: %s)\n", version, commit)
		},
	})

	return rootCmd
}

// bootstrap loads configuration, sets up logging and builds the shared
// provider and store every command needs.
func bootstrap() (config.Config, *database.Provider, *store.Store) {
	cfg := config.Load()
	logging.Apply(cfg.LogLevel, cfg.LogFile)

	provider := database.NewProvider(cfg.DB)
	return cfg, provider, store.New(provider, log.Logger)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, provider, st := bootstrap()
	defer func() {
		if err := provider.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database pool")
		}
	}()

	// The connection is built on first use; doing it here surfaces bad
	// credentials at startup instead of on the first request.
	if _, err := provider.Get(cmd.Context()); err != nil {
		log.Error().Err(err).Msg("Failed to connect to database")
		return err
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	app := &handlers.Handlers{
		Store: st,
		DB:    provider,
	}
	router := routes.SetupRouter(app, cfg.CORSOrigin)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting JuegosDunz VR API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("Failed to start server")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newDiscountCmd(open storeOpener) *cobra.Command {
	var gameID, percent int64

	cmd := &cobra.Command{
		Use:   "discount",
		Short: "Apply a percentage discount to a game through AplicarDescuento",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, closer := open()
			defer closer.Close()

			res := st.ApplyDiscount(cmd.Context(), gameID, percent)
			if !res.OK {
				return fmt.Errorf("discount not applied to game %d: %s failure", gameID, res.Err.Kind)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d%% discount to game %d\n", percent, gameID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&gameID, "game", 0, "Game id (id_juego)")
	cmd.Flags().Int64Var(&percent, "percent", 0, "Discount percentage; validated by the stored procedure")
	_ = cmd.MarkFlagRequired("game")
	_ = cmd.MarkFlagRequired("percent")

	return cmd
}
