/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devfolio/apiserver/config"
	"github.com/devfolio/apiserver/internal/logger"
	"github.com/devfolio/apiserver/internal/server"
	"github.com/devfolio/apiserver/internal/telemetry"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the devfolio API server",
	Long: `Starts the devfolio API server. Usage:

	devfolio server
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.ServerPort = port
		}

		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runServer(ctx, cfg, log)
	},
}

// runServer serves until ctx is cancelled or the listener fails. Every
// failure is logged before it is returned.
func runServer(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	shutdownTracing, err := telemetry.Init(ctx, cfg, log)
	if err != nil {
		log.Error("failed to init tracing", "error", err)
		return fmt.Errorf("init tracing: %w", err)
	}

	srv, err := server.New(ctx, cfg, log)
	if err != nil {
		log.Error("failed to start server", "error", err)
		_ = shutdownTracing(context.Background())
		return fmt.Errorf("start server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	var serveErr error
	select {
	case serveErr = <-errCh:
		if serveErr != nil {
			log.Error("server error", "error", serveErr)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("graceful shutdown failed", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("tracer shutdown failed", "error", err)
	}
	return serveErr
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().IntP("port", "p", 0, "Port to listen on (overrides SERVER_PORT)")
}
