package cmd

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
	"go.uber.org/zap"

	"github.com/arcanaland/nrhelper/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the card grid to a browser",
	Long: `Serve starts a local HTTP server rendering the card list as an image grid
with search, archetype, type, sort and staples controls.

Routes:
  GET /                 HTML grid
  GET /api/cards        filtered and sorted cards as JSON
  GET /api/archetypes   archetype list
  GET /health           health check`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("listen")
		if addr == "" {
			addr = cfg.Listen
		}

		srv := &http.Server{
			Addr:              addr,
			Handler:           web.NewServer(cat, logger.Named("http")).Router(),
			ReadTimeout:       10 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server listening", zap.String("addr", addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("listen: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown failed", zap.Error(err))
			_ = srv.Close()
		}
		logger.Info("server stopped")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", "", "address to listen on (default from config)")
}
