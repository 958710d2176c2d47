package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
}

// connect opens the database, creating its directory if needed.
func (a *app) connect() error {
	err := os.MkdirAll(filepath.Dir(a.cfg.DBPath), os.ModePerm)
	if err != nil {
		return fmt.Errorf("could not create data directory: %w", err)
	}

	return models.Connect(a.cfg.DBPath)
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	if err := a.connect(); err != nil {
		return err
	}

	r, teardown, err := router.Config(a.cfg)
	defer teardown()
	if err != nil {
		return err
	}
	router.AttachRoutes(r.Group("/"), a.cfg, a.now)

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-cmd.Context().Done()
		log.Info().Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Server shutdown")
		}
	}()

	log.Info().Str("port", a.cfg.Port).Str("version", router.Version).Msg("Starting ledger")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	log.Info().Msg("Server stopped")
	return nil
}
