package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/keigo1110/wordtree/internal/config"
	"github.com/keigo1110/wordtree/internal/datamuse"
	"github.com/keigo1110/wordtree/internal/etymology"
	"github.com/keigo1110/wordtree/internal/lookup"
	"github.com/keigo1110/wordtree/internal/reading"
	"github.com/keigo1110/wordtree/internal/server"
	"github.com/keigo1110/wordtree/internal/translator"
	"github.com/keigo1110/wordtree/internal/wordnet"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the lookup HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			lookups, closer, err := newLookupService(cfg)
			if err != nil {
				return err
			}
			defer closer()

			translations, err := translator.New(slog.Default())
			if err != nil {
				return fmt.Errorf("translator.New > %w", err)
			}

			srv := server.New(lookups, translations, cfg.Server.CORS.AllowedOrigins, slog.Default())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					slog.Error("failed to shut down server", "error", err)
				}
			}()

			slog.Info("starting server", "port", cfg.Server.Port)
			return srv.Start(cfg.Server.Port)
		},
	}
}

// newLookupService wires the lookup service and returns a cleanup function
// for the underlying HTTP clients.
func newLookupService(cfg *config.Config) (*lookup.Service, func(), error) {
	repository := wordnet.Load(cfg.Tables.SenseTable, cfg.Tables.SynsetTable)
	words := datamuse.NewClient(cfg.Datamuse.BaseURL, cfg.Datamuse.RetryAttempts)
	dbnary := etymology.NewDBnaryClient(cfg.Etymology.Endpoint)
	etymologies := etymology.NewService(dbnary, slog.Default())

	readings, err := reading.NewAnalyzer()
	if err != nil {
		return nil, nil, fmt.Errorf("reading.NewAnalyzer > %w", err)
	}

	lookups := lookup.NewService(repository, words, etymologies, readings, slog.Default())
	closer := func() {
		if err := dbnary.Close(); err != nil {
			slog.Warn("failed to close etymology client", "error", err)
		}
	}
	return lookups, closer, nil
}
