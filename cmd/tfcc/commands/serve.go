package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	mongoadapter "github.com/tfccofficial/tfcc/internal/adapter/driven/mongo"
	"github.com/tfccofficial/tfcc/internal/application"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"environment", cfg.Environment,
		"content_db", cfg.ContentDBPath,
		"build_dir", cfg.BuildDir,
		"locale", cfg.Locale.String(),
	)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, web, err := openSite(ctx)
	if err != nil {
		return err
	}
	defer closeDB(db)

	// The database connection is attempted once in the background; the server
	// starts listening regardless of its outcome.
	connector := application.NewStartupConnector(
		mongoadapter.NewConnector(cfg.MongoURI, cfg.ConnectTimeout),
		cfg.ConnectTimeout,
		slog.Default(),
	)
	connector.Start(ctx)

	if cfg.IsProduction() {
		slog.Info("serving client bundle", "dir", cfg.BuildDir)
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           newRouter(web, cfg.IsProduction(), os.DirFS(cfg.BuildDir)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("http server shutdown error", "error", err)
		}
		if err := connector.Close(shutdownCtx); err != nil {
			slog.Error("database disconnect error", "error", err)
		}
		return nil
	})

	slog.Info("tfcc started",
		"listen_addr", cfg.ListenAddr,
		"production", cfg.IsProduction(),
	)

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("shutdown complete")
	return nil
}
