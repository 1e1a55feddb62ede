package commands

import (
	"context"
	"log/slog"

	sqliteadapter "github.com/tfccofficial/tfcc/internal/adapter/driven/sqlite"
	webhandler "github.com/tfccofficial/tfcc/internal/adapter/driving/web"
	"github.com/tfccofficial/tfcc/internal/application"
)

// openSite opens the content database, applies the seed migrations and wires
// the web handler on top of it. The returned DB must be closed by the caller.
func openSite(ctx context.Context) (*sqliteadapter.DB, *webhandler.Handler, error) {
	db, err := sqliteadapter.NewDB(ctx, cfg.ContentDBPath)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("content database opened", "path", db.Path())

	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	slog.Info("migrations complete")

	siteSvc := application.NewSiteService(sqliteadapter.NewContentRepo(db), slog.Default())
	return db, webhandler.NewHandler(siteSvc, cfg.Locale, slog.Default()), nil
}

func closeDB(db *sqliteadapter.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
}
