// Package entrypoint wires the persistence layer together: logging, the
// database, the per-concern repositories, settings, and the auto-backup
// scheduler. The GUI shell and the CLI commands both bootstrap through it.
package entrypoint

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/christinsong/hymnal/internal/config"
	"github.com/christinsong/hymnal/internal/database"
	"github.com/christinsong/hymnal/internal/database/categories"
	"github.com/christinsong/hymnal/internal/database/favourites"
	"github.com/christinsong/hymnal/internal/database/hymns"
	"github.com/christinsong/hymnal/internal/database/recent"
	"github.com/christinsong/hymnal/internal/database/settings"
	"github.com/christinsong/hymnal/internal/logging"
	"github.com/christinsong/hymnal/internal/scheduler"
	"github.com/christinsong/hymnal/internal/settingsstore"
)

// App holds every initialized component of the persistence layer.
type App struct {
	Config  *config.Config
	LogPath string

	DB         *database.Database
	Hymns      *hymns.Repository
	Favourites *favourites.Repository
	Recent     *recent.Repository
	Categories *categories.Repository
	Settings   *settingsstore.Store

	AutoBackup *scheduler.AutoBackup
}

// Open initializes logging and the database and builds the repositories.
// A failure to open the log file is tolerated; a failure to open the
// database is not.
func Open(cfg *config.Config) (*App, error) {
	logPath, err := logging.Setup(cfg.Logging.Dir, config.LogFilename, cfg.Logging.Level)
	if err != nil {
		log.Warn().Err(err).Msg("file logging unavailable, continuing on console only")
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	store := settingsstore.New(settings.NewRepository(db.DB))

	app := &App{
		Config:     cfg,
		LogPath:    logPath,
		DB:         db,
		Hymns:      hymns.NewRepository(db.DB),
		Favourites: favourites.NewRepository(db.DB),
		Recent:     recent.NewRepository(db.DB),
		Categories: categories.NewRepository(db.DB),
		Settings:   store,
		AutoBackup: scheduler.NewAutoBackup(db, store, cfg.Backup.Dir),
	}

	log.Info().Str("database", db.Path()).Msg("application initialized")
	return app, nil
}

// StartScheduler begins the background auto-backup check and runs it once
// immediately so a long-overdue backup does not wait for the next tick.
func (a *App) StartScheduler(ctx context.Context) error {
	if err := a.AutoBackup.Start(ctx); err != nil {
		return err
	}
	if path, err := a.AutoBackup.RunIfDue(); err != nil {
		log.Error().Err(err).Msg("startup backup check failed")
	} else if path != "" {
		log.Info().Str("path", path).Msg("automatic backup created")
	}
	return nil
}

// Close stops the scheduler and closes the database.
func (a *App) Close() error {
	if a.AutoBackup.IsRunning() {
		a.AutoBackup.Stop()
	}
	return a.DB.Close()
}
